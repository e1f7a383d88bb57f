package si

// Tag is a descriptor tag.
type Tag uint8

// Descriptor tags
// ISO/IEC 13818-1 chapter 2.6 and EN 300 468 chapter 6.1
const (
	TagCASystem              Tag = 0x09
	TagISO639Language        Tag = 0x0a
	TagNetworkName           Tag = 0x40
	TagServiceList           Tag = 0x41
	TagStuffing              Tag = 0x42
	TagSatelliteDelivery     Tag = 0x43
	TagCableDelivery         Tag = 0x44
	TagVBIData               Tag = 0x45
	TagVBITeletext           Tag = 0x46
	TagBouquetName           Tag = 0x47
	TagService               Tag = 0x48
	TagCountryAvailability   Tag = 0x49
	TagLinkage               Tag = 0x4a
	TagNVODReference         Tag = 0x4b
	TagTimeShiftedService    Tag = 0x4c
	TagShortEvent            Tag = 0x4d
	TagExtendedEvent         Tag = 0x4e
	TagTimeShiftedEvent      Tag = 0x4f
	TagComponent             Tag = 0x50
	TagMosaic                Tag = 0x51
	TagStreamIdentifier      Tag = 0x52
	TagCAIdentifier          Tag = 0x53
	TagContent               Tag = 0x54
	TagParentalRating        Tag = 0x55
	TagTeletext              Tag = 0x56
	TagTelephone             Tag = 0x57
	TagLocalTimeOffset       Tag = 0x58
	TagSubtitling            Tag = 0x59
	TagTerrestrialDelivery   Tag = 0x5a
	TagMultilingualNetwork   Tag = 0x5b
	TagMultilingualBouquet   Tag = 0x5c
	TagMultilingualService   Tag = 0x5d
	TagMultilingualComponent Tag = 0x5e
	TagPrivateDataSpecifier  Tag = 0x5f
	TagServiceMove           Tag = 0x60
	TagShortSmoothingBuffer  Tag = 0x61
	TagFrequencyList         Tag = 0x62
	TagPartialTransport      Tag = 0x63
	TagDataBroadcast         Tag = 0x64
	TagCASystemDVB           Tag = 0x65
	TagDataBroadcastID       Tag = 0x66
	TagTransportStream       Tag = 0x67
	TagDSNG                  Tag = 0x68
	TagPDC                   Tag = 0x69
	TagAC3                   Tag = 0x6a
	TagAncillaryData         Tag = 0x6b
	TagCellList              Tag = 0x6c
	TagCellFrequencyLink     Tag = 0x6d
	TagAnnouncementSupport   Tag = 0x6e
)

// Descriptor is one of the variant types declared in this file.
// The set is closed: only this package can add variants.
type Descriptor interface {
	Tag() Tag
	descriptor()
}

// Ancillary data identifier bits
// EN 300 468 chapter 6.2.2
const (
	AncillaryDataDVDVideo    uint8 = 0x01
	AncillaryDataExtended    uint8 = 0x02
	AncillaryDataSwitching   uint8 = 0x04
	AncillaryDataDAB         uint8 = 0x08
	AncillaryDataScaleFactor uint8 = 0x10
)

type AncillaryDataDescriptor struct {
	Identifier uint8
}

type BouquetNameDescriptor struct {
	Name string
}

type ComponentDescriptor struct {
	StreamContent uint8
	ComponentType uint8
	ComponentTag  uint8
	LanguageCode  string
	Text          string
}

type ServiceDescriptor struct {
	ServiceType     uint8
	ServiceProvider string
	Name            string
}

type CountryAvailabilityDescriptor struct {
	Available    bool
	CountryCodes []string
}

type ShortEventDescriptor struct {
	LanguageCode string
	Name         string
	Text         string
}

type ExtendedEventDescriptor struct {
	DescriptorNumber     uint8
	LastDescriptorNumber uint8
	LanguageCode         string
	Items                []ExtendedEventItem
	Text                 string
}

type ExtendedEventItem struct {
	Description string
	Text        string
}

type CAIdentifierDescriptor struct {
	SystemIDs []uint16
}

type ContentDescriptor struct {
	Items []ContentItem
}

type ContentItem struct {
	Nibble1     uint8
	Nibble2     uint8
	UserNibble1 uint8
	UserNibble2 uint8
}

type ParentalRatingDescriptor struct {
	Ratings []ParentalRating
}

type ParentalRating struct {
	LanguageCode string
	Rating       uint8
}

type NVODReferenceDescriptor struct {
	Items []NVODReferenceItem
}

type NVODReferenceItem struct {
	TransportStreamID uint16
	OriginalNetworkID uint16
	ServiceID         uint16
}

type TimeShiftedServiceDescriptor struct {
	ReferenceServiceID uint16
}

type TimeShiftedEventDescriptor struct {
	ReferenceServiceID uint16
	ReferenceEventID   uint16
}

type ISO639LanguageDescriptor struct {
	LanguageCode string
}

type StreamIdentifierDescriptor struct {
	ComponentTag uint8
}

type LinkageDescriptor struct {
	TransportStreamID uint16
	OriginalNetworkID uint16
	ServiceID         uint16
	LinkageType       uint8
	PrivateData       []byte
}

// UnsupportedDescriptor keeps the tag and raw payload of any descriptor
// without a dedicated variant.
type UnsupportedDescriptor struct {
	DescriptorTag Tag
	Data          []byte
}

func (*AncillaryDataDescriptor) Tag() Tag       { return TagAncillaryData }
func (*BouquetNameDescriptor) Tag() Tag         { return TagBouquetName }
func (*ComponentDescriptor) Tag() Tag           { return TagComponent }
func (*ServiceDescriptor) Tag() Tag             { return TagService }
func (*CountryAvailabilityDescriptor) Tag() Tag { return TagCountryAvailability }
func (*ShortEventDescriptor) Tag() Tag          { return TagShortEvent }
func (*ExtendedEventDescriptor) Tag() Tag       { return TagExtendedEvent }
func (*CAIdentifierDescriptor) Tag() Tag        { return TagCAIdentifier }
func (*ContentDescriptor) Tag() Tag             { return TagContent }
func (*ParentalRatingDescriptor) Tag() Tag      { return TagParentalRating }
func (*NVODReferenceDescriptor) Tag() Tag       { return TagNVODReference }
func (*TimeShiftedServiceDescriptor) Tag() Tag  { return TagTimeShiftedService }
func (*TimeShiftedEventDescriptor) Tag() Tag    { return TagTimeShiftedEvent }
func (*ISO639LanguageDescriptor) Tag() Tag      { return TagISO639Language }
func (*StreamIdentifierDescriptor) Tag() Tag    { return TagStreamIdentifier }
func (*LinkageDescriptor) Tag() Tag             { return TagLinkage }
func (d *UnsupportedDescriptor) Tag() Tag       { return d.DescriptorTag }

func (*AncillaryDataDescriptor) descriptor()       {}
func (*BouquetNameDescriptor) descriptor()         {}
func (*ComponentDescriptor) descriptor()           {}
func (*ServiceDescriptor) descriptor()             {}
func (*CountryAvailabilityDescriptor) descriptor() {}
func (*ShortEventDescriptor) descriptor()          {}
func (*ExtendedEventDescriptor) descriptor()       {}
func (*CAIdentifierDescriptor) descriptor()        {}
func (*ContentDescriptor) descriptor()             {}
func (*ParentalRatingDescriptor) descriptor()      {}
func (*NVODReferenceDescriptor) descriptor()       {}
func (*TimeShiftedServiceDescriptor) descriptor()  {}
func (*TimeShiftedEventDescriptor) descriptor()    {}
func (*ISO639LanguageDescriptor) descriptor()      {}
func (*StreamIdentifierDescriptor) descriptor()    {}
func (*LinkageDescriptor) descriptor()             {}
func (*UnsupportedDescriptor) descriptor()         {}
