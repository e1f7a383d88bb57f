package collect

import (
	"bytes"
	"log"

	"github.com/Eyevinn/mp2ts-si/internal/dvbtext"
	"github.com/Eyevinn/mp2ts-si/internal/si"
	"github.com/Eyevinn/mp4ff/bits"
	"github.com/asticode/go-astits"
)

func toDescriptors(ds []*astits.Descriptor) []si.Descriptor {
	if len(ds) == 0 {
		return nil
	}
	out := make([]si.Descriptor, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		out = append(out, toDescriptor(d))
	}
	return out
}

// toDescriptor maps a demuxed descriptor to its model variant. Tags the
// demuxer keeps as raw content are decoded by decodeRaw.
func toDescriptor(d *astits.Descriptor) si.Descriptor {
	tag := si.Tag(d.Tag)
	switch tag {
	case si.TagService:
		if sd := d.Service; sd != nil {
			return &si.ServiceDescriptor{
				ServiceType:     sd.Type,
				ServiceProvider: dvbtext.Decode(sd.Provider),
				Name:            dvbtext.Decode(sd.Name),
			}
		}
	case si.TagShortEvent:
		if se := d.ShortEvent; se != nil {
			return &si.ShortEventDescriptor{
				LanguageCode: string(se.Language[:]),
				Name:         dvbtext.Decode(se.EventName),
				Text:         dvbtext.Decode(se.Text),
			}
		}
	case si.TagExtendedEvent:
		if ee := d.ExtendedEvent; ee != nil {
			ext := &si.ExtendedEventDescriptor{
				DescriptorNumber:     ee.Number,
				LastDescriptorNumber: ee.LastDescriptorNumber,
				LanguageCode:         string(ee.ISO639LanguageCode[:]),
				Text:                 dvbtext.Decode(ee.Text),
			}
			for _, item := range ee.Items {
				ext.Items = append(ext.Items, si.ExtendedEventItem{
					Description: dvbtext.Decode(item.Description),
					Text:        dvbtext.Decode(item.Content),
				})
			}
			return ext
		}
	case si.TagComponent:
		if c := d.Component; c != nil {
			return &si.ComponentDescriptor{
				StreamContent: c.StreamContent,
				ComponentType: c.ComponentType,
				ComponentTag:  c.ComponentTag,
				LanguageCode:  string(c.ISO639LanguageCode[:]),
				Text:          dvbtext.Decode(c.Text),
			}
		}
	case si.TagContent:
		if c := d.Content; c != nil {
			content := &si.ContentDescriptor{}
			for _, item := range c.Items {
				content.Items = append(content.Items, si.ContentItem{
					Nibble1:     item.ContentNibbleLevel1,
					Nibble2:     item.ContentNibbleLevel2,
					UserNibble1: item.UserByte >> 4,
					UserNibble2: item.UserByte & 0x0f,
				})
			}
			return content
		}
	case si.TagParentalRating:
		if pr := d.ParentalRating; pr != nil {
			rating := &si.ParentalRatingDescriptor{}
			for _, item := range pr.Items {
				rating.Ratings = append(rating.Ratings, si.ParentalRating{
					LanguageCode: string(item.CountryCode[:]),
					Rating:       item.Rating,
				})
			}
			return rating
		}
	case si.TagStreamIdentifier:
		if sid := d.StreamIdentifier; sid != nil {
			return &si.StreamIdentifierDescriptor{ComponentTag: sid.ComponentTag}
		}
	case si.TagISO639Language:
		if l := d.ISO639LanguageAndAudioType; l != nil {
			return &si.ISO639LanguageDescriptor{LanguageCode: string(l.Language[:])}
		}
	}
	if d.Unknown != nil {
		return decodeRaw(tag, d.Unknown.Content)
	}
	return &si.UnsupportedDescriptor{DescriptorTag: tag}
}

// decodeRaw decodes the payload of descriptors the demuxer does not parse.
// A payload shorter than its fixed fields is kept as unsupported.
func decodeRaw(tag si.Tag, data []byte) si.Descriptor {
	r := bits.NewReader(bytes.NewReader(data))
	var d si.Descriptor
	switch tag {
	case si.TagBouquetName:
		return &si.BouquetNameDescriptor{Name: dvbtext.Decode(data)}
	case si.TagAncillaryData:
		d = &si.AncillaryDataDescriptor{Identifier: uint8(r.Read(8))}
	case si.TagCountryAvailability:
		ca := &si.CountryAvailabilityDescriptor{Available: r.Read(1) == 1}
		_ = r.Read(7) // reserved
		for i := 0; i < (len(data)-1)/3; i++ {
			ca.CountryCodes = append(ca.CountryCodes, countryCode(r.Read(24)))
		}
		d = ca
	case si.TagLinkage:
		l := &si.LinkageDescriptor{
			TransportStreamID: uint16(r.Read(16)),
			OriginalNetworkID: uint16(r.Read(16)),
			ServiceID:         uint16(r.Read(16)),
			LinkageType:       uint8(r.Read(8)),
		}
		if r.AccError() == nil && len(data) > 7 {
			l.PrivateData = r.ReadRemainingBytes()
		}
		d = l
	case si.TagNVODReference:
		nvod := &si.NVODReferenceDescriptor{}
		for i := 0; i < len(data)/6; i++ {
			nvod.Items = append(nvod.Items, si.NVODReferenceItem{
				TransportStreamID: uint16(r.Read(16)),
				OriginalNetworkID: uint16(r.Read(16)),
				ServiceID:         uint16(r.Read(16)),
			})
		}
		d = nvod
	case si.TagTimeShiftedService:
		d = &si.TimeShiftedServiceDescriptor{ReferenceServiceID: uint16(r.Read(16))}
	case si.TagTimeShiftedEvent:
		d = &si.TimeShiftedEventDescriptor{
			ReferenceServiceID: uint16(r.Read(16)),
			ReferenceEventID:   uint16(r.Read(16)),
		}
	case si.TagCAIdentifier:
		ca := &si.CAIdentifierDescriptor{}
		for i := 0; i < len(data)/2; i++ {
			ca.SystemIDs = append(ca.SystemIDs, uint16(r.Read(16)))
		}
		d = ca
	default:
		return &si.UnsupportedDescriptor{DescriptorTag: tag, Data: data}
	}
	if r.AccError() != nil {
		log.Printf("descriptor 0x%02x: short payload of %d bytes\n", uint8(tag), len(data))
		return &si.UnsupportedDescriptor{DescriptorTag: tag, Data: data}
	}
	return d
}

func countryCode(v uint) string {
	return string([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}
