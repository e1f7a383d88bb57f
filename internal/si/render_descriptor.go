package si

import (
	"fmt"
	"strings"
)

// NotSupported is printed for descriptors without a rendering rule.
const NotSupported = "Descriptor: (not yet supported)"

var ancillaryDataLabels = []struct {
	bit   uint8
	label string
}{
	{AncillaryDataDVDVideo, "DVD-Video Ancillary Data"},
	{AncillaryDataExtended, "Extended Ancillary Data"},
	{AncillaryDataSwitching, "Announcement Switching Data"},
	{AncillaryDataDAB, "DAB Ancillary Data"},
	{AncillaryDataScaleFactor, "Scale Factor Error Check (ScF-CRC)"},
}

func (p *TextPrinter) PrintDescriptors(descriptors []Descriptor, depth int) {
	for _, d := range descriptors {
		p.PrintDescriptor(d, depth)
	}
}

// PrintDescriptor prints the header line of d at depth and its fields below it.
func (p *TextPrinter) PrintDescriptor(d Descriptor, depth int) {
	t := p.tables()
	switch d := d.(type) {
	case nil:
		return
	case *AncillaryDataDescriptor:
		p.printf(depth, "Descriptor: Ancillary Data")
		labels := make([]string, 0, len(ancillaryDataLabels))
		for _, l := range ancillaryDataLabels {
			if d.Identifier&l.bit != 0 {
				labels = append(labels, l.label)
			}
		}
		p.printf(depth+1, "Identifier: %s", strings.Join(labels, " "))
	case *BouquetNameDescriptor:
		p.printf(depth, "Descriptor: Bouquet Name")
		p.printf(depth+1, "Name: %s", d.Name)
	case *ComponentDescriptor:
		p.printf(depth, "Descriptor: Component")
		p.printf(depth+1, "Text: %s", d.Text)
		p.printf(depth+1, "Content/Type: %s", t.ComponentType(d.StreamContent, d.ComponentType))
		p.printf(depth+1, "ComponentTag: 0x%02x", d.ComponentTag)
		p.printf(depth+1, "LanguageCode: %s", d.LanguageCode)
	case *ServiceDescriptor:
		p.printf(depth, "Descriptor: Service")
		p.printf(depth+1, "Name: %s", d.Name)
		p.printf(depth+1, "ServiceType: %s", t.ServiceType(d.ServiceType))
		p.printf(depth+1, "ServiceProvider: %s", d.ServiceProvider)
	case *CountryAvailabilityDescriptor:
		p.printf(depth, "Descriptor: Country Availability")
		if d.Available {
			p.printf(depth+1, "Type: countries are available")
		} else {
			p.printf(depth+1, "Type: countries are unavailable")
		}
		for _, c := range d.CountryCodes {
			p.printf(depth+1, "Country: %s", c)
		}
	case *ShortEventDescriptor:
		p.printf(depth, "Descriptor: Short Event")
		p.printf(depth+1, "Name: %s", d.Name)
		p.printf(depth+1, "LanguageCode: %s", d.LanguageCode)
		p.printf(depth+1, "Text: %s", d.Text)
	case *ExtendedEventDescriptor:
		p.printf(depth, "Descriptor: Extended Event")
		p.printf(depth+1, "Text: %s", d.Text)
		p.printf(depth+1, "DescriptorNumber: %d", d.DescriptorNumber)
		p.printf(depth+1, "LastDescriptorNumber: %d", d.LastDescriptorNumber)
		p.printf(depth+1, "LanguageCode: %s", d.LanguageCode)
		for _, item := range d.Items {
			p.printf(depth+1, "Item:")
			p.printf(depth+2, "Description: %s", item.Description)
			p.printf(depth+2, "Text: %s", item.Text)
		}
	case *CAIdentifierDescriptor:
		p.printf(depth, "Descriptor: Conditional Access Identity")
		for _, id := range d.SystemIDs {
			p.printf(depth+1, "SystemID: 0x%04x", id)
		}
	case *ContentDescriptor:
		p.printf(depth, "Descriptor: Content")
		for _, item := range d.Items {
			p.printf(depth+1, "Content: %s", t.ContentType(item.Nibble1, item.Nibble2))
			p.printf(depth+1, "User-Nibble 1: 0x%x", item.UserNibble1)
			p.printf(depth+1, "User-Nibble 2: 0x%x", item.UserNibble2)
		}
	case *ParentalRatingDescriptor:
		p.printf(depth, "Descriptor: Parental Rating")
		for _, r := range d.Ratings {
			p.printf(depth+1, "Rating:")
			p.printf(depth+2, "LanguageCode: %s", r.LanguageCode)
			p.printf(depth+2, "Rating: %s", ratingLabel(r.Rating))
		}
	case *NVODReferenceDescriptor:
		p.printf(depth, "Descriptor: NVOD Reference")
		for _, item := range d.Items {
			p.printf(depth+1, "Item:")
			p.printf(depth+2, "ServiceID: %d", item.ServiceID)
			p.printf(depth+2, "TransportStreamID: %d", item.TransportStreamID)
			p.printf(depth+2, "OriginalNetworkID: %d", item.OriginalNetworkID)
		}
	case *TimeShiftedServiceDescriptor:
		p.printf(depth, "Descriptor: Time Shifted Service")
		p.printf(depth+1, "ReferenceServiceID: %d", d.ReferenceServiceID)
	case *TimeShiftedEventDescriptor:
		p.printf(depth, "Descriptor: Time Shifted Event")
		p.printf(depth+1, "ReferenceServiceID: %d", d.ReferenceServiceID)
		p.printf(depth+1, "ReferenceEventID: %d", d.ReferenceEventID)
	case *ISO639LanguageDescriptor:
		p.printf(depth, "Descriptor: ISO 639 Language")
		p.printf(depth+1, "LanguageCode: %s", d.LanguageCode)
	case *StreamIdentifierDescriptor:
		p.printf(depth, "Descriptor: Stream Identifier")
		p.printf(depth+1, "ComponentTag: %d", d.ComponentTag)
	case *LinkageDescriptor:
		p.printf(depth, "Descriptor: Linkage")
		p.printf(depth+1, "TransportStreamID: %d", d.TransportStreamID)
		p.printf(depth+1, "OriginalNetworkID: %d", d.OriginalNetworkID)
		p.printf(depth+1, "ServiceID: %d", d.ServiceID)
		p.printf(depth+1, "LinkageType: %d", d.LinkageType)
		if len(d.PrivateData) > 0 {
			p.printf(depth+1, "PrivateData: %s", hexBytes(d.PrivateData))
		}
	default:
		// Unsupported and any tag without a rule
		p.printf(depth, "%s", NotSupported)
	}
}

// ratingLabel maps a parental rating to a minimum age (rating + 3).
func ratingLabel(rating uint8) string {
	switch {
	case rating == 0:
		return "(undefined)"
	case rating <= 0x10:
		return fmt.Sprintf("minimum age is %d", int(rating)+3)
	default:
		return "(rating is provider defined)"
	}
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return strings.Join(parts, " ")
}
