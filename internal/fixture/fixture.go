// Package fixture loads SI models from YAML documents.
//
// Descriptors are mappings with a kind key selecting the variant:
//
//	descriptors:
//	  - kind: service
//	    serviceType: 1
//	    provider: ARD
//	    name: Das Erste
//	  - tag: 0x40
//	    data: "41 52 44"
//
// Unknown kinds are an error. A descriptor given only by tag becomes an
// unsupported descriptor carrying the hex data.
package fixture

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Eyevinn/mp2ts-si/internal/si"
	"gopkg.in/yaml.v3"
)

type modelDoc struct {
	Services []serviceDoc `yaml:"services"`
	Programs []programDoc `yaml:"programs"`
}

type statusDoc struct {
	Schedule         bool  `yaml:"schedule"`
	PresentFollowing bool  `yaml:"presentFollowing"`
	Running          uint8 `yaml:"running"`
}

func (s statusDoc) status() si.Status {
	return si.NewStatus(s.Schedule, s.PresentFollowing, si.RunningStatus(s.Running))
}

type serviceDoc struct {
	ServiceID         uint16          `yaml:"serviceId"`
	TransportStreamID uint16          `yaml:"transportStreamId"`
	OriginalNetworkID uint16          `yaml:"originalNetworkId"`
	Version           uint8           `yaml:"version"`
	Status            statusDoc       `yaml:"status"`
	Descriptors       []descriptorDoc `yaml:"descriptors"`
	Events            []eventDoc      `yaml:"events"`
}

type eventDoc struct {
	EventID     uint16          `yaml:"eventId"`
	Version     uint8           `yaml:"version"`
	Start       time.Time       `yaml:"start"`
	Duration    string          `yaml:"duration"`
	Running     uint8           `yaml:"running"`
	Descriptors []descriptorDoc `yaml:"descriptors"`
}

type programDoc struct {
	ProgramID         uint16   `yaml:"programId"`
	TransportStreamID uint16   `yaml:"transportStreamId"`
	NetworkPID        uint16   `yaml:"networkPid"`
	Version           uint8    `yaml:"version"`
	Pids              []pidDoc `yaml:"pids"`
}

type pidDoc struct {
	PcrPID  uint16    `yaml:"pcrPid"`
	Version uint8     `yaml:"version"`
	Streams []infoDoc `yaml:"streams"`
}

type infoDoc struct {
	StreamType    uint8           `yaml:"streamType"`
	ElementaryPid uint16          `yaml:"elementaryPid"`
	Descriptors   []descriptorDoc `yaml:"descriptors"`
}

// descriptorDoc decodes one descriptor mapping into its variant.
type descriptorDoc struct {
	si.Descriptor
}

type descriptorHeader struct {
	Kind string `yaml:"kind"`
	Tag  *uint8 `yaml:"tag"`
	Data string `yaml:"data"`
}

type ratingDoc struct {
	Language string `yaml:"language"`
	Rating   uint8  `yaml:"rating"`
}

type itemDoc struct {
	Description string `yaml:"description"`
	Text        string `yaml:"text"`
}

type contentDoc struct {
	Nibble1 uint8 `yaml:"nibble1"`
	Nibble2 uint8 `yaml:"nibble2"`
	User1   uint8 `yaml:"user1"`
	User2   uint8 `yaml:"user2"`
}

type nvodDoc struct {
	TransportStreamID uint16 `yaml:"transportStreamId"`
	OriginalNetworkID uint16 `yaml:"originalNetworkId"`
	ServiceID         uint16 `yaml:"serviceId"`
}

func (d *descriptorDoc) UnmarshalYAML(n *yaml.Node) error {
	var h descriptorHeader
	if err := n.Decode(&h); err != nil {
		return err
	}
	if h.Kind != "" && h.Tag != nil {
		return fmt.Errorf("line %d: descriptor has both kind and tag", n.Line)
	}
	switch h.Kind {
	case "":
		if h.Tag == nil {
			return fmt.Errorf("line %d: descriptor needs a kind or a tag", n.Line)
		}
		if err := strictDecode(n, &h); err != nil {
			return err
		}
		data, err := hex.DecodeString(strings.ReplaceAll(h.Data, " ", ""))
		if err != nil {
			return fmt.Errorf("line %d: decoding data %w", n.Line, err)
		}
		if len(data) == 0 {
			data = nil
		}
		d.Descriptor = &si.UnsupportedDescriptor{DescriptorTag: si.Tag(*h.Tag), Data: data}
		return nil
	case "ancillaryData":
		var v struct {
			Identifier uint8 `yaml:"identifier"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.AncillaryDataDescriptor{Identifier: v.Identifier}
		})
	case "bouquetName":
		var v struct {
			Name string `yaml:"name"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.BouquetNameDescriptor{Name: v.Name}
		})
	case "component":
		var v struct {
			StreamContent uint8  `yaml:"streamContent"`
			ComponentType uint8  `yaml:"componentType"`
			ComponentTag  uint8  `yaml:"componentTag"`
			Language      string `yaml:"language"`
			Text          string `yaml:"text"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.ComponentDescriptor{StreamContent: v.StreamContent, ComponentType: v.ComponentType,
				ComponentTag: v.ComponentTag, LanguageCode: v.Language, Text: v.Text}
		})
	case "service":
		var v struct {
			ServiceType uint8  `yaml:"serviceType"`
			Provider    string `yaml:"provider"`
			Name        string `yaml:"name"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.ServiceDescriptor{ServiceType: v.ServiceType, ServiceProvider: v.Provider, Name: v.Name}
		})
	case "countryAvailability":
		var v struct {
			Available bool     `yaml:"available"`
			Countries []string `yaml:"countries"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.CountryAvailabilityDescriptor{Available: v.Available, CountryCodes: v.Countries}
		})
	case "shortEvent":
		var v struct {
			Language string `yaml:"language"`
			Name     string `yaml:"name"`
			Text     string `yaml:"text"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.ShortEventDescriptor{LanguageCode: v.Language, Name: v.Name, Text: v.Text}
		})
	case "extendedEvent":
		var v struct {
			Number     uint8     `yaml:"number"`
			LastNumber uint8     `yaml:"lastNumber"`
			Language   string    `yaml:"language"`
			Items      []itemDoc `yaml:"items"`
			Text       string    `yaml:"text"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			ext := &si.ExtendedEventDescriptor{DescriptorNumber: v.Number, LastDescriptorNumber: v.LastNumber,
				LanguageCode: v.Language, Text: v.Text}
			for _, it := range v.Items {
				ext.Items = append(ext.Items, si.ExtendedEventItem{Description: it.Description, Text: it.Text})
			}
			return ext
		})
	case "caIdentifier":
		var v struct {
			SystemIDs []uint16 `yaml:"systemIds"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.CAIdentifierDescriptor{SystemIDs: v.SystemIDs}
		})
	case "content":
		var v struct {
			Items []contentDoc `yaml:"items"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			c := &si.ContentDescriptor{}
			for _, it := range v.Items {
				c.Items = append(c.Items, si.ContentItem{Nibble1: it.Nibble1, Nibble2: it.Nibble2,
					UserNibble1: it.User1, UserNibble2: it.User2})
			}
			return c
		})
	case "parentalRating":
		var v struct {
			Ratings []ratingDoc `yaml:"ratings"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			pr := &si.ParentalRatingDescriptor{}
			for _, r := range v.Ratings {
				pr.Ratings = append(pr.Ratings, si.ParentalRating{LanguageCode: r.Language, Rating: r.Rating})
			}
			return pr
		})
	case "nvodReference":
		var v struct {
			Items []nvodDoc `yaml:"items"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			nvod := &si.NVODReferenceDescriptor{}
			for _, it := range v.Items {
				nvod.Items = append(nvod.Items, si.NVODReferenceItem(it))
			}
			return nvod
		})
	case "timeShiftedService":
		var v struct {
			ReferenceServiceID uint16 `yaml:"referenceServiceId"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.TimeShiftedServiceDescriptor{ReferenceServiceID: v.ReferenceServiceID}
		})
	case "timeShiftedEvent":
		var v struct {
			ReferenceServiceID uint16 `yaml:"referenceServiceId"`
			ReferenceEventID   uint16 `yaml:"referenceEventId"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.TimeShiftedEventDescriptor{ReferenceServiceID: v.ReferenceServiceID, ReferenceEventID: v.ReferenceEventID}
		})
	case "iso639Language":
		var v struct {
			Language string `yaml:"language"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.ISO639LanguageDescriptor{LanguageCode: v.Language}
		})
	case "streamIdentifier":
		var v struct {
			ComponentTag uint8 `yaml:"componentTag"`
		}
		return decodeInto(n, &v, d, func() si.Descriptor {
			return &si.StreamIdentifierDescriptor{ComponentTag: v.ComponentTag}
		})
	case "linkage":
		var v struct {
			TransportStreamID uint16 `yaml:"transportStreamId"`
			OriginalNetworkID uint16 `yaml:"originalNetworkId"`
			ServiceID         uint16 `yaml:"serviceId"`
			LinkageType       uint8  `yaml:"linkageType"`
			PrivateData       string `yaml:"privateData"`
		}
		if err := strictDecode(n, &v); err != nil {
			return err
		}
		data, err := hex.DecodeString(strings.ReplaceAll(v.PrivateData, " ", ""))
		if err != nil {
			return fmt.Errorf("line %d: decoding privateData %w", n.Line, err)
		}
		if len(data) == 0 {
			data = nil
		}
		d.Descriptor = &si.LinkageDescriptor{TransportStreamID: v.TransportStreamID, OriginalNetworkID: v.OriginalNetworkID,
			ServiceID: v.ServiceID, LinkageType: v.LinkageType, PrivateData: data}
		return nil
	default:
		return fmt.Errorf("line %d: unknown descriptor kind %q", n.Line, h.Kind)
	}
}

func decodeInto(n *yaml.Node, v any, d *descriptorDoc, build func() si.Descriptor) error {
	if err := strictDecode(n, v); err != nil {
		return err
	}
	d.Descriptor = build()
	return nil
}

// strictDecode decodes the mapping n into v and fails on keys v does not
// declare. The kind key is dropped first.
func strictDecode(n *yaml.Node, v any) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: descriptor is not a mapping", n.Line)
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "kind" {
			continue
		}
		m.Content = append(m.Content, n.Content[i], n.Content[i+1])
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("line %d: encoding descriptor %w", n.Line, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	return nil
}

func toDescriptors(docs []descriptorDoc) []si.Descriptor {
	if len(docs) == 0 {
		return nil
	}
	out := make([]si.Descriptor, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Descriptor)
	}
	return out
}

// Load reads one YAML document describing a model.
func Load(r io.Reader) (*si.Model, error) {
	var doc modelDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &si.Model{}, nil
		}
		return nil, fmt.Errorf("decoding model %w", err)
	}
	return doc.model()
}

func (doc *modelDoc) model() (*si.Model, error) {
	m := &si.Model{}
	for _, sd := range doc.Services {
		svc := &si.Service{
			ServiceID:         sd.ServiceID,
			TransportStreamID: sd.TransportStreamID,
			OriginalNetworkID: sd.OriginalNetworkID,
			SdtVersion:        sd.Version,
			Status:            sd.Status.status(),
			Descriptors:       toDescriptors(sd.Descriptors),
		}
		for _, ed := range sd.Events {
			var dur time.Duration
			if ed.Duration != "" {
				var err error
				if dur, err = time.ParseDuration(ed.Duration); err != nil {
					return nil, fmt.Errorf("event %d: parsing duration %w", ed.EventID, err)
				}
			}
			svc.Events = append(svc.Events, &si.Event{
				EventID:           ed.EventID,
				ServiceID:         sd.ServiceID,
				TransportStreamID: sd.TransportStreamID,
				OriginalNetworkID: sd.OriginalNetworkID,
				EitVersion:        ed.Version,
				StartTime:         ed.Start,
				Duration:          dur,
				Status:            si.NewStatus(false, false, si.RunningStatus(ed.Running)),
				Descriptors:       toDescriptors(ed.Descriptors),
			})
		}
		m.Services = append(m.Services, svc)
	}
	for _, pd := range doc.Programs {
		pr := &si.Program{
			ProgramID:         pd.ProgramID,
			TransportStreamID: pd.TransportStreamID,
			NetworkPID:        pd.NetworkPID,
			PatVersion:        pd.Version,
		}
		for _, p := range pd.Pids {
			pid := &si.Pid{ProgramID: pd.ProgramID, PcrPID: p.PcrPID, PmtVersion: p.Version}
			for _, s := range p.Streams {
				pid.Infos = append(pid.Infos, &si.PidInfo{
					StreamType:    s.StreamType,
					ElementaryPid: s.ElementaryPid,
					Descriptors:   toDescriptors(s.Descriptors),
				})
			}
			pr.Pids = append(pr.Pids, pid)
		}
		m.Programs = append(m.Programs, pr)
	}
	return m, nil
}
