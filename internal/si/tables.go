package si

// Unknown is the description of any code missing from a lookup table.
const Unknown = "unknown"

type ServiceType struct {
	Type        uint8
	Description string
}

type ComponentType struct {
	Content     uint8
	Type        uint8
	Description string
}

type ContentType struct {
	Nibble1     uint8
	Nibble2     uint8
	Description string
}

type StreamType struct {
	Type        uint8
	Description string
}

// Tables is the read-only reference data used to describe numeric codes.
type Tables struct {
	ServiceTypes   []ServiceType
	ComponentTypes []ComponentType
	ContentTypes   []ContentType
	StreamTypes    []StreamType
}

// ServiceType returns the description of a service_type, or Unknown.
func (t *Tables) ServiceType(typ uint8) string {
	for _, e := range t.ServiceTypes {
		if e.Type == typ {
			return e.Description
		}
	}
	return Unknown
}

// ComponentType returns the description of a stream_content/component_type pair, or Unknown.
func (t *Tables) ComponentType(content, typ uint8) string {
	for _, e := range t.ComponentTypes {
		if e.Content == content && e.Type == typ {
			return e.Description
		}
	}
	return Unknown
}

// ContentType returns the description of a content nibble pair, or Unknown.
func (t *Tables) ContentType(nibble1, nibble2 uint8) string {
	for _, e := range t.ContentTypes {
		if e.Nibble1 == nibble1 && e.Nibble2 == nibble2 {
			return e.Description
		}
	}
	return Unknown
}

// StreamType returns the description of a PMT stream_type. Codes missing from
// the table resolve to "User Private" in 0x80-0xff and "Reserved" otherwise.
func (t *Tables) StreamType(typ uint8) string {
	for _, e := range t.StreamTypes {
		if e.Type == typ {
			return e.Description
		}
	}
	if typ >= 0x80 {
		return "User Private"
	}
	return "Reserved"
}

// DefaultTables returns the built-in tables. The returned value shares no
// state with other callers.
func DefaultTables() *Tables {
	return &Tables{
		ServiceTypes:   append([]ServiceType(nil), serviceTypes...),
		ComponentTypes: append([]ComponentType(nil), componentTypes...),
		ContentTypes:   append([]ContentType(nil), contentTypes...),
		StreamTypes:    append([]StreamType(nil), streamTypes...),
	}
}

var defaultTables = DefaultTables()

// Service types
// EN 300 468 chapter 6.2.33
var serviceTypes = []ServiceType{
	{0x01, "digital television service"},
	{0x02, "digital radio sound service"},
	{0x03, "Teletext service"},
	{0x04, "NVOD reference service"},
	{0x05, "NVOD time-shifted service"},
	{0x06, "mosaic service"},
	{0x07, "PAL coded signal"},
	{0x08, "SECAM coded signal"},
	{0x09, "D/D2-MAC"},
	{0x0a, "FM Radio"},
	{0x0b, "NTSC coded signal"},
	{0x0c, "data broadcast service"},
	{0x0d, "reserved for Common Interface Usage"},
	{0x0e, "RCS Map"},
	{0x0f, "RCS FLS"},
	{0x10, "DVB MHP service"},
	{0x11, "MPEG-2 HD digital television service"},
	{0x16, "advanced codec SD digital television service"},
	{0x17, "advanced codec SD NVOD time-shifted service"},
	{0x18, "advanced codec SD NVOD reference service"},
	{0x19, "advanced codec HD digital television service"},
	{0x1a, "advanced codec HD NVOD time-shifted service"},
	{0x1b, "advanced codec HD NVOD reference service"},
	{0x1f, "HEVC digital television service"},
}

// Component types
// EN 300 468 chapter 6.2.8
var componentTypes = []ComponentType{
	{0x01, 0x01, "video, 4:3 aspect ratio, 25 Hz"},
	{0x01, 0x02, "video, 16:9 aspect ratio with pan vectors, 25 Hz"},
	{0x01, 0x03, "video, 16:9 aspect ratio without pan vectors, 25 Hz"},
	{0x01, 0x04, "video, > 16:9 aspect ratio, 25 Hz"},
	{0x01, 0x05, "video, 4:3 aspect ratio, 30 Hz"},
	{0x01, 0x06, "video, 16:9 aspect ratio with pan vectors, 30 Hz"},
	{0x01, 0x07, "video, 16:9 aspect ratio without pan vectors, 30 Hz"},
	{0x01, 0x08, "video, > 16:9 aspect ratio, 30 Hz"},
	{0x01, 0x09, "high definition video, 4:3 aspect ratio, 25 Hz"},
	{0x01, 0x0a, "high definition video, 16:9 aspect ratio with pan vectors, 25 Hz"},
	{0x01, 0x0b, "high definition video, 16:9 aspect ratio without pan vectors, 25 Hz"},
	{0x01, 0x0c, "high definition video, > 16:9 aspect ratio, 25 Hz"},
	{0x01, 0x0d, "high definition video, 4:3 aspect ratio, 30 Hz"},
	{0x01, 0x0e, "high definition video, 16:9 aspect ratio with pan vectors, 30 Hz"},
	{0x01, 0x0f, "high definition video, 16:9 aspect ratio without pan vectors, 30 Hz"},
	{0x01, 0x10, "high definition video, > 16:9 aspect ratio, 30 Hz"},
	{0x02, 0x01, "audio, single mono channel"},
	{0x02, 0x02, "audio, dual mono channel"},
	{0x02, 0x03, "audio, stereo (2 channel)"},
	{0x02, 0x04, "audio, multi-lingual, multi-channel"},
	{0x02, 0x05, "audio, surround sound"},
	{0x02, 0x40, "audio description for the visually impaired"},
	{0x02, 0x41, "audio for the hard of hearing"},
	{0x03, 0x01, "EBU Teletext subtitles"},
	{0x03, 0x02, "associated EBU Teletext"},
	{0x03, 0x03, "VBI data"},
	{0x03, 0x10, "DVB subtitles (normal) with no monitor aspect ratio criticality"},
	{0x03, 0x11, "DVB subtitles (normal) for display on 4:3 aspect ratio monitor"},
	{0x03, 0x12, "DVB subtitles (normal) for display on 16:9 aspect ratio monitor"},
	{0x03, 0x13, "DVB subtitles (normal) for display on 2.21:1 aspect ratio monitor"},
	{0x03, 0x20, "DVB subtitles (for the hard of hearing) with no monitor aspect ratio criticality"},
	{0x03, 0x21, "DVB subtitles (for the hard of hearing) for display on 4:3 aspect ratio monitor"},
	{0x03, 0x22, "DVB subtitles (for the hard of hearing) for display on 16:9 aspect ratio monitor"},
	{0x03, 0x23, "DVB subtitles (for the hard of hearing) for display on 2.21:1 aspect ratio monitor"},
}

// Content nibbles
// EN 300 468 chapter 6.2.9
var contentTypes = []ContentType{
	{0x1, 0x0, "movie/drama (general)"},
	{0x1, 0x1, "detective/thriller"},
	{0x1, 0x2, "adventure/western/war"},
	{0x1, 0x3, "science fiction/fantasy/horror"},
	{0x1, 0x4, "comedy"},
	{0x1, 0x5, "soap/melodrama/folklore"},
	{0x1, 0x6, "romance"},
	{0x1, 0x7, "serious/classical/religious/historical movie/drama"},
	{0x1, 0x8, "adult movie/drama"},
	{0x2, 0x0, "news/current affairs (general)"},
	{0x2, 0x1, "news/weather report"},
	{0x2, 0x2, "news magazine"},
	{0x2, 0x3, "documentary"},
	{0x2, 0x4, "discussion/interview/debate"},
	{0x3, 0x0, "show/game show (general)"},
	{0x3, 0x1, "game show/quiz/contest"},
	{0x3, 0x2, "variety show"},
	{0x3, 0x3, "talk show"},
	{0x4, 0x0, "sports (general)"},
	{0x4, 0x1, "special events (Olympic Games, World Cup etc.)"},
	{0x4, 0x2, "sports magazines"},
	{0x4, 0x3, "football/soccer"},
	{0x4, 0x4, "tennis/squash"},
	{0x4, 0x5, "team sports (excluding football)"},
	{0x4, 0x6, "athletics"},
	{0x4, 0x7, "motor sport"},
	{0x4, 0x8, "water sport"},
	{0x4, 0x9, "winter sports"},
	{0x4, 0xa, "equestrian"},
	{0x4, 0xb, "martial sports"},
	{0x5, 0x0, "children's/youth programmes (general)"},
	{0x5, 0x1, "pre-school children's programmes"},
	{0x5, 0x2, "entertainment programmes for 6 to 14"},
	{0x5, 0x3, "entertainment programmes for 10 to 16"},
	{0x5, 0x4, "informational/educational/school programmes"},
	{0x5, 0x5, "cartoons/puppets"},
	{0x6, 0x0, "music/ballet/dance (general)"},
	{0x6, 0x1, "rock/pop"},
	{0x6, 0x2, "serious music/classical music"},
	{0x6, 0x3, "folk/traditional music"},
	{0x6, 0x4, "jazz"},
	{0x6, 0x5, "musical/opera"},
	{0x6, 0x6, "ballet"},
	{0x7, 0x0, "arts/culture (without music, general)"},
	{0x7, 0x1, "performing arts"},
	{0x7, 0x2, "fine arts"},
	{0x7, 0x3, "religion"},
	{0x7, 0x4, "popular culture/traditional arts"},
	{0x7, 0x5, "literature"},
	{0x7, 0x6, "film/cinema"},
	{0x7, 0x7, "experimental film/video"},
	{0x7, 0x8, "broadcasting/press"},
	{0x7, 0x9, "new media"},
	{0x7, 0xa, "arts/culture magazines"},
	{0x7, 0xb, "fashion"},
	{0x8, 0x0, "social/political issues/economics (general)"},
	{0x8, 0x1, "magazines/reports/documentary"},
	{0x8, 0x2, "economics/social advisory"},
	{0x8, 0x3, "remarkable people"},
	{0x9, 0x0, "education/science/factual topics (general)"},
	{0x9, 0x1, "nature/animals/environment"},
	{0x9, 0x2, "technology/natural sciences"},
	{0x9, 0x3, "medicine/physiology/psychology"},
	{0x9, 0x4, "foreign countries/expeditions"},
	{0x9, 0x5, "social/spiritual sciences"},
	{0x9, 0x6, "further education"},
	{0x9, 0x7, "languages"},
	{0xa, 0x0, "leisure hobbies (general)"},
	{0xa, 0x1, "tourism/travel"},
	{0xa, 0x2, "handicraft"},
	{0xa, 0x3, "motoring"},
	{0xa, 0x4, "fitness and health"},
	{0xa, 0x5, "cooking"},
	{0xa, 0x6, "advertisement/shopping"},
	{0xa, 0x7, "gardening"},
	{0xb, 0x0, "original language"},
	{0xb, 0x1, "black and white"},
	{0xb, 0x2, "unpublished"},
	{0xb, 0x3, "live broadcast"},
}

// Stream types
// ISO/IEC 13818-1 table 2-34
var streamTypes = []StreamType{
	{0x00, "ITU-T | ISO/IEC Reserved"},
	{0x01, "ISO/IEC 11172 Video"},
	{0x02, "ITU-T Rec. H.262 | ISO/IEC 13818-2 Video"},
	{0x03, "ISO/IEC 11172 Audio"},
	{0x04, "ISO/IEC 13818-3 Audio"},
	{0x05, "ITU-T Rec. H.222.0 | ISO/IEC 13818-1 private sections"},
	{0x06, "ITU-T Rec. H.222.0 | ISO/IEC 13818-1 PES packets containing private data"},
	{0x07, "ISO/IEC 13522 MHEG"},
	{0x08, "ITU-T Rec. H.222.0 | ISO/IEC 13818-1 Annex A DSM CC"},
	{0x09, "ITU-T Rec. H.222.1"},
	{0x0a, "ISO/IEC 13818-6 type A"},
	{0x0b, "ISO/IEC 13818-6 type B"},
	{0x0c, "ISO/IEC 13818-6 type C"},
	{0x0d, "ISO/IEC 13818-6 type D"},
	{0x0e, "ISO/IEC 13818-1 auxiliary"},
	{0x0f, "ISO/IEC 13818-7 Audio with ADTS transport syntax"},
	{0x11, "ISO/IEC 14496-3 Audio with LATM transport syntax"},
	{0x15, "Metadata carried in PES packets"},
	{0x1b, "ITU-T Rec. H.264 | ISO/IEC 14496-10 Video"},
	{0x24, "ITU-T Rec. H.265 | ISO/IEC 23008-2 Video"},
	{0x86, "SCTE 35 splice information"},
}
