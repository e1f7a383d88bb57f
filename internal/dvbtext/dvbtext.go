// Package dvbtext decodes DVB SI strings (EN 300 468 Annex A) to UTF-8.
package dvbtext

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Character table selectors, first byte of a string
const (
	selectorISO8859        = 0x10
	selectorUCS2           = 0x11
	selectorKSX1001        = 0x12
	selectorGB2312         = 0x13
	selectorBig5           = 0x14
	selectorUTF8           = 0x15
	selectorEncodingTypeID = 0x1f
)

// iso8859 maps an ISO/IEC 8859 part number to its charmap.
// Part 11 (Thai) is served by its Windows superset.
var iso8859 = map[byte]encoding.Encoding{
	1:  charmap.ISO8859_1,
	2:  charmap.ISO8859_2,
	3:  charmap.ISO8859_3,
	4:  charmap.ISO8859_4,
	5:  charmap.ISO8859_5,
	6:  charmap.ISO8859_6,
	7:  charmap.ISO8859_7,
	8:  charmap.ISO8859_8,
	9:  charmap.ISO8859_9,
	10: charmap.ISO8859_10,
	11: charmap.Windows874,
	13: charmap.ISO8859_13,
	14: charmap.ISO8859_14,
	15: charmap.ISO8859_15,
	16: charmap.ISO8859_16,
}

// Decode converts a DVB string to UTF-8. Emphasis control codes are dropped
// and the CR/LF control code becomes a space, so the result is one line.
// Strings without a table selector use the default table, approximated by
// ISO/IEC 8859-1.
func Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	enc, data, singleByte := selectTable(b)
	if singleByte {
		data = stripControlCodes(data)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return cleanup(string(out))
}

func selectTable(b []byte) (enc encoding.Encoding, data []byte, singleByte bool) {
	sel := b[0]
	switch {
	case sel >= 0x20:
		return charmap.ISO8859_1, b, true
	case sel >= 0x01 && sel <= 0x0b:
		if e, ok := iso8859[sel+4]; ok {
			return e, b[1:], true
		}
	case sel == selectorISO8859:
		if len(b) >= 3 {
			if e, ok := iso8859[b[2]]; ok {
				return e, b[3:], true
			}
			return charmap.ISO8859_1, b[3:], true
		}
		return charmap.ISO8859_1, nil, true
	case sel == selectorUCS2:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), b[1:], false
	case sel == selectorKSX1001:
		return korean.EUCKR, b[1:], false
	case sel == selectorGB2312:
		return simplifiedchinese.GBK, b[1:], false
	case sel == selectorBig5:
		return traditionalchinese.Big5, b[1:], false
	case sel == selectorUTF8:
		return unicode.UTF8, b[1:], false
	case sel == selectorEncodingTypeID:
		if len(b) >= 2 {
			return charmap.ISO8859_1, b[2:], true
		}
		return charmap.ISO8859_1, nil, true
	}
	// Reserved selector
	return charmap.ISO8859_1, b[1:], true
}

// stripControlCodes handles the single byte control codes 0x80-0x9f.
func stripControlCodes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, c := range data {
		switch {
		case c == 0x8a:
			out = append(out, ' ')
		case c >= 0x80 && c <= 0x9f:
		default:
			out = append(out, c)
		}
	}
	return out
}

// cleanup applies the control code rules to multi-byte results, where the
// codes live at U+E080-U+E09F, and folds line breaks.
func cleanup(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 0xe08a, r == '\n', r == '\r':
			return ' '
		case r >= 0xe080 && r <= 0xe09f:
			return -1
		}
		return r
	}, s)
}
