// Package charset decodes the byte strings of metafile text records
// according to the LOGFONT character set of the selected font.
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// LOGFONT character set identifiers.
const (
	ANSI        uint8 = 0
	Default     uint8 = 1
	Symbol      uint8 = 2
	ShiftJIS    uint8 = 128
	Hangul      uint8 = 129
	GB2312      uint8 = 134
	ChineseBig5 uint8 = 136
	Greek       uint8 = 161
	Turkish     uint8 = 162
	Vietnamese  uint8 = 163
	Hebrew      uint8 = 177
	Arabic      uint8 = 178
	Baltic      uint8 = 186
	Russian     uint8 = 204
	Thai        uint8 = 222
	EastEurope  uint8 = 238
	OEM         uint8 = 255
)

var encodings = map[uint8]encoding.Encoding{
	ANSI:        charmap.Windows1252,
	Default:     charmap.Windows1252,
	Symbol:      charmap.ISO8859_1,
	ShiftJIS:    japanese.ShiftJIS,
	Hangul:      korean.EUCKR,
	GB2312:      simplifiedchinese.GBK,
	ChineseBig5: traditionalchinese.Big5,
	Greek:       charmap.Windows1253,
	Turkish:     charmap.Windows1254,
	Vietnamese:  charmap.Windows1258,
	Hebrew:      charmap.Windows1255,
	Arabic:      charmap.Windows1256,
	Baltic:      charmap.Windows1257,
	Russian:     charmap.Windows1251,
	Thai:        charmap.Windows874,
	EastEurope:  charmap.Windows1250,
	OEM:         charmap.CodePage437,
}

// Encoding returns the encoding for a character set. Unknown sets fall
// back to Windows-1252.
func Encoding(cs uint8) encoding.Encoding {
	if enc, ok := encodings[cs]; ok {
		return enc
	}
	return charmap.Windows1252
}

// Known reports whether cs has a dedicated decoder.
func Known(cs uint8) bool {
	_, ok := encodings[cs]
	return ok
}

// Decode converts b from character set cs to UTF-8. Bytes that cannot
// be decoded become U+FFFD.
func Decode(cs uint8, b []byte) string {
	out, err := Encoding(cs).NewDecoder().Bytes(b)
	if err != nil {
		out, _ = charmap.ISO8859_1.NewDecoder().Bytes(b)
	}
	return string(out)
}
