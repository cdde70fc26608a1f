package wmf

import (
	"testing"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/gg-wmf/internal/charset"
)

func TestTextAlign(t *testing.T) {
	tests := []struct {
		flags    uint16
		align    TextAlign
		baseline TextBaseline
	}{
		{0, AlignLeft, BaselineTop},
		{taUpdateCP, AlignLeft, BaselineTop},
		{taRight, AlignRight, BaselineTop},
		{taRight | taUpdateCP, AlignRight, BaselineTop},
		{taCenter, AlignCenter, BaselineTop},
		{taBottom, AlignLeft, BaselineBottom},
		{taRight | taBottom, AlignRight, BaselineBottom},
		{taBaseline, AlignLeft, BaselineAlphabetic},
		{taCenter | taBaseline, AlignCenter, BaselineAlphabetic},
		{taCenter | taBaseline | taUpdateCP, AlignCenter, BaselineAlphabetic},
	}
	for _, tt := range tests {
		if got := horizontalAlign(tt.flags); got != tt.align {
			t.Errorf("horizontalAlign(%#x) = %v, want %v", tt.flags, got, tt.align)
		}
		if got := verticalAlign(tt.flags); got != tt.baseline {
			t.Errorf("verticalAlign(%#x) = %v, want %v", tt.flags, got, tt.baseline)
		}
	}
}

func TestLogFontFamily(t *testing.T) {
	tests := []struct {
		name    string
		face    []byte
		charset uint8
		want    string
	}{
		{"plain", []byte("Arial"), charset.ANSI, "Arial"},
		{"spaces kept", []byte("Times New Roman"), charset.ANSI, "Times New Roman"},
		{"cut at control byte", []byte("Arial\x01\x02junk"), charset.ANSI, "Arial"},
		{"cut at punctuation", []byte("Symbol-Bold"), charset.ANSI, "Symbol"},
		{"empty", nil, charset.ANSI, DefaultFamily},
		{"blank", []byte("   "), charset.ANSI, DefaultFamily},
		{"cyrillic", []byte{0xC0, 0xF0, 0xE8, 0xE0, 0xEB}, charset.Russian, "Ариал"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := LogFont{FaceName: tt.face, CharSet: tt.charset}
			if got := f.Family(); got != tt.want {
				t.Errorf("Family() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogFontAspect(t *testing.T) {
	tests := []struct {
		f      LogFont
		weight font.Weight
		style  font.Style
		bold   bool
	}{
		{LogFont{}, font.WeightNormal, font.StyleNormal, false},
		{LogFont{Weight: 400}, font.WeightNormal, font.StyleNormal, false},
		{LogFont{Weight: 700}, font.WeightBold, font.StyleNormal, true},
		{LogFont{Weight: 300, Italic: 1}, font.Weight(300), font.StyleItalic, false},
	}
	for _, tt := range tests {
		a := tt.f.Aspect()
		if a.Weight != tt.weight || a.Style != tt.style {
			t.Errorf("Aspect() of %+v = %+v, want weight %v style %v", tt.f, a, tt.weight, tt.style)
		}
		if a.Stretch != font.StretchNormal {
			t.Errorf("Aspect().Stretch = %v, want normal", a.Stretch)
		}
		if got := tt.f.Bold(); got != tt.bold {
			t.Errorf("Bold() of weight %d = %v, want %v", tt.f.Weight, got, tt.bold)
		}
	}
}

func TestFontSpec(t *testing.T) {
	twips := NewMapping(header(0, 0, 1440, 1440, 1440), NewConfig())
	pixels := NewMapping(header(0, 0, 100, 100, 96), NewConfig(WithScale(2)))

	tests := []struct {
		name string
		f    LogFont
		m    *Mapping
		upi  float64
		want float64
	}{
		{"cell height", LogFont{Height: 240}, twips, 1440, 16},
		{"character height", LogFont{Height: -240}, twips, 1440, 16},
		{"default height", LogFont{}, twips, 1440, 16},
		{"scaled", LogFont{Height: 10}, pixels, 96, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := fontSpec(tt.f, tt.m, tt.upi)
			if !near(spec.Size, tt.want) {
				t.Errorf("Size = %v, want %v", spec.Size, tt.want)
			}
			if spec.Family != DefaultFamily {
				t.Errorf("Family = %q, want %q", spec.Family, DefaultFamily)
			}
		})
	}

	spec := fontSpec(LogFont{Height: 20, Underline: 1, StrikeOut: 1, CharSet: charset.Greek}, pixels, 96)
	if !spec.Underline || !spec.StrikeOut || spec.Charset != charset.Greek {
		t.Errorf("fontSpec() = %+v, want underline, strikeout and the Greek charset", spec)
	}
}

func TestLogFontDecode(t *testing.T) {
	tests := []struct {
		charset uint8
		text    []byte
		want    string
	}{
		{charset.ANSI, []byte("caf\xe9"), "café"},
		{charset.Russian, []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}, "Привет"},
		{charset.Greek, []byte{0xE1, 0xE2, 0xE3}, "αβγ"},
	}
	for _, tt := range tests {
		f := LogFont{CharSet: tt.charset}
		if got := f.Decode(tt.text); got != tt.want {
			t.Errorf("Decode(%x) with charset %d = %q, want %q", tt.text, tt.charset, got, tt.want)
		}
	}
}
