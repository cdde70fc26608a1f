package wmf

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/gg-wmf/internal/charset"
)

// DefaultFamily is the family of text drawn without a usable face name.
const DefaultFamily = "System"

// defaultFontPoints is the size of a font whose LOGFONT height is zero.
const defaultFontPoints = 12

// horizontalAlign extracts left, center or right from SetTextAlign flags.
// The vertical bits (top, bottom, baseline) are removed first.
func horizontalAlign(flags uint16) TextAlign {
	v := flags % taBaseline % taBottom
	switch {
	case v >= taCenter:
		return AlignCenter
	case v >= taRight:
		return AlignRight
	}
	return AlignLeft
}

// verticalAlign extracts top, bottom or baseline from SetTextAlign flags.
func verticalAlign(flags uint16) TextBaseline {
	switch flags & taBaseline {
	case taBaseline:
		return BaselineAlphabetic
	case taBottom:
		return BaselineBottom
	}
	return BaselineTop
}

// Family decodes the face name of f. The name is cut at the first
// character that is not a letter, digit or space; an empty result is
// replaced by DefaultFamily.
func (f LogFont) Family() string {
	name := charset.Decode(f.CharSet, f.FaceName)
	if i := strings.IndexFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' '
	}); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFamily
	}
	return name
}

// Aspect returns the typesetting style and weight of f.
func (f LogFont) Aspect() font.Aspect {
	a := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}
	if f.Weight > 0 {
		a.Weight = font.Weight(f.Weight)
	}
	if f.Italic != 0 {
		a.Style = font.StyleItalic
	}
	return a
}

// Bold reports whether f is heavier than a normal weight.
func (f LogFont) Bold() bool {
	return f.Weight > fwNormal
}

// fontSpec converts f to device units under mapping m. A zero height
// selects a 12 point font.
func fontSpec(f LogFont, m *Mapping, unitsPerInch float64) FontSpec {
	height := math.Abs(float64(f.Height))
	if height == 0 {
		height = unitsPerInch * defaultFontPoints / 72
	}
	return FontSpec{
		Family:    f.Family(),
		Size:      height * math.Abs(m.ScaleY()),
		Aspect:    f.Aspect(),
		Underline: f.Underline != 0,
		StrikeOut: f.StrikeOut != 0,
		Charset:   f.CharSet,
	}
}

// advance returns the current position after run is drawn with
// TA_UPDATECP. The run width is estimated from the font's average
// character width, or half the font size when it declares none.
// Centered runs leave the position unchanged.
func advance(run TextRun, f LogFont, m *Mapping) Point {
	w := math.Abs(m.DX(float64(f.Width)))
	if w == 0 {
		w = run.Font.Size / 2
	}
	d := w * float64(utf8.RuneCountInString(run.Text))
	switch run.Align {
	case AlignCenter:
		return run.Origin
	case AlignRight:
		d = -d
	}
	rad := run.Rotation * math.Pi / 180
	return Point{
		X: run.Origin.X + d*math.Cos(rad),
		Y: run.Origin.Y - d*math.Sin(rad),
	}
}

// Decode converts the text of a string record to UTF-8 using the
// character set of f.
func (f LogFont) Decode(text []byte) string {
	return charset.Decode(f.CharSet, text)
}
