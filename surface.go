package wmf

import (
	"image"
	"image/color"

	"github.com/go-text/typesetting/font"
)

// Color is an opaque RGB color decoded from a COLORREF.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Black = Color{}
)

// ColorFromRef decodes a packed COLORREF (0x00BBGGRR).
// The flags byte is ignored.
func ColorFromRef(ref uint32) Color {
	return Color{R: uint8(ref), G: uint8(ref >> 8), B: uint8(ref >> 16)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// IsWhite reports whether c is pure white.
func (c Color) IsWhite() bool {
	return c == White
}

// Paint is what a shape is filled with: a solid Color, or a Pattern
// image tiled from the device origin when Pattern is non-nil.
type Paint struct {
	Color   Color
	Pattern image.Image
}

// SolidPaint returns a paint of a single color.
func SolidPaint(c Color) Paint {
	return Paint{Color: c}
}

// IsWhite reports whether p is a solid white paint.
func (p Paint) IsWhite() bool {
	return p.Pattern == nil && p.Color.IsWhite()
}

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillEvenOdd uses the even-odd rule (ALTERNATE).
	FillEvenOdd FillRule = iota
	// FillNonZero uses the non-zero winding rule (WINDING).
	FillNonZero
)

// Pen describes how outlines are stroked, in device pixels.
type Pen struct {
	Color Color
	Width float64
	Style PenStyle

	// Dash holds alternating dash and gap lengths; nil draws solid.
	Dash []float64
}

// TextAlign is the horizontal placement of a text run around its origin.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical placement of a text run around its origin.
type TextBaseline int

const (
	BaselineTop TextBaseline = iota
	BaselineAlphabetic
	BaselineBottom
)

// FontSpec is the font a text run is drawn with.
type FontSpec struct {
	// Family is the decoded face name, "System" when the metafile names none.
	Family string

	// Size is the em height in device pixels.
	Size float64

	Aspect    font.Aspect
	Underline bool
	StrikeOut bool
	Charset   uint8
}

// TextRun is one decoded string placed in device space.
type TextRun struct {
	Text   string
	Origin Point

	// Rotation is the counter-clockwise angle of the baseline in degrees.
	Rotation float64

	Align    TextAlign
	Baseline TextBaseline
	Font     FontSpec
	Color    Color

	// Background, when non-nil, fills the text box before the glyphs.
	Background *Color

	// Clip, when non-nil, limits the run to a device rectangle.
	Clip *Rect
}

// Surface is the abstract drawing target of Replay. All coordinates
// are in device pixels with y growing downward.
//
// Replay calls a Surface from a single goroutine. Implementations need
// not be safe for concurrent use.
type Surface interface {
	// MoveTo moves the current pen position without drawing.
	MoveTo(p Point)

	// LineTo strokes a segment from the current pen position to p and
	// makes p the current position.
	LineTo(p Point, pen Pen)

	// FillPolygon fills one or more closed rings as a single shape.
	FillPolygon(rings [][]Point, rule FillRule, paint Paint)

	// StrokePolygon strokes a polyline, closing it when closed is true.
	StrokePolygon(points []Point, closed bool, pen Pen)

	FillRect(r Rect, paint Paint)
	StrokeRect(r Rect, pen Pen)

	// FillRoundRect and StrokeRoundRect draw a rectangle whose corners
	// are quarter ellipses of the given width and height.
	FillRoundRect(r Rect, cornerW, cornerH float64, paint Paint)
	StrokeRoundRect(r Rect, cornerW, cornerH float64, pen Pen)

	FillEllipse(r Rect, paint Paint)
	StrokeEllipse(r Rect, pen Pen)

	// DrawArc strokes the outline of a, including the chord or the
	// radii when a is closed.
	DrawArc(a Arc, pen Pen)

	// FillArc fills a closed arc. It is never called for ArcOpen.
	FillArc(a Arc, paint Paint)

	DrawText(run TextRun)

	// BlitImage draws the src region of img scaled into dst.
	BlitImage(img image.Image, src image.Rectangle, dst Rect)

	// PushState and PopState bracket a SaveDC/RestoreDC pair.
	PushState()
	PopState()
}
