// Package raster provides a raster backend for the recording system.
// It renders metafile replays and recordings to pixel images using
// gg.Context.
//
// # Supported Features
//
//   - Solid color and image pattern fills
//   - Polygons with even-odd and non-zero fill rules
//   - Rectangles, rounded rectangles, ellipses, arcs, chords and pies
//   - Pen width and dash patterns
//   - Text with alignment, rotation, opaque background and clipping
//   - Bitmap blits with source cropping and scaling
//   - State management (PushState/PopState)
//   - PNG output
//
// # Limitations
//
// Text is drawn with the Go fonts. Families whose name suggests a fixed
// pitch use Go Mono, every other family uses Go Regular, in the bold and
// italic variants the run asks for.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/gg-wmf/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	backend.Begin(size.X, size.Y)
//	wmf.Replay(mf, backend)
//	backend.End()
//
//	// Get output
//	backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	wmf "github.com/gogpu/gg-wmf"
	"github.com/gogpu/gg-wmf/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

var errNotStarted = errors.New("raster: Begin was not called")

// arcSegments is the number of line segments an arc is flattened into.
const arcSegments = 64

// Backend renders to a pixel image using gg.Context.
// It implements recording.Backend, recording.WriterBackend and
// recording.ImageBackend.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
	pos    wmf.Point
	depth  int

	fonts    *fontCache
	patterns map[*image.RGBA]*gg.ImageBuf
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{
		fonts:    newFontCache(),
		patterns: make(map[*image.RGBA]*gg.ImageBuf),
	}
}

// Begin initializes the backend for rendering at the given dimensions.
// The canvas starts fully transparent.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.pos = wmf.Point{}
	b.depth = 0
	clear(b.patterns)
	return nil
}

// End finalizes the rendering. Unbalanced PushState calls are popped.
func (b *Backend) End() error {
	if b.ctx == nil {
		return nil
	}
	for ; b.depth > 0; b.depth-- {
		b.ctx.Pop()
	}
	return nil
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, errNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SavePNG is a convenience method to save the image as PNG.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the caller
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// --------------------------------------------------------------------------
// wmf.Surface
// --------------------------------------------------------------------------

// PushState saves the current clip and transform.
func (b *Backend) PushState() {
	if b.ctx == nil {
		return
	}
	b.ctx.Push()
	b.depth++
}

// PopState restores the state saved by the matching PushState.
func (b *Backend) PopState() {
	if b.ctx == nil || b.depth == 0 {
		return
	}
	b.ctx.Pop()
	b.depth--
}

// MoveTo moves the current position.
func (b *Backend) MoveTo(p wmf.Point) {
	b.pos = p
}

// LineTo strokes a segment from the current position to p.
func (b *Backend) LineTo(p wmf.Point, pen wmf.Pen) {
	if b.ctx != nil {
		b.ctx.MoveTo(b.pos.X, b.pos.Y)
		b.ctx.LineTo(p.X, p.Y)
		b.stroke(pen)
	}
	b.pos = p
}

// FillPolygon fills rings as one shape.
func (b *Backend) FillPolygon(rings [][]wmf.Point, rule wmf.FillRule, paint wmf.Paint) {
	if b.ctx == nil {
		return
	}
	for _, ring := range rings {
		b.polyline(ring, true)
	}
	b.ctx.SetFillRule(convertFillRule(rule))
	b.fill(paint)
}

// StrokePolygon strokes a polyline, closing it when closed is set.
func (b *Backend) StrokePolygon(points []wmf.Point, closed bool, pen wmf.Pen) {
	if b.ctx == nil {
		return
	}
	b.polyline(points, closed)
	b.stroke(pen)
}

// FillRect fills a rectangle.
func (b *Backend) FillRect(r wmf.Rect, paint wmf.Paint) {
	if b.ctx == nil {
		return
	}
	b.ctx.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	b.fill(paint)
}

// StrokeRect strokes a rectangle outline.
func (b *Backend) StrokeRect(r wmf.Rect, pen wmf.Pen) {
	if b.ctx == nil {
		return
	}
	b.ctx.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	b.stroke(pen)
}

// FillRoundRect fills a rounded rectangle.
func (b *Backend) FillRoundRect(r wmf.Rect, cornerW, cornerH float64, paint wmf.Paint) {
	if b.ctx == nil {
		return
	}
	b.ctx.DrawRoundedRectangle(r.MinX, r.MinY, r.Width(), r.Height(), cornerRadius(r, cornerW, cornerH))
	b.fill(paint)
}

// StrokeRoundRect strokes a rounded rectangle outline.
func (b *Backend) StrokeRoundRect(r wmf.Rect, cornerW, cornerH float64, pen wmf.Pen) {
	if b.ctx == nil {
		return
	}
	b.ctx.DrawRoundedRectangle(r.MinX, r.MinY, r.Width(), r.Height(), cornerRadius(r, cornerW, cornerH))
	b.stroke(pen)
}

// FillEllipse fills the ellipse inscribed in r.
func (b *Backend) FillEllipse(r wmf.Rect, paint wmf.Paint) {
	if b.ctx == nil {
		return
	}
	c := r.Center()
	b.ctx.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	b.fill(paint)
}

// StrokeEllipse strokes the ellipse inscribed in r.
func (b *Backend) StrokeEllipse(r wmf.Rect, pen wmf.Pen) {
	if b.ctx == nil {
		return
	}
	c := r.Center()
	b.ctx.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	b.stroke(pen)
}

// DrawArc strokes an arc. Chords and pies are closed.
func (b *Backend) DrawArc(a wmf.Arc, pen wmf.Pen) {
	if b.ctx == nil {
		return
	}
	b.polyline(a.Points(arcSegments), a.Closed())
	b.stroke(pen)
}

// FillArc fills a chord or pie.
func (b *Backend) FillArc(a wmf.Arc, paint wmf.Paint) {
	if b.ctx == nil {
		return
	}
	b.polyline(a.Points(arcSegments), true)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	b.fill(paint)
}

// BlitImage draws the src region of img scaled into dst.
func (b *Backend) BlitImage(img image.Image, src image.Rectangle, dst wmf.Rect) {
	if b.ctx == nil || img == nil {
		return
	}
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.IsEmpty() {
		return
	}
	b.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         dst.MinX,
		Y:         dst.MinY,
		DstWidth:  dst.Width(),
		DstHeight: dst.Height(),
		SrcRect:   &src,
		Opacity:   1,
		BlendMode: gg.BlendNormal,
	})
}

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

func (b *Backend) polyline(points []wmf.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	b.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.ctx.LineTo(p.X, p.Y)
	}
	if closed {
		b.ctx.ClosePath()
	}
}

func (b *Backend) fill(paint wmf.Paint) {
	if paint.Pattern != nil {
		buf := b.patternBuf(paint.Pattern)
		w, h := buf.Bounds()
		b.ctx.SetFillPattern(b.ctx.CreateImagePattern(buf, 0, 0, w, h))
	} else {
		b.ctx.SetColor(paint.Color)
	}
	if err := b.ctx.Fill(); err != nil {
		wmf.Logger().Debug("wmf: raster fill failed", "err", err)
	}
}

func (b *Backend) stroke(pen wmf.Pen) {
	b.ctx.SetColor(pen.Color)
	b.ctx.SetLineWidth(pen.Width)
	if len(pen.Dash) > 0 {
		b.ctx.SetDash(pen.Dash...)
	} else {
		b.ctx.ClearDash()
	}
	if err := b.ctx.Stroke(); err != nil {
		wmf.Logger().Debug("wmf: raster stroke failed", "err", err)
	}
}

// patternBuf converts a pattern tile once per Begin.
func (b *Backend) patternBuf(img image.Image) *gg.ImageBuf {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		return gg.ImageBufFromImage(img)
	}
	if buf, ok := b.patterns[rgba]; ok {
		return buf
	}
	buf := gg.ImageBufFromImage(rgba)
	b.patterns[rgba] = buf
	return buf
}

// cornerRadius converts the corner ellipse size of a rounded rectangle
// to the single radius gg draws with.
func cornerRadius(r wmf.Rect, cornerW, cornerH float64) float64 {
	radius := math.Min(cornerW, cornerH) / 2
	return math.Min(radius, math.Min(r.Width(), r.Height())/2)
}

// convertFillRule converts wmf.FillRule to gg.FillRule.
func convertFillRule(rule wmf.FillRule) gg.FillRule {
	switch rule {
	case wmf.FillNonZero:
		return gg.FillRuleNonZero
	default:
		return gg.FillRuleEvenOdd
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
