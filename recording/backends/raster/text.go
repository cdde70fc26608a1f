package raster

import (
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/f64"

	wmf "github.com/gogpu/gg-wmf"
)

// variant indexes the Go font files.
type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
	mono
	monoBold
	monoItalic
	monoBoldItalic
	numVariants
)

var fontData = [numVariants][]byte{
	regular:        goregular.TTF,
	bold:           gobold.TTF,
	italic:         goitalic.TTF,
	boldItalic:     gobolditalic.TTF,
	mono:           gomono.TTF,
	monoBold:       gomonobold.TTF,
	monoItalic:     gomonoitalic.TTF,
	monoBoldItalic: gomonobolditalic.TTF,
}

// monoFamilies are substrings of family names drawn with Go Mono.
var monoFamilies = []string{"courier", "mono", "consol", "fixed", "terminal"}

// pickVariant maps a font spec to one of the Go fonts.
func pickVariant(spec wmf.FontSpec) variant {
	v := regular
	family := strings.ToLower(spec.Family)
	for _, m := range monoFamilies {
		if strings.Contains(family, m) {
			v = mono
			break
		}
	}
	if spec.Aspect.Weight > font.WeightNormal {
		v++
	}
	if spec.Aspect.Style == font.StyleItalic {
		v += 2
	}
	return v
}

type faceKey struct {
	v    variant
	size float64
}

// fontCache parses each Go font once and keeps faces per size.
type fontCache struct {
	mu      sync.Mutex
	sources [numVariants]*text.FontSource
	faces   map[faceKey]text.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[faceKey]text.Face)}
}

func (c *fontCache) face(spec wmf.FontSpec) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{v: pickVariant(spec), size: spec.Size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	src := c.sources[key.v]
	if src == nil {
		var err error
		src, err = text.NewFontSource(fontData[key.v])
		if err != nil {
			return nil, fmt.Errorf("raster: load font variant %d: %w", key.v, err)
		}
		c.sources[key.v] = src
	}
	f := src.Face(spec.Size)
	c.faces[key] = f
	return f, nil
}

// DrawText draws a text run. Rotated or clipped runs are drawn into a
// transparent layer first, which is then rotated about the run origin
// and composited through the clip rectangle.
func (b *Backend) DrawText(run wmf.TextRun) {
	if b.ctx == nil || run.Text == "" || run.Font.Size <= 0 {
		return
	}
	face, err := b.fonts.face(run.Font)
	if err != nil {
		wmf.Logger().Debug("wmf: raster font unavailable", "family", run.Font.Family, "err", err)
		return
	}

	width := face.Advance(run.Text)
	m := face.Metrics()
	x := run.Origin.X
	switch run.Align {
	case wmf.AlignCenter:
		x -= width / 2
	case wmf.AlignRight:
		x -= width
	}
	baseline := run.Origin.Y
	switch run.Baseline {
	case wmf.BaselineTop:
		baseline += m.Ascent
	case wmf.BaselineBottom:
		baseline -= m.Descent
	}

	if run.Rotation == 0 && run.Clip == nil {
		drawRun(b.ctx, run, face, x, baseline, width)
		return
	}

	layer := gg.NewContext(b.width, b.height)
	drawRun(layer, run, face, x, baseline, width)
	img := layer.Image()
	if run.Rotation != 0 {
		img = rotate(img, run.Rotation, run.Origin)
	}

	opts := gg.DrawImageOptions{Opacity: 1, BlendMode: gg.BlendNormal}
	if run.Clip != nil {
		r := deviceRect(*run.Clip).Intersect(img.Bounds())
		if r.Empty() {
			return
		}
		opts.SrcRect = &r
		opts.X, opts.Y = float64(r.Min.X), float64(r.Min.Y)
	}
	b.ctx.DrawImageEx(gg.ImageBufFromImage(img), opts)
}

// drawRun draws the background box, glyphs and decorations of run
// unrotated with the left end of its baseline at (x, baseline).
func drawRun(dc *gg.Context, run wmf.TextRun, face text.Face, x, baseline, width float64) {
	m := face.Metrics()
	if run.Background != nil {
		dc.SetColor(*run.Background)
		dc.DrawRectangle(x, baseline-m.Ascent, width, m.Ascent+m.Descent)
		_ = dc.Fill()
	}

	dc.SetFont(face)
	dc.SetColor(run.Color)
	dc.DrawString(run.Text, x, baseline)

	thickness := math.Max(run.Font.Size/14, 1)
	if run.Font.Underline {
		dc.DrawRectangle(x, baseline+m.Descent/2, width, thickness)
		_ = dc.Fill()
	}
	if run.Font.StrikeOut {
		mid := m.XHeight / 2
		if mid <= 0 {
			mid = m.Ascent / 3
		}
		dc.DrawRectangle(x, baseline-mid, width, thickness)
		_ = dc.Fill()
	}
}

// rotate turns img counter-clockwise by deg degrees about center.
func rotate(img image.Image, deg float64, center wmf.Point) image.Image {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	cx, cy := center.X, center.Y
	s2d := f64.Aff3{
		cos, sin, cx - cx*cos - cy*sin,
		-sin, cos, cy + cx*sin - cy*cos,
	}
	dst := image.NewRGBA(img.Bounds())
	draw.BiLinear.Transform(dst, s2d, img, img.Bounds(), draw.Over, nil)
	return dst
}

// deviceRect rounds r outward to whole pixels.
func deviceRect(r wmf.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)),
	)
}
