package wmf

// Mapping is the window/viewport state of a replay and the transform
// from logical coordinates to device pixels it implies.
//
//	device = (logical - windowOrg + offset) * scale
//	scale  = dpi / unitsPerInch * userScale * frameExtent / windowExtent
//
// The frame is the placeable header's logical rectangle. Until the
// stream sets them, the window origin is the frame's top-left corner and
// the window extent is the frame size, so the default scale is
// dpi / unitsPerInch. Viewport values are tracked for callers but, as on
// a placeable metafile's nominal device, do not change the scale.
//
// Scales are derived on each query; nothing is cached across mapping
// records.
type Mapping struct {
	dpi       float64
	units     float64
	userScale float64
	offsetX   float64
	offsetY   float64
	frameW    float64
	frameH    float64

	WindowOrgX, WindowOrgY     float64
	WindowExtX, WindowExtY     float64
	ViewportOrgX, ViewportOrgY float64
	ViewportExtX, ViewportExtY float64
}

// NewMapping returns the initial mapping for a metafile with header h.
func NewMapping(h Header, cfg Config) *Mapping {
	b := h.Bounds()
	m := &Mapping{
		dpi:       cfg.DPI,
		units:     h.Units(),
		userScale: cfg.Scale,
		offsetX:   cfg.OffsetX,
		offsetY:   cfg.OffsetY,
		frameW:    float64(b.Dx()),
		frameH:    float64(b.Dy()),
	}
	m.WindowOrgX, m.WindowOrgY = float64(b.Min.X), float64(b.Min.Y)
	m.WindowExtX, m.WindowExtY = m.frameW, m.frameH
	m.ViewportExtX, m.ViewportExtY = m.frameW, m.frameH
	return m
}

// base returns the device pixels per metafile unit before window scaling.
func (m *Mapping) base() float64 {
	return m.dpi / m.units * m.userScale
}

// ScaleX returns the device pixels per logical unit along x.
// A zero window extent falls back to the frame width.
func (m *Mapping) ScaleX() float64 {
	return m.base() * axisRatio(m.frameW, m.WindowExtX)
}

// ScaleY returns the device pixels per logical unit along y.
func (m *Mapping) ScaleY() float64 {
	return m.base() * axisRatio(m.frameH, m.WindowExtY)
}

func axisRatio(frame, ext float64) float64 {
	if ext == 0 || frame == 0 {
		return 1
	}
	return frame / ext
}

// X maps a logical x coordinate to device pixels.
func (m *Mapping) X(x float64) float64 {
	return (x - m.WindowOrgX + m.offsetX) * m.ScaleX()
}

// Y maps a logical y coordinate to device pixels.
func (m *Mapping) Y(y float64) float64 {
	return (y - m.WindowOrgY + m.offsetY) * m.ScaleY()
}

// Point maps a logical point to device pixels.
func (m *Mapping) Point(x, y int16) Point {
	return Point{X: m.X(float64(x)), Y: m.Y(float64(y))}
}

// Rect maps two logical corners to a normalized device rectangle.
func (m *Mapping) Rect(x1, y1, x2, y2 int16) Rect {
	p, q := m.Point(x1, y1), m.Point(x2, y2)
	return NewRectFromPoints(p.X, p.Y, q.X, q.Y)
}

// DX maps a logical length along x to device pixels, keeping its sign.
func (m *Mapping) DX(dx float64) float64 {
	return dx * m.ScaleX()
}

// DY maps a logical length along y to device pixels, keeping its sign.
func (m *Mapping) DY(dy float64) float64 {
	return dy * m.ScaleY()
}

// FramePixels returns the device size of the placeable frame.
func (m *Mapping) FramePixels() (w, h float64) {
	return m.frameW * m.base(), m.frameH * m.base()
}

// SetWindowOrg handles SetWindowOrg.
func (m *Mapping) SetWindowOrg(x, y int16) {
	m.WindowOrgX, m.WindowOrgY = float64(x), float64(y)
}

// SetWindowExt handles SetWindowExt.
func (m *Mapping) SetWindowExt(x, y int16) {
	m.WindowExtX, m.WindowExtY = float64(x), float64(y)
}

// OffsetWindowOrg handles OffsetWindowOrg.
func (m *Mapping) OffsetWindowOrg(dx, dy int16) {
	m.WindowOrgX += float64(dx)
	m.WindowOrgY += float64(dy)
}

// ScaleWindowExt handles ScaleWindowExt. Zero denominators leave the
// axis unchanged.
func (m *Mapping) ScaleWindowExt(xNum, xDenom, yNum, yDenom int16) {
	if xDenom != 0 {
		m.WindowExtX = m.WindowExtX * float64(xNum) / float64(xDenom)
	}
	if yDenom != 0 {
		m.WindowExtY = m.WindowExtY * float64(yNum) / float64(yDenom)
	}
}

// SetViewportOrg handles SetViewportOrg.
func (m *Mapping) SetViewportOrg(x, y int16) {
	m.ViewportOrgX, m.ViewportOrgY = float64(x), float64(y)
}

// SetViewportExt handles SetViewportExt.
func (m *Mapping) SetViewportExt(x, y int16) {
	m.ViewportExtX, m.ViewportExtY = float64(x), float64(y)
}

// OffsetViewportOrg handles OffsetViewportOrg.
func (m *Mapping) OffsetViewportOrg(dx, dy int16) {
	m.ViewportOrgX += float64(dx)
	m.ViewportOrgY += float64(dy)
}

// ScaleViewportExt handles ScaleViewportExt.
func (m *Mapping) ScaleViewportExt(xNum, xDenom, yNum, yDenom int16) {
	if xDenom != 0 {
		m.ViewportExtX = m.ViewportExtX * float64(xNum) / float64(xDenom)
	}
	if yDenom != 0 {
		m.ViewportExtY = m.ViewportExtY * float64(yNum) / float64(yDenom)
	}
}

// apply updates m from a mapping record. It reports false for records
// that do not affect the mapping.
func (m *Mapping) apply(r *MetaRecord) bool {
	switch r.Function {
	case OpSetWindowOrg:
		m.SetWindowOrg(r.Int16(1), r.Int16(0))
	case OpSetWindowExt:
		m.SetWindowExt(r.Int16(1), r.Int16(0))
	case OpOffsetWindowOrg:
		m.OffsetWindowOrg(r.Int16(1), r.Int16(0))
	case OpScaleWindowExt:
		m.ScaleWindowExt(r.Int16(3), r.Int16(2), r.Int16(1), r.Int16(0))
	case OpSetViewportOrg:
		m.SetViewportOrg(r.Int16(1), r.Int16(0))
	case OpSetViewportExt:
		m.SetViewportExt(r.Int16(1), r.Int16(0))
	case OpOffsetViewportOrg:
		m.OffsetViewportOrg(r.Int16(1), r.Int16(0))
	case OpScaleViewportExt:
		m.ScaleViewportExt(r.Int16(3), r.Int16(2), r.Int16(1), r.Int16(0))
	default:
		return false
	}
	return true
}
