package wmf

import "math"

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in device pixels.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// NewRectFromPoints creates a rectangle from two corner points.
// The points are normalized so Min <= Max.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// ArcKind selects how an elliptical arc is closed.
type ArcKind uint8

const (
	ArcOpen  ArcKind = iota // Arc: the curve alone
	ArcChord                // Chord: closed by the chord between the end points
	ArcPie                  // Pie: closed through the center
)

// Arc is a section of the ellipse inscribed in Bounds.
//
// Start and Extent are in degrees, measured counter-clockwise as seen on
// screen from the positive x axis, in the parameter space of the
// ellipse. Extent is in [0, 360).
type Arc struct {
	Bounds Rect
	Start  float64
	Extent float64
	Kind   ArcKind
}

// newArc derives the arc from its bounding box and the two radial end
// points, in device coordinates.
func newArc(bounds Rect, start, end Point, kind ArcKind) Arc {
	c := bounds.Center()
	rx, ry := bounds.Width()/2, bounds.Height()/2
	a0 := ellipseAngle(start, c, rx, ry)
	a1 := ellipseAngle(end, c, rx, ry)
	extent := a1 - a0
	if extent < 0 {
		extent += 360
	}
	if a0 < 0 {
		a0 += 360
	}
	return Arc{Bounds: bounds, Start: a0, Extent: extent, Kind: kind}
}

// ellipseAngle returns the counter-clockwise angle in degrees of the ray
// from c through p, expressed in the ellipse parameter space.
func ellipseAngle(p, c Point, rx, ry float64) float64 {
	dx, dy := p.X-c.X, p.Y-c.Y
	if rx > 0 && ry > 0 {
		dx, dy = dx/rx, dy/ry
	}
	return -math.Atan2(dy, dx) * 180 / math.Pi
}

// PointAt returns the point of the ellipse at angle deg.
func (a Arc) PointAt(deg float64) Point {
	c := a.Bounds.Center()
	rad := deg * math.Pi / 180
	return Point{
		X: c.X + a.Bounds.Width()/2*math.Cos(rad),
		Y: c.Y - a.Bounds.Height()/2*math.Sin(rad),
	}
}

// Points flattens the arc into a polyline with at least segments
// segments. Chords repeat no extra point; pies end with the center.
func (a Arc) Points(segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, 0, segments+2)
	for i := 0; i <= segments; i++ {
		pts = append(pts, a.PointAt(a.Start+a.Extent*float64(i)/float64(segments)))
	}
	if a.Kind == ArcPie {
		pts = append(pts, a.Bounds.Center())
	}
	return pts
}

// Closed reports whether the outline of the arc is a closed shape.
func (a Arc) Closed() bool {
	return a.Kind != ArcOpen
}
