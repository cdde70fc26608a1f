package wmf

import (
	"testing"
)

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if c := r.Center(); c != (Point{X: 25, Y: 40}) {
		t.Errorf("Center() = %v, want (25,40)", c)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a 30x40 rect")
	}
	if !NewRect(5, 5, 0, 10).IsEmpty() {
		t.Error("IsEmpty() = false for a zero-width rect")
	}

	p := NewRectFromPoints(50, 60, 10, 20)
	if p != (Rect{MinX: 10, MinY: 20, MaxX: 50, MaxY: 60}) {
		t.Errorf("NewRectFromPoints() = %+v, want normalized", p)
	}

	u := r.Union(Rect{MinX: 0, MinY: 50, MaxX: 15, MaxY: 100})
	if u != (Rect{MinX: 0, MinY: 20, MaxX: 40, MaxY: 100}) {
		t.Errorf("Union() = %+v", u)
	}
}

func TestNewArc(t *testing.T) {
	bounds := Rect{MaxX: 200, MaxY: 100}
	tests := []struct {
		name       string
		start, end Point
		wantStart  float64
		wantExtent float64
	}{
		{"right to top", Point{X: 200, Y: 50}, Point{X: 100, Y: 0}, 0, 90},
		{"top to right wraps", Point{X: 100, Y: 0}, Point{X: 200, Y: 50}, 90, 270},
		{"left to bottom", Point{X: 0, Y: 50}, Point{X: 100, Y: 100}, 180, 90},
		{"bottom start normalized", Point{X: 100, Y: 100}, Point{X: 200, Y: 50}, 270, 90},
		{"radial outside the box", Point{X: 400, Y: 50}, Point{X: 100, Y: -300}, 0, 90},
		{"corner uses ellipse space", Point{X: 200, Y: 0}, Point{X: 0, Y: 0}, 45, 90},
		{"equal ends", Point{X: 200, Y: 50}, Point{X: 200, Y: 50}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArc(bounds, tt.start, tt.end, ArcOpen)
			if !near(a.Start, tt.wantStart) || !near(a.Extent, tt.wantExtent) {
				t.Errorf("newArc() start = %v extent = %v, want %v and %v", a.Start, a.Extent, tt.wantStart, tt.wantExtent)
			}
		})
	}
}

func TestArcPointAt(t *testing.T) {
	a := Arc{Bounds: Rect{MaxX: 200, MaxY: 100}}
	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Point{X: 200, Y: 50}},
		{90, Point{X: 100, Y: 0}},
		{180, Point{X: 0, Y: 50}},
		{270, Point{X: 100, Y: 100}},
	}
	for _, tt := range tests {
		got := a.PointAt(tt.deg)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("PointAt(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestArcPoints(t *testing.T) {
	bounds := Rect{MaxX: 100, MaxY: 100}
	tests := []struct {
		name     string
		kind     ArcKind
		segments int
		wantLen  int
		closed   bool
	}{
		{"open", ArcOpen, 8, 9, false},
		{"chord", ArcChord, 8, 9, true},
		{"pie ends at center", ArcPie, 8, 10, true},
		{"segments clamped", ArcOpen, 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Arc{Bounds: bounds, Start: 0, Extent: 90, Kind: tt.kind}
			pts := a.Points(tt.segments)
			if len(pts) != tt.wantLen {
				t.Fatalf("len(Points(%d)) = %d, want %d", tt.segments, len(pts), tt.wantLen)
			}
			if a.Closed() != tt.closed {
				t.Errorf("Closed() = %v, want %v", a.Closed(), tt.closed)
			}
			if first := pts[0]; !near(first.X, 100) || !near(first.Y, 50) {
				t.Errorf("first point = %v, want (100,50)", first)
			}
			last := pts[len(pts)-1]
			if tt.kind == ArcPie {
				if last != bounds.Center() {
					t.Errorf("last point = %v, want the center", last)
				}
				last = pts[len(pts)-2]
			}
			if !near(last.X, 50) || !near(last.Y, 0) {
				t.Errorf("arc end = %v, want (50,0)", last)
			}
		})
	}
}
