package recording

import (
	"errors"
	"image"
	"strings"
	"sync"
	"testing"

	wmf "github.com/gogpu/gg-wmf"
	"github.com/gogpu/gg-wmf/internal/wmftest"
)

// mockBackend counts the calls a replay makes on it.
type mockBackend struct {
	name           string
	beginCalls     int
	endCalls       int
	width, height  int
	fills, strokes int
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) FillRect(wmf.Rect, wmf.Paint) { b.fills++ }
func (b *mockBackend) StrokeRect(wmf.Rect, wmf.Pen) { b.strokes++ }

func (b *mockBackend) PushState()                                          {}
func (b *mockBackend) PopState()                                           {}
func (b *mockBackend) MoveTo(wmf.Point)                                    {}
func (b *mockBackend) LineTo(wmf.Point, wmf.Pen)                           {}
func (b *mockBackend) FillPolygon([][]wmf.Point, wmf.FillRule, wmf.Paint)  {}
func (b *mockBackend) StrokePolygon([]wmf.Point, bool, wmf.Pen)            {}
func (b *mockBackend) FillRoundRect(wmf.Rect, float64, float64, wmf.Paint) {}
func (b *mockBackend) StrokeRoundRect(wmf.Rect, float64, float64, wmf.Pen) {}
func (b *mockBackend) FillEllipse(wmf.Rect, wmf.Paint)                     {}
func (b *mockBackend) StrokeEllipse(wmf.Rect, wmf.Pen)                     {}
func (b *mockBackend) DrawArc(wmf.Arc, wmf.Pen)                            {}
func (b *mockBackend) FillArc(wmf.Arc, wmf.Paint)                          {}
func (b *mockBackend) DrawText(wmf.TextRun)                                {}
func (b *mockBackend) BlitImage(image.Image, image.Rectangle, wmf.Rect)    {}

// withRegistry runs the test against an empty registry and restores the
// registered backends afterwards.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]BackendFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestNewBackend(t *testing.T) {
	withRegistry(t)
	Register("mock", func() Backend { return newMockBackend("mock") })

	b, err := NewBackend("mock")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if m, ok := b.(*mockBackend); !ok || m.name != "mock" {
		t.Errorf("NewBackend() = %#v, want the mock backend", b)
	}

	other, _ := NewBackend("mock")
	if other == b {
		t.Error("NewBackend() returned the same instance twice")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	tests := []struct {
		name       string
		registered []string
		want       string
	}{
		{"empty registry", nil, "none registered"},
		{"lists names", []string{"svg", "raster"}, "available: raster, svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			for _, name := range tt.registered {
				Register(name, func() Backend { return newMockBackend(name) })
			}

			_, err := NewBackend("pdf")
			if !errors.Is(err, ErrUnknownBackend) {
				t.Fatalf("NewBackend(pdf) error = %v, want ErrUnknownBackend", err)
			}
			if msg := err.Error(); !strings.Contains(msg, `"pdf"`) || !strings.Contains(msg, tt.want) {
				t.Errorf("error = %q, want the name and %q", msg, tt.want)
			}
		})
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name     string
		register string
		factory  BackendFactory
	}{
		{"nil factory", "other", nil},
		{"duplicate name", "raster", func() Backend { return newMockBackend("raster") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			Register("raster", func() Backend { return newMockBackend("raster") })
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.register)
				}
			}()
			Register(tt.register, tt.factory)
		})
	}
}

func TestBackendsSorted(t *testing.T) {
	withRegistry(t)
	for _, name := range []string{"svg", "raster", "emf"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}
	got := strings.Join(Backends(), ",")
	if got != "emf,raster,svg" {
		t.Errorf("Backends() = %s, want emf,raster,svg", got)
	}

	Unregister("raster")
	Unregister("missing")
	if IsRegistered("raster") || !IsRegistered("svg") {
		t.Errorf("after Unregister: Backends() = %v", Backends())
	}
}

// Each metafile rendering takes its own backend from the registry, so
// parallel renders of one Recording never share a canvas.
func TestRenderRegisteredBackends(t *testing.T) {
	withRegistry(t)
	Register("mock", func() Backend { return newMockBackend("mock") })

	r := record(t, wmftest.New(0, 0, 200, 100, 96, 2).
		CreateBrush(0, wmftest.RGB(0, 0, 255), 0).
		CreatePen(0, 1, wmftest.RGB(0, 0, 0)).
		SelectObject(0).
		SelectObject(1).
		Rectangle(10, 10, 50, 50).
		Rectangle(60, 10, 90, 50).
		Bytes())

	const workers = 8
	results := make([]*mockBackend, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := NewBackend("mock")
			if err != nil {
				t.Errorf("NewBackend() error = %v", err)
				return
			}
			if err := r.Render(b); err != nil {
				t.Errorf("Render() error = %v", err)
			}
			results[i] = b.(*mockBackend)
		}()
	}
	wg.Wait()

	for i, m := range results {
		if m == nil {
			continue
		}
		if m.width != 200 || m.height != 100 {
			t.Errorf("worker %d: Begin size = %dx%d, want 200x100", i, m.width, m.height)
		}
		if m.fills != 2 || m.strokes != 2 || m.endCalls != 1 {
			t.Errorf("worker %d: fills/strokes/ends = %d/%d/%d, want 2/2/1", i, m.fills, m.strokes, m.endCalls)
		}
	}
}
