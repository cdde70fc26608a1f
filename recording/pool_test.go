package recording

import (
	"image"
	"image/color"
	"testing"
)

func TestNewResourcePool(t *testing.T) {
	pool := NewResourcePool()
	if pool == nil {
		t.Fatal("NewResourcePool returned nil")
	}
	if pool.ImageCount() != 0 {
		t.Errorf("ImageCount() = %d, want 0", pool.ImageCount())
	}
}

func TestResourcePool_AddImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 8, 8))
	gray := image.NewGray(image.Rect(0, 0, 4, 4))

	tests := []struct {
		name      string
		images    []image.Image
		wantRefs  []ImageRef
		wantCount int
	}{
		{
			name:      "nil image",
			images:    []image.Image{nil},
			wantRefs:  []ImageRef{ImageRef(InvalidRef)},
			wantCount: 0,
		},
		{
			name:      "distinct images",
			images:    []image.Image{rgba, gray},
			wantRefs:  []ImageRef{0, 1},
			wantCount: 2,
		},
		{
			name:      "same RGBA reused",
			images:    []image.Image{rgba, rgba, rgba},
			wantRefs:  []ImageRef{0, 0, 0},
			wantCount: 1,
		},
		{
			name:      "other image types not deduplicated",
			images:    []image.Image{gray, gray},
			wantRefs:  []ImageRef{0, 1},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewResourcePool()
			for i, img := range tt.images {
				if got := pool.AddImage(img); got != tt.wantRefs[i] {
					t.Errorf("AddImage(#%d) = %d, want %d", i, got, tt.wantRefs[i])
				}
			}
			if pool.ImageCount() != tt.wantCount {
				t.Errorf("ImageCount() = %d, want %d", pool.ImageCount(), tt.wantCount)
			}
		})
	}
}

func TestResourcePool_GetImage(t *testing.T) {
	pool := NewResourcePool()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	ref := pool.AddImage(img)

	if got := pool.GetImage(ref); got != img {
		t.Errorf("GetImage(%d) returned a different image", ref)
	}
	if got := pool.GetImage(ImageRef(InvalidRef)); got != nil {
		t.Error("GetImage(InvalidRef) should return nil")
	}
	if got := pool.GetImage(ImageRef(99)); got != nil {
		t.Error("GetImage(out of range) should return nil")
	}
}

func TestResourcePool_Clear(t *testing.T) {
	pool := NewResourcePool()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	pool.AddImage(img)
	pool.Clear()

	if pool.ImageCount() != 0 {
		t.Errorf("ImageCount() after Clear = %d, want 0", pool.ImageCount())
	}
	// The dedupe index is cleared too.
	if ref := pool.AddImage(img); ref != 0 {
		t.Errorf("AddImage after Clear = %d, want 0", ref)
	}
}

func TestResourcePool_Clone(t *testing.T) {
	pool := NewResourcePool()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	ref := pool.AddImage(img)

	clone := pool.Clone()
	if clone.GetImage(ref) != img {
		t.Error("clone should share images by reference")
	}
	if got := clone.AddImage(img); got != ref {
		t.Errorf("clone AddImage(existing) = %d, want %d", got, ref)
	}

	clone.AddImage(image.NewGray(image.Rect(0, 0, 1, 1)))
	if pool.ImageCount() != 1 {
		t.Errorf("original ImageCount() = %d after modifying clone, want 1", pool.ImageCount())
	}
}

func TestImageRef_IsValid(t *testing.T) {
	tests := []struct {
		ref  ImageRef
		want bool
	}{
		{0, true},
		{42, true},
		{ImageRef(InvalidRef), false},
	}
	for _, tt := range tests {
		if got := tt.ref.IsValid(); got != tt.want {
			t.Errorf("ImageRef(%d).IsValid() = %v, want %v", tt.ref, got, tt.want)
		}
	}
}
