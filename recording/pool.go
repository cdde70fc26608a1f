package recording

import (
	"image"
)

// ResourcePool stores the images referenced by recording commands:
// bitmaps blitted by the metafile and the pattern tiles of its brushes.
//
// Pattern tiles are reused by many shapes, so *image.RGBA images are
// deduplicated by identity; every other image gets a fresh reference.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	images []image.Image
	byRGBA map[*image.RGBA]ImageRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]image.Image, 0, 8),
		byRGBA: make(map[*image.RGBA]ImageRef),
	}
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored directly as Go's image.Image is already immutable.
// A nil image yields InvalidRef.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if img == nil {
		return ImageRef(InvalidRef)
	}
	rgba, ok := img.(*image.RGBA)
	if ok {
		if ref, seen := p.byRGBA[rgba]; seen {
			return ref
		}
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images) - 1))
	if ok {
		p.byRGBA[rgba] = ref
	}
	return ref
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.images = p.images[:0]
	clear(p.byRGBA)
}

// Clone creates a copy of the resource pool. Images are shared by
// reference since they are immutable.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		images: make([]image.Image, len(p.images)),
		byRGBA: make(map[*image.RGBA]ImageRef, len(p.byRGBA)),
	}
	copy(clone.images, p.images)
	for k, v := range p.byRGBA {
		clone.byRGBA[k] = v
	}
	return clone
}
