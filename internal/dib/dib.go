// Package dib decodes the packed device-independent bitmaps embedded in
// metafile records: a BITMAPINFOHEADER, an optional color table and the
// pixel rows, without the file header of a .bmp file.
package dib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const fileHeaderSize = 14

// Compression values of BITMAPINFOHEADER.
const (
	biRGB       = 0
	biBitfields = 3
)

// ErrUnsupported is returned for bitmaps this package cannot decode.
var ErrUnsupported = errors.New("dib: unsupported bitmap")

// Info is the decoded BITMAPINFOHEADER.
type Info struct {
	HeaderSize  int
	Width       int
	Height      int // always positive; see TopDown
	TopDown     bool
	Planes      uint16
	BitCount    uint16
	Compression uint32
	ColorsUsed  int
}

// ParseInfo decodes the info header at the start of b.
func ParseInfo(b []byte) (Info, error) {
	if len(b) < 4 {
		return Info{}, fmt.Errorf("dib: short header (%d bytes)", len(b))
	}
	le := binary.LittleEndian
	size := int(le.Uint32(b))
	if size < 40 {
		return Info{}, fmt.Errorf("%w: header size %d", ErrUnsupported, size)
	}
	if len(b) < size {
		return Info{}, fmt.Errorf("dib: short header (%d bytes, want %d)", len(b), size)
	}
	info := Info{
		HeaderSize:  size,
		Width:       int(int32(le.Uint32(b[4:]))),
		Height:      int(int32(le.Uint32(b[8:]))),
		Planes:      le.Uint16(b[12:]),
		BitCount:    le.Uint16(b[14:]),
		Compression: le.Uint32(b[16:]),
		ColorsUsed:  int(le.Uint32(b[32:])),
	}
	if info.Height < 0 {
		info.Height = -info.Height
		info.TopDown = true
	}
	return info, nil
}

// PaletteSize returns the number of color table entries that follow
// the header.
func (i Info) PaletteSize() int {
	if i.ColorsUsed > 0 {
		return i.ColorsUsed
	}
	if i.BitCount <= 8 {
		return 1 << i.BitCount
	}
	return 0
}

// SourceRect converts a source rectangle given in DIB coordinates,
// where rows count up from the bottom for bottom-up bitmaps, to image
// coordinates.
func (i Info) SourceRect(x, y, w, h int) image.Rectangle {
	if !i.TopDown {
		y = i.Height - y - h
	}
	return image.Rect(x, y, x+w, y+h)
}

// Decode decodes a packed DIB.
func Decode(b []byte) (image.Image, Info, error) {
	info, err := ParseInfo(b)
	if err != nil {
		return nil, info, err
	}
	if info.Width <= 0 || info.Height == 0 {
		return nil, info, fmt.Errorf("%w: %dx%d", ErrUnsupported, info.Width, info.Height)
	}
	switch info.Compression {
	case biRGB:
	case biBitfields:
		if info.BitCount != 32 || info.HeaderSize < 108 {
			return nil, info, fmt.Errorf("%w: bitfields at %d bpp", ErrUnsupported, info.BitCount)
		}
	default:
		return nil, info, fmt.Errorf("%w: compression %d", ErrUnsupported, info.Compression)
	}

	palette := info.PaletteSize() * 4
	if len(b) < info.HeaderSize+palette {
		return nil, info, fmt.Errorf("dib: short color table")
	}

	body := b
	if info.BitCount > 8 && palette > 0 {
		// A true-color bitmap may carry an optimization palette that
		// the bmp decoder does not expect between header and pixels.
		body = make([]byte, 0, len(b)-palette)
		body = append(body, b[:info.HeaderSize]...)
		body = append(body, b[info.HeaderSize+palette:]...)
		binary.LittleEndian.PutUint32(body[32:], 0)
		palette = 0
	}

	var file bytes.Buffer
	file.Grow(fileHeaderSize + len(body))
	var fh [fileHeaderSize]byte
	fh[0], fh[1] = 'B', 'M'
	// #nosec G115 -- record payloads are bounded by the uint32 record size
	binary.LittleEndian.PutUint32(fh[2:], uint32(fileHeaderSize+len(body)))
	// #nosec G115 -- header and color table are at most a few KiB
	binary.LittleEndian.PutUint32(fh[10:], uint32(fileHeaderSize+info.HeaderSize+palette))
	file.Write(fh[:])
	file.Write(body)

	img, err := bmp.Decode(&file)
	if err != nil {
		return nil, info, fmt.Errorf("dib: %w", err)
	}
	return img, info, nil
}

// Crop returns the part of img inside r as a new RGBA image with its
// origin at (0, 0). r is clipped to the image bounds.
func Crop(img image.Image, r image.Rectangle) *image.RGBA {
	r = r.Add(img.Bounds().Min).Intersect(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, img, r, draw.Src, nil)
	return dst
}

// Tile returns img as an RGBA pattern tile.
func Tile(img image.Image) *image.RGBA {
	return Crop(img, image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
}
