package wmf

import (
	"encoding/binary"
	"image"
	"io"
)

// PlaceableKey is the signature that opens every placeable metafile.
const PlaceableKey uint32 = 0x9AC6CDD7

const (
	placeableHeaderSize = 22
	standardHeaderSize  = 18

	// StandardHeaderWords is the size of the standard header in 16-bit words.
	StandardHeaderWords = standardHeaderSize / 2

	defaultUnitsPerInch = 1440
)

// Header holds the placeable header and the standard header that follows it.
//
// Left, Top, Right and Bottom are the logical frame of the picture in
// metafile units; UnitsPerInch relates those units to physical size.
type Header struct {
	Key          uint32
	Handle       uint16
	Left         int16
	Top          int16
	Right        int16
	Bottom       int16
	UnitsPerInch uint16
	Reserved     uint32
	Checksum     uint16

	Type       uint16
	HeaderSize uint16
	Version    uint16
	SizeWords  uint32
	NumObjects uint16
	MaxRecord  uint32
	NumParams  uint16
}

// readHeader decodes both headers from r. A signature mismatch is
// reported as ErrNotPlaceable and a short stream as ErrTruncated.
func readHeader(r io.Reader) (Header, error) {
	var b [placeableHeaderSize + standardHeaderSize]byte
	if _, err := io.ReadFull(r, b[:4]); err != nil {
		return Header{}, &FormatError{Offset: 0, Record: -1, Err: ErrTruncated}
	}
	le := binary.LittleEndian
	var h Header
	h.Key = le.Uint32(b[0:4])
	if h.Key != PlaceableKey {
		return Header{}, &FormatError{Offset: 0, Record: -1, Err: ErrNotPlaceable}
	}
	if _, err := io.ReadFull(r, b[4:]); err != nil {
		return Header{}, &FormatError{Offset: 4, Record: -1, Err: ErrTruncated}
	}

	h.Handle = le.Uint16(b[4:6])
	h.Left = int16(le.Uint16(b[6:8]))
	h.Top = int16(le.Uint16(b[8:10]))
	h.Right = int16(le.Uint16(b[10:12]))
	h.Bottom = int16(le.Uint16(b[12:14]))
	h.UnitsPerInch = le.Uint16(b[14:16])
	h.Reserved = le.Uint32(b[16:20])
	h.Checksum = le.Uint16(b[20:22])

	s := b[placeableHeaderSize:]
	h.Type = le.Uint16(s[0:2])
	h.HeaderSize = le.Uint16(s[2:4])
	h.Version = le.Uint16(s[4:6])
	h.SizeWords = le.Uint32(s[6:10])
	h.NumObjects = le.Uint16(s[10:12])
	h.MaxRecord = le.Uint32(s[12:16])
	h.NumParams = le.Uint16(s[16:18])
	return h, nil
}

// ComputeChecksum returns the XOR of the first ten words of the
// placeable header, the value a well-formed file stores in Checksum.
func (h Header) ComputeChecksum() uint16 {
	sum := uint16(h.Key) ^ uint16(h.Key>>16)
	sum ^= h.Handle
	sum ^= uint16(h.Left) ^ uint16(h.Top) ^ uint16(h.Right) ^ uint16(h.Bottom)
	sum ^= h.UnitsPerInch
	sum ^= uint16(h.Reserved) ^ uint16(h.Reserved>>16)
	return sum
}

// Units returns the number of metafile units per inch, substituting
// twips when the header declares zero.
func (h Header) Units() float64 {
	if h.UnitsPerInch == 0 {
		return defaultUnitsPerInch
	}
	return float64(h.UnitsPerInch)
}

// Bounds returns the logical frame with Min <= Max on both axes.
func (h Header) Bounds() image.Rectangle {
	return image.Rect(int(h.Left), int(h.Top), int(h.Right), int(h.Bottom))
}

// Width returns the frame width in metafile units.
func (h Header) Width() int {
	return h.Bounds().Dx()
}

// Height returns the frame height in metafile units.
func (h Header) Height() int {
	return h.Bounds().Dy()
}

// Inches returns the frame size in inches.
func (h Header) Inches() (w, ht float64) {
	u := h.Units()
	return float64(h.Width()) / u, float64(h.Height()) / u
}

// Pixels returns the frame size in device pixels at the given DPI.
func (h Header) Pixels(dpi float64) (w, ht float64) {
	return h.UnitsToPixels(float64(h.Width()), dpi), h.UnitsToPixels(float64(h.Height()), dpi)
}

// PixelSize returns the frame size in whole device pixels, rounded up.
func (h Header) PixelSize(dpi float64) image.Point {
	w, ht := h.Pixels(dpi)
	return image.Pt(ceilInt(w), ceilInt(ht))
}

// UnitsToPixels converts a length in metafile units to device pixels.
func (h Header) UnitsToPixels(units, dpi float64) float64 {
	return units * dpi / h.Units()
}

func ceilInt(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	return n
}
