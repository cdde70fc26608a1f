// Package wmftest builds placeable metafiles in memory for tests.
//
// Helper methods take their arguments in natural order (x before y,
// left before right) and write the operands in the reversed order the
// file format stores them.
package wmftest

import (
	"encoding/binary"
)

const placeableKey = 0x9AC6CDD7

// Builder accumulates records for one metafile.
type Builder struct {
	left, top, right, bottom int16
	upi                      uint16
	numObjects               uint16
	records                  []byte
	maxRecord                uint32
}

// New starts a metafile with the given frame, units per inch and
// declared object count.
func New(left, top, right, bottom int16, upi, numObjects uint16) *Builder {
	return &Builder{
		left: left, top: top, right: right, bottom: bottom,
		upi:        upi,
		numObjects: numObjects,
	}
}

// Record appends a record with the given function and operand words.
func (b *Builder) Record(op uint16, words ...uint16) *Builder {
	size := uint32(3 + len(words))
	b.records = binary.LittleEndian.AppendUint32(b.records, size)
	b.records = binary.LittleEndian.AppendUint16(b.records, op)
	for _, w := range words {
		b.records = binary.LittleEndian.AppendUint16(b.records, w)
	}
	b.maxRecord = max(b.maxRecord, size)
	return b
}

// RecordBytes appends a record whose payload is raw bytes, padded to a
// whole number of words.
func (b *Builder) RecordBytes(op uint16, payload []byte) *Builder {
	if len(payload)%2 == 1 {
		payload = append(payload[:len(payload):len(payload)], 0)
	}
	words := make([]uint16, len(payload)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(payload[2*i:])
	}
	return b.Record(op, words...)
}

// Words returns the size in words the standard header should declare.
func (b *Builder) Words() uint32 {
	return uint32(9 + len(b.records)/2 + 3)
}

// Bytes returns the complete file, including the end-of-file record.
func (b *Builder) Bytes() []byte {
	le := binary.LittleEndian
	out := make([]byte, 0, 22+18+len(b.records)+6)

	out = le.AppendUint32(out, placeableKey)
	out = le.AppendUint16(out, 0)
	out = le.AppendUint16(out, uint16(b.left))
	out = le.AppendUint16(out, uint16(b.top))
	out = le.AppendUint16(out, uint16(b.right))
	out = le.AppendUint16(out, uint16(b.bottom))
	out = le.AppendUint16(out, b.upi)
	out = le.AppendUint32(out, 0)
	var sum uint16
	for i := 0; i < 20; i += 2 {
		sum ^= le.Uint16(out[i:])
	}
	out = le.AppendUint16(out, sum)

	out = le.AppendUint16(out, 1) // memory metafile
	out = le.AppendUint16(out, 9)
	out = le.AppendUint16(out, 0x0300)
	out = le.AppendUint32(out, b.Words())
	out = le.AppendUint16(out, b.numObjects)
	out = le.AppendUint32(out, b.maxRecord)
	out = le.AppendUint16(out, 0)

	out = append(out, b.records...)
	out = le.AppendUint32(out, 3)
	out = le.AppendUint16(out, 0)
	return out
}

func u(v int16) uint16 { return uint16(v) }

func lo(v uint32) uint16 { return uint16(v) }

func hi(v uint32) uint16 { return uint16(v >> 16) }

// RGB packs a COLORREF.
func RGB(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

// CreatePen appends CreatePenIndirect.
func (b *Builder) CreatePen(style uint16, width int16, color uint32) *Builder {
	return b.Record(0x02FA, style, u(width), 0, lo(color), hi(color))
}

// CreateBrush appends CreateBrushIndirect.
func (b *Builder) CreateBrush(style uint16, color uint32, hatch uint16) *Builder {
	return b.Record(0x02FC, style, lo(color), hi(color), hatch)
}

// Font describes a CreateFontIndirect record.
type Font struct {
	Height     int16
	Width      int16
	Escapement int16
	Weight     int16
	Italic     bool
	Underline  bool
	StrikeOut  bool
	Charset    uint8
	Face       string
}

// CreateFont appends CreateFontIndirect.
func (b *Builder) CreateFont(f Font) *Builder {
	le := binary.LittleEndian
	p := make([]byte, 0, 18+len(f.Face)+1)
	p = le.AppendUint16(p, u(f.Height))
	p = le.AppendUint16(p, u(f.Width))
	p = le.AppendUint16(p, u(f.Escapement))
	p = le.AppendUint16(p, u(f.Escapement))
	p = le.AppendUint16(p, u(f.Weight))
	p = append(p, flag(f.Italic), flag(f.Underline), flag(f.StrikeOut), f.Charset, 0, 0, 0, 0)
	p = append(p, f.Face...)
	p = append(p, 0)
	return b.RecordBytes(0x02FB, p)
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// DIBCreatePatternBrush appends a pattern brush built from a packed DIB.
func (b *Builder) DIBCreatePatternBrush(dib []byte) *Builder {
	p := make([]byte, 4, 4+len(dib))
	p = append(p, dib...)
	return b.RecordBytes(0x0142, p)
}

// SelectObject appends SelectObject.
func (b *Builder) SelectObject(index uint16) *Builder {
	return b.Record(0x012D, index)
}

// DeleteObject appends DeleteObject.
func (b *Builder) DeleteObject(index uint16) *Builder {
	return b.Record(0x01F0, index)
}

// SaveDC appends SaveDC.
func (b *Builder) SaveDC() *Builder {
	return b.Record(0x001E)
}

// RestoreDC appends RestoreDC.
func (b *Builder) RestoreDC(n int16) *Builder {
	return b.Record(0x0127, u(n))
}

// SetWindowOrg appends SetWindowOrg.
func (b *Builder) SetWindowOrg(x, y int16) *Builder {
	return b.Record(0x020B, u(y), u(x))
}

// SetWindowExt appends SetWindowExt.
func (b *Builder) SetWindowExt(x, y int16) *Builder {
	return b.Record(0x020C, u(y), u(x))
}

// SetBkMode appends SetBkMode.
func (b *Builder) SetBkMode(mode uint16) *Builder {
	return b.Record(0x0102, mode)
}

// SetPolyFillMode appends SetPolyFillMode.
func (b *Builder) SetPolyFillMode(mode uint16) *Builder {
	return b.Record(0x0106, mode)
}

// SetBkColor appends SetBkColor.
func (b *Builder) SetBkColor(color uint32) *Builder {
	return b.Record(0x0201, lo(color), hi(color))
}

// SetTextColor appends SetTextColor.
func (b *Builder) SetTextColor(color uint32) *Builder {
	return b.Record(0x0209, lo(color), hi(color))
}

// SetTextAlign appends SetTextAlign.
func (b *Builder) SetTextAlign(align uint16) *Builder {
	return b.Record(0x012E, align)
}

// MoveTo appends MoveTo.
func (b *Builder) MoveTo(x, y int16) *Builder {
	return b.Record(0x0214, u(y), u(x))
}

// LineTo appends LineTo.
func (b *Builder) LineTo(x, y int16) *Builder {
	return b.Record(0x0213, u(y), u(x))
}

// Rectangle appends Rectangle.
func (b *Builder) Rectangle(left, top, right, bottom int16) *Builder {
	return b.Record(0x041B, u(bottom), u(right), u(top), u(left))
}

// Ellipse appends Ellipse.
func (b *Builder) Ellipse(left, top, right, bottom int16) *Builder {
	return b.Record(0x0418, u(bottom), u(right), u(top), u(left))
}

// RoundRect appends RoundRect.
func (b *Builder) RoundRect(left, top, right, bottom, w, h int16) *Builder {
	return b.Record(0x061C, u(h), u(w), u(bottom), u(right), u(top), u(left))
}

func (b *Builder) arc(op uint16, left, top, right, bottom, xs, ys, xe, ye int16) *Builder {
	return b.Record(op, u(ye), u(xe), u(ys), u(xs), u(bottom), u(right), u(top), u(left))
}

// Arc appends Arc.
func (b *Builder) Arc(left, top, right, bottom, xs, ys, xe, ye int16) *Builder {
	return b.arc(0x0817, left, top, right, bottom, xs, ys, xe, ye)
}

// Pie appends Pie.
func (b *Builder) Pie(left, top, right, bottom, xs, ys, xe, ye int16) *Builder {
	return b.arc(0x081A, left, top, right, bottom, xs, ys, xe, ye)
}

// Chord appends Chord.
func (b *Builder) Chord(left, top, right, bottom, xs, ys, xe, ye int16) *Builder {
	return b.arc(0x0830, left, top, right, bottom, xs, ys, xe, ye)
}

func points(xy []int16) []uint16 {
	w := make([]uint16, 0, len(xy)+1)
	w = append(w, uint16(len(xy)/2))
	for _, v := range xy {
		w = append(w, u(v))
	}
	return w
}

// Polygon appends Polygon with x, y pairs.
func (b *Builder) Polygon(xy ...int16) *Builder {
	return b.Record(0x0324, points(xy)...)
}

// Polyline appends Polyline with x, y pairs.
func (b *Builder) Polyline(xy ...int16) *Builder {
	return b.Record(0x0325, points(xy)...)
}

// PolyPolygon appends PolyPolygon with one x, y pair list per ring.
func (b *Builder) PolyPolygon(rings ...[]int16) *Builder {
	w := []uint16{uint16(len(rings))}
	for _, r := range rings {
		w = append(w, uint16(len(r)/2))
	}
	for _, r := range rings {
		for _, v := range r {
			w = append(w, u(v))
		}
	}
	return b.Record(0x0538, w...)
}

// PatBlt appends PatBlt.
func (b *Builder) PatBlt(x, y, w, h int16, rop uint32) *Builder {
	return b.Record(0x061D, lo(rop), hi(rop), u(h), u(w), u(y), u(x))
}

// SetPixel appends SetPixel.
func (b *Builder) SetPixel(x, y int16, color uint32) *Builder {
	return b.Record(0x041F, lo(color), hi(color), u(y), u(x))
}

// TextOut appends TextOut.
func (b *Builder) TextOut(x, y int16, s string) *Builder {
	le := binary.LittleEndian
	p := le.AppendUint16(nil, uint16(len(s)))
	p = append(p, s...)
	if len(s)%2 == 1 {
		p = append(p, 0)
	}
	p = le.AppendUint16(p, u(y))
	p = le.AppendUint16(p, u(x))
	return b.RecordBytes(0x0521, p)
}

// ExtTextOut appends ExtTextOut. rect is written when it is non-nil.
func (b *Builder) ExtTextOut(x, y int16, options uint16, rect *[4]int16, s string) *Builder {
	le := binary.LittleEndian
	p := le.AppendUint16(nil, u(y))
	p = le.AppendUint16(p, u(x))
	p = le.AppendUint16(p, uint16(len(s)))
	p = le.AppendUint16(p, options)
	if rect != nil {
		for _, v := range rect {
			p = le.AppendUint16(p, u(v))
		}
	}
	p = append(p, s...)
	return b.RecordBytes(0x0A32, p)
}

// StretchDIB appends StretchDIB copying the whole source into the
// destination rectangle.
func (b *Builder) StretchDIB(x, y, w, h, srcW, srcH int16, dib []byte) *Builder {
	le := binary.LittleEndian
	p := le.AppendUint32(nil, 0x00CC0020)
	p = le.AppendUint16(p, 0) // DIB_RGB_COLORS
	for _, v := range []int16{srcH, srcW, 0, 0, h, w, y, x} {
		p = le.AppendUint16(p, u(v))
	}
	p = append(p, dib...)
	return b.RecordBytes(0x0F43, p)
}

// DIBStretchBlt appends DIBStretchBlt copying the whole source into the
// destination rectangle.
func (b *Builder) DIBStretchBlt(x, y, w, h, srcW, srcH int16, dib []byte) *Builder {
	le := binary.LittleEndian
	p := le.AppendUint32(nil, 0x00CC0020)
	for _, v := range []int16{srcH, srcW, 0, 0, h, w, y, x} {
		p = le.AppendUint16(p, u(v))
	}
	p = append(p, dib...)
	return b.RecordBytes(0x0B41, p)
}

// SolidDIB returns a packed bottom-up 24-bit DIB of the given size
// filled with one color.
func SolidDIB(w, h int, color uint32) []byte {
	le := binary.LittleEndian
	stride := (w*3 + 3) &^ 3
	b := make([]byte, 40, 40+stride*h)
	le.PutUint32(b[0:], 40)
	le.PutUint32(b[4:], uint32(w))
	le.PutUint32(b[8:], uint32(h))
	le.PutUint16(b[12:], 1)
	le.PutUint16(b[14:], 24)
	le.PutUint32(b[20:], uint32(stride*h))
	row := make([]byte, stride)
	for x := range w {
		row[3*x] = byte(color >> 16)
		row[3*x+1] = byte(color >> 8)
		row[3*x+2] = byte(color)
	}
	for range h {
		b = append(b, row...)
	}
	return b
}
