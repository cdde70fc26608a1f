package wmf

import "encoding/binary"

// Record is one demultiplexed metafile record. The concrete type is
// *MetaRecord for plain operand lists, or one of the decoded variants
// *StringRecord, *FontRecord and *BitmapRecord. Every variant keeps the
// raw operand words, so Words always equals the declared payload size.
type Record interface {
	// Opcode returns the record function.
	Opcode() Opcode

	// Words returns the payload size in 16-bit words, excluding the
	// three header words.
	Words() int

	// Meta returns the raw operand view of the record.
	Meta() *MetaRecord
}

// MetaRecord is a record with a flat list of 16-bit operands in stream order.
type MetaRecord struct {
	Function Opcode
	Params   []uint16
}

// Opcode implements Record.
func (r *MetaRecord) Opcode() Opcode { return r.Function }

// Words implements Record.
func (r *MetaRecord) Words() int { return len(r.Params) }

// Meta implements Record.
func (r *MetaRecord) Meta() *MetaRecord { return r }

// Uint16 returns operand i, or 0 when the record is too short.
func (r *MetaRecord) Uint16(i int) uint16 {
	if i < 0 || i >= len(r.Params) {
		return 0
	}
	return r.Params[i]
}

// Int16 returns operand i as a signed value.
func (r *MetaRecord) Int16(i int) int16 {
	return int16(r.Uint16(i))
}

// Uint32 returns the 32-bit value stored low word first at operand i.
func (r *MetaRecord) Uint32(i int) uint32 {
	return uint32(r.Uint16(i)) | uint32(r.Uint16(i+1))<<16
}

// Has reports whether the record carries at least n operands.
func (r *MetaRecord) Has(n int) bool {
	return len(r.Params) >= n
}

// StringRecord is a text output record (TextOut, ExtTextOut, DrawText)
// with its inline byte string and placement decoded.
//
// Text is still in the charset of the font that is selected when the
// record is replayed; decoding happens at replay time.
type StringRecord struct {
	MetaRecord
	Text    []byte
	X, Y    int16
	Options uint16

	// HasRect reports whether Rect was present in the record.
	HasRect bool
	Rect    [4]int16 // left, top, right, bottom

	// Dx holds the optional inter-character spacing of ExtTextOut.
	Dx []int16

	// Format holds the DrawText formatting flags.
	Format uint16
}

// LogFont is the LOGFONT structure of CreateFontIndirect.
type LogFont struct {
	Height         int16
	Width          int16
	Escapement     int16
	Orientation    int16
	Weight         int16
	Italic         uint8
	Underline      uint8
	StrikeOut      uint8
	CharSet        uint8
	OutPrecision   uint8
	ClipPrecision  uint8
	Quality        uint8
	PitchAndFamily uint8

	// FaceName holds the raw face name bytes up to the first NUL.
	FaceName []byte
}

// FontRecord is a CreateFontIndirect record with its LOGFONT decoded.
type FontRecord struct {
	MetaRecord
	Font LogFont
}

// BitmapRecord is a record that embeds a device-independent bitmap:
// DIBStretchBlt, StretchDIB, DIBBitBlt, SetDIBToDev and
// DIBCreatePatternBrush. Source coordinates are in bitmap pixels,
// destination coordinates in logical units.
type BitmapRecord struct {
	MetaRecord
	ROP   uint32
	Usage uint16
	Style uint16

	SrcX, SrcY, SrcW, SrcH int16
	DstX, DstY, DstW, DstH int16

	// DIB is the packed BITMAPINFO followed by the pixel data.
	DIB []byte
}

func wordsFromBytes(b []byte) []uint16 {
	w := make([]uint16, len(b)/2)
	for i := range w {
		w[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return w
}

// padded returns n rounded up to an even byte count.
func padded(n int) int {
	return n + n&1
}

// decodeRecord builds the typed variant for op from the raw payload.
// It returns ok=false when the payload is too short for the typed
// layout; the caller then keeps the plain MetaRecord.
func decodeRecord(op Opcode, payload []byte) (Record, bool) {
	meta := MetaRecord{Function: op, Params: wordsFromBytes(payload)}
	switch op {
	case OpTextOut:
		return decodeTextOut(meta, payload)
	case OpExtTextOut:
		return decodeExtTextOut(meta, payload)
	case OpDrawText:
		return decodeDrawText(meta, payload)
	case OpCreateFontIndirect:
		return decodeFont(meta, payload)
	case OpDIBStretchBlt, OpStretchDIB, OpDIBBitBlt, OpSetDIBToDev, OpDIBCreatePatternBrush:
		return decodeBitmap(meta, payload)
	}
	return &meta, true
}

func decodeTextOut(meta MetaRecord, b []byte) (Record, bool) {
	if len(b) < 2 {
		return &meta, false
	}
	n := int(binary.LittleEndian.Uint16(b))
	end := 2 + padded(n)
	if len(b) < end+4 {
		return &meta, false
	}
	return &StringRecord{
		MetaRecord: meta,
		Text:       b[2 : 2+n],
		Y:          int16(binary.LittleEndian.Uint16(b[end:])),
		X:          int16(binary.LittleEndian.Uint16(b[end+2:])),
	}, true
}

func decodeExtTextOut(meta MetaRecord, b []byte) (Record, bool) {
	if len(b) < 8 {
		return &meta, false
	}
	le := binary.LittleEndian
	rec := &StringRecord{
		MetaRecord: meta,
		Y:          int16(le.Uint16(b[0:])),
		X:          int16(le.Uint16(b[2:])),
		Options:    le.Uint16(b[6:]),
	}
	n := int(le.Uint16(b[4:]))
	off := 8
	if rec.Options&(etoOpaque|etoClipped) != 0 && len(b) >= off+8+n {
		for i := range rec.Rect {
			rec.Rect[i] = int16(le.Uint16(b[off+2*i:]))
		}
		rec.HasRect = true
		off += 8
	}
	if len(b) < off+n {
		return &meta, false
	}
	rec.Text = b[off : off+n]
	off += padded(n)
	for ; off+2 <= len(b) && len(rec.Dx) < n; off += 2 {
		rec.Dx = append(rec.Dx, int16(le.Uint16(b[off:])))
	}
	return rec, true
}

func decodeDrawText(meta MetaRecord, b []byte) (Record, bool) {
	if len(b) < 12 {
		return &meta, false
	}
	le := binary.LittleEndian
	rec := &StringRecord{
		MetaRecord: meta,
		Format:     le.Uint16(b[0:]),
		HasRect:    true,
	}
	n := int(le.Uint16(b[2:]))
	for i := range rec.Rect {
		rec.Rect[i] = int16(le.Uint16(b[4+2*i:]))
	}
	if len(b) < 12+n {
		return &meta, false
	}
	rec.Text = b[12 : 12+n]
	rec.X, rec.Y = rec.Rect[0], rec.Rect[1]
	return rec, true
}

const logFontFixedSize = 18

func decodeFont(meta MetaRecord, b []byte) (Record, bool) {
	if len(b) < logFontFixedSize {
		return &meta, false
	}
	le := binary.LittleEndian
	f := LogFont{
		Height:         int16(le.Uint16(b[0:])),
		Width:          int16(le.Uint16(b[2:])),
		Escapement:     int16(le.Uint16(b[4:])),
		Orientation:    int16(le.Uint16(b[6:])),
		Weight:         int16(le.Uint16(b[8:])),
		Italic:         b[10],
		Underline:      b[11],
		StrikeOut:      b[12],
		CharSet:        b[13],
		OutPrecision:   b[14],
		ClipPrecision:  b[15],
		Quality:        b[16],
		PitchAndFamily: b[17],
	}
	face := b[logFontFixedSize:]
	for i, c := range face {
		if c == 0 {
			face = face[:i]
			break
		}
	}
	f.FaceName = face
	return &FontRecord{MetaRecord: meta, Font: f}, true
}

// Payload sizes in words of the bitmap records that carry no DIB.
const (
	dibBitBltNoBitmapWords     = 9
	dibStretchBltNoBitmapWords = 11
)

func decodeBitmap(meta MetaRecord, b []byte) (Record, bool) {
	le := binary.LittleEndian
	i16 := func(off int) int16 { return int16(le.Uint16(b[off:])) }
	rec := &BitmapRecord{MetaRecord: meta}

	switch meta.Function {
	case OpDIBStretchBlt:
		if len(meta.Params) == dibStretchBltNoBitmapWords {
			return &meta, true
		}
		if len(b) < 20 {
			return &meta, false
		}
		rec.ROP = le.Uint32(b[0:])
		rec.SrcH, rec.SrcW, rec.SrcY, rec.SrcX = i16(4), i16(6), i16(8), i16(10)
		rec.DstH, rec.DstW, rec.DstY, rec.DstX = i16(12), i16(14), i16(16), i16(18)
		rec.DIB = b[20:]
	case OpStretchDIB:
		if len(b) < 22 {
			return &meta, false
		}
		rec.ROP = le.Uint32(b[0:])
		rec.Usage = le.Uint16(b[4:])
		rec.SrcH, rec.SrcW, rec.SrcY, rec.SrcX = i16(6), i16(8), i16(10), i16(12)
		rec.DstH, rec.DstW, rec.DstY, rec.DstX = i16(14), i16(16), i16(18), i16(20)
		rec.DIB = b[22:]
	case OpDIBBitBlt:
		if len(meta.Params) == dibBitBltNoBitmapWords {
			return &meta, true
		}
		if len(b) < 16 {
			return &meta, false
		}
		rec.ROP = le.Uint32(b[0:])
		rec.SrcY, rec.SrcX = i16(4), i16(6)
		rec.DstH, rec.DstW, rec.DstY, rec.DstX = i16(8), i16(10), i16(12), i16(14)
		rec.SrcW, rec.SrcH = rec.DstW, rec.DstH
		rec.DIB = b[16:]
	case OpSetDIBToDev:
		if len(b) < 18 {
			return &meta, false
		}
		rec.ROP = ropSrcCopy
		rec.Usage = le.Uint16(b[0:])
		rec.SrcY, rec.SrcX = i16(6), i16(8)
		rec.DstH, rec.DstW, rec.DstY, rec.DstX = i16(10), i16(12), i16(14), i16(16)
		rec.SrcW, rec.SrcH = rec.DstW, rec.DstH
		rec.DIB = b[18:]
	case OpDIBCreatePatternBrush:
		if len(b) < 4 {
			return &meta, false
		}
		rec.Style = le.Uint16(b[0:])
		rec.Usage = le.Uint16(b[2:])
		rec.DIB = b[4:]
	}
	return rec, true
}
