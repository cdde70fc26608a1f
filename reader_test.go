package wmf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gogpu/gg-wmf/internal/wmftest"
)

const recordsStart = placeableHeaderSize + standardHeaderSize

func TestParse(t *testing.T) {
	b := wmftest.New(0, 0, 1000, 1000, 1440, 2).
		CreatePen(0, 1, wmftest.RGB(1, 2, 3)).
		SelectObject(0).
		Record(0x0999, 7, 8, 9).
		Rectangle(0, 0, 500, 500)

	mf, err := Parse(bytes.NewReader(b.Bytes()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Records) != 4 {
		t.Fatalf("len(Records) = %d, want 4", len(mf.Records))
	}
	if mf.Words() != int64(mf.Header.SizeWords) || mf.Words() != int64(b.Words()) {
		t.Errorf("Words() = %d, want header size %d", mf.Words(), mf.Header.SizeWords)
	}

	wantOps := []Opcode{OpCreatePenIndirect, OpSelectObject, Opcode(0x0999), OpRectangle}
	for i, rec := range mf.Records {
		if rec.Opcode() != wantOps[i] {
			t.Errorf("Records[%d] = %v, want %v", i, rec.Opcode(), wantOps[i])
		}
	}
	unknown := mf.Records[2].Meta()
	if unknown.Words() != 3 || unknown.Uint16(0) != 7 || unknown.Uint16(2) != 9 {
		t.Errorf("unknown record params = %v, want [7 8 9]", unknown.Params)
	}
	if mf.Records[2].Opcode().Known() {
		t.Error("0x0999 should not be a known opcode")
	}
	rect := mf.Records[3].Meta()
	if rect.Int16(3) != 0 || rect.Int16(1) != 500 {
		t.Errorf("Rectangle operands = %v, want reversed order", rect.Params)
	}
}

func TestParseTypedRecords(t *testing.T) {
	clip := [4]int16{1, 2, 3, 4}
	data := wmftest.New(0, 0, 100, 100, 96, 1).
		CreateFont(wmftest.Font{Height: -16, Weight: 700, Italic: true, Charset: 204, Face: "Courier New"}).
		TextOut(10, 20, "Hello").
		ExtTextOut(30, 40, etoClipped, &clip, "odd").
		StretchDIB(1, 2, 3, 4, 2, 2, wmftest.SolidDIB(2, 2, 0)).
		Record(uint16(OpExtTextOut), 1).
		Bytes()

	mf, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fr, ok := mf.Records[0].(*FontRecord)
	if !ok {
		t.Fatalf("Records[0] = %T, want *FontRecord", mf.Records[0])
	}
	f := fr.Font
	if f.Height != -16 || f.Weight != 700 || f.Italic != 1 || f.CharSet != 204 || string(f.FaceName) != "Courier New" {
		t.Errorf("LogFont = %+v", f)
	}

	tr, ok := mf.Records[1].(*StringRecord)
	if !ok {
		t.Fatalf("Records[1] = %T, want *StringRecord", mf.Records[1])
	}
	if string(tr.Text) != "Hello" || tr.X != 10 || tr.Y != 20 {
		t.Errorf("TextOut = %q at (%d,%d), want \"Hello\" at (10,20)", tr.Text, tr.X, tr.Y)
	}

	er, ok := mf.Records[2].(*StringRecord)
	if !ok {
		t.Fatalf("Records[2] = %T, want *StringRecord", mf.Records[2])
	}
	if string(er.Text) != "odd" || !er.HasRect || er.Rect != clip || er.Options != etoClipped {
		t.Errorf("ExtTextOut = %+v", er)
	}
	if er.Words() != er.Meta().Words() {
		t.Errorf("typed Words() = %d, raw = %d", er.Words(), er.Meta().Words())
	}

	br, ok := mf.Records[3].(*BitmapRecord)
	if !ok {
		t.Fatalf("Records[3] = %T, want *BitmapRecord", mf.Records[3])
	}
	if br.DstX != 1 || br.DstY != 2 || br.DstW != 3 || br.DstH != 4 || br.SrcW != 2 || br.SrcH != 2 {
		t.Errorf("StretchDIB geometry = %+v", br)
	}
	if br.ROP != ropSrcCopy || len(br.DIB) != 40+8*2 {
		t.Errorf("StretchDIB ROP = %#x DIB = %d bytes", br.ROP, len(br.DIB))
	}

	if _, ok := mf.Records[4].(*MetaRecord); !ok {
		t.Errorf("short ExtTextOut = %T, want the plain *MetaRecord", mf.Records[4])
	}
}

func TestParseEndSentinel(t *testing.T) {
	data := wmftest.New(0, 0, 100, 100, 96, 0).
		SaveDC().
		Record(0x8000).
		SaveDC().
		Bytes()

	mf, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Records) != 1 {
		t.Errorf("len(Records) = %d, want 1: any non-positive function ends the stream", len(mf.Records))
	}
	if want := int64(StandardHeaderWords + 3 + 3); mf.Words() != want {
		t.Errorf("Words() = %d, want %d", mf.Words(), want)
	}
}

func TestParseErrors(t *testing.T) {
	good := wmftest.New(0, 0, 100, 100, 96, 0).SaveDC().Rectangle(0, 0, 10, 10).Bytes()

	tiny := append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(tiny[recordsStart:], 2)

	tests := []struct {
		name   string
		data   []byte
		want   error
		record int
		offset int64
	}{
		{"no end record", good[:len(good)-6], ErrTruncated, 2, recordsStart + 6 + 14},
		{"short payload", good[:len(good)-8], ErrTruncated, 1, recordsStart + 6},
		{"short record header", good[:recordsStart+3], ErrTruncated, 0, recordsStart},
		{"record size below header", tiny, ErrRecordSize, 0, recordsStart},
		{"not placeable", good[placeableHeaderSize:], ErrNotPlaceable, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf, err := Parse(bytes.NewReader(tt.data))
			if mf != nil {
				t.Error("Parse() returned a partial metafile")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Parse() error type = %T, want *FormatError", err)
			}
			if fe.Record != tt.record || fe.Offset != tt.offset {
				t.Errorf("FormatError = record %d offset %d, want record %d offset %d",
					fe.Record, fe.Offset, tt.record, tt.offset)
			}
		})
	}
}

func TestParseObjects(t *testing.T) {
	data := wmftest.New(0, 0, 100, 100, 96, 2).
		CreatePen(0, 1, 0).
		CreateBrush(0, 0, 0).
		DeleteObject(0).
		CreateFont(wmftest.Font{Face: "Arial"}).
		CreateBrush(0, 0, 0).
		Bytes()

	mf, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	objs := mf.Objects()
	if objs.Len() != 2 || objs.Used() != 2 {
		t.Fatalf("Objects() Len = %d Used = %d, want 2 and 2", objs.Len(), objs.Used())
	}
	if obj, _ := objs.Get(0); obj.Type != ObjectFont {
		t.Errorf("slot 0 = %v, want Font", obj.Type)
	}
	if obj, _ := objs.Get(1); obj.Type != ObjectBrush {
		t.Errorf("slot 1 = %v, want Brush", obj.Type)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		err  *FormatError
		want string
	}{
		{&FormatError{Offset: 4, Record: -1, Err: ErrTruncated}, "wmf: unexpected end of stream (header, offset 4)"},
		{&FormatError{Offset: 40, Record: 3, Err: ErrRecordSize}, "wmf: record size smaller than record header (record 3, offset 40)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestMetafilePixelSize(t *testing.T) {
	mf, err := Parse(bytes.NewReader(wmftest.New(0, 0, 1440, 720, 1440, 0).Bytes()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tests := []struct {
		opts []Option
		w, h int
	}{
		{nil, 96, 48},
		{[]Option{WithDPI(300)}, 300, 150},
		{[]Option{WithScale(1.5)}, 144, 72},
	}
	for _, tt := range tests {
		got := mf.PixelSize(tt.opts...)
		if got.X != tt.w || got.Y != tt.h {
			t.Errorf("PixelSize() = %v, want %dx%d", got, tt.w, tt.h)
		}
	}
}
