package wmf

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"io"
)

// recordHeaderWords is the size of the size and function fields that
// open every record.
const recordHeaderWords = 3

// Metafile is a parsed placeable metafile: the headers, the ordered
// record list and the object table built while parsing.
//
// A Metafile is immutable after Parse returns and may be replayed from
// several goroutines at once.
type Metafile struct {
	Header  Header
	Records []Record

	objects *ObjectTable
	words   int64
}

// Objects returns the object table populated while parsing. It holds
// the objects still alive at the end of the stream.
func (m *Metafile) Objects() *ObjectTable {
	return m.objects
}

// Words returns the number of 16-bit words consumed after the placeable
// header: the standard header, every record and the end-of-file record.
// For a well-formed file it equals Header.SizeWords.
func (m *Metafile) Words() int64 {
	return m.words
}

// PixelSize returns the device size of the picture for the given options.
func (m *Metafile) PixelSize(opts ...Option) image.Point {
	cfg := NewConfig(opts...)
	return m.Header.PixelSize(cfg.DPI * cfg.Scale)
}

// countingReader tracks the stream offset for error reports.
type countingReader struct {
	r   io.Reader
	off int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.off += int64(n)
	return n, err
}

// Parse reads a placeable metafile from r.
//
// Every record is consumed by its declared size, including records with
// unknown functions, so the stream stays aligned. Parse fails with a
// *FormatError when the header is invalid or the stream ends before the
// end-of-file record; no partial result is returned.
func Parse(r io.Reader) (*Metafile, error) {
	cr := &countingReader{r: bufio.NewReader(r)}
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	mf := &Metafile{
		Header:  h,
		objects: NewObjectTable(int(h.NumObjects)),
		words:   StandardHeaderWords,
	}

	var (
		head [6]byte
		buf  bytes.Buffer
	)
	for index := 0; ; index++ {
		start := cr.off
		if _, err := io.ReadFull(cr, head[:]); err != nil {
			return nil, &FormatError{Offset: start, Record: index, Err: ErrTruncated}
		}
		size := uint32(head[0]) | uint32(head[1])<<8 | uint32(head[2])<<16 | uint32(head[3])<<24
		fn := uint16(head[4]) | uint16(head[5])<<8

		if int16(fn) <= 0 {
			mf.words += recordHeaderWords
			break
		}
		if size < recordHeaderWords {
			return nil, &FormatError{Offset: start, Record: index, Err: ErrRecordSize}
		}

		buf.Reset()
		n := int64(size-recordHeaderWords) * 2
		if _, err := io.CopyN(&buf, cr, n); err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrTruncated
			}
			return nil, &FormatError{Offset: start, Record: index, Err: err}
		}
		payload := make([]byte, n)
		copy(payload, buf.Bytes())

		op := Opcode(fn)
		rec, ok := decodeRecord(op, payload)
		if !ok {
			Logger().Warn("wmf: record too short for its layout, kept as plain record",
				"record", index, "opcode", op, "words", rec.Words())
		}
		mf.Records = append(mf.Records, rec)
		mf.words += int64(size)
		mf.track(rec)
	}

	Logger().Info("wmf: parsed metafile",
		"records", len(mf.Records),
		"objects", mf.objects.Used(),
		"capacity", mf.objects.Len(),
		"bounds", h.Bounds(),
		"unitsPerInch", h.Units())
	if int64(h.SizeWords) != mf.words {
		Logger().Debug("wmf: header size differs from stream size",
			"header", h.SizeWords, "stream", mf.words)
	}
	return mf, nil
}

// track mirrors object creation and deletion into the parse-level table.
func (m *Metafile) track(rec Record) {
	if obj, ok := newObject(rec); ok {
		if m.objects.Add(obj) < 0 {
			Logger().Debug("wmf: object table full", "opcode", rec.Opcode())
		}
		return
	}
	if rec.Opcode() == OpDeleteObject {
		m.objects.Delete(int(rec.Meta().Uint16(0)))
	}
}
