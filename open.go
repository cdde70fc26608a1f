package wmf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1F, 0x8B}

// Uncompress returns a reader over the metafile bytes of r. Input that
// starts with the gzip signature, as .wmz files do, is decompressed.
// The returned closer releases the decompressor; it does not close r.
func Uncompress(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) {
		return br, io.NopCloser(nil), nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, nil, fmt.Errorf("wmf: gzip: %w", err)
	}
	return zr, zr, nil
}

// OpenFile parses the metafile stored in the named file, which may be
// gzip-compressed.
func OpenFile(name string) (*Metafile, error) {
	f, err := os.Open(name) // #nosec G304 -- caller-provided path is the input
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, c, err := Uncompress(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer c.Close()

	mf, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return mf, nil
}
