package wmf

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestUncompress(t *testing.T) {
	plain := sampleMetafile()
	tests := []struct {
		name string
		in   []byte
	}{
		{"plain", plain},
		{"gzip", gzipped(t, plain)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, err := Uncompress(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Uncompress() error = %v", err)
			}
			defer c.Close()
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !bytes.Equal(got, plain) {
				t.Errorf("Uncompress() returned %d bytes, want the %d plain bytes", len(got), len(plain))
			}
		})
	}
}

func TestUncompressErrors(t *testing.T) {
	if _, _, err := Uncompress(bytes.NewReader([]byte{0x1F, 0x8B, 0x00})); err == nil {
		t.Error("Uncompress() of a broken gzip header should fail")
	}

	r, c, err := Uncompress(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Uncompress(empty) error = %v", err)
	}
	defer c.Close()
	if _, err := Parse(r); !errors.Is(err, ErrTruncated) {
		t.Errorf("Parse(empty) error = %v, want ErrTruncated", err)
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "sample.wmf")
	packed := filepath.Join(dir, "sample.wmz")
	broken := filepath.Join(dir, "broken.wmf")
	if err := os.WriteFile(plain, sampleMetafile(), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(packed, gzipped(t, sampleMetafile()), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(broken, []byte("GIF89a"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{plain, packed} {
		mf, err := OpenFile(name)
		if err != nil {
			t.Fatalf("OpenFile(%s) error = %v", filepath.Base(name), err)
		}
		if len(mf.Records) != 3 {
			t.Errorf("OpenFile(%s) records = %d, want 3", filepath.Base(name), len(mf.Records))
		}
	}

	if _, err := OpenFile(filepath.Join(dir, "missing.wmf")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(missing) error = %v, want fs.ErrNotExist", err)
	}
	if _, err := OpenFile(broken); !errors.Is(err, ErrNotPlaceable) {
		t.Errorf("OpenFile(broken) error = %v, want ErrNotPlaceable", err)
	}
}
