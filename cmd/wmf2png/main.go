// Command wmf2png converts placeable Windows metafiles (.wmf, .wmz) to PNG.
//
// Usage:
//
//	wmf2png [-dpi 96] [-scale 1] [-backend raster] [-o out.png] [-dump] [-v] file.wmf
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	wmf "github.com/gogpu/gg-wmf"
	"github.com/gogpu/gg-wmf/recording"
	_ "github.com/gogpu/gg-wmf/recording/backends/raster"
)

type options struct {
	dpi     float64
	scale   float64
	backend string
	output  string
	dump    bool
	verbose bool
}

func main() {
	var opts options
	flag.Float64Var(&opts.dpi, "dpi", wmf.DefaultDPI, "output resolution in dots per inch")
	flag.Float64Var(&opts.scale, "scale", 1, "additional scale factor")
	flag.StringVar(&opts.backend, "backend", "raster", "output backend ("+strings.Join(recording.Backends(), ", ")+")")
	flag.StringVar(&opts.output, "o", "", "output file (default: input name with .png)")
	flag.BoolVar(&opts.dump, "dump", false, "print the header and record list instead of rendering")
	flag.BoolVar(&opts.verbose, "v", false, "log parse and replay diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: wmf2png [flags] file.wmf|file.wmz\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if opts.verbose {
		wmf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(flag.Arg(0), opts, os.Stdout); err != nil {
		log.Fatalf("wmf2png: %v", err)
	}
}

func run(input string, opts options, stdout io.Writer) error {
	store, err := load(input)
	if err != nil {
		return err
	}
	if opts.dump {
		return dump(stdout, store.Metafile(), opts)
	}

	backend, err := recording.NewBackend(opts.backend)
	if err != nil {
		return err
	}
	out, ok := backend.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write output", opts.backend)
	}

	wopts := []wmf.Option{wmf.WithDPI(opts.dpi), wmf.WithScale(opts.scale)}
	size := store.Metafile().PixelSize(wopts...)
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%s: empty frame %v", input, store.Metafile().Header.Bounds())
	}
	if err := backend.Begin(size.X, size.Y); err != nil {
		return err
	}
	if err := store.Replay(backend, wopts...); err != nil {
		// The records before the failure are drawn; keep them.
		fmt.Fprintf(os.Stderr, "wmf2png: %v\n", err)
	}
	if err := backend.End(); err != nil {
		return err
	}

	name := opts.output
	if name == "" {
		name = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	f, err := os.Create(name) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", name, size.X, size.Y)
	return nil
}

// load reads input, decompressing .wmz files, into a new store.
func load(input string) (*wmf.Store, error) {
	f, err := os.Open(input) // #nosec G304 -- input path is provided by the user
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closer, err := wmf.Uncompress(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	defer closer.Close()

	store := wmf.NewStore()
	if err := store.Read(r); err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return store, nil
}

func dump(w io.Writer, mf *wmf.Metafile, opts options) error {
	h := mf.Header
	size := mf.PixelSize(wmf.WithDPI(opts.dpi), wmf.WithScale(opts.scale))
	fmt.Fprintf(w, "frame %d,%d %d,%d at %d units/inch (%dx%d px)\n",
		h.Left, h.Top, h.Right, h.Bottom, h.UnitsPerInch, size.X, size.Y)
	fmt.Fprintf(w, "version 0x%04X, %d words (read %d), %d objects, %d records\n",
		h.Version, h.SizeWords, mf.Words(), h.NumObjects, len(mf.Records))
	if r, ok := wmf.MeasureBounds(mf, wmf.WithDPI(opts.dpi), wmf.WithScale(opts.scale)); ok {
		fmt.Fprintf(w, "painted bounds %.1f,%.1f %.1f,%.1f px\n", r.MinX, r.MinY, r.MaxX, r.MaxY)
	}
	for i, rec := range mf.Records {
		if _, err := fmt.Fprintf(w, "%5d  %-24v %d words\n", i, rec.Opcode(), rec.Words()); err != nil {
			return err
		}
	}
	return nil
}
