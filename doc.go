// Package wmf reads placeable Windows metafiles and replays them onto an
// abstract drawing surface.
//
// # Overview
//
// A metafile is a recorded sequence of GDI calls. Parse decodes the
// placeable header, the standard header and the record stream into a
// Metafile; Replay interprets the records in order and issues drawing
// calls on a Surface in device pixels. The recording package captures
// those calls, and its raster backend renders them with gg.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg-wmf"
//		"github.com/gogpu/gg-wmf/recording"
//		_ "github.com/gogpu/gg-wmf/recording/backends/raster"
//	)
//
//	mf, err := wmf.OpenFile("drawing.wmf")
//	if err != nil {
//		return err
//	}
//	size := mf.PixelSize(wmf.WithDPI(150))
//	backend, _ := recording.NewBackend("raster")
//	backend.Begin(size.X, size.Y)
//	err = wmf.Replay(mf, backend, wmf.WithDPI(150))
//	backend.End()
//
// # Coordinate System
//
// Logical coordinates are mapped to device pixels by the window set in
// the stream and the header's units per inch:
//   - Origin (0,0) at the top-left of the placeable frame
//   - X increases right
//   - Y increases down
//   - Arc angles in degrees, counter-clockwise as seen on screen
//
// # Best-effort replay
//
// Records with unknown functions are skipped by their declared size.
// References to deleted or never-created objects draw nothing. The first
// primitive painted with a pen or brush loses its pure white fill and
// outline; MeasureBounds applies the same rule on its own.
package wmf
