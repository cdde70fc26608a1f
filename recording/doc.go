// Package recording captures metafile replays as commands and plays them
// back to output backends.
//
// A Recorder is a wmf.Surface that stores typed commands instead of
// drawing. The resulting Recording can be inspected, or played back onto
// any surface or registered Backend any number of times.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures wmf.Surface calls as commands
//   - Recording: Stores commands and resources for playback
//   - Backend: Renders commands to a specific output format
//
// Commands mirror the wmf.Surface methods one to one:
//   - State commands (PushState, PopState, MoveTo)
//   - Shape commands (FillPolygon, StrokeRect, DrawArc, ...)
//   - Content commands (DrawText, BlitImage)
//
// # Basic Usage
//
//	mf, err := wmf.OpenFile("drawing.wmf")
//	if err != nil {
//		return err
//	}
//	size := mf.PixelSize()
//
//	rec := recording.NewRecorder(size.X, size.Y)
//	if err := wmf.Replay(mf, rec); err != nil {
//		log.Print(err) // partial output is still recorded
//	}
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("raster")
//	if err := r.Render(backend); err != nil {
//		return err
//	}
//	backend.(recording.WriterBackend).WriteTo(out)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/gg-wmf/recording/backends/raster"
//
// # Resource Management
//
// Bitmaps and brush pattern tiles are stored in a ResourcePool and
// referenced by ImageRef handles. Point slices and dash patterns are
// copied on record, so recordings stay valid after the replay returns.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Each goroutine should use its own
// Recorder instance. Recording objects are immutable after FinishRecording
// and can be played back from multiple goroutines.
package recording
