package recording

import (
	"image"
	"io"

	wmf "github.com/gogpu/gg-wmf"
)

// Backend is the interface that all output backends must implement.
// A Backend is a wmf.Surface with a lifecycle: it receives the drawing
// calls of a metafile replay, or of a Recording played back, and
// translates them to its output format (raster pixels, vector markup, etc.).
//
// A Backend manages its own state stack for PushState/PopState.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all wmf.Surface methods (even if no-op for some)
//  3. Manage own state stack for PushState/PopState
//  4. Ignore drawing calls made outside Begin/End
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewSVGBackend()
//	    })
//	}
type Backend interface {
	wmf.Surface

	// Begin initializes the backend for rendering at the given dimensions
	// in device pixels. This must be called before any drawing operations.
	// Returns an error if initialization fails.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, Image) can be used.
	// Returns an error if finalization fails.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
// This is useful for streaming output or writing to network connections.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	// Returns the number of bytes written and any error.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered pixels.
// This is implemented by the raster backend and allows direct pixel access.
type ImageBackend interface {
	Backend

	// Image returns the rendered image.
	// This should only be called after End().
	// Returns nil if no image is available.
	Image() image.Image
}
