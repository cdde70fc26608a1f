package recording

import (
	"image"

	wmf "github.com/gogpu/gg-wmf"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one wmf.Surface method.
type CommandType uint8

const (
	// State commands
	CmdPushState CommandType = iota // Save current state
	CmdPopState                     // Restore previous state
	CmdMoveTo                       // Move the current point

	// Shape commands
	CmdLineTo          // Stroke a segment from the current point
	CmdFillPolygon     // Fill one or more rings
	CmdStrokePolygon   // Stroke a polyline or polygon
	CmdFillRect        // Fill a rectangle
	CmdStrokeRect      // Stroke a rectangle
	CmdFillRoundRect   // Fill a rounded rectangle
	CmdStrokeRoundRect // Stroke a rounded rectangle
	CmdFillEllipse     // Fill an ellipse
	CmdStrokeEllipse   // Stroke an ellipse
	CmdDrawArc         // Stroke an arc, chord or pie
	CmdFillArc         // Fill a chord or pie

	// Content commands
	CmdDrawText  // Draw a text run
	CmdBlitImage // Draw part of an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPushState:       "PushState",
	CmdPopState:        "PopState",
	CmdMoveTo:          "MoveTo",
	CmdLineTo:          "LineTo",
	CmdFillPolygon:     "FillPolygon",
	CmdStrokePolygon:   "StrokePolygon",
	CmdFillRect:        "FillRect",
	CmdStrokeRect:      "StrokeRect",
	CmdFillRoundRect:   "FillRoundRect",
	CmdStrokeRoundRect: "StrokeRoundRect",
	CmdFillEllipse:     "FillEllipse",
	CmdStrokeEllipse:   "StrokeEllipse",
	CmdDrawArc:         "DrawArc",
	CmdFillArc:         "FillArc",
	CmdDrawText:        "DrawText",
	CmdBlitImage:       "BlitImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual drawing operations that can be
// inspected and replayed to different surfaces.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// ImageRef is a reference to an image in the resource pool.
// The zero value is a valid reference to the first image (if any).
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
// Use this to indicate that a reference does not point to a valid resource.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// Fill is a recorded wmf.Paint: a solid color, or a pooled pattern
// image when Pattern is valid.
type Fill struct {
	Color   wmf.Color
	Pattern ImageRef
}

// IsPattern reports whether the fill refers to a pattern image.
func (f Fill) IsPattern() bool {
	return f.Pattern.IsValid()
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// PushStateCommand saves the surface state.
type PushStateCommand struct{}

// Type implements Command.
func (PushStateCommand) Type() CommandType { return CmdPushState }

// PopStateCommand restores the most recently pushed state.
type PopStateCommand struct{}

// Type implements Command.
func (PopStateCommand) Type() CommandType { return CmdPopState }

// MoveToCommand moves the current point.
type MoveToCommand struct {
	Point wmf.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// --------------------------------------------------------------------------
// Shape Commands
// --------------------------------------------------------------------------

// LineToCommand strokes a segment from the current point.
type LineToCommand struct {
	Point wmf.Point
	Pen   wmf.Pen
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// FillPolygonCommand fills one or more rings as a single shape.
type FillPolygonCommand struct {
	Rings [][]wmf.Point
	Rule  wmf.FillRule
	Fill  Fill
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// StrokePolygonCommand strokes a polyline, closed when Closed is true.
type StrokePolygonCommand struct {
	Points []wmf.Point
	Closed bool
	Pen    wmf.Pen
}

// Type implements Command.
func (StrokePolygonCommand) Type() CommandType { return CmdStrokePolygon }

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	Rect wmf.Rect
	Fill Fill
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes the outline of a rectangle.
type StrokeRectCommand struct {
	Rect wmf.Rect
	Pen  wmf.Pen
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// FillRoundRectCommand fills a rectangle with elliptical corners.
type FillRoundRectCommand struct {
	Rect             wmf.Rect
	CornerW, CornerH float64
	Fill             Fill
}

// Type implements Command.
func (FillRoundRectCommand) Type() CommandType { return CmdFillRoundRect }

// StrokeRoundRectCommand strokes a rectangle with elliptical corners.
type StrokeRoundRectCommand struct {
	Rect             wmf.Rect
	CornerW, CornerH float64
	Pen              wmf.Pen
}

// Type implements Command.
func (StrokeRoundRectCommand) Type() CommandType { return CmdStrokeRoundRect }

// FillEllipseCommand fills the ellipse inscribed in Rect.
type FillEllipseCommand struct {
	Rect wmf.Rect
	Fill Fill
}

// Type implements Command.
func (FillEllipseCommand) Type() CommandType { return CmdFillEllipse }

// StrokeEllipseCommand strokes the ellipse inscribed in Rect.
type StrokeEllipseCommand struct {
	Rect wmf.Rect
	Pen  wmf.Pen
}

// Type implements Command.
func (StrokeEllipseCommand) Type() CommandType { return CmdStrokeEllipse }

// DrawArcCommand strokes an arc, chord or pie.
type DrawArcCommand struct {
	Arc wmf.Arc
	Pen wmf.Pen
}

// Type implements Command.
func (DrawArcCommand) Type() CommandType { return CmdDrawArc }

// FillArcCommand fills a chord or pie.
type FillArcCommand struct {
	Arc  wmf.Arc
	Fill Fill
}

// Type implements Command.
func (FillArcCommand) Type() CommandType { return CmdFillArc }

// --------------------------------------------------------------------------
// Content Commands
// --------------------------------------------------------------------------

// DrawTextCommand draws a text run.
type DrawTextCommand struct {
	Run wmf.TextRun
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// BlitImageCommand draws the Src region of a pooled image into Dst.
type BlitImageCommand struct {
	Image ImageRef
	Src   image.Rectangle
	Dst   wmf.Rect
}

// Type implements Command.
func (BlitImageCommand) Type() CommandType { return CmdBlitImage }
