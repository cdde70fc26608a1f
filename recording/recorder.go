package recording

import (
	"fmt"
	"image"
	"slices"

	wmf "github.com/gogpu/gg-wmf"
)

// Recorder captures the calls of a metafile replay as commands.
// It implements wmf.Surface but stores commands instead of drawing
// pixels. Use FinishRecording to obtain an immutable Recording that can
// be replayed to different surfaces.
//
// Example:
//
//	rec := recording.NewRecorder(size.X, size.Y)
//	if err := wmf.Replay(mf, rec); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	depth         int
}

var _ wmf.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// fill pools the pattern of paint, if any.
func (r *Recorder) fill(paint wmf.Paint) Fill {
	f := Fill{Color: paint.Color, Pattern: ImageRef(InvalidRef)}
	if paint.Pattern != nil {
		f.Pattern = r.resources.AddImage(paint.Pattern)
	}
	return f
}

// pen copies the dash slice so later changes by the caller do not
// reach the recording.
func pen(p wmf.Pen) wmf.Pen {
	p.Dash = slices.Clone(p.Dash)
	return p
}

// --------------------------------------------------------------------------
// wmf.Surface
// --------------------------------------------------------------------------

// PushState implements wmf.Surface.
func (r *Recorder) PushState() {
	r.depth++
	r.record(PushStateCommand{})
}

// PopState implements wmf.Surface. Unbalanced pops are dropped.
func (r *Recorder) PopState() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.record(PopStateCommand{})
}

// MoveTo implements wmf.Surface.
func (r *Recorder) MoveTo(p wmf.Point) {
	r.record(MoveToCommand{Point: p})
}

// LineTo implements wmf.Surface.
func (r *Recorder) LineTo(p wmf.Point, pn wmf.Pen) {
	r.record(LineToCommand{Point: p, Pen: pen(pn)})
}

// FillPolygon implements wmf.Surface.
func (r *Recorder) FillPolygon(rings [][]wmf.Point, rule wmf.FillRule, paint wmf.Paint) {
	cloned := make([][]wmf.Point, len(rings))
	for i, ring := range rings {
		cloned[i] = slices.Clone(ring)
	}
	r.record(FillPolygonCommand{Rings: cloned, Rule: rule, Fill: r.fill(paint)})
}

// StrokePolygon implements wmf.Surface.
func (r *Recorder) StrokePolygon(points []wmf.Point, closed bool, pn wmf.Pen) {
	r.record(StrokePolygonCommand{Points: slices.Clone(points), Closed: closed, Pen: pen(pn)})
}

// FillRect implements wmf.Surface.
func (r *Recorder) FillRect(rect wmf.Rect, paint wmf.Paint) {
	r.record(FillRectCommand{Rect: rect, Fill: r.fill(paint)})
}

// StrokeRect implements wmf.Surface.
func (r *Recorder) StrokeRect(rect wmf.Rect, pn wmf.Pen) {
	r.record(StrokeRectCommand{Rect: rect, Pen: pen(pn)})
}

// FillRoundRect implements wmf.Surface.
func (r *Recorder) FillRoundRect(rect wmf.Rect, cornerW, cornerH float64, paint wmf.Paint) {
	r.record(FillRoundRectCommand{Rect: rect, CornerW: cornerW, CornerH: cornerH, Fill: r.fill(paint)})
}

// StrokeRoundRect implements wmf.Surface.
func (r *Recorder) StrokeRoundRect(rect wmf.Rect, cornerW, cornerH float64, pn wmf.Pen) {
	r.record(StrokeRoundRectCommand{Rect: rect, CornerW: cornerW, CornerH: cornerH, Pen: pen(pn)})
}

// FillEllipse implements wmf.Surface.
func (r *Recorder) FillEllipse(rect wmf.Rect, paint wmf.Paint) {
	r.record(FillEllipseCommand{Rect: rect, Fill: r.fill(paint)})
}

// StrokeEllipse implements wmf.Surface.
func (r *Recorder) StrokeEllipse(rect wmf.Rect, pn wmf.Pen) {
	r.record(StrokeEllipseCommand{Rect: rect, Pen: pen(pn)})
}

// DrawArc implements wmf.Surface.
func (r *Recorder) DrawArc(a wmf.Arc, pn wmf.Pen) {
	r.record(DrawArcCommand{Arc: a, Pen: pen(pn)})
}

// FillArc implements wmf.Surface.
func (r *Recorder) FillArc(a wmf.Arc, paint wmf.Paint) {
	r.record(FillArcCommand{Arc: a, Fill: r.fill(paint)})
}

// DrawText implements wmf.Surface.
func (r *Recorder) DrawText(run wmf.TextRun) {
	if run.Background != nil {
		bg := *run.Background
		run.Background = &bg
	}
	if run.Clip != nil {
		clip := *run.Clip
		run.Clip = &clip
	}
	r.record(DrawTextCommand{Run: run})
}

// BlitImage implements wmf.Surface.
func (r *Recorder) BlitImage(img image.Image, src image.Rectangle, dst wmf.Rect) {
	ref := r.resources.AddImage(img)
	if !ref.IsValid() {
		return
	}
	r.record(BlitImageCommand{Image: ref, Src: src, Dst: dst})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any wmf.Surface, including every Backend.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

func (r *Recording) paint(f Fill) (wmf.Paint, error) {
	p := wmf.Paint{Color: f.Color}
	if f.IsPattern() {
		p.Pattern = r.resources.GetImage(f.Pattern)
		if p.Pattern == nil {
			return p, fmt.Errorf("recording: unknown pattern image %d", f.Pattern)
		}
	}
	return p, nil
}

// Playback replays the recorded commands onto s. It stops at the first
// command that references a missing pooled image.
func (r *Recording) Playback(s wmf.Surface) error {
	for i, cmd := range r.commands {
		var (
			paint wmf.Paint
			err   error
		)
		switch c := cmd.(type) {
		case PushStateCommand:
			s.PushState()
		case PopStateCommand:
			s.PopState()
		case MoveToCommand:
			s.MoveTo(c.Point)
		case LineToCommand:
			s.LineTo(c.Point, c.Pen)
		case FillPolygonCommand:
			if paint, err = r.paint(c.Fill); err == nil {
				s.FillPolygon(c.Rings, c.Rule, paint)
			}
		case StrokePolygonCommand:
			s.StrokePolygon(c.Points, c.Closed, c.Pen)
		case FillRectCommand:
			if paint, err = r.paint(c.Fill); err == nil {
				s.FillRect(c.Rect, paint)
			}
		case StrokeRectCommand:
			s.StrokeRect(c.Rect, c.Pen)
		case FillRoundRectCommand:
			if paint, err = r.paint(c.Fill); err == nil {
				s.FillRoundRect(c.Rect, c.CornerW, c.CornerH, paint)
			}
		case StrokeRoundRectCommand:
			s.StrokeRoundRect(c.Rect, c.CornerW, c.CornerH, c.Pen)
		case FillEllipseCommand:
			if paint, err = r.paint(c.Fill); err == nil {
				s.FillEllipse(c.Rect, paint)
			}
		case StrokeEllipseCommand:
			s.StrokeEllipse(c.Rect, c.Pen)
		case DrawArcCommand:
			s.DrawArc(c.Arc, c.Pen)
		case FillArcCommand:
			if paint, err = r.paint(c.Fill); err == nil {
				s.FillArc(c.Arc, paint)
			}
		case DrawTextCommand:
			s.DrawText(c.Run)
		case BlitImageCommand:
			img := r.resources.GetImage(c.Image)
			if img == nil {
				err = fmt.Errorf("recording: unknown image %d", c.Image)
				break
			}
			s.BlitImage(img, c.Src, c.Dst)
		}
		if err != nil {
			return fmt.Errorf("command %d (%v): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Render plays the recording onto a backend sized to the recording,
// bracketed by Begin and End.
func (r *Recording) Render(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	if err := r.Playback(backend); err != nil {
		return err
	}
	return backend.End()
}
