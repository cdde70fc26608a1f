package wmf

import (
	"math"

	"github.com/gogpu/gg-wmf/internal/dib"
)

// dashFrameUnits is the number of dash units across the frame width.
const dashFrameUnits = 350

// Dash patterns in dash units.
var dashPatterns = map[PenStyle][]float64{
	PenDash:       {5, 2},
	PenDot:        {1, 5},
	PenDashDot:    {5, 2, 1, 2},
	PenDashDotDot: {5, 2, 1, 2, 1, 2},
}

// Replay interprets the records of mf in order and draws them on s.
//
// Each call works on its own object table, device context and mapping,
// so one Metafile can be replayed concurrently onto different surfaces.
// Unknown records and references to missing objects are skipped. The
// only fatal condition is a RestoreDC without a matching SaveDC, reported
// as a *ReplayError wrapping ErrUnbalancedRestore; drawing done before
// that record stays on s.
func Replay(mf *Metafile, s Surface, opts ...Option) error {
	p := newPlayer(mf, s, NewConfig(opts...))
	for i, rec := range mf.Records {
		p.index = i
		if err := p.play(rec); err != nil {
			return &ReplayError{Record: i, Opcode: rec.Opcode(), Err: err}
		}
	}
	return nil
}

// player is the state of one replay.
type player struct {
	mf      *Metafile
	s       Surface
	m       *Mapping
	objects *ObjectTable
	st      dcState
	saves   saveStack
	index   int

	// firstPaint is set until the first primitive that would paint
	// with a pen or brush.
	firstPaint bool

	// synced reports whether the surface's pen position is st.pos.
	synced bool
}

func newPlayer(mf *Metafile, s Surface, cfg Config) *player {
	return &player{
		mf:         mf,
		s:          s,
		m:          NewMapping(mf.Header, cfg),
		objects:    NewObjectTable(int(mf.Header.NumObjects)),
		st:         defaultDCState(),
		firstPaint: true,
	}
}

func (p *player) play(rec Record) error {
	r := rec.Meta()
	if p.m.apply(r) {
		return nil
	}
	if r.Function.createsObject() {
		p.create(rec)
		return nil
	}

	switch r.Function {
	case OpSetBkMode:
		p.st.bkOpaque = r.Uint16(0) == bkOpaque
	case OpSetPolyFillMode:
		if r.Uint16(0) == fillWinding {
			p.st.fillRule = FillNonZero
		} else {
			p.st.fillRule = FillEvenOdd
		}
	case OpSetBkColor:
		p.st.bkColor = ColorFromRef(r.Uint32(0))
	case OpSetTextColor:
		p.st.textColor = ColorFromRef(r.Uint32(0))
	case OpSetTextAlign:
		p.st.textAlign = r.Uint16(0)

	case OpSelectObject:
		p.selectObject(int(r.Uint16(0)))
	case OpDeleteObject:
		p.deleteObject(int(r.Uint16(0)))

	case OpSaveDC:
		p.saves.push(p.st)
		p.s.PushState()
	case OpRestoreDC:
		return p.restore(int(r.Int16(0)))

	case OpMoveTo:
		p.st.pos = p.m.Point(r.Int16(1), r.Int16(0))
		p.s.MoveTo(p.st.pos)
		p.synced = true
	case OpLineTo:
		p.lineTo(p.m.Point(r.Int16(1), r.Int16(0)))
	case OpPolygon:
		if pts := p.points(r, 0); len(pts) > 0 {
			p.polygon([][]Point{pts})
		}
	case OpPolyline:
		if pts := p.points(r, 0); len(pts) > 0 {
			if pen, stroke := p.strokeOnly(); stroke {
				p.s.StrokePolygon(pts, false, pen)
			}
		}
	case OpPolyPolygon:
		if rings := p.rings(r); len(rings) > 0 {
			p.polygon(rings)
		}
	case OpRectangle:
		rect := p.m.Rect(r.Int16(3), r.Int16(2), r.Int16(1), r.Int16(0))
		paint, fill, pen, stroke := p.resolveShape()
		if fill {
			p.s.FillRect(rect, paint)
		}
		if stroke {
			p.s.StrokeRect(rect, pen)
		}
	case OpRoundRect:
		rect := p.m.Rect(r.Int16(5), r.Int16(4), r.Int16(3), r.Int16(2))
		cw := math.Abs(p.m.DX(float64(r.Int16(1))))
		ch := math.Abs(p.m.DY(float64(r.Int16(0))))
		paint, fill, pen, stroke := p.resolveShape()
		if fill {
			p.s.FillRoundRect(rect, cw, ch, paint)
		}
		if stroke {
			p.s.StrokeRoundRect(rect, cw, ch, pen)
		}
	case OpEllipse:
		rect := p.m.Rect(r.Int16(3), r.Int16(2), r.Int16(1), r.Int16(0))
		paint, fill, pen, stroke := p.resolveShape()
		if fill {
			p.s.FillEllipse(rect, paint)
		}
		if stroke {
			p.s.StrokeEllipse(rect, pen)
		}
	case OpArc:
		if pen, stroke := p.strokeOnly(); stroke {
			p.s.DrawArc(p.arc(r, ArcOpen), pen)
		}
	case OpPie, OpChord:
		kind := ArcPie
		if r.Function == OpChord {
			kind = ArcChord
		}
		a := p.arc(r, kind)
		paint, fill, pen, stroke := p.resolveShape()
		if fill {
			p.s.FillArc(a, paint)
		}
		if stroke {
			p.s.DrawArc(a, pen)
		}
	case OpSetPixel:
		p.setPixel(ColorFromRef(r.Uint32(0)), r.Int16(3), r.Int16(2))
	case OpPatBlt:
		p.patBlt(r.Uint32(0), r.Int16(5), r.Int16(4), r.Int16(3), r.Int16(2))

	case OpTextOut, OpExtTextOut, OpDrawText:
		if sr, ok := rec.(*StringRecord); ok {
			p.text(sr)
		} else {
			p.firstPaint = false
		}

	case OpDIBStretchBlt, OpStretchDIB, OpDIBBitBlt, OpSetDIBToDev:
		p.bitmap(rec)

	default:
		Logger().Debug("wmf: skipped record",
			"record", p.index, "opcode", r.Function, "words", r.Words())
	}
	return nil
}

// create handles the object creation records. Objects are auto-assigned
// to the first free slot.
func (p *player) create(rec Record) {
	obj, _ := newObject(rec)
	if obj.Type == ObjectBrush {
		paint, ok := p.brushPaint(obj.Brush)
		if ok {
			obj.Paint = paint
		} else {
			obj.Type = ObjectNullBrush
		}
	}
	if p.objects.AddAt(obj, 0) < 0 {
		Logger().Debug("wmf: object table full",
			"record", p.index, "opcode", rec.Opcode(), "capacity", p.objects.Len())
	}
}

// brushPaint resolves the paint of a brush in the current device context.
func (p *player) brushPaint(b LogBrush) (Paint, bool) {
	switch b.Style {
	case BrushSolid:
		return SolidPaint(b.Color), true
	case BrushHatched:
		var bg *Color
		if p.st.bkOpaque {
			c := p.st.bkColor
			bg = &c
		}
		img, ok := hatchPattern(b.Hatch, b.Color, bg)
		if !ok {
			return Paint{}, false
		}
		return Paint{Color: b.Color, Pattern: img}, true
	case BrushDIBPattern:
		img, _, err := dib.Decode(b.DIB)
		if err != nil {
			Logger().Debug("wmf: pattern brush bitmap not decoded",
				"record", p.index, "err", err)
			return Paint{}, false
		}
		return Paint{Pattern: dib.Tile(img)}, true
	}
	return Paint{}, false
}

func (p *player) selectObject(index int) {
	if stock, ok := resolveStock(index, p.objects.Len()); ok {
		switch stock {
		case StockNullBrush:
			p.st.brush = -1
		case StockNullPen:
			p.st.pen = -1
		default:
			Logger().Debug("wmf: stock object ignored",
				"record", p.index, "stock", stock)
		}
		return
	}
	obj, ok := p.objects.Get(index)
	if !ok {
		Logger().Debug("wmf: select of unused handle", "record", p.index, "handle", index)
		return
	}
	switch obj.Type {
	case ObjectPen:
		p.st.pen = index
		p.st.penWidth = obj.Pen.Width
	case ObjectBrush:
		p.st.brush = index
	case ObjectFont:
		p.st.font = index
	case ObjectNullPen:
		p.st.pen = -1
	case ObjectNullBrush:
		p.st.brush = -1
	}
}

func (p *player) deleteObject(index int) {
	if _, ok := resolveStock(index, p.objects.Len()); ok {
		return
	}
	if p.st.pen == index {
		p.st.pen = -1
	}
	if p.st.brush == index {
		p.st.brush = -1
	}
	if p.st.font == index {
		p.st.font = -1
	}
	p.objects.Delete(index)
}

func (p *player) restore(n int) error {
	st, popped, ok := p.saves.restore(n)
	if !ok {
		Logger().Warn("wmf: unbalanced RestoreDC",
			"record", p.index, "level", n, "depth", p.saves.Depth())
		return ErrUnbalancedRestore
	}
	p.st = st
	for range popped {
		p.s.PopState()
	}
	p.synced = false
	return nil
}

// suppressFirst consumes the first-paint flag and reports whether a
// primitive of the given whiteness must be dropped.
func (p *player) suppressFirst(white bool) bool {
	if !p.firstPaint {
		return false
	}
	p.firstPaint = false
	return white
}

// strokeOnly resolves the pen of an open primitive.
func (p *player) strokeOnly() (Pen, bool) {
	_, _, pen, stroke := p.resolve(false)
	return pen, stroke
}

func (p *player) resolveShape() (paint Paint, fill bool, pen Pen, stroke bool) {
	return p.resolve(true)
}

// resolve returns the paint and pen of a primitive. The brush is only
// considered for closed shapes. When the primitive is the first one to
// paint, a white fill is dropped, and so is a white outline unless the
// fill painted.
func (p *player) resolve(fillable bool) (paint Paint, fill bool, pen Pen, stroke bool) {
	if fillable && p.st.brush >= 0 {
		if obj, ok := p.objects.Get(p.st.brush); ok && obj.Type == ObjectBrush {
			paint, fill = obj.Paint, true
		}
	}
	if p.st.pen >= 0 {
		if obj, ok := p.objects.Get(p.st.pen); ok && obj.Type == ObjectPen {
			pen, stroke = p.pen(obj.Pen), true
		}
	}
	if (fill || stroke) && p.firstPaint {
		p.firstPaint = false
		if fill && paint.IsWhite() {
			fill = false
		}
		if stroke && !fill && pen.Color.IsWhite() {
			stroke = false
		}
	}
	return paint, fill, pen, stroke
}

// pen converts the selected logical pen to device units. Widths below
// one pixel draw as hairlines; dashes scale with the frame width.
func (p *player) pen(lp LogPen) Pen {
	pen := Pen{
		Color: lp.Color,
		Width: max(math.Abs(float64(p.st.penWidth)*p.m.ScaleX()), 1),
		Style: lp.Style,
	}
	if pattern, ok := dashPatterns[lp.Style]; ok {
		w, _ := p.m.FramePixels()
		unit := math.Abs(w) / dashFrameUnits
		if unit <= 0 {
			unit = 1
		}
		pen.Dash = make([]float64, len(pattern))
		for i, v := range pattern {
			pen.Dash[i] = v * unit
		}
	}
	return pen
}

func (p *player) lineTo(pt Point) {
	pen, stroke := p.strokeOnly()
	if stroke {
		if !p.synced {
			p.s.MoveTo(p.st.pos)
		}
		p.s.LineTo(pt, pen)
		p.synced = true
	} else {
		p.synced = false
	}
	p.st.pos = pt
}

// points decodes a count-prefixed list of x, y pairs starting at
// operand i. The count is clamped to the operands present.
func (p *player) points(r *MetaRecord, i int) []Point {
	n := int(r.Uint16(i))
	n = min(n, (r.Words()-i-1)/2)
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for k := range pts {
		pts[k] = p.m.Point(r.Int16(i+1+2*k), r.Int16(i+2+2*k))
	}
	return pts
}

// rings decodes the polygons of a PolyPolygon record.
func (p *player) rings(r *MetaRecord) [][]Point {
	count := int(r.Uint16(0))
	if !r.Has(1 + count) {
		return nil
	}
	rings := make([][]Point, 0, count)
	off := 1 + count
	for i := range count {
		n := int(r.Uint16(1 + i))
		if !r.Has(off + 2*n) {
			break
		}
		ring := make([]Point, n)
		for k := range ring {
			ring[k] = p.m.Point(r.Int16(off+2*k), r.Int16(off+2*k+1))
		}
		off += 2 * n
		if n > 0 {
			rings = append(rings, ring)
		}
	}
	return rings
}

func (p *player) polygon(rings [][]Point) {
	paint, fill, pen, stroke := p.resolveShape()
	if fill {
		p.s.FillPolygon(rings, p.st.fillRule, paint)
	}
	if stroke {
		for _, ring := range rings {
			p.s.StrokePolygon(ring, true, pen)
		}
	}
}

// arc decodes Arc, Pie and Chord operands: the end and start radials
// followed by the bounding box, all in reverse order.
func (p *player) arc(r *MetaRecord, kind ArcKind) Arc {
	bounds := p.m.Rect(r.Int16(7), r.Int16(6), r.Int16(5), r.Int16(4))
	start := p.m.Point(r.Int16(3), r.Int16(2))
	end := p.m.Point(r.Int16(1), r.Int16(0))
	return newArc(bounds, start, end, kind)
}

func (p *player) setPixel(c Color, x, y int16) {
	if p.suppressFirst(c.IsWhite()) {
		return
	}
	pt := p.m.Point(x, y)
	w := max(math.Abs(p.m.ScaleX()), 1)
	h := max(math.Abs(p.m.ScaleY()), 1)
	p.s.FillRect(NewRect(pt.X, pt.Y, w, h), SolidPaint(c))
}

func (p *player) patBlt(rop uint32, x, y, w, h int16) {
	var paint Paint
	switch rop {
	case ropPatCopy:
		if p.st.brush < 0 {
			return
		}
		obj, ok := p.objects.Get(p.st.brush)
		if !ok || obj.Type != ObjectBrush {
			return
		}
		paint = obj.Paint
	case ropBlackness:
		paint = SolidPaint(Black)
	case ropWhiteness:
		paint = SolidPaint(White)
	default:
		Logger().Debug("wmf: raster operation not supported",
			"record", p.index, "rop", rop)
		return
	}
	if p.suppressFirst(paint.IsWhite()) {
		return
	}
	p.s.FillRect(p.m.Rect(x, y, x+w, y+h), paint)
}

func (p *player) font() LogFont {
	if p.st.font >= 0 {
		if obj, ok := p.objects.Get(p.st.font); ok && obj.Type == ObjectFont {
			return obj.Font
		}
	}
	return LogFont{}
}

func (p *player) text(r *StringRecord) {
	p.firstPaint = false

	lf := p.font()
	s := lf.Decode(r.Text)
	if s == "" {
		return
	}
	origin := p.m.Point(r.X, r.Y)
	if p.st.textAlign&taUpdateCP != 0 {
		origin = p.st.pos
	}
	run := TextRun{
		Text:     s,
		Origin:   origin,
		Rotation: float64(lf.Escapement) / 10,
		Align:    horizontalAlign(p.st.textAlign),
		Baseline: verticalAlign(p.st.textAlign),
		Font:     fontSpec(lf, p.m, p.mf.Header.Units()),
		Color:    p.st.textColor,
	}
	if r.Options&etoOpaque != 0 || p.st.bkOpaque {
		bg := p.st.bkColor
		run.Background = &bg
	}
	if r.HasRect && r.Options&etoClipped != 0 {
		clip := p.m.Rect(r.Rect[0], r.Rect[1], r.Rect[2], r.Rect[3])
		run.Clip = &clip
	}
	p.s.DrawText(run)
	if p.st.textAlign&taUpdateCP != 0 {
		p.st.pos = advance(run, lf, p.m)
		p.synced = false
	}
}

// bitmap handles the records that copy a DIB to the device. Variants
// recorded without a bitmap paint their destination like PatBlt.
func (p *player) bitmap(rec Record) {
	br, ok := rec.(*BitmapRecord)
	if !ok {
		r := rec.Meta()
		n := r.Words()
		switch {
		case r.Function == OpDIBStretchBlt && n == dibStretchBltNoBitmapWords:
		case r.Function == OpDIBBitBlt && n == dibBitBltNoBitmapWords:
		default:
			return
		}
		p.patBlt(r.Uint32(0), r.Int16(n-1), r.Int16(n-2), r.Int16(n-3), r.Int16(n-4))
		return
	}
	img, info, err := dib.Decode(br.DIB)
	if err != nil {
		Logger().Debug("wmf: bitmap not decoded",
			"record", p.index, "opcode", br.Function, "err", err)
		return
	}
	src := info.SourceRect(int(br.SrcX), int(br.SrcY), int(br.SrcW), int(br.SrcH))
	dst := p.m.Rect(br.DstX, br.DstY, br.DstX+br.DstW, br.DstY+br.DstH)
	p.s.BlitImage(img, src, dst)
}
