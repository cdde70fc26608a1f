package wmf

// axisRange accumulates the extent of coordinates along one axis,
// keeping only values strictly inside (lo, hi).
type axisRange struct {
	lo, hi   int
	min, max int
	set      bool
}

func (a *axisRange) add(v int) {
	if v <= a.lo || v >= a.hi {
		return
	}
	if !a.set {
		a.min, a.max, a.set = v, v, true
		return
	}
	a.min = min(a.min, v)
	a.max = max(a.max, v)
}

func (a *axisRange) merge(b axisRange) {
	if b.set {
		a.add(b.min)
		a.add(b.max)
	}
}

// boxRange accumulates a bounding box with independent axes.
type boxRange struct {
	x, y axisRange
}

func (b *boxRange) add(x, y int) {
	b.x.add(x)
	b.y.add(y)
}

// measurer is the state of a bounds pass. It tracks its own selection
// and its own first-paint flag, separate from any replay.
type measurer struct {
	objects    *ObjectTable
	pen, brush int
	font       LogFont
	firstPaint bool

	shapes boxRange
	images boxRange
}

// MeasureBounds returns the device rectangle covered by the painted
// content of mf, in the mapping Replay would use with the same options.
//
// The pass works on raw logical coordinates: only coordinates strictly
// inside the placeable frame count, each axis on its own. Bitmap
// destinations are collected apart from vector shapes and merged at the
// end. A first primitive painted in white, typically a background
// rectangle, is ignored. ok is false when nothing painted falls inside
// the frame.
func MeasureBounds(mf *Metafile, opts ...Option) (bounds Rect, ok bool) {
	h := mf.Header
	fr := h.Bounds()
	ms := &measurer{
		objects:    NewObjectTable(int(h.NumObjects)),
		pen:        -1,
		brush:      -1,
		firstPaint: true,
	}
	for _, box := range []*boxRange{&ms.shapes, &ms.images} {
		box.x.lo, box.x.hi = fr.Min.X, fr.Max.X
		box.y.lo, box.y.hi = fr.Min.Y, fr.Max.Y
	}
	for _, rec := range mf.Records {
		ms.measure(rec)
	}

	box := ms.shapes
	box.x.merge(ms.images.x)
	box.y.merge(ms.images.y)
	if !box.x.set && !box.y.set {
		return Rect{}, false
	}

	x0, x1 := fr.Min.X, fr.Max.X
	if box.x.set {
		x0, x1 = box.x.min, box.x.max
	}
	y0, y1 := fr.Min.Y, fr.Max.Y
	if box.y.set {
		y0, y1 = box.y.min, box.y.max
	}
	m := NewMapping(h, NewConfig(opts...))
	return m.Rect(int16(x0), int16(y0), int16(x1), int16(y1)), true
}

func (ms *measurer) measure(rec Record) {
	r := rec.Meta()
	if r.Function.createsObject() {
		obj, _ := newObject(rec)
		ms.objects.AddAt(obj, 0)
		return
	}
	switch r.Function {
	case OpSelectObject:
		ms.selectObject(int(r.Uint16(0)))
	case OpDeleteObject:
		index := int(r.Uint16(0))
		if ms.pen == index {
			ms.pen = -1
		}
		if ms.brush == index {
			ms.brush = -1
		}
		ms.objects.Delete(index)

	case OpMoveTo, OpLineTo:
		if ms.pen >= 0 {
			ms.shapes.add(int(r.Int16(1)), int(r.Int16(0)))
		}
		ms.firstPaint = false
	case OpPolyPolygon:
		count := int(r.Uint16(0))
		off := 1 + count
		if ms.brush >= 0 || ms.pen >= 0 {
			for i := off; i+1 < r.Words(); i += 2 {
				ms.shapes.add(int(r.Int16(i)), int(r.Int16(i+1)))
			}
		}
		ms.firstPaint = false
	case OpPolygon, OpPolyline:
		n := min(int(r.Uint16(0)), (r.Words()-1)/2)
		if n <= 0 {
			return
		}
		x0, y0 := int(r.Int16(1)), int(r.Int16(2))
		x1, y1 := x0, y0
		for k := 1; k < n; k++ {
			x, y := int(r.Int16(1+2*k)), int(r.Int16(2+2*k))
			x0, x1 = min(x0, x), max(x1, x)
			y0, y1 = min(y0, y), max(y1, y)
		}
		ms.paint(r.Function == OpPolygon, x0, y0, x1, y1)
	case OpRectangle, OpEllipse:
		ms.paint(true, int(r.Int16(3)), int(r.Int16(2)), int(r.Int16(1)), int(r.Int16(0)))
	case OpRoundRect:
		ms.paint(true, int(r.Int16(5)), int(r.Int16(4)), int(r.Int16(3)), int(r.Int16(2)))
	case OpArc, OpChord, OpPie:
		ms.paint(r.Function != OpArc, int(r.Int16(7)), int(r.Int16(6)), int(r.Int16(5)), int(r.Int16(4)))
	case OpPatBlt:
		if ms.brush >= 0 || r.Uint32(0) == ropBlackness {
			x, y := int(r.Int16(5)), int(r.Int16(4))
			ms.shapes.add(x, y)
			ms.shapes.add(x+int(r.Int16(3)), y+int(r.Int16(2)))
		}

	case OpTextOut, OpExtTextOut, OpDrawText:
		if sr, ok := rec.(*StringRecord); ok {
			ms.text(sr)
		}
		ms.firstPaint = false

	case OpDIBStretchBlt, OpStretchDIB, OpDIBBitBlt, OpSetDIBToDev:
		if br, ok := rec.(*BitmapRecord); ok {
			x, y := int(br.DstX), int(br.DstY)
			ms.images.add(x, y)
			ms.images.add(x+int(br.DstW), y+int(br.DstH))
		}
	}
}

func (ms *measurer) selectObject(index int) {
	if _, ok := resolveStock(index, ms.objects.Len()); ok {
		return
	}
	obj, ok := ms.objects.Get(index)
	if !ok {
		return
	}
	switch obj.Type {
	case ObjectPen:
		ms.pen = index
	case ObjectBrush:
		ms.brush = index
	case ObjectFont:
		ms.font = obj.Font
	case ObjectNullPen:
		ms.pen = -1
	case ObjectNullBrush:
		ms.brush = -1
	}
}

// color returns the color a primitive paints with: the brush color
// when a brush is considered and selected, otherwise the pen color.
func (ms *measurer) color(fillable bool) (Color, bool) {
	if fillable && ms.brush >= 0 {
		obj, _ := ms.objects.Get(ms.brush)
		return obj.Brush.Color, true
	}
	if ms.pen >= 0 {
		obj, _ := ms.objects.Get(ms.pen)
		return obj.Pen.Color, true
	}
	return Color{}, false
}

// paint adds a primitive's box unless it paints nothing or is a white
// first primitive. The first-paint flag clears only when a primitive
// is accepted.
func (ms *measurer) paint(fillable bool, x0, y0, x1, y1 int) {
	c, ok := ms.color(fillable)
	if !ok {
		return
	}
	if ms.firstPaint && c.IsWhite() {
		return
	}
	ms.shapes.add(min(x0, x1), min(y0, y1))
	ms.shapes.add(max(x0, x1), max(y0, y1))
	ms.firstPaint = false
}

// text adds an estimate of the text box: the font width per character,
// or half the height when the font declares no width.
func (ms *measurer) text(sr *StringRecord) {
	h := int(ms.font.Height)
	if h < 0 {
		h = -h
	}
	w := int(ms.font.Width)
	if w < 0 {
		w = -w
	}
	if w == 0 {
		w = h / 2
	}
	x, y := int(sr.X), int(sr.Y)
	ms.shapes.add(x, y)
	ms.shapes.add(x+w*len(sr.Text), y+h)
}
