package wmf

// ObjectType identifies what an object table slot holds.
// The zero value marks an unused slot.
type ObjectType uint8

const (
	objectUnused ObjectType = iota
	ObjectPen
	ObjectBrush
	ObjectFont
	ObjectNullPen
	ObjectNullBrush
	ObjectPalette
	ObjectRegion
	ObjectBitmap
)

var objectTypeNames = [...]string{
	objectUnused:    "Unused",
	ObjectPen:       "Pen",
	ObjectBrush:     "Brush",
	ObjectFont:      "Font",
	ObjectNullPen:   "NullPen",
	ObjectNullBrush: "NullBrush",
	ObjectPalette:   "Palette",
	ObjectRegion:    "Region",
	ObjectBitmap:    "Bitmap",
}

// String returns the name of the object type.
func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return "Unknown"
}

// LogPen is the decoded LOGPEN of CreatePenIndirect.
type LogPen struct {
	Style PenStyle
	Width int16
	Color Color
}

// LogBrush is the decoded LOGBRUSH of CreateBrushIndirect, or the
// bitmap of DIBCreatePatternBrush.
type LogBrush struct {
	Style BrushStyle
	Color Color
	Hatch HatchStyle
	DIB   []byte
}

// Object is the content of one object table slot.
//
// Paint is the resolved brush paint. It is filled in by replay, where
// hatch and pattern brushes depend on the device context at creation
// time, and left zero in the table built while parsing.
type Object struct {
	Type  ObjectType
	Pen   LogPen
	Brush LogBrush
	Font  LogFont
	Paint Paint
}

// ObjectTable is the fixed-capacity handle table of a metafile.
// Handles are slot indices; the table is never resized.
//
// ObjectTable is not safe for concurrent use. Replay works on its own
// table, so concurrent replays of one Metafile do not share one.
type ObjectTable struct {
	slots []Object
}

// NewObjectTable creates a table with n unused slots.
func NewObjectTable(n int) *ObjectTable {
	if n < 0 {
		n = 0
	}
	return &ObjectTable{slots: make([]Object, n)}
}

// Len returns the declared capacity of the table.
func (t *ObjectTable) Len() int {
	return len(t.slots)
}

// Add stores obj in the first unused slot and returns its index.
// It returns -1 and leaves the table unchanged when every slot is used.
func (t *ObjectTable) Add(obj Object) int {
	for i := range t.slots {
		if t.slots[i].Type == objectUnused {
			t.slots[i] = obj
			return i
		}
	}
	return -1
}

// AddAt stores obj at index, overwriting any previous occupant.
// Index 0 and indices past the end of the table behave like Add.
func (t *ObjectTable) AddAt(obj Object, index int) int {
	if index <= 0 || index >= len(t.slots) {
		return t.Add(obj)
	}
	t.slots[index] = obj
	return index
}

// Get returns the object at index. ok is false for unused slots and
// out-of-range indices; stock objects are never stored here.
func (t *ObjectTable) Get(index int) (Object, bool) {
	if index < 0 || index >= len(t.slots) {
		return Object{}, false
	}
	obj := t.slots[index]
	return obj, obj.Type != objectUnused
}

// Delete clears the slot at index. Out-of-range indices are ignored.
func (t *ObjectTable) Delete(index int) {
	if index < 0 || index >= len(t.slots) {
		return
	}
	t.slots[index] = Object{}
}

// Used returns the number of occupied slots.
func (t *ObjectTable) Used() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].Type != objectUnused {
			n++
		}
	}
	return n
}

// newObject decodes the table entry a creation record describes.
// ok is false for records that do not create objects.
func newObject(rec Record) (Object, bool) {
	m := rec.Meta()
	if !m.Function.createsObject() {
		return Object{}, false
	}
	switch m.Function {
	case OpCreatePenIndirect:
		pen := LogPen{
			Style: PenStyle(m.Uint16(0)) & penStyleMask,
			Width: m.Int16(1),
			Color: ColorFromRef(m.Uint32(3)),
		}
		if pen.Style == PenNull {
			return Object{Type: ObjectNullPen, Pen: pen}, true
		}
		return Object{Type: ObjectPen, Pen: pen}, true
	case OpCreateBrushIndirect:
		brush := LogBrush{
			Style: BrushStyle(m.Uint16(0)),
			Color: ColorFromRef(m.Uint32(1)),
			Hatch: HatchStyle(m.Uint16(3)),
		}
		switch brush.Style {
		case BrushSolid, BrushHatched:
			return Object{Type: ObjectBrush, Brush: brush}, true
		}
		return Object{Type: ObjectNullBrush, Brush: brush}, true
	case OpCreateFontIndirect:
		if fr, ok := rec.(*FontRecord); ok {
			return Object{Type: ObjectFont, Font: fr.Font}, true
		}
		return Object{Type: ObjectFont}, true
	case OpDIBCreatePatternBrush:
		if br, ok := rec.(*BitmapRecord); ok {
			return Object{Type: ObjectBrush, Brush: LogBrush{Style: BrushDIBPattern, DIB: br.DIB}}, true
		}
		return Object{Type: ObjectNullBrush}, true
	case OpCreatePalette:
		return Object{Type: ObjectPalette}, true
	case OpCreateRegion:
		return Object{Type: ObjectRegion}, true
	}
	return Object{Type: ObjectBitmap}, true
}
