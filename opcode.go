package wmf

import "fmt"

// Opcode identifies the function of a metafile record.
// The high byte of most opcodes holds the parameter count of the
// original GDI call; only the full 16-bit value is meaningful here.
type Opcode uint16

const (
	OpEOF Opcode = 0x0000

	// State records
	OpSaveDC            Opcode = 0x001E
	OpRealizePalette    Opcode = 0x0035
	OpSetPalEntries     Opcode = 0x0037
	OpSetBkMode         Opcode = 0x0102
	OpSetMapMode        Opcode = 0x0103
	OpSetROP2           Opcode = 0x0104
	OpSetRelAbs         Opcode = 0x0105
	OpSetPolyFillMode   Opcode = 0x0106
	OpSetStretchBltMode Opcode = 0x0107
	OpSetTextCharExtra  Opcode = 0x0108
	OpRestoreDC         Opcode = 0x0127
	OpInvertRegion      Opcode = 0x012A
	OpPaintRegion       Opcode = 0x012B
	OpSelectClipRegion  Opcode = 0x012C
	OpSelectObject      Opcode = 0x012D
	OpSetTextAlign      Opcode = 0x012E
	OpResizePalette     Opcode = 0x0139
	OpSetLayout         Opcode = 0x0149
	OpDeleteObject      Opcode = 0x01F0
	OpSetBkColor        Opcode = 0x0201
	OpSetTextColor      Opcode = 0x0209
	OpSetTextJustify    Opcode = 0x020A
	OpSetWindowOrg      Opcode = 0x020B
	OpSetWindowExt      Opcode = 0x020C
	OpSetViewportOrg    Opcode = 0x020D
	OpSetViewportExt    Opcode = 0x020E
	OpOffsetWindowOrg   Opcode = 0x020F
	OpOffsetViewportOrg Opcode = 0x0211
	OpOffsetClipRgn     Opcode = 0x0220
	OpFillRegion        Opcode = 0x0228
	OpSetMapperFlags    Opcode = 0x0231
	OpSelectPalette     Opcode = 0x0234
	OpScaleWindowExt    Opcode = 0x0410
	OpScaleViewportExt  Opcode = 0x0412
	OpExcludeClipRect   Opcode = 0x0415
	OpIntersectClipRect Opcode = 0x0416
	OpFrameRegion       Opcode = 0x0429
	OpAnimatePalette    Opcode = 0x0436
	OpEscape            Opcode = 0x0626

	// Drawing records
	OpLineTo       Opcode = 0x0213
	OpMoveTo       Opcode = 0x0214
	OpPolygon      Opcode = 0x0324
	OpPolyline     Opcode = 0x0325
	OpEllipse      Opcode = 0x0418
	OpFloodFill    Opcode = 0x0419
	OpRectangle    Opcode = 0x041B
	OpSetPixel     Opcode = 0x041F
	OpTextOut      Opcode = 0x0521
	OpPolyPolygon  Opcode = 0x0538
	OpExtFloodFill Opcode = 0x0548
	OpRoundRect    Opcode = 0x061C
	OpPatBlt       Opcode = 0x061D
	OpDrawText     Opcode = 0x062F
	OpArc          Opcode = 0x0817
	OpPie          Opcode = 0x081A
	OpChord        Opcode = 0x0830
	OpExtTextOut   Opcode = 0x0A32

	// Bitmap records
	OpBitBlt        Opcode = 0x0922
	OpStretchBlt    Opcode = 0x0B23
	OpSetDIBToDev   Opcode = 0x0D33
	OpDIBBitBlt     Opcode = 0x0940
	OpDIBStretchBlt Opcode = 0x0B41
	OpStretchDIB    Opcode = 0x0F43

	// Object records
	OpDIBCreatePatternBrush Opcode = 0x0142
	OpCreatePalette         Opcode = 0x00F7
	OpCreateBrush           Opcode = 0x00F8
	OpCreatePatternBrush    Opcode = 0x01F9
	OpCreatePenIndirect     Opcode = 0x02FA
	OpCreateFontIndirect    Opcode = 0x02FB
	OpCreateBrushIndirect   Opcode = 0x02FC
	OpCreateBitmapIndirect  Opcode = 0x02FD
	OpCreateBitmap          Opcode = 0x06FE
	OpCreateRegion          Opcode = 0x06FF
)

var opcodeNames = map[Opcode]string{
	OpEOF:                   "EOF",
	OpSaveDC:                "SaveDC",
	OpRealizePalette:        "RealizePalette",
	OpSetPalEntries:         "SetPalEntries",
	OpSetBkMode:             "SetBkMode",
	OpSetMapMode:            "SetMapMode",
	OpSetROP2:               "SetROP2",
	OpSetRelAbs:             "SetRelAbs",
	OpSetPolyFillMode:       "SetPolyFillMode",
	OpSetStretchBltMode:     "SetStretchBltMode",
	OpSetTextCharExtra:      "SetTextCharExtra",
	OpRestoreDC:             "RestoreDC",
	OpInvertRegion:          "InvertRegion",
	OpPaintRegion:           "PaintRegion",
	OpSelectClipRegion:      "SelectClipRegion",
	OpSelectObject:          "SelectObject",
	OpSetTextAlign:          "SetTextAlign",
	OpResizePalette:         "ResizePalette",
	OpSetLayout:             "SetLayout",
	OpDeleteObject:          "DeleteObject",
	OpSetBkColor:            "SetBkColor",
	OpSetTextColor:          "SetTextColor",
	OpSetTextJustify:        "SetTextJustification",
	OpSetWindowOrg:          "SetWindowOrg",
	OpSetWindowExt:          "SetWindowExt",
	OpSetViewportOrg:        "SetViewportOrg",
	OpSetViewportExt:        "SetViewportExt",
	OpOffsetWindowOrg:       "OffsetWindowOrg",
	OpOffsetViewportOrg:     "OffsetViewportOrg",
	OpOffsetClipRgn:         "OffsetClipRgn",
	OpFillRegion:            "FillRegion",
	OpSetMapperFlags:        "SetMapperFlags",
	OpSelectPalette:         "SelectPalette",
	OpScaleWindowExt:        "ScaleWindowExt",
	OpScaleViewportExt:      "ScaleViewportExt",
	OpExcludeClipRect:       "ExcludeClipRect",
	OpIntersectClipRect:     "IntersectClipRect",
	OpFrameRegion:           "FrameRegion",
	OpAnimatePalette:        "AnimatePalette",
	OpEscape:                "Escape",
	OpLineTo:                "LineTo",
	OpMoveTo:                "MoveTo",
	OpPolygon:               "Polygon",
	OpPolyline:              "Polyline",
	OpEllipse:               "Ellipse",
	OpFloodFill:             "FloodFill",
	OpRectangle:             "Rectangle",
	OpSetPixel:              "SetPixel",
	OpTextOut:               "TextOut",
	OpPolyPolygon:           "PolyPolygon",
	OpExtFloodFill:          "ExtFloodFill",
	OpRoundRect:             "RoundRect",
	OpPatBlt:                "PatBlt",
	OpDrawText:              "DrawText",
	OpArc:                   "Arc",
	OpPie:                   "Pie",
	OpChord:                 "Chord",
	OpExtTextOut:            "ExtTextOut",
	OpBitBlt:                "BitBlt",
	OpStretchBlt:            "StretchBlt",
	OpSetDIBToDev:           "SetDIBToDev",
	OpDIBBitBlt:             "DIBBitBlt",
	OpDIBStretchBlt:         "DIBStretchBlt",
	OpStretchDIB:            "StretchDIB",
	OpDIBCreatePatternBrush: "DIBCreatePatternBrush",
	OpCreatePalette:         "CreatePalette",
	OpCreateBrush:           "CreateBrush",
	OpCreatePatternBrush:    "CreatePatternBrush",
	OpCreatePenIndirect:     "CreatePenIndirect",
	OpCreateFontIndirect:    "CreateFontIndirect",
	OpCreateBrushIndirect:   "CreateBrushIndirect",
	OpCreateBitmapIndirect:  "CreateBitmapIndirect",
	OpCreateBitmap:          "CreateBitmap",
	OpCreateRegion:          "CreateRegion",
}

// String returns the GDI name of the opcode, or its hexadecimal value
// for opcodes this package does not know.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%04X)", uint16(op))
}

// Known reports whether the opcode is one of the named GDI functions.
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}

// createsObject reports whether records with this opcode occupy a slot
// in the object table.
func (op Opcode) createsObject() bool {
	switch op {
	case OpCreatePenIndirect, OpCreateBrushIndirect, OpCreateFontIndirect,
		OpDIBCreatePatternBrush, OpCreatePalette, OpCreateBrush,
		OpCreatePatternBrush, OpCreateBitmapIndirect, OpCreateBitmap,
		OpCreateRegion:
		return true
	}
	return false
}
