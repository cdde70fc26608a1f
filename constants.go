package wmf

// StockObject names the built-in GDI objects. A SelectObject or
// DeleteObject index at or above the declared object count addresses
// StockObject(index - count) instead of a table slot.
type StockObject int

const (
	StockWhiteBrush        StockObject = 0
	StockLtGrayBrush       StockObject = 1
	StockGrayBrush         StockObject = 2
	StockDkGrayBrush       StockObject = 3
	StockBlackBrush        StockObject = 4
	StockNullBrush         StockObject = 5
	StockWhitePen          StockObject = 6
	StockBlackPen          StockObject = 7
	StockNullPen           StockObject = 8
	StockOEMFixedFont      StockObject = 10
	StockANSIFixedFont     StockObject = 11
	StockANSIVarFont       StockObject = 12
	StockSystemFont        StockObject = 13
	StockDeviceDefaultFont StockObject = 14
	StockDefaultPalette    StockObject = 15
	StockSystemFixedFont   StockObject = 16
)

var stockObjectNames = [...]string{
	StockWhiteBrush:        "WHITE_BRUSH",
	StockLtGrayBrush:       "LTGRAY_BRUSH",
	StockGrayBrush:         "GRAY_BRUSH",
	StockDkGrayBrush:       "DKGRAY_BRUSH",
	StockBlackBrush:        "BLACK_BRUSH",
	StockNullBrush:         "NULL_BRUSH",
	StockWhitePen:          "WHITE_PEN",
	StockBlackPen:          "BLACK_PEN",
	StockNullPen:           "NULL_PEN",
	StockOEMFixedFont:      "OEM_FIXED_FONT",
	StockANSIFixedFont:     "ANSI_FIXED_FONT",
	StockANSIVarFont:       "ANSI_VAR_FONT",
	StockSystemFont:        "SYSTEM_FONT",
	StockDeviceDefaultFont: "DEVICE_DEFAULT_FONT",
	StockDefaultPalette:    "DEFAULT_PALETTE",
	StockSystemFixedFont:   "SYSTEM_FIXED_FONT",
}

// String returns the GDI name of the stock object.
func (s StockObject) String() string {
	if s >= 0 && int(s) < len(stockObjectNames) && stockObjectNames[s] != "" {
		return stockObjectNames[s]
	}
	return "UNKNOWN_STOCK_OBJECT"
}

// Valid reports whether s is one of the defined stock objects.
func (s StockObject) Valid() bool {
	return s >= 0 && int(s) < len(stockObjectNames) && stockObjectNames[s] != ""
}

// resolveStock maps a handle index to a stock object when it lies outside
// the object table. ok is false for in-table indices.
func resolveStock(index, count int) (StockObject, bool) {
	if index < count {
		return 0, false
	}
	return StockObject(index - count), true
}

// PenStyle is the low nibble of a LOGPEN style.
type PenStyle uint16

const (
	PenSolid       PenStyle = 0
	PenDash        PenStyle = 1
	PenDot         PenStyle = 2
	PenDashDot     PenStyle = 3
	PenDashDotDot  PenStyle = 4
	PenNull        PenStyle = 5
	PenInsideFrame PenStyle = 6

	penStyleMask = 0x000F
)

// BrushStyle is the style field of a LOGBRUSH.
type BrushStyle uint16

const (
	BrushSolid      BrushStyle = 0
	BrushNull       BrushStyle = 1
	BrushHatched    BrushStyle = 2
	BrushPattern    BrushStyle = 3
	BrushDIBPattern BrushStyle = 5
)

// HatchStyle selects the line pattern of a hatched brush.
type HatchStyle uint16

const (
	HatchHorizontal HatchStyle = 0
	HatchVertical   HatchStyle = 1
	HatchFDiagonal  HatchStyle = 2
	HatchBDiagonal  HatchStyle = 3
	HatchCross      HatchStyle = 4
	HatchDiagCross  HatchStyle = 5
)

// Background modes set by SetBkMode.
const (
	bkTransparent = 1
	bkOpaque      = 2
)

// Polygon fill modes set by SetPolyFillMode.
const (
	fillAlternate = 1
	fillWinding   = 2
)

// Text alignment flags set by SetTextAlign.
const (
	taUpdateCP = 0x0001
	taRight    = 0x0002
	taCenter   = 0x0006
	taBottom   = 0x0008
	taBaseline = 0x0018
)

// ExtTextOut options.
const (
	etoOpaque  = 0x0002
	etoClipped = 0x0004
)

// Raster operations understood by PatBlt and the bitmap records.
const (
	ropBlackness = 0x00000042
	ropDstInvert = 0x00550009
	ropPatInvert = 0x005A0049
	ropPatCopy   = 0x00F00021
	ropWhiteness = 0x00FF0062
	ropSrcCopy   = 0x00CC0020
)

// Font weights.
const (
	fwNormal = 400
)
