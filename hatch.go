package wmf

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// hatchSize is the side of a hatch pattern tile in device pixels.
const hatchSize = 8

// hatchPattern renders the 8x8 tile of a hatched brush. Lines use fg;
// the remaining pixels are bg, or transparent when bg is nil.
// ok is false for unknown hatch styles.
func hatchPattern(style HatchStyle, fg Color, bg *Color) (img *image.RGBA, ok bool) {
	var on func(x, y int) bool
	switch style {
	case HatchHorizontal:
		on = func(_, y int) bool { return y == hatchSize/2 }
	case HatchVertical:
		on = func(x, _ int) bool { return x == hatchSize/2 }
	case HatchFDiagonal:
		on = func(x, y int) bool { return x == y }
	case HatchBDiagonal:
		on = func(x, y int) bool { return x+y == hatchSize-1 }
	case HatchCross:
		on = func(x, y int) bool { return x == hatchSize/2 || y == hatchSize/2 }
	case HatchDiagCross:
		on = func(x, y int) bool { return x == y || x+y == hatchSize-1 }
	default:
		return nil, false
	}

	img = image.NewRGBA(image.Rect(0, 0, hatchSize, hatchSize))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(*bg), image.Point{}, draw.Src)
	}
	line := color.RGBA{R: fg.R, G: fg.G, B: fg.B, A: 0xFF}
	for y := range hatchSize {
		for x := range hatchSize {
			if on(x, y) {
				img.SetRGBA(x, y, line)
			}
		}
	}
	return img, true
}
