package texture

import (
	"image"
	"image/color"
	"sort"
)

// Size of the procedural textures in pixels, and of one pattern cell.
const (
	ProceduralSize = 16
	ProceduralCell = 4
)

// Checker fills a size x size image with cell-sized squares, a at the
// origin.
func Checker(size, cell int, a, b color.RGBA) *image.RGBA {
	return pattern(size, func(x, y int) bool { return (x/cell+y/cell)%2 == 0 }, a, b)
}

// StripesX alternates columns of width cell, a first.
func StripesX(size, cell int, a, b color.RGBA) *image.RGBA {
	return pattern(size, func(x, _ int) bool { return (x/cell)%2 == 0 }, a, b)
}

// StripesY alternates rows of height cell, a first.
func StripesY(size, cell int, a, b color.RGBA) *image.RGBA {
	return pattern(size, func(_, y int) bool { return (y/cell)%2 == 0 }, a, b)
}

// Solid returns a 1x1 image of c.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

func pattern(size int, first func(x, y int) bool, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if first(x, y) {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

var (
	red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	dark   = color.RGBA{R: 64, G: 64, B: 64, A: 255}
)

var builtins = map[string]func() *image.RGBA{
	"checker-red": func() *image.RGBA {
		return Checker(ProceduralSize, ProceduralCell, red, white)
	},
	"stripes-bluegreen": func() *image.RGBA {
		return StripesX(ProceduralSize, ProceduralCell, blue, green)
	},
	"checker-yellow": func() *image.RGBA {
		return Checker(ProceduralSize, ProceduralCell, yellow, black)
	},
	"stripes-gray": func() *image.RGBA {
		return StripesY(ProceduralSize, ProceduralCell, gray, dark)
	},
	"white": func() *image.RGBA {
		return Solid(white)
	},
}

// Builtin returns a new copy of the named procedural texture.
func Builtin(name string) (*image.RGBA, bool) {
	gen, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return gen(), true
}

// BuiltinNames lists the procedural textures in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
