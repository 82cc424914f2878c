// Package texture decodes images into GL-ready RGBA pixels and generates
// the procedural textures.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"strings"

	// Formats understood by image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// Decode reads an image and returns it as RGBA. ext selects the TGA
// decoder, which has no magic number; other formats are sniffed.
func Decode(r io.Reader, ext string) (*image.RGBA, error) {
	if strings.EqualFold(ext, ".tga") {
		return DecodeTGA(r)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to a tightly packed RGBA image with a zero origin.
// An image that already qualifies is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical reverses the row order in place. Images are stored top
// row first; GL samples row zero at v = 0, the bottom.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, 4*img.Rect.Dx())
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+len(row)]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+len(row)]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// Fit scales img down so neither side exceeds maxSize, keeping the aspect
// ratio. Smaller images and maxSize <= 0 return img unchanged.
func Fit(img *image.RGBA, maxSize int) *image.RGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
