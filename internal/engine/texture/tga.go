package texture

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

const tgaTopToBottom = 0x20

type tgaHeader struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    uint8
	ColorMap     [5]byte
	XOrigin      uint16
	YOrigin      uint16
	Width        uint16
	Height       uint16
	BitsPerPixel uint8
	Descriptor   uint8
}

var errTGATruncated = errors.New("tga: pixel data truncated")

func readTGAHeader(r io.Reader) (tgaHeader, error) {
	var h tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("tga: reading header: %w", err)
	}
	if h.ColorMapType != 0 {
		return h, errors.New("tga: color-mapped images not supported")
	}
	switch h.ImageType {
	case tgaTrueColor, tgaTrueColorRLE:
		if h.BitsPerPixel != 24 && h.BitsPerPixel != 32 {
			return h, fmt.Errorf("tga: unsupported true-color depth %d", h.BitsPerPixel)
		}
	case tgaGray, tgaGrayRLE:
		if h.BitsPerPixel != 8 {
			return h, fmt.Errorf("tga: unsupported grayscale depth %d", h.BitsPerPixel)
		}
	default:
		return h, fmt.Errorf("tga: unsupported image type %d", h.ImageType)
	}
	if h.Width == 0 || h.Height == 0 {
		return h, errors.New("tga: empty image")
	}
	return h, nil
}

// DecodeTGAConfig returns the dimensions of a TGA image.
func DecodeTGAConfig(r io.Reader) (image.Config, error) {
	h, err := readTGAHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: int(h.Width), Height: int(h.Height)}, nil
}

// DecodeTGA decodes uncompressed and RLE TGA images, true-color (24 or
// 32 bit) or 8-bit grayscale. The result is always top-down RGBA.
func DecodeTGA(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReader(r)
	h, err := readTGAHeader(br)
	if err != nil {
		return nil, err
	}
	if _, err := br.Discard(int(h.IDLength)); err != nil {
		return nil, errTGATruncated
	}

	w, ht := int(h.Width), int(h.Height)
	bpp := int(h.BitsPerPixel) / 8
	img := image.NewRGBA(image.Rect(0, 0, w, ht))

	px := &tgaPixels{r: br, bpp: bpp, buf: make([]byte, bpp)}
	rle := h.ImageType == tgaTrueColorRLE || h.ImageType == tgaGrayRLE
	topDown := h.Descriptor&tgaTopToBottom != 0

	for i := 0; i < w*ht; i++ {
		var c color.RGBA
		if rle {
			c, err = px.nextRLE()
		} else {
			c, err = px.next()
		}
		if err != nil {
			return nil, err
		}
		x, y := i%w, i/w
		if !topDown {
			y = ht - 1 - y
		}
		img.SetRGBA(x, y, c)
	}
	return img, nil
}

// tgaPixels reads BGR(A) or gray pixels, expanding RLE packets.
type tgaPixels struct {
	r   *bufio.Reader
	bpp int
	buf []byte

	run    int  // pixels left in the current packet
	repeat bool // current packet repeats one pixel
	last   color.RGBA
}

func (p *tgaPixels) next() (color.RGBA, error) {
	if _, err := io.ReadFull(p.r, p.buf); err != nil {
		return color.RGBA{}, errTGATruncated
	}
	b := p.buf
	switch p.bpp {
	case 1:
		return color.RGBA{R: b[0], G: b[0], B: b[0], A: 255}, nil
	case 3:
		return color.RGBA{R: b[2], G: b[1], B: b[0], A: 255}, nil
	default:
		return color.RGBA{R: b[2], G: b[1], B: b[0], A: b[3]}, nil
	}
}

func (p *tgaPixels) nextRLE() (color.RGBA, error) {
	if p.run == 0 {
		hdr, err := p.r.ReadByte()
		if err != nil {
			return color.RGBA{}, errTGATruncated
		}
		p.run = int(hdr&0x7f) + 1
		p.repeat = hdr&0x80 != 0
		if p.repeat {
			if p.last, err = p.next(); err != nil {
				return color.RGBA{}, err
			}
		}
	}
	p.run--
	if p.repeat {
		return p.last, nil
	}
	return p.next()
}
