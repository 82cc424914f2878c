package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// tga builds a TGA file from a header description and raw pixel bytes.
func tga(imageType, bpp, descriptor byte, w, h int, pixels []byte) []byte {
	hdr := []byte{
		3, 0, imageType, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		byte(w), byte(w >> 8), byte(h), byte(h >> 8),
		bpp, descriptor,
	}
	data := append(hdr, 'i', 'd', '!') // image ID field
	return append(data, pixels...)
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// BGR rows, bottom row first
	pixels := []byte{
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	}
	img, err := DecodeTGA(bytes.NewReader(tga(2, 24, 0, 2, 2, pixels)))
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{0, 1, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{1, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLETopDown(t *testing.T) {
	pixels := []byte{
		0x82, 10, 20, 30, 40, // repeat 3 times
		0x00, 1, 2, 3, 4, // one raw pixel
	}
	img, err := DecodeTGA(bytes.NewReader(tga(10, 32, 0x20, 2, 2, pixels)))
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}

	run := color.RGBA{R: 30, G: 20, B: 10, A: 40}
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}} {
		if got := img.RGBAAt(p.X, p.Y); got != run {
			t.Errorf("pixel %v = %v, want %v", p, got, run)
		}
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 3, G: 2, B: 1, A: 4}) {
		t.Errorf("raw pixel = %v", got)
	}
}

func TestDecodeTGAGray(t *testing.T) {
	img, err := DecodeTGA(bytes.NewReader(tga(3, 8, 0x20, 2, 1, []byte{0, 200})))
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("gray pixel = %v", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { d := tga(2, 24, 0, 1, 1, []byte{1, 2, 3}); d[1] = 1; return d }()},
		{"type 1", tga(1, 8, 0, 1, 1, []byte{0})},
		{"16 bit", tga(2, 16, 0, 1, 1, []byte{0, 0})},
		{"empty", tga(2, 24, 0, 0, 0, nil)},
		{"truncated raw", tga(2, 24, 0, 2, 2, []byte{1, 2, 3})},
		{"truncated rle", tga(10, 24, 0, 2, 2, []byte{0x81, 1, 2, 3})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeTGAConfig(t *testing.T) {
	cfg, err := DecodeTGAConfig(bytes.NewReader(tga(2, 32, 0, 640, 480, nil)))
	if err != nil {
		t.Fatalf("DecodeTGAConfig() error = %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
}

func TestDecodeFormats(t *testing.T) {
	src := Checker(4, 2, red, blue)

	encoders := map[string]func(*bytes.Buffer) error{
		".png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		".bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		".tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for ext, enc := range encoders {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := Decode(&buf, ext)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := img.RGBAAt(0, 0); got != red {
				t.Errorf("pixel (0,0) = %v, want red", got)
			}
			if got := img.RGBAAt(2, 0); got != blue {
				t.Errorf("pixel (2,0) = %v, want blue", got)
			}
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image")), ".png"); err == nil {
		t.Error("expected error")
	}
}

func TestToRGBAOffsetImage(t *testing.T) {
	src := Checker(4, 1, red, blue).SubImage(image.Rect(1, 1, 3, 3))
	img := ToRGBA(src)
	if img.Rect != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Rect)
	}
	// (1,1) in the source is red
	if got := img.RGBAAt(0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
}

func TestFlipVertical(t *testing.T) {
	img := StripesY(4, 1, red, blue)
	FlipVertical(img)
	if img.RGBAAt(0, 0) != blue || img.RGBAAt(0, 3) != red {
		t.Errorf("rows not flipped: top %v bottom %v", img.RGBAAt(0, 0), img.RGBAAt(0, 3))
	}

	odd := StripesY(3, 1, red, blue)
	FlipVertical(odd)
	if odd.RGBAAt(0, 1) != blue {
		t.Error("middle row of an odd image should stay put")
	}
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	if got := Fit(img, 0); got != img {
		t.Error("maxSize 0 should return the input")
	}
	if got := Fit(img, 512); got != img {
		t.Error("small image should be returned as is")
	}
	if got := Fit(img, 200).Rect; got != image.Rect(0, 0, 200, 50) {
		t.Errorf("Fit() bounds = %v, want 200x50", got)
	}

	tall := image.NewRGBA(image.Rect(0, 0, 10, 1000))
	if got := Fit(tall, 100).Rect; got != image.Rect(0, 0, 1, 100) {
		t.Errorf("Fit() bounds = %v, want 1x100", got)
	}
}

func TestBuiltins(t *testing.T) {
	want := []string{"checker-red", "checker-yellow", "stripes-bluegreen", "stripes-gray", "white"}
	names := BuiltinNames()
	if len(names) != len(want) {
		t.Fatalf("BuiltinNames() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("BuiltinNames()[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	checker, _ := Builtin("checker-red")
	if checker.Rect.Dx() != ProceduralSize {
		t.Errorf("checker size = %d", checker.Rect.Dx())
	}
	if checker.RGBAAt(0, 0) != red || checker.RGBAAt(4, 0) != white || checker.RGBAAt(4, 4) != red {
		t.Error("checker-red pattern wrong")
	}

	stripes, _ := Builtin("stripes-bluegreen")
	if stripes.RGBAAt(0, 9) != blue || stripes.RGBAAt(5, 0) != green {
		t.Error("stripes-bluegreen should vary along x")
	}

	floor, _ := Builtin("stripes-gray")
	if floor.RGBAAt(9, 0) != gray || floor.RGBAAt(0, 5) != dark {
		t.Error("stripes-gray should vary along y")
	}

	if _, ok := Builtin("plaid"); ok {
		t.Error("unknown builtin reported found")
	}

	a, _ := Builtin("white")
	a.SetRGBA(0, 0, black)
	b, _ := Builtin("white")
	if b.RGBAAt(0, 0) != white {
		t.Error("Builtin should return a fresh image")
	}
}
