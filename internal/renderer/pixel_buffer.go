package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"GopherTrace/internal/tracer"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidDimensions is returned for a zero or negative buffer size.
var ErrInvalidDimensions = errors.New("pixel buffer dimensions must be positive")

// PixelBuffer is a CPU-side float RGBA image laid out row-major, matching an
// RGBA32F texture upload byte for byte.
type PixelBuffer struct {
	width  int
	height int
	pixels []mgl32.Vec4
}

func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	b := &PixelBuffer{}
	if err := b.Resize(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// Resize reallocates the buffer and clears it to transparent black.
func (b *PixelBuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	b.width = width
	b.height = height
	b.pixels = make([]mgl32.Vec4, width*height)
	return nil
}

func (b *PixelBuffer) Width() int  { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

// Pixels exposes the backing slice for upload.
func (b *PixelBuffer) Pixels() []mgl32.Vec4 { return b.pixels }

func (b *PixelBuffer) PixelIndex(x, y int) int {
	return y*b.width + x
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetColor writes a pixel. Out of range coordinates are ignored.
func (b *PixelBuffer) SetColor(x, y int, c mgl32.Vec4) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[b.PixelIndex(x, y)] = c
}

// AddColor adds c to a pixel. Out of range coordinates are ignored.
func (b *PixelBuffer) AddColor(x, y int, c mgl32.Vec4) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.PixelIndex(x, y)
	b.pixels[i] = b.pixels[i].Add(c)
}

// At returns a pixel, or zero when out of range.
func (b *PixelBuffer) At(x, y int) mgl32.Vec4 {
	if !b.inBounds(x, y) {
		return mgl32.Vec4{}
	}
	return b.pixels[b.PixelIndex(x, y)]
}

func (b *PixelBuffer) Clear(c mgl32.Vec4) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// Clone returns a deep copy.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pixels := make([]mgl32.Vec4, len(b.pixels))
	copy(pixels, b.pixels)
	return &PixelBuffer{width: b.width, height: b.height, pixels: pixels}
}

// ToImage converts the linear buffer to 8-bit sRGB-ish output using gamma 2.
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.pixels[b.PixelIndex(x, y)]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(p[0]),
				G: toByte(p[1]),
				B: toByte(p[2]),
				A: 255,
			})
		}
	}
	return img
}

func toByte(linear float32) uint8 {
	intensity := tracer.NewInterval(0, 0.999)
	return uint8(256 * intensity.Clamp(tracer.LinearToGamma(float64(linear))))
}

func (b *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
