package moonicon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, row-major.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	px := premul8(c)
	copy(p.data[i:i+4], px[:])
}

// GetPixel returns the un-premultiplied color of a single pixel.
// Out-of-bounds reads return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := float64(p.data[i+3])
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: float64(p.data[i+0]) / a,
		G: float64(p.data[i+1]) / a,
		B: float64(p.data[i+2]) / a,
		A: a / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := premul8(c)
	for i := 0; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], px[:])
	}
}

// FillRow fills row y with a color. Rows outside the pixmap are ignored.
func (p *Pixmap) FillRow(y int, c RGBA) {
	if y < 0 || y >= p.height {
		return
	}
	px := premul8(c)
	row := p.data[y*p.width*4 : (y+1)*p.width*4]
	for i := 0; i < len(row); i += 4 {
		copy(row[i:i+4], px[:])
	}
}

// premul8 quantizes c and premultiplies it, matching image/color.
func premul8(c RGBA) [4]uint8 {
	r, g, b, a := c.NRGBA8().RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// view returns an *image.RGBA sharing the pixmap's storage, so that
// draw operations write straight into the pixmap.
func (p *Pixmap) view() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG encodes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("moonicon: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("moonicon: create file: %w", err)
	}

	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
