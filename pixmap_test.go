package moonicon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, RGB8(94, 100, 198))

	i := (7*10 + 3) * 4
	data := pm.Data()
	if data[i] != 94 || data[i+1] != 100 || data[i+2] != 198 || data[i+3] != 255 {
		t.Errorf("raw data = %v, want [94 100 198 255]", data[i:i+4])
	}
	if got := pm.GetPixel(3, 7).NRGBA8(); got != (color.NRGBA{94, 100, 198, 255}) {
		t.Errorf("GetPixel() = %v", got)
	}
}

// Semi-transparent colors are stored premultiplied and read back straight.
func TestPixmapSetPixel_SemiTransparent(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, RGBA2(1, 0, 0, 0.5))

	data := pm.Data()
	if data[0] != 128 || data[3] != 128 {
		t.Errorf("premultiplied data = %v, want R=128 A=128", data[:4])
	}
	got := pm.GetPixel(0, 0)
	if !colorsEqual(got, RGBA2(1, 0, 0, 128.0/255.0), colorEpsilon) {
		t.Errorf("GetPixel() = %+v", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100}} {
		pm.SetPixel(c.x, c.y, White)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want Transparent", c.x, c.y, got)
		}
	}
	pm.FillRow(-1, White)
	pm.FillRow(4, White)

	if !bytes.Equal(pm.Data(), original) {
		t.Fatal("out-of-bounds write modified data")
	}
}

func TestPixmapFillRow(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.Clear(Black)
	pm.FillRow(1, White)

	for y := 0; y < 3; y++ {
		want := Black
		if y == 1 {
			want = White
		}
		for x := 0; x < 5; x++ {
			if got := pm.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.Clear(RGB8(102, 126, 234))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("decoded bounds = %v, want 6x4", b)
	}
	r, g, b, a := img.At(5, 3).RGBA()
	if r>>8 != 102 || g>>8 != 126 || b>>8 != 234 || a>>8 != 255 {
		t.Errorf("decoded pixel = (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestPixmapSavePNG_BadPath(t *testing.T) {
	pm := NewPixmap(1, 1)
	path := filepath.Join(t.TempDir(), "missing", "icon.png")
	if err := pm.SavePNG(path); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
