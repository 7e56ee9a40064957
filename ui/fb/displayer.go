package fb

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Framebuffer to drivers.Displayer so tinyfont and other
// TinyGo drawing code can render into it. Colors snap to the nearest
// palette entry.
type Displayer struct {
	fb *Framebuffer
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(f *Framebuffer) *Displayer {
	return &Displayer{fb: f}
}

func (d *Displayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.Set(int(x), int(y), Nearest(c.R, c.G, c.B))
}

// Display is a no-op; the owner flushes the framebuffer explicitly.
func (d *Displayer) Display() error {
	return nil
}

// RGBA returns the palette color of index i as color.RGBA.
func RGBA(i uint8) color.RGBA {
	r, g, b := PaletteRGB(i)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
