package icon

import (
	"image"
	"image/color"
)

// MaskFromImage thresholds img: pixels with luminance >= threshold and
// non-zero alpha are set.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a != 0 && c.Y >= threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Image renders m as white-on-black.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}
