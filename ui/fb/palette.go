package fb

import "uf2status/hal"

// Palette indices used by the status screens.
const (
	Black   uint8 = 0
	White   uint8 = 1
	Red     uint8 = 2
	Pink    uint8 = 3
	Orange  uint8 = 4
	Yellow  uint8 = 5
	Teal    uint8 = 6
	Green   uint8 = 7
	Blue    uint8 = 8
	Cyan    uint8 = 9
	Purple  uint8 = 10
	Mauve   uint8 = 11
	Plum    uint8 = 12
	Beige   uint8 = 13
	Brown   uint8 = 14
	Black15 uint8 = 15
)

// paletteRGB holds the 24-bit source colors. 0 and 15 are both black.
var paletteRGB = [16]uint32{
	0x000000, 0xffffff, 0xff2121, 0xff93c4,
	0xff8135, 0xfff609, 0x249ca3, 0x78dc52,
	0x003fad, 0x87f2ff, 0x8e2ec4, 0xa4839f,
	0x5c406c, 0xe5cdc4, 0x91463d, 0x000000,
}

// Palette maps indices to RGB565.
var Palette = func() (p [16]uint16) {
	for i, c := range paletteRGB {
		p[i] = hal.RGB565(uint8(c>>16), uint8(c>>8), uint8(c))
	}
	return p
}()

// PaletteRGB returns the 24-bit source color of index i.
func PaletteRGB(i uint8) (r, g, b uint8) {
	c := paletteRGB[i&0x0F]
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Nearest returns the palette index closest to (r, g, b). Ties resolve to
// the lowest index, so black maps to 0.
func Nearest(r, g, b uint8) uint8 {
	best := uint8(0)
	bestDist := -1
	for i := range paletteRGB {
		pr, pg, pb := PaletteRGB(uint8(i))
		dr := int(pr) - int(r)
		dg := int(pg) - int(g)
		db := int(pb) - int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = uint8(i)
			bestDist = d
		}
	}
	return best
}
