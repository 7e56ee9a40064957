// Package font8 is the bootloader's 6x8 column bitmap font.
package font8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// GlyphWidth is the number of column bytes per glyph.
	GlyphWidth = 6
	// GlyphHeight is the number of rows per column byte.
	GlyphHeight = 8
	// Count is the number of glyphs in Data.
	Count = 96

	first       = ' '
	replacement = '?'
)

// Printable reports whether c has its own glyph.
func Printable(c byte) bool {
	return c >= first && c < 0x7f
}

// Glyph returns the column bytes for c; anything outside 0x20..0x7e maps
// to '?'.
func Glyph(c byte) []byte {
	if !Printable(c) {
		c = replacement
	}
	i := int(c-first) * GlyphWidth
	return Data[i : i+GlyphWidth]
}

// Font exposes the table as a tinyfont.Fonter. The glyph origin is the
// baseline at the bottom row, so tinyfont.WriteLine(d, Font, x, y+7, ...)
// lands where fb.Print(x, y, ...) does.
//
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font{}

type font struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	b := byte(replacement)
	if g.r >= 0 && g.r < 0x80 {
		b = byte(g.r)
	}
	cols := Glyph(b)
	for i, col := range cols {
		for j := 0; j < GlyphHeight; j++ {
			if col&(1<<j) == 0 {
				continue
			}
			display.SetPixel(x+int16(i), y-int16(GlyphHeight-1-j), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphWidth,
		Height:   GlyphHeight,
		XAdvance: GlyphWidth,
		XOffset:  0,
		YOffset:  -(GlyphHeight - 1),
	}
}

func (f *font) GetYAdvance() uint8 { return 10 }

func (f *font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}
