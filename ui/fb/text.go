package fb

import "uf2status/ui/font8"

const (
	// LineHeight is the row advance for '\n' at 1x.
	LineHeight = 10

	// Char4Kerning is how far consecutive 4x glyphs overlap.
	Char4Kerning = 2
	// Char4KernedWidth is the 4x glyph advance.
	Char4KernedWidth = font8.GlyphWidth*4 - Char4Kerning
)

// Print draws text at 1x with its top-left corner at (x, y). '\r' is
// skipped, '\n' returns to x and moves down LineHeight rows, and any other
// byte outside 0x20..0x7e draws '?'.
func (f *Framebuffer) Print(x, y int, c uint8, text string) {
	x0 := x
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch ch {
		case '\r':
			continue
		case '\n':
			x = x0
			y += LineHeight
			continue
		}
		f.drawGlyph(x, y, c, font8.Glyph(ch), 1)
		x += font8.GlyphWidth
	}
}

// Print4 draws text at 4x. Glyphs advance by Char4KernedWidth, so
// neighbours overlap by Char4Kerning columns. Drawing stops, silently,
// at the first glyph whose advance would cross the right edge; there is no
// wrapping and control bytes draw '?'.
func (f *Framebuffer) Print4(x, y int, c uint8, text string) {
	for i := 0; i < len(text); i++ {
		if x+Char4KernedWidth > f.width {
			return
		}
		f.drawGlyph(x, y, c, font8.Glyph(text[i]), 4)
		x += Char4KernedWidth
	}
}

// drawGlyph expands every source pixel into a scale x scale block. Bit 0 of
// each column byte is the top row.
func (f *Framebuffer) drawGlyph(x, y int, c uint8, cols []byte, scale int) {
	for i := 0; i < len(cols)*scale; i++ {
		col := cols[i/scale]
		if col == 0 {
			continue
		}
		for j := 0; j < font8.GlyphHeight; j++ {
			if col&(1<<j) == 0 {
				continue
			}
			for k := 0; k < scale; k++ {
				f.Set(x+i, y+j*scale+k, c)
			}
		}
	}
}

// TextWidth is the 1x width of a single line of text.
func TextWidth(text string) int {
	return len(text) * font8.GlyphWidth
}

// Text4Width is the 4x advance of text.
func Text4Width(text string) int {
	return len(text) * Char4KernedWidth
}

// Centered returns the x that centers a span of width w in f, clamped to 0
// when the span is wider than the framebuffer.
func (f *Framebuffer) Centered(w int) int {
	x := (f.width - w) / 2
	if x < 0 {
		return 0
	}
	return x
}
