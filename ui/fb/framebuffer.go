// Package fb is the status screen's palette-indexed framebuffer and the
// primitives that draw into it.
//
// Cells are stored column-major (all rows of column 0, then column 1, ...)
// because the panel is fed one column per transfer; ForEachLine walks the
// storage in that order.
package fb

// Framebuffer is a fixed grid of 4-bit palette indices, one per byte.
//
// It is not safe for concurrent use.
type Framebuffer struct {
	width  int
	height int
	cells  []uint8
	line   []byte
}

// New allocates a width x height framebuffer. All drawing afterwards is
// allocation-free.
func New(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
		line:   make([]byte, height*2),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Clear resets every cell to index 0.
func (f *Framebuffer) Clear() {
	for i := range f.cells {
		f.cells[i] = 0
	}
}

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// Set stores palette index c at (x, y). Writes outside the framebuffer are
// dropped.
func (f *Framebuffer) Set(x, y int, c uint8) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[x*f.height+y] = c & 0x0F
}

// At returns the palette index at (x, y), or 0 outside the framebuffer.
func (f *Framebuffer) At(x, y int) uint8 {
	if !f.inBounds(x, y) {
		return 0
	}
	return f.cells[x*f.height+y]
}

// FillBar paints a full-width band of h rows starting at row y.
func (f *Framebuffer) FillBar(y, h int, c uint8) {
	y0 := clampInt(y, 0, f.height)
	y1 := clampInt(y+h, 0, f.height)
	if y0 >= y1 {
		return
	}
	c &= 0x0F
	for x := 0; x < f.width; x++ {
		col := f.cells[x*f.height : (x+1)*f.height]
		for j := y0; j < y1; j++ {
			col[j] = c
		}
	}
}

// ForEachLine expands each column through the palette into big-endian
// RGB565 and hands it to fn, column 0 first. The line slice is reused
// between calls. It stops at the first error fn returns.
func (f *Framebuffer) ForEachLine(fn func(x int, line []byte) error) error {
	for x := 0; x < f.width; x++ {
		col := f.cells[x*f.height : (x+1)*f.height]
		dst := 0
		for _, idx := range col {
			c := Palette[idx&0x0F]
			f.line[dst] = byte(c >> 8)
			f.line[dst+1] = byte(c)
			dst += 2
		}
		if err := fn(x, f.line); err != nil {
			return err
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
