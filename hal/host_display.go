//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"sync"
)

// hostDisplay mirrors the panel in memory, column-major like the lines it
// receives.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
}

func (d *hostDisplay) Width() int  { return d.width }
func (d *hostDisplay) Height() int { return d.height }

func (d *hostDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.buf {
		d.buf[i] = 0
	}
	return nil
}

func (d *hostDisplay) SendLine(x int, line []byte) error {
	if x < 0 || x >= d.width {
		return fmt.Errorf("host display: line %d out of range", x)
	}
	if len(line) != d.height*2 {
		return fmt.Errorf("host display: line %d: got %d bytes, want %d", x, len(line), d.height*2)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.buf[x*d.height*2:], line)
	return nil
}

func (d *hostDisplay) snapshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for x := 0; x < d.width; x++ {
		col := d.buf[x*d.height*2:]
		for y := 0; y < d.height; y++ {
			p := uint16(col[y*2])<<8 | uint16(col[y*2+1])
			r, g, b := RGB888From565(p)
			j := img.PixOffset(x, y)
			img.Pix[j+0] = r
			img.Pix[j+1] = g
			img.Pix[j+2] = b
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}
