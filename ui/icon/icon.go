// Package icon implements the bootloader's 1-bit run-length icon format.
//
// An icon is a 3-byte header (width, height, payload length) followed by the
// payload. Pixels are stored column-major: every row of column 0, then
// column 1, and so on. Each payload byte is either
//
//	1 v n n n n n n   a run of n (0..63) pixels of value v
//	0 b b b b b b b   seven literal pixels, bit 0 first
//
// Runs and literals may cross column boundaries.
package icon

import (
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size of the width/height/length header.
	HeaderSize = 3

	// MaxRun is the longest run a single marker can encode.
	MaxRun = 0x3F

	// LiteralPixels is the number of pixels carried by one literal byte.
	LiteralPixels = 7

	flagRun   = 0x80
	flagValue = 0x40
)

var (
	ErrShortHeader = errors.New("icon: short header")
	ErrTruncated   = errors.New("icon: truncated payload")
	ErrOverrun     = errors.New("icon: payload exhausted")
	ErrTooLarge    = errors.New("icon: too large")
)

// Header is the fixed icon header.
type Header struct {
	Width  int
	Height int
	Size   int
}

// ParseHeader reads the header and checks that the payload is present.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	h := Header{
		Width:  int(src[0]),
		Height: int(src[1]),
		Size:   int(src[2]),
	}
	if len(src)-HeaderSize < h.Size {
		return Header{}, fmt.Errorf("%w: have %d bytes, header says %d", ErrTruncated, len(src)-HeaderSize, h.Size)
	}
	return h, nil
}

// Mask is a decoded icon, column-major like the wire format.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask returns an all-zero mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{Width: width, Height: height, bits: make([]bool, width*height)}
}

func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.bits[x*m.Height+y]
}

func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.bits[x*m.Height+y] = on
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
