package icon

import "fmt"

// Decode walks every pixel of src and calls plot for each set pixel.
//
// It never reads past the declared payload: when the payload runs out
// before width*height pixels were produced it returns ErrOverrun. Pixels
// plotted before that point stay plotted. Decode does not allocate.
func Decode(src []byte, plot func(x, y int)) error {
	h, err := ParseHeader(src)
	if err != nil {
		return err
	}
	payload := src[HeaderSize : HeaderSize+h.Size]

	var (
		mask   byte = flagRun
		last   byte
		runLen int
		runBit bool
		pos    int
	)
	for x := 0; x < h.Width; x++ {
		for y := 0; y < h.Height; {
			var on bool
			switch {
			case mask != flagRun:
				on = last&mask != 0
				mask <<= 1
			case runLen > 0:
				on = runBit
				runLen--
			default:
				if pos >= len(payload) {
					return fmt.Errorf("%w at pixel (%d,%d) of %dx%d", ErrOverrun, x, y, h.Width, h.Height)
				}
				last = payload[pos]
				pos++
				if last&flagRun != 0 {
					runLen = int(last & MaxRun)
					runBit = last&flagValue != 0
				} else {
					mask = 0x01
				}
				continue
			}
			if on && plot != nil {
				plot(x, y)
			}
			y++
		}
	}
	return nil
}

// DecodeMask decodes src into a new Mask.
func DecodeMask(src []byte) (*Mask, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}
	m := NewMask(h.Width, h.Height)
	if err := Decode(src, func(x, y int) { m.Set(x, y, true) }); err != nil {
		return nil, err
	}
	return m, nil
}
