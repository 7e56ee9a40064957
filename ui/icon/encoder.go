package icon

import "fmt"

// MinRun is the shortest run Encode emits as a run marker. Shorter runs
// are cheaper as part of a literal byte.
const MinRun = LiteralPixels

// Encode compresses m into the icon wire format.
func Encode(m *Mask) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("icon encode: nil mask")
	}
	if m.Width > 0xFF || m.Height > 0xFF {
		return nil, fmt.Errorf("%w: %dx%d exceeds 255x255", ErrTooLarge, m.Width, m.Height)
	}

	n := len(m.bits)
	out := make([]byte, HeaderSize, HeaderSize+n/LiteralPixels+1)
	out[0] = byte(m.Width)
	out[1] = byte(m.Height)

	for i := 0; i < n; {
		v := m.bits[i]
		r := 1
		for i+r < n && r < MaxRun && m.bits[i+r] == v {
			r++
		}
		if r >= MinRun {
			b := byte(flagRun | r)
			if v {
				b |= flagValue
			}
			out = append(out, b)
			i += r
			continue
		}

		var b byte
		for k := 0; k < LiteralPixels && i+k < n; k++ {
			if m.bits[i+k] {
				b |= 1 << k
			}
		}
		out = append(out, b)
		i += LiteralPixels
	}

	size := len(out) - HeaderSize
	if size > 0xFF {
		return nil, fmt.Errorf("%w: payload %d bytes exceeds 255", ErrTooLarge, size)
	}
	out[2] = byte(size)
	return out, nil
}
