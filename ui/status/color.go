package status

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit indicator color.
type RGB struct {
	R, G, B uint8
}

// Off reports whether c turns the indicator off.
func (c RGB) Off() bool { return c == RGB{} }

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex builds an RGB from 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ParseRGB parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseRGB(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "#")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	if len(t) != 6 {
		return RGB{}, fmt.Errorf("status: bad color %q", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("status: bad color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseRGB(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Colors assigns a color to each indicator role.
type Colors struct {
	Unmounted RGB
	Mounted   RGB
	Writing   RGB
	Unknown   RGB
}

// DefaultColors are the stock bootloader colors.
func DefaultColors() Colors {
	return Colors{
		Unmounted: Hex(0xff0000),
		Mounted:   Hex(0x00ff00),
		Writing:   Hex(0xcc6600),
		Unknown:   Hex(0x000088),
	}
}
