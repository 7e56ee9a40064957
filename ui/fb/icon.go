package fb

import "uf2status/ui/icon"

// DrawIcon decodes a compressed icon with its top-left corner at (x, y).
// Set pixels take color c; clear pixels leave the framebuffer untouched.
//
// On a corrupt icon the pixels decoded before the error stay drawn.
func (f *Framebuffer) DrawIcon(x, y int, c uint8, src []byte) error {
	return icon.Decode(src, func(ix, iy int) {
		f.Set(x+ix, y+iy, c)
	})
}
