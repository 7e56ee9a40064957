//go:build tinygo && baremetal && !neopixel && !apa102

package hal

func newIndicator() (PixelIndicator, error) { return noIndicator{}, nil }
