//go:build tinygo && baremetal && neopixel

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

type neopixelIndicator struct {
	dev ws2812.Device
	buf [1]color.RGBA
}

func newIndicator() (PixelIndicator, error) {
	pinNeopixel.Configure(machine.PinConfig{Mode: machine.PinOutput})
	n := &neopixelIndicator{dev: ws2812.New(pinNeopixel)}
	if err := n.Clear(); err != nil {
		return nil, err
	}
	return n, nil
}

// SetColor writes the pixel and latches it in one transfer.
func (n *neopixelIndicator) SetColor(r, g, b uint8) error {
	n.buf[0] = color.RGBA{R: scaleBrightness(r), G: scaleBrightness(g), B: scaleBrightness(b), A: 0xFF}
	return n.dev.WriteColors(n.buf[:])
}

func (n *neopixelIndicator) Clear() error {
	n.buf[0] = color.RGBA{}
	return n.dev.WriteColors(n.buf[:])
}
