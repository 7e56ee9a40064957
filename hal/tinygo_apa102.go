//go:build tinygo && baremetal && apa102 && !neopixel

package hal

import (
	"image/color"

	"tinygo.org/x/drivers/apa102"
)

type apa102Indicator struct {
	dev *apa102.Device
	buf [1]color.RGBA
}

func newIndicator() (PixelIndicator, error) {
	dev := apa102.NewSoftwareSPI(pinAPA102SCK, pinAPA102Data, 1)
	a := &apa102Indicator{dev: dev}
	if err := a.Clear(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *apa102Indicator) SetColor(r, g, b uint8) error {
	a.buf[0] = color.RGBA{R: r, G: g, B: b, A: pixelBrightness}
	_, err := a.dev.WriteColors(a.buf[:])
	return err
}

func (a *apa102Indicator) Clear() error {
	a.buf[0] = color.RGBA{}
	_, err := a.dev.WriteColors(a.buf[:])
	return err
}
