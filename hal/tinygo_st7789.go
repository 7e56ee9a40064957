//go:build tinygo && baremetal && !nodisplay

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

type st7789Display struct {
	dev    st7789.Device
	width  int16
	height int16
}

func newDisplay() DisplayTransport {
	return &st7789Display{width: displayWidth, height: displayHeight}
}

func (d *st7789Display) Width() int  { return int(d.width) }
func (d *st7789Display) Height() int { return int(d.height) }

func (d *st7789Display) Init() error {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 10_000_000,
		SCK:       pinDisplaySCK,
		SDO:       pinDisplayMOSI,
		SDI:       pinDisplayMISO,
		Mode:      0,
	}); err != nil {
		return err
	}

	d.dev = st7789.New(spi, pinDisplayRST, pinDisplayDC, pinDisplayCS, pinDisplayBL)
	// The panel is mounted rotated so that one framebuffer column is one
	// contiguous line of the controller.
	d.dev.Configure(st7789.Config{
		Width:    d.height,
		Height:   d.width,
		Rotation: drivers.Rotation0,
	})
	return nil
}

// SendLine writes column x as a 1-pixel-wide window.
func (d *st7789Display) SendLine(x int, line []byte) error {
	if x < 0 || x >= int(d.width) {
		return errors.New("st7789: line out of range")
	}
	if len(line) != int(d.height)*2 {
		return errors.New("st7789: bad line length")
	}
	return d.dev.DrawRGBBitmap8(0, int16(x), line, d.height, 1)
}
