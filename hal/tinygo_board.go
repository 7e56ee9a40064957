//go:build tinygo && baremetal

package hal

import "machine"

// Board wiring. Pin numbers follow the ESP32-S2 arcade bootloader boards;
// other boards override them in their own tagged file.
var (
	pinNeopixel machine.Pin = 18

	pinAPA102Data machine.Pin = 40
	pinAPA102SCK  machine.Pin = 41

	pinDisplaySCK  machine.Pin = 36
	pinDisplayMOSI machine.Pin = 35
	pinDisplayMISO machine.Pin = 37
	pinDisplayCS   machine.Pin = 34
	pinDisplayDC   machine.Pin = 33
	pinDisplayRST  machine.Pin = 38
	pinDisplayBL   machine.Pin = 45

	displayWidth  int16 = 160
	displayHeight int16 = 128

	// Global brightness scale for the status pixel, 0..255.
	pixelBrightness uint8 = 0x20
)

func scaleBrightness(v uint8) uint8 {
	return uint8(uint16(v) * uint16(pixelBrightness) / 255)
}
