//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	ind    *tinyGoHostIndicator
	disp   *tinyGoHostDisplay
	timers *TickerTimers
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		ind:    &tinyGoHostIndicator{logger: l},
		disp:   &tinyGoHostDisplay{width: 160, height: 128},
		timers: NewTickerTimers(0),
	}
}

func (h *tinyGoHostHAL) Logger() Logger            { return h.logger }
func (h *tinyGoHostHAL) Indicator() PixelIndicator { return h.ind }
func (h *tinyGoHostHAL) Display() DisplayTransport { return h.disp }
func (h *tinyGoHostHAL) Timers() Timers            { return h.timers }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostIndicator struct {
	logger *tinyGoHostLogger
}

func (i *tinyGoHostIndicator) SetColor(r, g, b uint8) error {
	i.logger.WriteLineString(fmt.Sprintf("led: #%02x%02x%02x (tinygo/%s)", r, g, b, runtime.GOOS))
	return nil
}

func (i *tinyGoHostIndicator) Clear() error {
	i.logger.WriteLineString(fmt.Sprintf("led: off (tinygo/%s)", runtime.GOOS))
	return nil
}

// tinyGoHostDisplay accepts lines and drops them.
type tinyGoHostDisplay struct {
	width  int
	height int
}

func (d *tinyGoHostDisplay) Init() error { return nil }
func (d *tinyGoHostDisplay) Width() int  { return d.width }
func (d *tinyGoHostDisplay) Height() int { return d.height }

func (d *tinyGoHostDisplay) SendLine(x int, line []byte) error {
	if x < 0 || x >= d.width || len(line) != d.height*2 {
		return fmt.Errorf("tinygo display: bad line %d", x)
	}
	return nil
}
