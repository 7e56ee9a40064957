//go:build tinygo && baremetal

package hal

type tinyGoHAL struct {
	logger *serialLogger
	ind    PixelIndicator
	disp   DisplayTransport
	timers *TickerTimers
}

// New returns the device HAL.
//
// The status pixel strategy is picked by build tag (neopixel, apa102, or
// none) and the LCD is present unless built with nodisplay.
func New() HAL {
	logger := newSerialLogger()
	ind, err := newIndicator()
	if err != nil {
		logger.WriteLineString("hal: indicator: " + err.Error())
		ind = noIndicator{}
	}
	return &tinyGoHAL{
		logger: logger,
		ind:    ind,
		disp:   newDisplay(),
		timers: NewTickerTimers(0),
	}
}

func (h *tinyGoHAL) Logger() Logger            { return h.logger }
func (h *tinyGoHAL) Indicator() PixelIndicator { return h.ind }
func (h *tinyGoHAL) Display() DisplayTransport { return h.disp }
func (h *tinyGoHAL) Timers() Timers            { return h.timers }
