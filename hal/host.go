//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"
)

// HostConfig configures the host HAL.
type HostConfig struct {
	Width  int
	Height int

	// NoDisplay models a board without an LCD.
	NoDisplay bool

	// NoIndicator models a board without a status pixel.
	NoIndicator bool

	// Logger overrides the default stdout logger.
	Logger Logger

	// TraceLED logs every indicator change.
	TraceLED bool
}

type hostHAL struct {
	logger Logger
	ind    *hostIndicator
	disp   *hostDisplay
	timers *TickerTimers
}

// New returns a host HAL implementation with a 160x128 display.
func New() HAL {
	return NewWithConfig(HostConfig{})
}

// NewWithConfig returns a host HAL implementation.
func NewWithConfig(cfg HostConfig) HAL {
	if cfg.Width <= 0 {
		cfg.Width = 160
	}
	if cfg.Height <= 0 {
		cfg.Height = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = &hostLogger{w: os.Stdout}
	}
	h := &hostHAL{
		logger: logger,
		timers: NewTickerTimers(0),
	}
	if !cfg.NoIndicator {
		h.ind = &hostIndicator{logger: logger, trace: cfg.TraceLED}
	}
	if !cfg.NoDisplay {
		h.disp = newHostDisplay(cfg.Width, cfg.Height)
	}
	return h
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Timers() Timers { return h.timers }

func (h *hostHAL) Indicator() PixelIndicator {
	if h.ind == nil {
		return nil
	}
	return h.ind
}

func (h *hostHAL) Display() DisplayTransport {
	if h.disp == nil {
		return nil
	}
	return h.disp
}

// Snapshot returns the current host display contents, if h is a host HAL
// with a display.
func Snapshot(h HAL) (*image.RGBA, bool) {
	hh, ok := h.(*hostHAL)
	if !ok || hh.disp == nil {
		return nil, false
	}
	return hh.disp.snapshot(), true
}

// IndicatorColor returns the color currently shown by a host HAL indicator.
func IndicatorColor(h HAL) (r, g, b uint8, on bool) {
	hh, ok := h.(*hostHAL)
	if !ok || hh.ind == nil {
		return 0, 0, 0, false
	}
	return hh.ind.color()
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostIndicator struct {
	mu      sync.Mutex
	r, g, b uint8
	on      bool
	trace   bool
	logger  Logger
}

func (i *hostIndicator) SetColor(r, g, b uint8) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.r, i.g, i.b = r, g, b
	i.on = true
	if i.trace {
		i.logger.WriteLineString(fmt.Sprintf("led: #%02x%02x%02x", r, g, b))
	}
	return nil
}

func (i *hostIndicator) Clear() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.r, i.g, i.b = 0, 0, 0
	i.on = false
	if i.trace {
		i.logger.WriteLineString("led: off")
	}
	return nil
}

func (i *hostIndicator) color() (r, g, b uint8, on bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.r, i.g, i.b, i.on
}
