// Package status drives the single RGB status pixel from bootloader state.
package status

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"uf2status/hal"
)

// DefaultBlinkPeriod is the toggle period while writing.
const DefaultBlinkPeriod = 50 * time.Millisecond

// ErrTimer is returned when the blink timer cannot be created or started.
// The indicator then shows the writing color without blinking.
var ErrTimer = errors.New("status: blink timer unavailable")

// Config configures an Indicator. Zero fields take defaults.
type Config struct {
	Colors      Colors
	BlinkPeriod time.Duration
}

// Indicator maps states onto a PixelIndicator. It owns at most one blink
// timer at a time and is safe to call from any goroutine; the blink
// callback and SetState share the same lock.
type Indicator struct {
	px     hal.PixelIndicator
	timers hal.Timers
	logger hal.Logger

	colors Colors
	period time.Duration

	mu    sync.Mutex
	state State
	blink hal.Timer
	gen   uint64
	lit   bool
}

// New returns an Indicator. timers may be nil, in which case writing shows
// a steady color and SetState reports ErrTimer.
func New(px hal.PixelIndicator, timers hal.Timers, logger hal.Logger, cfg Config) *Indicator {
	if cfg.Colors == (Colors{}) {
		cfg.Colors = DefaultColors()
	}
	if cfg.BlinkPeriod <= 0 {
		cfg.BlinkPeriod = DefaultBlinkPeriod
	}
	return &Indicator{
		px:     px,
		timers: timers,
		logger: logger,
		colors: cfg.Colors,
		period: cfg.BlinkPeriod,
		state:  StateUnknown,
	}
}

// State returns the last state passed to SetState.
func (i *Indicator) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Blinking reports whether the blink timer is running.
func (i *Indicator) Blinking() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.blink != nil
}

// SetState applies the visual for s. Re-entering a state re-applies it;
// entering StateWritingStarted while already blinking restarts the timer
// rather than adding a second one.
func (i *Indicator) SetState(s State) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.stopBlinkLocked()
	i.state = s

	switch s {
	case StateBootloaderStarted, StateUSBUnmounted:
		return i.showLocked(i.colors.Unmounted)
	case StateUSBMounted:
		return i.showLocked(i.colors.Mounted)
	case StateWritingStarted:
		return i.startBlinkLocked()
	case StateWritingFinished:
		return i.showLocked(i.colors.Writing)
	default:
		return i.showLocked(i.colors.Unknown)
	}
}

// Close stops any running blink timer. The pixel keeps its last color.
func (i *Indicator) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stopBlinkLocked()
}

func (i *Indicator) startBlinkLocked() error {
	if i.timers == nil {
		return i.timerFailedLocked(hal.ErrNotImplemented)
	}
	gen := i.gen
	t, err := i.timers.NewTimer(i.period, func() { i.toggle(gen) })
	if err != nil {
		return i.timerFailedLocked(err)
	}
	if err := t.Start(); err != nil {
		return i.timerFailedLocked(err)
	}
	i.lit = false
	i.blink = t
	return nil
}

func (i *Indicator) timerFailedLocked(cause error) error {
	i.logf("status: blink timer: %v", cause)
	err := fmt.Errorf("%w: %w", ErrTimer, cause)
	if perr := i.showLocked(i.colors.Writing); perr != nil {
		return errors.Join(err, perr)
	}
	return err
}

// stopBlinkLocked also invalidates callbacks already in flight.
func (i *Indicator) stopBlinkLocked() {
	i.gen++
	if i.blink == nil {
		return
	}
	i.blink.Stop()
	i.blink = nil
}

func (i *Indicator) toggle(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if gen != i.gen || i.blink == nil {
		return
	}
	i.lit = !i.lit
	c := RGB{}
	if i.lit {
		c = i.colors.Writing
	}
	if err := i.showLocked(c); err != nil {
		i.logf("status: blink: %v", err)
	}
}

func (i *Indicator) showLocked(c RGB) error {
	if i.px == nil {
		return nil
	}
	var err error
	if c.Off() {
		err = i.px.Clear()
	} else {
		err = i.px.SetColor(c.R, c.G, c.B)
	}
	if err != nil {
		return fmt.Errorf("status: pixel %s: %w", c, err)
	}
	return nil
}

func (i *Indicator) logf(format string, args ...any) {
	if i.logger == nil {
		return
	}
	i.logger.WriteLineString(fmt.Sprintf(format, args...))
}
