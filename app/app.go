package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"uf2status/hal"
	"uf2status/ui/screen"
	"uf2status/ui/status"
)

// Config holds everything the status UI needs beyond the HAL.
type Config struct {
	Labels      screen.Labels
	Colors      status.Colors
	BlinkPeriod time.Duration
}

// DefaultConfig returns the stock Arcade bootloader configuration.
func DefaultConfig() Config {
	return Config{
		Labels:      screen.DefaultLabels(),
		Colors:      status.DefaultColors(),
		BlinkPeriod: status.DefaultBlinkPeriod,
	}
}

// System ties the LED indicator and the screen to one bootloader state.
type System struct {
	h      hal.HAL
	logger hal.Logger
	led    *status.Indicator
	scr    *screen.Session

	mu       sync.Mutex
	state    status.State
	observer func(status.State, screen.Layout, error)
}

// New builds the status UI on h. Boards without a display get an LED-only
// system.
func New(h hal.HAL, cfg Config) (*System, error) {
	def := DefaultConfig()
	if cfg.Labels == (screen.Labels{}) {
		cfg.Labels = def.Labels
	}

	s := &System{
		h:      h,
		logger: h.Logger(),
		state:  status.StateUnknown,
	}
	s.led = status.New(h.Indicator(), h.Timers(), s.logger, status.Config{
		Colors:      cfg.Colors,
		BlinkPeriod: cfg.BlinkPeriod,
	})

	if d := h.Display(); d != nil {
		scr, err := screen.NewSession(d, s.logger, cfg.Labels)
		if err != nil {
			return nil, err
		}
		if err := scr.Init(); err != nil {
			return nil, err
		}
		s.scr = scr
	}
	return s, nil
}

// Indicator returns the LED state machine.
func (s *System) Indicator() *status.Indicator { return s.led }

// Screen returns the display session, or nil without a display.
func (s *System) Screen() *screen.Session { return s.scr }

// State returns the last applied state.
func (s *System) State() status.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Observe registers fn to be called after every SetState with the layout
// that was drawn (zero when there is no display) and the combined error.
func (s *System) Observe(fn func(status.State, screen.Layout, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

// SetState updates the LED immediately and redraws the screen for st.
// LED and screen errors are both returned; neither stops the other.
func (s *System) SetState(st status.State) error {
	s.mu.Lock()
	s.state = st
	ledErr := s.led.SetState(st)
	if ledErr != nil {
		s.logf("app: led %s: %v", st, ledErr)
	}

	var layout screen.Layout
	var drawErr error
	if s.scr != nil {
		layout = LayoutFor(st)
		drawErr = s.scr.Draw(layout)
		if drawErr != nil {
			s.logf("app: draw %s: %v", layout, drawErr)
		}
	}
	obs := s.observer
	s.mu.Unlock()

	err := errors.Join(ledErr, drawErr)
	if obs != nil {
		obs(st, layout, err)
	}
	return err
}

// Redraw repaints the screen for the current state.
func (s *System) Redraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scr == nil {
		return nil
	}
	return s.scr.Draw(LayoutFor(s.state))
}

// SetLabels replaces the drag-and-drop labels and redraws.
func (s *System) SetLabels(l screen.Labels) error {
	if s.scr == nil {
		return nil
	}
	s.scr.SetLabels(l)
	return s.Redraw()
}

// Close stops the blink timer.
func (s *System) Close() {
	s.led.Close()
}

// LayoutFor picks the screen shown in st.
func LayoutFor(st status.State) screen.Layout {
	if st == status.StateWritingStarted {
		return screen.LayoutFlashing
	}
	return screen.LayoutDragDrop
}

func (s *System) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WriteLineString(fmt.Sprintf(format, args...))
}
