// Package screen composes the bootloader's full-screen layouts and pushes
// them to the LCD.
package screen

import (
	"errors"
	"fmt"
	"sync"

	"uf2status/hal"
	"uf2status/internal/buildinfo"
	"uf2status/ui/assets"
	"uf2status/ui/fb"
	"uf2status/ui/font8"

	"tinygo.org/x/tinyfont"
)

// Layout names a canned screen.
type Layout uint8

const (
	LayoutDragDrop Layout = iota + 1
	LayoutFlashing
)

func (l Layout) String() string {
	switch l {
	case LayoutDragDrop:
		return "drag"
	case LayoutFlashing:
		return "flashing"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// ParseLayout is the inverse of Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "drag", "dragdrop", "drag-and-drop":
		return LayoutDragDrop, nil
	case "flashing", "hf2":
		return LayoutFlashing, nil
	}
	return 0, fmt.Errorf("screen: unknown layout %q", s)
}

// Labels are the strings shown on the drag-and-drop screen.
type Labels struct {
	Product     string
	Version     string
	Site        string
	FileName    string
	VolumeLabel string
}

// DefaultLabels returns the stock Arcade labels.
func DefaultLabels() Labels {
	return Labels{
		Product:     "Arcade",
		Version:     buildinfo.VersionBase(),
		Site:        "arcade.makecode.com",
		FileName:    "arcade.uf2",
		VolumeLabel: "ARCADE",
	}
}

var errNoDisplay = errors.New("screen: no display")

// Session owns the framebuffer and the display it is flushed to. Every
// draw starts from a cleared framebuffer; nothing carries over.
type Session struct {
	mu     sync.Mutex
	fb     *fb.Framebuffer
	disp   hal.DisplayTransport
	logger hal.Logger
	labels Labels
}

// NewSession sizes the framebuffer from disp.
func NewSession(disp hal.DisplayTransport, logger hal.Logger, labels Labels) (*Session, error) {
	if disp == nil {
		return nil, errNoDisplay
	}
	w, h := disp.Width(), disp.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("screen: invalid display size %dx%d", w, h)
	}
	return &Session{
		fb:     fb.New(w, h),
		disp:   disp,
		logger: logger,
		labels: labels,
	}, nil
}

// Init brings up the display and blanks the framebuffer.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.disp.Init(); err != nil {
		return fmt.Errorf("screen: init display: %w", err)
	}
	s.fb.Clear()
	return nil
}

// Framebuffer exposes the backing framebuffer.
func (s *Session) Framebuffer() *fb.Framebuffer {
	return s.fb
}

func (s *Session) Labels() Labels {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labels
}

func (s *Session) SetLabels(l Labels) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = l
}

// Draw renders l.
func (s *Session) Draw(l Layout) error {
	switch l {
	case LayoutDragDrop:
		return s.DrawDragDrop()
	case LayoutFlashing:
		return s.DrawFlashing()
	}
	return fmt.Errorf("screen: unknown layout %d", uint8(l))
}

// DrawFlashing shows the HF2 "flashing..." screen.
func (s *Session) DrawFlashing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fb.Clear()
	s.fb.Print4(20, 22, fb.Yellow, "<-->")
	s.fb.Print(40, 110, fb.Green, "flashing...")
	return s.flush()
}

const (
	dragY = 70
	dragX = 10
)

// DrawDragDrop shows the mass-storage "drag your .uf2 here" screen.
//
// A corrupt icon is logged and skipped; the rest of the screen is still
// drawn and flushed, and the icon error is returned afterwards.
func (s *Session) DrawDragDrop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.fb
	l := s.labels

	f.Clear()
	f.FillBar(0, 52, fb.Green)
	f.FillBar(52, 55, fb.Blue)
	f.FillBar(107, 14, fb.Orange)

	f.Print4(f.Centered(fb.Text4Width(l.Product)), 5, fb.White, l.Product)
	_, versionW := tinyfont.LineWidth(font8.Font, l.Version)
	f.Print(f.Centered(int(versionW)), 40, fb.Teal, l.Version)
	f.Print(23, 110, fb.White, l.Site)

	var iconErrs []error
	drawIcon := func(name string, x, y int, src []byte) {
		if err := f.DrawIcon(x, y, fb.White, src); err != nil {
			s.logf("screen: icon %s: %v", name, err)
			iconErrs = append(iconErrs, fmt.Errorf("icon %s: %w", name, err))
		}
	}
	drawIcon("file", dragX+20, dragY+5, assets.FileLogo)
	drawIcon("arrow", dragX+66, dragY, assets.ArrowLogo)
	drawIcon("pendrive", dragX+108, dragY, assets.PendriveLogo)

	f.Print(10, dragY-12, fb.White, l.FileName)
	f.Print(90, dragY-12, fb.White, l.VolumeLabel)

	if err := s.flush(); err != nil {
		return err
	}
	return errors.Join(iconErrs...)
}

func (s *Session) flush() error {
	if err := s.fb.ForEachLine(s.disp.SendLine); err != nil {
		s.logf("screen: flush: %v", err)
		return fmt.Errorf("screen: flush: %w", err)
	}
	return nil
}

func (s *Session) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WriteLineString(fmt.Sprintf(format, args...))
}
