// Package config loads board profiles for the host simulator.
//
// A profile is TOML or YAML, picked by file extension. Missing fields keep
// their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"uf2status/app"
	"uf2status/hal"
	"uf2status/internal/logging"
	"uf2status/ui/screen"
	"uf2status/ui/status"
)

// LED kinds.
const (
	LEDNeopixel = "neopixel"
	LEDAPA102   = "apa102"
	LEDNone     = "none"
)

// Board is a board profile.
type Board struct {
	Name    string         `toml:"name" yaml:"name"`
	Display Display        `toml:"display" yaml:"display"`
	LED     LED            `toml:"led" yaml:"led"`
	Labels  Labels         `toml:"labels" yaml:"labels"`
	Logging logging.Config `toml:"logging" yaml:"logging"`
}

type Display struct {
	Width  int  `toml:"width" yaml:"width"`
	Height int  `toml:"height" yaml:"height"`
	None   bool `toml:"none" yaml:"none"`
}

type LED struct {
	Kind        string `toml:"kind" yaml:"kind"`
	BlinkPeriod string `toml:"blink_period" yaml:"blink_period"`
	Unmounted   string `toml:"unmounted" yaml:"unmounted"`
	Mounted     string `toml:"mounted" yaml:"mounted"`
	Writing     string `toml:"writing" yaml:"writing"`
	Unknown     string `toml:"unknown" yaml:"unknown"`
}

type Labels struct {
	Product     string `toml:"product" yaml:"product"`
	Version     string `toml:"version" yaml:"version"`
	Site        string `toml:"site" yaml:"site"`
	FileName    string `toml:"file_name" yaml:"file_name"`
	VolumeLabel string `toml:"volume_label" yaml:"volume_label"`
}

// Default returns the stock Arcade board.
func Default() Board {
	l := screen.DefaultLabels()
	c := status.DefaultColors()
	return Board{
		Name:    "arcade",
		Display: Display{Width: 160, Height: 128},
		LED: LED{
			Kind:        LEDNeopixel,
			BlinkPeriod: status.DefaultBlinkPeriod.String(),
			Unmounted:   c.Unmounted.String(),
			Mounted:     c.Mounted.String(),
			Writing:     c.Writing.String(),
			Unknown:     c.Unknown.String(),
		},
		Labels: Labels{
			Product:     l.Product,
			Version:     l.Version,
			Site:        l.Site,
			FileName:    l.FileName,
			VolumeLabel: l.VolumeLabel,
		},
		Logging: logging.Config{Level: "info", Format: "text"},
	}
}

// Load reads, decodes and validates the profile at path.
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("config: %w", err)
	}
	b, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Board{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes data over Default() and validates the result. format is a
// file extension or name: "toml", ".yaml", "yml".
func Parse(data []byte, format string) (Board, error) {
	b := Default()
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			return Board{}, fmt.Errorf("parse toml: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
			return Board{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Board{}, fmt.Errorf("unsupported format %q", format)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks ranges and that every label is drawable.
func (b Board) Validate() error {
	var errs []error
	if !b.Display.None {
		if b.Display.Width < 1 || b.Display.Width > 320 || b.Display.Height < 1 || b.Display.Height > 320 {
			errs = append(errs, fmt.Errorf("display: size %dx%d out of range", b.Display.Width, b.Display.Height))
		}
	}
	switch b.LED.Kind {
	case LEDNeopixel, LEDAPA102, LEDNone:
	default:
		errs = append(errs, fmt.Errorf("led: unknown kind %q", b.LED.Kind))
	}
	if _, err := b.blinkPeriod(); err != nil {
		errs = append(errs, err)
	}
	if _, err := b.colors(); err != nil {
		errs = append(errs, err)
	}
	for name, v := range map[string]string{
		"product":      b.Labels.Product,
		"version":      b.Labels.Version,
		"site":         b.Labels.Site,
		"file_name":    b.Labels.FileName,
		"volume_label": b.Labels.VolumeLabel,
	} {
		if i := strings.IndexFunc(v, func(r rune) bool { return r < 0x20 || r > 0x7e }); i >= 0 {
			errs = append(errs, fmt.Errorf("labels: %s has undrawable character at %d", name, i))
		}
	}
	return errors.Join(errs...)
}

func (b Board) blinkPeriod() (time.Duration, error) {
	d, err := time.ParseDuration(b.LED.BlinkPeriod)
	if err != nil {
		return 0, fmt.Errorf("led: blink_period: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("led: blink_period must be positive, got %s", d)
	}
	return d, nil
}

func (b Board) colors() (status.Colors, error) {
	var c status.Colors
	var errs []error
	for _, f := range []struct {
		name string
		src  string
		dst  *status.RGB
	}{
		{"unmounted", b.LED.Unmounted, &c.Unmounted},
		{"mounted", b.LED.Mounted, &c.Mounted},
		{"writing", b.LED.Writing, &c.Writing},
		{"unknown", b.LED.Unknown, &c.Unknown},
	} {
		v, err := status.ParseRGB(f.src)
		if err != nil {
			errs = append(errs, fmt.Errorf("led: %s: %w", f.name, err))
			continue
		}
		*f.dst = v
	}
	return c, errors.Join(errs...)
}

// ScreenLabels returns the drag-and-drop labels.
func (b Board) ScreenLabels() screen.Labels {
	return screen.Labels{
		Product:     b.Labels.Product,
		Version:     b.Labels.Version,
		Site:        b.Labels.Site,
		FileName:    b.Labels.FileName,
		VolumeLabel: b.Labels.VolumeLabel,
	}
}

// AppConfig converts a validated profile.
func (b Board) AppConfig() (app.Config, error) {
	period, err := b.blinkPeriod()
	if err != nil {
		return app.Config{}, err
	}
	colors, err := b.colors()
	if err != nil {
		return app.Config{}, err
	}
	return app.Config{
		Labels:      b.ScreenLabels(),
		Colors:      colors,
		BlinkPeriod: period,
	}, nil
}

// HostConfig returns the host HAL geometry for b.
func (b Board) HostConfig() hal.HostConfig {
	return hal.HostConfig{
		Width:       b.Display.Width,
		Height:      b.Display.Height,
		NoDisplay:   b.Display.None,
		NoIndicator: b.LED.Kind == LEDNone,
	}
}
