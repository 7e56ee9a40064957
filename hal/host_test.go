//go:build !tinygo

package hal

import (
	"bytes"
	"testing"
)

func TestHostDisplaySnapshot(t *testing.T) {
	h := NewWithConfig(HostConfig{Width: 4, Height: 3, Logger: &hostLogger{w: &bytes.Buffer{}}})
	d := h.Display()
	if d == nil {
		t.Fatal("expected display")
	}
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	red := RGB565(0xff, 0, 0)
	line := []byte{byte(red >> 8), byte(red), 0, 0, 0, 0}
	if err := d.SendLine(2, line); err != nil {
		t.Fatalf("SendLine: %v", err)
	}
	if err := d.SendLine(4, line); err == nil {
		t.Fatal("expected error for column out of range")
	}
	if err := d.SendLine(0, line[:4]); err == nil {
		t.Fatal("expected error for short line")
	}

	img, ok := Snapshot(h)
	if !ok {
		t.Fatal("expected snapshot")
	}
	if c := img.RGBAAt(2, 0); c.R != 0xff || c.G != 0 || c.B != 0 {
		t.Fatalf("(2,0): got %+v", c)
	}
	if c := img.RGBAAt(2, 1); c.R != 0 {
		t.Fatalf("(2,1): got %+v", c)
	}
}

func TestHostIndicatorTrace(t *testing.T) {
	var out bytes.Buffer
	h := NewWithConfig(HostConfig{NoDisplay: true, TraceLED: true, Logger: &hostLogger{w: &out}})
	if h.Display() != nil {
		t.Fatal("expected no display")
	}
	_ = h.Indicator().SetColor(0xcc, 0x66, 0x00)
	if r, g, b, on := IndicatorColor(h); !on || r != 0xcc || g != 0x66 || b != 0 {
		t.Fatalf("got %02x%02x%02x on=%v", r, g, b, on)
	}
	_ = h.Indicator().Clear()
	if _, _, _, on := IndicatorColor(h); on {
		t.Fatal("expected off after Clear")
	}
	if out.String() != "led: #cc6600\nled: off\n" {
		t.Fatalf("trace: %q", out.String())
	}
}

func TestHostWithoutPeripherals(t *testing.T) {
	h := NewWithConfig(HostConfig{NoDisplay: true, NoIndicator: true, Logger: &hostLogger{w: &bytes.Buffer{}}})
	if h.Display() != nil {
		t.Fatal("expected no display")
	}
	if h.Indicator() != nil {
		t.Fatal("expected no indicator")
	}
	if _, _, _, on := IndicatorColor(h); on {
		t.Fatal("IndicatorColor reported a color without an indicator")
	}
	if _, ok := Snapshot(h); ok {
		t.Fatal("Snapshot without a display")
	}
}
