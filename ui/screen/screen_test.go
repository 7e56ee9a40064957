package screen

import (
	"errors"
	"strings"
	"testing"

	"uf2status/ui/assets"
	"uf2status/ui/fb"
	"uf2status/ui/icon"
)

type fakeDisplay struct {
	w, h   int
	inits  int
	xs     []int
	lines  [][]byte
	failAt int
}

var errWire = errors.New("spi wedged")

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, failAt: -1}
}

func (d *fakeDisplay) Init() error { d.inits++; return nil }
func (d *fakeDisplay) Width() int  { return d.w }
func (d *fakeDisplay) Height() int { return d.h }

func (d *fakeDisplay) SendLine(x int, line []byte) error {
	d.xs = append(d.xs, x)
	d.lines = append(d.lines, append([]byte(nil), line...))
	if x == d.failAt {
		return errWire
	}
	return nil
}

type logLines []string

func (l *logLines) WriteLineString(s string) { *l = append(*l, s) }
func (l *logLines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func newTestSession(t *testing.T) (*Session, *fakeDisplay, *logLines) {
	t.Helper()
	d := newFakeDisplay(160, 128)
	var logs logLines
	labels := DefaultLabels()
	labels.Version = "0.0.0"
	s, err := NewSession(d, &logs, labels)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s, d, &logs
}

func TestNewSessionRequiresDisplay(t *testing.T) {
	if _, err := NewSession(nil, nil, DefaultLabels()); err == nil {
		t.Fatal("expected error without display")
	}
	if _, err := NewSession(newFakeDisplay(0, 10), nil, DefaultLabels()); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestFlushSendsEveryColumnInOrder(t *testing.T) {
	s, d, logs := newTestSession(t)
	if d.inits != 1 {
		t.Fatalf("inits: got %d", d.inits)
	}
	if err := s.DrawFlashing(); err != nil {
		t.Fatalf("DrawFlashing: %v", err)
	}
	if len(d.xs) != 160 {
		t.Fatalf("lines: got %d want 160", len(d.xs))
	}
	for i, x := range d.xs {
		if x != i {
			t.Fatalf("line %d sent for column %d", i, x)
		}
		if len(d.lines[i]) != 128*2 {
			t.Fatalf("line %d: %d bytes", i, len(d.lines[i]))
		}
	}
	if len(*logs) != 0 {
		t.Fatalf("unexpected logs: %v", *logs)
	}
}

func TestDrawFlashing(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.DrawFlashing(); err != nil {
		t.Fatalf("DrawFlashing: %v", err)
	}
	f := s.Framebuffer()

	// '<' at 4x: its tip column is the third glyph column.
	found := false
	for y := 22; y < 22+32; y++ {
		if f.At(20+8, y) == fb.Yellow {
			found = true
		}
	}
	if !found {
		t.Fatal("expected yellow arrow glyphs")
	}

	// 'f' starts at column 40; its stem is column 1 of the glyph.
	if f.At(41, 113) != fb.Green {
		t.Fatalf("status line: got %d at (41,113)", f.At(41, 113))
	}
	if f.At(0, 0) != fb.Black {
		t.Fatal("background must be black")
	}
}

func TestDrawDragDrop(t *testing.T) {
	s, d, logs := newTestSession(t)
	if err := s.DrawDragDrop(); err != nil {
		t.Fatalf("DrawDragDrop: %v", err)
	}
	f := s.Framebuffer()

	bars := []struct {
		y    int
		want uint8
	}{
		{0, fb.Green},
		{51, fb.Green},
		{52, fb.Blue},
		{106, fb.Blue},
		{107, fb.Orange},
		{120, fb.Orange},
		{121, fb.Black},
		{127, fb.Black},
	}
	for _, b := range bars {
		if got := f.At(0, b.y); got != b.want {
			t.Fatalf("bar at y=%d: got %d want %d", b.y, got, b.want)
		}
	}

	// "0.0.0" is 30 wide, centered at 65. '0' has rows 1..5 set in its
	// first column.
	if f.At(65, 41) != fb.Teal {
		t.Fatalf("version: got %d at (65,41)", f.At(65, 41))
	}
	if f.At(64, 41) != fb.Green {
		t.Fatalf("version left edge: got %d at (64,41)", f.At(64, 41))
	}

	if len(d.xs) != 160 {
		t.Fatalf("lines: got %d", len(d.xs))
	}
	if len(*logs) != 0 {
		t.Fatalf("unexpected logs: %v", *logs)
	}
}

func TestDrawDragDropIcons(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.DrawDragDrop(); err != nil {
		t.Fatalf("DrawDragDrop: %v", err)
	}
	f := s.Framebuffer()

	check := func(name string, x0, y0 int, src []byte) {
		m, err := icon.DecodeMask(src)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		w, h := m.Width, m.Height
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				if m.At(x, y) && f.At(x0+x, y0+y) != fb.White {
					t.Fatalf("%s pixel (%d,%d) not drawn", name, x, y)
				}
			}
		}
	}
	check("file", 30, 75, assets.FileLogo)
	check("arrow", 76, 70, assets.ArrowLogo)
	check("pendrive", 118, 70, assets.PendriveLogo)
}

func TestRedrawStartsFromScratch(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.DrawDragDrop(); err != nil {
		t.Fatalf("DrawDragDrop: %v", err)
	}
	if err := s.DrawFlashing(); err != nil {
		t.Fatalf("DrawFlashing: %v", err)
	}
	if s.Framebuffer().At(0, 0) != fb.Black {
		t.Fatal("drag-and-drop bars leaked into the flashing screen")
	}
}

func TestLongProductIsClamped(t *testing.T) {
	s, _, _ := newTestSession(t)
	l := s.Labels()
	l.Product = "Arcade Bootloader"
	s.SetLabels(l)
	if err := s.DrawDragDrop(); err != nil {
		t.Fatalf("DrawDragDrop: %v", err)
	}
	// Centering clamps to 0, so 'A' starts at the left edge.
	found := false
	for y := 5; y < 5+32; y++ {
		if s.Framebuffer().At(0, y) == fb.White {
			found = true
		}
	}
	if !found {
		t.Fatal("expected product text at column 0")
	}
}

func TestFlushErrorAborts(t *testing.T) {
	s, d, logs := newTestSession(t)
	d.failAt = 3
	err := s.DrawFlashing()
	if !errors.Is(err, errWire) {
		t.Fatalf("got %v, want errWire", err)
	}
	if len(d.xs) != 4 {
		t.Fatalf("lines after failure: got %d want 4", len(d.xs))
	}
	if len(*logs) != 1 || !strings.HasPrefix((*logs)[0], "screen: flush") {
		t.Fatalf("logs: %v", *logs)
	}
}

func TestCorruptIconIsLoggedAndSkipped(t *testing.T) {
	old := assets.ArrowLogo
	defer func() { assets.ArrowLogo = old }()
	// 32x24 needs far more than one 63-pixel run.
	assets.ArrowLogo = []byte{32, 24, 1, 0xFF}

	s, d, logs := newTestSession(t)
	err := s.DrawDragDrop()
	if !errors.Is(err, icon.ErrOverrun) {
		t.Fatalf("got %v, want ErrOverrun", err)
	}
	if len(d.xs) != 160 {
		t.Fatalf("screen must still be flushed, got %d lines", len(d.xs))
	}
	if len(*logs) != 1 || !strings.Contains((*logs)[0], "icon arrow") {
		t.Fatalf("logs: %v", *logs)
	}
	// The other icons still land.
	m, _ := icon.DecodeMask(assets.PendriveLogo)
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.At(x, y) && s.Framebuffer().At(118+x, 70+y) != fb.White {
				t.Fatal("pendrive icon missing")
			}
		}
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{LayoutDragDrop, LayoutFlashing} {
		got, err := ParseLayout(l.String())
		if err != nil || got != l {
			t.Fatalf("ParseLayout(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLayout("splash"); err == nil {
		t.Fatal("expected error")
	}
}
