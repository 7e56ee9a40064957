package status

import (
	"errors"
	"strings"
	"testing"
	"time"

	"uf2status/hal"
)

type pixelOp struct {
	clear bool
	c     RGB
}

type fakePixel struct {
	ops []pixelOp
	err error
}

func (p *fakePixel) SetColor(r, g, b uint8) error {
	p.ops = append(p.ops, pixelOp{c: RGB{r, g, b}})
	return p.err
}

func (p *fakePixel) Clear() error {
	p.ops = append(p.ops, pixelOp{clear: true})
	return p.err
}

func (p *fakePixel) last() pixelOp {
	if len(p.ops) == 0 {
		return pixelOp{}
	}
	return p.ops[len(p.ops)-1]
}

type fakeTimer struct {
	period  time.Duration
	fn      func()
	running bool
	starts  int
}

func (t *fakeTimer) Start() error { t.running = true; t.starts++; return nil }
func (t *fakeTimer) Stop()        { t.running = false }

type fakeTimers struct {
	made      []*fakeTimer
	createErr error
}

func (f *fakeTimers) NewTimer(period time.Duration, fn func()) (hal.Timer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	t := &fakeTimer{period: period, fn: fn}
	f.made = append(f.made, t)
	return t, nil
}

func (f *fakeTimers) running() int {
	n := 0
	for _, t := range f.made {
		if t.running {
			n++
		}
	}
	return n
}

type logLines []string

func (l *logLines) WriteLineString(s string) { *l = append(*l, s) }
func (l *logLines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func newIndicator() (*Indicator, *fakePixel, *fakeTimers, *logLines) {
	px := &fakePixel{}
	tm := &fakeTimers{}
	logs := &logLines{}
	return New(px, tm, logs, Config{}), px, tm, logs
}

func TestStaticStates(t *testing.T) {
	c := DefaultColors()
	cases := []struct {
		s    State
		want RGB
	}{
		{StateBootloaderStarted, c.Unmounted},
		{StateUSBUnmounted, c.Unmounted},
		{StateUSBMounted, c.Mounted},
		{StateWritingFinished, c.Writing},
		{StateUnknown, c.Unknown},
		{State(42), c.Unknown},
	}
	for _, tc := range cases {
		ind, px, tm, _ := newIndicator()
		if err := ind.SetState(tc.s); err != nil {
			t.Fatalf("%v: %v", tc.s, err)
		}
		if got := px.last(); got.clear || got.c != tc.want {
			t.Fatalf("%v: got %+v want %v", tc.s, got, tc.want)
		}
		if len(tm.made) != 0 {
			t.Fatalf("%v: static state created a timer", tc.s)
		}
		if ind.State() != tc.s {
			t.Fatalf("State() = %v want %v", ind.State(), tc.s)
		}
	}
}

func TestWritingBlinks(t *testing.T) {
	ind, px, tm, _ := newIndicator()
	if err := ind.SetState(StateWritingStarted); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if len(tm.made) != 1 || !tm.made[0].running {
		t.Fatalf("expected one running timer, got %d", tm.running())
	}
	if tm.made[0].period != DefaultBlinkPeriod {
		t.Fatalf("period: got %v", tm.made[0].period)
	}
	if len(px.ops) != 0 {
		t.Fatalf("pixel touched before first tick: %+v", px.ops)
	}

	w := DefaultColors().Writing
	want := []pixelOp{{c: w}, {clear: true}, {c: w}, {clear: true}}
	for range want {
		tm.made[0].fn()
	}
	if len(px.ops) != len(want) {
		t.Fatalf("ops: got %d want %d", len(px.ops), len(want))
	}
	for i := range want {
		if px.ops[i] != want[i] {
			t.Fatalf("op %d: got %+v want %+v", i, px.ops[i], want[i])
		}
	}
}

func TestWritingFinishedStopsBlink(t *testing.T) {
	ind, px, tm, _ := newIndicator()
	ind.SetState(StateWritingStarted)
	tm.made[0].fn()
	tm.made[0].fn() // now off

	if err := ind.SetState(StateWritingFinished); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if tm.running() != 0 || ind.Blinking() {
		t.Fatal("timer still running after WritingFinished")
	}
	if got := px.last(); got.c != DefaultColors().Writing {
		t.Fatalf("resting color: got %+v", got)
	}

	// A tick that was already in flight must not repaint.
	n := len(px.ops)
	tm.made[0].fn()
	if len(px.ops) != n {
		t.Fatal("stale tick changed the pixel")
	}
}

func TestOtherStatesStopBlink(t *testing.T) {
	ind, _, tm, _ := newIndicator()
	ind.SetState(StateWritingStarted)
	ind.SetState(StateUSBMounted)
	if tm.running() != 0 {
		t.Fatal("timer survived a static state")
	}
}

func TestDoubleWritingStartedSingleTimer(t *testing.T) {
	ind, px, tm, _ := newIndicator()
	ind.SetState(StateWritingStarted)
	tm.made[0].fn() // lit
	ind.SetState(StateWritingStarted)

	if tm.running() != 1 {
		t.Fatalf("running timers: got %d want 1", tm.running())
	}
	if tm.made[0].running || !tm.made[1].running {
		t.Fatal("old timer must be stopped and the new one started")
	}

	px.ops = nil
	tm.made[0].fn() // stale
	tm.made[1].fn()
	tm.made[1].fn()
	w := DefaultColors().Writing
	if len(px.ops) != 2 || px.ops[0] != (pixelOp{c: w}) || !px.ops[1].clear {
		t.Fatalf("expected one fresh toggle sequence, got %+v", px.ops)
	}
}

func TestBlackMeansClear(t *testing.T) {
	px := &fakePixel{}
	ind := New(px, &fakeTimers{}, nil, Config{Colors: Colors{
		Unmounted: RGB{},
		Mounted:   Hex(0x010101),
		Writing:   Hex(0x00ff00),
		Unknown:   Hex(0x0000ff),
	}})
	ind.SetState(StateUSBUnmounted)
	if !px.last().clear {
		t.Fatalf("black must clear, got %+v", px.last())
	}
	ind.SetState(StateUSBMounted)
	if px.last().clear {
		t.Fatal("near-black must not clear")
	}
}

func TestTimerFailureSurfaced(t *testing.T) {
	px := &fakePixel{}
	boom := errors.New("no slots")
	logs := &logLines{}
	ind := New(px, &fakeTimers{createErr: boom}, logs, Config{})

	err := ind.SetState(StateWritingStarted)
	if !errors.Is(err, ErrTimer) || !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if ind.Blinking() {
		t.Fatal("Blinking after failure")
	}
	if got := px.last(); got.c != DefaultColors().Writing {
		t.Fatalf("fallback color: got %+v", got)
	}
	if len(*logs) != 1 || !strings.Contains((*logs)[0], "blink timer") {
		t.Fatalf("logs: %v", *logs)
	}
}

func TestNilTimers(t *testing.T) {
	ind := New(&fakePixel{}, nil, nil, Config{})
	if err := ind.SetState(StateWritingStarted); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("got %v", err)
	}
}

func TestPixelErrorReturned(t *testing.T) {
	px := &fakePixel{err: errors.New("spi")}
	ind := New(px, &fakeTimers{}, nil, Config{})
	if err := ind.SetState(StateUSBMounted); err == nil {
		t.Fatal("expected pixel error")
	}
}

func TestClose(t *testing.T) {
	ind, _, tm, _ := newIndicator()
	ind.SetState(StateWritingStarted)
	ind.Close()
	if tm.running() != 0 {
		t.Fatal("Close left the timer running")
	}
}

func TestRealTimersBlink(t *testing.T) {
	px := &syncPixel{}
	pool := hal.NewTickerTimers(1)
	ind := New(px, pool, nil, Config{BlinkPeriod: 2 * time.Millisecond})

	for i := 0; i < 3; i++ {
		if err := ind.SetState(StateWritingStarted); err != nil {
			t.Fatalf("restart %d: %v", i, err)
		}
	}
	deadline := time.Now().Add(2 * time.Second)
	for px.count() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if px.count() < 4 {
		t.Fatal("blink never ticked")
	}
	ind.SetState(StateWritingFinished)
	if pool.Live() != 0 {
		t.Fatalf("live timers: %d", pool.Live())
	}
}
