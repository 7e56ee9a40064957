package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoTimer        = errors.New("no free timer")
	ErrInvalidTimer   = errors.New("invalid timer")
)

// PixelIndicator is a single addressable RGB status pixel.
//
// Clear is distinct from SetColor(0, 0, 0): some LED chips latch differently
// on an explicit clear than on a zero-valued pixel write.
type PixelIndicator interface {
	SetColor(r, g, b uint8) error
	Clear() error
}

// DisplayTransport pushes lines to the LCD.
//
// A line is one framebuffer column: Height() pixels of big-endian RGB565,
// top row first.
type DisplayTransport interface {
	Init() error
	Width() int
	Height() int
	SendLine(x int, line []byte) error
}

// Timer is a periodic software timer.
type Timer interface {
	Start() error
	Stop()
}

// Timers creates periodic timers.
type Timers interface {
	NewTimer(period time.Duration, fn func()) (Timer, error)
}

// HAL provides the only contact point between the status UI and the board.
//
// Display returns nil when the board has no LCD.
type HAL interface {
	Logger() Logger
	Indicator() PixelIndicator
	Display() DisplayTransport
	Timers() Timers
}
