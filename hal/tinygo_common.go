//go:build tinygo && baremetal

package hal

import "machine"

type serialLogger struct {
	out machine.Serialer
}

func newSerialLogger() *serialLogger {
	return &serialLogger{out: machine.Serial}
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

// noIndicator is used on boards without a status pixel.
type noIndicator struct{}

func (noIndicator) SetColor(r, g, b uint8) error { return nil }
func (noIndicator) Clear() error                 { return nil }
