package logging

import (
	"context"
	"log/slog"
	"strings"

	"uf2status/hal"
)

// HALLogger adapts a slog logger to hal.Logger. A "component: message" line
// is logged as message with a component attribute.
type HALLogger struct {
	l     *slog.Logger
	level slog.Level
}

var _ hal.Logger = (*HALLogger)(nil)

// NewHALLogger logs every line at info.
func NewHALLogger(l *slog.Logger) *HALLogger {
	return &HALLogger{l: l, level: slog.LevelInfo}
}

// WithLevel returns a copy logging at level.
func (h *HALLogger) WithLevel(level slog.Level) *HALLogger {
	return &HALLogger{l: h.l, level: level}
}

func (h *HALLogger) WriteLineString(s string) {
	s = strings.TrimRight(s, "\r\n")
	if comp, msg, ok := strings.Cut(s, ": "); ok && isComponent(comp) {
		h.l.Log(context.Background(), h.level, msg, "component", comp)
		return
	}
	h.l.Log(context.Background(), h.level, s)
}

func (h *HALLogger) WriteLineBytes(b []byte) {
	h.WriteLineString(string(b))
}

func isComponent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' && c != '_' {
			return false
		}
	}
	return true
}
