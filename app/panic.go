package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"uf2status/ui/fb"
)

// Recover is deferred by device entry points. It logs a panic, puts the
// panic text on the screen and parks the goroutine, so the board stays in
// a visibly broken state instead of resetting into a loop.
func (s *System) Recover() {
	v := recover()
	if v == nil {
		return
	}
	s.showPanic(v, debug.Stack())
	select {}
}

func (s *System) showPanic(v any, stack []byte) {
	lines := panicLines(v, stack)
	if s.logger != nil {
		for _, line := range lines {
			s.logger.WriteLineString(line)
		}
	}
	s.Close()
	if s.scr == nil {
		return
	}
	if err := s.scr.DrawMessage(fb.White, fb.Black, lines); err != nil && s.logger != nil {
		s.logger.WriteLineString("app: panic screen: " + err.Error())
	}
}

func panicLines(v any, stack []byte) []string {
	lines := []string{
		"bootloader panic:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
