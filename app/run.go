package app

import (
	"context"

	"uf2status/hal"
)

// Run brings up the status UI and loops the demo script forever. It is the
// device entry point; the USB stack is not part of this firmware.
func Run(h hal.HAL) {
	logger := h.Logger()
	s, err := New(h, DefaultConfig())
	if err != nil {
		if logger != nil {
			logger.WriteLineString("app: " + err.Error())
		}
		select {}
	}
	defer s.Recover()

	steps, err := ParseScript(DemoScript)
	if err != nil {
		panic(err)
	}
	_ = Play(context.Background(), steps, true, s.SetState, nil)
}
