//go:build !tinygo && !cgo

package simwindow

import (
	"errors"

	"uf2status/hal"
)

// Run needs cgo for the window backend.
func Run(_ hal.HAL, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1); use --headless")
}
