// Package simwindow shows the simulated LCD and status pixel in a desktop
// window.
package simwindow

import "uf2status/ui/status"

// Options configures Run.
type Options struct {
	// Title is prefixed to the build identifier.
	Title string
	// Scale magnifies the panel. Zero means 3.
	Scale int
	// OnState receives states picked with keys 1-6.
	OnState func(status.State)
	// Step runs once per frame; a non-nil error closes the window.
	Step func() error
}

const swatchHeight = 16

// stateForKey maps '1'..'6' onto the named states in order.
func stateForKey(r rune) (status.State, bool) {
	states := status.States()
	i := int(r - '1')
	if i < 0 || i >= len(states) {
		return 0, false
	}
	return states[i], true
}

func (o Options) scale() int {
	if o.Scale <= 0 {
		return 3
	}
	return o.Scale
}
