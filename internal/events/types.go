package events

import (
	"uf2status/ui/screen"
	"uf2status/ui/status"
)

// Event type constants for kelindar/event.
const (
	TypeStateRequested uint32 = iota + 1
	TypeStateApplied
	TypeConfigReloaded
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// StateRequestedEvent asks the simulator to enter a new bootloader state.
type StateRequestedEvent struct {
	State  status.State
	Source string
}

// Type returns the event type identifier for StateRequestedEvent.
func (e StateRequestedEvent) Type() uint32 { return TypeStateRequested }

// StateAppliedEvent reports that a state reached the LED and the screen.
type StateAppliedEvent struct {
	State  status.State
	Layout screen.Layout
	Err    error
}

// Type returns the event type identifier for StateAppliedEvent.
func (e StateAppliedEvent) Type() uint32 { return TypeStateApplied }

// ConfigReloadedEvent carries the labels of a reloaded board profile.
type ConfigReloadedEvent struct {
	Path   string
	Labels screen.Labels
}

// Type returns the event type identifier for ConfigReloadedEvent.
func (e ConfigReloadedEvent) Type() uint32 { return TypeConfigReloaded }
