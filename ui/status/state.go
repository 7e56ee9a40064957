package status

import (
	"fmt"
	"strings"
)

// State is a bootloader state as seen by the status indicators.
type State uint8

const (
	StateBootloaderStarted State = iota
	StateUSBUnmounted
	StateUSBMounted
	StateWritingStarted
	StateWritingFinished
	StateUnknown
)

var stateNames = [...]string{
	StateBootloaderStarted: "started",
	StateUSBUnmounted:      "unmounted",
	StateUSBMounted:        "mounted",
	StateWritingStarted:    "writing",
	StateWritingFinished:   "finished",
	StateUnknown:           "unknown",
}

// States lists every named state in order.
func States() []State {
	return []State{
		StateBootloaderStarted,
		StateUSBUnmounted,
		StateUSBMounted,
		StateWritingStarted,
		StateWritingFinished,
		StateUnknown,
	}
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ParseState accepts the names returned by State.String.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateUnknown, fmt.Errorf("status: unknown state %q", name)
}
