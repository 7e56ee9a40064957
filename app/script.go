package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uf2status/ui/status"
)

// DefaultHold is how long a script step lasts without an explicit duration.
const DefaultHold = time.Second

// DemoScript walks through a typical flash.
const DemoScript = "started,unmounted:2s,mounted:2s,writing:3s,finished:2s"

// Step is one entry of a state script.
type Step struct {
	State status.State
	Hold  time.Duration
}

// ParseScript reads comma-separated "state[:duration]" steps, e.g.
// "mounted,writing:2s,finished".
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, dur, hasDur := strings.Cut(field, ":")
		st, err := status.ParseState(name)
		if err != nil {
			return nil, fmt.Errorf("app: script step %q: %w", field, err)
		}
		hold := DefaultHold
		if hasDur {
			hold, err = time.ParseDuration(strings.TrimSpace(dur))
			if err != nil {
				return nil, fmt.Errorf("app: script step %q: %w", field, err)
			}
			if hold < 0 {
				return nil, fmt.Errorf("app: script step %q: negative duration", field)
			}
		}
		steps = append(steps, Step{State: st, Hold: hold})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("app: empty script")
	}
	return steps, nil
}

// Play applies each step in turn and waits out its hold. With loop set it
// starts over after the last step. Apply errors are passed to onErr (when
// non-nil) and do not stop playback.
func Play(ctx context.Context, steps []Step, loop bool, apply func(status.State) error, onErr func(Step, error)) error {
	for {
		for _, st := range steps {
			if err := apply(st.State); err != nil && onErr != nil {
				onErr(st, err)
			}
			if st.Hold <= 0 {
				continue
			}
			t := time.NewTimer(st.Hold)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		if !loop {
			return nil
		}
	}
}
