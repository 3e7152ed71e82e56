package oncall

import (
	"fmt"
	"time"

	"github.com/batonhq/baton/internal/summary"
)

// Windows is the pair of shift windows a report compares.
type Windows struct {
	Current  summary.Period
	Previous summary.Period
	OnCall   User // who held the pager during the current shift
}

// ResolveWindows finds the shift covering now and derives the prior window
// of equal length ending where the current shift starts. An empty schedule
// or one with no covering shift is an error; nothing can be reported
// without the pair of windows.
func ResolveWindows(shifts []Shift, now time.Time) (*Windows, error) {
	if len(shifts) == 0 {
		return nil, fmt.Errorf("schedule has no shifts: %w", ErrNotFound)
	}

	for _, shift := range shifts {
		current, err := summary.NewPeriod(shift.Start, shift.End)
		if err != nil {
			return nil, fmt.Errorf("shift for %s: %w", shift.User.Name, err)
		}
		if !current.Contains(now) {
			continue
		}

		return &Windows{
			Current:  current,
			Previous: current.Previous(),
			OnCall:   shift.User,
		}, nil
	}

	return nil, fmt.Errorf("no shift covers %s: %w", now.Format(time.RFC3339), ErrNotFound)
}
