package summary

import (
	"fmt"
	"time"
)

// Period is a closed time interval. Both boundaries count as inside: an
// event stamped exactly at Start or End belongs to the period.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod builds a Period from start to end inclusive.
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("period ends (%s) before it starts (%s)",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }

func (p Period) End() time.Time { return p.end }

// Duration returns the length of the period.
func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }

// Contains reports whether t falls inside the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

// Previous returns the period of the same length immediately before this
// one, ending where this one starts.
func (p Period) Previous() Period {
	return Period{start: p.start.Add(-p.Duration()), end: p.start}
}

func (p Period) String() string {
	return p.start.Format(time.RFC3339) + " .. " + p.end.Format(time.RFC3339)
}
