// Package summary compares on-call activity across two adjacent shift
// windows. A Summary buckets an event stream against a current and a
// previous Period and answers counting, grouping and trend questions
// about the pair.
package summary

import (
	"fmt"
	"slices"
)

// Predicate filters events during counting. A nil Predicate matches
// every event.
type Predicate func(Event) bool

// Summary holds the event stream for one report. Events are classified
// lazily at query time; Append never inspects timestamps, and events
// falling outside both periods simply never count.
type Summary struct {
	current  Period
	previous Period
	events   []Event
}

// New returns an empty Summary comparing current against previous.
func New(current, previous Period) *Summary {
	return &Summary{current: current, previous: previous}
}

func (s *Summary) Current() Period { return s.current }

func (s *Summary) Previous() Period { return s.previous }

// Append records an event.
func (s *Summary) Append(ev Event) {
	s.events = append(s.events, ev)
}

// CurrentCount counts events inside the current period matching pred.
func (s *Summary) CurrentCount(pred Predicate) int {
	return s.count(s.current, pred)
}

// PreviousCount counts events inside the previous period matching pred.
func (s *Summary) PreviousCount(pred Predicate) int {
	return s.count(s.previous, pred)
}

func (s *Summary) count(p Period, pred Predicate) int {
	n := 0
	for _, ev := range s.events {
		if !p.Contains(ev.OccurredAt()) {
			continue
		}
		if pred != nil && !pred(ev) {
			continue
		}
		n++
	}

	return n
}

// PctChange formats the change of pred-matching counts from the previous
// period to the current one.
func (s *Summary) PctChange(pred Predicate) string {
	return PctChange(s.PreviousCount(pred), s.CurrentCount(pred))
}

// CurrentTally folds the current period's events into a Tally, visiting
// them in insertion order. The visitor decides which keys each event
// contributes to.
func (s *Summary) CurrentTally(visit func(Event, *Tally)) *Tally {
	t := NewTally()
	for _, ev := range s.events {
		if !s.current.Contains(ev.OccurredAt()) {
			continue
		}
		visit(ev, t)
	}

	return t
}

// PctChange formats the relative change between two counts, signed with
// one decimal ("+16.7%"). Growth from a zero baseline reads "new" and
// zero-to-zero reads "no change"; a zero baseline is never an error.
func PctChange(previous, current int) string {
	switch {
	case previous == 0 && current == 0:
		return "no change"
	case previous == 0:
		return "new"
	}

	change := (float64(current) - float64(previous)) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}

// Tally is an insertion-ordered counter. Unknown keys read as zero, and
// Keys preserves first-insertion order so downstream truncation stays
// deterministic.
type Tally struct {
	keys   []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments key by one, registering it on first sight.
func (t *Tally) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Count returns the count for key, zero when never added.
func (t *Tally) Count(key string) int { return t.counts[key] }

// Keys returns the distinct keys in first-insertion order.
func (t *Tally) Keys() []string { return slices.Clone(t.keys) }

// Len is the number of distinct keys.
func (t *Tally) Len() int { return len(t.keys) }
