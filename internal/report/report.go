// Package report assembles and renders the end-of-shift report for one
// on-call rotation.
package report

import (
	"fmt"
	"time"

	"github.com/batonhq/baton/internal/oncall"
	"github.com/batonhq/baton/internal/rotation"
	"github.com/batonhq/baton/internal/summary"
)

// Trend pairs a current-shift count with its previous-shift baseline.
type Trend struct {
	Current  int
	Previous int
	Change   string
}

// NameCount is a per-person row with its change against the previous
// shift.
type NameCount struct {
	Name   string
	Count  int
	Change string
}

// ChannelTrend is the alert volume over one delivery channel.
type ChannelTrend struct {
	Channel summary.Channel
	Trend
}

// TriggerCount is one trigger group from the current shift.
type TriggerCount struct {
	Trigger string
	Count   int
}

type IncidentStats struct {
	Total      Trend
	Resolved   Trend
	Unresolved int
	ByResolver []NameCount
}

type AlertStats struct {
	Total         Trend
	Paging        Trend
	Graveyard     Trend
	GraveyardHour int
	ByChannel     []ChannelTrend
	ByPerson      []NameCount
}

// Report is the computed end-of-shift report, ready for rendering.
type Report struct {
	Rotation    string
	ShiftRange  string
	OnCall      string
	GeneratedAt time.Time

	Incidents   IncidentStats
	Alerts      AlertStats
	TopTriggers []TriggerCount
}

// Build computes the report from raw service records. Record order is
// preserved into the grouping order of every by-person and by-trigger
// breakdown.
func Build(
	rot *rotation.Rotation,
	windows *oncall.Windows,
	policy *oncall.EscalationPolicy,
	incidents []oncall.Incident,
	alerts []oncall.Alert,
	now time.Time,
) *Report {
	incSummary := summary.New(windows.Current, windows.Previous)
	for _, in := range incidents {
		incSummary.Append(incidentEvent(in, rot.Location))
	}

	alertSummary := summary.New(windows.Current, windows.Previous)
	for _, al := range alerts {
		alertSummary.Append(alertEvent(al, rot.Location))
	}

	return &Report{
		Rotation:    rot.Name,
		ShiftRange:  formatShiftRange(windows.Current),
		OnCall:      annotate(policy, windows.OnCall.Name),
		GeneratedAt: now,
		Incidents:   incidentStats(incSummary, policy),
		Alerts:      alertStats(alertSummary, policy, rot.GraveyardUntilHour),
		TopTriggers: topTriggers(incSummary, rot.TopTriggers),
	}
}

func incidentEvent(in oncall.Incident, loc *time.Location) summary.Incident {
	ev := summary.Incident{
		CreatedAt: in.CreatedAt.In(loc),
		Resolved:  in.Status == oncall.StatusResolved,
		Trigger:   in.Trigger.Name,
	}
	if ev.Resolved {
		// Resolved incidents always carry a resolver label, even when the
		// service closed them without a person attached.
		ev.ResolvedBy = "auto-resolved"
		if in.ResolvedBy != nil && in.ResolvedBy.Name != "" {
			ev.ResolvedBy = in.ResolvedBy.Name
		}
	}

	return ev
}

func alertEvent(al oncall.Alert, loc *time.Location) summary.Alert {
	return summary.Alert{
		SentAt:  al.SentAt.In(loc),
		Channel: summary.ParseChannel(al.Channel),
		Person:  al.User.Name,
	}
}

func incidentStats(s *summary.Summary, policy *oncall.EscalationPolicy) IncidentStats {
	resolved := func(ev summary.Event) bool {
		i, ok := ev.(summary.Incident)
		return ok && i.Resolved
	}
	unresolved := func(ev summary.Event) bool {
		i, ok := ev.(summary.Incident)
		return ok && !i.Resolved
	}

	tally := s.CurrentTally(func(ev summary.Event, acc *summary.Tally) {
		if i, ok := ev.(summary.Incident); ok && i.Resolved {
			acc.Add(i.ResolvedBy)
		}
	})

	byResolver := make([]NameCount, 0, tally.Len())
	for _, name := range tally.Keys() {
		previous := s.PreviousCount(func(ev summary.Event) bool {
			i, ok := ev.(summary.Incident)
			return ok && i.Resolved && i.ResolvedBy == name
		})
		byResolver = append(byResolver, NameCount{
			Name:   annotate(policy, name),
			Count:  tally.Count(name),
			Change: summary.PctChange(previous, tally.Count(name)),
		})
	}

	return IncidentStats{
		Total:      trendOf(s, nil),
		Resolved:   trendOf(s, resolved),
		Unresolved: s.CurrentCount(unresolved),
		ByResolver: byResolver,
	}
}

func alertStats(s *summary.Summary, policy *oncall.EscalationPolicy, graveyardHour int) AlertStats {
	paging := func(ev summary.Event) bool {
		a, ok := ev.(summary.Alert)
		return ok && a.ChannelIn(summary.ChannelSMS, summary.ChannelPhone)
	}
	graveyard := func(ev summary.Event) bool {
		a, ok := ev.(summary.Alert)
		return ok && a.Graveyard(graveyardHour)
	}

	channels := []summary.Channel{
		summary.ChannelSMS,
		summary.ChannelPhone,
		summary.ChannelEmail,
		summary.ChannelOther,
	}
	byChannel := make([]ChannelTrend, 0, len(channels))
	for _, ch := range channels {
		pred := func(ev summary.Event) bool {
			a, ok := ev.(summary.Alert)
			return ok && a.Channel == ch
		}
		byChannel = append(byChannel, ChannelTrend{Channel: ch, Trend: trendOf(s, pred)})
	}

	tally := s.CurrentTally(func(ev summary.Event, acc *summary.Tally) {
		if a, ok := ev.(summary.Alert); ok {
			acc.Add(a.Person)
		}
	})

	byPerson := make([]NameCount, 0, tally.Len())
	for _, name := range tally.Keys() {
		previous := s.PreviousCount(func(ev summary.Event) bool {
			a, ok := ev.(summary.Alert)
			return ok && a.Person == name
		})
		byPerson = append(byPerson, NameCount{
			Name:   annotate(policy, name),
			Count:  tally.Count(name),
			Change: summary.PctChange(previous, tally.Count(name)),
		})
	}

	return AlertStats{
		Total:         trendOf(s, nil),
		Paging:        trendOf(s, paging),
		Graveyard:     trendOf(s, graveyard),
		GraveyardHour: graveyardHour,
		ByChannel:     byChannel,
		ByPerson:      byPerson,
	}
}

func topTriggers(s *summary.Summary, n int) []TriggerCount {
	tally := s.CurrentTally(func(ev summary.Event, acc *summary.Tally) {
		if i, ok := ev.(summary.Incident); ok && i.Trigger != "" {
			acc.Add(i.Trigger)
		}
	})

	// Groups keep first-seen order; the cut is not sorted by count.
	keys := tally.Keys()
	if len(keys) > n {
		keys = keys[:n]
	}

	top := make([]TriggerCount, 0, len(keys))
	for _, trigger := range keys {
		top = append(top, TriggerCount{Trigger: trigger, Count: tally.Count(trigger)})
	}

	return top
}

func trendOf(s *summary.Summary, pred summary.Predicate) Trend {
	return Trend{
		Current:  s.CurrentCount(pred),
		Previous: s.PreviousCount(pred),
		Change:   s.PctChange(pred),
	}
}

// annotate suffixes a person with their escalation level where the
// policy knows them.
func annotate(policy *oncall.EscalationPolicy, name string) string {
	if policy == nil || name == "" {
		return name
	}
	if lvl := policy.LevelOf(name); lvl > 0 {
		return fmt.Sprintf("%s (L%d)", name, lvl)
	}

	return name
}

func formatShiftRange(p summary.Period) string {
	return p.Start().Format("Jan 2") + " - " + p.End().Format("Jan 2, 2006")
}
