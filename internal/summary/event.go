package summary

import (
	"slices"
	"time"
)

// Channel is the delivery method of an alert notification.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelPhone Channel = "phone"
	ChannelEmail Channel = "email"
	ChannelOther Channel = "other"
)

// ParseChannel maps a raw service value onto a known Channel, folding
// anything unrecognized into ChannelOther.
func ParseChannel(s string) Channel {
	switch c := Channel(s); c {
	case ChannelSMS, ChannelPhone, ChannelEmail:
		return c
	default:
		return ChannelOther
	}
}

// Event is a time-stamped occurrence during an on-call shift. The only
// variants are Incident and Alert.
type Event interface {
	// OccurredAt is the timestamp used to bucket the event into a period.
	OccurredAt() time.Time
}

// Incident is a tracked issue opened against the rotation.
type Incident struct {
	CreatedAt  time.Time
	Resolved   bool
	ResolvedBy string // set when Resolved
	Trigger    string
}

func (i Incident) OccurredAt() time.Time { return i.CreatedAt }

// Alert is a single notification delivered to a person.
type Alert struct {
	SentAt  time.Time
	Channel Channel
	Person  string
}

func (a Alert) OccurredAt() time.Time { return a.SentAt }

// ChannelIn reports whether the alert went out over any of the given
// channels.
func (a Alert) ChannelIn(channels ...Channel) bool {
	return slices.Contains(channels, a.Channel)
}

// Graveyard reports whether the alert fired between midnight and
// cutoffHour, read off the wall clock of the alert's own location.
func (a Alert) Graveyard(cutoffHour int) bool {
	return a.SentAt.Hour() < cutoffHour
}
