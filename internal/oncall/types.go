package oncall

import "time"

// User identifies a person in the on-call management service.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Shift is one rendered schedule entry.
type Shift struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	User  User      `json:"user"`
}

// Incident statuses reported by the service.
const (
	StatusTriggered    = "triggered"
	StatusAcknowledged = "acknowledged"
	StatusResolved     = "resolved"
)

// Trigger names the signal that opened an incident.
type Trigger struct {
	Name string `json:"name"`
}

// Incident is a raw incident record.
type Incident struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	Status     string     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy *User      `json:"resolved_by,omitempty"`
	Trigger    Trigger    `json:"trigger"`
}

// Alert is a raw notification log entry.
type Alert struct {
	ID      string    `json:"id"`
	SentAt  time.Time `json:"sent_at"`
	Channel string    `json:"channel"`
	User    User      `json:"user"`
}

// Level is one rung of an escalation policy.
type Level struct {
	Level   int    `json:"level"`
	Targets []User `json:"targets"`
}

// EscalationPolicy lists who gets paged at each escalation level.
type EscalationPolicy struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Levels []Level `json:"levels"`
}

// LevelOf returns the escalation level of the named person, or 0 when the
// policy does not mention them.
func (p *EscalationPolicy) LevelOf(name string) int {
	for _, lvl := range p.Levels {
		for _, target := range lvl.Targets {
			if target.Name == name {
				return lvl.Level
			}
		}
	}

	return 0
}

// Primary returns the first target of the lowest escalation level.
func (p *EscalationPolicy) Primary() (User, bool) {
	var best *Level
	for i := range p.Levels {
		if len(p.Levels[i].Targets) == 0 {
			continue
		}
		if best == nil || p.Levels[i].Level < best.Level {
			best = &p.Levels[i]
		}
	}
	if best == nil {
		return User{}, false
	}

	return best.Targets[0], true
}
