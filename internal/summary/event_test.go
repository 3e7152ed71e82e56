package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		raw  string
		want Channel
	}{
		{"sms", ChannelSMS},
		{"phone", ChannelPhone},
		{"email", ChannelEmail},
		{"push_notification", ChannelOther},
		{"", ChannelOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChannel(tt.raw))
		})
	}
}

func TestAlertChannelIn(t *testing.T) {
	a := Alert{Channel: ChannelPhone}

	assert.True(t, a.ChannelIn(ChannelSMS, ChannelPhone))
	assert.False(t, a.ChannelIn(ChannelSMS, ChannelEmail))
	assert.False(t, a.ChannelIn())
}

func TestAlertGraveyard(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		sent time.Time
		want bool
	}{
		{"midnight", time.Date(2026, 8, 18, 0, 12, 0, 0, time.UTC), true},
		{"just before cutoff", time.Date(2026, 8, 18, 5, 59, 0, 0, time.UTC), true},
		{"at cutoff", time.Date(2026, 8, 18, 6, 0, 0, 0, time.UTC), false},
		{"evening", time.Date(2026, 8, 18, 22, 30, 0, 0, time.UTC), false},
		// 03:00 in New York is 07:00 UTC; the alert's own wall clock decides.
		{"local wall clock", time.Date(2026, 8, 18, 3, 0, 0, 0, newYork), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Alert{SentAt: tt.sent, Channel: ChannelPhone}
			assert.Equal(t, tt.want, a.Graveyard(6))
		})
	}
}
