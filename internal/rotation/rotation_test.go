package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = `
payments:
  schedule: SCHED1
  escalation_policy: EP1
  slack_channel: C0PAYMENTS
  timezone: America/New_York
  graveyard_until_hour: 7
  top_triggers: 3
search:
  schedule: SCHED2
`

func TestParseFullFeature(t *testing.T) {
	c, err := parse([]byte(testConfig))
	require.NoError(t, err)
	require.Len(t, c, 2)

	payments := c["payments"]
	require.NotNil(t, payments)
	require.Equal(t, "payments", payments.Name)
	require.Equal(t, "SCHED1", payments.ScheduleID)
	require.Equal(t, "EP1", payments.EscalationPolicyID)
	require.Equal(t, "C0PAYMENTS", payments.SlackChannelID)
	require.Equal(t, 7, payments.GraveyardUntilHour)
	require.Equal(t, 3, payments.TopTriggers)
	require.NotNil(t, payments.Location)
	require.Equal(t, "America/New_York", payments.Location.String())
}

func TestParseAppliesDefaults(t *testing.T) {
	c, err := parse([]byte(testConfig))
	require.NoError(t, err)

	search := c["search"]
	require.NotNil(t, search)
	assert.Equal(t, defaultTimezone, search.Timezone)
	assert.Equal(t, defaultGraveyardUntilHour, search.GraveyardUntilHour)
	assert.Equal(t, defaultTopTriggers, search.TopTriggers)
	assert.Empty(t, search.EscalationPolicyID)
	assert.Empty(t, search.SlackChannelID)
}

func TestParseRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing schedule", "payments:\n  slack_channel: C1\n"},
		{"empty entry", "payments:\n"},
		{"no rotations", ""},
		{"bad timezone", "payments:\n  schedule: S1\n  timezone: Mars/Olympus\n"},
		{"hour out of range", "payments:\n  schedule: S1\n  graveyard_until_hour: 24\n"},
		{"negative top triggers", "payments:\n  schedule: S1\n  top_triggers: -1\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestPick(t *testing.T) {
	c, err := parse([]byte(testConfig))
	require.NoError(t, err)

	rot, err := Pick(c, "search")
	require.NoError(t, err)
	assert.Equal(t, "SCHED2", rot.ScheduleID)

	_, err = Pick(c, "database")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payments, search")

	_, err = Pick(c, "")
	require.Error(t, err)

	single, err := parse([]byte("payments:\n  schedule: SCHED1\n"))
	require.NoError(t, err)
	rot, err = Pick(single, "")
	require.NoError(t, err)
	assert.Equal(t, "payments", rot.Name)
}
