package oncall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalationPolicyLevelOf(t *testing.T) {
	p := &EscalationPolicy{
		Levels: []Level{
			{Level: 2, Targets: []User{{ID: "U3", Name: "carol"}}},
			{Level: 1, Targets: []User{{ID: "U1", Name: "alice"}, {ID: "U2", Name: "bob"}}},
		},
	}

	assert.Equal(t, 1, p.LevelOf("bob"))
	assert.Equal(t, 2, p.LevelOf("carol"))
	assert.Equal(t, 0, p.LevelOf("mallory"))
}

func TestEscalationPolicyPrimary(t *testing.T) {
	p := &EscalationPolicy{
		Levels: []Level{
			{Level: 2, Targets: []User{{ID: "U3", Name: "carol"}}},
			{Level: 1, Targets: nil},
			{Level: 1, Targets: []User{{ID: "U1", Name: "alice"}}},
		},
	}

	primary, ok := p.Primary()
	require.True(t, ok)
	assert.Equal(t, "alice", primary.Name)

	_, ok = (&EscalationPolicy{}).Primary()
	assert.False(t, ok)
}
