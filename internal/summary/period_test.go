package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	p, err := NewPeriod(start, end)
	require.NoError(t, err)
	require.Equal(t, start, p.Start())
	require.Equal(t, end, p.End())
	require.Equal(t, 7*24*time.Hour, p.Duration())

	_, err = NewPeriod(end, start)
	require.Error(t, err)
}

func TestPeriodContains(t *testing.T) {
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	p, err := NewPeriod(start, end)
	require.NoError(t, err)

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"start boundary", start, true},
		{"end boundary", end, true},
		{"inside", start.Add(36 * time.Hour), true},
		{"just before start", start.Add(-time.Second), false},
		{"just after end", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Contains(tt.ts))
		})
	}
}

func TestPeriodPrevious(t *testing.T) {
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	prev := p.Previous()
	require.Equal(t, start.AddDate(0, 0, -7), prev.Start())
	require.Equal(t, start, prev.End())
	require.Equal(t, p.Duration(), prev.Duration())
}
