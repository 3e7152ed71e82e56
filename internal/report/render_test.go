package report

import (
	"strings"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *Report {
	return &Report{
		Rotation:    "payments",
		ShiftRange:  "Aug 17 - Aug 24, 2026",
		OnCall:      "bob (L1)",
		GeneratedAt: time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC),
		Incidents: IncidentStats{
			Total:      Trend{Current: 5, Previous: 2, Change: "+150.0%"},
			Resolved:   Trend{Current: 4, Previous: 2, Change: "+100.0%"},
			Unresolved: 1,
			ByResolver: []NameCount{
				{Name: "alice (L1)", Count: 1, Change: "-50.0%"},
				{Name: "bob (L1)", Count: 2, Change: "new"},
			},
		},
		Alerts: AlertStats{
			Total:         Trend{Current: 4, Previous: 3, Change: "+33.3%"},
			Paging:        Trend{Current: 2, Previous: 2, Change: "+0.0%"},
			Graveyard:     Trend{Current: 2, Previous: 1, Change: "+100.0%"},
			GraveyardHour: 6,
			ByChannel: []ChannelTrend{
				{Channel: "sms", Trend: Trend{Current: 1, Previous: 2, Change: "-50.0%"}},
				{Channel: "phone", Trend: Trend{Current: 1, Previous: 0, Change: "new"}},
				{Channel: "email", Trend: Trend{Current: 1, Previous: 1, Change: "+0.0%"}},
				{Channel: "other", Trend: Trend{Current: 1, Previous: 0, Change: "new"}},
			},
			ByPerson: []NameCount{
				{Name: "alice (L1)", Count: 2, Change: "+0.0%"},
			},
		},
		TopTriggers: []TriggerCount{
			{Trigger: "disk full", Count: 2},
			{Trigger: "a very long trigger name that keeps going on", Count: 1},
		},
	}
}

func TestRender(t *testing.T) {
	text := testReport().Render()

	assert.Contains(t, text, "On-call handoff report: payments")
	assert.Contains(t, text, "Shift: Aug 17 - Aug 24, 2026 (on call: bob (L1))")
	assert.Contains(t, text, "Incidents: 5 this shift vs 2 last shift (+150.0%)")
	assert.Contains(t, text, "Resolved: 4 (+100.0%); unresolved at handoff: 1")
	assert.Contains(t, text, "Paging (sms/phone): 2 (+0.0%)")
	assert.Contains(t, text, "Graveyard (00:00-06:00): 2 (+100.0%)")
	assert.Contains(t, text, "alice (L1)")
	assert.Contains(t, text, "VS LAST SHIFT")
	assert.Contains(t, text, "Generated by baton at 2026-08-23 09:00:00 UTC")

	// Long trigger names are truncated with an ellipsis.
	assert.Contains(t, text, "a very long trigger name th...")
	assert.NotContains(t, text, "that keeps going on")
}

func TestRenderSkipsEmptySections(t *testing.T) {
	r := testReport()
	r.Incidents.ByResolver = nil
	r.Alerts.ByPerson = nil
	r.TopTriggers = nil
	r.OnCall = ""

	text := r.Render()

	assert.NotContains(t, text, "Resolutions by person:")
	assert.NotContains(t, text, "Alerts by person:")
	assert.NotContains(t, text, "Top triggers:")
	assert.NotContains(t, text, "on call:")
	assert.Contains(t, text, "Alerts by channel:")
}

func TestBlocks(t *testing.T) {
	blocks := testReport().Blocks()
	require.NotEmpty(t, blocks)

	first, ok := blocks[0].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, first.Text.Text, "*On-call handoff report: payments*")

	last, ok := blocks[len(blocks)-1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, last.Text.Text, "_Generated by baton at")

	var fencedTables int
	for _, b := range blocks {
		section, ok := b.(*slack.SectionBlock)
		if !ok {
			continue
		}
		if strings.Contains(section.Text.Text, "```") {
			fencedTables++
		}
	}
	assert.Equal(t, 4, fencedTables)
}
