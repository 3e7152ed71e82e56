package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/slack-go/slack"
)

// Render produces the plain-text report.
func (r *Report) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "On-call handoff report: %s\n", r.Rotation)
	fmt.Fprintf(&sb, "Shift: %s", r.ShiftRange)
	if r.OnCall != "" {
		fmt.Fprintf(&sb, " (on call: %s)", r.OnCall)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Incidents: %d this shift vs %d last shift (%s)\n",
		r.Incidents.Total.Current, r.Incidents.Total.Previous, r.Incidents.Total.Change)
	fmt.Fprintf(&sb, "Resolved: %d (%s); unresolved at handoff: %d\n",
		r.Incidents.Resolved.Current, r.Incidents.Resolved.Change, r.Incidents.Unresolved)

	if len(r.Incidents.ByResolver) > 0 {
		sb.WriteString("\nResolutions by person:\n")
		sb.WriteString(nameCountTable("PERSON", "RESOLVED", r.Incidents.ByResolver))
	}

	fmt.Fprintf(&sb, "\nAlerts: %d this shift vs %d last shift (%s)\n",
		r.Alerts.Total.Current, r.Alerts.Total.Previous, r.Alerts.Total.Change)
	fmt.Fprintf(&sb, "Paging (sms/phone): %d (%s)\n",
		r.Alerts.Paging.Current, r.Alerts.Paging.Change)
	fmt.Fprintf(&sb, "Graveyard (00:00-%02d:00): %d (%s)\n",
		r.Alerts.GraveyardHour, r.Alerts.Graveyard.Current, r.Alerts.Graveyard.Change)

	sb.WriteString("\nAlerts by channel:\n")
	sb.WriteString(channelTable(r.Alerts.ByChannel))

	if len(r.Alerts.ByPerson) > 0 {
		sb.WriteString("\nAlerts by person:\n")
		sb.WriteString(nameCountTable("PERSON", "ALERTS", r.Alerts.ByPerson))
	}

	if len(r.TopTriggers) > 0 {
		sb.WriteString("\nTop triggers:\n")
		sb.WriteString(triggerTable(r.TopTriggers))
	}

	fmt.Fprintf(&sb, "\nGenerated by baton at %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	return sb.String()
}

// Blocks renders the report as Slack message blocks, tables wrapped in
// code fences.
func (r *Report) Blocks() []slack.Block {
	header := fmt.Sprintf("*On-call handoff report: %s*\nShift: %s", r.Rotation, r.ShiftRange)
	if r.OnCall != "" {
		header += fmt.Sprintf("\nOn call: %s", r.OnCall)
	}

	blocks := []slack.Block{mrkdwnSection(header)}

	incidents := fmt.Sprintf("*Incidents:* %d this shift vs %d last shift (%s)\nResolved: %d (%s); unresolved at handoff: %d",
		r.Incidents.Total.Current, r.Incidents.Total.Previous, r.Incidents.Total.Change,
		r.Incidents.Resolved.Current, r.Incidents.Resolved.Change, r.Incidents.Unresolved)
	blocks = append(blocks, slack.NewDividerBlock(), mrkdwnSection(incidents))

	if len(r.Incidents.ByResolver) > 0 {
		blocks = append(blocks,
			mrkdwnSection("*Resolutions by person:*\n"+fenced(nameCountTable("PERSON", "RESOLVED", r.Incidents.ByResolver))))
	}

	alerts := fmt.Sprintf("*Alerts:* %d this shift vs %d last shift (%s)\nPaging (sms/phone): %d (%s)\nGraveyard (00:00-%02d:00): %d (%s)",
		r.Alerts.Total.Current, r.Alerts.Total.Previous, r.Alerts.Total.Change,
		r.Alerts.Paging.Current, r.Alerts.Paging.Change,
		r.Alerts.GraveyardHour, r.Alerts.Graveyard.Current, r.Alerts.Graveyard.Change)
	blocks = append(blocks, slack.NewDividerBlock(), mrkdwnSection(alerts))

	blocks = append(blocks,
		mrkdwnSection("*Alerts by channel:*\n"+fenced(channelTable(r.Alerts.ByChannel))))

	if len(r.Alerts.ByPerson) > 0 {
		blocks = append(blocks,
			mrkdwnSection("*Alerts by person:*\n"+fenced(nameCountTable("PERSON", "ALERTS", r.Alerts.ByPerson))))
	}

	if len(r.TopTriggers) > 0 {
		blocks = append(blocks,
			mrkdwnSection("*Top triggers:*\n"+fenced(triggerTable(r.TopTriggers))))
	}

	blocks = append(blocks,
		slack.NewDividerBlock(),
		mrkdwnSection(fmt.Sprintf("_Generated by baton at %s_",
			r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))))

	return blocks
}

func mrkdwnSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
}

func fenced(table string) string {
	return "```\n" + table + "```"
}

func newTable(buf *bytes.Buffer, headers []string, alignment []int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(headers)
	table.SetBorders(tablewriter.Border{Left: true, Top: true, Right: true, Bottom: true})
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment(alignment)

	return table
}

func nameCountTable(nameHeader, countHeader string, rows []NameCount) string {
	var buf bytes.Buffer
	table := newTable(&buf, []string{nameHeader, countHeader, "VS LAST SHIFT"}, []int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{row.Name, strconv.Itoa(row.Count), row.Change})
	}

	table.Render()
	return buf.String()
}

func channelTable(rows []ChannelTrend) string {
	var buf bytes.Buffer
	table := newTable(&buf, []string{"CHANNEL", "COUNT", "VS LAST SHIFT"}, []int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{string(row.Channel), strconv.Itoa(row.Current), row.Change})
	}

	table.Render()
	return buf.String()
}

func triggerTable(rows []TriggerCount) string {
	var buf bytes.Buffer
	table := newTable(&buf, []string{"TRIGGER", "COUNT"}, []int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		trigger := row.Trigger
		if len(trigger) > 30 {
			trigger = trigger[:27] + "..."
		}
		table.Append([]string{trigger, strconv.Itoa(row.Count)})
	}

	table.Render()
	return buf.String()
}
