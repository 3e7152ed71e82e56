package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/batonhq/baton/internal/oncall"
	"github.com/batonhq/baton/internal/rotation"
)

// Generate fetches everything the report needs and builds it. The fetch
// order is fixed: shifts, escalation policy, incidents, alerts. Nothing
// is aggregated until all fetches have succeeded.
func Generate(ctx context.Context, client oncall.Client, rot *rotation.Rotation, now time.Time) (*Report, error) {
	// Wide enough to find the covering shift for daily, weekly and
	// monthly rotations.
	shifts, err := client.Shifts(ctx, rot.ScheduleID, now.AddDate(0, -1, 0), now.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("listing shifts for schedule %s: %w", rot.ScheduleID, err)
	}

	windows, err := oncall.ResolveWindows(shifts, now)
	if err != nil {
		return nil, fmt.Errorf("resolving shift windows: %w", err)
	}
	slog.DebugContext(ctx, "resolved shift windows",
		"rotation", rot.Name,
		"current", windows.Current.String(),
		"previous", windows.Previous.String(),
		"on_call", windows.OnCall.Name)

	var policy *oncall.EscalationPolicy
	if rot.EscalationPolicyID != "" {
		policy, err = client.EscalationPolicy(ctx, rot.EscalationPolicyID)
		if err != nil {
			return nil, fmt.Errorf("getting escalation policy %s: %w", rot.EscalationPolicyID, err)
		}
	}

	since, until := windows.Previous.Start(), windows.Current.End()
	incidents, err := client.Incidents(ctx, since, until)
	if err != nil {
		return nil, fmt.Errorf("listing incidents: %w", err)
	}

	alerts, err := client.Alerts(ctx, since, until)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}

	slog.InfoContext(ctx, "fetched on-call data",
		"rotation", rot.Name,
		"incidents", len(incidents),
		"alerts", len(alerts))

	return Build(rot, windows, policy, incidents, alerts, now), nil
}
