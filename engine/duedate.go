// Package engine implements the inspection due-date and scheduling engine on
// top of the repository interfaces defined in the root package. Everything
// here is request/response: no background work, no shared mutable state.
package engine

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/harrisonbray/tackle"
)

// Compile-time check that DueDateEngine implements tackle.DueDateService.
var _ tackle.DueDateService = (*DueDateEngine)(nil)

// DueDateEngine derives due-date records by joining each holding's inspection
// history with its statutory frequency.
type DueDateEngine struct {
	holdings    tackle.HoldingService
	inspections tackle.InspectionService
	schedules   tackle.ScheduledInspectionService
	logger      *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewDueDateEngine creates a due-date engine over the given repositories.
func NewDueDateEngine(
	logger *slog.Logger,
	holdings tackle.HoldingService,
	inspections tackle.InspectionService,
	schedules tackle.ScheduledInspectionService,
) *DueDateEngine {
	return &DueDateEngine{
		holdings:    holdings,
		inspections: inspections,
		schedules:   schedules,
		logger:      logger,
		now:         time.Now,
	}
}

func (e *DueDateEngine) DueDates(ctx context.Context, filter tackle.DueDateFilter) ([]*tackle.DueDateRecord, error) {
	if filter == "" {
		filter = tackle.DueDateFilterAll
	}
	if !filter.Valid() {
		return nil, tackle.Invalid("Unknown due-date filter %q", filter)
	}

	var hf tackle.HoldingFilter
	switch filter {
	case tackle.DueDateFilterMain:
		mi := false
		hf.MultiInspect = &mi
	case tackle.DueDateFilterAuxiliary:
		mi := true
		hf.MultiInspect = &mi
	}

	holdings, err := e.holdings.FindHoldings(ctx, hf)
	if err != nil {
		return nil, err
	}

	now := e.now()
	records := make([]*tackle.DueDateRecord, 0, len(holdings))
	for _, h := range holdings {
		records = append(records, e.buildRecord(ctx, h, now))
	}
	return records, nil
}

// buildRecord computes one holding's due-date record. A repository failure
// degrades the record rather than propagating: equipment with unreadable
// history must never silently read as safe, and one bad holding must not hide
// the listing for all the others.
func (e *DueDateEngine) buildRecord(ctx context.Context, h *tackle.PlantHolding, now time.Time) *tackle.DueDateRecord {
	rec := &tackle.DueDateRecord{
		HoldingID:        h.ID,
		CustomerID:       h.CustomerID,
		SerialNumber:     h.SerialNumber,
		PlantDescription: h.Description,
	}

	history, err := e.inspections.FindInspectionsByHolding(ctx, h.ID)
	if err != nil {
		e.logger.Warn("inspection history unavailable, degrading holding to overdue",
			slog.String("holding_id", h.ID.String()),
			slog.String("error", err.Error()),
		)
		rec.Status = tackle.DueStatusOverdue
		rec.DataUnavailable = true
	} else {
		last := latestInspectionDate(history)
		rec.LastInspection = last
		rec.Status = tackle.ComputeStatus(last, h.FrequencyMonths, now)
		rec.NextDue = tackle.NextDueDate(last, h.FrequencyMonths)
	}

	pending, err := e.schedules.FindPendingByHolding(ctx, h.ID)
	if err != nil {
		e.logger.Warn("pending booking count unavailable",
			slog.String("holding_id", h.ID.String()),
			slog.String("error", err.Error()),
		)
		rec.DataUnavailable = true
	} else {
		rec.PendingScheduled = len(pending)
	}

	return rec
}

// latestInspectionDate returns the most recent inspection date in history, or
// nil when the holding has never been inspected. Ties keep input order.
func latestInspectionDate(history []*tackle.Inspection) *time.Time {
	if len(history) == 0 {
		return nil
	}
	sorted := make([]*tackle.Inspection, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InspectionDate.After(sorted[j].InspectionDate)
	})
	d := sorted[0].InspectionDate
	return &d
}
