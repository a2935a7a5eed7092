package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time check that Scheduler implements tackle.SchedulingService.
var _ tackle.SchedulingService = (*Scheduler)(nil)

// Scheduler books inspectors against holdings, warning the caller once when a
// holding already has pending bookings. The check is advisory: two concurrent
// requests can both pass it and both create bookings, which is an accepted
// outcome. Callers needing strict exclusivity should add a storage-level
// uniqueness constraint on (holding, date).
type Scheduler struct {
	holdings   tackle.HoldingService
	inspectors tackle.InspectorService
	schedules  tackle.ScheduledInspectionService
	logger     *slog.Logger
}

// NewScheduler creates a scheduler over the given repositories.
func NewScheduler(
	logger *slog.Logger,
	holdings tackle.HoldingService,
	inspectors tackle.InspectorService,
	schedules tackle.ScheduledInspectionService,
) *Scheduler {
	return &Scheduler{
		holdings:   holdings,
		inspectors: inspectors,
		schedules:  schedules,
		logger:     logger,
	}
}

func (s *Scheduler) ScheduleInspection(ctx context.Context, req tackle.ScheduleRequest) (*tackle.ScheduledInspection, error) {
	if req.Date.IsZero() {
		return nil, tackle.Invalid("Scheduled date is required")
	}

	holding, err := s.holdings.FindHoldingByID(ctx, req.HoldingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.inspectors.FindInspectorByID(ctx, req.InspectorID); err != nil {
		return nil, err
	}

	pending, err := s.schedules.FindPendingByHolding(ctx, req.HoldingID)
	if err != nil {
		return nil, err
	}

	if len(pending) > 0 && !req.Force {
		dates := make([]time.Time, len(pending))
		for i, b := range pending {
			dates[i] = b.ScheduledDate
		}
		return nil, &tackle.ScheduleConflictError{
			HoldingID:     holding.ID,
			SerialNumber:  holding.SerialNumber,
			ExistingDates: dates,
		}
	}

	booking := &tackle.ScheduledInspection{
		HoldingID:     req.HoldingID,
		InspectorID:   req.InspectorID,
		ScheduledDate: tackle.CalendarDay(req.Date),
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if err := s.schedules.CreateScheduledInspection(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("inspection scheduled",
		slog.String("holding_id", holding.ID.String()),
		slog.String("serial_number", holding.SerialNumber),
		slog.String("scheduled_date", booking.ScheduledDate.Format("2006-01-02")),
		slog.Bool("forced", req.Force && len(pending) > 0),
		slog.Int("pending_before", len(pending)),
	)

	return booking, nil
}

func (s *Scheduler) UpdateScheduledInspection(ctx context.Context, id uuid.UUID, upd tackle.ScheduledInspectionUpdate) (*tackle.ScheduledInspection, error) {
	if upd.InspectorID != nil {
		if _, err := s.inspectors.FindInspectorByID(ctx, *upd.InspectorID); err != nil {
			return nil, err
		}
	}
	if upd.ScheduledDate != nil {
		day := tackle.CalendarDay(*upd.ScheduledDate)
		upd.ScheduledDate = &day
	}

	booking, err := s.schedules.UpdateScheduledInspection(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if upd.IsCompleted != nil {
		s.logger.Info("scheduled inspection state changed",
			slog.String("booking_id", id.String()),
			slog.Bool("completed", *upd.IsCompleted),
		)
	}
	return booking, nil
}

func (s *Scheduler) DeleteScheduledInspection(ctx context.Context, id uuid.UUID) error {
	if err := s.schedules.DeleteScheduledInspection(ctx, id); err != nil {
		return err
	}
	s.logger.Info("scheduled inspection cancelled", slog.String("booking_id", id.String()))
	return nil
}
