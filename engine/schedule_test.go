package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/harrisonbray/tackle/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedulerFixture struct {
	holding   *tackle.PlantHolding
	inspector *tackle.Inspector
	pending   []*tackle.ScheduledInspection
	created   []*tackle.ScheduledInspection
}

func newSchedulerFixture() *schedulerFixture {
	return &schedulerFixture{
		holding: &tackle.PlantHolding{
			ID:              uuid.New(),
			CustomerID:      uuid.New(),
			SerialNumber:    "HOIST-42",
			FrequencyMonths: 6,
		},
		inspector: &tackle.Inspector{ID: uuid.New(), Name: "J. Barrow"},
	}
}

func (f *schedulerFixture) scheduler() *Scheduler {
	return NewScheduler(testLogger(),
		&mock.HoldingService{
			FindHoldingByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.PlantHolding, error) {
				if id == f.holding.ID {
					return f.holding, nil
				}
				return nil, tackle.NotFound("Holding not found")
			},
		},
		&mock.InspectorService{
			FindInspectorByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
				if id == f.inspector.ID {
					return f.inspector, nil
				}
				return nil, tackle.NotFound("Inspector not found")
			},
		},
		&mock.ScheduledInspectionService{
			FindPendingByHoldingFn: func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
				return f.pending, nil
			},
			CreateScheduledInspectionFn: func(ctx context.Context, booking *tackle.ScheduledInspection) error {
				booking.ID = uuid.New()
				f.created = append(f.created, booking)
				f.pending = append(f.pending, booking)
				return nil
			},
		},
	)
}

func TestScheduler_CreateThenConflictThenForce(t *testing.T) {
	f := newSchedulerFixture()
	s := f.scheduler()
	ctx := context.Background()

	req := tackle.ScheduleRequest{
		HoldingID:   f.holding.ID,
		InspectorID: f.inspector.ID,
		Date:        time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	// No pending bookings: created.
	booking, err := s.ScheduleInspection(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), booking.ScheduledDate)
	require.Len(t, f.created, 1)

	// Same request again: conflict, nothing written.
	_, err = s.ScheduleInspection(ctx, req)
	require.Error(t, err)

	var conflict *tackle.ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "HOIST-42", conflict.SerialNumber)
	require.Len(t, conflict.ExistingDates, 1)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), conflict.ExistingDates[0])
	assert.Len(t, f.created, 1)

	// Forced: created despite the pending booking, never deduplicated.
	req.Force = true
	booking, err = s.ScheduleInspection(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Len(t, f.created, 2)
	assert.Len(t, f.pending, 2)
}

// Two wall-clock times on the same day in different timezones normalize to the
// same calendar day and hit the same conflict check.
func TestScheduler_DateNormalization(t *testing.T) {
	f := newSchedulerFixture()
	s := f.scheduler()
	ctx := context.Background()

	perth := time.FixedZone("AWST", 8*3600)

	_, err := s.ScheduleInspection(ctx, tackle.ScheduleRequest{
		HoldingID:   f.holding.ID,
		InspectorID: f.inspector.ID,
		Date:        time.Date(2025, 6, 1, 23, 0, 0, 0, perth),
	})
	require.NoError(t, err)

	_, err = s.ScheduleInspection(ctx, tackle.ScheduleRequest{
		HoldingID:   f.holding.ID,
		InspectorID: f.inspector.ID,
		Date:        time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	var conflict *tackle.ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), conflict.ExistingDates[0])
}

func TestScheduler_Validation(t *testing.T) {
	f := newSchedulerFixture()
	s := f.scheduler()
	ctx := context.Background()

	t.Run("UnknownHolding", func(t *testing.T) {
		_, err := s.ScheduleInspection(ctx, tackle.ScheduleRequest{
			HoldingID:   uuid.New(),
			InspectorID: f.inspector.ID,
			Date:        time.Now(),
		})
		require.Error(t, err)
		assert.Equal(t, tackle.ENOTFOUND, tackle.ErrorCode(err))
	})

	t.Run("UnknownInspector", func(t *testing.T) {
		_, err := s.ScheduleInspection(ctx, tackle.ScheduleRequest{
			HoldingID:   f.holding.ID,
			InspectorID: uuid.New(),
			Date:        time.Now(),
		})
		require.Error(t, err)
		assert.Equal(t, tackle.ENOTFOUND, tackle.ErrorCode(err))
	})

	t.Run("MissingDate", func(t *testing.T) {
		_, err := s.ScheduleInspection(ctx, tackle.ScheduleRequest{
			HoldingID:   f.holding.ID,
			InspectorID: f.inspector.ID,
		})
		require.Error(t, err)
		assert.Equal(t, tackle.EINVALID, tackle.ErrorCode(err))
	})

	// Validation failures never write.
	assert.Empty(t, f.created)
}

func TestScheduler_UpdateNormalizesDateAndChecksInspector(t *testing.T) {
	f := newSchedulerFixture()
	bookingID := uuid.New()

	var capturedUpd tackle.ScheduledInspectionUpdate
	schedules := &mock.ScheduledInspectionService{
		UpdateScheduledInspectionFn: func(ctx context.Context, id uuid.UUID, upd tackle.ScheduledInspectionUpdate) (*tackle.ScheduledInspection, error) {
			capturedUpd = upd
			return &tackle.ScheduledInspection{ID: id}, nil
		},
	}
	s := NewScheduler(testLogger(),
		&mock.HoldingService{},
		&mock.InspectorService{
			FindInspectorByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
				if id == f.inspector.ID {
					return f.inspector, nil
				}
				return nil, tackle.NotFound("Inspector not found")
			},
		},
		schedules,
	)
	ctx := context.Background()

	when := time.Date(2025, 7, 4, 15, 45, 0, 0, time.UTC)
	done := true
	_, err := s.UpdateScheduledInspection(ctx, bookingID, tackle.ScheduledInspectionUpdate{
		ScheduledDate: &when,
		InspectorID:   &f.inspector.ID,
		IsCompleted:   &done,
	})
	require.NoError(t, err)
	require.NotNil(t, capturedUpd.ScheduledDate)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), *capturedUpd.ScheduledDate)

	unknown := uuid.New()
	_, err = s.UpdateScheduledInspection(ctx, bookingID, tackle.ScheduledInspectionUpdate{
		InspectorID: &unknown,
	})
	require.Error(t, err)
	assert.Equal(t, tackle.ENOTFOUND, tackle.ErrorCode(err))

	// Re-opening a completed booking is allowed.
	reopen := false
	_, err = s.UpdateScheduledInspection(ctx, bookingID, tackle.ScheduledInspectionUpdate{
		IsCompleted: &reopen,
	})
	require.NoError(t, err)
	require.NotNil(t, capturedUpd.IsCompleted)
	assert.False(t, *capturedUpd.IsCompleted)
}

func TestScheduleConflictError_Message(t *testing.T) {
	err := &tackle.ScheduleConflictError{
		SerialNumber: "HOIST-42",
		ExistingDates: []time.Time{
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	assert.Contains(t, err.Error(), "HOIST-42")
	assert.Contains(t, err.Error(), "2025-06-01")
	assert.Contains(t, err.Error(), "2025-06-15")
}
