package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/harrisonbray/tackle/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var engineNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func holding(customerID uuid.UUID, serial string, freq int, multi bool) *tackle.PlantHolding {
	return &tackle.PlantHolding{
		ID:              uuid.New(),
		CustomerID:      customerID,
		SerialNumber:    serial,
		FrequencyMonths: freq,
		MultiInspect:    multi,
	}
}

func inspectionOn(holdingID uuid.UUID, date time.Time) *tackle.Inspection {
	return &tackle.Inspection{
		ID:             uuid.New(),
		HoldingID:      holdingID,
		InspectorID:    uuid.New(),
		InspectionDate: date,
	}
}

func TestDueDateEngine_DueDates(t *testing.T) {
	customerID := uuid.New()
	h := holding(customerID, "CH-1001", 6, false)

	// Out-of-order history: latest must win regardless of input order.
	history := []*tackle.Inspection{
		inspectionOn(h.ID, engineNow.AddDate(0, -9, 0)),
		inspectionOn(h.ID, engineNow.AddDate(0, 0, -30)),
		inspectionOn(h.ID, engineNow.AddDate(-1, 0, 0)),
	}

	pendingBooking := &tackle.ScheduledInspection{
		ID:            uuid.New(),
		HoldingID:     h.ID,
		ScheduledDate: engineNow.AddDate(0, 1, 0),
	}

	e := NewDueDateEngine(testLogger(),
		&mock.HoldingService{
			FindHoldingsFn: func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
				return []*tackle.PlantHolding{h}, nil
			},
		},
		&mock.InspectionService{
			FindInspectionsByHoldingFn: func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.Inspection, error) {
				return history, nil
			},
		},
		&mock.ScheduledInspectionService{
			FindPendingByHoldingFn: func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
				return []*tackle.ScheduledInspection{pendingBooking}, nil
			},
		},
	)
	e.now = func() time.Time { return engineNow }

	records, err := e.DueDates(context.Background(), tackle.DueDateFilterAll)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, h.ID, rec.HoldingID)
	assert.Equal(t, "CH-1001", rec.SerialNumber)
	require.NotNil(t, rec.LastInspection)
	assert.Equal(t, engineNow.AddDate(0, 0, -30), *rec.LastInspection)
	assert.Equal(t, tackle.DueStatusUpToDate, rec.Status)
	require.NotNil(t, rec.NextDue)
	assert.Equal(t, engineNow.AddDate(0, 0, -30).AddDate(0, 6, 0), *rec.NextDue)
	assert.Equal(t, 1, rec.PendingScheduled)
	assert.False(t, rec.DataUnavailable)
}

func TestDueDateEngine_NeverInspected(t *testing.T) {
	h := holding(uuid.New(), "SL-77", 12, true)

	e := NewDueDateEngine(testLogger(),
		&mock.HoldingService{
			FindHoldingsFn: func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
				return []*tackle.PlantHolding{h}, nil
			},
		},
		&mock.InspectionService{},
		&mock.ScheduledInspectionService{},
	)
	e.now = func() time.Time { return engineNow }

	records, err := e.DueDates(context.Background(), tackle.DueDateFilterAll)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Nil(t, rec.LastInspection)
	assert.Nil(t, rec.NextDue)
	assert.Equal(t, tackle.DueStatusOverdue, rec.Status)
	assert.False(t, rec.DataUnavailable)
}

// Unreadable history degrades a single holding to overdue without hiding the
// rest of the listing.
func TestDueDateEngine_HistoryUnavailable(t *testing.T) {
	customerID := uuid.New()
	broken := holding(customerID, "BROKEN-1", 6, false)
	healthy := holding(customerID, "OK-2", 6, false)
	lastHealthy := engineNow.AddDate(0, 0, -10)

	e := NewDueDateEngine(testLogger(),
		&mock.HoldingService{
			FindHoldingsFn: func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
				return []*tackle.PlantHolding{broken, healthy}, nil
			},
		},
		&mock.InspectionService{
			FindInspectionsByHoldingFn: func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.Inspection, error) {
				if holdingID == broken.ID {
					return nil, tackle.Internal("storage unavailable", nil)
				}
				return []*tackle.Inspection{inspectionOn(holdingID, lastHealthy)}, nil
			},
		},
		&mock.ScheduledInspectionService{},
	)
	e.now = func() time.Time { return engineNow }

	records, err := e.DueDates(context.Background(), tackle.DueDateFilterAll)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, tackle.DueStatusOverdue, records[0].Status)
	assert.True(t, records[0].DataUnavailable)
	assert.Nil(t, records[0].LastInspection)

	assert.Equal(t, tackle.DueStatusUpToDate, records[1].Status)
	assert.False(t, records[1].DataUnavailable)
}

func TestDueDateEngine_Filters(t *testing.T) {
	var captured tackle.HoldingFilter

	e := NewDueDateEngine(testLogger(),
		&mock.HoldingService{
			FindHoldingsFn: func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
				captured = filter
				return nil, nil
			},
		},
		&mock.InspectionService{},
		&mock.ScheduledInspectionService{},
	)

	_, err := e.DueDates(context.Background(), tackle.DueDateFilterMain)
	require.NoError(t, err)
	require.NotNil(t, captured.MultiInspect)
	assert.False(t, *captured.MultiInspect)

	_, err = e.DueDates(context.Background(), tackle.DueDateFilterAuxiliary)
	require.NoError(t, err)
	require.NotNil(t, captured.MultiInspect)
	assert.True(t, *captured.MultiInspect)

	_, err = e.DueDates(context.Background(), tackle.DueDateFilterAll)
	require.NoError(t, err)
	assert.Nil(t, captured.MultiInspect)

	_, err = e.DueDates(context.Background(), tackle.DueDateFilter("bogus"))
	require.Error(t, err)
	assert.Equal(t, tackle.EINVALID, tackle.ErrorCode(err))
}
