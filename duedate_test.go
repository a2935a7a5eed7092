package tackle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := clockNow.AddDate(0, 0, -n)
	return &t
}

func monthsAgo(n int) *time.Time {
	t := clockNow.AddDate(0, -n, 0)
	return &t
}

func TestComputeStatus(t *testing.T) {
	t.Run("UpToDate", func(t *testing.T) {
		assert.Equal(t, DueStatusUpToDate, ComputeStatus(daysAgo(30), 6, clockNow))
		assert.Equal(t, DueStatusUpToDate, ComputeStatus(daysAgo(120), 6, clockNow))
	})

	t.Run("DueSoonInsideFinalMonth", func(t *testing.T) {
		// 5 months 20 days elapsed against a 6-month window: ~5.66 months.
		assert.Equal(t, DueStatusDueSoon, ComputeStatus(daysAgo(172), 6, clockNow))
	})

	t.Run("OverduePastWindow", func(t *testing.T) {
		assert.Equal(t, DueStatusOverdue, ComputeStatus(monthsAgo(7), 6, clockNow))
		assert.Equal(t, DueStatusOverdue, ComputeStatus(daysAgo(400), 6, clockNow))
	})

	t.Run("NeverInspectedIsOverdue", func(t *testing.T) {
		assert.Equal(t, DueStatusOverdue, ComputeStatus(nil, 6, clockNow))
	})

	t.Run("MissingFrequencyIsOverdue", func(t *testing.T) {
		assert.Equal(t, DueStatusOverdue, ComputeStatus(daysAgo(1), 0, clockNow))
		assert.Equal(t, DueStatusOverdue, ComputeStatus(daysAgo(1), -3, clockNow))
		assert.Equal(t, DueStatusOverdue, ComputeStatus(nil, 0, clockNow))
	})
}

// Status only ever worsens as time advances for a fixed frequency.
func TestComputeStatus_Monotonic(t *testing.T) {
	rank := map[DueStatus]int{
		DueStatusUpToDate: 0,
		DueStatusDueSoon:  1,
		DueStatusOverdue:  2,
	}

	last := clockNow
	prev := rank[DueStatusUpToDate]
	for day := 0; day <= 400; day++ {
		now := last.AddDate(0, 0, day)
		status := ComputeStatus(&last, 6, now)
		r, ok := rank[status]
		require.True(t, ok, "unknown status %q", status)
		require.GreaterOrEqual(t, r, prev,
			"status improved from rank %d to %d on day %d", prev, r, day)
		prev = r
	}
}

func TestNextDueDate(t *testing.T) {
	t.Run("CalendarMonthArithmetic", func(t *testing.T) {
		last := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		due := NextDueDate(&last, 6)
		require.NotNil(t, due)
		assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), *due)
	})

	t.Run("YearRollover", func(t *testing.T) {
		last := time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC)
		due := NextDueDate(&last, 12)
		require.NotNil(t, due)
		assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), *due)
	})

	t.Run("NilPropagation", func(t *testing.T) {
		last := clockNow
		assert.Nil(t, NextDueDate(nil, 6))
		assert.Nil(t, NextDueDate(&last, 0))
		assert.Nil(t, NextDueDate(&last, -1))
		assert.Nil(t, NextDueDate(nil, 0))
	})
}

func TestDueDateFilter_Valid(t *testing.T) {
	assert.True(t, DueDateFilterAll.Valid())
	assert.True(t, DueDateFilterMain.Valid())
	assert.True(t, DueDateFilterAuxiliary.Valid())
	assert.False(t, DueDateFilter("bogus").Valid())
	assert.False(t, DueDateFilter("").Valid())
}
