package tackle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScheduledInspection is a planned, not-yet-performed booking of an inspector
// against a holding. It is a mutable planning record, distinct from the
// immutable Inspection created once the work is done.
type ScheduledInspection struct {
	ID          uuid.UUID `json:"id"`
	HoldingID   uuid.UUID `json:"holdingId"`
	InspectorID uuid.UUID `json:"inspectorId"`

	// ScheduledDate is normalized to a calendar day (midnight UTC) so two
	// bookings for "the same day" always collide in conflict checks.
	ScheduledDate time.Time `json:"scheduledDate"`

	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Joined fields (populated by some queries)
	Inspector *Inspector `json:"inspector,omitempty"`
}

// Pending reports whether the booking still counts toward conflict detection.
func (s *ScheduledInspection) Pending() bool {
	return !s.IsCompleted
}

// ScheduledInspectionUpdate defines fields that can be changed on a booking.
// A nil field is left untouched. Setting IsCompleted back to false re-opens a
// completed booking; that is allowed deliberately, for data-entry correction.
type ScheduledInspectionUpdate struct {
	ScheduledDate *time.Time
	InspectorID   *uuid.UUID
	Location      *string
	Notes         *string
	IsCompleted   *bool
}

// ScheduledInspectionService defines storage operations for bookings.
type ScheduledInspectionService interface {
	// FindScheduledInspectionByID retrieves a booking by its ID.
	// Returns ENOTFOUND if the booking does not exist.
	FindScheduledInspectionByID(ctx context.Context, id uuid.UUID) (*ScheduledInspection, error)

	// FindPendingByHolding retrieves a holding's not-yet-completed bookings,
	// earliest first.
	FindPendingByHolding(ctx context.Context, holdingID uuid.UUID) ([]*ScheduledInspection, error)

	// FindScheduledByHolding retrieves all of a holding's bookings,
	// earliest first.
	FindScheduledByHolding(ctx context.Context, holdingID uuid.UUID) ([]*ScheduledInspection, error)

	// CreateScheduledInspection creates a new booking in the Scheduled state.
	// Returns ENOTFOUND if the holding or inspector does not exist.
	CreateScheduledInspection(ctx context.Context, booking *ScheduledInspection) error

	// UpdateScheduledInspection applies an update to a booking.
	// Returns ENOTFOUND if the booking does not exist.
	UpdateScheduledInspection(ctx context.Context, id uuid.UUID, upd ScheduledInspectionUpdate) (*ScheduledInspection, error)

	// DeleteScheduledInspection removes a booking regardless of state.
	// Returns ENOTFOUND if the booking does not exist.
	DeleteScheduledInspection(ctx context.Context, id uuid.UUID) error
}

// ScheduleRequest asks for an inspector to be booked against a holding.
type ScheduleRequest struct {
	HoldingID   uuid.UUID
	InspectorID uuid.UUID
	Date        time.Time
	Location    string
	Notes       string

	// Force creates the booking even when the holding already has pending
	// bookings. The resolver warns exactly once; a forced double booking is a
	// legitimate outcome and is never silently merged or deduplicated.
	Force bool
}

// ScheduleConflictError reports that a holding already has pending bookings
// and the request did not set Force. It is an expected outcome, not a failure;
// the caller decides whether to re-issue the request with Force set.
type ScheduleConflictError struct {
	HoldingID     uuid.UUID
	SerialNumber  string
	ExistingDates []time.Time
}

// Error implements the error interface.
func (e *ScheduleConflictError) Error() string {
	dates := make([]string, len(e.ExistingDates))
	for i, d := range e.ExistingDates {
		dates[i] = d.Format("2006-01-02")
	}
	return fmt.Sprintf("[%s] holding %s already has pending inspections scheduled for %s",
		ECONFLICT, e.SerialNumber, strings.Join(dates, ", "))
}

// CalendarDay discards the time-of-day component, returning midnight UTC on
// the date named by t in its own location. Two requests for the same wall-clock
// day made from different timezones normalize to the same day, so they hit the
// same conflict check.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SchedulingService books inspectors against holdings and manages the booking
// lifecycle.
type SchedulingService interface {
	// ScheduleInspection books an inspector against a holding. When the
	// holding already has pending bookings and req.Force is false it returns
	// a *ScheduleConflictError and writes nothing.
	// Returns ENOTFOUND if the holding or inspector is unknown, EINVALID if
	// the request is malformed.
	ScheduleInspection(ctx context.Context, req ScheduleRequest) (*ScheduledInspection, error)

	// UpdateScheduledInspection edits, completes, or re-opens a booking.
	UpdateScheduledInspection(ctx context.Context, id uuid.UUID, upd ScheduledInspectionUpdate) (*ScheduledInspection, error)

	// DeleteScheduledInspection cancels a booking. Irreversible.
	DeleteScheduledInspection(ctx context.Context, id uuid.UUID) error
}
