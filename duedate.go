package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DueStatus classifies how a holding stands against its statutory inspection
// window.
type DueStatus string

const (
	DueStatusUpToDate DueStatus = "up_to_date"
	DueStatusDueSoon  DueStatus = "due_soon"
	DueStatusOverdue  DueStatus = "overdue"
)

// avgMonth is the average calendar month used for elapsed-time status checks.
// Next-due dates use exact calendar arithmetic instead; the two deliberately
// disagree near month boundaries (see NextDueDate).
const avgMonth = time.Duration(30.44 * 24 * float64(time.Hour))

// ComputeStatus derives a holding's due status from its most recent inspection
// date and its statutory inspection frequency in whole months.
//
// A nil last inspection date or a non-positive frequency yields Overdue:
// equipment with an unknown inspection state must never read as safe.
func ComputeStatus(lastInspection *time.Time, frequencyMonths int, now time.Time) DueStatus {
	if lastInspection == nil || frequencyMonths <= 0 {
		return DueStatusOverdue
	}

	elapsed := now.Sub(*lastInspection).Hours() / avgMonth.Hours()
	switch {
	case elapsed > float64(frequencyMonths):
		return DueStatusOverdue
	case elapsed > float64(frequencyMonths-1):
		// Inside the final month of the window.
		return DueStatusDueSoon
	default:
		return DueStatusUpToDate
	}
}

// NextDueDate returns the date the next inspection falls due, or nil when the
// last inspection date is unknown or the frequency is not set.
//
// This uses exact calendar-month arithmetic while ComputeStatus uses a
// 30.44-day average month, so a holding can read Overdue slightly before its
// next-due date passes. Both formulas are carried over from the system this
// service replaced; reconciling them would shift user-visible due dates.
func NextDueDate(lastInspection *time.Time, frequencyMonths int) *time.Time {
	if lastInspection == nil || frequencyMonths <= 0 {
		return nil
	}
	due := lastInspection.AddDate(0, frequencyMonths, 0)
	return &due
}

// DueDateRecord is the derived due-date view of one holding. It is recomputed
// on demand and never persisted.
type DueDateRecord struct {
	HoldingID        uuid.UUID  `json:"holdingId"`
	CustomerID       uuid.UUID  `json:"customerId"`
	SerialNumber     string     `json:"serialNumber"`
	PlantDescription string     `json:"plantDescription"`
	LastInspection   *time.Time `json:"lastInspection"`
	NextDue          *time.Time `json:"nextDue"`
	Status           DueStatus  `json:"status"`

	// PendingScheduled counts not-yet-completed bookings for the holding.
	PendingScheduled int `json:"pendingScheduled"`

	// DataUnavailable marks a holding whose inspection history could not be
	// read. The record still carries Status Overdue so unreadable history is
	// indistinguishable from "due" rather than from "safe".
	DataUnavailable bool `json:"dataUnavailable,omitempty"`
}

// DueDateFilter selects which holdings a due-date listing covers.
type DueDateFilter string

const (
	DueDateFilterAll DueDateFilter = "all"

	// DueDateFilterMain selects main plant only (multiInspect = false).
	DueDateFilterMain DueDateFilter = "main"

	// DueDateFilterAuxiliary selects batch-inspectable equipment only
	// (multiInspect = true).
	DueDateFilterAuxiliary DueDateFilter = "auxiliary"
)

// Valid reports whether the filter is one of the known values.
func (f DueDateFilter) Valid() bool {
	switch f {
	case DueDateFilterAll, DueDateFilterMain, DueDateFilterAuxiliary:
		return true
	}
	return false
}

// DueDateService derives due-date records for plant holdings.
type DueDateService interface {
	// DueDates computes a due-date record for every holding matching the
	// filter. A holding whose history cannot be read is degraded to Overdue
	// with DataUnavailable set rather than failing the whole listing.
	DueDates(ctx context.Context, filter DueDateFilter) ([]*DueDateRecord, error)
}
