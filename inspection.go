package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Inspection is an immutable record of a completed statutory examination of a
// holding. The most recent inspection by InspectionDate drives the holding's
// due-date status. Completing a scheduled booking never mutates it into an
// Inspection; a new Inspection is created and the booking is separately marked
// completed.
type Inspection struct {
	ID          uuid.UUID `json:"id"`
	HoldingID   uuid.UUID `json:"holdingId"`
	InspectorID uuid.UUID `json:"inspectorId"`

	InspectionDate time.Time `json:"inspectionDate"`
	Location       string    `json:"location,omitempty"`
	SafeWorking    string    `json:"safeWorking,omitempty"`
	TestDetails    string    `json:"testDetails,omitempty"`
	Defects        string    `json:"defects,omitempty"`
	Rectified      string    `json:"rectified,omitempty"`
	MiscNotes      string    `json:"miscNotes,omitempty"`

	// Certificate metadata.
	RecordNumber  string     `json:"recordNumber,omitempty"`
	PreviousCheck *time.Time `json:"previousCheck,omitempty"`
	NextCheck     *time.Time `json:"nextCheck,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// Joined fields (populated by some queries)
	Inspector *Inspector `json:"inspector,omitempty"`
}

// InspectionService defines operations on performed inspections.
type InspectionService interface {
	// FindInspectionByID retrieves an inspection by its ID.
	// Returns ENOTFOUND if the inspection does not exist.
	FindInspectionByID(ctx context.Context, id uuid.UUID) (*Inspection, error)

	// FindInspectionsByHolding retrieves a holding's inspection history,
	// most recent first.
	FindInspectionsByHolding(ctx context.Context, holdingID uuid.UUID) ([]*Inspection, error)

	// CreateInspection records a completed inspection. Inspections are
	// immutable once created.
	// Returns ENOTFOUND if the holding or inspector does not exist.
	CreateInspection(ctx context.Context, inspection *Inspection) error
}
