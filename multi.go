package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MultiInspectionMeta is the metadata shared by every inspection created from
// one batch: one date, one inspector, one location, one set of test details.
type MultiInspectionMeta struct {
	CustomerID     uuid.UUID
	InspectorID    uuid.UUID
	InspectionDate time.Time
	Location       string
	TestDetails    string
	MiscNotes      string
}

// MultiInspectionItem is one holding within a batch. Defects is the only
// per-item field collected by the batch workflow; everything else on the
// resulting inspection comes from the shared metadata or defaults to empty.
type MultiInspectionItem struct {
	HoldingID uuid.UUID
	Defects   string
	Included  bool
}

// MultiInspectionResult reports the outcome of one item's inspection create.
// Batches are not transactional: some items may succeed while others fail, and
// succeeded items are never rolled back.
type MultiInspectionResult struct {
	HoldingID  uuid.UUID   `json:"holdingId"`
	Inspection *Inspection `json:"inspection,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Failed reports whether this item's create did not go through.
func (r *MultiInspectionResult) Failed() bool {
	return r.Error != ""
}

// MultiInspectService expands one batch inspection request into individual
// inspection records.
type MultiInspectService interface {
	// EligibleHoldings returns the customer's holdings whose plant-type
	// category is in categoryIDs and which are flagged multi-inspectable.
	// An empty result is valid, not an error.
	// Returns ENOTFOUND if the customer does not exist.
	EligibleHoldings(ctx context.Context, customerID uuid.UUID, categoryIDs []uuid.UUID) ([]*PlantHolding, error)

	// CreateMultiInspection creates one inspection per included item, each
	// carrying the shared metadata plus the item's own defects. Returns
	// EINVALID when no item is included. Per-item failures are reported in
	// the result list; the batch itself still returns nil error.
	CreateMultiInspection(ctx context.Context, meta MultiInspectionMeta, items []MultiInspectionItem) ([]*MultiInspectionResult, error)
}
