package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlantHolding is a specific piece of equipment owned by one customer and
// subject to periodic statutory inspection. Holdings are created and edited by
// catalog management; the scheduling engine treats them as read-only inputs.
type PlantHolding struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	PlantTypeID  uuid.UUID `json:"plantTypeId"`
	SerialNumber string    `json:"serialNumber"`
	Description  string    `json:"description"`

	// SafeWorkingLoad is the rated load as recorded on the last certificate.
	SafeWorkingLoad string `json:"safeWorkingLoad,omitempty"`

	// FrequencyMonths is the statutory inspection interval in whole months.
	// Zero means the frequency has never been recorded; such holdings always
	// read Overdue.
	FrequencyMonths int `json:"frequencyMonths"`

	// MultiInspect marks the holding eligible for the batch inspection
	// workflow (auxiliary tackle inspected many-at-a-time).
	MultiInspect bool `json:"multiInspect"`

	StatusNote string    `json:"statusNote,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Joined fields (populated by some queries)
	PlantType *PlantType `json:"plantType,omitempty"`
	Customer  *Customer  `json:"customer,omitempty"`
}

// HoldingFilter defines criteria for listing plant holdings.
type HoldingFilter struct {
	CustomerID   *uuid.UUID
	MultiInspect *bool
	CategoryIDs  []uuid.UUID
}

// HoldingService defines read access to plant holdings.
type HoldingService interface {
	// FindHoldingByID retrieves a holding by its ID.
	// Returns ENOTFOUND if the holding does not exist.
	FindHoldingByID(ctx context.Context, id uuid.UUID) (*PlantHolding, error)

	// FindHoldings retrieves holdings matching the filter criteria.
	FindHoldings(ctx context.Context, filter HoldingFilter) ([]*PlantHolding, error)
}
