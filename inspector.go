package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Inspector is a named engineer who performs statutory inspections.
type Inspector struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InspectorService defines read access to inspectors.
type InspectorService interface {
	// FindInspectorByID retrieves an inspector by its ID.
	// Returns ENOTFOUND if the inspector does not exist.
	FindInspectorByID(ctx context.Context, id uuid.UUID) (*Inspector, error)
}
