package tackle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Customer owns plant holdings. Customers are managed by the catalog side of
// the product; this service only reads them.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlantCategory groups plant types (e.g. chain slings, shackles, hoists).
type PlantCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PlantType describes a kind of equipment within a category.
type PlantType struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Description string    `json:"description"`
}

// CustomerService defines read access to customers.
type CustomerService interface {
	// FindCustomerByID retrieves a customer by its ID.
	// Returns ENOTFOUND if the customer does not exist.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}
