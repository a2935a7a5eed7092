package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.CustomerService = (*CustomerService)(nil)

// CustomerService is a mock implementation of tackle.CustomerService.
type CustomerService struct {
	FindCustomerByIDFn func(ctx context.Context, id uuid.UUID) (*tackle.Customer, error)
}

func (s *CustomerService) FindCustomerByID(ctx context.Context, id uuid.UUID) (*tackle.Customer, error) {
	if s.FindCustomerByIDFn != nil {
		return s.FindCustomerByIDFn(ctx, id)
	}
	return nil, tackle.NotFound("Customer not found")
}
