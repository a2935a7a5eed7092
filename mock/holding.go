package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.HoldingService = (*HoldingService)(nil)

// HoldingService is a mock implementation of tackle.HoldingService.
type HoldingService struct {
	FindHoldingByIDFn func(ctx context.Context, id uuid.UUID) (*tackle.PlantHolding, error)
	FindHoldingsFn    func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error)
}

func (s *HoldingService) FindHoldingByID(ctx context.Context, id uuid.UUID) (*tackle.PlantHolding, error) {
	if s.FindHoldingByIDFn != nil {
		return s.FindHoldingByIDFn(ctx, id)
	}
	return nil, tackle.NotFound("Holding not found")
}

func (s *HoldingService) FindHoldings(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
	if s.FindHoldingsFn != nil {
		return s.FindHoldingsFn(ctx, filter)
	}
	return []*tackle.PlantHolding{}, nil
}
