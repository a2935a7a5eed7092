package mock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.InspectionService = (*InspectionService)(nil)

// InspectionService is a mock implementation of tackle.InspectionService.
type InspectionService struct {
	FindInspectionByIDFn       func(ctx context.Context, id uuid.UUID) (*tackle.Inspection, error)
	FindInspectionsByHoldingFn func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.Inspection, error)
	CreateInspectionFn         func(ctx context.Context, inspection *tackle.Inspection) error
}

func (s *InspectionService) FindInspectionByID(ctx context.Context, id uuid.UUID) (*tackle.Inspection, error) {
	if s.FindInspectionByIDFn != nil {
		return s.FindInspectionByIDFn(ctx, id)
	}
	return nil, tackle.NotFound("Inspection not found")
}

func (s *InspectionService) FindInspectionsByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.Inspection, error) {
	if s.FindInspectionsByHoldingFn != nil {
		return s.FindInspectionsByHoldingFn(ctx, holdingID)
	}
	return []*tackle.Inspection{}, nil
}

func (s *InspectionService) CreateInspection(ctx context.Context, inspection *tackle.Inspection) error {
	if s.CreateInspectionFn != nil {
		return s.CreateInspectionFn(ctx, inspection)
	}
	inspection.ID = uuid.New()
	inspection.CreatedAt = time.Now()
	return nil
}
