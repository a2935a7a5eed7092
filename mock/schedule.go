package mock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.ScheduledInspectionService = (*ScheduledInspectionService)(nil)

// ScheduledInspectionService is a mock implementation of
// tackle.ScheduledInspectionService.
type ScheduledInspectionService struct {
	FindScheduledInspectionByIDFn func(ctx context.Context, id uuid.UUID) (*tackle.ScheduledInspection, error)
	FindPendingByHoldingFn        func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error)
	FindScheduledByHoldingFn      func(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error)
	CreateScheduledInspectionFn   func(ctx context.Context, booking *tackle.ScheduledInspection) error
	UpdateScheduledInspectionFn   func(ctx context.Context, id uuid.UUID, upd tackle.ScheduledInspectionUpdate) (*tackle.ScheduledInspection, error)
	DeleteScheduledInspectionFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *ScheduledInspectionService) FindScheduledInspectionByID(ctx context.Context, id uuid.UUID) (*tackle.ScheduledInspection, error) {
	if s.FindScheduledInspectionByIDFn != nil {
		return s.FindScheduledInspectionByIDFn(ctx, id)
	}
	return nil, tackle.NotFound("Scheduled inspection not found")
}

func (s *ScheduledInspectionService) FindPendingByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
	if s.FindPendingByHoldingFn != nil {
		return s.FindPendingByHoldingFn(ctx, holdingID)
	}
	return []*tackle.ScheduledInspection{}, nil
}

func (s *ScheduledInspectionService) FindScheduledByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
	if s.FindScheduledByHoldingFn != nil {
		return s.FindScheduledByHoldingFn(ctx, holdingID)
	}
	return []*tackle.ScheduledInspection{}, nil
}

func (s *ScheduledInspectionService) CreateScheduledInspection(ctx context.Context, booking *tackle.ScheduledInspection) error {
	if s.CreateScheduledInspectionFn != nil {
		return s.CreateScheduledInspectionFn(ctx, booking)
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	return nil
}

func (s *ScheduledInspectionService) UpdateScheduledInspection(ctx context.Context, id uuid.UUID, upd tackle.ScheduledInspectionUpdate) (*tackle.ScheduledInspection, error) {
	if s.UpdateScheduledInspectionFn != nil {
		return s.UpdateScheduledInspectionFn(ctx, id, upd)
	}
	return nil, tackle.NotFound("Scheduled inspection not found")
}

func (s *ScheduledInspectionService) DeleteScheduledInspection(ctx context.Context, id uuid.UUID) error {
	if s.DeleteScheduledInspectionFn != nil {
		return s.DeleteScheduledInspectionFn(ctx, id)
	}
	return nil
}
