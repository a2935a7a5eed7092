package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.InspectorService = (*InspectorService)(nil)

// InspectorService is a mock implementation of tackle.InspectorService.
type InspectorService struct {
	FindInspectorByIDFn func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error)
}

func (s *InspectorService) FindInspectorByID(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
	if s.FindInspectorByIDFn != nil {
		return s.FindInspectorByIDFn(ctx, id)
	}
	return nil, tackle.NotFound("Inspector not found")
}
