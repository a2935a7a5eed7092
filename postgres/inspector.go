package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Compile-time check that InspectorService implements tackle.InspectorService.
var _ tackle.InspectorService = (*InspectorService)(nil)

// InspectorService implements tackle.InspectorService using PostgreSQL.
type InspectorService struct {
	db *DB
}

func (s *InspectorService) FindInspectorByID(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM inspectors
		WHERE id = $1`

	var i tackle.Inspector
	var email pgtype.Text
	err := s.db.pool.QueryRow(ctx, query, id).Scan(&i.ID, &i.Name, &email, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Inspector not found")
		}
		return nil, tackle.Internal("Failed to fetch inspector", err)
	}
	i.Email = fromPgText(email)
	return &i, nil
}
