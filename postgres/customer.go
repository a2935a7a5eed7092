package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Compile-time check that CustomerService implements tackle.CustomerService.
var _ tackle.CustomerService = (*CustomerService)(nil)

// CustomerService implements tackle.CustomerService using PostgreSQL.
type CustomerService struct {
	db *DB
}

func (s *CustomerService) FindCustomerByID(ctx context.Context, id uuid.UUID) (*tackle.Customer, error) {
	const query = `
		SELECT id, name, address, contact, created_at, updated_at
		FROM customers
		WHERE id = $1`

	var c tackle.Customer
	var address, contact pgtype.Text
	err := s.db.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &address, &contact, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Customer not found")
		}
		return nil, tackle.Internal("Failed to fetch customer", err)
	}
	c.Address = fromPgText(address)
	c.Contact = fromPgText(contact)
	return &c, nil
}
