package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Compile-time check that HoldingService implements tackle.HoldingService.
var _ tackle.HoldingService = (*HoldingService)(nil)

// HoldingService implements tackle.HoldingService using PostgreSQL.
type HoldingService struct {
	db *DB
}

const holdingColumns = `
	h.id, h.customer_id, h.plant_type_id, h.serial_number, h.description,
	h.safe_working_load, h.frequency_months, h.multi_inspect, h.status_note,
	h.created_at, h.updated_at,
	t.id, t.category_id, t.description`

func scanHolding(row pgx.Row) (*tackle.PlantHolding, error) {
	var h tackle.PlantHolding
	var t tackle.PlantType
	var swl, statusNote pgtype.Text
	err := row.Scan(
		&h.ID, &h.CustomerID, &h.PlantTypeID, &h.SerialNumber, &h.Description,
		&swl, &h.FrequencyMonths, &h.MultiInspect, &statusNote,
		&h.CreatedAt, &h.UpdatedAt,
		&t.ID, &t.CategoryID, &t.Description,
	)
	if err != nil {
		return nil, err
	}
	h.SafeWorkingLoad = fromPgText(swl)
	h.StatusNote = fromPgText(statusNote)
	h.PlantType = &t
	return &h, nil
}

func (s *HoldingService) FindHoldingByID(ctx context.Context, id uuid.UUID) (*tackle.PlantHolding, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM plant_holdings h
		JOIN plant_types t ON t.id = h.plant_type_id
		WHERE h.id = $1`

	holding, err := scanHolding(s.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Holding not found")
		}
		return nil, tackle.Internal("Failed to fetch holding", err)
	}
	return holding, nil
}

func (s *HoldingService) FindHoldings(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
	var (
		where []string
		args  []any
	)
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		where = append(where, fmt.Sprintf("h.customer_id = $%d", len(args)))
	}
	if filter.MultiInspect != nil {
		args = append(args, *filter.MultiInspect)
		where = append(where, fmt.Sprintf("h.multi_inspect = $%d", len(args)))
	}
	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		where = append(where, fmt.Sprintf("t.category_id = ANY($%d)", len(args)))
	}

	query := `
		SELECT ` + holdingColumns + `
		FROM plant_holdings h
		JOIN plant_types t ON t.id = h.plant_type_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY h.serial_number"

	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, tackle.Internal("Failed to list holdings", err)
	}
	defer rows.Close()

	var holdings []*tackle.PlantHolding
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, tackle.Internal("Failed to scan holding", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, tackle.Internal("Failed to list holdings", err)
	}
	return holdings, nil
}
