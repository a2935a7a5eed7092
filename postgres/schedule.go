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

// Compile-time check that ScheduledInspectionService implements
// tackle.ScheduledInspectionService.
var _ tackle.ScheduledInspectionService = (*ScheduledInspectionService)(nil)

// ScheduledInspectionService implements tackle.ScheduledInspectionService
// using PostgreSQL.
type ScheduledInspectionService struct {
	db *DB
}

const scheduledColumns = `
	id, holding_id, inspector_id, scheduled_date, location, notes,
	is_completed, created_at, updated_at`

func scanScheduled(row pgx.Row) (*tackle.ScheduledInspection, error) {
	var b tackle.ScheduledInspection
	var location, notes pgtype.Text
	err := row.Scan(
		&b.ID, &b.HoldingID, &b.InspectorID, &b.ScheduledDate,
		&location, &notes, &b.IsCompleted, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Location = fromPgText(location)
	b.Notes = fromPgText(notes)
	return &b, nil
}

func (s *ScheduledInspectionService) FindScheduledInspectionByID(ctx context.Context, id uuid.UUID) (*tackle.ScheduledInspection, error) {
	query := `
		SELECT ` + scheduledColumns + `
		FROM scheduled_inspections
		WHERE id = $1`

	booking, err := scanScheduled(s.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Scheduled inspection not found")
		}
		return nil, tackle.Internal("Failed to fetch scheduled inspection", err)
	}
	return booking, nil
}

func (s *ScheduledInspectionService) FindPendingByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
	query := `
		SELECT ` + scheduledColumns + `
		FROM scheduled_inspections
		WHERE holding_id = $1 AND is_completed = FALSE
		ORDER BY scheduled_date`

	return s.list(ctx, query, holdingID)
}

func (s *ScheduledInspectionService) FindScheduledByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.ScheduledInspection, error) {
	query := `
		SELECT ` + scheduledColumns + `
		FROM scheduled_inspections
		WHERE holding_id = $1
		ORDER BY scheduled_date`

	return s.list(ctx, query, holdingID)
}

func (s *ScheduledInspectionService) list(ctx context.Context, query string, args ...any) ([]*tackle.ScheduledInspection, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, tackle.Internal("Failed to list scheduled inspections", err)
	}
	defer rows.Close()

	var bookings []*tackle.ScheduledInspection
	for rows.Next() {
		b, err := scanScheduled(rows)
		if err != nil {
			return nil, tackle.Internal("Failed to scan scheduled inspection", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, tackle.Internal("Failed to list scheduled inspections", err)
	}
	return bookings, nil
}

func (s *ScheduledInspectionService) CreateScheduledInspection(ctx context.Context, booking *tackle.ScheduledInspection) error {
	const query = `
		INSERT INTO scheduled_inspections (
			holding_id, inspector_id, scheduled_date, location, notes
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_completed, created_at, updated_at`

	err := s.db.pool.QueryRow(ctx, query,
		booking.HoldingID,
		booking.InspectorID,
		booking.ScheduledDate,
		toPgText(booking.Location),
		toPgText(booking.Notes),
	).Scan(&booking.ID, &booking.IsCompleted, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return tackle.NotFound("Holding or inspector not found")
		}
		return tackle.Internal("Failed to create scheduled inspection", err)
	}
	return nil
}

func (s *ScheduledInspectionService) UpdateScheduledInspection(ctx context.Context, id uuid.UUID, upd tackle.ScheduledInspectionUpdate) (*tackle.ScheduledInspection, error) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.ScheduledDate != nil {
		add("scheduled_date", *upd.ScheduledDate)
	}
	if upd.InspectorID != nil {
		add("inspector_id", *upd.InspectorID)
	}
	if upd.Location != nil {
		add("location", toPgText(*upd.Location))
	}
	if upd.Notes != nil {
		add("notes", toPgText(*upd.Notes))
	}
	if upd.IsCompleted != nil {
		// No transition guard: re-opening a completed booking is allowed.
		add("is_completed", *upd.IsCompleted)
	}

	if len(set) == 0 {
		return s.FindScheduledInspectionByID(ctx, id)
	}

	set = append(set, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE scheduled_inspections
		SET %s
		WHERE id = $%d
		RETURNING `+scheduledColumns, strings.Join(set, ", "), len(args))

	booking, err := scanScheduled(s.db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Scheduled inspection not found")
		}
		if isForeignKeyViolation(err) {
			return nil, tackle.NotFound("Inspector not found")
		}
		return nil, tackle.Internal("Failed to update scheduled inspection", err)
	}
	return booking, nil
}

func (s *ScheduledInspectionService) DeleteScheduledInspection(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.pool.Exec(ctx, `DELETE FROM scheduled_inspections WHERE id = $1`, id)
	if err != nil {
		return tackle.Internal("Failed to delete scheduled inspection", err)
	}
	if tag.RowsAffected() == 0 {
		return tackle.NotFound("Scheduled inspection not found")
	}
	return nil
}
