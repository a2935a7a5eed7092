package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Compile-time check that InspectionService implements tackle.InspectionService.
var _ tackle.InspectionService = (*InspectionService)(nil)

// InspectionService implements tackle.InspectionService using PostgreSQL.
// Inspections are append-only: there is deliberately no update or delete.
type InspectionService struct {
	db *DB
}

const inspectionColumns = `
	id, holding_id, inspector_id, inspection_date, location, safe_working,
	test_details, defects, rectified, misc_notes, record_number,
	previous_check, next_check, created_at`

func scanInspection(row pgx.Row) (*tackle.Inspection, error) {
	var i tackle.Inspection
	var location, safeWorking, testDetails, defects, rectified, miscNotes, recordNumber pgtype.Text
	var previousCheck, nextCheck pgtype.Timestamptz
	err := row.Scan(
		&i.ID, &i.HoldingID, &i.InspectorID, &i.InspectionDate,
		&location, &safeWorking, &testDetails, &defects, &rectified,
		&miscNotes, &recordNumber, &previousCheck, &nextCheck, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Location = fromPgText(location)
	i.SafeWorking = fromPgText(safeWorking)
	i.TestDetails = fromPgText(testDetails)
	i.Defects = fromPgText(defects)
	i.Rectified = fromPgText(rectified)
	i.MiscNotes = fromPgText(miscNotes)
	i.RecordNumber = fromPgText(recordNumber)
	i.PreviousCheck = fromPgTimestampPtr(previousCheck)
	i.NextCheck = fromPgTimestampPtr(nextCheck)
	return &i, nil
}

func (s *InspectionService) FindInspectionByID(ctx context.Context, id uuid.UUID) (*tackle.Inspection, error) {
	query := `
		SELECT ` + inspectionColumns + `
		FROM inspections
		WHERE id = $1`

	inspection, err := scanInspection(s.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tackle.NotFound("Inspection not found")
		}
		return nil, tackle.Internal("Failed to fetch inspection", err)
	}
	return inspection, nil
}

func (s *InspectionService) FindInspectionsByHolding(ctx context.Context, holdingID uuid.UUID) ([]*tackle.Inspection, error) {
	query := `
		SELECT ` + inspectionColumns + `
		FROM inspections
		WHERE holding_id = $1
		ORDER BY inspection_date DESC, created_at DESC`

	rows, err := s.db.pool.Query(ctx, query, holdingID)
	if err != nil {
		return nil, tackle.Internal("Failed to list inspections", err)
	}
	defer rows.Close()

	var inspections []*tackle.Inspection
	for rows.Next() {
		i, err := scanInspection(rows)
		if err != nil {
			return nil, tackle.Internal("Failed to scan inspection", err)
		}
		inspections = append(inspections, i)
	}
	if err := rows.Err(); err != nil {
		return nil, tackle.Internal("Failed to list inspections", err)
	}
	return inspections, nil
}

func (s *InspectionService) CreateInspection(ctx context.Context, inspection *tackle.Inspection) error {
	const query = `
		INSERT INTO inspections (
			holding_id, inspector_id, inspection_date, location, safe_working,
			test_details, defects, rectified, misc_notes, record_number,
			previous_check, next_check
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := s.db.pool.QueryRow(ctx, query,
		inspection.HoldingID,
		inspection.InspectorID,
		inspection.InspectionDate,
		toPgText(inspection.Location),
		toPgText(inspection.SafeWorking),
		toPgText(inspection.TestDetails),
		toPgText(inspection.Defects),
		toPgText(inspection.Rectified),
		toPgText(inspection.MiscNotes),
		toPgText(inspection.RecordNumber),
		toPgTimestampPtr(inspection.PreviousCheck),
		toPgTimestampPtr(inspection.NextCheck),
	).Scan(&inspection.ID, &inspection.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return tackle.NotFound("Holding or inspector not found")
		}
		return tackle.Internal("Failed to create inspection", err)
	}
	return nil
}
