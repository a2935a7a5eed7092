package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Text conversions

// toPgText converts a string to pgtype.Text, treating empty as NULL.
func toPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// fromPgText converts a pgtype.Text to string.
func fromPgText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// Timestamp conversions

// toPgTimestampPtr converts a time.Time pointer to pgtype.Timestamptz.
func toPgTimestampPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// fromPgTimestampPtr converts a pgtype.Timestamptz to time.Time pointer (nil if not valid).
func fromPgTimestampPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
