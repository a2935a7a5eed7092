// Package postgres provides PostgreSQL implementations of the repository
// interfaces defined in the root package.
package postgres

import (
	"github.com/harrisonbray/tackle"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the database connection pool and exposes repository services.
type DB struct {
	pool *pgxpool.Pool

	// Repository services (initialized in NewDB)
	CustomerService            tackle.CustomerService
	HoldingService             tackle.HoldingService
	InspectorService           tackle.InspectorService
	InspectionService          tackle.InspectionService
	ScheduledInspectionService tackle.ScheduledInspectionService
}

// NewDB creates a new database wrapper with all services initialized.
func NewDB(pool *pgxpool.Pool) *DB {
	db := &DB{pool: pool}

	db.CustomerService = &CustomerService{db: db}
	db.HoldingService = &HoldingService{db: db}
	db.InspectorService = &InspectorService{db: db}
	db.InspectionService = &InspectionService{db: db}
	db.ScheduledInspectionService = &ScheduledInspectionService{db: db}

	return db
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer using service methods.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
