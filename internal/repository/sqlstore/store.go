// Package sqlstore implements the repository contracts over database/sql.
//
// SQLite (modernc.org/sqlite) is the default and the store used in tests.
// PostgreSQL is reachable through either pgx or lib/pq; both share the
// postgres dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"realestate/internal/config"
	"realestate/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store implements repository.Store on a *sql.DB
type Store struct {
	db      *sql.DB
	dialect Dialect

	agencies   *agencyRepo
	realtors   *realtorRepo
	properties *propertyRepo
}

// Open connects to the configured database and applies the schema
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	driverName, dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dataSourceName(cfg, dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite && isMemory(cfg.DSN) {
		// Every new connection to :memory: is a fresh, empty database.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration())
	}

	s := New(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// New wraps an existing connection pool. The schema is not touched.
func New(db *sql.DB, dialect Dialect) *Store {
	s := &Store{db: db, dialect: dialect}
	s.agencies = &agencyRepo{s}
	s.realtors = &realtorRepo{s}
	s.properties = &propertyRepo{s}
	return s
}

// Migrate creates the three tables if they do not exist
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema(s.dialect) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func schema(d Dialect) []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	money := "REAL"
	if d == DialectPostgres {
		pk = "BIGSERIAL PRIMARY KEY"
		money = "DOUBLE PRECISION"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS real_estate_agency (
		id ` + pk + `,
		name TEXT NOT NULL,
		address TEXT NOT NULL
	)`,
		`CREATE TABLE IF NOT EXISTS realtor (
		id ` + pk + `,
		name TEXT NOT NULL
	)`,
		`CREATE TABLE IF NOT EXISTS property_listing (
		id ` + pk + `,
		city TEXT NOT NULL,
		price ` + money + ` NOT NULL
	)`,
	}
}

// Agencies returns the agency repository
func (s *Store) Agencies() repository.AgencyRepository { return s.agencies }

// Realtors returns the realtor repository
func (s *Store) Realtors() repository.RealtorRepository { return s.realtors }

// Properties returns the property repository
func (s *Store) Properties() repository.PropertyRepository { return s.properties }

// Dialect reports the SQL dialect in use
func (s *Store) Dialect() Dialect { return s.dialect }

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}
