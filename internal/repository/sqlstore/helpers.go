package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"realestate/internal/domain"
)

// ============================================================================
// Row Scanners
// ============================================================================
//
// Column order in each *Columns constant MUST match the Scan call in the
// matching scan function.

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const agencyColumns = `id, name, address`

func scanAgency(s rowScanner) (*domain.Agency, error) {
	var a domain.Agency
	if err := s.Scan(&a.ID, &a.Name, &a.Address); err != nil {
		return nil, err
	}
	return &a, nil
}

const realtorColumns = `id, name`

func scanRealtor(s rowScanner) (*domain.Realtor, error) {
	var r domain.Realtor
	if err := s.Scan(&r.ID, &r.Name); err != nil {
		return nil, err
	}
	return &r, nil
}

const propertyColumns = `id, city, price`

func scanProperty(s rowScanner) (*domain.Property, error) {
	var p domain.Property
	if err := s.Scan(&p.ID, &p.City, &p.Price); err != nil {
		return nil, err
	}
	return &p, nil
}

// ============================================================================
// Statement Helpers
// ============================================================================

// insertReturningID runs an INSERT ... RETURNING id statement. It reports
// 1 and the new id on success, or 0 rows when the store returned nothing.
func (s *Store) insertReturningID(ctx context.Context, what, query string, args ...any) (int64, int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, domain.DataAccess("failed to insert "+what, err)
	}
	return 1, id, nil
}

// execAffected runs an UPDATE or DELETE and reports the rows it touched
func (s *Store) execAffected(ctx context.Context, op, query string, args ...any) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return 0, domain.DataAccess("failed to "+op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, domain.DataAccess("failed to "+op, err)
	}
	return n, nil
}

// queryOne runs a single-row lookup. A missing row yields nil, nil.
func queryOne[T any](ctx context.Context, s *Store, what, query string, scan func(rowScanner) (*T, error), args ...any) (*T, error) {
	rec, err := scan(s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.DataAccess("failed to get "+what, err)
	}
	return rec, nil
}

// queryAll runs a listing query. An empty table yields an empty, non-nil
// slice.
func queryAll[T any](ctx context.Context, s *Store, what, query string, scan func(rowScanner) (*T, error)) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query))
	if err != nil {
		return nil, domain.DataAccess("failed to list "+what, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, domain.DataAccess("failed to scan "+what, err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccess("failed to list "+what, err)
	}
	return out, nil
}
