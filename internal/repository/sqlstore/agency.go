package sqlstore

import (
	"context"

	"realestate/internal/domain"
)

type agencyRepo struct {
	s *Store
}

func (r *agencyRepo) Insert(ctx context.Context, a *domain.Agency) (int64, error) {
	if a == nil {
		return 0, domain.InvalidInput("Agency payload is required.")
	}
	n, id, err := r.s.insertReturningID(ctx, "agency",
		`INSERT INTO real_estate_agency (name, address) VALUES (?, ?) RETURNING id`,
		a.Name, a.Address)
	if err != nil || n == 0 {
		return n, err
	}
	a.ID = id
	return n, nil
}

func (r *agencyRepo) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	return queryOne(ctx, r.s, "agency",
		`SELECT `+agencyColumns+` FROM real_estate_agency WHERE id = ?`, scanAgency, id)
}

func (r *agencyRepo) List(ctx context.Context) ([]domain.Agency, error) {
	return queryAll(ctx, r.s, "agencies",
		`SELECT `+agencyColumns+` FROM real_estate_agency ORDER BY id`, scanAgency)
}

func (r *agencyRepo) Update(ctx context.Context, id int64, a *domain.Agency) (int64, error) {
	if a == nil {
		return 0, domain.InvalidInput("Agency payload is required.")
	}
	return r.s.execAffected(ctx, "update agency",
		`UPDATE real_estate_agency SET name = ?, address = ? WHERE id = ?`,
		a.Name, a.Address, id)
}

func (r *agencyRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.s.execAffected(ctx, "delete agency",
		`DELETE FROM real_estate_agency WHERE id = ?`, id)
}
