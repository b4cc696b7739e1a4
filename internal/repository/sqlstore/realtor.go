package sqlstore

import (
	"context"

	"realestate/internal/domain"
)

type realtorRepo struct {
	s *Store
}

func (r *realtorRepo) Insert(ctx context.Context, rec *domain.Realtor) (int64, error) {
	if rec == nil {
		return 0, domain.InvalidInput("Realtor payload is required.")
	}
	n, id, err := r.s.insertReturningID(ctx, "realtor",
		`INSERT INTO realtor (name) VALUES (?) RETURNING id`, rec.Name)
	if err != nil || n == 0 {
		return n, err
	}
	rec.ID = id
	return n, nil
}

func (r *realtorRepo) GetByID(ctx context.Context, id int64) (*domain.Realtor, error) {
	return queryOne(ctx, r.s, "realtor",
		`SELECT `+realtorColumns+` FROM realtor WHERE id = ?`, scanRealtor, id)
}

func (r *realtorRepo) List(ctx context.Context) ([]domain.Realtor, error) {
	return queryAll(ctx, r.s, "realtors",
		`SELECT `+realtorColumns+` FROM realtor ORDER BY id`, scanRealtor)
}

func (r *realtorRepo) Update(ctx context.Context, id int64, rec *domain.Realtor) (int64, error) {
	if rec == nil {
		return 0, domain.InvalidInput("Realtor payload is required.")
	}
	return r.s.execAffected(ctx, "update realtor",
		`UPDATE realtor SET name = ? WHERE id = ?`, rec.Name, id)
}

func (r *realtorRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.s.execAffected(ctx, "delete realtor",
		`DELETE FROM realtor WHERE id = ?`, id)
}
