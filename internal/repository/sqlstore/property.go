package sqlstore

import (
	"context"

	"realestate/internal/domain"
)

type propertyRepo struct {
	s *Store
}

func (r *propertyRepo) Insert(ctx context.Context, p *domain.Property) (int64, error) {
	if p == nil {
		return 0, domain.InvalidInput("Property payload is required.")
	}
	n, id, err := r.s.insertReturningID(ctx, "property",
		`INSERT INTO property_listing (city, price) VALUES (?, ?) RETURNING id`,
		p.City, p.Price)
	if err != nil || n == 0 {
		return n, err
	}
	p.ID = id
	return n, nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return queryOne(ctx, r.s, "property",
		`SELECT `+propertyColumns+` FROM property_listing WHERE id = ?`, scanProperty, id)
}

func (r *propertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	return queryAll(ctx, r.s, "properties",
		`SELECT `+propertyColumns+` FROM property_listing ORDER BY id`, scanProperty)
}

func (r *propertyRepo) Update(ctx context.Context, id int64, p *domain.Property) (int64, error) {
	if p == nil {
		return 0, domain.InvalidInput("Property payload is required.")
	}
	return r.s.execAffected(ctx, "update property",
		`UPDATE property_listing SET city = ?, price = ? WHERE id = ?`,
		p.City, p.Price, id)
}

func (r *propertyRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return r.s.execAffected(ctx, "delete property",
		`DELETE FROM property_listing WHERE id = ?`, id)
}
