package service

import (
	"context"
	"errors"

	"realestate/internal/domain"
)

// Agencies is the agency use-case contract shared by every front-end
type Agencies interface {
	List(ctx context.Context) ([]domain.Agency, error)
	Get(ctx context.Context, id int64) (*domain.Agency, error)
	Create(ctx context.Context, a *domain.Agency) error
	Update(ctx context.Context, id int64, a *domain.Agency) error
	Delete(ctx context.Context, id int64) error
}

// Realtors is the realtor use-case contract
type Realtors interface {
	List(ctx context.Context) ([]domain.Realtor, error)
	Get(ctx context.Context, id int64) (*domain.Realtor, error)
	Create(ctx context.Context, r *domain.Realtor) error
	Update(ctx context.Context, id int64, r *domain.Realtor) error
	Delete(ctx context.Context, id int64) error
}

// Properties is the property use-case contract, including search and
// commission quotes
type Properties interface {
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	Update(ctx context.Context, id int64, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error)
	Commission(ctx context.Context, id int64, kind string) (*domain.CommissionQuote, error)
}

// Services groups the three entity services for front-ends
type Services struct {
	Agencies   Agencies
	Realtors   Realtors
	Properties Properties
}

// classify keeps taxonomy errors as they are and turns anything else into
// an Internal error.
func classify(err error, msg string) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal(msg, err)
}
