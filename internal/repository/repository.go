package repository

import (
	"context"

	"realestate/internal/domain"
)

// AgencyRepository is the data access contract for agencies.
//
// GetByID returns nil, nil when no row matches. Insert, Update and Delete
// report the number of rows affected; 0 from Update or Delete means no row
// had that id. Insert sets the generated id on the record it is given.
type AgencyRepository interface {
	Insert(ctx context.Context, a *domain.Agency) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)
	List(ctx context.Context) ([]domain.Agency, error)
	Update(ctx context.Context, id int64, a *domain.Agency) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// RealtorRepository is the data access contract for realtors
type RealtorRepository interface {
	Insert(ctx context.Context, r *domain.Realtor) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Realtor, error)
	List(ctx context.Context) ([]domain.Realtor, error)
	Update(ctx context.Context, id int64, r *domain.Realtor) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PropertyRepository is the data access contract for property listings
type PropertyRepository interface {
	Insert(ctx context.Context, p *domain.Property) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, id int64, p *domain.Property) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Store bundles the per-entity repositories over one connection pool
type Store interface {
	Agencies() AgencyRepository
	Realtors() RealtorRepository
	Properties() PropertyRepository

	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases resources
	Close() error
}
