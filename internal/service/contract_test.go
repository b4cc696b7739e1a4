package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/config"
	"realestate/internal/domain"
	"realestate/internal/repository/sqlstore"
)

// storeRepo is the method set shared by the three repository contracts
type storeRepo[T any] interface {
	Insert(ctx context.Context, rec *T) (int64, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, rec *T) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// countingRepo forwards to a real repository and counts the calls that
// reach it
type countingRepo[T any] struct {
	next  storeRepo[T]
	calls int
}

func (c *countingRepo[T]) Insert(ctx context.Context, rec *T) (int64, error) {
	c.calls++
	return c.next.Insert(ctx, rec)
}

func (c *countingRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	c.calls++
	return c.next.GetByID(ctx, id)
}

func (c *countingRepo[T]) List(ctx context.Context) ([]T, error) {
	c.calls++
	return c.next.List(ctx)
}

func (c *countingRepo[T]) Update(ctx context.Context, id int64, rec *T) (int64, error) {
	c.calls++
	return c.next.Update(ctx, id, rec)
}

func (c *countingRepo[T]) Delete(ctx context.Context, id int64) (int64, error) {
	c.calls++
	return c.next.Delete(ctx, id)
}

type recordService[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

type crudCase[T any] struct {
	entity   string
	svc      recordService[T]
	repo     *countingRepo[T]
	original func() *T
	replaced func() *T
	id       func(*T) int64
}

func openTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func checkCRUDContract[T any](t *testing.T, c crudCase[T]) {
	t.Helper()
	ctx := context.Background()

	for _, id := range []int64{0, -1} {
		_, err := c.svc.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, c.entity+" id must be positive.", domain.Message(err))

		assert.ErrorIs(t, c.svc.Update(ctx, id, c.replaced()), domain.ErrInvalidInput)
		assert.ErrorIs(t, c.svc.Delete(ctx, id), domain.ErrInvalidInput)
	}
	assert.Zero(t, c.repo.calls, "bad ids must not reach the store")

	notFound := c.entity + " not found."
	_, err := c.svc.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, notFound, domain.Message(err))

	err = c.svc.Update(ctx, 99, c.replaced())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, notFound, domain.Message(err))

	err = c.svc.Delete(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, notFound, domain.Message(err))

	rec := c.original()
	require.NoError(t, c.svc.Create(ctx, rec))
	id := c.id(rec)
	require.Positive(t, id)

	upd := c.replaced()
	require.NoError(t, c.svc.Update(ctx, id, upd))
	got, err := c.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, *upd, *got, "update replaces every field")

	require.NoError(t, c.svc.Delete(ctx, id))
	_, err = c.svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, c.svc.Delete(ctx, id), domain.ErrNotFound)
}

func TestServicesCRUDContract(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, store *sqlstore.Store)
	}{
		{"agency", func(t *testing.T, store *sqlstore.Store) {
			repo := &countingRepo[domain.Agency]{next: store.Agencies()}
			checkCRUDContract(t, crudCase[domain.Agency]{
				entity:   "Agency",
				svc:      NewAgencyService(repo, nil),
				repo:     repo,
				original: func() *domain.Agency { return domain.NewAgency("Acme", "1 Main St") },
				replaced: func() *domain.Agency { return domain.NewAgency("Acme Realty", "2 Side St") },
				id:       func(a *domain.Agency) int64 { return a.ID },
			})
		}},
		{"realtor", func(t *testing.T, store *sqlstore.Store) {
			repo := &countingRepo[domain.Realtor]{next: store.Realtors()}
			checkCRUDContract(t, crudCase[domain.Realtor]{
				entity:   "Realtor",
				svc:      NewRealtorService(repo, nil),
				repo:     repo,
				original: func() *domain.Realtor { return domain.NewRealtor("Sara Khan") },
				replaced: func() *domain.Realtor { return domain.NewRealtor("Sara K.") },
				id:       func(r *domain.Realtor) int64 { return r.ID },
			})
		}},
		{"property", func(t *testing.T, store *sqlstore.Store) {
			repo := &countingRepo[domain.Property]{next: store.Properties()}
			checkCRUDContract(t, crudCase[domain.Property]{
				entity:   "Property",
				svc:      NewPropertyService(repo, nil),
				repo:     repo,
				original: func() *domain.Property { return domain.NewProperty("Dubai", 450000) },
				replaced: func() *domain.Property { return domain.NewProperty("Sharjah", 290000.5) },
				id:       func(p *domain.Property) int64 { return p.ID },
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t, openTestStore(t))
		})
	}
}

func TestPropertyServiceRejectsNonFinitePrices(t *testing.T) {
	store := openTestStore(t)
	repo := &countingRepo[domain.Property]{next: store.Properties()}
	svc := NewPropertyService(repo, nil)
	ctx := context.Background()

	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := svc.Create(ctx, domain.NewProperty("Dubai", price))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "create %v", price)
		assert.Equal(t, "Price must be a finite number.", domain.Message(err))

		err = svc.Update(ctx, 1, domain.NewProperty("Dubai", price))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "update %v", price)

		_, err = svc.Search(ctx, domain.PropertyFilter{MaxPrice: price})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "search %v", price)
	}
	assert.Zero(t, repo.calls)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
