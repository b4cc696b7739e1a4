package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/config"
	"realestate/internal/domain"
	"realestate/internal/repository/sqlstore"
)

// newTestServices wires the three services over an in-memory SQLite store
func newTestServices(t *testing.T, bus *EventBus) Services {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return Services{
		Agencies:   NewAgencyService(store.Agencies(), bus),
		Realtors:   NewRealtorService(store.Realtors(), bus),
		Properties: NewPropertyService(store.Properties(), bus),
	}
}

func TestCreateThenListScenario(t *testing.T) {
	svcs := newTestServices(t, nil)
	ctx := context.Background()

	require.NoError(t, svcs.Agencies.Create(ctx, domain.NewAgency("Acme", "1 Main St")))

	list, err := svcs.Agencies.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Agency{{ID: 1, Name: "Acme", Address: "1 Main St"}}, list)
}

func TestZeroPriceScenario(t *testing.T) {
	svcs := newTestServices(t, nil)

	err := svcs.Properties.Create(context.Background(), domain.NewProperty("Dubai", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Price must be greater than 0.", domain.Message(err))

	list, err := svcs.Properties.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateMissingRealtorScenario(t *testing.T) {
	svcs := newTestServices(t, nil)

	err := svcs.Realtors.Update(context.Background(), 99, &domain.Realtor{ID: 99, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Realtor not found.", domain.Message(err))
}

func TestRealtorServiceAgainstStore(t *testing.T) {
	svcs := newTestServices(t, nil)
	ctx := context.Background()

	r := domain.NewRealtor("Sara")
	require.NoError(t, svcs.Realtors.Create(ctx, r))
	require.NoError(t, svcs.Realtors.Update(ctx, r.ID, domain.NewRealtor("Sara K.")))

	got, err := svcs.Realtors.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sara K.", got.Name)

	require.NoError(t, svcs.Realtors.Delete(ctx, r.ID))
	assert.ErrorIs(t, svcs.Realtors.Delete(ctx, r.ID), domain.ErrNotFound)

	_, err = svcs.Realtors.Get(ctx, -4)
	assert.Equal(t, "Realtor id must be positive.", domain.Message(err))
}

func TestClosedStoreSurfacesDataAccess(t *testing.T) {
	store, err := sqlstore.Open(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	svc := NewPropertyService(store.Properties(), nil)
	store.Close()

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataAccess)
}
