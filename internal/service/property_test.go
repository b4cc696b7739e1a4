package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/domain"
)

func seedProperties(t *testing.T, svc Properties) {
	t.Helper()
	for _, p := range []*domain.Property{
		domain.NewProperty("Dubai", 450000),
		domain.NewProperty("Abu Dhabi", 320000),
		domain.NewProperty("dubai", 280000),
	} {
		require.NoError(t, svc.Create(context.Background(), p))
	}
}

func TestPropertySearch(t *testing.T) {
	svcs := newTestServices(t, nil)
	seedProperties(t, svcs.Properties)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.PropertyFilter
		want   []int64
	}{
		{"all", domain.PropertyFilter{}, []int64{1, 2, 3}},
		{"city", domain.PropertyFilter{City: "Dubai"}, []int64{1, 3}},
		{"range", domain.PropertyFilter{MinPrice: 300000, MaxPrice: 450000}, []int64{1, 2}},
		{"sorted", domain.PropertyFilter{SortByPrice: true}, []int64{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svcs.Properties.Search(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := svcs.Properties.Search(ctx, domain.PropertyFilter{MinPrice: 10, MaxPrice: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPropertyCommission(t *testing.T) {
	svcs := newTestServices(t, nil)
	seedProperties(t, svcs.Properties)
	ctx := context.Background()

	q, err := svcs.Properties.Commission(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyKindHouse, q.Kind)
	assert.Equal(t, 13500.0, q.Commission)

	q, err = svcs.Properties.Commission(ctx, 2, "apartment")
	require.NoError(t, err)
	assert.Equal(t, 8000.0, q.Commission)

	_, err = svcs.Properties.Commission(ctx, 1, "castle")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svcs.Properties.Commission(ctx, 0, "house")
	assert.Equal(t, "Property id must be positive.", domain.Message(err))

	_, err = svcs.Properties.Commission(ctx, 42, "house")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
