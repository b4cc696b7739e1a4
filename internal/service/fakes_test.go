package service

import (
	"context"
	"errors"
	"sort"

	"realestate/internal/domain"
)

// fakeAgencyRepo is an in-memory AgencyRepository that counts calls, so
// tests can assert that rejected input never reaches the store.
type fakeAgencyRepo struct {
	rows   map[int64]domain.Agency
	nextID int64
	calls  int
	err    error
	// insertAffects overrides the insert row count when set
	insertAffects *int64
}

func newFakeAgencyRepo() *fakeAgencyRepo {
	return &fakeAgencyRepo{rows: map[int64]domain.Agency{}}
}

func (f *fakeAgencyRepo) Insert(_ context.Context, a *domain.Agency) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if f.insertAffects != nil {
		return *f.insertAffects, nil
	}
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = *a
	return 1, nil
}

func (f *fakeAgencyRepo) GetByID(_ context.Context, id int64) (*domain.Agency, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAgencyRepo) List(_ context.Context) ([]domain.Agency, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Agency, 0, len(f.rows))
	for _, a := range f.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAgencyRepo) Update(_ context.Context, id int64, a *domain.Agency) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	f.rows[id] = domain.Agency{ID: id, Name: a.Name, Address: a.Address}
	return 1, nil
}

func (f *fakeAgencyRepo) Delete(_ context.Context, id int64) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

var errDriver = errors.New("driver: bad connection")
