package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/config"
	"realestate/internal/domain"
	"realestate/internal/repository/sqlstore"
	"realestate/internal/service"
)

type testServer struct {
	router http.Handler
	store  *sqlstore.Store
	svcs   service.Services
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svcs := service.Services{
		Agencies:   service.NewAgencyService(store.Agencies(), nil),
		Realtors:   service.NewRealtorService(store.Realtors(), nil),
		Properties: service.NewPropertyService(store.Properties(), nil),
	}

	return &testServer{
		router: NewRouter(Deps{
			Services:  svcs,
			Portfolio: service.NewPortfolio(svcs, nil),
			Store:     store,
		}),
		store: store,
		svcs:  svcs,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestAgencyEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/agencies", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/agencies", `{"name":"Acme","address":"1 Main St"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, MessageResponse{Success: true, Message: "Agency created successfully", ID: 1}, decode[MessageResponse](t, rec))

	rec = s.do(t, http.MethodGet, "/api/agencies", "")
	assert.JSONEq(t, `[{"id":1,"name":"Acme","address":"1 Main St"}]`, rec.Body.String())

	rec = s.do(t, http.MethodPut, "/api/agencies/1", `{"name":"Acme Realty","address":"2 Side St"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Agency updated successfully", decode[MessageResponse](t, rec).Message)

	rec = s.do(t, http.MethodGet, "/api/agencies/1", "")
	assert.JSONEq(t, `{"id":1,"name":"Acme Realty","address":"2 Side St"}`, rec.Body.String())

	rec = s.do(t, http.MethodDelete, "/api/agencies/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Agency deleted successfully", decode[MessageResponse](t, rec).Message)

	rec = s.do(t, http.MethodGet, "/api/agencies/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorResponse{Success: false, Error: "Agency not found."}, decode[ErrorResponse](t, rec))
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"malformed id", http.MethodGet, "/api/realtors/abc", "", http.StatusBadRequest, "Invalid ID format"},
		{"malformed id on delete", http.MethodDelete, "/api/properties/1.5", "", http.StatusBadRequest, "Invalid ID format"},
		{"non-positive id", http.MethodGet, "/api/realtors/0", "", http.StatusBadRequest, "Realtor id must be positive."},
		{"unknown id update", http.MethodPut, "/api/realtors/99", `{"name":"X"}`, http.StatusNotFound, "Realtor not found."},
		{"unknown id delete", http.MethodDelete, "/api/agencies/99", "", http.StatusNotFound, "Agency not found."},
		{"zero price", http.MethodPost, "/api/properties", `{"city":"Dubai","price":0}`, http.StatusBadRequest, "Price must be greater than 0."},
		{"blank name", http.MethodPost, "/api/realtors", `{"name":"  "}`, http.StatusBadRequest, "Name is required."},
		{"empty body", http.MethodPost, "/api/agencies", "", http.StatusBadRequest, "Agency payload is required."},
		{"null body", http.MethodPut, "/api/properties/1", "null", http.StatusBadRequest, "Property payload is required."},
		{"bad json", http.MethodPost, "/api/agencies", `{"name":`, http.StatusBadRequest, "Invalid request body"},
		{"unknown route", http.MethodGet, "/api/buildings", "", http.StatusNotFound, "Not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decode[ErrorResponse](t, rec)
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantError, got.Error)
		})
	}
}

func TestStoreFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.store.Close()

	rec := s.do(t, http.MethodGet, "/api/properties", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Database error: failed to list properties", decode[ErrorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.InvalidInput("Name is required."), 400, "Name is required."},
		{domain.NotFound("Agency not found."), 404, "Agency not found."},
		{domain.DataAccess("failed to insert agency", errors.New("pq: password=secret")), 500, "Database error: failed to insert agency"},
		{domain.Internal("Failed to create agency.", nil), 500, "Internal server error: Failed to create agency."},
		{errors.New("panic-ish"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		status, msg := statusFor(tt.err)
		assert.Equal(t, tt.wantStatus, status)
		assert.Equal(t, tt.wantMsg, msg)
	}
}

func TestPropertySearchAndCommission(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{
		`{"city":"Dubai","price":450000}`,
		`{"city":"Abu Dhabi","price":320000}`,
		`{"city":"dubai","price":280000}`,
	} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/properties", body).Code)
	}

	rec := s.do(t, http.MethodGet, "/api/properties?city=DUBAI&sort=price", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]domain.Property](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)

	rec = s.do(t, http.MethodGet, "/api/properties?min_price=300000&max_price=450000", "")
	assert.Len(t, decode[[]domain.Property](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/api/properties?min_price=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/properties?min_price=10&max_price=5", "")
	assert.Equal(t, "Minimum price must not exceed maximum price.", decode[ErrorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/properties/2/commission?kind=apartment", "")
	require.Equal(t, http.StatusOK, rec.Code)
	q := decode[domain.CommissionQuote](t, rec)
	assert.Equal(t, 8000.0, q.Commission)
	assert.Equal(t, 0.025, q.Rate)

	rec = s.do(t, http.MethodGet, "/api/properties/9/commission", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonFinitePricesAreRejected(t *testing.T) {
	s := newTestServer(t)

	for _, q := range []string{"min_price=inf", "max_price=NaN", "min_price=-Inf"} {
		rec := s.do(t, http.MethodGet, "/api/properties?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/import?format=yaml",
		strings.NewReader("properties:\n  - city: Dubai\n    price: .inf\n"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ImportResponse](t, rec)
	assert.Equal(t, "properties[0]: Price must be a finite number.", resp.Error)
	assert.Zero(t, resp.Imported.Total())

	rec = s.do(t, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOversizedBodyIs413(t *testing.T) {
	s := newTestServer(t)
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `","address":"1 Main St"}`

	rec := s.do(t, http.MethodPost, "/api/agencies", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Request body too large", decode[ErrorResponse](t, rec).Error)

	rec = s.do(t, http.MethodPut, "/api/agencies/1", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/agencies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode[ErrorResponse](t, rec).Error)
}

func TestExportImport(t *testing.T) {
	src := newTestServer(t)
	require.Equal(t, http.StatusCreated, src.do(t, http.MethodPost, "/api/agencies", `{"name":"Acme","address":"1 Main St"}`).Code)
	require.Equal(t, http.StatusCreated, src.do(t, http.MethodPost, "/api/realtors", `{"name":"Sara"}`).Code)

	rec := src.do(t, http.MethodGet, "/api/export?format=yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "name: Acme")

	dst := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(rec.Body.String()))
	req.Header.Set("Content-Type", "application/yaml")
	out := httptest.NewRecorder()
	dst.router.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code, out.Body.String())
	res := decode[ImportResponse](t, out)
	assert.True(t, res.Success)
	assert.Equal(t, service.ImportResult{Agencies: 1, Realtors: 1}, res.Imported)

	list, err := dst.svcs.Realtors.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Realtor{{ID: 1, Name: "Sara"}}, list)
}

func TestImportReportsPartialProgress(t *testing.T) {
	s := newTestServer(t)

	body := `{"agencies":[{"name":"Acme","address":"1 Main St"},{"name":"","address":"x"}]}`
	rec := s.do(t, http.MethodPost, "/api/import?format=json", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decode[ImportResponse](t, rec)
	assert.False(t, res.Success)
	assert.Equal(t, "agencies[1]: Name is required.", res.Error)
	assert.Equal(t, 1, res.Imported.Agencies)

	rec = s.do(t, http.MethodGet, "/api/export?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/import", `not json`)
	assert.Equal(t, "Invalid json document", decode[ErrorResponse](t, rec).Error)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	s.do(t, http.MethodGet, "/api/agencies/1", "")

	rec = s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `realestate_http_requests_total{code="404",method="GET",route="/api/agencies/{id}"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/agencies", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
