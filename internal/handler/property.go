package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"realestate/internal/domain"
	"realestate/internal/service"
)

// PropertyHandler adds search and commission quotes to the property
// resource
type PropertyHandler struct {
	*resourceHandler[domain.Property]
	svc service.Properties
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(svc service.Properties) *PropertyHandler {
	return &PropertyHandler{
		resourceHandler: &resourceHandler[domain.Property]{
			label: "Property",
			svc:   svc,
			id:    func(p *domain.Property) int64 { return p.ID },
		},
		svc: svc,
	}
}

// List serves GET /api/properties. With any of city, min_price, max_price
// or sort=price it runs a search instead of a plain listing.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("city") && !q.Has("min_price") && !q.Has("max_price") && !q.Has("sort") {
		h.resourceHandler.List(w, r)
		return
	}

	f, err := parseFilter(q.Get("city"), q.Get("min_price"), q.Get("max_price"), q.Get("sort"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	list, err := h.svc.Search(r.Context(), f)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}

// Commission serves GET /api/properties/{id}/commission?kind=
func (h *PropertyHandler) Commission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.svc.Commission(r.Context(), id, r.URL.Query().Get("kind"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, quote, http.StatusOK)
}

func parseFilter(city, minPrice, maxPrice, sort string) (domain.PropertyFilter, error) {
	f := domain.PropertyFilter{City: strings.TrimSpace(city)}

	var err error
	if f.MinPrice, err = parsePrice("min_price", minPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice("max_price", maxPrice); err != nil {
		return f, err
	}

	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "":
	case "price":
		f.SortByPrice = true
	default:
		return f, domain.InvalidInput("Sort must be price.")
	}
	return f, nil
}

func parsePrice(name, v string) (float64, error) {
	if strings.TrimSpace(v) == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, domain.InvalidInput("Invalid " + name + " value.")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, domain.InvalidInput("Invalid " + name + " value.")
	}
	return n, nil
}
