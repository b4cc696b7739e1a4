package handler

import (
	"fmt"
	"net/http"
	"strings"

	"realestate/internal/codec"
	"realestate/internal/service"
)

// CatalogHandler serves whole-catalog export and import
type CatalogHandler struct {
	portfolio *service.Portfolio
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(portfolio *service.Portfolio) *CatalogHandler {
	return &CatalogHandler{portfolio: portfolio}
}

// ImportResponse reports how far an import got
type ImportResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message,omitempty"`
	Error    string               `json:"error,omitempty"`
	Imported service.ImportResult `json:"imported"`
}

// Export serves GET /api/export?format=json|yaml
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	c, err := codec.ForFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	snap, err := h.portfolio.Export(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", c.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="realestate.%s"`, c.Format()))
	if err := c.Export(snap, w); err != nil {
		writeFailure(w, r, err)
	}
}

// Import serves POST /api/import?format=json|yaml. Without a format
// parameter a YAML content type selects YAML and anything else JSON.
func (h *CatalogHandler) Import(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" && strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = "yaml"
	}

	c, err := codec.ForFormat(format)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	snap, err := c.Parse(http.MaxBytesReader(w, r.Body, 10*maxBodyBytes))
	if err != nil {
		writeBodyError(w, err, "Invalid "+c.Format()+" document")
		return
	}

	res, err := h.portfolio.Import(r.Context(), snap)
	if err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			writeFailure(w, r, err)
			return
		}
		writeJSON(w, ImportResponse{Success: false, Error: message, Imported: res}, status)
		return
	}

	writeJSON(w, ImportResponse{
		Success:  true,
		Message:  fmt.Sprintf("Imported %d records", res.Total()),
		Imported: res,
	}, http.StatusOK)
}
