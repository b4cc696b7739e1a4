package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies for create, update and import
const maxBodyBytes = 1 << 20

// crudService is the shape shared by service.Agencies, service.Realtors and
// service.Properties
type crudService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// resourceHandler serves the five CRUD endpoints for one record type
type resourceHandler[T any] struct {
	// label is the capitalised record name used in messages ("Agency")
	label string
	svc   crudService[T]
	// id reads the primary key of a record after create
	id func(*T) int64
}

// Routes mounts GET/POST on / and GET/PUT/DELETE on /{id}
func (h *resourceHandler[T]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *resourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}

func (h *resourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, rec, http.StatusOK)
}

func (h *resourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodePayload[T](w, r)
	if err != nil {
		writeBodyError(w, err, "Invalid request body")
		return
	}

	if err := h.svc.Create(r.Context(), rec); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeMessage(w, h.label+" created successfully", h.id(rec), http.StatusCreated)
}

func (h *resourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := decodePayload[T](w, r)
	if err != nil {
		writeBodyError(w, err, "Invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), id, rec); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeMessage(w, h.label+" updated successfully", 0, http.StatusOK)
}

func (h *resourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeMessage(w, h.label+" deleted successfully", 0, http.StatusOK)
}

// decodePayload reads a JSON record. An empty body or a literal null yields
// a nil record, which the service rejects as a missing payload.
func decodePayload[T any](w http.ResponseWriter, r *http.Request) (*T, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
