package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realestate/internal/domain"
)

// MessageResponse is the success envelope for writes
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// ErrorResponse is the failure envelope for every endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// errInvalidID is returned when an {id} path segment is not an integer
var errInvalidID = errors.New("Invalid ID format")

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Success: false, Error: message}, statusCode)
}

func writeMessage(w http.ResponseWriter, message string, id int64, statusCode int) {
	writeJSON(w, MessageResponse{Success: true, Message: message, ID: id}, statusCode)
}

// writeFailure maps the domain error taxonomy onto HTTP. Store and internal
// failures are logged with their cause; the response carries only the
// message.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, message, status)
}

// writeBodyError reports a request body that could not be read or decoded.
// Bodies over the size cap get 413; anything else gets 400 with invalid.
func writeBodyError(w http.ResponseWriter, err error, invalid string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	writeError(w, invalid, http.StatusBadRequest)
}

func statusFor(err error) (int, string) {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		return http.StatusBadRequest, domain.Message(err)
	case domain.KindNotFound:
		return http.StatusNotFound, domain.Message(err)
	case domain.KindDataAccess:
		return http.StatusInternalServerError, "Database error: " + domain.Message(err)
	default:
		var de *domain.Error
		if errors.As(err, &de) {
			return http.StatusInternalServerError, "Internal server error: " + domain.Message(err)
		}
		return http.StatusInternalServerError, "Internal server error"
	}
}

// pathID parses the {id} route parameter
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
