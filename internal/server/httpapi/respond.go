package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/catcurious/catcurious/internal/common"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(r.Context(), "encoding response failed", "error", err)
	}
}

// statusForError maps sentinel errors onto HTTP status codes. Validation
// failures are client errors, lifecycle conflicts are 409, anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorInvalidBreed),
		errors.Is(err, common.ErrorInvalidAge),
		errors.Is(err, common.ErrorInvalidWeight),
		errors.Is(err, common.ErrorInvalidFactCount),
		errors.Is(err, common.ErrorEmptyCredentials):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorDeleted),
		errors.Is(err, common.ErrorAlreadyDeleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and responds with the mapped status. Internal errors
// are masked so database details never leak to clients.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "internal error", "path", r.URL.Path, "error", err)
		msg = common.ErrorInternal.Error()
	} else {
		s.logger.Warn(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}

	s.writeJSON(w, r, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into v and rejects trailing garbage.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
