package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var errBadID = errors.New("id must be a positive integer")

type createCatRequest struct {
	Name   string  `json:"name"`
	Breed  string  `json:"breed"`
	Age    float64 `json:"age"`
	Weight float64 `json:"weight"`
}

// catID parses the {id} route parameter.
func catID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errBadID, raw)
	}
	return id, nil
}

func (s *Server) handleCreateCat(w http.ResponseWriter, r *http.Request) {
	var req createCatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	cat, err := s.cats.CreateCat(r.Context(), req.Name, req.Breed, req.Age, req.Weight)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, cat)
}

func (s *Server) handleDeleteCat(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := s.cats.DeleteCat(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"message": "cat deleted", "cat_id": id})
}

func (s *Server) handleGetCatByID(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cat, err := s.cats.GetCatByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, cat)
}

func (s *Server) handleGetCatByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cat, err := s.cats.GetCatByName(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, cat)
}

func (s *Server) handleClearCats(w http.ResponseWriter, r *http.Request) {
	if err := s.cats.ClearAll(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"message": "all cats cleared"})
}
