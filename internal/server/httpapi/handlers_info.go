package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/catcurious/catcurious/internal/common"
)

func (s *Server) handleBreedInfo(w http.ResponseWriter, r *http.Request) {
	breed := chi.URLParam(r, "breed")

	desc, err := s.cats.BreedDescription(r.Context(), breed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"breed": breed, "description": desc})
}

func (s *Server) handleAffectionLevel(w http.ResponseWriter, r *http.Request) {
	breed := chi.URLParam(r, "breed")

	level, err := s.cats.BreedAffectionLevel(r.Context(), breed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"breed": breed, "affection_level": level})
}

func (s *Server) handleLifespan(w http.ResponseWriter, r *http.Request) {
	breed := chi.URLParam(r, "breed")

	lifespan, err := s.cats.BreedLifespan(r.Context(), breed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"breed": breed, "lifespan": lifespan})
}

func (s *Server) handleBreedPic(w http.ResponseWriter, r *http.Request) {
	breed := chi.URLParam(r, "breed")

	url, err := s.cats.BreedImage(r.Context(), breed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"breed": breed, "url": url})
}

func (s *Server) handleRandomImage(w http.ResponseWriter, r *http.Request) {
	url, err := s.cats.RandomImage(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"url": url})
}

func (s *Server) handleCatFacts(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "count")
	count, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %q", common.ErrorInvalidFactCount, raw))
		return
	}

	facts, err := s.cats.RandomFacts(r.Context(), count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"facts": facts})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleDBCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.ping(r.Context()); err != nil {
		s.writeError(w, r, errors.Join(common.ErrorInternal, err))
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]any{"status": "database reachable"})
}

func (s *Server) handleInitDB(w http.ResponseWriter, r *http.Request) {
	if err := s.initDB(r.Context()); err != nil {
		s.writeError(w, r, errors.Join(common.ErrorInternal, err))
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]any{"status": "database initialized"})
}
