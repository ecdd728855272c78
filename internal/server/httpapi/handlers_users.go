package httpapi

import (
	"fmt"
	"net/http"

	"github.com/catcurious/catcurious/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type deleteUserRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body", common.ErrorEmptyCredentials))
		return
	}

	id, err := s.users.CreateAccount(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, map[string]any{
		"message": "account created",
		"user_id": id,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body", common.ErrorEmptyCredentials))
		return
	}

	ok, err := s.users.VerifyPassword(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, fmt.Errorf("%w: wrong password", common.ErrorUnauthorized))
		return
	}

	id, err := s.users.GetUserID(r.Context(), req.Username)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"message": "login successful",
		"user_id": id,
	})
}

// handleUpdatePassword verifies the old password before rotating to the new
// one. The verify and the update are the two halves of the flow; the service
// only persists.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body", common.ErrorEmptyCredentials))
		return
	}

	ok, err := s.users.VerifyPassword(r.Context(), req.Username, req.OldPassword)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, fmt.Errorf("%w: wrong password", common.ErrorUnauthorized))
		return
	}

	if err := s.users.UpdatePassword(r.Context(), req.Username, req.NewPassword); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"message": "password updated"})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body", common.ErrorEmptyCredentials))
		return
	}

	if err := s.users.DeleteAccount(r.Context(), req.Username); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]any{"message": "account deleted"})
}
