// Package services contains server-side business logic. This file implements
// UserService: account creation, password verification, rotation, and
// deletion. Plaintext passwords never reach the repositories.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/server/models"
	"github.com/catcurious/catcurious/internal/server/repositories/repomanager"
)

// saltByteLen is the number of random bytes per salt; hex-encoded this
// yields a 32-character string.
const saltByteLen = 16

// UserService provides account operations over the users repository.
//
// UpdatePassword deliberately does not re-verify the old password: checking
// the old password (VerifyPassword) and persisting new credentials are two
// separate steps owned by the caller.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the shared DB handle and
// repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// hashPassword computes the hex SHA-256 digest of password concatenated
// with the hex salt string. The same concatenation order is used on write
// and on verify.
func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// generateHashedPassword returns a fresh random salt and the matching hash.
func generateHashedPassword(password string) (salt, hash string, err error) {
	salt, err = common.MakeRandHexString(saltByteLen)
	if err != nil {
		return "", "", fmt.Errorf("salt generation: %w", err)
	}
	return salt, hashPassword(password, salt), nil
}

// CreateAccount registers a new user and returns its assigned ID.
// Both username and password must be non-empty. A taken username is
// reported as common.ErrorAlreadyExists.
func (s *UserService) CreateAccount(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, common.ErrorEmptyCredentials
	}

	salt, hash, err := generateHashedPassword(password)
	if err != nil {
		return 0, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, Salt: salt, PasswordHash: hash})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// VerifyPassword reports whether password matches the stored credentials
// for username. An unknown username is a hard common.ErrorNotFound, so
// callers can tell "wrong password" (false, nil) from "no such user".
func (s *UserService) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}

	candidate := hashPassword(password, user.Salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(user.PasswordHash)) == 1, nil
}

// UpdatePassword generates a fresh salt, recomputes the hash, and persists
// both in a single atomic update. The old password is not checked here.
func (s *UserService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return common.ErrorEmptyCredentials
	}

	salt, hash, err := generateHashedPassword(newPassword)
	if err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)
	return repo.UpdateCredentials(ctx, username, salt, hash)
}

// DeleteAccount hard-deletes the account row for username.
func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	repo := s.repomanager.Users(s.db)
	return repo.Delete(ctx, username)
}

// GetUserID returns the ID of the account for username.
func (s *UserService) GetUserID(ctx context.Context, username string) (int64, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
