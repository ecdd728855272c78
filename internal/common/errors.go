// Package common defines shared helpers and sentinel errors used across
// the Cat Curious server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Soft-delete lifecycle errors. A lookup that hits a soft-deleted row
	// fails with ErrorDeleted; a repeat delete fails with ErrorAlreadyDeleted.
	// Both are distinct from ErrorNotFound.
	ErrorDeleted        = errors.New("record deleted")
	ErrorAlreadyDeleted = errors.New("record already deleted")

	// Validation errors. Services wrap these with the offending value.
	ErrorInvalidBreed     = errors.New("invalid breed")
	ErrorInvalidAge       = errors.New("invalid age")
	ErrorInvalidWeight    = errors.New("invalid weight")
	ErrorInvalidFactCount = errors.New("invalid fact count")
	ErrorEmptyCredentials = errors.New("username and password must not be empty")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
)
