// Package models contains the persisted entity types of the server.
package models

// User is an account row. Salt is a per-user random hex string regenerated
// on every password change; PasswordHash is the hex SHA-256 digest of the
// plaintext password concatenated with Salt. Plaintext passwords are never
// stored.
type User struct {
	ID           int64
	Username     string
	Salt         string
	PasswordHash string
}
