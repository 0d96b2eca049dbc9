// Package service declares the ports the usecases depend on. Implementations live under internal/infra.
package service

// PasswordHasher hashes and verifies the admin password.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool

	// IsHash reports whether value looks like a hash produced by Hash, so that a plaintext
	// secret placed in auth.bootstrapPasswordHash is refused instead of stored.
	IsHash(value string) bool
}
