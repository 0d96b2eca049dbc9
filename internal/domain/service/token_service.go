package service

// TokenService mints opaque high-entropy tokens and derives the hash under which they are stored.
type TokenService interface {
	// GenerateSessionToken returns a new raw session bearer token.
	GenerateSessionToken() (string, error)

	// GenerateResetToken returns a new raw password reset token.
	GenerateResetToken() (string, error)

	// HashToken returns the storage form of a raw token. Raw tokens are never persisted.
	HashToken(token string) string
}
