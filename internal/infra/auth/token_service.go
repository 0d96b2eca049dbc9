package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"folio/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	sessionTokenBytes = 32
	resetTokenBytes   = 24
)

type opaqueTokenService struct{}

// NewTokenService returns a TokenService minting hex encoded random tokens stored as SHA-256 digests.
func NewTokenService() service.TokenService {
	return &opaqueTokenService{}
}

func (s *opaqueTokenService) GenerateSessionToken() (string, error) {
	return randomHex(sessionTokenBytes)
}

func (s *opaqueTokenService) GenerateResetToken() (string, error) {
	return randomHex(resetTokenBytes)
}

func (s *opaqueTokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
