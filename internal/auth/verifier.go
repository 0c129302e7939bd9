package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/uNik020/EWS-monitor-Backend/pkg/crypto"
)

// ErrInvalidCredentials is returned when the supplied email/password pair is invalid.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Identity carries the authenticated caller's claims.
type Identity struct {
	Email string
}

// CredentialVerifier checks an email/password pair against a backing
// identity store. The login handler depends only on this interface so a real
// directory can replace the built-in demo account.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*Identity, error)
}

// StaticVerifier verifies credentials against a single configured account.
type StaticVerifier struct {
	email        string
	passwordHash string
}

// NewStaticVerifier builds a verifier for the configured demo account.
func NewStaticVerifier(email, passwordHash string) (*StaticVerifier, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("auth: verifier email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("auth: verifier password hash is required")
	}

	return &StaticVerifier{email: email, passwordHash: passwordHash}, nil
}

// Verify implements CredentialVerifier.
func (v *StaticVerifier) Verify(_ context.Context, email, password string) (*Identity, error) {
	if !strings.EqualFold(strings.TrimSpace(email), v.email) {
		return nil, ErrInvalidCredentials
	}

	if !crypto.VerifyPassword(v.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &Identity{Email: v.email}, nil
}
