package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret: "test-suite-super-secret-key-32-bytes!!",
		Issuer: "ews-monitor",
	})
	require.NoError(t, err)

	token, err := svc.Sign("demo@bank.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "demo@bank.com", claims.Email)
	require.Equal(t, "demo@bank.com", claims.Subject)
	require.Equal(t, "ews-monitor", claims.Issuer)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	now := time.Now()
	issuedClock := func() time.Time { return now.Add(-48 * time.Hour) }

	issuer, err := NewJWTService(JWTConfig{
		Secret:         "test-suite-super-secret-key-32-bytes!!",
		AccessTokenTTL: time.Hour,
		Clock:          issuedClock,
	})
	require.NoError(t, err)

	token, err := issuer.Sign("demo@bank.com")
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{
		Secret:         "test-suite-super-secret-key-32-bytes!!",
		AccessTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "secret-one"})
	require.NoError(t, err)

	token, err := issuer.Sign("demo@bank.com")
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{Secret: "secret-two"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTServiceRejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "shared-secret", Issuer: "someone-else"})
	require.NoError(t, err)

	token, err := issuer.Sign("demo@bank.com")
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{Secret: "shared-secret", Issuer: "ews-monitor"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	require.Error(t, err)
}
