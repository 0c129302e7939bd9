package crypto

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !VerifyPassword(hash, "demo123") {
		t.Fatal("expected password to verify against its own hash")
	}

	if VerifyPassword(hash, "wrong") {
		t.Fatal("expected mismatched password to fail verification")
	}
}

// The original deployment stored a $2b$ prefixed hash; bcrypt must accept it.
func TestVerifyPasswordAccepts2bHashes(t *testing.T) {
	const legacyHash = "$2b$10$WKgztEdoHeWZbBZXAiL/7u7cnsVDOkBE0Oi2wPAhFsl24X1Y7mtly"

	if !VerifyPassword(legacyHash, "demo123") {
		t.Fatal("expected legacy hash to verify")
	}
}
