package authcore_test

import (
	"errors"
	"testing"
	"time"

	"authcore"
	"authcore/authtest"
)

var jwtSecret = []byte("0123456789abcdef0123456789abcdef")

func TestValidateTokenSignatureOnly(t *testing.T) {
	// Default selector checks nothing beyond the signature: an expired token
	// with a valid signature is accepted.
	tok := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if err := authcore.ValidateToken(jwtSecret, tok, authcore.ClaimPolicy{}); err != nil {
		t.Fatalf("signature-only validation: %v", err)
	}

	if err := authcore.ValidateToken([]byte("wrong-secret-wrong-secret-wrong!"), tok, authcore.ClaimPolicy{}); !errors.Is(err, authcore.ErrInvalidSignature) {
		t.Fatalf("wrong secret: want ErrInvalidSignature, got %v", err)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	if err := authcore.ValidateToken(jwtSecret, "not-a-jwt", authcore.ClaimPolicy{}); !errors.Is(err, authcore.ErrMalformed) {
		t.Fatalf("garbage token: want ErrMalformed, got %v", err)
	}
	if err := authcore.ValidateToken(jwtSecret, "", authcore.ClaimPolicy{}); !errors.Is(err, authcore.ErrMalformed) {
		t.Fatalf("empty token: want ErrMalformed, got %v", err)
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	policy := authcore.ClaimPolicy{Code: authcore.ClaimExpiry}

	expired := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if err := authcore.ValidateToken(jwtSecret, expired, policy); !errors.Is(err, authcore.ErrExpired) {
		t.Fatalf("expired token: want ErrExpired, got %v", err)
	}

	fresh := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if err := authcore.ValidateToken(jwtSecret, fresh, policy); err != nil {
		t.Fatalf("fresh token: %v", err)
	}

	noExp := authtest.MintToken(t, jwtSecret, map[string]any{"sub": "user-1"})
	if err := authcore.ValidateToken(jwtSecret, noExp, policy); !errors.Is(err, authcore.ErrExpired) {
		t.Fatalf("token without exp: want ErrExpired, got %v", err)
	}

	// Leeway tolerates a just-expired token.
	justExpired := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(-30 * time.Second).Unix(),
	})
	lenient := authcore.ClaimPolicy{Code: authcore.ClaimExpiry, Leeway: time.Minute}
	if err := authcore.ValidateToken(jwtSecret, justExpired, lenient); err != nil {
		t.Fatalf("within leeway: %v", err)
	}
}

func TestValidateTokenNotBefore(t *testing.T) {
	policy := authcore.ClaimPolicy{Code: authcore.ClaimNotBefore}

	future := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"nbf": time.Now().Add(time.Hour).Unix(),
	})
	if err := authcore.ValidateToken(jwtSecret, future, policy); !errors.Is(err, authcore.ErrNotYetValid) {
		t.Fatalf("future nbf: want ErrNotYetValid, got %v", err)
	}

	active := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"nbf": time.Now().Add(-time.Minute).Unix(),
	})
	if err := authcore.ValidateToken(jwtSecret, active, policy); err != nil {
		t.Fatalf("active token: %v", err)
	}
}

func TestValidateTokenIssuerAudience(t *testing.T) {
	policy := authcore.ClaimPolicy{
		Code:     authcore.ClaimIssuer | authcore.ClaimAudience,
		Issuer:   "https://issuer.example",
		Audience: "wss://api.example/ws",
	}

	good := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"iss": "https://issuer.example",
		"aud": []string{"https://other", "wss://api.example/ws"},
	})
	if err := authcore.ValidateToken(jwtSecret, good, policy); err != nil {
		t.Fatalf("matching iss/aud: %v", err)
	}

	badIss := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"iss": "https://evil.example",
		"aud": "wss://api.example/ws",
	})
	if err := authcore.ValidateToken(jwtSecret, badIss, policy); !errors.Is(err, authcore.ErrClaimMismatch) {
		t.Fatalf("issuer mismatch: want ErrClaimMismatch, got %v", err)
	}

	badAud := authtest.MintToken(t, jwtSecret, map[string]any{
		"sub": "user-1",
		"iss": "https://issuer.example",
		"aud": "https://unknown",
	})
	if err := authcore.ValidateToken(jwtSecret, badAud, policy); !errors.Is(err, authcore.ErrClaimMismatch) {
		t.Fatalf("audience mismatch: want ErrClaimMismatch, got %v", err)
	}

	// Unselected claims stay uninspected: the same mismatched token passes a
	// signature-only policy.
	if err := authcore.ValidateToken(jwtSecret, badAud, authcore.ClaimPolicy{}); err != nil {
		t.Fatalf("unselected claims must not be inspected: %v", err)
	}
}

func TestClaimCodeHas(t *testing.T) {
	code := authcore.ClaimExpiry | authcore.ClaimIssuer
	if !code.Has(authcore.ClaimExpiry) || !code.Has(authcore.ClaimIssuer) {
		t.Fatal("selected claims not reported")
	}
	if code.Has(authcore.ClaimAudience) {
		t.Fatal("unselected claim reported as selected")
	}
	if authcore.DisableAll().Has(authcore.ClaimExpiry) {
		t.Fatal("DisableAll must select nothing")
	}
}
