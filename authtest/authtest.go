// Package authtest provides helpers for testing code that wires up
// authcore: minting signed tokens, building signed API-key frames and
// stubbing the nonce lookup. Tokens are produced with go-jose rather than
// the library the validator verifies with, so tests exercise real
// interoperability instead of a round-trip through one implementation.
package authtest

import (
	"context"
	"encoding/hex"
	"testing"

	jose "github.com/go-jose/go-jose/v4"
	josejwt "github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"

	"authcore"
	"authcore/noncestore"
)

// MintToken signs claims into a compact HS256 JWT over secret.
func MintToken(t *testing.T, secret []byte, claims map[string]any) string {
	t.Helper()
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		t.Fatalf("build signer: %v", err)
	}
	tok, err := josejwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// APIKeyFrame builds a structured frame carrying an API key, a payload and
// a hex signature computed the way the validator recomputes it: HMAC-SHA256
// over (resourcePath, nonce, payload).
func APIKeyFrame(t *testing.T, secret []byte, fields authcore.FieldSet, resourcePath, apiKey string, nonce uint64, payload any) map[string]any {
	t.Helper()
	sig, err := authcore.Candidate{
		ResourcePath: resourcePath,
		Nonce:        nonce,
		Payload:      payload,
	}.Sign(secret)
	if err != nil {
		t.Fatalf("sign frame: %v", err)
	}
	return map[string]any{
		fields.Key:     apiKey,
		fields.Sign:    hex.EncodeToString(sig),
		fields.Payload: payload,
	}
}

// StaticNonces returns a Lookup serving a fixed table.
func StaticNonces(table map[string]uint64) noncestore.Lookup {
	return func(ctx context.Context, apiKey string) (uint64, bool) {
		n, ok := table[apiKey]
		return n, ok
	}
}

// RandomKey returns a fresh API key for test fixtures.
func RandomKey() string {
	return uuid.NewString()
}
