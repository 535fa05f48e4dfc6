package authcore

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimCode selects which standard claims a JWTMode enforces beyond the
// signature. The zero value (DisableAll) enforces nothing: any token whose
// signature verifies is accepted, expired or not. Enforcement is strictly
// opt-in per claim; unselected claims are never inspected even when present
// and invalid.
type ClaimCode uint8

const (
	// ClaimExpiry rejects tokens whose exp is in the past (ErrExpired).
	// A token without exp is also rejected when this is selected.
	ClaimExpiry ClaimCode = 1 << iota
	// ClaimNotBefore rejects tokens whose nbf is in the future (ErrNotYetValid).
	ClaimNotBefore
	// ClaimIssuedAt rejects tokens whose iat is in the future (ErrClaimMismatch "iat").
	ClaimIssuedAt
	// ClaimIssuer rejects tokens whose iss differs from the configured issuer.
	ClaimIssuer
	// ClaimAudience rejects tokens whose aud does not contain the configured audience.
	ClaimAudience
)

// DisableAll returns the selector that performs signature-only verification.
func DisableAll() ClaimCode { return 0 }

// Has reports whether every claim in c is selected.
func (c ClaimCode) Has(sel ClaimCode) bool { return c&sel == sel }

// ClaimPolicy bundles the claim selector with the expected values the
// selected claims are checked against. Issuer and Audience are only
// consulted when the matching ClaimCode bit is set. Leeway tolerates clock
// skew on the time-based claims.
type ClaimPolicy struct {
	Code     ClaimCode
	Issuer   string
	Audience string
	Leeway   time.Duration
}

// hmacAlgs is the closed set of accepted token algorithms. All are keyed by
// the single pre-agreed signing secret; there is no negotiation surface.
var hmacAlgs = []string{"HS256", "HS384", "HS512"}

// ValidateToken decodes tok, verifies its signature against secret and
// enforces the claims selected by policy. It is a pure function of
// (secret, tok, policy): no I/O, safe for arbitrary concurrent use.
//
// A token that does not parse is ErrMalformed; a signature that does not
// verify is ErrInvalidSignature; selected-claim failures map to ErrExpired,
// ErrNotYetValid and ErrClaimMismatch.
func ValidateToken(secret []byte, tok string, policy ClaimPolicy) error {
	if tok == "" {
		return fmt.Errorf("%w: empty token", ErrMalformed)
	}

	// Claim enforcement is selector-driven, so the parser's own claim
	// validation (which would reject an expired token unconditionally) is
	// switched off.
	parser := jwt.NewParser(
		jwt.WithValidMethods(hmacAlgs),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.Parse(tok, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return fmt.Errorf("%w: token parse failed: %v", ErrMalformed, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("%w: unexpected claims shape %T", ErrMalformed, parsed.Claims)
	}

	now := time.Now()

	if policy.Code.Has(ClaimExpiry) {
		exp, err := claims.GetExpirationTime()
		if err != nil {
			return fmt.Errorf("%w: exp claim: %v", ErrMalformed, err)
		}
		if exp == nil {
			return fmt.Errorf("%w: exp claim absent", ErrExpired)
		}
		if now.After(exp.Time.Add(policy.Leeway)) {
			return fmt.Errorf("%w: expired at %s", ErrExpired, exp.Time.Format(time.RFC3339))
		}
	}

	if policy.Code.Has(ClaimNotBefore) {
		nbf, err := claims.GetNotBefore()
		if err != nil {
			return fmt.Errorf("%w: nbf claim: %v", ErrMalformed, err)
		}
		if nbf != nil && now.Add(policy.Leeway).Before(nbf.Time) {
			return fmt.Errorf("%w: not valid before %s", ErrNotYetValid, nbf.Time.Format(time.RFC3339))
		}
	}

	if policy.Code.Has(ClaimIssuedAt) {
		iat, err := claims.GetIssuedAt()
		if err != nil {
			return fmt.Errorf("%w: iat claim: %v", ErrMalformed, err)
		}
		if iat != nil && iat.Time.After(now.Add(policy.Leeway)) {
			return fmt.Errorf("%w: iat is in the future", ErrClaimMismatch)
		}
	}

	if policy.Code.Has(ClaimIssuer) {
		iss, err := claims.GetIssuer()
		if err != nil {
			return fmt.Errorf("%w: iss claim: %v", ErrMalformed, err)
		}
		if iss != policy.Issuer {
			return fmt.Errorf("%w: iss %q, want %q", ErrClaimMismatch, iss, policy.Issuer)
		}
	}

	if policy.Code.Has(ClaimAudience) {
		if !audContains(claims["aud"], policy.Audience) {
			return fmt.Errorf("%w: aud does not include %q", ErrClaimMismatch, policy.Audience)
		}
	}

	return nil
}

// audContains handles the aud claim's string-or-array encoding.
func audContains(aud any, want string) bool {
	switch v := aud.(type) {
	case string:
		return v == want
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok && s == want {
				return true
			}
		}
	case []string:
		for _, s := range v {
			if s == want {
				return true
			}
		}
	}
	return false
}
