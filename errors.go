package authcore

import "errors"

// Credential rejections. All are surfaced to the caller as a rejected
// request; none are fatal to the process. Detail is attached by wrapping
// with %w, so callers match with errors.Is.
var (
	// ErrMissingField indicates an expected header or frame field is absent.
	ErrMissingField = errors.New("authcore: missing field")

	// ErrMalformed indicates a field is present but not decodable as
	// required (wrong JSON type, undecodable signature encoding, token that
	// does not parse as a JWT).
	ErrMalformed = errors.New("authcore: malformed field")

	// ErrInvalidRequestShape indicates a structured frame was not the
	// expected object shape.
	ErrInvalidRequestShape = errors.New("authcore: invalid request shape")

	// ErrInvalidSignature indicates a cryptographic check failed: the JWT
	// signature did not verify, or the API-key MAC did not match.
	ErrInvalidSignature = errors.New("authcore: invalid signature")

	// ErrExpired indicates the token's expiry claim is in the past. Only
	// returned when ClaimExpiry is selected.
	ErrExpired = errors.New("authcore: token expired")

	// ErrNotYetValid indicates the token's not-before claim is in the
	// future. Only returned when ClaimNotBefore is selected.
	ErrNotYetValid = errors.New("authcore: token not yet valid")

	// ErrClaimMismatch indicates a selected claim did not match its
	// configured expected value; the wrapped detail names the claim.
	ErrClaimMismatch = errors.New("authcore: claim mismatch")

	// ErrInvalidCredential indicates the presented API key is not known to
	// the nonce store.
	ErrInvalidCredential = errors.New("authcore: invalid credential")
)

// ErrMisconfigured reports a programmer error: an impossible location
// template, a mode missing required field templates, or a mode paired with a
// request shape it cannot read. It is detected at construction where
// feasible and loudly at dispatch otherwise, and is deliberately distinct
// from the credential rejections above so that integration faults are never
// reported to end users as "unauthorized".
var ErrMisconfigured = errors.New("authcore: misconfigured")
