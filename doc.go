// Package authcore decides whether an inbound request carries valid
// credentials. It is transport agnostic: the same validator serves an HTTP
// handler (header-carried bearer tokens) and a structured message transport
// such as a websocket (credentials embedded in a decoded frame).
//
// The public surface intentionally stays small. A Mode bundles a credential
// scheme with the configuration describing where the credential lives; each
// validation call is a one-shot Validate(ctx, Request) that either succeeds
// or returns a typed rejection. The transport is responsible for building the
// Request from its own representation and for mapping sentinel errors into a
// protocol-appropriate "unauthorized" response.
//
// # Modes
//
// Three schemes are supported:
//
//   - JWTMode verifies a signed claim set against a single pre-agreed
//     HMAC signing secret. Claim enforcement is opt-in per claim via a
//     ClaimCode selector; the default checks nothing beyond the signature.
//   - APIKeyMode recomputes an HMAC-SHA256 over a canonical message (resource
//     path, nonce, payload) and compares it to the signature supplied in the
//     frame. Replay protection comes from a caller-injected nonce lookup; the
//     validator itself never owns or mutates nonce state.
//   - NoneMode accepts everything.
//
// Example:
//
//	mode := authcore.DefaultJWT(secret) // Authorization: Bearer {token}
//	err := mode.Validate(r.Context(), authcore.HeaderRequest{Header: r.Header})
//	if errors.Is(err, authcore.ErrInvalidSignature) { /* 401 */ }
//
// # Errors
//
// Every rejection is one of the package sentinels (ErrMissingField,
// ErrMalformed, ErrInvalidRequestShape, ErrInvalidSignature, ErrExpired,
// ErrNotYetValid, ErrClaimMismatch, ErrInvalidCredential), wrapped with
// human-readable detail and matched with errors.Is. ErrMisconfigured is
// different in kind: it reports a wiring mistake (for example an APIKeyMode
// handed a header request) and must never be surfaced as an ordinary
// authentication failure.
package authcore
