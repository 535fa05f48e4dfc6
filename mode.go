package authcore

import (
	"context"
	"encoding/hex"
	"fmt"

	"authcore/noncestore"
)

// Mode is the closed set of authentication schemes: JWTMode, APIKeyMode and
// NoneMode. A Mode is immutable once constructed and may be shared by any
// number of concurrent validations; Validate performs no mutation and the
// only call that may touch the outside world is the injected nonce lookup.
type Mode interface {
	// Validate decides whether req carries valid credentials. A nil return
	// admits the request; otherwise the error wraps one of the package
	// sentinels. ctx is passed through to the nonce lookup only.
	Validate(ctx context.Context, req Request) error

	mode()
}

// NoneMode performs no authentication; every request is admitted.
type NoneMode struct{}

func (NoneMode) mode() {}

// Validate implements Mode.
func (NoneMode) Validate(context.Context, Request) error { return nil }

// JWTMode validates a bearer token against a shared signing secret, with
// claim enforcement driven by the ClaimPolicy selector.
type JWTMode struct {
	location Location
	secret   []byte
	policy   ClaimPolicy
}

func (*JWTMode) mode() {}

// NewJWTMode builds a JWT mode reading its token from loc. The location and
// a non-empty secret are required.
func NewJWTMode(loc Location, secret []byte, policy ClaimPolicy) (*JWTMode, error) {
	if loc == nil {
		return nil, fmt.Errorf("%w: jwt mode requires a location", ErrMisconfigured)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: jwt mode requires a signing secret", ErrMisconfigured)
	}
	return &JWTMode{location: loc, secret: secret, policy: policy}, nil
}

// DefaultJWT builds the conventional bearer-token mode: the token in the
// Authorization header behind a "Bearer " prefix, signature-only
// verification.
func DefaultJWT(secret []byte) *JWTMode {
	loc, err := NewHeaderLocation("Authorization", "Bearer "+TokenMarker)
	if err != nil {
		panic(err) // static template, cannot fail
	}
	return &JWTMode{location: loc, secret: secret}
}

// Validate implements Mode. The location variant determines which request
// shape is readable: a header location reads HeaderRequest, a frame location
// reads FrameRequest. Any other pairing means the transport was wired to the
// wrong mode and fails with ErrMisconfigured rather than an auth rejection.
func (m *JWTMode) Validate(ctx context.Context, req Request) error {
	var token string
	switch loc := m.location.(type) {
	case *HeaderLocation:
		hr, ok := req.(HeaderRequest)
		if !ok {
			return fmt.Errorf("%w: header location cannot read a %T; check your transport wiring", ErrMisconfigured, req)
		}
		t, err := loc.Extract(hr.Header)
		if err != nil {
			return err
		}
		token = t
	case FrameLocation:
		fr, ok := req.(FrameRequest)
		if !ok {
			return fmt.Errorf("%w: frame location cannot read a %T; check your transport wiring", ErrMisconfigured, req)
		}
		t, err := extractFrameField(loc.Field, fr.Frame)
		if err != nil {
			return err
		}
		token = t
	default:
		return fmt.Errorf("%w: unsupported location %T", ErrMisconfigured, m.location)
	}
	return ValidateToken(m.secret, token, m.policy)
}

// APIKeyMode validates structured frames carrying an API key and an
// HMAC-SHA256 signature over (resource path, nonce, payload). The nonce
// lookup is an injected capability owned by the caller's nonce store; this
// mode only ever reads through it.
type APIKeyMode struct {
	fields       FieldSet
	secret       []byte
	resourcePath string
	nonces       noncestore.Lookup
}

func (*APIKeyMode) mode() {}

// NewAPIKeyMode builds an API-key mode. All three field names, a non-empty
// secret and a nonce lookup are required; missing pieces are a construction
// error, not a per-request one.
func NewAPIKeyMode(fields FieldSet, secret []byte, resourcePath string, nonces noncestore.Lookup) (*APIKeyMode, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: api key mode requires a signing secret", ErrMisconfigured)
	}
	if nonces == nil {
		return nil, fmt.Errorf("%w: api key mode requires a nonce lookup", ErrMisconfigured)
	}
	return &APIKeyMode{fields: fields, secret: secret, resourcePath: resourcePath, nonces: nonces}, nil
}

// Validate implements Mode. API-key signing covers the whole structured
// payload, so only FrameRequest is readable; a HeaderRequest is a wiring
// fault.
func (m *APIKeyMode) Validate(ctx context.Context, req Request) error {
	fr, ok := req.(FrameRequest)
	if !ok {
		return fmt.Errorf("%w: api key mode cannot read a %T; check your transport wiring", ErrMisconfigured, req)
	}
	obj, ok := fr.Frame.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: frame must be an object, got %T", ErrInvalidRequestShape, fr.Frame)
	}

	apiKey, err := extractFrameField(m.fields.Key, fr.Frame)
	if err != nil {
		return err
	}
	sigHex, err := extractFrameField(m.fields.Sign, fr.Frame)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return fmt.Errorf("%w: frame field %q is not hex: %v", ErrMalformed, m.fields.Sign, err)
	}
	payload, ok := obj[m.fields.Payload]
	if !ok {
		return fmt.Errorf("%w: frame field %q", ErrMissingField, m.fields.Payload)
	}

	nonce, ok := m.nonces(ctx, apiKey)
	if !ok {
		return fmt.Errorf("%w: unknown api key", ErrInvalidCredential)
	}

	return Candidate{
		ResourcePath: m.resourcePath,
		Nonce:        nonce,
		Payload:      payload,
	}.Validate(m.secret, sig)
}

var (
	_ Mode = NoneMode{}
	_ Mode = (*JWTMode)(nil)
	_ Mode = (*APIKeyMode)(nil)
)
