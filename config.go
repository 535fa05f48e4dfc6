package authcore

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"

	"authcore/noncestore"
)

// EnvConfig describes a Mode in environment variables. Defaults can be
// loaded via envdecode; see NewModeFromEnv.
type EnvConfig struct {
	// Scheme selects the mode: "none", "jwt" or "apikey". ENV: AUTH_MODE
	Scheme string `env:"AUTH_MODE,default=none"`

	// Secret is the shared signing secret for jwt and apikey schemes.
	// ENV: AUTH_SIGNING_SECRET
	Secret string `env:"AUTH_SIGNING_SECRET"`

	// HeaderField and HeaderTemplate place the jwt credential in a header.
	// If FrameTokenField is set instead, the jwt is read from frames.
	HeaderField    string `env:"AUTH_HEADER_FIELD,default=Authorization"`
	HeaderTemplate string `env:"AUTH_HEADER_TEMPLATE,default=Bearer {token}"`

	// FrameTokenField, when non-empty, makes jwt mode read its token from
	// this field of a structured frame. ENV: AUTH_FRAME_TOKEN_FIELD
	FrameTokenField string `env:"AUTH_FRAME_TOKEN_FIELD"`

	// Frame field names for the apikey scheme.
	KeyField     string `env:"AUTH_APIKEY_FIELD,default=apikey"`
	SignField    string `env:"AUTH_SIGN_FIELD,default=sig"`
	PayloadField string `env:"AUTH_PAYLOAD_FIELD,default=data"`

	// ResourcePath is the URI path covered by apikey signatures.
	// ENV: AUTH_RESOURCE_PATH
	ResourcePath string `env:"AUTH_RESOURCE_PATH"`

	// Claim enforcement toggles for the jwt scheme. Issuer and Audience
	// enable their checks by being non-empty.
	CheckExpiry    bool          `env:"AUTH_CHECK_EXPIRY,default=false"`
	CheckNotBefore bool          `env:"AUTH_CHECK_NBF,default=false"`
	CheckIssuedAt  bool          `env:"AUTH_CHECK_IAT,default=false"`
	Issuer         string        `env:"AUTH_ISSUER"`
	Audience       string        `env:"AUTH_AUDIENCE"`
	Leeway         time.Duration `env:"AUTH_LEEWAY,default=0s"`
}

// NewModeFromEnv builds a Mode from the environment. The nonce lookup is
// the one capability that cannot come from the environment; it is required
// only when AUTH_MODE=apikey and may be nil otherwise.
func NewModeFromEnv(nonces noncestore.Lookup) (Mode, error) {
	var cfg EnvConfig
	// Defaults are provided via struct tags; semantic validation happens in
	// Mode, where missing pieces surface as ErrMisconfigured.
	_ = envdecode.Decode(&cfg)
	return cfg.Mode(nonces)
}

// Mode materializes the configuration into a validator.
func (c EnvConfig) Mode(nonces noncestore.Lookup) (Mode, error) {
	switch c.Scheme {
	case "", "none":
		return NoneMode{}, nil

	case "jwt":
		var loc Location
		if c.FrameTokenField != "" {
			loc = FrameLocation{Field: c.FrameTokenField}
		} else {
			hl, err := NewHeaderLocation(c.HeaderField, c.HeaderTemplate)
			if err != nil {
				return nil, err
			}
			loc = hl
		}
		return NewJWTMode(loc, []byte(c.Secret), c.claimPolicy())

	case "apikey":
		fields := FieldSet{Key: c.KeyField, Sign: c.SignField, Payload: c.PayloadField}
		return NewAPIKeyMode(fields, []byte(c.Secret), c.ResourcePath, nonces)

	default:
		return nil, fmt.Errorf("%w: unknown auth mode %q", ErrMisconfigured, c.Scheme)
	}
}

func (c EnvConfig) claimPolicy() ClaimPolicy {
	var code ClaimCode
	if c.CheckExpiry {
		code |= ClaimExpiry
	}
	if c.CheckNotBefore {
		code |= ClaimNotBefore
	}
	if c.CheckIssuedAt {
		code |= ClaimIssuedAt
	}
	if c.Issuer != "" {
		code |= ClaimIssuer
	}
	if c.Audience != "" {
		code |= ClaimAudience
	}
	return ClaimPolicy{Code: code, Issuer: c.Issuer, Audience: c.Audience, Leeway: c.Leeway}
}
