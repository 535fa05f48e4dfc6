package authcore

import (
	"fmt"
	"strings"
)

// TokenMarker is the placeholder that must appear exactly once in a header
// location template, standing in for the credential itself. The literal text
// around it becomes the prefix/suffix boundaries stripped at extraction.
const TokenMarker = "{token}"

// Location describes where the primary credential lives in a request. It is
// a closed set: HeaderLocation for header-carried credentials and
// FrameLocation for fields of a structured frame.
type Location interface {
	location()
}

// HeaderLocation names a header field and the literal boundary text
// surrounding the token within its value, e.g. field "Authorization" with
// prefix "Bearer ". Immutable once constructed.
type HeaderLocation struct {
	Field string

	prefix string
	suffix string
}

func (*HeaderLocation) location() {}

// NewHeaderLocation parses a boundary template into a HeaderLocation. The
// template must contain TokenMarker exactly once; the text before the marker
// becomes the prefix boundary and the text after it the suffix boundary
// (empty text means no boundary on that side).
//
//	NewHeaderLocation("Authorization", "Bearer {token}") // prefix "Bearer "
//	NewHeaderLocation("Authorization", "{token} Key")    // suffix " Key"
//
// A template with zero or duplicate markers is rejected with
// ErrMisconfigured.
func NewHeaderLocation(field, template string) (*HeaderLocation, error) {
	i := strings.Index(template, TokenMarker)
	if i < 0 {
		return nil, fmt.Errorf("%w: header template %q lacks the %s marker", ErrMisconfigured, template, TokenMarker)
	}
	rest := template[i+len(TokenMarker):]
	if strings.Contains(rest, TokenMarker) {
		return nil, fmt.Errorf("%w: header template %q contains %s more than once", ErrMisconfigured, template, TokenMarker)
	}
	return &HeaderLocation{Field: field, prefix: template[:i], suffix: rest}, nil
}

// Bounds returns the prefix and suffix boundary literals parsed from the
// template. An empty string means no boundary on that side.
func (l *HeaderLocation) Bounds() (prefix, suffix string) {
	return l.prefix, l.suffix
}

// FrameLocation names the field of a structured frame holding the
// credential.
type FrameLocation struct {
	Field string
}

func (FrameLocation) location() {}

// FieldSet names the three frame fields API-key mode reads: the API key
// itself, the request signature, and the signed payload. All three are
// required; APIKeyMode construction rejects incomplete sets.
type FieldSet struct {
	Key     string
	Sign    string
	Payload string
}

func (f FieldSet) validate() error {
	if f.Key == "" || f.Sign == "" || f.Payload == "" {
		return fmt.Errorf("%w: api key mode requires key, sign and payload field names (got %+v)", ErrMisconfigured, f)
	}
	return nil
}
