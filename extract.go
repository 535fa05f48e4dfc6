package authcore

import (
	"fmt"
	"net/http"
	"strings"
)

// Extract pulls the raw credential out of a header map. A missing header is
// ErrMissingField. Boundary stripping is best effort: each boundary is
// trimmed as a single literal if present and left alone otherwise, so a
// plausible-but-unbounded value flows on to signature validation instead of
// being rejected early.
func (l *HeaderLocation) Extract(h http.Header) (string, error) {
	vs, ok := h[http.CanonicalHeaderKey(l.Field)]
	if !ok || len(vs) == 0 {
		return "", fmt.Errorf("%w: header %q", ErrMissingField, l.Field)
	}
	token := vs[0]
	if l.prefix != "" {
		token = strings.TrimPrefix(token, l.prefix)
	}
	if l.suffix != "" {
		token = strings.TrimSuffix(token, l.suffix)
	}
	return token, nil
}

// extractFrameField reads a string-typed field from a decoded frame. The
// frame must be an object; the field must exist and hold a string.
func extractFrameField(field string, frame any) (string, error) {
	obj, ok := frame.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: frame must be an object, got %T", ErrInvalidRequestShape, frame)
	}
	v, ok := obj[field]
	if !ok {
		return "", fmt.Errorf("%w: frame field %q", ErrMissingField, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: frame field %q is not a string", ErrMalformed, field)
	}
	return s, nil
}
