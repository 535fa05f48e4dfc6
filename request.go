package authcore

import "net/http"

// Request is the closed set of inbound shapes a Mode can validate. Values
// are constructed per validation call and borrowed for its duration; nothing
// in this package retains them.
type Request interface {
	request()
}

// HeaderRequest wraps the header map of an HTTP-style request.
type HeaderRequest struct {
	Header http.Header
}

func (HeaderRequest) request() {}

// FrameRequest wraps a decoded structured frame: a generic JSON value tree
// (object/array/string/number/bool/nil) as produced by encoding/json into
// an any.
type FrameRequest struct {
	Frame any
}

func (FrameRequest) request() {}
