package authcore

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"
)

// Candidate is the ephemeral material an API-key validation is computed
// over. It is assembled fresh per request and never stored.
type Candidate struct {
	ResourcePath string
	Nonce        uint64
	Payload      any
}

// Message returns the canonical byte message the MAC covers: the resource
// path, the nonce in decimal ASCII, then the JSON serialization of the
// payload, concatenated in that fixed order. encoding/json writes object
// keys in sorted order, so the serialization is deterministic for any value
// tree produced by decoding JSON.
func (c Candidate) Message() ([]byte, error) {
	payload, err := json.Marshal(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload not serializable: %v", ErrMalformed, err)
	}
	var b bytes.Buffer
	b.WriteString(c.ResourcePath)
	b.WriteString(strconv.FormatUint(c.Nonce, 10))
	b.Write(payload)
	return b.Bytes(), nil
}

// Sign computes the HMAC-SHA256 of the canonical message with secret. It is
// exported so clients and tests produce signatures with the exact bytes the
// validator recomputes.
func (c Candidate) Sign(secret []byte) ([]byte, error) {
	msg, err := c.Message()
	if err != nil {
		return nil, err
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(msg)
	return mac.Sum(nil), nil
}

// Validate recomputes the MAC over the candidate and compares it to the
// supplied signature in constant time. A mismatch is ErrInvalidSignature.
func (c Candidate) Validate(secret, suppliedSig []byte) error {
	want, err := c.Sign(secret)
	if err != nil {
		return err
	}
	if !hmac.Equal(want, suppliedSig) {
		return fmt.Errorf("%w: api key signature mismatch", ErrInvalidSignature)
	}
	return nil
}
