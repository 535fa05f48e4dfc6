// Package noncestore defines the nonce-lookup capability API-key validation
// depends on, plus pluggable backends (memory, redisnonce) a caller can own.
//
// The nonce store is the source of truth for "what nonce is expected now"
// for each API key. The validator only ever reads through a Lookup; it never
// advances or invalidates nonces. The discipline is must-equal: Lookup
// returns the exact nonce the client has to present, and after a successful
// validation the store owner advances it (both bundled backends expose
// Advance, which bumps to nonce+1) so a replayed signature stops verifying.
package noncestore

import "context"

// Lookup resolves the expected nonce for an API key. ok is false when the
// key is unknown, which the validator reports as an invalid credential.
// Implementations must be safe for concurrent use and should treat their own
// failures (for example an unreachable backend) as "unknown key" rather than
// panicking; the validator treats the call as a black box.
type Lookup func(ctx context.Context, apiKey string) (nonce uint64, ok bool)
