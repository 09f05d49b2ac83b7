package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on authenticated requests.
const AccessTokenHeaderName = "access_token"

// HandshakeTTL is the fixed lifetime of a pairing handshake record. It is a
// protocol constant, not a configuration knob: it bounds the attack window
// for an intercepted, unconsumed handshake id.
const HandshakeTTL = 5 * time.Minute

// BroadcastChannelPrefix is the single canonical prefix for relay channel
// names, e.g. "snipvault:snippet:created".
const BroadcastChannelPrefix = "snipvault:"
