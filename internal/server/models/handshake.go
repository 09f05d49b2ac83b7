package models

import (
	"time"

	"github.com/snipvault/snipvault/internal/keys"
)

// HandshakeState is the lifecycle state of a pairing handshake record.
type HandshakeState string

const (
	HandshakeInitiated        HandshakeState = "INITIATED"
	HandshakeKeyExchanged     HandshakeState = "KEY_EXCHANGED"
	HandshakePayloadDelivered HandshakeState = "PAYLOAD_DELIVERED"
	HandshakeConsumed         HandshakeState = "CONSUMED"
)

// Handshake is a transient key-exchange record relayed between two devices.
// The server generates an ephemeral key pair per handshake but stays blind to
// the shared secret; the record only enforces single delivery and bounded
// lifetime. ExpiresAt is immutable once set.
type Handshake struct {
	ID               string
	Algorithm        keys.Algorithm
	ClientPublicKey  []byte
	ServerPublicKey  []byte
	ServerPrivateKey []byte
	Payload          []byte
	PayloadIV        []byte
	State            HandshakeState
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// Expired reports whether the record is past its TTL at the given instant.
func (h *Handshake) Expired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}
