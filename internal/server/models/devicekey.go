package models

import (
	"time"

	"github.com/snipvault/snipvault/internal/keys"
)

// DeviceKey is one device's registered public key material. At most one live
// row exists per (UserID, DeviceID); re-registration replaces it (key rotation).
type DeviceKey struct {
	UserID           string
	DeviceID         string
	Algorithm        keys.Algorithm
	EncryptionPubKey []byte
	SigningPubKey    []byte
	IsDefault        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
