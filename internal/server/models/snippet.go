package models

import "time"

// Snippet is the server-side record of one shared snippet. Everything the
// server holds is ciphertext: the title envelope lives in the row, the body
// lives in object storage under BodyObjectKey.
type Snippet struct {
	ID              string
	OwnerID         string
	TeamID          string // empty for device-to-device shares
	TitleCiphertext []byte
	TitleNonce      []byte
	Algorithm       string
	BodyObjectKey   string
	CreatedAt       time.Time
}

// WrappedKey is one recipient's copy of a snippet's content key, wrapped
// against that recipient device's public key.
type WrappedKey struct {
	SnippetID string
	UserID    string
	DeviceID  string
	Key       []byte
}
