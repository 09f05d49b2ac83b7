// Package keys defines the algorithm-tagged public key material accepted by
// the device key registry and the pairing handshake. Keys arrive as JWK-shaped
// JSON and are validated at the boundary: unknown algorithms and malformed
// key shapes are rejected before they reach storage.
package keys

import (
	"crypto/ecdh"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/snipvault/snipvault/internal/common"
)

// Algorithm identifies a supported key agreement algorithm.
type Algorithm string

const (
	AlgorithmECDHP256 Algorithm = "ECDH-P-256"
	AlgorithmX25519   Algorithm = "X25519"
)

// Supported reports whether alg is in the supported set.
func Supported(alg Algorithm) bool {
	switch alg {
	case AlgorithmECDHP256, AlgorithmX25519:
		return true
	}
	return false
}

// PublicKeyJWK is the wire representation of a public key. Coordinates are
// base64url without padding, per RFC 7517.
type PublicKeyJWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y,omitempty"`
}

func (k PublicKeyJWK) curve() (ecdh.Curve, Algorithm, error) {
	switch {
	case k.Kty == "EC" && k.Crv == "P-256":
		return ecdh.P256(), AlgorithmECDHP256, nil
	case k.Kty == "OKP" && k.Crv == "X25519":
		return ecdh.X25519(), AlgorithmX25519, nil
	}
	return nil, "", fmt.Errorf("%w: unsupported kty=%q crv=%q", common.ErrorInvalidKeyMaterial, k.Kty, k.Crv)
}

func b64url(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// ParseEncryptionKey validates a JWK against the declared algorithm and
// returns the canonical raw encoding stored by the registry: the uncompressed
// point for P-256, the 32-byte u-coordinate for X25519.
func ParseEncryptionKey(alg Algorithm, jwk PublicKeyJWK) ([]byte, error) {
	if !Supported(alg) {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", common.ErrorInvalidKeyMaterial, alg)
	}
	curve, jwkAlg, err := jwk.curve()
	if err != nil {
		return nil, err
	}
	if jwkAlg != alg {
		return nil, fmt.Errorf("%w: key is %s, declared %s", common.ErrorInvalidKeyMaterial, jwkAlg, alg)
	}

	x, err := b64url(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("%w: bad x coordinate: %v", common.ErrorInvalidKeyMaterial, err)
	}

	var raw []byte
	switch alg {
	case AlgorithmECDHP256:
		y, err := b64url(jwk.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: bad y coordinate: %v", common.ErrorInvalidKeyMaterial, err)
		}
		if len(x) != 32 || len(y) != 32 {
			return nil, fmt.Errorf("%w: P-256 coordinates must be 32 bytes", common.ErrorInvalidKeyMaterial)
		}
		raw = make([]byte, 0, 65)
		raw = append(raw, 0x04)
		raw = append(raw, x...)
		raw = append(raw, y...)
	case AlgorithmX25519:
		raw = x
	}

	// NewPublicKey rejects points that are not on the curve.
	if _, err := curve.NewPublicKey(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidKeyMaterial, err)
	}
	return raw, nil
}

// ParseSigningKey validates an optional Ed25519 verification key and returns
// its raw 32-byte encoding.
func ParseSigningKey(jwk PublicKeyJWK) ([]byte, error) {
	if jwk.Kty != "OKP" || jwk.Crv != "Ed25519" {
		return nil, fmt.Errorf("%w: signing key must be OKP/Ed25519", common.ErrorInvalidKeyMaterial)
	}
	raw, err := b64url(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("%w: bad x coordinate: %v", common.ErrorInvalidKeyMaterial, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: Ed25519 key must be %d bytes", common.ErrorInvalidKeyMaterial, ed25519.PublicKeySize)
	}
	return raw, nil
}

// ParseJWK decodes a JSON-encoded JWK.
func ParseJWK(data []byte) (PublicKeyJWK, error) {
	var jwk PublicKeyJWK
	if err := json.Unmarshal(data, &jwk); err != nil {
		return PublicKeyJWK{}, fmt.Errorf("%w: %v", common.ErrorInvalidKeyMaterial, err)
	}
	return jwk, nil
}

// MarshalJWK encodes a raw public key back into its JWK form for transport.
func MarshalJWK(alg Algorithm, raw []byte) (PublicKeyJWK, error) {
	switch alg {
	case AlgorithmECDHP256:
		if len(raw) != 65 || raw[0] != 0x04 {
			return PublicKeyJWK{}, fmt.Errorf("%w: bad P-256 encoding", common.ErrorInvalidKeyMaterial)
		}
		return PublicKeyJWK{
			Kty: "EC",
			Crv: "P-256",
			X:   base64.RawURLEncoding.EncodeToString(raw[1:33]),
			Y:   base64.RawURLEncoding.EncodeToString(raw[33:]),
		}, nil
	case AlgorithmX25519:
		if len(raw) != 32 {
			return PublicKeyJWK{}, fmt.Errorf("%w: bad X25519 encoding", common.ErrorInvalidKeyMaterial)
		}
		return PublicKeyJWK{
			Kty: "OKP",
			Crv: "X25519",
			X:   base64.RawURLEncoding.EncodeToString(raw),
		}, nil
	}
	return PublicKeyJWK{}, fmt.Errorf("%w: unsupported algorithm %q", common.ErrorInvalidKeyMaterial, alg)
}

// MarshalSigningJWK encodes a raw Ed25519 verification key back into its JWK
// form for transport.
func MarshalSigningJWK(raw []byte) (PublicKeyJWK, error) {
	if len(raw) != ed25519.PublicKeySize {
		return PublicKeyJWK{}, fmt.Errorf("%w: Ed25519 key must be %d bytes", common.ErrorInvalidKeyMaterial, ed25519.PublicKeySize)
	}
	return PublicKeyJWK{
		Kty: "OKP",
		Crv: "Ed25519",
		X:   base64.RawURLEncoding.EncodeToString(raw),
	}, nil
}

// KeyPair is an ephemeral server-side key pair generated for one handshake.
// The private key never leaves the handshake record.
type KeyPair struct {
	Algorithm Algorithm
	Public    []byte
	Private   []byte
}

// GenerateKeyPair produces a fresh key pair matching the client's algorithm,
// so the two sides can run ECDH over the same curve.
func GenerateKeyPair(alg Algorithm) (*KeyPair, error) {
	var curve ecdh.Curve
	switch alg {
	case AlgorithmECDHP256:
		curve = ecdh.P256()
	case AlgorithmX25519:
		curve = ecdh.X25519()
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", common.ErrorInvalidKeyMaterial, alg)
	}

	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("key generation: %w", err)
	}
	return &KeyPair{
		Algorithm: alg,
		Public:    priv.PublicKey().Bytes(),
		Private:   priv.Bytes(),
	}, nil
}
