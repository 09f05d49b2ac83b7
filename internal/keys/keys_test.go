package keys

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p256JWK(t *testing.T) PublicKeyJWK {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	raw := priv.PublicKey().Bytes()
	return PublicKeyJWK{
		Kty: "EC",
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(raw[1:33]),
		Y:   base64.RawURLEncoding.EncodeToString(raw[33:]),
	}
}

func x25519JWK(t *testing.T) PublicKeyJWK {
	t.Helper()
	priv, err := ecdh.X25519().GenerateKey(rand.Reader)
	require.NoError(t, err)
	return PublicKeyJWK{
		Kty: "OKP",
		Crv: "X25519",
		X:   base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
	}
}

func TestParseEncryptionKey_P256RoundTrip(t *testing.T) {
	jwk := p256JWK(t)

	raw, err := ParseEncryptionKey(AlgorithmECDHP256, jwk)
	require.NoError(t, err)
	assert.Len(t, raw, 65)
	assert.EqualValues(t, 0x04, raw[0])

	back, err := MarshalJWK(AlgorithmECDHP256, raw)
	require.NoError(t, err)
	assert.Equal(t, jwk, back)
}

func TestParseEncryptionKey_X25519RoundTrip(t *testing.T) {
	jwk := x25519JWK(t)

	raw, err := ParseEncryptionKey(AlgorithmX25519, jwk)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	back, err := MarshalJWK(AlgorithmX25519, raw)
	require.NoError(t, err)
	assert.Equal(t, jwk, back)
}

func TestParseEncryptionKey_Rejects(t *testing.T) {
	valid := p256JWK(t)

	tests := []struct {
		name string
		alg  Algorithm
		jwk  PublicKeyJWK
	}{
		{"unsupported algorithm", Algorithm("RSA-OAEP"), valid},
		{"algorithm mismatch", AlgorithmX25519, valid},
		{"unknown curve", AlgorithmECDHP256, PublicKeyJWK{Kty: "EC", Crv: "P-521", X: valid.X, Y: valid.Y}},
		{"bad base64", AlgorithmECDHP256, PublicKeyJWK{Kty: "EC", Crv: "P-256", X: "!!!", Y: valid.Y}},
		{"short coordinate", AlgorithmECDHP256, PublicKeyJWK{Kty: "EC", Crv: "P-256", X: "AAAA", Y: valid.Y}},
		{"point not on curve", AlgorithmECDHP256, PublicKeyJWK{
			Kty: "EC", Crv: "P-256",
			X: base64.RawURLEncoding.EncodeToString(make([]byte, 32)),
			Y: base64.RawURLEncoding.EncodeToString(make([]byte, 32)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEncryptionKey(tt.alg, tt.jwk)
			assert.ErrorIs(t, err, common.ErrorInvalidKeyMaterial)
		})
	}
}

func TestParseSigningKey(t *testing.T) {
	raw := make([]byte, 32)
	jwk := PublicKeyJWK{Kty: "OKP", Crv: "Ed25519", X: base64.RawURLEncoding.EncodeToString(raw)}

	got, err := ParseSigningKey(jwk)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = ParseSigningKey(PublicKeyJWK{Kty: "EC", Crv: "P-256", X: jwk.X})
	assert.True(t, errors.Is(err, common.ErrorInvalidKeyMaterial))
}

func TestParseJWK_InvalidJSON(t *testing.T) {
	_, err := ParseJWK([]byte("{not json"))
	assert.ErrorIs(t, err, common.ErrorInvalidKeyMaterial)
}

func TestGenerateKeyPair_MatchesClientCurve(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmECDHP256, AlgorithmX25519} {
		kp, err := GenerateKeyPair(alg)
		require.NoError(t, err)
		assert.Equal(t, alg, kp.Algorithm)
		assert.NotEmpty(t, kp.Public)
		assert.NotEmpty(t, kp.Private)

		// The public key must round-trip through the JWK form we hand back
		// to the initiating client.
		jwk, err := MarshalJWK(alg, kp.Public)
		require.NoError(t, err)
		raw, err := ParseEncryptionKey(alg, jwk)
		require.NoError(t, err)
		assert.Equal(t, kp.Public, raw)
	}

	_, err := GenerateKeyPair(Algorithm("DH-1024"))
	assert.ErrorIs(t, err, common.ErrorInvalidKeyMaterial)
}
