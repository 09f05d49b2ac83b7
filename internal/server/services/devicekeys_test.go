package services

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/server/models"
	devicekeysrepo "github.com/snipvault/snipvault/internal/server/repositories/devicekeys"
	handshakesrepo "github.com/snipvault/snipvault/internal/server/repositories/handshakes"
	snippetsrepo "github.com/snipvault/snipvault/internal/server/repositories/snippets"
	teamsrepo "github.com/snipvault/snipvault/internal/server/repositories/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- shared fakes ---

// fakeDeviceKeysRepo is an in-memory registry keeping upsert semantics.
type fakeDeviceKeysRepo struct {
	mu   sync.Mutex
	rows map[string]*models.DeviceKey // key: userID + "/" + deviceID

	err error // when set, every call fails with it
}

func newFakeDeviceKeysRepo() *fakeDeviceKeysRepo {
	return &fakeDeviceKeysRepo{rows: make(map[string]*models.DeviceKey)}
}

func (f *fakeDeviceKeysRepo) Upsert(ctx context.Context, key *models.DeviceKey) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *key
	f.rows[key.UserID+"/"+key.DeviceID] = &cp
	return nil
}

func (f *fakeDeviceKeysRepo) ListForUser(ctx context.Context, userID string) ([]*models.DeviceKey, error) {
	return f.ListForUsers(ctx, []string{userID})
}

func (f *fakeDeviceKeysRepo) ListForUsers(ctx context.Context, userIDs []string) ([]*models.DeviceKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.DeviceKey
	// stable (userID, deviceID) ordering like the SQL implementation
	for _, uid := range userIDs {
		var forUser []*models.DeviceKey
		for _, row := range f.rows {
			if row.UserID == uid {
				forUser = append(forUser, row)
			}
		}
		for i := 0; i < len(forUser); i++ {
			for j := i + 1; j < len(forUser); j++ {
				if forUser[j].DeviceID < forUser[i].DeviceID {
					forUser[i], forUser[j] = forUser[j], forUser[i]
				}
			}
		}
		result = append(result, forUser...)
	}
	return result, nil
}

func (f *fakeDeviceKeysRepo) Delete(ctx context.Context, userID, deviceID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, userID+"/"+deviceID)
	return nil
}

func (f *fakeDeviceKeysRepo) ClearForUser(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, row := range f.rows {
		if row.UserID == userID {
			delete(f.rows, k)
		}
	}
	return nil
}

type fakeRepoManager struct {
	dk *fakeDeviceKeysRepo
	hs *fakeHandshakesRepo
	tm *fakeTeamsRepo
	sn *fakeSnippetsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) DeviceKeys(db dbx.DBTX) devicekeysrepo.Repository {
	return m.dk
}
func (m *fakeRepoManager) Handshakes(db dbx.DBTX) handshakesrepo.Repository {
	return m.hs
}
func (m *fakeRepoManager) Teams(db dbx.DBTX) teamsrepo.Repository {
	return m.tm
}
func (m *fakeRepoManager) Snippets(db dbx.DBTX) snippetsrepo.Repository {
	return m.sn
}

func validP256JWK(t *testing.T) keys.PublicKeyJWK {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	raw := priv.PublicKey().Bytes()
	return keys.PublicKeyJWK{
		Kty: "EC",
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(raw[1:33]),
		Y:   base64.RawURLEncoding.EncodeToString(raw[33:]),
	}
}

// --- tests ---

func TestDeviceKeyService_RegisterThenList(t *testing.T) {
	rm := &fakeRepoManager{dk: newFakeDeviceKeysRepo()}
	s := NewDeviceKeyService(nil, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
	require.NoError(t, err)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "d1", list[0].DeviceID)
	assert.Equal(t, keys.AlgorithmECDHP256, list[0].Algorithm)
}

func TestDeviceKeyService_RegisterTwiceReplacesKey(t *testing.T) {
	rm := &fakeRepoManager{dk: newFakeDeviceKeysRepo()}
	s := NewDeviceKeyService(nil, rm)
	ctx := context.Background()

	first, err := s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
	require.NoError(t, err)
	second, err := s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, true)
	require.NoError(t, err)
	require.NotEqual(t, first.EncryptionPubKey, second.EncryptionPubKey)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1, "re-registration must replace, not append")
	assert.Equal(t, second.EncryptionPubKey, list[0].EncryptionPubKey)
	assert.True(t, list[0].IsDefault)
}

func TestDeviceKeyService_RegisterRejectsBadKeyMaterial(t *testing.T) {
	rm := &fakeRepoManager{dk: newFakeDeviceKeysRepo()}
	s := NewDeviceKeyService(nil, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "u1", "d1", keys.Algorithm("RSA-OAEP"), validP256JWK(t), nil, false)
	assert.ErrorIs(t, err, common.ErrorInvalidKeyMaterial)

	_, err = s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256,
		keys.PublicKeyJWK{Kty: "EC", Crv: "P-256", X: "!!", Y: "!!"}, nil, false)
	assert.ErrorIs(t, err, common.ErrorInvalidKeyMaterial)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list, "rejected material must never reach the registry")
}

func TestDeviceKeyService_DeleteIsIdempotent(t *testing.T) {
	rm := &fakeRepoManager{dk: newFakeDeviceKeysRepo()}
	s := NewDeviceKeyService(nil, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "u1", "d1"))
	require.NoError(t, s.Delete(ctx, "u1", "d1"), "deleting an absent record is a no-op")

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeviceKeyService_ClearForUser(t *testing.T) {
	rm := &fakeRepoManager{dk: newFakeDeviceKeysRepo()}
	s := NewDeviceKeyService(nil, rm)
	ctx := context.Background()

	for _, d := range []string{"d1", "d2", "d3"} {
		_, err := s.Register(ctx, "u1", d, keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
		require.NoError(t, err)
	}
	_, err := s.Register(ctx, "u2", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
	require.NoError(t, err)

	require.NoError(t, s.ClearForUser(ctx, "u1"))

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	other, err := s.List(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1, "clearing one user must not touch another")
}

func TestDeviceKeyService_SurfacesRepoErrors(t *testing.T) {
	repo := newFakeDeviceKeysRepo()
	repo.err = errors.New("db down")
	rm := &fakeRepoManager{dk: repo}
	s := NewDeviceKeyService(nil, rm)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := s.Register(ctx, "u1", "d1", keys.AlgorithmECDHP256, validP256JWK(t), nil, false)
	assert.Error(t, err)
}
