package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/logging"
	"github.com/snipvault/snipvault/internal/server/models"
	"github.com/snipvault/snipvault/internal/server/repositories/repomanager"
)

// HandshakeService drives the device pairing flow. The server relays key
// material and ciphertext between two devices but never learns the shared
// secret: its whole job is enforcing single delivery and the fixed TTL.
type HandshakeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	// now is a seam for expiry tests.
	now func() time.Time
}

// NewHandshakeService constructs a HandshakeService using repositories.
func NewHandshakeService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *HandshakeService {
	return &HandshakeService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "handshake"),
		now:         time.Now,
	}
}

// Initiate allocates an unguessable handshake id, generates a fresh server
// key pair on the client's curve, and stores the record with
// expiresAt = createdAt + the protocol TTL. The record is persisted in
// KEY_EXCHANGED state since the server key pair is attached at creation.
func (s *HandshakeService) Initiate(ctx context.Context, clientKey keys.PublicKeyJWK) (string, keys.PublicKeyJWK, error) {
	// The client's JWK fixes the algorithm; parse rejects anything outside
	// the supported set.
	var alg keys.Algorithm
	switch {
	case clientKey.Kty == "EC" && clientKey.Crv == "P-256":
		alg = keys.AlgorithmECDHP256
	case clientKey.Kty == "OKP" && clientKey.Crv == "X25519":
		alg = keys.AlgorithmX25519
	default:
		return "", keys.PublicKeyJWK{}, fmt.Errorf("%w: unsupported kty=%q crv=%q",
			common.ErrorInvalidKeyMaterial, clientKey.Kty, clientKey.Crv)
	}

	clientRaw, err := keys.ParseEncryptionKey(alg, clientKey)
	if err != nil {
		return "", keys.PublicKeyJWK{}, err
	}

	serverPair, err := keys.GenerateKeyPair(alg)
	if err != nil {
		return "", keys.PublicKeyJWK{}, fmt.Errorf("error generating server key pair: %w", err)
	}

	createdAt := s.now()
	record := &models.Handshake{
		ID:               uuid.NewString(),
		Algorithm:        alg,
		ClientPublicKey:  clientRaw,
		ServerPublicKey:  serverPair.Public,
		ServerPrivateKey: serverPair.Private,
		State:            models.HandshakeKeyExchanged,
		CreatedAt:        createdAt,
		ExpiresAt:        createdAt.Add(common.HandshakeTTL),
	}

	repo := s.repomanager.Handshakes(s.db)
	if err := repo.Create(ctx, record); err != nil {
		return "", keys.PublicKeyJWK{}, fmt.Errorf("error creating handshake: %w", err)
	}

	serverJWK, err := keys.MarshalJWK(alg, serverPair.Public)
	if err != nil {
		return "", keys.PublicKeyJWK{}, common.ErrorInternal
	}
	return record.ID, serverJWK, nil
}

// AttachPayload delivers the encrypted payload into an unexpired handshake
// that has not yet received one. Out-of-order delivery fails with
// common.ErrorInvalidState; a dead record fails NotFound or Expired.
func (s *HandshakeService) AttachPayload(ctx context.Context, id string, payload, iv []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", common.ErrorInvalidState)
	}
	repo := s.repomanager.Handshakes(s.db)
	return repo.AttachPayload(ctx, id, payload, iv, s.now())
}

// Retrieve reads the payload and consumes the handshake in one atomic
// transition. Of N concurrent calls for the same id exactly one receives the
// payload; the rest observe common.ErrorAlreadyConsumed. After the TTL the
// payload is unreachable regardless of state.
func (s *HandshakeService) Retrieve(ctx context.Context, id string) (payload, iv []byte, err error) {
	repo := s.repomanager.Handshakes(s.db)
	return repo.Consume(ctx, id, s.now())
}

// SweepExpired removes expired handshake rows. It only reclaims storage:
// every read path already refuses expired records.
func (s *HandshakeService) SweepExpired(ctx context.Context) (int64, error) {
	repo := s.repomanager.Handshakes(s.db)
	return repo.DeleteExpired(ctx, s.now())
}

// RunSweeper deletes expired records on the given interval until the context
// is cancelled.
func (s *HandshakeService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				s.logger.Warn(ctx, "handshake sweep failed", "error", err.Error())
				continue
			}
			if n > 0 {
				s.logger.Info(ctx, "swept expired handshakes", "count", n)
			}
		}
	}
}
