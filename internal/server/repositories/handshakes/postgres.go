// Package handshakes provides PostgreSQL-backed storage for transient
// pairing handshake records. Every mutating statement is conditional on
// state and expiry, so the single-delivery and bounded-lifetime invariants
// hold under concurrent callers without table locks.
package handshakes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
)

// PostgresRepository implements handshake storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores a freshly initiated handshake record.
func (r *PostgresRepository) Create(ctx context.Context, hs *models.Handshake) error {
	query := `
		INSERT INTO handshakes (id, algorithm, client_public_key, server_public_key, server_private_key, state, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		hs.ID, hs.Algorithm, hs.ClientPublicKey, hs.ServerPublicKey, hs.ServerPrivateKey,
		hs.State, hs.CreatedAt, hs.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the raw record regardless of state or expiry. Callers that
// enforce lifecycle rules use the conditional operations below; Get exists
// for error classification and tests.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Handshake, error) {
	query := `
		SELECT id, algorithm, client_public_key, server_public_key, server_private_key,
		       payload, payload_iv, state, created_at, expires_at
		FROM handshakes
		WHERE id = $1
	`
	hs := &models.Handshake{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&hs.ID, &hs.Algorithm, &hs.ClientPublicKey, &hs.ServerPublicKey, &hs.ServerPrivateKey,
		&hs.Payload, &hs.PayloadIV, &hs.State, &hs.CreatedAt, &hs.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return hs, nil
}

// AttachPayload attaches the encrypted payload and moves the record to
// PAYLOAD_DELIVERED, but only while it is unexpired and has not already
// received a payload. A zero-row update is classified by re-reading the row.
func (r *PostgresRepository) AttachPayload(ctx context.Context, id string, payload, iv []byte, now time.Time) error {
	query := `
		UPDATE handshakes
		SET payload = $2, payload_iv = $3, state = $4
		WHERE id = $1 AND state IN ($5, $6) AND expires_at > $7
	`
	res, err := r.db.ExecContext(ctx, query, id, payload, iv,
		models.HandshakePayloadDelivered, models.HandshakeInitiated, models.HandshakeKeyExchanged, now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		return nil
	}
	return r.classifyFailure(ctx, id, now)
}

// Consume atomically reads the payload and transitions the record to
// CONSUMED. The single conditional UPDATE is the compare-and-transition
// primitive guaranteeing at-most-one successful retrieval: of N concurrent
// callers racing for the same id, exactly one statement matches the
// PAYLOAD_DELIVERED row.
func (r *PostgresRepository) Consume(ctx context.Context, id string, now time.Time) ([]byte, []byte, error) {
	query := `
		UPDATE handshakes
		SET state = $2
		WHERE id = $1 AND state = $3 AND expires_at > $4
		RETURNING payload, payload_iv
	`
	var payload, iv []byte
	err := r.db.QueryRowContext(ctx, query, id,
		models.HandshakeConsumed, models.HandshakePayloadDelivered, now).Scan(&payload, &iv)
	if err == nil {
		return payload, iv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("db error: %w", err)
	}
	return nil, nil, r.classifyFailure(ctx, id, now)
}

// DeleteExpired physically removes records past their TTL. Correctness never
// depends on this sweep; expiry is enforced on every read path.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM handshakes
		WHERE expires_at <= $1
	`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// classifyFailure explains why a conditional transition matched no row.
// Expiry is checked before state so a consumed-then-expired record still
// reports ErrorExpired, matching the read-path rule that no operation ever
// succeeds on an expired record.
func (r *PostgresRepository) classifyFailure(ctx context.Context, id string, now time.Time) error {
	hs, err := r.Get(ctx, id)
	if err != nil {
		return err // includes common.ErrorNotFound
	}
	if hs.Expired(now) {
		return common.ErrorExpired
	}
	if hs.State == models.HandshakeConsumed {
		return common.ErrorAlreadyConsumed
	}
	return common.ErrorInvalidState
}
