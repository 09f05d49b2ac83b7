// Package devicekeys provides the PostgreSQL-backed device key registry:
// one row of public key material per (user, device), upserted on
// registration so key rotation replaces rather than appends.
package devicekeys

import (
	"context"
	"fmt"

	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
)

// PostgresRepository implements device key storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts or replaces the key record for (UserID, DeviceID). The
// ON CONFLICT clause makes concurrent registrations of the same device
// serialize on the row: last write wins, no lost updates.
func (r *PostgresRepository) Upsert(ctx context.Context, key *models.DeviceKey) error {
	query := `
		INSERT INTO device_keys (user_id, device_id, algorithm, enc_public_key, sign_public_key, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, device_id)
		DO UPDATE SET
			algorithm = EXCLUDED.algorithm,
			enc_public_key = EXCLUDED.enc_public_key,
			sign_public_key = EXCLUDED.sign_public_key,
			is_default = EXCLUDED.is_default,
			updated_at = now();
	`
	if _, err := r.db.ExecContext(ctx, query,
		key.UserID, key.DeviceID, key.Algorithm, key.EncryptionPubKey, key.SigningPubKey, key.IsDefault); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListForUser returns all of one user's device keys ordered by device_id.
// An empty result is not an error.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.DeviceKey, error) {
	query := `
		SELECT user_id, device_id, algorithm, enc_public_key, sign_public_key, is_default, created_at, updated_at
		FROM device_keys
		WHERE user_id = $1
		ORDER BY device_id
	`
	return r.selectKeys(ctx, query, userID)
}

// ListForUsers returns the device keys of every listed user, ordered by
// (user_id, device_id) so recipient-set construction is reproducible.
func (r *PostgresRepository) ListForUsers(ctx context.Context, userIDs []string) ([]*models.DeviceKey, error) {
	query := `
		SELECT user_id, device_id, algorithm, enc_public_key, sign_public_key, is_default, created_at, updated_at
		FROM device_keys
		WHERE user_id = ANY($1)
		ORDER BY user_id, device_id
	`
	return r.selectKeys(ctx, query, userIDs)
}

// Delete removes one device's record. Deleting an absent record is a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, userID, deviceID string) error {
	query := `
		DELETE FROM device_keys
		WHERE user_id = $1 AND device_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, deviceID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ClearForUser removes all of a user's device keys (account deletion path).
func (r *PostgresRepository) ClearForUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM device_keys
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) selectKeys(ctx context.Context, query string, args ...any) ([]*models.DeviceKey, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select device keys: %w", err)
	}
	defer rows.Close()

	var result []*models.DeviceKey
	for rows.Next() {
		var item models.DeviceKey
		if err := rows.Scan(
			&item.UserID, &item.DeviceID, &item.Algorithm, &item.EncryptionPubKey,
			&item.SigningPubKey, &item.IsDefault, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
