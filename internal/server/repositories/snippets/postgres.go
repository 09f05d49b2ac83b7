// Package snippets provides PostgreSQL-backed storage for snippet envelopes
// and their per-recipient wrapped keys. Ciphertext bodies live in object
// storage; rows here hold metadata and small ciphertext fields only.
package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
)

// PostgresRepository implements snippet storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the snippet row and its wrapped keys. Callers that need the
// inserts to be atomic bind the repository to a transaction via dbx.WithTx.
func (r *PostgresRepository) Create(ctx context.Context, snippet *models.Snippet, wrappedKeys []*models.WrappedKey) error {
	query := `
		INSERT INTO snippets (id, owner_id, team_id, title_ciphertext, title_nonce, algorithm, body_object_key)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		snippet.ID, snippet.OwnerID, snippet.TeamID, snippet.TitleCiphertext,
		snippet.TitleNonce, snippet.Algorithm, snippet.BodyObjectKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	keyQuery := `
		INSERT INTO snippet_wrapped_keys (snippet_id, user_id, device_id, key)
		VALUES ($1, $2, $3, $4)
	`
	for _, wk := range wrappedKeys {
		if _, err := r.db.ExecContext(ctx, keyQuery, snippet.ID, wk.UserID, wk.DeviceID, wk.Key); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// Get returns one snippet row by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Snippet, error) {
	query := `
		SELECT id, owner_id, COALESCE(team_id, ''), title_ciphertext, title_nonce, algorithm, body_object_key, created_at
		FROM snippets
		WHERE id = $1
	`
	s := &models.Snippet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.OwnerID, &s.TeamID, &s.TitleCiphertext, &s.TitleNonce,
		&s.Algorithm, &s.BodyObjectKey, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// ListForUser returns snippets the user owns or is a wrapped-key recipient
// of, newest first.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Snippet, error) {
	query := `
		SELECT id, owner_id, COALESCE(team_id, ''), title_ciphertext, title_nonce, algorithm, body_object_key, created_at
		FROM snippets s
		WHERE s.owner_id = $1
		   OR EXISTS (
				SELECT 1 FROM snippet_wrapped_keys wk
				WHERE wk.snippet_id = s.id AND wk.user_id = $1
		   )
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select snippets: %w", err)
	}
	defer rows.Close()

	var result []*models.Snippet
	for rows.Next() {
		var item models.Snippet
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.TeamID, &item.TitleCiphertext, &item.TitleNonce,
			&item.Algorithm, &item.BodyObjectKey, &item.CreatedAt,
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

// WrappedKeyFor returns the wrapped content key for one recipient device.
func (r *PostgresRepository) WrappedKeyFor(ctx context.Context, snippetID, userID, deviceID string) (*models.WrappedKey, error) {
	query := `
		SELECT snippet_id, user_id, device_id, key
		FROM snippet_wrapped_keys
		WHERE snippet_id = $1 AND user_id = $2 AND device_id = $3
	`
	wk := &models.WrappedKey{}
	err := r.db.QueryRowContext(ctx, query, snippetID, userID, deviceID).Scan(
		&wk.SnippetID, &wk.UserID, &wk.DeviceID, &wk.Key,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return wk, nil
}
