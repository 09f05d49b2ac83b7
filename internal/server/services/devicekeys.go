// Package services contains server-side business logic. This file implements
// DeviceKeyService, the sole mutator of the device key registry.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/server/models"
	"github.com/snipvault/snipvault/internal/server/repositories/repomanager"
)

// DeviceKeyService validates key material at the boundary and maintains the
// (user, device) → public key mapping. Registering an existing pair replaces
// the prior record: that is the key-rotation path, not a conflict.
type DeviceKeyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDeviceKeyService constructs a DeviceKeyService using repositories.
func NewDeviceKeyService(db *sql.DB, m repomanager.RepositoryManager) *DeviceKeyService {
	return &DeviceKeyService{db: db, repomanager: m}
}

// Register validates and upserts one device's key material. Malformed keys
// and unsupported algorithms fail with common.ErrorInvalidKeyMaterial before
// anything reaches storage.
func (s *DeviceKeyService) Register(ctx context.Context, userID, deviceID string, alg keys.Algorithm,
	encKey keys.PublicKeyJWK, signKey *keys.PublicKeyJWK, isDefault bool) (*models.DeviceKey, error) {

	encRaw, err := keys.ParseEncryptionKey(alg, encKey)
	if err != nil {
		return nil, err
	}

	var signRaw []byte
	if signKey != nil {
		signRaw, err = keys.ParseSigningKey(*signKey)
		if err != nil {
			return nil, err
		}
	}

	record := &models.DeviceKey{
		UserID:           userID,
		DeviceID:         deviceID,
		Algorithm:        alg,
		EncryptionPubKey: encRaw,
		SigningPubKey:    signRaw,
		IsDefault:        isDefault,
	}

	repo := s.repomanager.DeviceKeys(s.db)
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, record)
	}); err != nil {
		return nil, fmt.Errorf("error registering device key: %w", err)
	}
	return record, nil
}

// List returns all of the user's registered device keys, ordered by device
// id. No keys registered is an empty list, not an error.
func (s *DeviceKeyService) List(ctx context.Context, userID string) ([]*models.DeviceKey, error) {
	repo := s.repomanager.DeviceKeys(s.db)

	var result []*models.DeviceKey
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		var err error
		result, err = repo.ListForUser(ctx, userID)
		return err
	}); err != nil {
		return nil, fmt.Errorf("error listing device keys: %w", err)
	}
	return result, nil
}

// Delete removes one device's key. Deleting an unknown device is a no-op.
func (s *DeviceKeyService) Delete(ctx context.Context, userID, deviceID string) error {
	repo := s.repomanager.DeviceKeys(s.db)
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		return repo.Delete(ctx, userID, deviceID)
	}); err != nil {
		return fmt.Errorf("error deleting device key: %w", err)
	}
	return nil
}

// ClearForUser removes every key the user has registered (account deletion).
func (s *DeviceKeyService) ClearForUser(ctx context.Context, userID string) error {
	repo := s.repomanager.DeviceKeys(s.db)
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		return repo.ClearForUser(ctx, userID)
	}); err != nil {
		return fmt.Errorf("error clearing device keys: %w", err)
	}
	return nil
}
