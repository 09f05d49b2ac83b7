package devicekeys

import (
	"context"

	"github.com/snipvault/snipvault/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, key *models.DeviceKey) error
	ListForUser(ctx context.Context, userID string) ([]*models.DeviceKey, error)
	ListForUsers(ctx context.Context, userIDs []string) ([]*models.DeviceKey, error)
	Delete(ctx context.Context, userID, deviceID string) error
	ClearForUser(ctx context.Context, userID string) error
}
