package snippets

import (
	"context"

	"github.com/snipvault/snipvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, snippet *models.Snippet, wrappedKeys []*models.WrappedKey) error
	Get(ctx context.Context, id string) (*models.Snippet, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Snippet, error)
	WrappedKeyFor(ctx context.Context, snippetID, userID, deviceID string) (*models.WrappedKey, error)
}
