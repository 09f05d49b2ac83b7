package handshakes

import (
	"context"
	"time"

	"github.com/snipvault/snipvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, hs *models.Handshake) error
	Get(ctx context.Context, id string) (*models.Handshake, error)
	AttachPayload(ctx context.Context, id string, payload, iv []byte, now time.Time) error
	Consume(ctx context.Context, id string, now time.Time) (payload, iv []byte, err error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
