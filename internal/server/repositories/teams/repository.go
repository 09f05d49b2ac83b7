package teams

import (
	"context"

	"github.com/snipvault/snipvault/internal/server/models"
)

type Repository interface {
	ListMembers(ctx context.Context, teamID string) ([]*models.TeamMember, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	AddMember(ctx context.Context, member *models.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) error
}
