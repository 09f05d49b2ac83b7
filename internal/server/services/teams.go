package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
	"github.com/snipvault/snipvault/internal/server/repositories/repomanager"
)

// TeamService resolves the recipient key set for team-addressed shares.
// Resolution is read-only and deterministic for a fixed registry snapshot:
// repositories return rows ordered by (user_id, device_id), and the default
// tie-break below never makes a random choice.
type TeamService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTeamService constructs a TeamService using repositories.
func NewTeamService(db *sql.DB, m repomanager.RepositoryManager) *TeamService {
	return &TeamService{db: db, repomanager: m}
}

// requireMember rejects callers outside the team.
func (s *TeamService) requireMember(ctx context.Context, teamID, callerID string) error {
	repo := s.repomanager.Teams(s.db)
	ok, err := repo.IsMember(ctx, teamID, callerID)
	if err != nil {
		return fmt.Errorf("error checking membership: %w", err)
	}
	if !ok {
		return common.ErrorUnauthorized
	}
	return nil
}

// memberKeys loads the device keys of every team member, ordered by
// (user_id, device_id).
func (s *TeamService) memberKeys(ctx context.Context, teamID string) ([]*models.DeviceKey, error) {
	members, err := s.repomanager.Teams(s.db).ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error listing team members: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}

	var result []*models.DeviceKey
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.repomanager.DeviceKeys(s.db).ListForUsers(ctx, userIDs)
		return err
	}); err != nil {
		return nil, fmt.Errorf("error listing member keys: %w", err)
	}
	return result, nil
}

// ResolveDefault returns the single device key a team-scope share must
// encrypt against: the member device marked default. When a data anomaly
// leaves several candidates, the lexicographically smallest device id wins.
// That tie-break is a documented fallback, not a policy; normally exactly
// one device per team is marked default. No eligible device fails NotFound.
func (s *TeamService) ResolveDefault(ctx context.Context, teamID, callerID string) (*models.DeviceKey, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	all, err := s.memberKeys(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var chosen *models.DeviceKey
	for _, key := range all {
		if !key.IsDefault {
			continue
		}
		if chosen == nil || key.DeviceID < chosen.DeviceID {
			chosen = key
		}
	}
	if chosen == nil {
		return nil, common.ErrorNotFound
	}
	return chosen, nil
}

// ResolveAllMembers returns every member device key for multi-device fan-out
// encryption. Ordering is stable by (userId, deviceId) so ciphertext-list
// construction is reproducible across calls against the same snapshot.
func (s *TeamService) ResolveAllMembers(ctx context.Context, teamID, callerID string) ([]*models.DeviceKey, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.memberKeys(ctx, teamID)
}

// AddMember and RemoveMember maintain the membership table backing the
// resolver. Only existing members may modify a team.

func (s *TeamService) AddMember(ctx context.Context, teamID, callerID, userID, role string) error {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return err
	}
	repo := s.repomanager.Teams(s.db)
	if err := repo.AddMember(ctx, &models.TeamMember{TeamID: teamID, UserID: userID, Role: role}); err != nil {
		return fmt.Errorf("error adding member: %w", err)
	}
	return nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, callerID, userID string) error {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return err
	}
	repo := s.repomanager.Teams(s.db)
	if err := repo.RemoveMember(ctx, teamID, userID); err != nil {
		return fmt.Errorf("error removing member: %w", err)
	}
	return nil
}
