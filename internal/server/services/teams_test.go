package services

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamsRepo struct {
	mu      sync.Mutex
	members map[string][]*models.TeamMember // teamID → members
}

func newFakeTeamsRepo() *fakeTeamsRepo {
	return &fakeTeamsRepo{members: make(map[string][]*models.TeamMember)}
}

func (f *fakeTeamsRepo) ListMembers(ctx context.Context, teamID string) ([]*models.TeamMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]*models.TeamMember(nil), f.members[teamID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeTeamsRepo) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members[teamID] {
		if m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeamsRepo) AddMember(ctx context.Context, member *models.TeamMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[member.TeamID] = append(f.members[member.TeamID], member)
	return nil
}

func (f *fakeTeamsRepo) RemoveMember(ctx context.Context, teamID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.members[teamID][:0]
	for _, m := range f.members[teamID] {
		if m.UserID != userID {
			out = append(out, m)
		}
	}
	f.members[teamID] = out
	return nil
}

func setupTeam(t *testing.T) (*TeamService, *fakeDeviceKeysRepo, *fakeTeamsRepo) {
	t.Helper()
	dk := newFakeDeviceKeysRepo()
	tm := newFakeTeamsRepo()
	rm := &fakeRepoManager{dk: dk, tm: tm}
	return NewTeamService(nil, rm), dk, tm
}

func registerKey(t *testing.T, dk *fakeDeviceKeysRepo, userID, deviceID string, isDefault bool) {
	t.Helper()
	require.NoError(t, dk.Upsert(context.Background(), &models.DeviceKey{
		UserID:           userID,
		DeviceID:         deviceID,
		Algorithm:        keys.AlgorithmECDHP256,
		EncryptionPubKey: []byte(userID + "/" + deviceID),
		IsDefault:        isDefault,
	}))
}

func addMember(t *testing.T, tm *fakeTeamsRepo, teamID, userID string) {
	t.Helper()
	require.NoError(t, tm.AddMember(context.Background(), &models.TeamMember{TeamID: teamID, UserID: userID, Role: "member"}))
}

func TestResolveDefault_ReturnsDefaultDeviceKey(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")
	addMember(t, tm, "t1", "u2")
	registerKey(t, dk, "u1", "d1", false)
	registerKey(t, dk, "u2", "d2", true)

	got, err := s.ResolveDefault(ctx, "t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, "d2", got.DeviceID)

	// Repeated calls against the unchanged snapshot return the same key.
	again, err := s.ResolveDefault(ctx, "t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestResolveDefault_TieBreaksOnSmallestDeviceID(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")
	addMember(t, tm, "t1", "u2")
	// Data anomaly: two devices marked default.
	registerKey(t, dk, "u2", "d9", true)
	registerKey(t, dk, "u1", "d3", true)

	got, err := s.ResolveDefault(ctx, "t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "d3", got.DeviceID, "lexicographically smallest deviceId wins")
}

func TestResolveDefault_NotFoundWithoutDefault(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")
	registerKey(t, dk, "u1", "d1", false)

	_, err := s.ResolveDefault(ctx, "t1", "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResolveDefault_NotFoundAfterKeyDeleted(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")
	registerKey(t, dk, "u1", "d1", true)

	_, err := s.ResolveDefault(ctx, "t1", "u1")
	require.NoError(t, err)

	require.NoError(t, dk.Delete(ctx, "u1", "d1"))
	_, err = s.ResolveDefault(ctx, "t1", "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResolveDefault_NonMemberUnauthorized(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")
	registerKey(t, dk, "u1", "d1", true)

	_, err := s.ResolveDefault(ctx, "t1", "outsider")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestResolveAllMembers_StableOrdering(t *testing.T) {
	s, dk, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u2")
	addMember(t, tm, "t1", "u1")
	registerKey(t, dk, "u2", "d1", false)
	registerKey(t, dk, "u1", "d2", false)
	registerKey(t, dk, "u1", "d1", false)

	got, err := s.ResolveAllMembers(ctx, "t1", "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	var order []string
	for _, k := range got {
		order = append(order, k.UserID+"/"+k.DeviceID)
	}
	assert.Equal(t, []string{"u1/d1", "u1/d2", "u2/d1"}, order,
		"recipient set must be ordered by (userId, deviceId)")

	again, err := s.ResolveAllMembers(ctx, "t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestResolveAllMembers_EmptyTeam(t *testing.T) {
	s, _, tm := setupTeam(t)
	ctx := context.Background()

	addMember(t, tm, "t1", "u1")

	got, err := s.ResolveAllMembers(ctx, "t1", "u1")
	require.NoError(t, err)
	assert.Empty(t, got, "members without registered devices yield an empty set, not an error")
}
