// Package teams provides PostgreSQL-backed team membership storage used by
// the team key resolver.
package teams

import (
	"context"
	"fmt"

	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
)

// PostgresRepository implements membership storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListMembers returns the team's members ordered by user_id, so downstream
// recipient-set construction sees a stable ordering.
func (r *PostgresRepository) ListMembers(ctx context.Context, teamID string) ([]*models.TeamMember, error) {
	query := `
		SELECT team_id, user_id, role, created_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY user_id
	`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select team members: %w", err)
	}
	defer rows.Close()

	var result []*models.TeamMember
	for rows.Next() {
		var item models.TeamMember
		if err := rows.Scan(&item.TeamID, &item.UserID, &item.Role, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// IsMember reports whether userID belongs to teamID.
func (r *PostgresRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, teamID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// AddMember inserts a membership row; re-adding an existing member updates
// the role.
func (r *PostgresRepository) AddMember(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id, user_id)
		DO UPDATE SET role = EXCLUDED.role
	`
	if _, err := r.db.ExecContext(ctx, query, member.TeamID, member.UserID, member.Role); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveMember deletes a membership row; removing an absent member is a no-op.
func (r *PostgresRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	query := `
		DELETE FROM team_members
		WHERE team_id = $1 AND user_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, teamID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
