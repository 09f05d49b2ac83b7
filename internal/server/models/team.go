package models

import "time"

// TeamMember links a user to a team. Roles are opaque to the key resolver;
// membership alone grants resolution rights.
type TeamMember struct {
	TeamID    string
	UserID    string
	Role      string
	CreatedAt time.Time
}
