package interfaces

import (
	"context"

	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// TeamRepository defines the interface for Team data access
type TeamRepository interface {
	// Put creates or replaces a team record
	Put(ctx context.Context, team *model.Team) error

	// Get retrieves a team by ID
	Get(ctx context.Context, id types.TeamID) (*model.Team, error)

	// PutMember creates or replaces a membership record
	PutMember(ctx context.Context, m *model.Membership) error

	// PutCredential stores a team-owned credential. The credential must
	// carry a team ID.
	PutCredential(ctx context.Context, cred *model.Credential) error

	// FindAdministered returns the teams where the user holds an
	// administrative role (ADMIN or OWNER), each with the team's
	// credentials attached. When teamID is non-nil the lookup is
	// restricted to that single team.
	FindAdministered(ctx context.Context, userID types.UserID, teamID *types.TeamID) ([]*model.AdminTeam, error)
}
