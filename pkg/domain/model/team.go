package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// Team represents a team that can own integration credentials shared by
// its members.
type Team struct {
	ID   types.TeamID
	Name string
	Logo string // Logo URL (empty string = no image)
}

// Membership represents the role a user holds within a team
type Membership struct {
	TeamID types.TeamID
	UserID types.UserID
	Role   types.MembershipRole
}

// AdminTeam is one row of the team authorization lookup: a team the
// requesting user administers, with the team's credentials attached.
type AdminTeam struct {
	ID          types.TeamID
	Name        string
	Logo        string
	Credentials []*Credential
}
