package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/google/uuid"
)

// Credential represents one configured instance of an integration. A
// credential is owned either by a user (TeamID empty) or by a team
// (TeamID set); the two ownership modes are mutually exclusive.
//
// Key holds the integration's secret payload (API keys, OAuth tokens). It
// must never cross the service boundary: it is excluded from JSON output
// and masked in logs.
type Credential struct {
	ID      types.CredentialID
	Type    types.AppType
	UserID  types.UserID
	TeamID  types.TeamID // empty = individually owned
	Key     string       `json:"-" masq:"secret"`
	Invalid bool         // health flag, set when the stored secret no longer works
}

// NewCredentialID generates a new UUID v4 CredentialID
func NewCredentialID() types.CredentialID {
	return types.CredentialID(uuid.New().String())
}

// IsTeamOwned reports whether the credential belongs to a team rather
// than an individual user.
func (c *Credential) IsTeamOwned() bool {
	return c.TeamID != ""
}
