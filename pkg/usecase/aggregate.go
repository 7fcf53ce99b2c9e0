package usecase

import (
	"github.com/appdock-io/appdock/pkg/domain/model"
)

// aggregationMode selects which credential sets enter the resolution
type aggregationMode int

const (
	// aggregateOwnOnly uses only the user's individual credentials
	aggregateOwnOnly aggregationMode = iota
	// aggregateTeamOnly replaces the working set with team credentials
	aggregateTeamOnly
	// aggregateUnion concatenates individual and team credentials
	aggregateUnion
)

type aggregationKey struct {
	includeTeamApps bool
	teamFiltered    bool
}

// aggregationPolicy is the merge decision table. Scoping to a single
// team deliberately excludes the user's individual credentials: "show me
// that team's integrations" rather than "mine plus that team's".
var aggregationPolicy = map[aggregationKey]aggregationMode{
	{includeTeamApps: false, teamFiltered: false}: aggregateOwnOnly,
	{includeTeamApps: false, teamFiltered: true}:  aggregateTeamOnly,
	{includeTeamApps: true, teamFiltered: true}:   aggregateTeamOnly,
	{includeTeamApps: true, teamFiltered: false}:  aggregateUnion,
}

// aggregateCredentials merges the user's own credentials with the
// administered teams' credentials according to the policy table. No
// deduplication is performed; a credential appearing in both sets stays
// duplicated.
func aggregateCredentials(own []*model.Credential, adminTeams []*model.AdminTeam, req *model.IntegrationsRequest) []*model.Credential {
	key := aggregationKey{
		includeTeamApps: req.IncludeTeamInstalledApps,
		teamFiltered:    req.TeamID != nil,
	}

	var teamCreds []*model.Credential
	for _, team := range adminTeams {
		teamCreds = append(teamCreds, team.Credentials...)
	}

	switch aggregationPolicy[key] {
	case aggregateTeamOnly:
		return teamCreds
	case aggregateUnion:
		merged := make([]*model.Credential, 0, len(own)+len(teamCreds))
		merged = append(merged, own...)
		merged = append(merged, teamCreds...)
		return merged
	default:
		return own
	}
}
