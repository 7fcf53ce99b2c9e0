package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// IntegrationsRequest carries the optional query-shaping parameters of an
// integration resolution. Zero values mean "not requested": every filter
// stage is skipped when its parameter is absent.
type IntegrationsRequest struct {
	Variant                  string
	Exclude                  []string
	OnlyInstalled            bool
	IncludeTeamInstalledApps bool
	ExtendsFeature           string
	TeamID                   *types.TeamID
}

// IntegrationsResponse is the resolver's response payload
type IntegrationsResponse struct {
	Items []*ResolvedApp `json:"items"`
}
