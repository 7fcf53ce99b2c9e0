package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// TeamRef attributes one team-owned credential of an app to the team that
// owns it. Only teams present in the authorization lookup result appear
// here; credentials pointing at any other team are dropped silently.
type TeamRef struct {
	TeamID       types.TeamID       `json:"teamId"`
	Name         string             `json:"name"`
	Logo         string             `json:"logo,omitempty"`
	CredentialID types.CredentialID `json:"credentialId"`
}

// CredentialOwner is a display hint for team-attributed apps: who the
// requesting user is, shown next to the team installation.
type CredentialOwner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ResolvedApp is the response entity of the integration resolver. It is
// rebuilt from scratch on every request and never cached.
//
// CredentialOwner is nil unless Teams is non-empty; the two fields are
// kept consistent by the annotator and nowhere else. IsInstalled is nil
// unless the feature-extension filter ran.
type ResolvedApp struct {
	Type           types.AppType `json:"type"`
	Name           string        `json:"name"`
	Slug           string        `json:"slug"`
	Variant        string        `json:"variant"`
	Description    string        `json:"description,omitempty"`
	LogoURL        string        `json:"logo,omitempty"`
	Categories     []string      `json:"categories,omitempty"`
	IsGlobal       bool          `json:"isGlobal"`
	ExtendsFeature []string      `json:"extendsFeature,omitempty"`

	CredentialIDs        []types.CredentialID `json:"credentialIds"`
	InvalidCredentialIDs []types.CredentialID `json:"invalidCredentialIds"`
	Teams                []TeamRef            `json:"teams"`
	CredentialOwner      *CredentialOwner     `json:"credentialOwner,omitempty"`
	IsInstalled          *bool                `json:"isInstalled,omitempty"`
}

// Installed reports whether the app counts as installed for the
// requesting user: backed by an individual credential, attributed to an
// administered team, or globally enabled.
func (a *ResolvedApp) Installed() bool {
	return len(a.CredentialIDs) > 0 || len(a.Teams) > 0 || a.IsGlobal
}
