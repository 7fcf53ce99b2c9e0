package usecase

import (
	"context"

	"github.com/appdock-io/appdock/pkg/domain/interfaces"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// IntegrationsUseCase resolves the effective set of apps visible to a
// user: the user's own credentials merged with those of teams the user
// administers, expanded through the app provider and annotated with
// ownership metadata.
type IntegrationsUseCase struct {
	repo     interfaces.Repository
	provider interfaces.AppProvider
}

func NewIntegrationsUseCase(repo interfaces.Repository, provider interfaces.AppProvider) *IntegrationsUseCase {
	return &IntegrationsUseCase{
		repo:     repo,
		provider: provider,
	}
}

// List runs the full resolution for one request. Everything operates on
// snapshots taken here; nothing is cached across calls.
func (uc *IntegrationsUseCase) List(ctx context.Context, user *model.User, req *model.IntegrationsRequest) (*model.IntegrationsResponse, error) {
	if user == nil {
		return nil, goerr.Wrap(ErrUserRequired, "integrations resolution needs a user")
	}
	if req == nil {
		req = &model.IntegrationsRequest{}
	}

	adminTeams, err := uc.resolveAdminTeams(ctx, user.ID, req)
	if err != nil {
		return nil, err
	}

	credentials := aggregateCredentials(user.Credentials, adminTeams, req)

	enabled, err := uc.provider.EnabledApps(ctx, credentials)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve enabled apps", goerr.V("user_id", user.ID))
	}

	apps := annotateApps(enabled, credentials, adminTeams, user)
	apps = applyFilters(apps, req)

	return &model.IntegrationsResponse{Items: apps}, nil
}

// resolveAdminTeams performs the team authorization lookup. The lookup is
// skipped entirely when the request neither includes team apps nor scopes
// to a team; in that case the store is not touched.
func (uc *IntegrationsUseCase) resolveAdminTeams(ctx context.Context, userID types.UserID, req *model.IntegrationsRequest) ([]*model.AdminTeam, error) {
	if !req.IncludeTeamInstalledApps && req.TeamID == nil {
		return nil, nil
	}

	teams, err := uc.repo.Teams().FindAdministered(ctx, userID, req.TeamID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve administered teams", goerr.V("user_id", userID))
	}
	return teams, nil
}

// annotateApps builds the response entities. Catalog secrets and raw
// credentials stop here: only IDs and team attributions cross over.
func annotateApps(enabled []*model.App, credentials []*model.Credential, adminTeams []*model.AdminTeam, user *model.User) []*model.ResolvedApp {
	teamsByID := make(map[types.TeamID]*model.AdminTeam, len(adminTeams))
	for _, team := range adminTeams {
		teamsByID[team.ID] = team
	}

	apps := make([]*model.ResolvedApp, 0, len(enabled))
	for _, app := range enabled {
		resolved := &model.ResolvedApp{
			Type:                 app.Type,
			Name:                 app.Name,
			Slug:                 app.Slug,
			Variant:              app.Variant,
			Description:          app.Description,
			LogoURL:              app.LogoURL,
			Categories:           app.Categories,
			IsGlobal:             app.IsGlobal,
			ExtendsFeature:       app.ExtendsFeature,
			CredentialIDs:        []types.CredentialID{},
			InvalidCredentialIDs: []types.CredentialID{},
			Teams:                []model.TeamRef{},
		}

		for _, cred := range credentials {
			if cred.Type != app.Type {
				continue
			}

			if cred.Invalid {
				resolved.InvalidCredentialIDs = append(resolved.InvalidCredentialIDs, cred.ID)
			}

			if !cred.IsTeamOwned() {
				resolved.CredentialIDs = append(resolved.CredentialIDs, cred.ID)
				continue
			}

			// A credential may reference a team outside the administered
			// set (stale reference or non-admin membership); such entries
			// are dropped, not surfaced as errors.
			team, ok := teamsByID[cred.TeamID]
			if !ok {
				continue
			}
			resolved.Teams = append(resolved.Teams, model.TeamRef{
				TeamID:       team.ID,
				Name:         team.Name,
				Logo:         team.Logo,
				CredentialID: cred.ID,
			})
		}

		if len(resolved.Teams) > 0 {
			resolved.CredentialOwner = &model.CredentialOwner{
				Name:   user.Name,
				Avatar: user.Avatar,
			}
		}

		apps = append(apps, resolved)
	}

	return apps
}
