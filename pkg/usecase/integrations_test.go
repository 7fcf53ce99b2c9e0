package usecase_test

import (
	"context"
	"testing"

	"github.com/appdock-io/appdock/pkg/catalog"
	"github.com/appdock-io/appdock/pkg/domain/interfaces"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/appdock-io/appdock/pkg/repository/memory"
	"github.com/appdock-io/appdock/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newTestProvider(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Config{
		Apps: []catalog.Entry{
			{
				Type:           "zoom_video",
				Name:           "Zoom",
				Variant:        "zoom",
				ExtendsFeature: []string{"booking"},
				Key:            "zoom-catalog-secret",
			},
			{
				Type:    "salesforce_crm",
				Name:    "Salesforce",
				Variant: "crm",
			},
			{
				Type:    "google_calendar",
				Name:    "Google Calendar",
				Variant: "calendar",
			},
			{
				Type:           "daily_video",
				Name:           "Daily",
				Variant:        "conferencing",
				Global:         true,
				ExtendsFeature: []string{"booking"},
			},
		},
	})
	gt.NoError(t, err).Required()
	return c
}

func findApp(items []*model.ResolvedApp, typ types.AppType) *model.ResolvedApp {
	for _, app := range items {
		if app.Type == typ {
			return app
		}
	}
	return nil
}

func TestIntegrations_OwnCredentialsOnly(t *testing.T) {
	// Scenario: two individual zoom credentials, no team rights, empty
	// request. The result derives solely from the user's own set.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-1", Type: "zoom_video", UserID: "u-001"},
			{ID: "c-2", Type: "zoom_video", UserID: "u-001"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{})
	gt.NoError(t, err).Required()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Array(t, zoom.CredentialIDs).Length(2)
	gt.Array(t, zoom.Teams).Length(0)
	gt.Value(t, zoom.CredentialOwner).Nil()
	gt.Value(t, zoom.IsInstalled).Nil()

	// Secrets never reach the response entity
	gt.Array(t, zoom.InvalidCredentialIDs).Length(0)
}

func TestIntegrations_TeamScoped(t *testing.T) {
	// Scenario: user administers a team holding one salesforce
	// credential; scoping to that team excludes individual credentials.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	gt.NoError(t, repo.Teams().Put(ctx, &model.Team{ID: "t-7", Name: "Sales", Logo: "https://example.com/sales.png"})).Required()
	gt.NoError(t, repo.Teams().PutMember(ctx, &model.Membership{
		TeamID: "t-7", UserID: "u-001", Role: types.MembershipRoleAdmin,
	})).Required()
	gt.NoError(t, repo.Teams().PutCredential(ctx, &model.Credential{
		ID: "c1", Type: "salesforce_crm", TeamID: "t-7", Key: "team-secret",
	})).Required()

	user := &model.User{
		ID:     "u-001",
		Name:   "Alice",
		Avatar: "https://example.com/alice.png",
		Credentials: []*model.Credential{
			{ID: "c-own", Type: "zoom_video", UserID: "u-001"},
		},
	}

	teamID := types.TeamID("t-7")
	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{TeamID: &teamID})
	gt.NoError(t, err).Required()

	// Individual credentials are excluded entirely: no zoom app
	gt.Value(t, findApp(resp.Items, "zoom_video")).Nil()

	sf := findApp(resp.Items, "salesforce_crm")
	gt.Value(t, sf).NotNil().Required()
	gt.Array(t, sf.CredentialIDs).Length(0)
	gt.Array(t, sf.Teams).Length(1)
	gt.Value(t, sf.Teams[0].TeamID).Equal(types.TeamID("t-7"))
	gt.Value(t, sf.Teams[0].CredentialID).Equal(types.CredentialID("c1"))
	gt.Value(t, sf.Teams[0].Name).Equal("Sales")

	gt.Value(t, sf.CredentialOwner).NotNil().Required()
	gt.Value(t, sf.CredentialOwner.Name).Equal("Alice")
	gt.Value(t, sf.CredentialOwner.Avatar).Equal("https://example.com/alice.png")
}

func TestIntegrations_TeamUnion(t *testing.T) {
	// includeTeamInstalledApps without a team filter unions individual
	// and team credentials.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	gt.NoError(t, repo.Teams().Put(ctx, &model.Team{ID: "t-1", Name: "Platform"})).Required()
	gt.NoError(t, repo.Teams().PutMember(ctx, &model.Membership{
		TeamID: "t-1", UserID: "u-001", Role: types.MembershipRoleOwner,
	})).Required()
	gt.NoError(t, repo.Teams().PutCredential(ctx, &model.Credential{
		ID: "c-team", Type: "zoom_video", TeamID: "t-1",
	})).Required()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-own", Type: "zoom_video", UserID: "u-001"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{IncludeTeamInstalledApps: true})
	gt.NoError(t, err).Required()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Array(t, zoom.CredentialIDs).Length(1)
	gt.Value(t, zoom.CredentialIDs[0]).Equal(types.CredentialID("c-own"))
	gt.Array(t, zoom.Teams).Length(1)
	gt.Value(t, zoom.Teams[0].CredentialID).Equal(types.CredentialID("c-team"))
	gt.Value(t, zoom.CredentialOwner).NotNil()
}

func TestIntegrations_NoTeamLookupWithoutFlags(t *testing.T) {
	// With neither includeTeamInstalledApps nor teamId the team store is
	// never queried.
	repo := memory.New()
	base := failingRepo{Repository: repo}
	uc := usecase.NewIntegrationsUseCase(base, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{ID: "u-001", Name: "Alice"}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{})
	gt.NoError(t, err).Required()
	gt.Value(t, findApp(resp.Items, "daily_video")).NotNil()
}

func TestIntegrations_StoreErrorPropagates(t *testing.T) {
	repo := memory.New()
	base := failingRepo{Repository: repo}
	uc := usecase.NewIntegrationsUseCase(base, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{ID: "u-001", Name: "Alice"}

	_, err := uc.List(ctx, user, &model.IntegrationsRequest{IncludeTeamInstalledApps: true})
	gt.Error(t, err)
}

func TestIntegrations_ProviderErrorPropagates(t *testing.T) {
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, errorProvider{})
	ctx := context.Background()

	user := &model.User{ID: "u-001", Name: "Alice"}

	_, err := uc.List(ctx, user, &model.IntegrationsRequest{})
	gt.Error(t, err)
}

func TestIntegrations_NilUserFails(t *testing.T) {
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))

	_, err := uc.List(context.Background(), nil, &model.IntegrationsRequest{})
	gt.Error(t, err)
}

func TestIntegrations_UnresolvableTeamRefDropped(t *testing.T) {
	// A credential referencing a team outside the administered set is
	// dropped from the teams attribution without an error.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-stale", Type: "zoom_video", UserID: "u-001", TeamID: "t-gone"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{IncludeTeamInstalledApps: true})
	gt.NoError(t, err).Required()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Array(t, zoom.CredentialIDs).Length(0)
	gt.Array(t, zoom.Teams).Length(0)
	gt.Value(t, zoom.CredentialOwner).Nil()
}

func TestIntegrations_ExcludeFilter(t *testing.T) {
	// Scenario: excluding variant "zoom" removes the zoom app
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-1", Type: "zoom_video", UserID: "u-001"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{Exclude: []string{"zoom"}})
	gt.NoError(t, err).Required()
	gt.Value(t, findApp(resp.Items, "zoom_video")).Nil()
	gt.Value(t, findApp(resp.Items, "daily_video")).NotNil()
}

func TestIntegrations_OnlyInstalled(t *testing.T) {
	// Scenario: an app with no credential IDs, no team attribution and
	// no global flag disappears under onlyInstalled.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			// backs the zoom app but attributes to an unresolvable team,
			// leaving the app visible yet not installed
			{ID: "c-stale", Type: "zoom_video", UserID: "u-001", TeamID: "t-gone"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{
		IncludeTeamInstalledApps: true,
		OnlyInstalled:            true,
	})
	gt.NoError(t, err).Required()

	gt.Value(t, findApp(resp.Items, "zoom_video")).Nil()
	// global apps count as installed
	gt.Value(t, findApp(resp.Items, "daily_video")).NotNil()
}

func TestIntegrations_ExtendsFeature(t *testing.T) {
	// Scenario: feature filter keeps booking apps and stamps a fresh
	// IsInstalled on each survivor.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-1", Type: "zoom_video", UserID: "u-001"},
			{ID: "c-2", Type: "salesforce_crm", UserID: "u-001"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{ExtendsFeature: "booking"})
	gt.NoError(t, err).Required()

	// salesforce does not extend booking
	gt.Value(t, findApp(resp.Items, "salesforce_crm")).Nil()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Value(t, zoom.IsInstalled).NotNil().Required()
	gt.B(t, *zoom.IsInstalled).True()

	daily := findApp(resp.Items, "daily_video")
	gt.Value(t, daily).NotNil().Required()
	gt.Value(t, daily.IsInstalled).NotNil().Required()
	gt.B(t, *daily.IsInstalled).True()
}

func TestIntegrations_ExtendsFeatureNotInstalled(t *testing.T) {
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-stale", Type: "zoom_video", UserID: "u-001", TeamID: "t-gone"},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{
		IncludeTeamInstalledApps: true,
		ExtendsFeature:           "booking",
	})
	gt.NoError(t, err).Required()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Value(t, zoom.IsInstalled).NotNil().Required()
	gt.B(t, *zoom.IsInstalled).False()
}

func TestIntegrations_InvalidCredentialIDs(t *testing.T) {
	// Invalid credentials are collected regardless of ownership while
	// CredentialIDs stays individual-only.
	repo := memory.New()
	uc := usecase.NewIntegrationsUseCase(repo, newTestProvider(t))
	ctx := context.Background()

	gt.NoError(t, repo.Teams().Put(ctx, &model.Team{ID: "t-1", Name: "Platform"})).Required()
	gt.NoError(t, repo.Teams().PutMember(ctx, &model.Membership{
		TeamID: "t-1", UserID: "u-001", Role: types.MembershipRoleAdmin,
	})).Required()
	gt.NoError(t, repo.Teams().PutCredential(ctx, &model.Credential{
		ID: "c-team", Type: "zoom_video", TeamID: "t-1", Invalid: true,
	})).Required()

	user := &model.User{
		ID:   "u-001",
		Name: "Alice",
		Credentials: []*model.Credential{
			{ID: "c-own", Type: "zoom_video", UserID: "u-001", Invalid: true},
		},
	}

	resp, err := uc.List(ctx, user, &model.IntegrationsRequest{IncludeTeamInstalledApps: true})
	gt.NoError(t, err).Required()

	zoom := findApp(resp.Items, "zoom_video")
	gt.Value(t, zoom).NotNil().Required()
	gt.Array(t, zoom.CredentialIDs).Length(1)
	gt.Array(t, zoom.InvalidCredentialIDs).Length(2)
}

// stubs

type errorProvider struct{}

func (errorProvider) EnabledApps(ctx context.Context, credentials []*model.Credential) ([]*model.App, error) {
	return nil, goerr.New("provider unavailable")
}

type failingTeams struct {
	interfaces.TeamRepository
}

func (failingTeams) FindAdministered(ctx context.Context, userID types.UserID, teamID *types.TeamID) ([]*model.AdminTeam, error) {
	return nil, goerr.New("store unreachable")
}

type failingRepo struct {
	interfaces.Repository
}

func (f failingRepo) Teams() interfaces.TeamRepository {
	return failingTeams{}
}
