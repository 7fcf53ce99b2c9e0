package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type teamDocument struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
	Logo string `firestore:"logo"`
}

type membershipDocument struct {
	TeamID string `firestore:"team_id"`
	UserID string `firestore:"user_id"`
	Role   string `firestore:"role"`
}

type teamRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTeamRepository(client *firestore.Client) *teamRepository {
	return &teamRepository{
		client: client,
	}
}

func (r *teamRepository) teamsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_teams"
	}
	return "teams"
}

func (r *teamRepository) membershipsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_memberships"
	}
	return "memberships"
}

func (r *teamRepository) credentialsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_credentials"
	}
	return "credentials"
}

func membershipDocID(teamID types.TeamID, userID types.UserID) string {
	return fmt.Sprintf("%s:%s", teamID, userID)
}

func (r *teamRepository) Put(ctx context.Context, team *model.Team) error {
	if err := team.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team")
	}

	doc := &teamDocument{
		ID:   team.ID.String(),
		Name: team.Name,
		Logo: team.Logo,
	}

	docRef := r.client.Collection(r.teamsCollection()).Doc(team.ID.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put team", goerr.V("id", team.ID))
	}

	return nil
}

func (r *teamRepository) Get(ctx context.Context, id types.TeamID) (*model.Team, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid team ID")
	}

	docRef := r.client.Collection(r.teamsCollection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get team", goerr.V("id", id))
	}

	var doc teamDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal team")
	}

	return &model.Team{
		ID:   types.TeamID(doc.ID),
		Name: doc.Name,
		Logo: doc.Logo,
	}, nil
}

func (r *teamRepository) PutMember(ctx context.Context, m *model.Membership) error {
	if err := m.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid membership")
	}
	if err := m.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid membership")
	}
	if !m.Role.IsValid() {
		return goerr.New("invalid membership role", goerr.V("role", m.Role))
	}

	if _, err := r.Get(ctx, m.TeamID); err != nil {
		return err
	}

	doc := &membershipDocument{
		TeamID: m.TeamID.String(),
		UserID: m.UserID.String(),
		Role:   m.Role.String(),
	}

	docRef := r.client.Collection(r.membershipsCollection()).Doc(membershipDocID(m.TeamID, m.UserID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put membership", goerr.V("team_id", m.TeamID), goerr.V("user_id", m.UserID))
	}

	return nil
}

func (r *teamRepository) PutCredential(ctx context.Context, cred *model.Credential) error {
	if err := cred.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}
	if err := cred.Type.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}
	if !cred.IsTeamOwned() {
		return goerr.New("team credential requires a team ID", goerr.V("id", cred.ID))
	}

	if _, err := r.Get(ctx, cred.TeamID); err != nil {
		return err
	}

	docRef := r.client.Collection(r.credentialsCollection()).Doc(cred.ID.String())
	if _, err := docRef.Set(ctx, newCredentialDocument(cred)); err != nil {
		return goerr.Wrap(err, "failed to put credential", goerr.V("id", cred.ID))
	}

	return nil
}

func (r *teamRepository) FindAdministered(ctx context.Context, userID types.UserID, teamID *types.TeamID) ([]*model.AdminTeam, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	query := r.client.Collection(r.membershipsCollection()).
		Where("user_id", "==", userID.String()).
		Where("role", "in", []string{
			types.MembershipRoleAdmin.String(),
			types.MembershipRoleOwner.String(),
		})
	if teamID != nil {
		query = query.Where("team_id", "==", teamID.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var teamIDs []types.TeamID
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query memberships", goerr.V("user_id", userID))
		}

		var doc membershipDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal membership")
		}
		if _, err := types.ParseMembershipRole(doc.Role); err != nil {
			return nil, goerr.Wrap(err, "corrupt membership record",
				goerr.V("team_id", doc.TeamID), goerr.V("user_id", doc.UserID))
		}
		teamIDs = append(teamIDs, types.TeamID(doc.TeamID))
	}

	var result []*model.AdminTeam
	for _, id := range teamIDs {
		team, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		creds, err := r.listCredentials(ctx, id)
		if err != nil {
			return nil, err
		}

		result = append(result, &model.AdminTeam{
			ID:          team.ID,
			Name:        team.Name,
			Logo:        team.Logo,
			Credentials: creds,
		})
	}

	return result, nil
}

func (r *teamRepository) listCredentials(ctx context.Context, id types.TeamID) ([]*model.Credential, error) {
	iter := r.client.Collection(r.credentialsCollection()).
		Where("team_id", "==", id.String()).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var creds []*model.Credential
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list team credentials", goerr.V("team_id", id))
		}

		var doc credentialDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal credential")
		}
		creds = append(creds, doc.toModel())
	}

	return creds, nil
}
