package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userDocument struct {
	ID     string `firestore:"id"`
	Name   string `firestore:"name"`
	Avatar string `firestore:"avatar"`
}

type credentialDocument struct {
	ID      string `firestore:"id"`
	Type    string `firestore:"type"`
	UserID  string `firestore:"user_id"`
	TeamID  string `firestore:"team_id"`
	Key     string `firestore:"key"`
	Invalid bool   `firestore:"invalid"`
}

func (d *credentialDocument) toModel() *model.Credential {
	return &model.Credential{
		ID:      types.CredentialID(d.ID),
		Type:    types.AppType(d.Type),
		UserID:  types.UserID(d.UserID),
		TeamID:  types.TeamID(d.TeamID),
		Key:     d.Key,
		Invalid: d.Invalid,
	}
}

func newCredentialDocument(c *model.Credential) *credentialDocument {
	return &credentialDocument{
		ID:      c.ID.String(),
		Type:    c.Type.String(),
		UserID:  c.UserID.String(),
		TeamID:  c.TeamID.String(),
		Key:     c.Key,
		Invalid: c.Invalid,
	}
}

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) usersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

func (r *userRepository) credentialsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_credentials"
	}
	return "credentials"
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	if err := user.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user")
	}

	doc := &userDocument{
		ID:     user.ID.String(),
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	docRef := r.client.Collection(r.usersCollection()).Doc(user.ID.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put user", goerr.V("id", user.ID))
	}

	return nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	docRef := r.client.Collection(r.usersCollection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user")
	}

	creds, err := r.listCredentials(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:          types.UserID(doc.ID),
		Name:        doc.Name,
		Avatar:      doc.Avatar,
		Credentials: creds,
	}, nil
}

func (r *userRepository) listCredentials(ctx context.Context, id types.UserID) ([]*model.Credential, error) {
	iter := r.client.Collection(r.credentialsCollection()).
		Where("user_id", "==", id.String()).
		Where("team_id", "==", "").
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
			return nil, goerr.Wrap(err, "failed to list user credentials", goerr.V("user_id", id))
		}

		var doc credentialDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal credential")
		}
		creds = append(creds, doc.toModel())
	}

	return creds, nil
}

func (r *userRepository) PutCredential(ctx context.Context, cred *model.Credential) error {
	if err := cred.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}
	if err := cred.Type.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}
	if err := cred.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "credential requires a user ID")
	}
	if cred.IsTeamOwned() {
		return goerr.New("user credential must not carry a team ID", goerr.V("id", cred.ID), goerr.V("teamID", cred.TeamID))
	}

	docRef := r.client.Collection(r.credentialsCollection()).Doc(cred.ID.String())
	if _, err := docRef.Set(ctx, newCredentialDocument(cred)); err != nil {
		return goerr.Wrap(err, "failed to put credential", goerr.V("id", cred.ID))
	}

	return nil
}

func (r *userRepository) DeleteCredential(ctx context.Context, userID types.UserID, id types.CredentialID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential ID")
	}

	docRef := r.client.Collection(r.credentialsCollection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "credential not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get credential", goerr.V("id", id))
	}

	var doc credentialDocument
	if err := snap.DataTo(&doc); err != nil {
		return goerr.Wrap(err, "failed to unmarshal credential")
	}
	if doc.UserID != userID.String() {
		return goerr.Wrap(ErrNotFound, "credential not owned by user", goerr.V("id", id), goerr.V("user_id", userID))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete credential", goerr.V("id", id))
	}

	return nil
}
