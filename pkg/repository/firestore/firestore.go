package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/appdock-io/appdock/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Firestore is the Firestore-backed repository
type Firestore struct {
	client *firestore.Client
	users  *userRepository
	teams  *teamRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, used to isolate test data
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.users.collectionPrefix = prefix
		f.teams.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client: client,
		users:  newUserRepository(client),
		teams:  newTeamRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Users() interfaces.UserRepository {
	return f.users
}

func (f *Firestore) Teams() interfaces.TeamRepository {
	return f.teams
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
