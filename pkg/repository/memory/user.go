package memory

import (
	"context"
	"sync"

	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.User
	creds map[types.UserID][]*model.Credential
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[types.UserID]*model.User),
		creds: make(map[types.UserID][]*model.Credential),
	}
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	if err := user.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = &model.User{
		ID:     user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	creds := make([]*model.Credential, 0, len(r.creds[id]))
	for _, c := range r.creds[id] {
		cc := *c
		creds = append(creds, &cc)
	}

	return &model.User{
		ID:          user.ID,
		Name:        user.Name,
		Avatar:      user.Avatar,
		Credentials: creds,
	}, nil
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

	r.mu.Lock()
	defer r.mu.Unlock()

	cc := *cred
	existing := r.creds[cred.UserID]
	for i, c := range existing {
		if c.ID == cred.ID {
			existing[i] = &cc
			return nil
		}
	}
	r.creds[cred.UserID] = append(existing, &cc)
	return nil
}

func (r *userRepository) DeleteCredential(ctx context.Context, userID types.UserID, id types.CredentialID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.creds[userID]
	for i, c := range existing {
		if c.ID == id {
			r.creds[userID] = append(existing[:i], existing[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(ErrNotFound, "credential not found", goerr.V("id", id))
}
