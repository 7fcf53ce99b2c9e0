package memory

import (
	"context"
	"sync"

	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type teamRepository struct {
	mu      sync.RWMutex
	teams   map[types.TeamID]*model.Team
	order   []types.TeamID
	members map[types.TeamID]map[types.UserID]types.MembershipRole
	creds   map[types.TeamID][]*model.Credential
}

func newTeamRepository() *teamRepository {
	return &teamRepository{
		teams:   make(map[types.TeamID]*model.Team),
		members: make(map[types.TeamID]map[types.UserID]types.MembershipRole),
		creds:   make(map[types.TeamID][]*model.Credential),
	}
}

func (r *teamRepository) Put(ctx context.Context, team *model.Team) error {
	if err := team.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[team.ID]; !exists {
		r.order = append(r.order, team.ID)
	}
	r.teams[team.ID] = &model.Team{
		ID:   team.ID,
		Name: team.Name,
		Logo: team.Logo,
	}
	return nil
}

func (r *teamRepository) Get(ctx context.Context, id types.TeamID) (*model.Team, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid team ID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	team, exists := r.teams[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
	}

	return &model.Team{
		ID:   team.ID,
		Name: team.Name,
		Logo: team.Logo,
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

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[m.TeamID]; !exists {
		return goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", m.TeamID))
	}

	if r.members[m.TeamID] == nil {
		r.members[m.TeamID] = make(map[types.UserID]types.MembershipRole)
	}
	r.members[m.TeamID][m.UserID] = m.Role
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

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[cred.TeamID]; !exists {
		return goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", cred.TeamID))
	}

	cc := *cred
	existing := r.creds[cred.TeamID]
	for i, c := range existing {
		if c.ID == cred.ID {
			existing[i] = &cc
			return nil
		}
	}
	r.creds[cred.TeamID] = append(existing, &cc)
	return nil
}

func (r *teamRepository) FindAdministered(ctx context.Context, userID types.UserID, teamID *types.TeamID) ([]*model.AdminTeam, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.AdminTeam
	for _, id := range r.order {
		if teamID != nil && id != *teamID {
			continue
		}

		role, ok := r.members[id][userID]
		if !ok || !role.IsAdmin() {
			continue
		}

		team := r.teams[id]
		creds := make([]*model.Credential, 0, len(r.creds[id]))
		for _, c := range r.creds[id] {
			cc := *c
			creds = append(creds, &cc)
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
