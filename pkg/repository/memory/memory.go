package memory

import (
	"github.com/appdock-io/appdock/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests
type Memory struct {
	users  *userRepository
	teams  *teamRepository
	tokens *tokenStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		users:  newUserRepository(),
		teams:  newTeamRepository(),
		tokens: newTokenStore(),
	}
}

func (m *Memory) Users() interfaces.UserRepository {
	return m.users
}

func (m *Memory) Teams() interfaces.TeamRepository {
	return m.teams
}

func (m *Memory) Close() error {
	return nil
}
