package usecase

import (
	"github.com/appdock-io/appdock/pkg/domain/interfaces"
)

type UseCases struct {
	repo         interfaces.Repository
	provider     interfaces.AppProvider
	Integrations *IntegrationsUseCase
	Auth         *AuthUseCase
}

type Option func(*UseCases)

func WithAuth(auth *AuthUseCase) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func New(repo interfaces.Repository, provider interfaces.AppProvider, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		provider: provider,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Integrations = NewIntegrationsUseCase(repo, provider)
	if uc.Auth == nil {
		uc.Auth = NewAuthUseCase(repo)
	}

	return uc
}
