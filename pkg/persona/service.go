package persona

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	CreatePersona(ctx context.Context, persona Persona) (Persona, error)
	GetPersona(ctx context.Context, personaId string) (Persona, error)
	GetAllPersonas(ctx context.Context) ([]Persona, error)
	DeletePersona(ctx context.Context, personaId string) error
	OwnerEmail(ctx context.Context, personaId string) (string, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) CreatePersona(ctx context.Context, persona Persona) (Persona, error) {
	persona.Id = uuid.NewString()
	if err := s.repo.StorePersona(ctx, persona); err != nil {
		return Persona{}, err
	}
	return persona, nil
}

func (s *ServiceImpl) GetPersona(ctx context.Context, personaId string) (Persona, error) {
	return s.repo.GetPersona(ctx, personaId)
}

func (s *ServiceImpl) GetAllPersonas(ctx context.Context) ([]Persona, error) {
	return s.repo.GetAllPersonas(ctx)
}

func (s *ServiceImpl) DeletePersona(ctx context.Context, personaId string) error {
	return s.repo.DeletePersona(ctx, personaId)
}

// OwnerEmail resolves the email account that owns the persona, used to route
// notifications and calendar lookups.
func (s *ServiceImpl) OwnerEmail(ctx context.Context, personaId string) (string, error) {
	persona, err := s.repo.GetPersona(ctx, personaId)
	if err != nil {
		return "", err
	}
	return persona.OwnerEmail, nil
}
