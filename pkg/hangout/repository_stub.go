package hangout

import (
	"context"
)

type StubRepository struct {
	data map[string]Request
	// PersonaOwners maps persona ids to owner emails for pending lookups.
	PersonaOwners map[string]string
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Request{}, PersonaOwners: map[string]string{}}
}

func (s *StubRepository) StoreRequest(ctx context.Context, request Request) error {
	s.data[request.Id] = request
	return nil
}

func (s *StubRepository) GetRequest(ctx context.Context, requestId string) (Request, error) {
	request, ok := s.data[requestId]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	return request, nil
}

func (s *StubRepository) GetRequestsForUser(ctx context.Context, userId int) ([]Request, error) {
	requests := make([]Request, 0)
	for _, request := range s.data {
		if request.UserId == userId {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (s *StubRepository) GetPendingRequestsForOwner(ctx context.Context, ownerEmail string) ([]Request, error) {
	requests := make([]Request, 0)
	for _, request := range s.data {
		if request.Status == StatusPending && s.PersonaOwners[request.PersonaId] == ownerEmail {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (s *StubRepository) UpdateStatus(ctx context.Context, requestId string, status Status) (bool, error) {
	request, ok := s.data[requestId]
	if !ok {
		return false, nil
	}
	request.Status = status
	s.data[requestId] = request
	return true, nil
}
