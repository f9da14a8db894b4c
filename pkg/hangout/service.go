package hangout

import (
	"context"
	"fmt"

	"github.com/cheemco/cheemco/internal/event_bus"
	"github.com/cheemco/cheemco/internal/utils"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidHangoutType = fmt.Errorf("invalid hangout type")
	ErrInvalidStatus      = fmt.Errorf("invalid status")
	// ErrRequestNotPending is returned when a decision is made on a request
	// that has already been decided.
	ErrRequestNotPending = fmt.Errorf("hangout request is not pending")
)

type Service interface {
	SubmitRequest(ctx context.Context, request Request) (Request, error)
	GetRequestsForCurrentUser(ctx context.Context) ([]Request, error)
	GetPendingRequests(ctx context.Context) ([]Request, error)
	UpdateRequestStatus(ctx context.Context, requestId string, status Status) (Request, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: &utils.SystemClock{}}
}

// SubmitRequest stores a new pending hangout request for the current user and
// announces it on the event bus.
func (s *ServiceImpl) SubmitRequest(ctx context.Context, request Request) (Request, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Request{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if !request.Type.IsValid() {
		return Request{}, ErrInvalidHangoutType
	}

	request.Id = uuid.NewString()
	request.UserId = userId
	request.Status = StatusPending
	request.CreatedAt = s.clock.Now()

	if err := s.repo.StoreRequest(ctx, request); err != nil {
		return Request{}, err
	}
	log.Debugf("Hangout request %s submitted by user %d", request.Id, userId)

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.HangoutRequestCreatedType, event_bus.HangoutRequestCreated{
		RequestId:     request.Id,
		UserId:        request.UserId,
		PersonaId:     request.PersonaId,
		HangoutType:   string(request.Type),
		ProposedTime:  request.ProposedTime,
		DurationHours: request.DurationHours,
	})); err != nil {
		log.Errorf("failed to publish hangout request created event: %v", err)
	}

	return request, nil
}

func (s *ServiceImpl) GetRequestsForCurrentUser(ctx context.Context) ([]Request, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetRequestsForUser(ctx, userId)
}

// GetPendingRequests lists the requests awaiting the current user's decision:
// pending requests targeting personas the user's email owns, not requests the
// user submitted.
func (s *ServiceImpl) GetPendingRequests(ctx context.Context) ([]Request, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetPendingRequestsForOwner(ctx, currentUser.Email)
}

// UpdateRequestStatus decides a pending request. Only pending requests can be
// decided; approving or declining an already decided request fails with
// ErrRequestNotPending.
func (s *ServiceImpl) UpdateRequestStatus(ctx context.Context, requestId string, status Status) (Request, error) {
	if !status.IsValid() || status == StatusPending {
		return Request{}, ErrInvalidStatus
	}

	request, err := s.repo.GetRequest(ctx, requestId)
	if err != nil {
		return Request{}, err
	}
	if request.Status != StatusPending {
		return Request{}, ErrRequestNotPending
	}

	updated, err := s.repo.UpdateStatus(ctx, requestId, status)
	if err != nil {
		return Request{}, err
	}
	if !updated {
		return Request{}, ErrRequestNotFound
	}

	oldStatus := request.Status
	request.Status = status
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.HangoutRequestStatusChangedType, event_bus.HangoutRequestStatusChanged{
		RequestId: request.Id,
		UserId:    request.UserId,
		OldStatus: string(oldStatus),
		NewStatus: string(status),
	})); err != nil {
		log.Errorf("failed to publish hangout request status changed event: %v", err)
	}

	return request, nil
}
