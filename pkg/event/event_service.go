package event

import (
	"context"
	"fmt"

	"github.com/cheemco/cheemco/internal/utils"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/google/uuid"
)

var ErrInvalidDuration = fmt.Errorf("event duration must be greater than zero")

type EventService interface {
	CreateEvent(ctx context.Context, event Event) (Event, error)
	GetEvent(ctx context.Context, eventId string) (Event, error)
	GetUpcomingEvents(ctx context.Context) ([]Event, error)
	UpdateEvent(ctx context.Context, event Event) (Event, error)
	DeleteEvent(ctx context.Context, eventId string) error
}

type EventServiceImpl struct {
	repo  EventRepository
	clock utils.Clock
}

func NewEventService(repo EventRepository) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, clock: &utils.SystemClock{}}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, event Event) (Event, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if event.DurationHours <= 0 {
		return Event{}, ErrInvalidDuration
	}

	event.Id = uuid.NewString()
	event.CreatedBy = userId
	if err := s.repo.StoreEvent(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, eventId string) (Event, error) {
	return s.repo.GetEvent(ctx, eventId)
}

// GetUpcomingEvents returns the current user's events from now on, closest
// first.
func (s *EventServiceImpl) GetUpcomingEvents(ctx context.Context) ([]Event, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetEventsForUser(ctx, userId, s.clock.Now())
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	if event.DurationHours <= 0 {
		return Event{}, ErrInvalidDuration
	}
	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return Event{}, err
	}
	if !updated {
		return Event{}, ErrEventNotFound
	}
	return s.repo.GetEvent(ctx, event.Id)
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, eventId string) error {
	return s.repo.DeleteEvent(ctx, eventId)
}
