package event

import (
	"context"
	"sort"
	"time"
)

type StubEventRepository struct {
	data map[string]Event
}

func NewStubEventRepository() *StubEventRepository {
	return &StubEventRepository{data: map[string]Event{}}
}

func (s *StubEventRepository) StoreEvent(ctx context.Context, event Event) error {
	s.data[event.Id] = event
	return nil
}

func (s *StubEventRepository) GetEvent(ctx context.Context, eventId string) (Event, error) {
	event, ok := s.data[eventId]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *StubEventRepository) GetEventsForUser(ctx context.Context, userId int, from time.Time) ([]Event, error) {
	events := make([]Event, 0)
	for _, event := range s.data {
		if event.CreatedBy == userId && !event.Date.Before(from) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func (s *StubEventRepository) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	existing, ok := s.data[event.Id]
	if !ok {
		return false, nil
	}
	event.CreatedBy = existing.CreatedBy
	s.data[event.Id] = event
	return true, nil
}

func (s *StubEventRepository) DeleteEvent(ctx context.Context, eventId string) error {
	delete(s.data, eventId)
	return nil
}
