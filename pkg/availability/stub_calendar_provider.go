package availability

import (
	"context"
	"time"
)

// StubCalendarProvider is an in-memory CalendarProvider for tests.
type StubCalendarProvider struct {
	CalendarId string
	Busy       []BusyInterval

	PrimaryErr error
	BusyErr    error

	PrimaryCalls int
	BusyCalls    []BusyIntervalsCall
}

type BusyIntervalsCall struct {
	CalendarId string
	From       time.Time
	To         time.Time
}

func NewStubCalendarProvider() *StubCalendarProvider {
	return &StubCalendarProvider{CalendarId: "primary@example.com"}
}

func (s *StubCalendarProvider) PrimaryCalendar(ctx context.Context) (string, error) {
	s.PrimaryCalls++
	if s.PrimaryErr != nil {
		return "", s.PrimaryErr
	}
	return s.CalendarId, nil
}

func (s *StubCalendarProvider) BusyIntervals(ctx context.Context, calendarId string, from time.Time, to time.Time) ([]BusyInterval, error) {
	s.BusyCalls = append(s.BusyCalls, BusyIntervalsCall{CalendarId: calendarId, From: from, To: to})
	if s.BusyErr != nil {
		return nil, s.BusyErr
	}
	return s.Busy, nil
}
