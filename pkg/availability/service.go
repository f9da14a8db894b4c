package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/internal/utils"
	"github.com/cheemco/cheemco/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ErrUnauthenticated is returned by calendar providers when the current user
// has not granted calendar access.
var ErrUnauthenticated = errors.New("user is unauthenticated, authentication is required")

// CalendarProvider supplies busy-interval data from an external calendar.
// Implemented by pkg/google against the Google Calendar API.
type CalendarProvider interface {
	// PrimaryCalendar resolves the signed-in account's primary calendar id.
	PrimaryCalendar(ctx context.Context) (string, error)
	// BusyIntervals returns the busy spans reported for the calendar between
	// from and to.
	BusyIntervals(ctx context.Context, calendarId string, from time.Time, to time.Time) ([]BusyInterval, error)
}

type Service interface {
	GetAvailableTimeSlots(ctx context.Context, email string, requestedDurationHours float64) ([]DaySlots, error)
}

type ServiceImpl struct {
	calendars CalendarProvider
	clock     utils.Clock
	cfg       config.Availability
}

func NewService(calendars CalendarProvider, cfg config.Availability) *ServiceImpl {
	return &ServiceImpl{calendars, &utils.SystemClock{}, cfg}
}

// GetAvailableTimeSlots finds open meeting slots of the requested length over
// the configured number of days ahead, against the calendar identified by
// email. An empty email means the signed-in account's primary calendar.
// Both remote lookups must succeed before any slots are computed.
func (s *ServiceImpl) GetAvailableTimeSlots(ctx context.Context, email string, requestedDurationHours float64) ([]DaySlots, error) {
	if requestedDurationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	calendarId := email
	if calendarId == "" {
		primary, err := s.calendars.PrimaryCalendar(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve primary calendar: %w", err)
		}
		calendarId = primary
	}

	now := s.clock.Now()
	horizon := Horizon{From: now, To: now.AddDate(0, 0, s.cfg.DaysAhead)}

	busy, err := s.calendars.BusyIntervals(ctx, calendarId, horizon.From, horizon.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals for calendar %s: %w", calendarId, err)
	}
	log.Debugf("found %d busy intervals for calendar %s", len(busy), calendarId)

	return ComputeAvailableSlots(
		busy,
		requestedDurationHours,
		horizon,
		BusinessHours{StartHour: s.cfg.BusinessHourStart, EndHour: s.cfg.BusinessHourEnd},
		s.cfg.GranularityMinutes,
		s.userLocation(ctx),
	)
}

// userLocation resolves the viewer's timezone from the current user's
// settings, falling back to the server's local zone.
func (s *ServiceImpl) userLocation(ctx context.Context) *time.Location {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil || currentUser.Settings.Timezone == "" {
		return time.Local
	}
	location, err := time.LoadLocation(currentUser.Settings.Timezone)
	if err != nil {
		log.Warnf("could not load location for timezone %s, using server local time", currentUser.Settings.Timezone)
		return time.Local
	}
	return location
}
