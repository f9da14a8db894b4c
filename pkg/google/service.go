package google

import (
	"context"
	"fmt"
	"time"

	"github.com/cheemco/cheemco/pkg/availability"
	"github.com/cheemco/cheemco/pkg/user"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Service exposes the Google Calendar lookups needed by the availability
// search. It satisfies availability.CalendarProvider.
type Service interface {
	PrimaryCalendar(ctx context.Context) (string, error)
	BusyIntervals(ctx context.Context, calendarId string, from time.Time, to time.Time) ([]availability.BusyInterval, error)
}

type ServiceImpl struct {
	auth *GoogleAuth
}

func NewService(auth *GoogleAuth) *ServiceImpl {
	return &ServiceImpl{
		auth: auth,
	}
}

// PrimaryCalendar finds the primary entry in the signed-in account's calendar
// list and returns its id.
func (s *ServiceImpl) PrimaryCalendar(ctx context.Context) (string, error) {
	googleService, err := s.prepareGoogleService(ctx)
	if err != nil {
		return "", err
	}

	calendars, err := googleService.CalendarList.List().Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return "", err
	}
	for _, cal := range calendars.Items {
		if cal.Primary {
			return cal.Id, nil
		}
	}
	return "", fmt.Errorf("no primary calendar found for current user")
}

// BusyIntervals queries the free/busy endpoint for the calendar over
// [from, to]. Busy periods that cannot be parsed are skipped.
func (s *ServiceImpl) BusyIntervals(ctx context.Context, calendarId string, from time.Time, to time.Time) ([]availability.BusyInterval, error) {
	googleService, err := s.prepareGoogleService(ctx)
	if err != nil {
		return nil, err
	}

	response, err := googleService.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarId}},
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve free/busy data from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	calendarData, ok := response.Calendars[calendarId]
	if !ok {
		return nil, fmt.Errorf("free/busy response is missing calendar %s", calendarId)
	}

	busy := make([]availability.BusyInterval, 0, len(calendarData.Busy))
	for _, period := range calendarData.Busy {
		start, startErr := time.Parse(time.RFC3339, period.Start)
		end, endErr := time.Parse(time.RFC3339, period.End)
		if startErr != nil || endErr != nil {
			log.Warnf("skipping busy period with invalid time: %s - %s", period.Start, period.End)
			continue
		}
		busy = append(busy, availability.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

func (s *ServiceImpl) prepareGoogleService(ctx context.Context) (*calendar.Service, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, availability.ErrUnauthenticated
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}
