package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/internal/utils"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityConfig() config.Availability {
	return config.Availability{
		BusinessHourStart:  8,
		BusinessHourEnd:    21,
		GranularityMinutes: 30,
		DaysAhead:          7,
	}
}

func warsawContext() context.Context {
	return user.WithUser(context.Background(), user.User{
		Id:       123,
		Email:    "viewer@cheemco.app",
		Settings: user.Settings{Timezone: "Europe/Warsaw"},
	})
}

func TestGetAvailableTimeSlots(t *testing.T) {
	t.Run("returns slots over the configured horizon", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		now := day(2025, time.January, 13, 9, 47)
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: now}, availabilityConfig()}

		result, err := service.GetAvailableTimeSlots(warsawContext(), "friend@example.com", 1)

		require.NoError(t, err)
		// day 1 plus 7 full days ahead
		assert.Len(t, result, 8)
		assert.Equal(t, day(2025, time.January, 13, 10, 0), result[0].Slots[0])
		assert.Equal(t, day(2025, time.January, 20, 0, 0), result[7].Date)

		require.Len(t, provider.BusyCalls, 1)
		assert.Equal(t, "friend@example.com", provider.BusyCalls[0].CalendarId)
		assert.Equal(t, now, provider.BusyCalls[0].From)
		assert.Equal(t, now.AddDate(0, 0, 7), provider.BusyCalls[0].To)
		assert.Zero(t, provider.PrimaryCalls)
	})

	t.Run("empty email falls back to the primary calendar", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		provider.CalendarId = "me@cheemco.app"
		now := day(2025, time.January, 13, 9, 0)
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: now}, availabilityConfig()}

		_, err := service.GetAvailableTimeSlots(warsawContext(), "", 1)

		require.NoError(t, err)
		assert.Equal(t, 1, provider.PrimaryCalls)
		require.Len(t, provider.BusyCalls, 1)
		assert.Equal(t, "me@cheemco.app", provider.BusyCalls[0].CalendarId)
	})

	t.Run("busy calendar time removes matching slots", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		provider.Busy = []BusyInterval{
			{Start: day(2025, time.January, 13, 10, 0), End: day(2025, time.January, 13, 12, 0)},
		}
		now := day(2025, time.January, 13, 8, 0)
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: now}, availabilityConfig()}

		result, err := service.GetAvailableTimeSlots(warsawContext(), "friend@example.com", 1)

		require.NoError(t, err)
		assert.NotContains(t, result[0].Slots, day(2025, time.January, 13, 10, 30))
		assert.Contains(t, result[0].Slots, day(2025, time.January, 13, 12, 0))
	})

	t.Run("rejects non positive duration before calling the calendar", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: day(2025, time.January, 13, 9, 0)}, availabilityConfig()}

		_, err := service.GetAvailableTimeSlots(warsawContext(), "friend@example.com", 0)

		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Empty(t, provider.BusyCalls)
		assert.Zero(t, provider.PrimaryCalls)
	})

	t.Run("propagates primary calendar resolution failure", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		provider.PrimaryErr = ErrUnauthenticated
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: day(2025, time.January, 13, 9, 0)}, availabilityConfig()}

		_, err := service.GetAvailableTimeSlots(warsawContext(), "", 1)

		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Empty(t, provider.BusyCalls)
	})

	t.Run("propagates busy interval lookup failure", func(t *testing.T) {
		provider := NewStubCalendarProvider()
		provider.BusyErr = errors.New("calendar backend unavailable")
		service := &ServiceImpl{provider, &utils.MockClock{FixedNow: day(2025, time.January, 13, 9, 0)}, availabilityConfig()}

		_, err := service.GetAvailableTimeSlots(warsawContext(), "friend@example.com", 1)

		assert.ErrorContains(t, err, "calendar backend unavailable")
	})
}
