package availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result        []DaySlots
	err           error
	gotEmail      string
	gotDuration   float64
	requestsCount int
}

func (s *stubService) GetAvailableTimeSlots(_ context.Context, email string, requestedDurationHours float64) ([]DaySlots, error) {
	s.requestsCount++
	s.gotEmail = email
	s.gotDuration = requestedDurationHours
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestHandlerGetAvailableTimeSlots(t *testing.T) {
	t.Run("returns slots grouped by day", func(t *testing.T) {
		service := &stubService{
			result: []DaySlots{
				{
					Date: day(2025, time.January, 13, 0, 0),
					Slots: []time.Time{
						day(2025, time.January, 13, 10, 0),
						day(2025, time.January, 13, 10, 30),
					},
				},
			},
		}
		handler := NewHandler(service)

		request := httptest.NewRequest(http.MethodGet, "/api/availability?duration=1.5&email=friend@example.com", nil)
		response := httptest.NewRecorder()
		handler.GetAvailableTimeSlots(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "friend@example.com", service.gotEmail)
		assert.Equal(t, 1.5, service.gotDuration)

		var dtos []DaySlotsDTO
		require.NoError(t, json.NewDecoder(response.Body).Decode(&dtos))
		require.Len(t, dtos, 1)
		assert.Equal(t, "2025-01-13", dtos[0].Date)
		assert.Len(t, dtos[0].Slots, 2)
	})

	t.Run("missing email means own calendar", func(t *testing.T) {
		service := &stubService{}
		handler := NewHandler(service)

		request := httptest.NewRequest(http.MethodGet, "/api/availability?duration=1", nil)
		response := httptest.NewRecorder()
		handler.GetAvailableTimeSlots(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "", service.gotEmail)
	})

	t.Run("rejects missing or malformed duration", func(t *testing.T) {
		service := &stubService{}
		handler := NewHandler(service)

		for _, url := range []string{
			"/api/availability",
			"/api/availability?duration=abc",
			"/api/availability?duration=0",
			"/api/availability?duration=-2",
		} {
			request := httptest.NewRequest(http.MethodGet, url, nil)
			response := httptest.NewRecorder()
			handler.GetAvailableTimeSlots(response, request)

			assert.Equal(t, http.StatusBadRequest, response.Code)
		}
		assert.Zero(t, service.requestsCount)
	})

	t.Run("unauthenticated calendar access returns 403", func(t *testing.T) {
		service := &stubService{err: ErrUnauthenticated}
		handler := NewHandler(service)

		request := httptest.NewRequest(http.MethodGet, "/api/availability?duration=1", nil)
		response := httptest.NewRecorder()
		handler.GetAvailableTimeSlots(response, request)

		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("backend failure returns 500", func(t *testing.T) {
		service := &stubService{err: errors.New("calendar backend unavailable")}
		handler := NewHandler(service)

		request := httptest.NewRequest(http.MethodGet, "/api/availability?duration=1", nil)
		response := httptest.NewRecorder()
		handler.GetAvailableTimeSlots(response, request)

		assert.Equal(t, http.StatusInternalServerError, response.Code)
	})
}
