package hangout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHangoutService struct {
	submitResult Request
	submitErr    error
	updateResult Request
	updateErr    error
	requests     []Request
	gotStatus    Status
	gotRequestId string
}

func (s *stubHangoutService) SubmitRequest(_ context.Context, request Request) (Request, error) {
	if s.submitErr != nil {
		return Request{}, s.submitErr
	}
	return s.submitResult, nil
}

func (s *stubHangoutService) GetRequestsForCurrentUser(context.Context) ([]Request, error) {
	return s.requests, nil
}

func (s *stubHangoutService) GetPendingRequests(context.Context) ([]Request, error) {
	return s.requests, nil
}

func (s *stubHangoutService) UpdateRequestStatus(_ context.Context, requestId string, status Status) (Request, error) {
	s.gotRequestId = requestId
	s.gotStatus = status
	if s.updateErr != nil {
		return Request{}, s.updateErr
	}
	return s.updateResult, nil
}

func TestHandlerSubmitRequest(t *testing.T) {
	t.Run("creates a request", func(t *testing.T) {
		service := &stubHangoutService{
			submitResult: Request{
				Id:            "req-1",
				UserId:        7,
				PersonaId:     "persona-1",
				Type:          TypeDinner,
				ProposedTime:  time.Date(2025, time.January, 15, 18, 0, 0, 0, time.UTC),
				DurationHours: 2,
				Status:        StatusPending,
				CreatedAt:     time.Date(2025, time.January, 13, 12, 0, 0, 0, time.UTC),
			},
		}
		handler := NewHandler(service)

		body := `{"personaId":"persona-1","hangoutType":"Dinner","proposedTime":"2025-01-15T18:00:00Z","durationHours":2}`
		request := httptest.NewRequest(http.MethodPost, "/api/hangout", strings.NewReader(body))
		response := httptest.NewRecorder()
		handler.SubmitRequest(response, request)

		assert.Equal(t, http.StatusCreated, response.Code)

		var dto RequestDTO
		require.NoError(t, json.NewDecoder(response.Body).Decode(&dto))
		assert.Equal(t, "req-1", dto.Id)
		assert.Equal(t, "pending", dto.Status)
	})

	t.Run("rejects non positive duration", func(t *testing.T) {
		handler := NewHandler(&stubHangoutService{})

		body := `{"personaId":"persona-1","hangoutType":"Dinner","durationHours":0}`
		request := httptest.NewRequest(http.MethodPost, "/api/hangout", strings.NewReader(body))
		response := httptest.NewRecorder()
		handler.SubmitRequest(response, request)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("rejects invalid hangout type", func(t *testing.T) {
		handler := NewHandler(&stubHangoutService{submitErr: ErrInvalidHangoutType})

		body := `{"personaId":"persona-1","hangoutType":"Skydiving","durationHours":1}`
		request := httptest.NewRequest(http.MethodPost, "/api/hangout", strings.NewReader(body))
		response := httptest.NewRecorder()
		handler.SubmitRequest(response, request)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestHandlerUpdateRequestStatus(t *testing.T) {
	patch := func(handler *Handler, requestId string, body string) *httptest.ResponseRecorder {
		router := mux.NewRouter()
		router.HandleFunc("/api/hangout/{requestId}/status", handler.UpdateRequestStatus).Methods("PATCH")
		request := httptest.NewRequest(http.MethodPatch, "/api/hangout/"+requestId+"/status", strings.NewReader(body))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)
		return response
	}

	t.Run("approves a request", func(t *testing.T) {
		service := &stubHangoutService{
			updateResult: Request{Id: "req-1", Status: StatusApproved},
		}
		handler := NewHandler(service)

		response := patch(handler, "req-1", `{"status":"approved"}`)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "req-1", service.gotRequestId)
		assert.Equal(t, StatusApproved, service.gotStatus)
	})

	t.Run("maps service errors to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"invalid status", ErrInvalidStatus, http.StatusBadRequest},
			{"unknown request", ErrRequestNotFound, http.StatusNotFound},
			{"already decided", ErrRequestNotPending, http.StatusConflict},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				handler := NewHandler(&stubHangoutService{updateErr: tc.err})

				response := patch(handler, "req-1", `{"status":"approved"}`)

				assert.Equal(t, tc.code, response.Code)
			})
		}
	})
}
