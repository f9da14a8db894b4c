package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cheemco/cheemco/internal/rest"
)

type DaySlotsDTO struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s}
}

func (h *Handler) GetAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	durationString := r.URL.Query().Get("duration")
	duration, err := strconv.ParseFloat(durationString, 64)
	if err != nil || duration <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid duration",
			Details: "'duration' must be a positive number of hours",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	email := r.URL.Query().Get("email")

	daySlots, err := h.service.GetAvailableTimeSlots(r.Context(), email, duration)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if errors.Is(err, ErrInvalidDuration) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DaySlotsDTO, 0, len(daySlots))
	for _, d := range daySlots {
		dtos = append(dtos, toDaySlotsDTO(d))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func toDaySlotsDTO(d DaySlots) DaySlotsDTO {
	return DaySlotsDTO{
		Date:  d.Date.Format("2006-01-02"),
		Slots: d.Slots,
	}
}
