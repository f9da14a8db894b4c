package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cheemco/cheemco/pkg/user"
	"github.com/gorilla/mux"
)

type EventDTO struct {
	Id            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	DurationHours float64   `json:"durationHours"`
	Type          string    `json:"type"`
}

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateEvent(r.Context(), dtoToEvent(dto))
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := h.service.GetUpcomingEvents(r.Context())
	if err != nil {
		writeEventError(w, err)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	event, err := h.service.GetEvent(r.Context(), eventId)
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	event := dtoToEvent(dto)
	event.Id = eventId

	updated, err := h.service.UpdateEvent(r.Context(), event)
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventId := mux.Vars(r)["eventId"]

	if err := h.service.DeleteEvent(r.Context(), eventId); err != nil {
		writeEventError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrInvalidDuration):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, user.ErrNoUser):
		w.WriteHeader(http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		Id:            e.Id,
		Title:         e.Title,
		Date:          e.Date,
		DurationHours: e.DurationHours,
		Type:          e.Type,
	}
}

func dtoToEvent(dto EventDTO) Event {
	return Event{
		Id:            dto.Id,
		Title:         dto.Title,
		Date:          dto.Date,
		DurationHours: dto.DurationHours,
		Type:          dto.Type,
	}
}
