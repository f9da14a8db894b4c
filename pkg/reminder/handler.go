package reminder

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cheemco/cheemco/pkg/user"
	"github.com/gorilla/mux"
)

type ReminderDTO struct {
	Id        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

type completedUpdateDTO struct {
	Completed bool `json:"completed"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ReminderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateReminder(r.Context(), Reminder{Title: dto.Title, Date: dto.Date})
	if err != nil {
		writeReminderError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(reminderToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetReminders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	reminders, err := h.service.GetReminders(r.Context())
	if err != nil {
		writeReminderError(w, err)
		return
	}

	dtos := make([]ReminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		dtos = append(dtos, reminderToDTO(reminder))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	reminderId := mux.Vars(r)["reminderId"]

	var dto completedUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetCompleted(r.Context(), reminderId, dto.Completed); err != nil {
		writeReminderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	reminderId := mux.Vars(r)["reminderId"]

	if err := h.service.DeleteReminder(r.Context(), reminderId); err != nil {
		writeReminderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeReminderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrReminderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, user.ErrNoUser):
		w.WriteHeader(http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func reminderToDTO(r Reminder) ReminderDTO {
	return ReminderDTO{
		Id:        r.Id,
		Title:     r.Title,
		Date:      r.Date,
		Completed: r.Completed,
	}
}
