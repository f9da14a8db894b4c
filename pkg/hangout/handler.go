package hangout

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cheemco/cheemco/internal/rest"
	"github.com/cheemco/cheemco/pkg/user"
	"github.com/gorilla/mux"
)

type RequestDTO struct {
	Id            string    `json:"id,omitempty"`
	PersonaId     string    `json:"personaId"`
	Type          string    `json:"hangoutType"`
	ProposedTime  time.Time `json:"proposedTime"`
	DurationHours float64   `json:"durationHours"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

type statusUpdateDTO struct {
	Status string `json:"status"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// SubmitRequest godoc
// @Summary Submit a new hangout request
// @Tags Hangout
// @Accept json
// @Produce json
// @Param request body RequestDTO true "Hangout request"
// @Success 201 {object} RequestDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/hangout [post]
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto RequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.DurationHours <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Duration must be a positive number of hours",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	request, err := h.service.SubmitRequest(r.Context(), dtoToRequest(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidHangoutType) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Invalid hangout type",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, user.ErrNoUser) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(requestToDTO(request)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	requests, err := h.service.GetRequestsForCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeRequests(w, requests)
}

func (h *Handler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	requests, err := h.service.GetPendingRequests(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeRequests(w, requests)
}

func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	requestId := mux.Vars(r)["requestId"]

	var dto statusUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := h.service.UpdateRequestStatus(r.Context(), requestId, Status(dto.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ErrRequestNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(requestToDTO(request)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeRequests(w http.ResponseWriter, requests []Request) {
	dtos := make([]RequestDTO, 0, len(requests))
	for _, request := range requests {
		dtos = append(dtos, requestToDTO(request))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func requestToDTO(r Request) RequestDTO {
	return RequestDTO{
		Id:            r.Id,
		PersonaId:     r.PersonaId,
		Type:          string(r.Type),
		ProposedTime:  r.ProposedTime,
		DurationHours: r.DurationHours,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func dtoToRequest(dto RequestDTO) Request {
	return Request{
		Id:            dto.Id,
		PersonaId:     dto.PersonaId,
		Type:          HangoutType(dto.Type),
		ProposedTime:  dto.ProposedTime,
		DurationHours: dto.DurationHours,
	}
}
