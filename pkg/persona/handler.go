package persona

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type PersonaDTO struct {
	Id                  string   `json:"id,omitempty"`
	OwnerEmail          string   `json:"ownerEmail"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	ProfileImage        string   `json:"profileImage,omitempty"`
	Interests           []string `json:"interests"`
	PreferredActivities []string `json:"preferredActivities"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAllPersonas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	personas, err := h.service.GetAllPersonas(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PersonaDTO, 0, len(personas))
	for _, p := range personas {
		dtos = append(dtos, personaToDTO(p))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetPersona(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	personaId := mux.Vars(r)["personaId"]

	persona, err := h.service.GetPersona(r.Context(), personaId)
	if err != nil {
		if errors.Is(err, ErrPersonaNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(personaToDTO(persona)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreatePersona(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PersonaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePersona(r.Context(), dtoToPersona(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(personaToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func personaToDTO(p Persona) PersonaDTO {
	return PersonaDTO(p)
}

func dtoToPersona(dto PersonaDTO) Persona {
	return Persona(dto)
}
