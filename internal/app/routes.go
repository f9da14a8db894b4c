package app

import (
	"github.com/cheemco/cheemco/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Availability
	r.HandleFunc("/api/availability", deps.AvailabilityHandler.GetAvailableTimeSlots).Methods("GET")

	// Hangout requests
	r.HandleFunc("/api/hangout", deps.HangoutHandler.SubmitRequest).Methods("POST")
	r.HandleFunc("/api/hangout", deps.HangoutHandler.GetRequests).Methods("GET")
	r.HandleFunc("/api/hangout/pending", deps.HangoutHandler.GetPendingRequests).Methods("GET")
	r.HandleFunc("/api/hangout/{requestId}/status", deps.HangoutHandler.UpdateRequestStatus).Methods("PATCH")

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event", deps.EventHandler.GetUpcomingEvents).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// Reminders
	r.HandleFunc("/api/reminder", deps.ReminderHandler.CreateReminder).Methods("POST")
	r.HandleFunc("/api/reminder", deps.ReminderHandler.GetReminders).Methods("GET")
	r.HandleFunc("/api/reminder/{reminderId}/completed", deps.ReminderHandler.SetCompleted).Methods("PUT")
	r.HandleFunc("/api/reminder/{reminderId}", deps.ReminderHandler.DeleteReminder).Methods("DELETE")

	// Personas
	r.HandleFunc("/api/persona", deps.PersonaHandler.GetAllPersonas).Methods("GET")
	r.HandleFunc("/api/persona", deps.PersonaHandler.CreatePersona).Methods("POST")
	r.HandleFunc("/api/persona/{personaId}", deps.PersonaHandler.GetPersona).Methods("GET")

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
}
