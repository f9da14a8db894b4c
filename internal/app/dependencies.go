package app

import (
	"context"
	"database/sql"

	"github.com/cheemco/cheemco/internal/auth"
	"github.com/cheemco/cheemco/internal/config"
	"github.com/cheemco/cheemco/internal/event_bus"
	"github.com/cheemco/cheemco/pkg/availability"
	"github.com/cheemco/cheemco/pkg/event"
	"github.com/cheemco/cheemco/pkg/google"
	"github.com/cheemco/cheemco/pkg/hangout"
	"github.com/cheemco/cheemco/pkg/notification"
	"github.com/cheemco/cheemco/pkg/persona"
	"github.com/cheemco/cheemco/pkg/reminder"
	"github.com/cheemco/cheemco/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	AuthTokenVerifier auth.TokenVerifier

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service

	AvailabilityService availability.Service
	AvailabilityHandler *availability.Handler

	PersonaRepo    persona.Repository
	PersonaService persona.Service
	PersonaHandler *persona.Handler

	Bus *event_bus.EventBus

	HangoutRepo    hangout.Repository
	HangoutService hangout.Service
	HangoutHandler *hangout.Handler

	EventService event.EventService
	EventHandler *event.EventHandler

	ReminderService reminder.Service
	ReminderHandler *reminder.Handler

	NotificationService *notification.Service
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)

	deps.AvailabilityService = availability.NewService(deps.GoogleService, cfg.Availability)
	deps.AvailabilityHandler = availability.NewHandler(deps.AvailabilityService)

	deps.PersonaRepo = persona.NewRepository(db)
	deps.PersonaService = persona.NewService(deps.PersonaRepo)
	deps.PersonaHandler = persona.NewHandler(deps.PersonaService)

	deps.Bus = event_bus.NewEventBus()

	deps.HangoutRepo = hangout.NewRepository(db)
	deps.HangoutService = hangout.NewService(deps.HangoutRepo, deps.Bus)
	deps.HangoutHandler = hangout.NewHandler(deps.HangoutService)

	deps.EventService = event.NewEventService(event.NewEventRepo(db))
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	deps.ReminderService = reminder.NewService(reminder.NewRepository(db))
	deps.ReminderHandler = reminder.NewHandler(deps.ReminderService)

	if cfg.Firebase.Enabled {
		ctx := context.Background()

		verifier, err := auth.NewFirebaseTokenVerifier(ctx, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("failed to initialize Firebase token verifier: %v", err)
		}
		deps.AuthTokenVerifier = verifier

		notifier, err := notification.NewFcmNotifier(ctx, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("failed to initialize FCM notifier: %v", err)
		}
		deps.NotificationService = notification.NewService(deps.UserService, deps.PersonaService.OwnerEmail, notifier)
		deps.NotificationService.Subscribe(deps.Bus)
	} else {
		log.Info("Firebase integration disabled: ID token verification and push notifications are off")
	}

	return deps
}
