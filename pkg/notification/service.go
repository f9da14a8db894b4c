package notification

import (
	"context"
	"fmt"

	"github.com/cheemco/cheemco/internal/event_bus"
	"github.com/cheemco/cheemco/pkg/user"
	log "github.com/sirupsen/logrus"
)

// UserFinder is the slice of the user service needed to resolve device tokens.
type UserFinder interface {
	GetUser(ctx context.Context, id int) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}

// PersonaOwnerFunc resolves the email account that owns a persona.
type PersonaOwnerFunc func(ctx context.Context, personaId string) (string, error)

// Service pushes hangout-request updates to the users involved. It reacts to
// event bus events rather than being called directly, so publishers do not
// depend on push delivery.
type Service struct {
	users        UserFinder
	personaOwner PersonaOwnerFunc
	notifier     Notifier
}

func NewService(users UserFinder, personaOwner PersonaOwnerFunc, notifier Notifier) *Service {
	return &Service{users: users, personaOwner: personaOwner, notifier: notifier}
}

// Subscribe registers the service's handlers on the bus.
func (s *Service) Subscribe(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.HangoutRequestCreatedType, s.onRequestCreated)
	event_bus.SubscribeTyped(bus, event_bus.HangoutRequestStatusChangedType, s.onStatusChanged)
}

// onRequestCreated notifies the persona's owner that a new request is waiting.
func (s *Service) onRequestCreated(e event_bus.EventT[event_bus.HangoutRequestCreated]) error {
	ctx := e.Context()

	ownerEmail, err := s.personaOwner(ctx, e.Data.PersonaId)
	if err != nil {
		return fmt.Errorf("failed to resolve persona owner for %s: %w", e.Data.PersonaId, err)
	}
	owner, err := s.users.GetUserByEmail(ctx, ownerEmail)
	if err != nil {
		log.Debugf("persona owner %s has no account, skipping push", ownerEmail)
		return nil
	}
	if owner.FcmToken == "" {
		log.Debugf("persona owner %s has no device token, skipping push", ownerEmail)
		return nil
	}

	return s.notifier.Send(ctx, owner.FcmToken,
		"New hangout request",
		fmt.Sprintf("Someone proposed a %s on %s", e.Data.HangoutType, e.Data.ProposedTime.Format("Mon, Jan 2 15:04")),
		map[string]string{
			"requestId": e.Data.RequestId,
			"type":      "hangout_request_created",
		})
}

// onStatusChanged notifies the requester of the decision.
func (s *Service) onStatusChanged(e event_bus.EventT[event_bus.HangoutRequestStatusChanged]) error {
	ctx := e.Context()

	requester, err := s.users.GetUser(ctx, e.Data.UserId)
	if err != nil {
		return fmt.Errorf("failed to resolve user %d: %w", e.Data.UserId, err)
	}
	if requester.FcmToken == "" {
		log.Debugf("user %d has no device token, skipping push", e.Data.UserId)
		return nil
	}

	return s.notifier.Send(ctx, requester.FcmToken,
		"Hangout request "+e.Data.NewStatus,
		fmt.Sprintf("Your hangout request was %s", e.Data.NewStatus),
		map[string]string{
			"requestId": e.Data.RequestId,
			"type":      "hangout_request_status_changed",
			"status":    e.Data.NewStatus,
		})
}
