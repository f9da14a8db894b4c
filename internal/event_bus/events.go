package event_bus

import "time"

const (
	HangoutRequestCreatedType       EventType = "hangout_request.created"
	HangoutRequestStatusChangedType EventType = "hangout_request.status_changed"
)

type HangoutRequestCreated struct {
	RequestId    string
	UserId       int
	PersonaId    string
	HangoutType  string
	ProposedTime time.Time
	// DurationHours is the requested length of the hangout.
	DurationHours float64
}

type HangoutRequestStatusChanged struct {
	RequestId string
	UserId    int
	OldStatus string
	NewStatus string
}
