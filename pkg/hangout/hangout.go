package hangout

import "time"

type HangoutType string

const (
	TypeHangout HangoutType = "Hangout"
	TypeWalk    HangoutType = "Walk"
	TypeDinner  HangoutType = "Dinner"
)

func (t HangoutType) IsValid() bool {
	switch t {
	case TypeHangout, TypeWalk, TypeDinner:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Request is a proposal to hang out with a persona at a chosen time slot.
// It starts out pending and is later approved or declined by the persona's
// owner.
type Request struct {
	Id            string
	UserId        int
	PersonaId     string
	Type          HangoutType
	ProposedTime  time.Time
	DurationHours float64
	Status        Status
	CreatedAt     time.Time
}
