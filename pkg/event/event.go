package event

import "time"

// Event is a scheduled hangout that has been agreed on.
type Event struct {
	Id            string
	Title         string
	Date          time.Time
	DurationHours float64
	Type          string
	CreatedBy     int
}
