package availability

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

// BusyInterval is an externally reported span of time during which an account
// is unavailable. Instants may be in any zone representation; the engine
// converts them once into the search location.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Horizon is the date range over which slots are searched.
type Horizon struct {
	From time.Time
	To   time.Time
}

// BusinessHours is the daily local time-of-day window within which slots may
// be offered. Hours are 0..23 and apply per day, not to the whole horizon.
type BusinessHours struct {
	StartHour int
	EndHour   int
}

// DaySlots groups the open slot start times found for a single calendar day.
// Date is midnight of that day in the search location.
type DaySlots struct {
	Date  time.Time
	Slots []time.Time
}

var (
	ErrInvalidDuration      = errors.New("requested duration must be greater than zero")
	ErrInvalidBusinessHours = errors.New("business hours start must be before business hours end")
	ErrInvalidHorizon       = errors.New("horizon start must be before horizon end")
	ErrInvalidGranularity   = errors.New("slot granularity must be a positive number of minutes")
)

// ComputeAvailableSlots enumerates bookable start times of the requested
// duration between horizon.From and horizon.To, one DaySlots per calendar day
// that has at least one open slot, in ascending order.
//
// All comparisons happen in wall-clock time of the given location: busy
// intervals are shifted into it once, and day boundaries are built in it, so
// no comparison ever mixes time frames. Overlap is half-open, meaning a slot
// that ends exactly when a busy interval starts (or starts exactly when one
// ends) is not a conflict.
//
// On the horizon's first day the search does not start before horizon.From:
// its minute component is rounded up to the next multiple of the granularity,
// carrying into the next hour when rounding reaches 60.
//
// Busy intervals with end not after start carry no information and are
// dropped with a warning. The input slice is never modified.
func ComputeAvailableSlots(
	busy []BusyInterval,
	requestedDurationHours float64,
	horizon Horizon,
	hours BusinessHours,
	granularityMinutes int,
	location *time.Location,
) ([]DaySlots, error) {
	if requestedDurationHours <= 0 {
		return nil, ErrInvalidDuration
	}
	if hours.StartHour >= hours.EndHour {
		return nil, ErrInvalidBusinessHours
	}
	if !horizon.From.Before(horizon.To) {
		return nil, ErrInvalidHorizon
	}
	if granularityMinutes <= 0 {
		return nil, ErrInvalidGranularity
	}
	if location == nil {
		location = time.Local
	}

	duration := time.Duration(requestedDurationHours * float64(time.Hour))
	step := time.Duration(granularityMinutes) * time.Minute
	busyLocal := normalizeBusy(busy, location)

	from := horizon.From.In(location)
	to := horizon.To.In(location)
	firstDay := midnight(from, location)
	lastDay := midnight(to, location)

	var result []DaySlots
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), hours.StartHour, 0, 0, 0, location)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), hours.EndHour, 0, 0, 0, location)

		searchStart := dayStart
		if day.Equal(firstDay) && from.After(dayStart) {
			searchStart = roundUpToGrid(from, granularityMinutes, location)
		}

		var slots []time.Time
		for s := searchStart; !s.Add(duration).After(dayEnd); s = s.Add(step) {
			if !hasConflict(s, s.Add(duration), busyLocal) {
				slots = append(slots, s)
			}
		}
		if len(slots) > 0 {
			result = append(result, DaySlots{Date: day, Slots: slots})
		}
	}

	return result, nil
}

// normalizeBusy shifts busy intervals into the search location and drops
// malformed entries (end not after start).
func normalizeBusy(busy []BusyInterval, location *time.Location) []BusyInterval {
	normalized := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		if !b.End.After(b.Start) {
			log.Warnf("dropping malformed busy interval: start %s, end %s", b.Start, b.End)
			continue
		}
		normalized = append(normalized, BusyInterval{
			Start: b.Start.In(location),
			End:   b.End.In(location),
		})
	}
	return normalized
}

// roundUpToGrid rounds t's minute component up to the next multiple of
// granularityMinutes. time.Date normalizes minutes >= 60, so rounding past
// the hour carries forward instead of wrapping.
func roundUpToGrid(t time.Time, granularityMinutes int, location *time.Location) time.Time {
	rounded := (t.Minute() + granularityMinutes - 1) / granularityMinutes * granularityMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), rounded, 0, 0, location)
}

func hasConflict(slotStart, slotEnd time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if slotEnd.After(b.Start) && slotStart.Before(b.End) {
			return true
		}
	}
	return false
}

func midnight(t time.Time, location *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}
