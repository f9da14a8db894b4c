package event

import (
	"context"
	"database/sql"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	StoreEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, eventId string) (Event, error)
	GetEventsForUser(ctx context.Context, userId int, from time.Time) ([]Event, error)
	UpdateEvent(ctx context.Context, event Event) (bool, error)
	DeleteEvent(ctx context.Context, eventId string) error
}

type EventRepositoryImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepositoryImpl {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) StoreEvent(ctx context.Context, event Event) error {
	query := `INSERT INTO event (id, title, date, duration_hours, type, created_by) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		event.Id,
		event.Title,
		event.Date.UTC().Format(time.RFC3339),
		event.DurationHours,
		event.Type,
		event.CreatedBy,
	)
	if err != nil {
		log.Errorf("failed to store event: %v", err)
	}
	return err
}

func (r *EventRepositoryImpl) GetEvent(ctx context.Context, eventId string) (Event, error) {
	query := `SELECT id, title, date, duration_hours, type, created_by FROM event WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, eventId)
	event, err := scanEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrEventNotFound
	} else if err != nil {
		log.Errorf("failed to get event %s: %v", eventId, err)
		return Event{}, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) GetEventsForUser(ctx context.Context, userId int, from time.Time) ([]Event, error) {
	query := `SELECT id, title, date, duration_hours, type, created_by FROM event
				WHERE created_by = ? AND date >= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userId, from.UTC().Format(time.RFC3339))
	if err != nil {
		log.Errorf("failed to query events: %v", err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	query := `UPDATE event SET title = ?, date = ?, duration_hours = ?, type = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		event.Title,
		event.Date.UTC().Format(time.RFC3339),
		event.DurationHours,
		event.Type,
		event.Id,
	)
	if err != nil {
		log.Errorf("failed to update event %s: %v", event.Id, err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EventRepositoryImpl) DeleteEvent(ctx context.Context, eventId string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM event WHERE id = ?", eventId)
	if err != nil {
		log.Errorf("failed to delete event %s: %v", eventId, err)
	}
	return err
}

func scanEvent(scan func(dest ...any) error) (Event, error) {
	var event Event
	var date string
	err := scan(
		&event.Id,
		&event.Title,
		&date,
		&event.DurationHours,
		&event.Type,
		&event.CreatedBy,
	)
	if err != nil {
		return Event{}, err
	}
	event.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return Event{}, err
	}
	return event, nil
}
