package reminder

import (
	"context"
	"database/sql"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrReminderNotFound = errors.New("reminder not found")

type Repository interface {
	StoreReminder(ctx context.Context, reminder Reminder) error
	GetRemindersForUser(ctx context.Context, userId int) ([]Reminder, error)
	SetCompleted(ctx context.Context, userId int, reminderId string, completed bool) (bool, error)
	DeleteReminder(ctx context.Context, userId int, reminderId string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreReminder(ctx context.Context, reminder Reminder) error {
	query := `INSERT INTO reminder (id, user_id, title, date, completed) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		reminder.Id,
		reminder.UserId,
		reminder.Title,
		reminder.Date.UTC().Format(time.RFC3339),
		reminder.Completed,
	)
	if err != nil {
		log.Errorf("failed to store reminder: %v", err)
	}
	return err
}

func (r *RepositoryImpl) GetRemindersForUser(ctx context.Context, userId int) ([]Reminder, error) {
	query := `SELECT id, user_id, title, date, completed FROM reminder WHERE user_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		log.Errorf("failed to query reminders: %v", err)
		return nil, err
	}
	defer rows.Close()

	reminders := make([]Reminder, 0)
	for rows.Next() {
		var reminder Reminder
		var date string
		if err := rows.Scan(&reminder.Id, &reminder.UserId, &reminder.Title, &date, &reminder.Completed); err != nil {
			return nil, err
		}
		reminder.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (r *RepositoryImpl) SetCompleted(ctx context.Context, userId int, reminderId string, completed bool) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE reminder SET completed = ? WHERE id = ? AND user_id = ?",
		completed, reminderId, userId)
	if err != nil {
		log.Errorf("failed to update reminder %s: %v", reminderId, err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *RepositoryImpl) DeleteReminder(ctx context.Context, userId int, reminderId string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reminder WHERE id = ? AND user_id = ?", reminderId, userId)
	if err != nil {
		log.Errorf("failed to delete reminder %s: %v", reminderId, err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
