package reminder

import (
	"context"
	"fmt"

	"github.com/cheemco/cheemco/pkg/user"
	"github.com/google/uuid"
)

type Service interface {
	CreateReminder(ctx context.Context, reminder Reminder) (Reminder, error)
	GetReminders(ctx context.Context) ([]Reminder, error)
	SetCompleted(ctx context.Context, reminderId string, completed bool) error
	DeleteReminder(ctx context.Context, reminderId string) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) CreateReminder(ctx context.Context, reminder Reminder) (Reminder, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Reminder{}, fmt.Errorf("failed to get current user: %w", err)
	}
	reminder.Id = uuid.NewString()
	reminder.UserId = userId
	reminder.Completed = false
	if err := s.repo.StoreReminder(ctx, reminder); err != nil {
		return Reminder{}, err
	}
	return reminder, nil
}

func (s *ServiceImpl) GetReminders(ctx context.Context) ([]Reminder, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetRemindersForUser(ctx, userId)
}

func (s *ServiceImpl) SetCompleted(ctx context.Context, reminderId string, completed bool) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	updated, err := s.repo.SetCompleted(ctx, userId, reminderId, completed)
	if err != nil {
		return err
	}
	if !updated {
		return ErrReminderNotFound
	}
	return nil
}

func (s *ServiceImpl) DeleteReminder(ctx context.Context, reminderId string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.DeleteReminder(ctx, userId, reminderId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReminderNotFound
	}
	return nil
}
