package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
}

type UserRepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, display_name, email, fcm_token, timezone) VALUES (?, ?, ?, ?, ?)`
	result, err := u.db.ExecContext(ctx, query,
		user.Uid,
		user.DisplayName,
		user.Email,
		user.FcmToken,
		user.Settings.Timezone,
	)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get created user id: %w", err)
	}
	return int(id), nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.getUserBy(ctx, "id = ?", id)
}

func (u *UserRepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.getUserBy(ctx, "uid = ?", uid)
}

func (u *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return u.getUserBy(ctx, "email = ?", email)
}

func (u *UserRepoImpl) getUserBy(ctx context.Context, condition string, arg any) (User, error) {
	query := `SELECT id, uid, display_name, email, fcm_token, timezone FROM users WHERE ` + condition
	var user User
	err := u.db.QueryRowContext(ctx, query, arg).
		Scan(
			&user.Id,
			&user.Uid,
			&user.DisplayName,
			&user.Email,
			&user.FcmToken,
			&user.Settings.Timezone,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = ?, email = ?, fcm_token = ?, timezone = ? WHERE id = ?`
	_, err := u.db.ExecContext(ctx, query,
		user.DisplayName,
		user.Email,
		user.FcmToken,
		user.Settings.Timezone,
		userId,
	)
	if err != nil {
		log.Errorf("failed to update user %d: %v", userId, err)
		return User{}, err
	}
	return u.GetUser(ctx, userId)
}

func (u *UserRepoImpl) DeleteUser(ctx context.Context, id int) error {
	_, err := u.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
	}
	return err
}
