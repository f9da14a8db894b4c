package user

import (
	"context"
	"testing"

	"github.com/cheemco/cheemco/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() User {
	return User{
		Uid:         "firebase-uid-1",
		DisplayName: "Alex",
		Email:       "alex@cheemco.app",
		FcmToken:    "device-token",
		Settings:    Settings{Timezone: "Europe/Warsaw"},
	}
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and retrieves a user", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)

		id, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)
		require.NotZero(t, id)

		stored, err := repo.GetUser(ctx, id)
		require.NoError(t, err)
		expected := sampleUser()
		expected.Id = id
		assert.Equal(t, expected, stored)
	})

	t.Run("looks up a user by firebase uid", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		id, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)

		stored, err := repo.GetUserByUid(ctx, "firebase-uid-1")
		require.NoError(t, err)
		assert.Equal(t, id, stored.Id)
	})

	t.Run("looks up a user by email", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		id, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)

		stored, err := repo.GetUserByEmail(ctx, "alex@cheemco.app")
		require.NoError(t, err)
		assert.Equal(t, id, stored.Id)
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)

		_, err := repo.GetUser(ctx, 999)
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.GetUserByUid(ctx, "missing")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.GetUserByEmail(ctx, "missing@cheemco.app")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects duplicate uid", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		_, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)

		duplicate := sampleUser()
		duplicate.Email = "other@cheemco.app"
		_, err = repo.CreateUser(ctx, duplicate)
		assert.Error(t, err)
	})

	t.Run("updates profile fields", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		id, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)

		changed := sampleUser()
		changed.DisplayName = "Alexandra"
		changed.FcmToken = "new-token"
		changed.Settings.Timezone = "America/New_York"
		updated, err := repo.UpdateUser(ctx, id, changed)
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", updated.DisplayName)
		assert.Equal(t, "new-token", updated.FcmToken)
		assert.Equal(t, "America/New_York", updated.Settings.Timezone)
	})

	t.Run("deletes a user", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		id, err := repo.CreateUser(ctx, sampleUser())
		require.NoError(t, err)

		require.NoError(t, repo.DeleteUser(ctx, id))

		_, err = repo.GetUser(ctx, id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
