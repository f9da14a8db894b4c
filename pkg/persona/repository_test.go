package persona

import (
	"context"
	"testing"

	"github.com/cheemco/cheemco/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePersona(id string, name string) Persona {
	return Persona{
		Id:                  id,
		OwnerEmail:          "owner@cheemco.app",
		Name:                name,
		Type:                "Friend",
		Description:         "Always up for a walk",
		ProfileImage:        "https://cdn.cheemco.app/p/" + id + ".png",
		Interests:           []string{"hiking", "board games"},
		PreferredActivities: []string{"Walk", "Dinner"},
	}
}

func TestPersonaRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves a persona with its lists", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		persona := samplePersona("p-1", "Alex")

		require.NoError(t, repo.StorePersona(ctx, persona))

		stored, err := repo.GetPersona(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, persona, stored)
	})

	t.Run("handles empty interest lists", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		persona := samplePersona("p-1", "Alex")
		persona.Interests = nil
		persona.PreferredActivities = nil

		require.NoError(t, repo.StorePersona(ctx, persona))

		stored, err := repo.GetPersona(ctx, "p-1")
		require.NoError(t, err)
		assert.Empty(t, stored.Interests)
		assert.Empty(t, stored.PreferredActivities)
	})

	t.Run("returns not found for unknown persona", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)

		_, err := repo.GetPersona(ctx, "missing")
		assert.ErrorIs(t, err, ErrPersonaNotFound)
	})

	t.Run("lists all personas by name", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		require.NoError(t, repo.StorePersona(ctx, samplePersona("p-2", "Zoe")))
		require.NoError(t, repo.StorePersona(ctx, samplePersona("p-1", "Alex")))

		personas, err := repo.GetAllPersonas(ctx)
		require.NoError(t, err)
		require.Len(t, personas, 2)
		assert.Equal(t, "Alex", personas[0].Name)
		assert.Equal(t, "Zoe", personas[1].Name)
	})

	t.Run("deletes a persona", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		require.NoError(t, repo.StorePersona(ctx, samplePersona("p-1", "Alex")))

		require.NoError(t, repo.DeletePersona(ctx, "p-1"))

		_, err := repo.GetPersona(ctx, "p-1")
		assert.ErrorIs(t, err, ErrPersonaNotFound)
	})
}

func TestOwnerEmail(t *testing.T) {
	t.Run("resolves the persona owner", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		service := NewService(NewRepository(db))
		created, err := service.CreatePersona(context.Background(), samplePersona("", "Alex"))
		require.NoError(t, err)

		email, err := service.OwnerEmail(context.Background(), created.Id)
		require.NoError(t, err)
		assert.Equal(t, "owner@cheemco.app", email)
	})

	t.Run("propagates not found", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		service := NewService(NewRepository(db))

		_, err := service.OwnerEmail(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrPersonaNotFound)
	})
}
