//go:build integration
// +build integration

package pokemon_test

import (
	"context"
	"testing"

	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	sheeterr "github.com/statblock/pokesheet/internal/errors"
	pokemonrepo "github.com/statblock/pokesheet/internal/repositories/pokemon"
	"github.com/statblock/pokesheet/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := pokemonrepo.NewRedis(client)
	ctx := context.Background()

	t.Run("create and retrieve pokemon", func(t *testing.T) {
		p := testutils.CreateTestPokemon("int-pkmn-1", "trainer-123", "Sparky")

		require.NoError(t, repo.Create(ctx, p))

		retrieved, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, retrieved.ID)
		assert.Equal(t, p.TrainerID, retrieved.TrainerID)
		assert.Equal(t, p.Name, retrieved.Name)
		assert.Equal(t, p.Experience, retrieved.Experience)
		assert.Equal(t, p.Stats, retrieved.Stats)
		assert.Equal(t, p.Capabilities, retrieved.Capabilities)
		assert.Equal(t, p.CurrentHealth, retrieved.CurrentHealth)
	})

	t.Run("create duplicate pokemon fails", func(t *testing.T) {
		p := testutils.CreateTestPokemon("int-pkmn-2", "trainer-123", "Ember")

		require.NoError(t, repo.Create(ctx, p))
		err := repo.Create(ctx, p)
		assert.True(t, sheeterr.IsAlreadyExists(err))
	})

	t.Run("update pokemon", func(t *testing.T) {
		p := testutils.CreateTestPokemon("int-pkmn-3", "trainer-123", "Splash")
		require.NoError(t, repo.Create(ctx, p))

		updated := p.SetCombatStage(domain.StatAttack, 3).AddCapability("swim", "Swim", 4)
		require.NoError(t, repo.Update(ctx, updated))

		retrieved, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, retrieved.Stats.CombatStages.Get(domain.StatAttack))
		assert.True(t, retrieved.HasCapability("swim"))
	})

	t.Run("list by trainer", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutils.CreateTestPokemon("int-pkmn-4", "trainer-456", "Rocky")))
		require.NoError(t, repo.Create(ctx, testutils.CreateTestPokemon("int-pkmn-5", "trainer-456", "Leafy")))

		list, err := repo.GetByTrainer(ctx, "trainer-456")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("delete pokemon", func(t *testing.T) {
		p := testutils.CreateTestPokemon("int-pkmn-6", "trainer-789", "Ghosty")
		require.NoError(t, repo.Create(ctx, p))
		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err := repo.Get(ctx, p.ID)
		assert.True(t, sheeterr.IsNotFound(err))

		list, err := repo.GetByTrainer(ctx, "trainer-789")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
