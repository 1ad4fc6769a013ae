package pokemon_test

import (
	"context"
	"testing"

	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	sheeterr "github.com/statblock/pokesheet/internal/errors"
	pokemonrepo "github.com/statblock/pokesheet/internal/repositories/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPokemon(id, trainerID, name string) *domain.Pokemon {
	p := domain.New()
	p.ID = id
	p.TrainerID = trainerID
	p.Name = name
	return p
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	p := newTestPokemon("pkmn-1", "trainer-1", "Sparky")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, "pkmn-1")
	require.NoError(t, err)
	assert.Equal(t, "Sparky", got.Name)

	// The stored snapshot is isolated from later caller mutations.
	p.Name = "changed"
	got, err = repo.Get(ctx, "pkmn-1")
	require.NoError(t, err)
	assert.Equal(t, "Sparky", got.Name)
}

func TestInMemoryRepository_Create_AssignsID(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	p := newTestPokemon("", "trainer-1", "Sparky")
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
}

func TestInMemoryRepository_Create_Duplicate(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPokemon("pkmn-1", "trainer-1", "Sparky")))
	err := repo.Create(ctx, newTestPokemon("pkmn-1", "trainer-1", "Sparky"))
	assert.True(t, sheeterr.IsAlreadyExists(err))
}

func TestInMemoryRepository_Get_NotFound(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, sheeterr.IsNotFound(err))
}

func TestInMemoryRepository_GetByTrainer(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPokemon("pkmn-1", "trainer-1", "Sparky")))
	require.NoError(t, repo.Create(ctx, newTestPokemon("pkmn-2", "trainer-1", "Ember")))
	require.NoError(t, repo.Create(ctx, newTestPokemon("pkmn-3", "trainer-2", "Splash")))

	got, err := repo.GetByTrainer(ctx, "trainer-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.GetByTrainer(ctx, "trainer-3")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryRepository_Update(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	p := newTestPokemon("pkmn-1", "trainer-1", "Sparky")
	require.NoError(t, repo.Create(ctx, p))

	updated := p.SetAddedStat(domain.StatSpeed, "3")
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "pkmn-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stats.Added.Get(domain.StatSpeed))

	err = repo.Update(ctx, newTestPokemon("missing", "trainer-1", "Ghost"))
	assert.True(t, sheeterr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := pokemonrepo.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPokemon("pkmn-1", "trainer-1", "Sparky")))
	require.NoError(t, repo.Delete(ctx, "pkmn-1"))

	_, err := repo.Get(ctx, "pkmn-1")
	assert.True(t, sheeterr.IsNotFound(err))

	// Deleting a missing ID is a no-op.
	assert.NoError(t, repo.Delete(ctx, "pkmn-1"))
}
