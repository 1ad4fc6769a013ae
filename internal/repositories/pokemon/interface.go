package pokemon

//go:generate mockgen -destination=mock/mock.go -package=mockpokemon -source=interface.go

import (
	"context"
	"time"

	"github.com/statblock/pokesheet/internal/domain/pokemon"
)

// Repository defines the interface for pokémon persistence. It is the
// "character loader" collaborator of the derivation engine: the engine
// itself never loads or stores anything.
type Repository interface {
	// Create stores a new pokémon, assigning an ID if it has none
	Create(ctx context.Context, p *pokemon.Pokemon) error

	// Get retrieves a pokémon by ID
	Get(ctx context.Context, id string) (*pokemon.Pokemon, error)

	// GetByTrainer retrieves all pokémon belonging to a trainer
	GetByTrainer(ctx context.Context, trainerID string) ([]*pokemon.Pokemon, error)

	// Update replaces an existing pokémon snapshot
	Update(ctx context.Context, p *pokemon.Pokemon) error

	// Delete removes a pokémon
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies the current time, mockable for tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock time in UTC
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
