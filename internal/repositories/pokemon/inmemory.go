package pokemon

import (
	"context"
	"sync"

	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	sheeterr "github.com/statblock/pokesheet/internal/errors"
	"github.com/statblock/pokesheet/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the pokémon
// repository, useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	pokemon       map[string]*domain.Pokemon
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		pokemon:       make(map[string]*domain.Pokemon),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Create stores a new pokémon
func (r *InMemoryRepository) Create(ctx context.Context, p *domain.Pokemon) error {
	if p == nil {
		return sheeterr.InvalidArgument("pokemon cannot be nil")
	}
	if p.TrainerID == "" {
		return sheeterr.InvalidArgument("pokemon trainer ID is required")
	}
	if p.ID == "" {
		p.ID = r.uuidGenerator.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pokemon[p.ID]; exists {
		return sheeterr.AlreadyExistsf("pokemon with ID '%s' already exists", p.ID).
			WithMeta("pokemon_id", p.ID)
	}

	r.pokemon[p.ID] = p.Clone()

	return nil
}

// Get retrieves a pokémon by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*domain.Pokemon, error) {
	if id == "" {
		return nil, sheeterr.InvalidArgument("pokemon ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.pokemon[id]
	if !exists {
		return nil, sheeterr.NotFoundf("pokemon with ID '%s' not found", id).
			WithMeta("pokemon_id", id)
	}

	return p.Clone(), nil
}

// GetByTrainer retrieves all pokémon belonging to a trainer
func (r *InMemoryRepository) GetByTrainer(ctx context.Context, trainerID string) ([]*domain.Pokemon, error) {
	if trainerID == "" {
		return nil, sheeterr.InvalidArgument("trainer ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Pokemon, 0)
	for _, p := range r.pokemon {
		if p.TrainerID == trainerID {
			result = append(result, p.Clone())
		}
	}

	return result, nil
}

// Update replaces an existing pokémon snapshot
func (r *InMemoryRepository) Update(ctx context.Context, p *domain.Pokemon) error {
	if p == nil {
		return sheeterr.InvalidArgument("pokemon cannot be nil")
	}
	if p.ID == "" {
		return sheeterr.InvalidArgument("pokemon ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pokemon[p.ID]; !exists {
		return sheeterr.NotFoundf("pokemon with ID '%s' not found", p.ID).
			WithMeta("pokemon_id", p.ID)
	}

	r.pokemon[p.ID] = p.Clone()

	return nil
}

// Delete removes a pokémon
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return sheeterr.InvalidArgument("pokemon ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pokemon, id)

	return nil
}
