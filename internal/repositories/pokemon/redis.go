package pokemon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	sheeterr "github.com/statblock/pokesheet/internal/errors"
	"github.com/statblock/pokesheet/internal/uuid"
)

// CapabilityData is the serialized form of one attached capability
type CapabilityData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PokemonData represents the serialized form of a pokémon in Redis
type PokemonData struct {
	ID            string              `json:"id"`
	TrainerID     string              `json:"trainer_id"`
	Name          string              `json:"name"`
	SpeciesID     string              `json:"species_id"`
	SpeciesLabel  string              `json:"species_label"`
	Experience    int                 `json:"experience"`
	BaseStats     map[domain.Stat]int `json:"base_stats"`
	AddedStats    map[domain.Stat]int `json:"added_stats"`
	CombatStages  map[domain.Stat]int `json:"combat_stages"`
	CurrentHealth int                 `json:"current_health"`
	Capabilities  []CapabilityData    `json:"capabilities"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRedisRepository creates a new Redis-backed pokémon repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = RealTimeProvider{}
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
}

// NewRedis creates a Redis-backed repository with default collaborators
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
	})
}

// key generates the Redis key for a pokémon
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("pokemon:%s", id)
}

// trainerPokemonKey generates the Redis key for a trainer's pokémon set
func (r *redisRepo) trainerPokemonKey(trainerID string) string {
	return fmt.Sprintf("trainer:%s:pokemon", trainerID)
}

// Create stores a new pokémon
func (r *redisRepo) Create(ctx context.Context, p *domain.Pokemon) error {
	if p == nil {
		return sheeterr.InvalidArgument("pokemon cannot be nil")
	}
	if p.TrainerID == "" {
		return sheeterr.InvalidArgument("pokemon trainer ID is required")
	}
	if p.ID == "" {
		p.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(p.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check pokemon existence: %w", err)
	}
	if exists > 0 {
		return sheeterr.AlreadyExistsf("pokemon with ID '%s' already exists", p.ID).
			WithMeta("pokemon_id", p.ID)
	}

	data := toPokemonData(p)
	data.CreatedAt = r.timeProvider.Now()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal pokemon: %w", err)
	}

	// Document write and trainer index update go through one pipeline
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(p.ID), jsonData, 0)
	pipe.SAdd(ctx, r.trainerPokemonKey(p.TrainerID), p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create pokemon: %w", err)
	}

	return nil
}

// Get retrieves a pokémon by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*domain.Pokemon, error) {
	if id == "" {
		return nil, sheeterr.InvalidArgument("pokemon ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, sheeterr.NotFoundf("pokemon with ID '%s' not found", id).
			WithMeta("pokemon_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon: %w", err)
	}

	var data PokemonData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal pokemon: %w", unmarshalErr)
	}

	return fromPokemonData(&data), nil
}

// GetByTrainer retrieves all pokémon belonging to a trainer
func (r *redisRepo) GetByTrainer(ctx context.Context, trainerID string) ([]*domain.Pokemon, error) {
	if trainerID == "" {
		return nil, sheeterr.InvalidArgument("trainer ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.trainerPokemonKey(trainerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon IDs: %w", err)
	}

	result := make([]*domain.Pokemon, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			p, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get pokemon %s: %w", id, err)
			}
			result[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Update replaces an existing pokémon snapshot
func (r *redisRepo) Update(ctx context.Context, p *domain.Pokemon) error {
	if p == nil {
		return sheeterr.InvalidArgument("pokemon cannot be nil")
	}
	if p.ID == "" {
		return sheeterr.InvalidArgument("pokemon ID is required")
	}

	existing, err := r.client.Get(ctx, r.key(p.ID)).Result()
	if err == redis.Nil {
		return sheeterr.NotFoundf("pokemon with ID '%s' not found", p.ID).
			WithMeta("pokemon_id", p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get pokemon: %w", err)
	}

	var existingData PokemonData
	if unmarshalErr := json.Unmarshal([]byte(existing), &existingData); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal pokemon: %w", unmarshalErr)
	}

	data := toPokemonData(p)
	data.CreatedAt = existingData.CreatedAt
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal pokemon: %w", err)
	}

	if err := r.client.Set(ctx, r.key(p.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update pokemon: %w", err)
	}

	return nil
}

// Delete removes a pokémon and its trainer index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return sheeterr.InvalidArgument("pokemon ID is required")
	}

	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.trainerPokemonKey(p.TrainerID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete pokemon: %w", err)
	}

	return nil
}

// toPokemonData converts the domain entity to its stored form
func toPokemonData(p *domain.Pokemon) *PokemonData {
	data := &PokemonData{
		ID:            p.ID,
		TrainerID:     p.TrainerID,
		Name:          p.Name,
		SpeciesID:     p.SpeciesID,
		SpeciesLabel:  p.SpeciesLabel,
		Experience:    p.Experience,
		BaseStats:     make(map[domain.Stat]int, 6),
		AddedStats:    make(map[domain.Stat]int, 6),
		CombatStages:  make(map[domain.Stat]int, 5),
		CurrentHealth: p.CurrentHealth,
	}

	for _, s := range domain.AllStats() {
		data.BaseStats[s] = p.Stats.Base.Get(s)
		data.AddedStats[s] = p.Stats.Added.Get(s)
	}
	for _, s := range domain.CombatStats() {
		data.CombatStages[s] = p.Stats.CombatStages.Get(s)
	}

	for _, c := range p.Capabilities {
		data.Capabilities = append(data.Capabilities, CapabilityData{
			ID:    c.ID,
			Label: c.Label,
			Value: c.Value,
		})
	}

	return data
}

// fromPokemonData converts a stored document back to the domain entity.
// Out-of-range values in old documents are clamped here so a corrupt
// record can never produce an invalid snapshot.
func fromPokemonData(data *PokemonData) *domain.Pokemon {
	p := domain.New()
	p.ID = data.ID
	p.TrainerID = data.TrainerID
	p.Name = data.Name
	p.SpeciesID = data.SpeciesID
	p.SpeciesLabel = data.SpeciesLabel
	p.CurrentHealth = data.CurrentHealth

	if data.Experience > 0 {
		p.Experience = data.Experience
	}

	for _, s := range domain.AllStats() {
		p.Stats.Base[s] = domain.StatBlock(data.BaseStats).Get(s)
		p.Stats.Added[s] = domain.StatBlock(data.AddedStats).Get(s)
	}
	for _, s := range domain.CombatStats() {
		p.Stats.CombatStages[s] = domain.CombatStages(data.CombatStages).Get(s)
	}

	for _, c := range data.Capabilities {
		p = p.AddCapability(c.ID, c.Label, c.Value)
	}

	return p
}
