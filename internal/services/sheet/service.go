package sheet

import (
	"context"

	"github.com/statblock/pokesheet/internal/clients/definitions"
	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	sheeterr "github.com/statblock/pokesheet/internal/errors"
	pokemonrepo "github.com/statblock/pokesheet/internal/repositories/pokemon"
)

// Repository is an alias for the pokémon repository interface
type Repository = pokemonrepo.Repository

// Service is the application boundary around the derivation engine. Every
// edit method takes the viewer context explicitly, consults the edit gate
// before touching anything, applies the engine's pure transform to the
// loaded snapshot, persists the result, and returns the refreshed sheet.
//
// Combat stage and health adjustments are play-mode interactions, not
// sheet edits: the original sheet offers them exactly when edit mode is
// off, so they take no viewer and bypass the gate.
type Service interface {
	// CreatePokemon creates a new pokémon for a trainer
	CreatePokemon(ctx context.Context, input *CreatePokemonInput) (*Sheet, error)

	// GetSheet returns the derived view for a pokémon
	GetSheet(ctx context.Context, pokemonID string) (*Sheet, error)

	// ListByTrainer returns derived views for all of a trainer's pokémon
	ListByTrainer(ctx context.Context, trainerID string) ([]*Sheet, error)

	// SuggestCapabilities feeds the capability lookahead dropdown
	SuggestCapabilities(ctx context.Context, query string) ([]definitions.Definition, error)

	// Gated sheet edits
	SetBaseStat(ctx context.Context, viewer domain.Viewer, pokemonID string, stat domain.Stat, raw string) (*Sheet, error)
	SetAddedStat(ctx context.Context, viewer domain.Viewer, pokemonID string, stat domain.Stat, raw string) (*Sheet, error)
	SetExperience(ctx context.Context, viewer domain.Viewer, pokemonID, raw string) (*Sheet, error)
	SetSpecies(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string) (*Sheet, error)
	AddCapability(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string, value int) (*Sheet, error)
	RemoveCapability(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string) (*Sheet, error)

	// Play-mode interactions
	SetCombatStage(ctx context.Context, pokemonID string, stat domain.Stat, value int) (*Sheet, error)
	AdjustCombatStage(ctx context.Context, pokemonID string, stat domain.Stat, delta int) (*Sheet, error)
	SetHealth(ctx context.Context, pokemonID string, value int) (*Sheet, error)
	ModifyHealth(ctx context.Context, pokemonID string, delta int) (*Sheet, error)
	HealToFull(ctx context.Context, pokemonID string) (*Sheet, error)
}

// CreatePokemonInput contains all data needed to create a pokémon
type CreatePokemonInput struct {
	TrainerID string
	Name      string
	SpeciesID string
	BaseStats map[domain.Stat]int
}

// service implements the Service interface
type service struct {
	repository  Repository
	definitions definitions.Client
	rules       domain.Ruleset
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  Repository         // Required
	Definitions definitions.Client // Optional, defaults to the static registry
	Rules       *domain.Ruleset    // Optional, defaults to the standard tables
}

// NewService creates a new sheet service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		definitions: cfg.Definitions,
		rules:       domain.DefaultRuleset,
	}

	if svc.definitions == nil {
		svc.definitions = definitions.NewDefaultClient()
	}
	if cfg.Rules != nil {
		svc.rules = *cfg.Rules
	}

	return svc
}

// CreatePokemon creates a new pokémon for a trainer
func (s *service) CreatePokemon(ctx context.Context, input *CreatePokemonInput) (*Sheet, error) {
	if input == nil {
		return nil, sheeterr.InvalidArgument("input cannot be nil")
	}
	if input.TrainerID == "" {
		return nil, sheeterr.InvalidArgument("trainer ID is required")
	}
	if input.Name == "" {
		return nil, sheeterr.InvalidArgument("pokemon name is required")
	}

	p := domain.New()
	p.TrainerID = input.TrainerID
	p.Name = input.Name

	if input.SpeciesID != "" {
		def, err := s.definitions.Get(ctx, definitions.PathSpecies, input.SpeciesID)
		if err != nil {
			return nil, sheeterr.Wrapf(err, "failed to resolve species '%s'", input.SpeciesID)
		}
		p = p.SetSpecies(def.ID, def.Label)
	}

	for stat, value := range input.BaseStats {
		if value < 0 {
			value = 0
		}
		if stat.IsValid() {
			p.Stats.Base[stat] = value
		}
	}

	// A fresh pokémon starts at full health.
	p.CurrentHealth = s.rules.TotalHP(p)

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, sheeterr.Wrap(err, "failed to create pokemon")
	}

	return s.buildSheet(p), nil
}

// GetSheet returns the derived view for a pokémon
func (s *service) GetSheet(ctx context.Context, pokemonID string) (*Sheet, error) {
	p, err := s.repository.Get(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return s.buildSheet(p), nil
}

// ListByTrainer returns derived views for all of a trainer's pokémon
func (s *service) ListByTrainer(ctx context.Context, trainerID string) ([]*Sheet, error) {
	list, err := s.repository.GetByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	sheets := make([]*Sheet, 0, len(list))
	for _, p := range list {
		sheets = append(sheets, s.buildSheet(p))
	}
	return sheets, nil
}

// SuggestCapabilities feeds the capability lookahead dropdown
func (s *service) SuggestCapabilities(ctx context.Context, query string) ([]definitions.Definition, error) {
	return s.definitions.Suggest(ctx, definitions.PathCapabilities, query)
}

// SetBaseStat replaces the base value for a stat
func (s *service) SetBaseStat(ctx context.Context, viewer domain.Viewer, pokemonID string, stat domain.Stat, raw string) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldBaseStats, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetBaseStat(stat, raw), nil
	})
}

// SetAddedStat replaces the allocated points for a stat
func (s *service) SetAddedStat(ctx context.Context, viewer domain.Viewer, pokemonID string, stat domain.Stat, raw string) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldAddedStats, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetAddedStat(stat, raw), nil
	})
}

// SetExperience replaces the experience total
func (s *service) SetExperience(ctx context.Context, viewer domain.Viewer, pokemonID, raw string) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldExperience, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetExperience(raw), nil
	})
}

// SetSpecies replaces the species selection, resolving the definition
// through the registry
func (s *service) SetSpecies(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldSpecies, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		def, err := s.definitions.Get(ctx, definitions.PathSpecies, definitionID)
		if err != nil {
			return nil, sheeterr.Wrapf(err, "failed to resolve species '%s'", definitionID)
		}
		return p.SetSpecies(def.ID, def.Label), nil
	})
}

// AddCapability attaches a capability, resolving its label through the
// registry so sheets snapshot the name at attachment time
func (s *service) AddCapability(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string, value int) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldCapabilities, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		def, err := s.definitions.Get(ctx, definitions.PathCapabilities, definitionID)
		if err != nil {
			return nil, sheeterr.Wrapf(err, "failed to resolve capability '%s'", definitionID)
		}
		return p.AddCapability(def.ID, def.Label, value), nil
	})
}

// RemoveCapability detaches a capability; a missing ID is a no-op
func (s *service) RemoveCapability(ctx context.Context, viewer domain.Viewer, pokemonID, definitionID string) (*Sheet, error) {
	return s.applyEdit(ctx, viewer, domain.FieldCapabilities, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.RemoveCapability(definitionID), nil
	})
}

// SetCombatStage sets a combat stage to an absolute value, clamped to
// [-6, 6]
func (s *service) SetCombatStage(ctx context.Context, pokemonID string, stat domain.Stat, value int) (*Sheet, error) {
	return s.apply(ctx, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetCombatStage(stat, value), nil
	})
}

// AdjustCombatStage moves a combat stage by delta, clamped to [-6, 6]
func (s *service) AdjustCombatStage(ctx context.Context, pokemonID string, stat domain.Stat, delta int) (*Sheet, error) {
	return s.apply(ctx, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.AdjustCombatStage(stat, delta), nil
	})
}

// SetHealth sets current health to an absolute value
func (s *service) SetHealth(ctx context.Context, pokemonID string, value int) (*Sheet, error) {
	return s.apply(ctx, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetHealth(value), nil
	})
}

// ModifyHealth moves current health by delta
func (s *service) ModifyHealth(ctx context.Context, pokemonID string, delta int) (*Sheet, error) {
	return s.apply(ctx, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.ModifyHealth(delta), nil
	})
}

// HealToFull sets current health to the derived total
func (s *service) HealToFull(ctx context.Context, pokemonID string) (*Sheet, error) {
	return s.apply(ctx, pokemonID, func(p *domain.Pokemon) (*domain.Pokemon, error) {
		return p.SetHealth(s.rules.TotalHP(p)), nil
	})
}

// applyEdit gates a sheet edit on the viewer before applying it. This is
// the fail-closed call site: transforms below this line assume the gate
// already said yes.
func (s *service) applyEdit(ctx context.Context, viewer domain.Viewer, field domain.Field, pokemonID string, transform func(*domain.Pokemon) (*domain.Pokemon, error)) (*Sheet, error) {
	if !viewer.CanEdit(field) {
		return nil, sheeterr.PermissionDeniedf("viewer may not edit %s", field.Name).
			WithMeta("field", field.Name).
			WithMeta("pokemon_id", pokemonID)
	}
	return s.apply(ctx, pokemonID, transform)
}

// apply loads a snapshot, runs a pure transform, persists the result and
// returns the refreshed sheet
func (s *service) apply(ctx context.Context, pokemonID string, transform func(*domain.Pokemon) (*domain.Pokemon, error)) (*Sheet, error) {
	p, err := s.repository.Get(ctx, pokemonID)
	if err != nil {
		return nil, err
	}

	updated, err := transform(p)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, updated); err != nil {
		return nil, sheeterr.Wrap(err, "failed to persist pokemon")
	}

	return s.buildSheet(updated), nil
}
