package sheet

import (
	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
)

// StatLine is the derived view of a single stat row
type StatLine struct {
	Base        int
	Added       int
	CombatStage int
	Effective   int
}

// Sheet is the fully derived, display-ready view of one pokémon. It
// carries no behavior: everything on it is recomputed from the raw
// snapshot on every build, never stored.
type Sheet struct {
	ID           string
	TrainerID    string
	Name         string
	SpeciesID    string
	SpeciesLabel string

	Level      int
	Experience int

	Stats map[domain.Stat]StatLine

	TotalHP          int
	CurrentHealth    int
	PressOnThreshold int

	// PointsOverCap mirrors the allocation validator: positive values
	// should render as a blocking warning, negative as unspent points.
	PointsOverCap int

	Capabilities []domain.Capability
}

// buildSheet derives the display view from a raw snapshot
func (s *service) buildSheet(p *domain.Pokemon) *Sheet {
	totalHP := s.rules.TotalHP(p)

	view := &Sheet{
		ID:               p.ID,
		TrainerID:        p.TrainerID,
		Name:             p.Name,
		SpeciesID:        p.SpeciesID,
		SpeciesLabel:     p.SpeciesLabel,
		Level:            s.rules.Level(p),
		Experience:       p.Experience,
		Stats:            make(map[domain.Stat]StatLine, 6),
		TotalHP:          totalHP,
		CurrentHealth:    p.CurrentHealth,
		PressOnThreshold: domain.PressOnThreshold(totalHP),
		PointsOverCap:    s.rules.PointsOverCap(p),
		Capabilities:     append([]domain.Capability(nil), p.Capabilities...),
	}

	for _, stat := range domain.AllStats() {
		view.Stats[stat] = StatLine{
			Base:        p.Stats.Base.Get(stat),
			Added:       p.Stats.Added.Get(stat),
			CombatStage: p.Stats.CombatStages.Get(stat),
			Effective:   s.rules.EffectiveStat(p, stat),
		}
	}

	return view
}
