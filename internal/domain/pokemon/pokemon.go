package pokemon

import (
	"strconv"
	"strings"
)

// StatSet groups the three raw stat records persisted for a pokémon
type StatSet struct {
	Base         StatBlock
	Added        StatBlock
	CombatStages CombatStages
}

// Clone returns an independent copy of the stat set
func (s StatSet) Clone() StatSet {
	return StatSet{
		Base:         s.Base.Clone(),
		Added:        s.Added.Clone(),
		CombatStages: s.CombatStages.Clone(),
	}
}

// Pokemon is the root entity for one creature sheet. Effective values are
// never stored on it; they are derived from the raw fields by a Ruleset.
//
// Every mutating operation works on a clone and returns the new snapshot.
// The embedding application owns the current snapshot for a session and
// decides how to persist or broadcast the result.
type Pokemon struct {
	ID        string
	TrainerID string
	Name      string

	// SpeciesID references a species definition in the external registry.
	// SpeciesLabel is a display snapshot taken at selection time.
	SpeciesID    string
	SpeciesLabel string

	Experience    int
	Stats         StatSet
	CurrentHealth int
	Capabilities  []Capability
}

// New returns an empty pokémon with all stat records initialized
func New() *Pokemon {
	p := &Pokemon{
		Stats: StatSet{
			Base:         make(StatBlock, 6),
			Added:        make(StatBlock, 6),
			CombatStages: make(CombatStages, 5),
		},
	}
	for _, s := range AllStats() {
		p.Stats.Base[s] = 0
		p.Stats.Added[s] = 0
	}
	for _, s := range CombatStats() {
		p.Stats.CombatStages[s] = 0
	}
	return p
}

// Clone returns a deep copy of the pokémon
func (p *Pokemon) Clone() *Pokemon {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Stats = p.Stats.Clone()
	clone.Capabilities = cloneCapabilities(p.Capabilities)
	return &clone
}

// SetBaseStat returns a snapshot with the base value for a stat replaced.
// The raw text comes straight from a numeric input; unparseable or
// negative text falls back to 0 rather than erroring, so a half-typed
// value can never break the sheet.
func (p *Pokemon) SetBaseStat(stat Stat, raw string) *Pokemon {
	clone := p.Clone()
	if !stat.IsValid() {
		return clone
	}
	clone.Stats.Base.set(stat, parseStatInput(raw))
	return clone
}

// SetAddedStat returns a snapshot with the allocated points for a stat
// replaced. Same input handling as SetBaseStat.
func (p *Pokemon) SetAddedStat(stat Stat, raw string) *Pokemon {
	clone := p.Clone()
	if !stat.IsValid() {
		return clone
	}
	clone.Stats.Added.set(stat, parseStatInput(raw))
	return clone
}

// SetExperience returns a snapshot with the experience replaced.
// Unparseable or negative text falls back to 0.
func (p *Pokemon) SetExperience(raw string) *Pokemon {
	clone := p.Clone()
	clone.Experience = parseStatInput(raw)
	return clone
}

// SetCombatStage returns a snapshot with the stage for a stat set to the
// given absolute value, clamped into [-6, 6]. The +1/-1 sheet buttons are
// expressed as AdjustCombatStage, which is set(current + delta).
func (p *Pokemon) SetCombatStage(stat Stat, value int) *Pokemon {
	clone := p.Clone()
	if clone.Stats.CombatStages == nil {
		clone.Stats.CombatStages = make(CombatStages, 5)
	}
	clone.Stats.CombatStages.set(stat, value)
	return clone
}

// AdjustCombatStage returns a snapshot with the stage for a stat moved by
// delta from its current (clamped) value
func (p *Pokemon) AdjustCombatStage(stat Stat, delta int) *Pokemon {
	return p.SetCombatStage(stat, p.Stats.CombatStages.Get(stat)+delta)
}

// SetHealth returns a snapshot with current health set to value. Health is
// deliberately not clamped: it may go to 0 or below (unconscious) and may
// transiently exceed the derived total during an edit.
func (p *Pokemon) SetHealth(value int) *Pokemon {
	clone := p.Clone()
	clone.CurrentHealth = value
	return clone
}

// ModifyHealth returns a snapshot with current health moved by delta
func (p *Pokemon) ModifyHealth(delta int) *Pokemon {
	return p.SetHealth(p.CurrentHealth + delta)
}

// SetSpecies returns a snapshot with the species selection replaced
func (p *Pokemon) SetSpecies(definitionID, label string) *Pokemon {
	clone := p.Clone()
	clone.SpeciesID = definitionID
	clone.SpeciesLabel = label
	return clone
}

// parseStatInput parses numeric text from a sheet input. Anything that is
// not a non-negative integer collapses to 0.
func parseStatInput(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
