package pokemon

// StageTable maps a combat stage in [-6, 6] to a multiplier expressed as
// a numerator/denominator pair, indexed by stage+6. Keeping the fraction
// integral lets Apply floor exactly the way the tabletop rules do.
type StageTable struct {
	Numerators   [13]int
	Denominators [13]int
}

// DefaultStageTable is the standard staged fraction chart: stage +k
// multiplies by (2+k)/2 and stage -k by 2/(2+k), with stage 0 at x1.
var DefaultStageTable = StageTable{
	Numerators:   [13]int{2, 2, 2, 2, 2, 2, 2, 3, 4, 5, 6, 7, 8},
	Denominators: [13]int{8, 7, 6, 5, 4, 3, 2, 2, 2, 2, 2, 2, 2},
}

// Apply multiplies a raw stat total by the stage's fraction, flooring the
// result. The stage is clamped into [-6, 6] first and the result never
// drops below 1: a stat can never derive to nothing from a non-negative
// base, no matter how deep the negative stages go.
func (t StageTable) Apply(value, stage int) int {
	if value < 0 {
		value = 0
	}
	idx := ClampStage(stage) + 6
	result := value * t.Numerators[idx] / t.Denominators[idx]
	if result < 1 {
		return 1
	}
	return result
}

// HPFormula derives the hit point total from the raw HP components and
// the level. It is rules data like the stage table and level curve.
type HPFormula func(base, added, level int) int

// DefaultHPFormula is the standard hit point chart
func DefaultHPFormula(base, added, level int) int {
	return level + 3*(base+added) + 10
}

// Ruleset bundles the game-rules constants the derivation engine needs.
// Passing it explicitly keeps every derived value a pure function of its
// inputs; embedders with house rules substitute their own tables.
type Ruleset struct {
	Curve  LevelCurve
	Stages StageTable
	HP     HPFormula
}

// DefaultRuleset derives with the standard tables
var DefaultRuleset = Ruleset{
	Curve:  DefaultLevelCurve,
	Stages: DefaultStageTable,
	HP:     DefaultHPFormula,
}

// Level returns the pokémon's level derived from its experience
func (r Ruleset) Level(p *Pokemon) int {
	return r.Curve.Level(p.Experience)
}

// EffectiveStat returns the displayed value for a stat: base plus added,
// stage-multiplied for the five combat stats. HP has no stage slot, so
// its effective value is the raw total; the hit point total itself comes
// from TotalHP.
func (r Ruleset) EffectiveStat(p *Pokemon, stat Stat) int {
	raw := p.Stats.Base.Get(stat) + p.Stats.Added.Get(stat)
	if !stat.HasCombatStage() {
		return raw
	}
	return r.Stages.Apply(raw, p.Stats.CombatStages.Get(stat))
}

// TotalHP returns the derived hit point total. It depends only on the raw
// HP components and the level, never on combat stages.
func (r Ruleset) TotalHP(p *Pokemon) int {
	return r.HP(p.Stats.Base.Get(StatHP), p.Stats.Added.Get(StatHP), r.Level(p))
}

// PointsOverCap returns the allocation diagnostic: the sum of added
// points minus the level-derived cap. Positive means over-allocated by
// that many points and should surface as a blocking warning; negative
// means that many points are still unspent; zero is exactly spent. The
// check is advisory and never blocks a write.
func (r Ruleset) PointsOverCap(p *Pokemon) int {
	return p.Stats.Added.Total() - r.Level(p)
}

// PressOnThreshold returns the quarter-total hit point threshold used by
// the Enduring Soul trainer class, rounded up
func PressOnThreshold(totalHP int) int {
	if totalHP <= 0 {
		return 0
	}
	return (totalHP + 3) / 4
}
