package pokemon

// Stat identifies one of the six stats on a pokémon sheet
type Stat string

const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "spattack"
	StatSpecialDefense Stat = "spdefense"
	StatSpeed          Stat = "speed"
)

// Combat stage bounds. Stages outside this range are clamped on both read
// and write so a corrupt document can never leak an out-of-range stage.
const (
	MinCombatStage = -6
	MaxCombatStage = 6
)

// AllStats returns the six stats in sheet display order
func AllStats() []Stat {
	return []Stat{
		StatHP,
		StatAttack,
		StatDefense,
		StatSpecialAttack,
		StatSpecialDefense,
		StatSpeed,
	}
}

// CombatStats returns the five stats that carry combat stages. HP has no
// stage slot.
func CombatStats() []Stat {
	return []Stat{
		StatAttack,
		StatDefense,
		StatSpecialAttack,
		StatSpecialDefense,
		StatSpeed,
	}
}

// IsValid reports whether s is one of the six known stats
func (s Stat) IsValid() bool {
	switch s {
	case StatHP, StatAttack, StatDefense, StatSpecialAttack, StatSpecialDefense, StatSpeed:
		return true
	}
	return false
}

// HasCombatStage reports whether s carries a combat stage
func (s Stat) HasCombatStage() bool {
	return s.IsValid() && s != StatHP
}

// DisplayName returns the sheet header for the stat
func (s Stat) DisplayName() string {
	switch s {
	case StatHP:
		return "HP"
	case StatAttack:
		return "Attack"
	case StatDefense:
		return "Defense"
	case StatSpecialAttack:
		return "Sp. Attack"
	case StatSpecialDefense:
		return "Sp. Defense"
	case StatSpeed:
		return "Speed"
	default:
		return string(s)
	}
}

// StatBlock holds one non-negative integer per stat. It is used for both
// the species-fixed base values and the player-allocated added points.
type StatBlock map[Stat]int

// Get returns the value for a stat. Missing entries read as 0 and negative
// persisted values are clamped to 0.
func (b StatBlock) Get(s Stat) int {
	if b == nil {
		return 0
	}
	v := b[s]
	if v < 0 {
		return 0
	}
	return v
}

// Total sums the block across all six stats, with the same defensive
// clamping as Get
func (b StatBlock) Total() int {
	total := 0
	for _, s := range AllStats() {
		total += b.Get(s)
	}
	return total
}

// Clone returns an independent copy of the block
func (b StatBlock) Clone() StatBlock {
	if b == nil {
		return nil
	}
	out := make(StatBlock, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// set stores a value for a stat, clamping negatives to 0
func (b StatBlock) set(s Stat, value int) {
	if value < 0 {
		value = 0
	}
	b[s] = value
}

// CombatStages holds the transient battle modifier per combat stat
type CombatStages map[Stat]int

// Get returns the stage for a stat, clamped into [-6, 6]. Stats without a
// stage slot (HP, unknown keys) read as 0.
func (c CombatStages) Get(s Stat) int {
	if c == nil || !s.HasCombatStage() {
		return 0
	}
	return ClampStage(c[s])
}

// Clone returns an independent copy of the stages
func (c CombatStages) Clone() CombatStages {
	if c == nil {
		return nil
	}
	out := make(CombatStages, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// set stores a stage value, clamped into [-6, 6]. Writes to stats without
// a stage slot are dropped.
func (c CombatStages) set(s Stat, value int) {
	if !s.HasCombatStage() {
		return
	}
	c[s] = ClampStage(value)
}

// ClampStage clamps a combat stage into [-6, 6]
func ClampStage(value int) int {
	if value < MinCombatStage {
		return MinCombatStage
	}
	if value > MaxCombatStage {
		return MaxCombatStage
	}
	return value
}
