package pokemon_test

import (
	"testing"

	"github.com/statblock/pokesheet/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTable_Apply(t *testing.T) {
	table := pokemon.DefaultStageTable

	tests := []struct {
		name     string
		value    int
		stage    int
		expected int
	}{
		{name: "stage zero is identity", value: 15, stage: 0, expected: 15},
		{name: "positive stage", value: 100, stage: 1, expected: 150},
		{name: "max stage quadruples", value: 100, stage: 6, expected: 400},
		{name: "negative stage floors", value: 100, stage: -1, expected: 66},
		{name: "min stage quarters", value: 100, stage: -6, expected: 25},
		{name: "odd value floors", value: 15, stage: 1, expected: 22},
		{name: "result never below one", value: 2, stage: -6, expected: 1},
		{name: "zero value still yields one", value: 0, stage: 0, expected: 1},
		{name: "out of range stage clamps", value: 100, stage: 9, expected: 400},
		{name: "negative value treated as zero", value: -10, stage: 3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Apply(tt.value, tt.stage))
		})
	}
}

func TestStageTable_MonotonicInStage(t *testing.T) {
	table := pokemon.DefaultStageTable

	for value := 0; value <= 200; value += 13 {
		prev := table.Apply(value, pokemon.MinCombatStage)
		require.GreaterOrEqual(t, prev, 1)

		for stage := pokemon.MinCombatStage + 1; stage <= pokemon.MaxCombatStage; stage++ {
			current := table.Apply(value, stage)
			require.GreaterOrEqual(t, current, prev, "value %d stage %d", value, stage)
			prev = current
		}
	}
}

func TestRuleset_EffectiveStat(t *testing.T) {
	p := pokemon.New()
	p = p.SetBaseStat(pokemon.StatAttack, "10")
	p = p.SetAddedStat(pokemon.StatAttack, "5")
	p = p.SetCombatStage(pokemon.StatAttack, 2)

	rules := pokemon.DefaultRuleset

	// (10 + 5) x (2+2)/2, floored
	assert.Equal(t, 30, rules.EffectiveStat(p, pokemon.StatAttack))

	// Repeated evaluation of the same snapshot is deterministic.
	for i := 0; i < 5; i++ {
		assert.Equal(t, 30, rules.EffectiveStat(p, pokemon.StatAttack))
	}

	// Untouched stats derive from zero and floor at one.
	assert.Equal(t, 1, rules.EffectiveStat(p, pokemon.StatSpeed))
}

func TestRuleset_EffectiveStat_HPIgnoresStages(t *testing.T) {
	p := pokemon.New()
	p = p.SetBaseStat(pokemon.StatHP, "8")
	p = p.SetAddedStat(pokemon.StatHP, "4")

	rules := pokemon.DefaultRuleset

	assert.Equal(t, 12, rules.EffectiveStat(p, pokemon.StatHP))

	// A stage write against HP is dropped entirely.
	staged := p.SetCombatStage(pokemon.StatHP, 4)
	assert.Equal(t, 12, rules.EffectiveStat(staged, pokemon.StatHP))
	assert.Equal(t, rules.TotalHP(p), rules.TotalHP(staged))
}

func TestRuleset_TotalHP(t *testing.T) {
	p := pokemon.New()
	p = p.SetBaseStat(pokemon.StatHP, "10")
	p = p.SetAddedStat(pokemon.StatHP, "2")
	p = p.SetExperience("110") // level 11

	rules := pokemon.DefaultRuleset
	require.Equal(t, 11, rules.Level(p))

	// level + 3 x (base + added) + 10
	assert.Equal(t, 11+36+10, rules.TotalHP(p))

	// Raising a combat stage never moves the HP total.
	staged := p.SetCombatStage(pokemon.StatAttack, 6)
	assert.Equal(t, rules.TotalHP(p), rules.TotalHP(staged))
}

func TestRuleset_PointsOverCap(t *testing.T) {
	rules := pokemon.DefaultRuleset

	tests := []struct {
		name       string
		experience string
		added      map[pokemon.Stat]string
		expected   int
	}{
		{
			name:       "exactly spent",
			experience: "110", // level 11
			added: map[pokemon.Stat]string{
				pokemon.StatHP:     "4",
				pokemon.StatAttack: "4",
				pokemon.StatSpeed:  "3",
			},
			expected: 0,
		},
		{
			name:       "one over",
			experience: "110",
			added: map[pokemon.Stat]string{
				pokemon.StatAttack: "12",
			},
			expected: 1,
		},
		{
			name:       "three under",
			experience: "110",
			added: map[pokemon.Stat]string{
				pokemon.StatDefense: "8",
			},
			expected: -3,
		},
		{
			name:       "fresh sheet is under-allocated by the minimum level",
			experience: "0",
			added:      nil,
			expected:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pokemon.New().SetExperience(tt.experience)
			for stat, raw := range tt.added {
				p = p.SetAddedStat(stat, raw)
			}
			assert.Equal(t, tt.expected, rules.PointsOverCap(p))
		})
	}
}

func TestPressOnThreshold(t *testing.T) {
	assert.Equal(t, 10, pokemon.PressOnThreshold(40))
	assert.Equal(t, 11, pokemon.PressOnThreshold(41))
	assert.Equal(t, 1, pokemon.PressOnThreshold(1))
	assert.Equal(t, 0, pokemon.PressOnThreshold(0))
}
