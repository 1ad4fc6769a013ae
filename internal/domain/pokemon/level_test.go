package pokemon_test

import (
	"testing"

	"github.com/statblock/pokesheet/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelCurve_Level(t *testing.T) {
	tests := []struct {
		name       string
		experience int
		expected   int
	}{
		{name: "zero experience is level 1", experience: 0, expected: 1},
		{name: "just below first threshold", experience: 9, expected: 1},
		{name: "first threshold", experience: 10, expected: 2},
		{name: "between thresholds", experience: 95, expected: 10},
		{name: "tenth threshold", experience: 110, expected: 11},
		{name: "negative experience treated as zero", experience: -50, expected: 1},
		{name: "beyond the table caps at max level", experience: 1_000_000, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pokemon.DefaultLevelCurve.Level(tt.experience))
		})
	}
}

func TestLevelCurve_Monotonic(t *testing.T) {
	prev := pokemon.DefaultLevelCurve.Level(0)
	require.GreaterOrEqual(t, prev, 1)

	for exp := 1; exp <= 40_000; exp += 7 {
		level := pokemon.DefaultLevelCurve.Level(exp)
		require.GreaterOrEqual(t, level, prev, "level dropped at experience %d", exp)
		prev = level
	}
}

func TestLevelCurve_ExperienceForLevel(t *testing.T) {
	curve := pokemon.DefaultLevelCurve

	assert.Equal(t, 0, curve.ExperienceForLevel(1))
	assert.Equal(t, 0, curve.ExperienceForLevel(0))
	assert.Equal(t, 10, curve.ExperienceForLevel(2))

	// Round trip: reaching the threshold for a level yields that level.
	for level := 2; level <= curve.MaxLevel(); level++ {
		exp := curve.ExperienceForLevel(level)
		assert.Equal(t, level, curve.Level(exp), "level %d at threshold %d", level, exp)
	}
}

func TestLevelCurve_TableIsStrictlyIncreasing(t *testing.T) {
	curve := pokemon.DefaultLevelCurve
	require.Len(t, curve, 99)

	for i := 1; i < len(curve); i++ {
		require.Greater(t, curve[i], curve[i-1], "threshold %d", i)
	}
}
