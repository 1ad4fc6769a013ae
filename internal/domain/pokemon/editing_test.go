package pokemon_test

import (
	"testing"

	"github.com/statblock/pokesheet/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
)

func TestViewer_CanEdit(t *testing.T) {
	gmGated := pokemon.Field{Name: "species", RequiresGM: true}
	open := pokemon.Field{Name: "added-stats", RequiresGM: false}

	tests := []struct {
		name     string
		viewer   pokemon.Viewer
		field    pokemon.Field
		expected bool
	}{
		{
			name:     "edit mode off blocks everything",
			viewer:   pokemon.Viewer{EditMode: false, IsGM: true},
			field:    open,
			expected: false,
		},
		{
			name:     "edit mode off blocks gm even on gated fields",
			viewer:   pokemon.Viewer{EditMode: false, IsGM: true},
			field:    gmGated,
			expected: false,
		},
		{
			name:     "edit mode on allows open fields",
			viewer:   pokemon.Viewer{EditMode: true, IsGM: false},
			field:    open,
			expected: true,
		},
		{
			name:     "edit mode on still blocks gated fields for players",
			viewer:   pokemon.Viewer{EditMode: true, IsGM: false},
			field:    gmGated,
			expected: false,
		},
		{
			name:     "gm in edit mode may edit gated fields",
			viewer:   pokemon.Viewer{EditMode: true, IsGM: true},
			field:    gmGated,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.viewer.CanEdit(tt.field))
		})
	}
}

func TestViewer_CanEdit_SheetFields(t *testing.T) {
	player := pokemon.Viewer{EditMode: true}

	assert.True(t, player.CanEdit(pokemon.FieldBaseStats))
	assert.True(t, player.CanEdit(pokemon.FieldAddedStats))
	assert.True(t, player.CanEdit(pokemon.FieldExperience))
	assert.True(t, player.CanEdit(pokemon.FieldCapabilities))
	assert.False(t, player.CanEdit(pokemon.FieldSpecies), "species needs the gm")
}
