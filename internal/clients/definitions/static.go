package definitions

import (
	"context"
	"sort"
	"strings"

	sheeterr "github.com/statblock/pokesheet/internal/errors"
)

// StaticClient serves definitions from an in-memory table. It backs the
// sheet in tests and single-binary deployments; a remote registry client
// satisfies the same interface.
type StaticClient struct {
	byPath map[string][]Definition
}

// NewStaticClient creates a static client over the given table. The
// definitions under each path are sorted by label once at construction.
func NewStaticClient(table map[string][]Definition) *StaticClient {
	byPath := make(map[string][]Definition, len(table))
	for path, defs := range table {
		sorted := make([]Definition, len(defs))
		copy(sorted, defs)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Label < sorted[j].Label
		})
		byPath[path] = sorted
	}
	return &StaticClient{byPath: byPath}
}

// NewDefaultClient creates a static client preloaded with the standard
// capability definitions. The species path starts empty: species are
// campaign data loaded by the embedder, not stock rules.
func NewDefaultClient() *StaticClient {
	return NewStaticClient(map[string][]Definition{
		PathCapabilities: defaultCapabilities,
		PathSpecies:      nil,
	})
}

// Suggest returns definitions under a path whose labels start with the
// query, case-insensitively
func (c *StaticClient) Suggest(ctx context.Context, path, query string) ([]Definition, error) {
	defs, ok := c.byPath[path]
	if !ok {
		return nil, sheeterr.NotFoundf("unknown definition path '%s'", path).
			WithMeta("path", path)
	}

	if query == "" {
		out := make([]Definition, len(defs))
		copy(out, defs)
		return out, nil
	}

	prefix := strings.ToLower(query)
	var out []Definition
	for _, d := range defs {
		if strings.HasPrefix(strings.ToLower(d.Label), prefix) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Get returns the definition with the given ID under a path
func (c *StaticClient) Get(ctx context.Context, path, id string) (*Definition, error) {
	defs, ok := c.byPath[path]
	if !ok {
		return nil, sheeterr.NotFoundf("unknown definition path '%s'", path).
			WithMeta("path", path)
	}

	for _, d := range defs {
		if d.ID == id {
			def := d
			return &def, nil
		}
	}
	return nil, sheeterr.NotFoundf("definition '%s' not found under '%s'", id, path).
		WithMeta("path", path).
		WithMeta("definition_id", id)
}

// defaultCapabilities is the stock capability list a fresh install ships
// with. Ranked capabilities carry their rank in the attached value, so
// the table only needs the flag names.
var defaultCapabilities = []Definition{
	{ID: "overland", Label: "Overland"},
	{ID: "swim", Label: "Swim"},
	{ID: "sky", Label: "Sky"},
	{ID: "burrow", Label: "Burrow"},
	{ID: "levitate", Label: "Levitate"},
	{ID: "teleporter", Label: "Teleporter"},
	{ID: "underdog", Label: "Underdog"},
	{ID: "jump", Label: "Jump"},
	{ID: "power", Label: "Power"},
	{ID: "intelligence", Label: "Intelligence"},
	{ID: "darkvision", Label: "Darkvision"},
	{ID: "naturewalk", Label: "Naturewalk"},
	{ID: "wallclimber", Label: "Wallclimber"},
	{ID: "firestarter", Label: "Firestarter"},
	{ID: "fountain", Label: "Fountain"},
	{ID: "glow", Label: "Glow"},
	{ID: "invisibility", Label: "Invisibility"},
	{ID: "phasing", Label: "Phasing"},
	{ID: "shapeshifter", Label: "Shapeshifter"},
	{ID: "telekinetic", Label: "Telekinetic"},
	{ID: "telepath", Label: "Telepath"},
	{ID: "tracker", Label: "Tracker"},
	{ID: "zapper", Label: "Zapper"},
}
