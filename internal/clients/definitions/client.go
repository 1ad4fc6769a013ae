package definitions

//go:generate mockgen -destination=mock/mock_client.go -package=mockdefinitions -source=client.go

import "context"

// Definition is one selectable entry from the rules registry: the stable
// definition ID plus the label shown in the lookahead dropdown.
type Definition struct {
	ID    string
	Label string
}

// Paths are the registry categories the sheet selects from
const (
	PathCapabilities = "capabilities"
	PathSpecies      = "species"
)

// Client looks up rules definitions for selection widgets. The sheet only
// ever needs the chosen {id, label} pair back; everything else about the
// registry stays behind this interface.
type Client interface {
	// Suggest returns candidate definitions under a path whose labels
	// match the query prefix, in label order. An empty query lists the
	// whole path.
	Suggest(ctx context.Context, path, query string) ([]Definition, error)

	// Get returns the definition with the given ID under a path
	Get(ctx context.Context, path, id string) (*Definition, error)
}
