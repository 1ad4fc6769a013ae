package pokemon

// Capability is one named trait attached to a pokémon. ID references a
// capability definition in the external registry; Label is a display
// snapshot taken when the capability was attached, so later definition
// renames do not rewrite existing sheets. Value is an optional rank where
// 0 means the capability is flag-only.
type Capability struct {
	ID    string
	Label string
	Value int
}

// AddCapability returns a snapshot with the capability appended. The list
// keeps insertion order. Re-adding an ID that is already present replaces
// that entry's label and value in place, keeping the operation idempotent
// by ID; it does not move the entry.
func (p *Pokemon) AddCapability(definitionID, label string, value int) *Pokemon {
	clone := p.Clone()
	if value < 0 {
		value = 0
	}
	for i, existing := range clone.Capabilities {
		if existing.ID == definitionID {
			clone.Capabilities[i].Label = label
			clone.Capabilities[i].Value = value
			return clone
		}
	}
	clone.Capabilities = append(clone.Capabilities, Capability{
		ID:    definitionID,
		Label: label,
		Value: value,
	})
	return clone
}

// RemoveCapability returns a snapshot with the capability for the given
// definition ID removed. The remaining entries keep their order. Removing
// an ID that is not present is a no-op, not an error.
func (p *Pokemon) RemoveCapability(definitionID string) *Pokemon {
	clone := p.Clone()
	for i, existing := range clone.Capabilities {
		if existing.ID == definitionID {
			clone.Capabilities = append(clone.Capabilities[:i], clone.Capabilities[i+1:]...)
			break
		}
	}
	return clone
}

// HasCapability reports whether a capability with the given definition ID
// is attached
func (p *Pokemon) HasCapability(definitionID string) bool {
	for _, c := range p.Capabilities {
		if c.ID == definitionID {
			return true
		}
	}
	return false
}

func cloneCapabilities(in []Capability) []Capability {
	if in == nil {
		return nil
	}
	out := make([]Capability, len(in))
	copy(out, in)
	return out
}
