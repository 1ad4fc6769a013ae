package pokemon

// Viewer carries the per-session editing context: the sheet-wide edit
// mode toggle and whether the viewer is the GM. It is passed explicitly
// into every gated call rather than read from ambient state, and must be
// consulted fresh on each query because either flag can flip mid-session.
type Viewer struct {
	EditMode bool
	IsGM     bool
}

// Field describes one editable sheet field for gating purposes
type Field struct {
	Name       string
	RequiresGM bool
}

// The sheet's editable fields. Species selection rewrites the
// species-fixed side of the sheet, so it needs the GM.
var (
	FieldSpecies      = Field{Name: "species", RequiresGM: true}
	FieldBaseStats    = Field{Name: "base-stats", RequiresGM: false}
	FieldAddedStats   = Field{Name: "added-stats", RequiresGM: false}
	FieldExperience   = Field{Name: "experience", RequiresGM: false}
	FieldCapabilities = Field{Name: "capabilities", RequiresGM: false}
)

// CanEdit reports whether the viewer may mutate the field: edit mode must
// be on, and GM-gated fields additionally need a GM viewer. Callers are
// expected to check this before invoking a mutation; the engine itself
// does not re-check on every transform.
func (v Viewer) CanEdit(f Field) bool {
	return v.EditMode && (!f.RequiresGM || v.IsGM)
}
