package domain

// Card is a user-supplied pattern definition loaded from a pack directory.
// It is storage-agnostic: the loam adapter (or any other source) produces
// Cards, and the engine compiles them into table entries.
type Card struct {
	// ID is the document identifier within the pack (usually the file stem).
	ID string `json:"id"`

	// Template is the raw template text, e.g. "who directed %".
	Template string `json:"template"`

	// Handler names the registered handler the template dispatches to.
	Handler string `json:"handler"`

	// Description is an optional human-readable summary shown by introspection.
	Description string `json:"description,omitempty"`

	// Disabled cards are loaded but never mounted into the table.
	Disabled bool `json:"disabled,omitempty"`

	// Body is the markdown content below the frontmatter, shown by
	// 'marquee patterns --verbose' as the card's documentation.
	Body string `json:"-"`
}

// PatternInfo is one row of the active table, in match order.
type PatternInfo struct {
	Template    string `json:"template"`
	Handler     string `json:"handler"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
	// Body is the card's free-form documentation. Empty for builtins.
	Body string `json:"body,omitempty"`
}

// Pattern sources reported by PatternInfo.
const (
	SourceBuiltin = "builtin"
	SourcePack    = "pack"
)
