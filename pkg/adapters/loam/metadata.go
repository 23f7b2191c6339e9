package loam

// CardMetadata is the frontmatter of a pattern card.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type CardMetadata struct {
	// Template is the wildcard pattern the card matches, e.g. "who directed %".
	Template string `json:"template" mapstructure:"template"`
	// Handler names the registered handler that answers the pattern.
	Handler string `json:"handler" mapstructure:"handler"`
	// Description is optional help text surfaced by pattern listings.
	Description string `json:"description,omitempty" mapstructure:"description"`
	// Disabled parks a card without deleting its file.
	Disabled bool `json:"disabled,omitempty" mapstructure:"disabled"`
}
