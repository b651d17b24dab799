package types

// CanonicalVenue is the deduplicated, alias-resolved representation of a
// performance location. The key is a pure function of the normalized
// display name, so re-running normalization yields the same key.
type CanonicalVenue struct {
	Key     string `json:"venue_key" yaml:"venue_key"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Aliases holds every raw name variant seen for this venue, sorted.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Occurrence statistics across the processed event set.
	ShowCount int  `json:"show_count" yaml:"show_count"`
	FirstShow Date `json:"first_show,omitempty" yaml:"first_show,omitempty"`
	LastShow  Date `json:"last_show,omitempty" yaml:"last_show,omitempty"`
}
