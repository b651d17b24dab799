package types

// DateRange is a closed interval of calendar dates. Excluded dates and
// ranges subtract from this range only, never from sibling ranges.
type DateRange struct {
	Start          Date       `json:"start" yaml:"start"`
	End            Date       `json:"end" yaml:"end"`
	ExcludedDates  []Date     `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	ExcludedRanges []DateSpan `json:"excluded_ranges,omitempty" yaml:"excluded_ranges,omitempty"`
}

// DateSpan is a bare closed date interval used for exclusions.
type DateSpan struct {
	Start Date `json:"start" yaml:"start"`
	End   Date `json:"end" yaml:"end"`
}

// Contains reports whether the span covers the given date.
func (s DateSpan) Contains(d Date) bool {
	return !d.Before(s.Start) && !d.After(s.End)
}

// CollectionDefinition is a declarative selector describing a curated
// grouping of events by date.
type CollectionDefinition struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	DateRanges      []DateRange `json:"date_ranges,omitempty" yaml:"date_ranges,omitempty"`
	Dates           []Date      `json:"dates,omitempty" yaml:"dates,omitempty"`
	AdditionalDates []Date      `json:"additional_dates,omitempty" yaml:"additional_dates,omitempty"`
}

// ResolvedCollection is a collection definition evaluated against the
// normalized event set. ShowIDs is sorted; UnmatchedDates lists selector
// dates with no known show.
type ResolvedCollection struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	ShowIDs        []string `json:"show_ids" yaml:"show_ids"`
	TotalShows     int      `json:"total_shows" yaml:"total_shows"`
	UnmatchedDates []Date   `json:"unmatched_dates,omitempty" yaml:"unmatched_dates,omitempty"`
}
