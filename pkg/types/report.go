package types

// Report accumulates every recoverable condition encountered during a run.
// A run always completes and emits whatever could be resolved; the report
// quantifies what could not.
type Report struct {
	DateParseFailures   []DateParseFailure  `json:"date_parse_failures,omitempty" yaml:"date_parse_failures,omitempty"`
	UnmatchedRecordings []string            `json:"unmatched_recordings,omitempty" yaml:"unmatched_recordings,omitempty"`
	IDRepairs           []IDRepair          `json:"id_repairs,omitempty" yaml:"id_repairs,omitempty"`
	CollectionFailures  []CollectionFailure `json:"collection_failures,omitempty" yaml:"collection_failures,omitempty"`
}

// DateParseFailure records a record skipped because its date text matched
// no recognized format.
type DateParseFailure struct {
	RecordKind string `json:"record_kind" yaml:"record_kind"`
	RecordID   string `json:"record_id" yaml:"record_id"`
	Input      string `json:"input" yaml:"input"`
	Reason     string `json:"reason" yaml:"reason"`
}

// IDRepair records a show identifier regenerated because the date embedded
// in it disagreed with the show's normalized date.
type IDRepair struct {
	OldID string `json:"old_id" yaml:"old_id"`
	NewID string `json:"new_id" yaml:"new_id"`
	Date  Date   `json:"date" yaml:"date"`
}

// CollectionFailure describes a collection whose selector matched no shows,
// or matched only partially, with diagnostics for operator review.
type CollectionFailure struct {
	CollectionID string        `json:"collection_id" yaml:"collection_id"`
	Name         string        `json:"name" yaml:"name"`
	MissingDates []Date        `json:"missing_dates,omitempty" yaml:"missing_dates,omitempty"`
	SimilarDates []SimilarDate `json:"similar_dates,omitempty" yaml:"similar_dates,omitempty"`
	Suggestions  []string      `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// SimilarDate pairs a selector date that matched nothing with a nearby
// date that does have shows, the usual sign of an off-by-one-day source.
type SimilarDate struct {
	Missing Date `json:"missing" yaml:"missing"`
	Found   Date `json:"found" yaml:"found"`
}

// IsEmpty reports whether the run completed with nothing to report.
func (r *Report) IsEmpty() bool {
	return len(r.DateParseFailures) == 0 &&
		len(r.UnmatchedRecordings) == 0 &&
		len(r.IDRepairs) == 0 &&
		len(r.CollectionFailures) == 0
}

// TotalIssues counts every recorded condition.
func (r *Report) TotalIssues() int {
	return len(r.DateParseFailures) +
		len(r.UnmatchedRecordings) +
		len(r.IDRepairs) +
		len(r.CollectionFailures)
}
