package engine

import (
	"fmt"
	"time"

	"github.com/tapetrail/tapetrail/pkg/matcher"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// Result holds everything a run produced: the enriched event records,
// the canonical venue registry, resolved collections, and the report of
// conditions that were survived rather than fatal.
type Result struct {
	// Shows are the enriched event records, sorted by identifier.
	Shows []types.EnrichedShow `json:"shows"`

	// Venues is the canonical venue registry, sorted by key.
	Venues []types.CanonicalVenue `json:"venues"`

	// Collections are the resolved collection definitions, in input order.
	Collections []types.ResolvedCollection `json:"collections"`

	// Report collects recoverable problems encountered during the run.
	Report types.Report `json:"report"`

	// Metadata records run timing.
	Metadata Metadata `json:"metadata"`

	// Stats summarizes the run.
	Stats Statistics `json:"stats"`
}

// Metadata records when a run started and how long it took.
type Metadata struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// Statistics summarizes a run.
type Statistics struct {
	ShowsProcessed      int                `json:"shows_processed"`
	RecordingsProcessed int                `json:"recordings_processed"`
	ShowsMatched        int                `json:"shows_matched"`
	VenuesCanonical     int                `json:"venues_canonical"`
	Matching            matcher.Statistics `json:"matching"`
}

// IsSuccess reports whether the run completed with no recoverable
// problems at all.
func (r *Result) IsSuccess() bool {
	return r.Report.IsEmpty()
}

// Summary returns a one-line description of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"processed %d shows and %d recordings in %v: %d shows with recordings, %d venues, %d collections, %d issues",
		r.Stats.ShowsProcessed,
		r.Stats.RecordingsProcessed,
		r.Metadata.Duration.Round(time.Millisecond),
		r.Stats.ShowsMatched,
		r.Stats.VenuesCanonical,
		len(r.Collections),
		r.Report.TotalIssues(),
	)
}
