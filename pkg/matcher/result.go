package matcher

import (
	"sort"

	"github.com/tapetrail/tapetrail/pkg/types"
)

// Result is the outcome of one matching pass.
type Result struct {
	// Shows maps show id to its matcher annotations. Every event passed
	// to Match has an entry, recordings or not.
	Shows map[string]*types.MatchedShow

	// Attached maps show id to the raw recordings behind the identifiers
	// in Shows, in the same emission order. The best-recording selector
	// consumes this.
	Attached map[string][]*types.RawRecording

	// Unmatched lists recording identifiers whose date had no events,
	// sorted. A reportable condition, not an error.
	Unmatched []string

	// Stats summarizes the pass.
	Stats Statistics
}

// Statistics counts matching outcomes per method.
type Statistics struct {
	Buckets             int
	MatchedRecordings   int
	UnmatchedRecordings int
	ShowsByMethod       map[types.Method]int
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		Shows:    make(map[string]*types.MatchedShow),
		Attached: make(map[string][]*types.RawRecording),
		Stats:    Statistics{ShowsByMethod: make(map[types.Method]int)},
	}
}

// apply folds one bucket's assignment into the result.
func (r *Result) apply(b *bucket, asn *assignment) {
	r.Stats.Buckets++

	recByID := make(map[string]*types.RawRecording, len(b.recordings))
	for _, rec := range b.recordings {
		recByID[rec.Rec.ID] = rec.Rec
	}

	for _, ev := range b.events {
		showID := ev.Show.ID
		ids := asn.recs[showID]
		matched := &types.MatchedShow{
			ShowID:           showID,
			Recordings:       ids,
			RecordingCount:   len(ids),
			MatchingMethod:   asn.method,
			FilteringApplied: asn.filters[showID],
		}
		if matched.Recordings == nil {
			matched.Recordings = []string{}
		}
		if matched.FilteringApplied == nil {
			matched.FilteringApplied = []string{}
		}

		for _, id := range ids {
			r.Attached[showID] = append(r.Attached[showID], recByID[id])
		}

		r.Shows[showID] = matched
		r.Stats.ShowsByMethod[asn.method]++
	}

	r.Stats.MatchedRecordings += len(b.recordings)
}

// finalize sorts the unmatched list and settles counters.
func (r *Result) finalize() {
	sort.Strings(r.Unmatched)
	r.Stats.UnmatchedRecordings = len(r.Unmatched)
}
