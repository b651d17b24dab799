// Package enricher merges matcher annotations and collection membership
// into final event records. It is a pure merge step: no matching logic
// lives here, and upstream failures surface as partially-filled fields
// rather than errors.
package enricher

import (
	"sort"

	"github.com/tapetrail/tapetrail/pkg/types"
)

// Enrich produces the output record for one show. A nil matched argument
// means the show never reached the matcher (its date failed to
// normalize): the record is emitted with empty recording fields and
// matching_method "unmatched".
func Enrich(show types.RawShow, matched *types.MatchedShow, venueKey string, collections []string) types.EnrichedShow {
	out := types.EnrichedShow{
		RawShow:          show,
		Recordings:       []string{},
		FilteringApplied: []string{},
		MatchingMethod:   types.MethodUnmatched,
		VenueKey:         venueKey,
	}

	if matched != nil {
		out.Recordings = matched.Recordings
		out.BestRecording = matched.BestRecording
		out.AvgRating = matched.AvgRating
		out.RecordingCount = matched.RecordingCount
		out.Confidence = matched.Confidence
		out.MatchingMethod = matched.MatchingMethod
		out.FilteringApplied = matched.FilteringApplied
	}

	if len(collections) > 0 {
		out.Collections = make([]string, len(collections))
		copy(out.Collections, collections)
		sort.Strings(out.Collections)
	}

	return out
}

// Membership inverts resolved collections into a per-show membership map.
func Membership(resolved []types.ResolvedCollection) map[string][]string {
	membership := make(map[string][]string)
	for _, rc := range resolved {
		for _, showID := range rc.ShowIDs {
			membership[showID] = append(membership[showID], rc.ID)
		}
	}
	for showID := range membership {
		sort.Strings(membership[showID])
	}
	return membership
}
