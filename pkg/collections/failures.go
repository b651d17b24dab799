package collections

import (
	"fmt"

	"github.com/tapetrail/tapetrail/pkg/types"
)

// similarDateWindow is how many days on either side of a missing selector
// date to scan for shows, the usual signature of an off-by-one source.
const similarDateWindow = 3

// maxSimilarDateProbes caps how many missing dates get the nearby-date
// scan, keeping failure analysis cheap on badly broken selectors.
const maxSimilarDateProbes = 5

// AnalyzeFailure explains why a collection resolved to zero shows,
// collecting missing dates, nearby alternatives, and operator-facing
// suggestions.
func (r *Resolver) AnalyzeFailure(def types.CollectionDefinition, resolved types.ResolvedCollection) types.CollectionFailure {
	failure := types.CollectionFailure{
		CollectionID: def.ID,
		Name:         def.Name,
		MissingDates: resolved.UnmatchedDates,
	}

	failure.SimilarDates = r.findSimilarDates(resolved.UnmatchedDates)

	total := len(resolved.UnmatchedDates)
	switch {
	case total == 0:
		failure.Suggestions = append(failure.Suggestions,
			"selector selected no dates; check the definition for empty or inverted ranges")
	case len(failure.SimilarDates) > 0:
		failure.Suggestions = append(failure.Suggestions,
			fmt.Sprintf("%d selector dates have shows within ±%d days; the source dates may be off by a day",
				len(failure.SimilarDates), similarDateWindow))
	default:
		failure.Suggestions = append(failure.Suggestions,
			fmt.Sprintf("all %d selector dates are absent from the event set", total))
	}

	return failure
}

// findSimilarDates locates shows near missing dates. Only the first match
// per missing date is reported.
func (r *Resolver) findSimilarDates(missing []types.Date) []types.SimilarDate {
	var similar []types.SimilarDate
	probes := missing
	if len(probes) > maxSimilarDateProbes {
		probes = probes[:maxSimilarDateProbes]
	}

	for _, date := range probes {
		if !date.Valid() {
			continue
		}
		for _, delta := range []int{-3, -2, -1, 1, 2, 3} {
			candidate := date.AddDays(delta)
			if ids, ok := r.index[candidate]; ok && len(ids) > 0 {
				similar = append(similar, types.SimilarDate{Missing: date, Found: candidate})
				break
			}
		}
	}
	return similar
}
