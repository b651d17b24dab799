package matcher

import (
	"sort"

	"github.com/tapetrail/tapetrail/pkg/constants"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// reviewSaturation is the review count at which aggregate confidence
// reaches 1.0.
const reviewSaturation = float64(constants.ReviewSaturation)

// Selector deterministically picks the representative recording for an
// event and derives its aggregate rating and confidence.
type Selector struct{}

// NewSelector creates a Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Annotate fills BestRecording, AvgRating, Confidence, and SourceTypes on
// every matched show in the result. It mutates the result in place.
func (s *Selector) Annotate(result *Result) {
	for showID, matched := range result.Shows {
		recs := result.Attached[showID]
		if len(recs) == 0 {
			continue
		}
		matched.BestRecording = s.Best(recs).ID
		matched.AvgRating = s.AverageRating(recs)
		matched.Confidence = s.Confidence(recs)
		matched.SourceTypes = countSourceTypes(recs)
	}
}

// Best returns the highest-ranked recording. The order is total: source
// type rank, then rating, then review count, with identifier order as the
// final tie-break, so selection is deterministic.
func (s *Selector) Best(recs []*types.RawRecording) *types.RawRecording {
	if len(recs) == 0 {
		return nil
	}
	ranked := make([]*types.RawRecording, len(recs))
	copy(ranked, recs)
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[j], ranked[i]) })
	return ranked[0]
}

// less orders recordings worst-first.
func less(a, b *types.RawRecording) bool {
	if ra, rb := a.SourceType.Rank(), b.SourceType.Rank(); ra != rb {
		return ra < rb
	}
	if a.Rating != b.Rating {
		return a.Rating < b.Rating
	}
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount < b.ReviewCount
	}
	return a.ID > b.ID
}

// AverageRating computes the mean rating weighted by each recording's own
// confidence. When no recording carries confidence the plain mean is used.
func (s *Selector) AverageRating(recs []*types.RawRecording) float64 {
	if len(recs) == 0 {
		return 0
	}

	var weightedSum, totalWeight float64
	for _, rec := range recs {
		weightedSum += rec.Rating * rec.Confidence
		totalWeight += rec.Confidence
	}
	if totalWeight > 0 {
		return weightedSum / totalWeight
	}

	var sum float64
	for _, rec := range recs {
		sum += rec.Rating
	}
	return sum / float64(len(recs))
}

// Confidence derives aggregate confidence from total review volume,
// bounded to [0,1]. More reviews mean more statistical weight behind the
// aggregate rating.
func (s *Selector) Confidence(recs []*types.RawRecording) float64 {
	total := 0
	for _, rec := range recs {
		total += rec.ReviewCount
	}
	confidence := float64(total) / reviewSaturation
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func countSourceTypes(recs []*types.RawRecording) map[types.SourceType]int {
	counts := make(map[types.SourceType]int)
	for _, rec := range recs {
		counts[rec.SourceType]++
	}
	return counts
}
