// Package collections evaluates declarative collection selectors — date
// ranges with exclusions, explicit date lists, additions — against the
// normalized event set, producing concrete show-id membership per
// collection. Selector dates with no known show are reported, never
// silently dropped.
package collections

import (
	"context"
	"sort"
	"sync"

	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// Resolver evaluates collection definitions against an immutable index of
// show dates. Resolutions share nothing mutable, so collections may be
// resolved concurrently.
type Resolver struct {
	index map[types.Date][]string // date -> sorted show ids
}

// NewResolver builds a resolver over a date index. The index is copied so
// later caller mutations cannot leak into resolutions.
func NewResolver(index map[types.Date][]string) *Resolver {
	copied := make(map[types.Date][]string, len(index))
	for date, ids := range index {
		sorted := make([]string, len(ids))
		copy(sorted, ids)
		sort.Strings(sorted)
		copied[date] = sorted
	}
	return &Resolver{index: copied}
}

// Resolve evaluates a single definition. Every date selected by the
// definition maps to all shows on that date; dates without shows land in
// UnmatchedDates.
func (r *Resolver) Resolve(def types.CollectionDefinition) types.ResolvedCollection {
	selected := r.selectedDates(def)

	showIDs := make(map[string]bool)
	var unmatched []types.Date
	for _, date := range selected {
		ids, ok := r.index[date]
		if !ok || len(ids) == 0 {
			unmatched = append(unmatched, date)
			continue
		}
		for _, id := range ids {
			showIDs[id] = true
		}
	}

	resolved := types.ResolvedCollection{
		ID:             def.ID,
		Name:           def.Name,
		ShowIDs:        sortedKeys(showIDs),
		UnmatchedDates: unmatched,
	}
	resolved.TotalShows = len(resolved.ShowIDs)
	return resolved
}

// ResolveAll resolves every definition concurrently. Output order follows
// input order regardless of scheduling.
func (r *Resolver) ResolveAll(ctx context.Context, defs []types.CollectionDefinition) []types.ResolvedCollection {
	log := logging.FromContext(ctx)

	resolved := make([]types.ResolvedCollection, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def types.CollectionDefinition) {
			defer wg.Done()
			resolved[i] = r.Resolve(def)
		}(i, def)
	}
	wg.Wait()

	matched := 0
	for _, rc := range resolved {
		if rc.TotalShows > 0 {
			matched++
		}
	}
	log.Info().
		Int("collections", len(defs)).
		Int("matched", matched).
		Int("empty", len(defs)-matched).
		Msg("Resolved collections")

	return resolved
}

// selectedDates expands a definition into its full, de-duplicated,
// sorted date list: explicit dates, additional dates, and every date
// inside each range minus that range's own exclusions.
func (r *Resolver) selectedDates(def types.CollectionDefinition) []types.Date {
	set := make(map[types.Date]bool)

	for _, d := range def.Dates {
		if d.Valid() {
			set[d] = true
		}
	}
	for _, d := range def.AdditionalDates {
		if d.Valid() {
			set[d] = true
		}
	}

	for _, dr := range def.DateRanges {
		for _, d := range expandRange(dr) {
			set[d] = true
		}
	}

	dates := make([]types.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// expandRange enumerates the dates of one range, dropping the range's own
// excluded dates and excluded spans.
func expandRange(dr types.DateRange) []types.Date {
	if !dr.Start.Valid() || !dr.End.Valid() || dr.End.Before(dr.Start) {
		return nil
	}

	excluded := make(map[types.Date]bool, len(dr.ExcludedDates))
	for _, d := range dr.ExcludedDates {
		excluded[d] = true
	}

	var dates []types.Date
	for d := dr.Start; !d.After(dr.End); d = d.AddDays(1) {
		if excluded[d] || inSpans(dr.ExcludedRanges, d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func inSpans(spans []types.DateSpan, d types.Date) bool {
	for _, span := range spans {
		if span.Contains(d) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
