package collections_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapetrail/tapetrail/pkg/collections"
	"github.com/tapetrail/tapetrail/pkg/types"
)

func may1977Index() map[types.Date][]string {
	index := make(map[types.Date][]string)
	for day := 1; day <= 31; day++ {
		date := types.Date(fmt.Sprintf("1977-05-%02d", day))
		index[date] = []string{fmt.Sprintf("%s-show", date)}
	}
	return index
}

func TestResolveDateRange(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	resolved := r.Resolve(types.CollectionDefinition{
		ID:   "may-1977",
		Name: "May 1977",
		DateRanges: []types.DateRange{{
			Start:         "1977-05-01",
			End:           "1977-05-31",
			ExcludedDates: []types.Date{"1977-05-15"},
		}},
	})

	assert.Equal(t, 30, resolved.TotalShows)
	assert.NotContains(t, resolved.ShowIDs, "1977-05-15-show")
	assert.Contains(t, resolved.ShowIDs, "1977-05-01-show")
	assert.Contains(t, resolved.ShowIDs, "1977-05-31-show")
	assert.Empty(t, resolved.UnmatchedDates)
}

func TestResolveExcludedRanges(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	resolved := r.Resolve(types.CollectionDefinition{
		ID: "may-1977-gap",
		DateRanges: []types.DateRange{{
			Start: "1977-05-01",
			End:   "1977-05-31",
			ExcludedRanges: []types.DateSpan{
				{Start: "1977-05-10", End: "1977-05-19"},
			},
		}},
	})

	assert.Equal(t, 21, resolved.TotalShows)
	assert.NotContains(t, resolved.ShowIDs, "1977-05-10-show")
	assert.NotContains(t, resolved.ShowIDs, "1977-05-19-show")
	assert.Contains(t, resolved.ShowIDs, "1977-05-09-show")
	assert.Contains(t, resolved.ShowIDs, "1977-05-20-show")
}

func TestResolveExplicitAndAdditionalDates(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	resolved := r.Resolve(types.CollectionDefinition{
		ID:              "picks",
		Dates:           []types.Date{"1977-05-08", "1977-05-09"},
		AdditionalDates: []types.Date{"1977-05-22"},
	})

	assert.Equal(t, []string{
		"1977-05-08-show",
		"1977-05-09-show",
		"1977-05-22-show",
	}, resolved.ShowIDs)
}

func TestResolveUnmatchedDates(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	resolved := r.Resolve(types.CollectionDefinition{
		ID:    "outside",
		Dates: []types.Date{"1977-05-08", "1978-07-08"},
	})

	assert.Equal(t, 1, resolved.TotalShows)
	assert.Equal(t, []types.Date{"1978-07-08"}, resolved.UnmatchedDates)
}

func TestResolveMultipleShowsPerDate(t *testing.T) {
	index := map[types.Date][]string{
		"1970-02-13": {"1970-02-13-early", "1970-02-13-late"},
	}
	r := collections.NewResolver(index)

	resolved := r.Resolve(types.CollectionDefinition{
		ID:    "double",
		Dates: []types.Date{"1970-02-13"},
	})

	assert.Equal(t, []string{"1970-02-13-early", "1970-02-13-late"}, resolved.ShowIDs)
	assert.Equal(t, 2, resolved.TotalShows)
}

func TestResolveInvertedRange(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	resolved := r.Resolve(types.CollectionDefinition{
		ID: "inverted",
		DateRanges: []types.DateRange{{
			Start: "1977-05-31",
			End:   "1977-05-01",
		}},
	})

	assert.Zero(t, resolved.TotalShows)
	assert.Empty(t, resolved.UnmatchedDates)
}

func TestResolveAllPreservesOrder(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	defs := make([]types.CollectionDefinition, 0, 20)
	for i := 0; i < 20; i++ {
		defs = append(defs, types.CollectionDefinition{
			ID:    fmt.Sprintf("c-%02d", i),
			Dates: []types.Date{types.Date(fmt.Sprintf("1977-05-%02d", i%31+1))},
		})
	}

	resolved := r.ResolveAll(context.Background(), defs)
	require.Len(t, resolved, 20)
	for i, rc := range resolved {
		assert.Equal(t, defs[i].ID, rc.ID)
		assert.Equal(t, 1, rc.TotalShows)
	}
}

func TestAnalyzeFailure(t *testing.T) {
	r := collections.NewResolver(may1977Index())

	t.Run("off by a day", func(t *testing.T) {
		def := types.CollectionDefinition{
			ID:    "shifted",
			Name:  "Shifted Dates",
			Dates: []types.Date{"1977-06-01"},
		}
		resolved := r.Resolve(def)
		require.Zero(t, resolved.TotalShows)

		failure := r.AnalyzeFailure(def, resolved)
		assert.Equal(t, "shifted", failure.CollectionID)
		require.Len(t, failure.SimilarDates, 1)
		assert.Equal(t, types.Date("1977-06-01"), failure.SimilarDates[0].Missing)
		assert.Equal(t, types.Date("1977-05-29"), failure.SimilarDates[0].Found)
		require.NotEmpty(t, failure.Suggestions)
		assert.Contains(t, failure.Suggestions[0], "off by a day")
	})

	t.Run("nothing nearby", func(t *testing.T) {
		def := types.CollectionDefinition{
			ID:    "far",
			Dates: []types.Date{"1990-01-01"},
		}
		resolved := r.Resolve(def)
		failure := r.AnalyzeFailure(def, resolved)
		assert.Empty(t, failure.SimilarDates)
		require.NotEmpty(t, failure.Suggestions)
		assert.Contains(t, failure.Suggestions[0], "absent")
	})

	t.Run("selector selected nothing", func(t *testing.T) {
		def := types.CollectionDefinition{ID: "empty"}
		resolved := r.Resolve(def)
		failure := r.AnalyzeFailure(def, resolved)
		require.NotEmpty(t, failure.Suggestions)
		assert.Contains(t, failure.Suggestions[0], "selected no dates")
	})
}
