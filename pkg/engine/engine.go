// Package engine orchestrates a full integration run: date and venue
// normalization, recording-to-event matching, best-recording selection,
// collection resolution, and enrichment of the final event records.
//
// The engine is a pure batch transform. It performs no I/O: callers load
// raw records through pkg/records (or any other reader) and hand them in
// fully materialized. Re-running on unchanged inputs yields identical
// output; every recoverable condition lands in the run report instead of
// aborting the pass.
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/tapetrail/tapetrail/pkg/collections"
	"github.com/tapetrail/tapetrail/pkg/enricher"
	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/matcher"
	"github.com/tapetrail/tapetrail/pkg/types"
	"github.com/tapetrail/tapetrail/pkg/venues"
)

// Inputs are the fully-materialized raw records for one run. Shows and
// recordings are required; collection definitions are optional.
type Inputs struct {
	Shows       []types.RawShow
	Recordings  []types.RawRecording
	Collections []types.CollectionDefinition
}

// Engine runs the integration pipeline.
type Engine struct {
	opts *options
}

// New creates an Engine with options.
func New(opts ...Option) (*Engine, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{opts: options}, nil
}

// engineRun holds the mutable state of one run.
type engineRun struct {
	ctx    context.Context
	opts   *options
	venues *venues.Registry
	events []*matcher.Event
	report types.Report
}

// Run executes the pipeline over the inputs. Only missing required inputs
// abort the run; everything else is reported and survived.
func (e *Engine) Run(ctx context.Context, inputs Inputs) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	shows, recordings := e.restrict(inputs)
	log.Info().
		Int("shows", len(shows)).
		Int("recordings", len(recordings)).
		Int("collections", len(inputs.Collections)).
		Msg("Starting integration run")

	var registryOpts []venues.Option
	var matcherOpts []matcher.Option
	if e.opts.venueThreshold > 0 {
		registryOpts = append(registryOpts, venues.WithThreshold(e.opts.venueThreshold))
		matcherOpts = append(matcherOpts, matcher.WithVenueThreshold(e.opts.venueThreshold))
	}

	run := &engineRun{
		ctx:    ctx,
		opts:   e.opts,
		venues: venues.NewRegistry(registryOpts...),
	}

	// Normalization. Shows first so canonical venues are anchored by the
	// authoritative event records before any matching happens.
	normalized := run.normalizeShows(shows)
	recs := run.normalizeRecordings(recordings)

	// Matching and best-recording selection.
	m := matcher.New(matcherOpts...)
	matchResult := m.Match(ctx, normalized.events, recs)
	matcher.NewSelector().Annotate(matchResult)
	run.report.UnmatchedRecordings = matchResult.Unmatched

	// Collection resolution against the normalized event set.
	resolver := collections.NewResolver(dateIndex(normalized.events))
	resolved := resolver.ResolveAll(ctx, inputs.Collections)
	for i, rc := range resolved {
		if rc.TotalShows == 0 {
			run.report.CollectionFailures = append(run.report.CollectionFailures,
				resolver.AnalyzeFailure(inputs.Collections[i], rc))
		}
	}

	// Enrichment: merge annotations and membership into output records.
	membership := enricher.Membership(resolved)
	enriched := make([]types.EnrichedShow, 0, len(normalized.events)+len(normalized.unparsable))
	for _, ev := range normalized.events {
		enriched = append(enriched, enricher.Enrich(
			*ev.Show,
			matchResult.Shows[ev.Show.ID],
			ev.Venue.Key,
			membership[ev.Show.ID],
		))
	}
	for _, show := range normalized.unparsable {
		enriched = append(enriched, enricher.Enrich(show, nil, venueKeyFor(run.venues, show), nil))
	}
	sort.Slice(enriched, func(i, j int) bool { return enriched[i].ID < enriched[j].ID })

	result := &Result{
		Shows:       enriched,
		Venues:      run.venues.Venues(),
		Collections: resolved,
		Report:      run.report,
	}
	result.Metadata.StartTime = start
	result.Metadata.EndTime = time.Now()
	result.Metadata.Duration = result.Metadata.EndTime.Sub(start)
	result.Stats = Statistics{
		ShowsProcessed:      len(shows),
		RecordingsProcessed: len(recordings),
		ShowsMatched:        countMatched(matchResult),
		VenuesCanonical:     run.venues.Len(),
		Matching:            matchResult.Stats,
	}

	log.Info().
		Dur("duration", result.Metadata.Duration).
		Int("enriched_shows", len(enriched)).
		Int("venues", result.Stats.VenuesCanonical).
		Int("report_issues", run.report.TotalIssues()).
		Msg("Integration run complete")

	return result, nil
}

// validateInputs enforces the fatal preconditions: both record inputs
// must be present and non-empty.
func validateInputs(inputs Inputs) error {
	if len(inputs.Shows) == 0 {
		return errors.NewMissingInputError("shows", "", "no raw show records provided")
	}
	if len(inputs.Recordings) == 0 {
		return errors.NewMissingInputError("recordings", "", "no raw recording records provided")
	}
	return nil
}

// restrict applies the optional date-range restriction and record cap.
// Inputs are sorted by identifier first so the cap is deterministic.
func (e *Engine) restrict(inputs Inputs) ([]types.RawShow, []types.RawRecording) {
	shows := make([]types.RawShow, len(inputs.Shows))
	copy(shows, inputs.Shows)
	sort.Slice(shows, func(i, j int) bool { return shows[i].ID < shows[j].ID })

	recordings := make([]types.RawRecording, len(inputs.Recordings))
	copy(recordings, inputs.Recordings)
	sort.Slice(recordings, func(i, j int) bool { return recordings[i].ID < recordings[j].ID })

	if e.opts.limit > 0 {
		if len(shows) > e.opts.limit {
			shows = shows[:e.opts.limit]
		}
		if len(recordings) > e.opts.limit {
			recordings = recordings[:e.opts.limit]
		}
	}
	return shows, recordings
}

// dateIndex maps every normalized date to the show ids on it.
func dateIndex(events []*matcher.Event) map[types.Date][]string {
	index := make(map[types.Date][]string)
	for _, ev := range events {
		index[ev.Date.Date] = append(index[ev.Date.Date], ev.Show.ID)
	}
	return index
}

func countMatched(result *matcher.Result) int {
	matched := 0
	for _, show := range result.Shows {
		if show.RecordingCount > 0 {
			matched++
		}
	}
	return matched
}
