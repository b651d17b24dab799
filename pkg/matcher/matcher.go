// Package matcher assigns recordings to live events. Recordings and events
// share no foreign key, only noisy date, time-slot, and venue text, so the
// matcher escalates through three levels of precision per date bucket:
// plain date grouping, time-slot distribution, and venue-similarity
// filtering. A recording is never silently dropped: when no signal can
// disambiguate it, it is attached to every event in its date bucket, and
// when its date has no events at all it is reported as unmatched.
//
// The levels are implemented as an ordered pipeline of pure strategies
// over date buckets; the first strategy able to resolve a bucket wins.
package matcher

import (
	"context"
	"sort"

	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/types"
	"github.com/tapetrail/tapetrail/pkg/venues"
)

// Event is a show that survived normalization, ready for matching.
type Event struct {
	Show  *types.RawShow
	Date  types.NormalizedDate
	Venue *types.CanonicalVenue
}

// Recording is a recording that survived normalization.
type Recording struct {
	Rec  *types.RawRecording
	Date types.NormalizedDate
}

// Matcher distributes recordings across events date bucket by date bucket.
type Matcher struct {
	threshold  float64
	strategies []strategy
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithVenueThreshold overrides the venue-similarity acceptance threshold
// used by the venue-filtering level.
func WithVenueThreshold(threshold float64) Option {
	return func(m *Matcher) {
		if threshold > 0 {
			m.threshold = threshold
		}
	}
}

// New creates a Matcher with the default strategy pipeline.
func New(opts ...Option) *Matcher {
	m := &Matcher{threshold: venues.DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}
	m.strategies = []strategy{
		singleEventStrategy{},
		timeSlotStrategy{},
		venueFilterStrategy{threshold: m.threshold},
	}
	return m
}

// bucket holds the events and recordings sharing one calendar date.
// Both slices are sorted by identifier so assignment is deterministic.
type bucket struct {
	date       types.Date
	events     []*Event
	recordings []*Recording
}

// Match assigns every recording to one or more events and returns the
// per-event annotations. Recordings whose date has no events are listed
// in Result.Unmatched.
func (m *Matcher) Match(ctx context.Context, events []*Event, recordings []*Recording) *Result {
	log := logging.FromContext(ctx)
	result := NewResult()

	buckets := makeBuckets(events, recordings)

	for _, b := range buckets {
		if len(b.events) == 0 {
			for _, rec := range b.recordings {
				result.Unmatched = append(result.Unmatched, rec.Rec.ID)
			}
			continue
		}

		var asn *assignment
		for _, s := range m.strategies {
			if a, ok := s.apply(b); ok {
				asn = a
				break
			}
		}
		// The venue-filter strategy always resolves, so asn is never nil
		// for a bucket with events.
		result.apply(b, asn)

		if asn.method != types.MethodDateOnly {
			log.Debug().
				Str("date", b.date.String()).
				Int("events", len(b.events)).
				Int("recordings", len(b.recordings)).
				Str("method", asn.method.String()).
				Msg("Resolved multi-event date bucket")
		}
	}

	result.finalize()

	log.Info().
		Int("events", len(events)).
		Int("recordings", len(recordings)).
		Int("unmatched", len(result.Unmatched)).
		Msg("Matching complete")

	return result
}

// makeBuckets groups events and recordings by calendar date. Buckets come
// back sorted by date, members sorted by identifier.
func makeBuckets(events []*Event, recordings []*Recording) []*bucket {
	byDate := make(map[types.Date]*bucket)

	get := func(d types.Date) *bucket {
		b, ok := byDate[d]
		if !ok {
			b = &bucket{date: d}
			byDate[d] = b
		}
		return b
	}

	for _, ev := range events {
		b := get(ev.Date.Date)
		b.events = append(b.events, ev)
	}
	for _, rec := range recordings {
		b := get(rec.Date.Date)
		b.recordings = append(b.recordings, rec)
	}

	buckets := make([]*bucket, 0, len(byDate))
	for _, b := range byDate {
		sort.Slice(b.events, func(i, j int) bool { return b.events[i].Show.ID < b.events[j].Show.ID })
		sort.Slice(b.recordings, func(i, j int) bool { return b.recordings[i].Rec.ID < b.recordings[j].Rec.ID })
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].date < buckets[j].date })
	return buckets
}

// distinctVenues reports whether a bucket's events sit at two or more
// distinct canonical venues.
func distinctVenues(events []*Event) bool {
	keys := make(map[string]bool)
	for _, ev := range events {
		if ev.Venue != nil {
			keys[ev.Venue.Key] = true
		}
	}
	return len(keys) > 1
}
