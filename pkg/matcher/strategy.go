package matcher

import (
	"github.com/tapetrail/tapetrail/pkg/types"
	"github.com/tapetrail/tapetrail/pkg/venues"
)

// Filter names recorded on matched shows, in application order.
const (
	filterTimeSlot      = "time_slot:"
	FilterVenueMatch    = "venue_match"
	FilterVenueFallback = "venue_fallback"
)

// assignment is one resolved date bucket: recording identifiers per show,
// in emission order, plus the audit trail of applied filters.
type assignment struct {
	method  types.Method
	recs    map[string][]string // show id -> recording ids
	filters map[string][]string // show id -> applied filter names
}

func newAssignment(method types.Method) *assignment {
	return &assignment{
		method:  method,
		recs:    make(map[string][]string),
		filters: make(map[string][]string),
	}
}

func (a *assignment) attach(showID, recordingID string) {
	a.recs[showID] = append(a.recs[showID], recordingID)
}

func (a *assignment) addFilter(showID, name string) {
	for _, existing := range a.filters[showID] {
		if existing == name {
			return
		}
	}
	a.filters[showID] = append(a.filters[showID], name)
}

// strategy resolves a date bucket, or declines it for the next level.
type strategy interface {
	apply(b *bucket) (*assignment, bool)
}

// singleEventStrategy handles buckets with exactly one event: every
// recording on that date belongs to it, venue text notwithstanding.
type singleEventStrategy struct{}

func (singleEventStrategy) apply(b *bucket) (*assignment, bool) {
	if len(b.events) != 1 {
		return nil, false
	}
	asn := newAssignment(types.MethodDateOnly)
	showID := b.events[0].Show.ID
	asn.recs[showID] = []string{}
	for _, rec := range b.recordings {
		asn.attach(showID, rec.Rec.ID)
	}
	return asn, true
}

// timeSlotStrategy partitions multi-event buckets by time slot. A
// recording carrying an early or late marker routes to the event(s) in
// that slot; an unmarked recording is ambiguous and attaches to every
// event rather than being dropped. The strategy declines buckets where
// venue filtering could still separate ambiguous recordings.
type timeSlotStrategy struct{}

func (timeSlotStrategy) apply(b *bucket) (*assignment, bool) {
	if needsVenueFilter(b) {
		return nil, false
	}

	asn := newAssignment(types.MethodDateTime)
	for _, ev := range b.events {
		asn.recs[ev.Show.ID] = []string{}
		if ev.Date.Slot != types.SlotNone {
			asn.addFilter(ev.Show.ID, filterTimeSlot+ev.Date.Slot.String())
		}
	}
	for _, rec := range b.recordings {
		for _, ev := range routeBySlot(b.events, rec) {
			asn.attach(ev.Show.ID, rec.Rec.ID)
		}
	}
	return asn, true
}

// venueFilterStrategy is the last escalation level: slot routing first,
// then venue similarity for recordings that would otherwise attach to
// every event. If no event clears the threshold the recording falls back
// to the whole bucket — completeness beats precision.
type venueFilterStrategy struct {
	threshold float64
}

func (s venueFilterStrategy) apply(b *bucket) (*assignment, bool) {
	asn := newAssignment(types.MethodVenueFilter)
	for _, ev := range b.events {
		asn.recs[ev.Show.ID] = []string{}
		if ev.Date.Slot != types.SlotNone {
			asn.addFilter(ev.Show.ID, filterTimeSlot+ev.Date.Slot.String())
		}
	}

	for _, rec := range b.recordings {
		targets := routeBySlot(b.events, rec)
		if len(targets) < len(b.events) {
			// Slot signal already narrowed this recording.
			for _, ev := range targets {
				asn.attach(ev.Show.ID, rec.Rec.ID)
			}
			continue
		}

		matched := matchByVenue(targets, rec, s.threshold)
		if matched == nil {
			// No event cleared the threshold: attach everywhere.
			for _, ev := range targets {
				asn.attach(ev.Show.ID, rec.Rec.ID)
				asn.addFilter(ev.Show.ID, FilterVenueFallback)
			}
			continue
		}
		for _, ev := range matched {
			asn.attach(ev.Show.ID, rec.Rec.ID)
			asn.addFilter(ev.Show.ID, FilterVenueMatch)
		}
	}
	return asn, true
}

// needsVenueFilter reports whether a bucket has multiple events at
// distinct venues and at least one recording that slot routing alone
// would attach to all of them.
func needsVenueFilter(b *bucket) bool {
	if len(b.events) <= 1 || !distinctVenues(b.events) {
		return false
	}
	for _, rec := range b.recordings {
		if len(routeBySlot(b.events, rec)) == len(b.events) {
			return true
		}
	}
	return false
}

// routeBySlot returns the events a recording's time slot points at. A
// recording whose slot matches no event routes to every event, never to
// none.
func routeBySlot(events []*Event, rec *Recording) []*Event {
	slot := rec.Date.Slot
	if slot == types.SlotNone || slot == types.SlotEarlyLate {
		return events
	}
	var routed []*Event
	for _, ev := range events {
		if slot.Covers(ev.Date.Slot) && ev.Date.Slot != types.SlotNone {
			routed = append(routed, ev)
		}
	}
	if len(routed) == 0 {
		return events
	}
	return routed
}

// matchByVenue returns the highest-scoring event(s) at or above the
// threshold for a recording's venue text, or nil when none qualify.
func matchByVenue(events []*Event, rec *Recording, threshold float64) []*Event {
	bestScore := 0.0
	var best []*Event
	for _, ev := range events {
		name := ev.Show.Venue
		if ev.Venue != nil {
			name = ev.Venue.Name
		}
		score := venues.Similarity(rec.Rec.Venue, name)
		switch {
		case score > bestScore:
			bestScore = score
			best = []*Event{ev}
		case score == bestScore && score > 0:
			best = append(best, ev)
		}
	}
	if bestScore < threshold {
		return nil
	}
	return best
}
