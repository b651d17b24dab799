package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tapetrail/tapetrail/pkg/dates"
	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/matcher"
	"github.com/tapetrail/tapetrail/pkg/types"
	"github.com/tapetrail/tapetrail/pkg/venues"
)

var (
	idDatePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	slugStrip    = regexp.MustCompile(`[^a-z0-9]+`)
)

// normalizedShows is the outcome of show normalization: events ready for
// matching plus the shows whose dates could not be parsed.
type normalizedShows struct {
	events     []*matcher.Event
	unparsable []types.RawShow
}

// normalizeShows parses dates, repairs date-inconsistent identifiers, and
// resolves canonical venues. Shows are processed in chronological order
// (then identifier order) so venue alias registration is deterministic.
func (e *engineRun) normalizeShows(shows []types.RawShow) normalizedShows {
	log := logging.FromContext(e.ctx)

	type parsed struct {
		show types.RawShow
		date types.NormalizedDate
	}

	var ok []parsed
	var out normalizedShows
	for _, show := range shows {
		nd, err := dates.Parse(show.Date)
		if err != nil {
			e.report.DateParseFailures = append(e.report.DateParseFailures, types.DateParseFailure{
				RecordKind: "show",
				RecordID:   show.ID,
				Input:      show.Date,
				Reason:     err.Error(),
			})
			out.unparsable = append(out.unparsable, show)
			continue
		}
		if !e.opts.withinRange(nd.Date) {
			continue
		}
		if nd.Slot == types.SlotNone && show.TimeSlot != "" {
			nd.Slot = dates.DetectSlot(show.TimeSlot)
		}
		ok = append(ok, parsed{show: show, date: nd})
	}

	sort.Slice(ok, func(i, j int) bool {
		if ok[i].date.Date != ok[j].date.Date {
			return ok[i].date.Date < ok[j].date.Date
		}
		return ok[i].show.ID < ok[j].show.ID
	})

	for _, p := range ok {
		show := p.show
		show.Date = p.date.Date.String()
		if p.date.Slot == types.SlotEarly || p.date.Slot == types.SlotLate {
			show.TimeSlot = p.date.Slot.String()
		}

		if repaired := repairShowID(show, p.date); repaired != show.ID {
			e.report.IDRepairs = append(e.report.IDRepairs, types.IDRepair{
				OldID: show.ID,
				NewID: repaired,
				Date:  p.date.Date,
			})
			log.Debug().
				Str("old_id", show.ID).
				Str("new_id", repaired).
				Msg("Repaired date-inconsistent show id")
			show.ID = repaired
		}

		venue, _ := e.venues.Resolve(show.Venue, show.City, show.State, show.Country, p.date.Date)
		e.events = append(e.events, &matcher.Event{
			Show:  &show,
			Date:  p.date,
			Venue: venue,
		})
	}

	out.events = e.events
	return out
}

// normalizeRecordings parses recording dates (time slots may hide in the
// identifier or title) and upgrades UNKNOWN source tags via text
// detection. Recordings with unparseable dates are skipped and reported.
func (e *engineRun) normalizeRecordings(recordings []types.RawRecording) []*matcher.Recording {
	var out []*matcher.Recording
	for _, rec := range recordings {
		nd, err := dates.ParseWithHint(rec.Date, rec.ID, rec.Title)
		if err != nil {
			e.report.DateParseFailures = append(e.report.DateParseFailures, types.DateParseFailure{
				RecordKind: "recording",
				RecordID:   rec.ID,
				Input:      rec.Date,
				Reason:     err.Error(),
			})
			continue
		}
		if !e.opts.withinRange(nd.Date) {
			continue
		}
		rec.Date = nd.Date.String()
		rec.SourceType = types.DetectSourceType(&rec)
		out = append(out, &matcher.Recording{Rec: &rec, Date: nd})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rec.ID < out[j].Rec.ID })
	return out
}

// repairShowID regenerates a show identifier when the date embedded in it
// disagrees with the show's normalized date. Identifiers without a date
// prefix are left alone.
func repairShowID(show types.RawShow, nd types.NormalizedDate) string {
	m := idDatePrefix.FindStringSubmatch(show.ID)
	if m == nil || types.Date(m[1]) == nd.Date {
		return show.ID
	}
	return GenerateShowID(nd.Date, show.Venue, show.City, show.State, show.Country, nd.Slot)
}

// GenerateShowID builds the canonical show identifier:
// YYYY-MM-DD-venue-city-state-country[-slot-show], all components
// slugified.
func GenerateShowID(date types.Date, venue, city, state, country string, slot types.TimeSlot) string {
	parts := []string{date.String()}
	for _, component := range []string{venue, city, state, country} {
		if s := slugify(component); s != "" {
			parts = append(parts, s)
		}
	}
	if slot == types.SlotEarly || slot == types.SlotLate {
		parts = append(parts, string(slot)+"-show")
	}
	return strings.Join(parts, "-")
}

func slugify(s string) string {
	return strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// withinRange reports whether a normalized date falls inside the run's
// optional date restriction.
func (o *options) withinRange(d types.Date) bool {
	if !o.rangeStart.IsZero() && d.Before(o.rangeStart) {
		return false
	}
	if !o.rangeEnd.IsZero() && d.After(o.rangeEnd) {
		return false
	}
	return true
}

// venueKeyFor finds the canonical venue key for a raw show, if its venue
// was registered.
func venueKeyFor(registry *venues.Registry, show types.RawShow) string {
	if v, ok := registry.Lookup(show.Venue); ok {
		return v.Key
	}
	return ""
}
