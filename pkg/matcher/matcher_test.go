package matcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapetrail/tapetrail/pkg/matcher"
	"github.com/tapetrail/tapetrail/pkg/types"
	"github.com/tapetrail/tapetrail/pkg/venues"
)

func testEvent(id string, date types.Date, slot types.TimeSlot, venue string) *matcher.Event {
	return &matcher.Event{
		Show: &types.RawShow{ID: id, Date: date.String(), Venue: venue},
		Date: types.NormalizedDate{Date: date, Slot: slot},
		Venue: &types.CanonicalVenue{
			Key:  venues.Key(venue),
			Name: venue,
		},
	}
}

func testRecording(id string, date types.Date, slot types.TimeSlot, venue string) *matcher.Recording {
	return &matcher.Recording{
		Rec:  &types.RawRecording{ID: id, Date: date.String(), Venue: venue},
		Date: types.NormalizedDate{Date: date, Slot: slot},
	}
}

func TestMatchSingleEventDate(t *testing.T) {
	events := []*matcher.Event{
		testEvent("1970-02-13-fillmore-west", "1970-02-13", types.SlotNone, "Fillmore West"),
	}
	recordings := []*matcher.Recording{
		testRecording("gd1970-02-13.sbd.1", "1970-02-13", types.SlotNone, ""),
		testRecording("gd1970-02-13.aud.2", "1970-02-13", types.SlotNone, "Fillmore West"),
	}

	result := matcher.New().Match(context.Background(), events, recordings)

	matched := result.Shows["1970-02-13-fillmore-west"]
	require.NotNil(t, matched)
	assert.Equal(t, types.MethodDateOnly, matched.MatchingMethod)
	assert.Equal(t, []string{"gd1970-02-13.aud.2", "gd1970-02-13.sbd.1"}, matched.Recordings)
	assert.Empty(t, matched.FilteringApplied)
	assert.Empty(t, result.Unmatched)
}

func TestMatchTimeSlots(t *testing.T) {
	// Early and late show at the same venue on one night.
	events := []*matcher.Event{
		testEvent("1970-02-13-early", "1970-02-13", types.SlotEarly, "Fillmore East"),
		testEvent("1970-02-13-late", "1970-02-13", types.SlotLate, "Fillmore East"),
	}
	recordings := []*matcher.Recording{
		testRecording("rec-early", "1970-02-13", types.SlotEarly, ""),
		testRecording("rec-late", "1970-02-13", types.SlotLate, ""),
		testRecording("rec-ambiguous", "1970-02-13", types.SlotNone, ""),
		testRecording("rec-both", "1970-02-13", types.SlotEarlyLate, ""),
	}

	result := matcher.New().Match(context.Background(), events, recordings)

	early := result.Shows["1970-02-13-early"]
	late := result.Shows["1970-02-13-late"]
	require.NotNil(t, early)
	require.NotNil(t, late)

	assert.Equal(t, types.MethodDateTime, early.MatchingMethod)
	assert.Equal(t, types.MethodDateTime, late.MatchingMethod)

	// Slot-tagged recordings route to their slot only.
	assert.Contains(t, early.Recordings, "rec-early")
	assert.NotContains(t, early.Recordings, "rec-late")
	assert.Contains(t, late.Recordings, "rec-late")
	assert.NotContains(t, late.Recordings, "rec-early")

	// Ambiguous and both-show recordings attach to every event rather
	// than being dropped.
	for _, matched := range []*types.MatchedShow{early, late} {
		assert.Contains(t, matched.Recordings, "rec-ambiguous")
		assert.Contains(t, matched.Recordings, "rec-both")
	}

	assert.Contains(t, early.FilteringApplied, "time_slot:early")
	assert.Contains(t, late.FilteringApplied, "time_slot:late")
}

func TestMatchVenueFilter(t *testing.T) {
	// Two same-day events at different venues; the recording names one.
	events := []*matcher.Event{
		testEvent("1970-06-24-capitol", "1970-06-24", types.SlotNone, "Capitol Theater"),
		testEvent("1970-06-24-fillmore", "1970-06-24", types.SlotNone, "Fillmore West"),
	}
	recordings := []*matcher.Recording{
		testRecording("rec-capitol", "1970-06-24", types.SlotNone, "Capitol Theatre"),
	}

	result := matcher.New().Match(context.Background(), events, recordings)

	capitol := result.Shows["1970-06-24-capitol"]
	fillmore := result.Shows["1970-06-24-fillmore"]
	require.NotNil(t, capitol)
	require.NotNil(t, fillmore)

	assert.Equal(t, types.MethodVenueFilter, capitol.MatchingMethod)
	assert.Equal(t, []string{"rec-capitol"}, capitol.Recordings)
	assert.Contains(t, capitol.FilteringApplied, matcher.FilterVenueMatch)
	assert.Empty(t, fillmore.Recordings)
}

func TestMatchVenueFallback(t *testing.T) {
	// Recording venue text matches neither event: attach to both.
	events := []*matcher.Event{
		testEvent("1970-06-24-capitol", "1970-06-24", types.SlotNone, "Capitol Theater"),
		testEvent("1970-06-24-fillmore", "1970-06-24", types.SlotNone, "Fillmore West"),
	}
	recordings := []*matcher.Recording{
		testRecording("rec-nowhere", "1970-06-24", types.SlotNone, "Unknown Hall"),
	}

	result := matcher.New().Match(context.Background(), events, recordings)

	capitol := result.Shows["1970-06-24-capitol"]
	fillmore := result.Shows["1970-06-24-fillmore"]
	assert.Equal(t, []string{"rec-nowhere"}, capitol.Recordings)
	assert.Equal(t, []string{"rec-nowhere"}, fillmore.Recordings)
	assert.Contains(t, capitol.FilteringApplied, matcher.FilterVenueFallback)
	assert.Contains(t, fillmore.FilteringApplied, matcher.FilterVenueFallback)
}

func TestMatchUnmatchedRecordings(t *testing.T) {
	events := []*matcher.Event{
		testEvent("1970-02-13-fillmore", "1970-02-13", types.SlotNone, "Fillmore West"),
	}
	recordings := []*matcher.Recording{
		testRecording("rec-orphan-b", "1971-01-01", types.SlotNone, ""),
		testRecording("rec-orphan-a", "1972-01-01", types.SlotNone, ""),
	}

	result := matcher.New().Match(context.Background(), events, recordings)

	assert.Equal(t, []string{"rec-orphan-a", "rec-orphan-b"}, result.Unmatched)
	assert.Equal(t, 2, result.Stats.UnmatchedRecordings)
	assert.Empty(t, result.Shows["1970-02-13-fillmore"].Recordings)
}

func TestMatchEventWithoutRecordings(t *testing.T) {
	events := []*matcher.Event{
		testEvent("1970-02-13-fillmore", "1970-02-13", types.SlotNone, "Fillmore West"),
	}

	result := matcher.New().Match(context.Background(), events, nil)

	matched := result.Shows["1970-02-13-fillmore"]
	require.NotNil(t, matched)
	assert.Equal(t, 0, matched.RecordingCount)
	assert.NotNil(t, matched.Recordings)
	assert.Empty(t, matched.Recordings)
}

func TestMatchDeterministic(t *testing.T) {
	events := []*matcher.Event{
		testEvent("1970-02-13-early", "1970-02-13", types.SlotEarly, "Fillmore East"),
		testEvent("1970-02-13-late", "1970-02-13", types.SlotLate, "Fillmore East"),
		testEvent("1970-06-24-capitol", "1970-06-24", types.SlotNone, "Capitol Theater"),
	}
	recordings := []*matcher.Recording{
		testRecording("rec-1", "1970-02-13", types.SlotNone, ""),
		testRecording("rec-2", "1970-02-13", types.SlotEarly, ""),
		testRecording("rec-3", "1970-06-24", types.SlotNone, "Capitol"),
	}

	first := matcher.New().Match(context.Background(), events, recordings)
	second := matcher.New().Match(context.Background(), events, recordings)

	assert.Equal(t, first.Shows, second.Shows)
	assert.Equal(t, first.Unmatched, second.Unmatched)
}
