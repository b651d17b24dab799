// Package types defines the data model shared across the tapetrail engine:
// raw show and recording records as produced by the collectors, the
// normalized and canonical forms derived from them, and the output
// artifacts (matched shows, resolved collections, enriched records).
//
// Raw records are immutable inputs. Derived values are recomputed on every
// run so that re-running the engine on unchanged inputs is idempotent.
package types

import "encoding/json"

// RawShow is a single live event as collected from a setlist source.
// The identifier is source-provided and may embed a date that disagrees
// with the date field; the engine repairs such identifiers.
type RawShow struct {
	ID       string `json:"show_id" yaml:"show_id"`
	Date     string `json:"date" yaml:"date"`
	Venue    string `json:"venue" yaml:"venue"`
	City     string `json:"city,omitempty" yaml:"city,omitempty"`
	State    string `json:"state,omitempty" yaml:"state,omitempty"`
	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
	TimeSlot string `json:"show_time,omitempty" yaml:"show_time,omitempty"`

	// Setlist and Lineup are opaque to the engine and carried through
	// to the enriched output unchanged.
	Setlist json.RawMessage `json:"setlist,omitempty" yaml:"setlist,omitempty"`
	Lineup  json.RawMessage `json:"lineup,omitempty" yaml:"lineup,omitempty"`
}

// RawRecording is a single audio recording as collected from an archive
// source. Identifiers are globally unique within a source.
type RawRecording struct {
	ID          string     `json:"identifier" yaml:"identifier"`
	Title       string     `json:"title" yaml:"title"`
	Date        string     `json:"date" yaml:"date"`
	Venue       string     `json:"venue,omitempty" yaml:"venue,omitempty"`
	Location    string     `json:"location,omitempty" yaml:"location,omitempty"`
	SourceType  SourceType `json:"source_type" yaml:"source_type"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Rating      float64    `json:"rating" yaml:"rating"`
	RawRating   float64    `json:"raw_rating,omitempty" yaml:"raw_rating,omitempty"`
	ReviewCount int        `json:"review_count" yaml:"review_count"`
	Confidence  float64    `json:"confidence" yaml:"confidence"`

	// Files holds track and format metadata, opaque to the engine.
	Files json.RawMessage `json:"files,omitempty" yaml:"files,omitempty"`
}

// MatchedShow carries the matcher's per-event annotations for one RawShow.
// Recordings preserves matcher emission order; BestRecording is always a
// member of Recordings when Recordings is non-empty.
type MatchedShow struct {
	ShowID           string   `json:"show_id" yaml:"show_id"`
	Recordings       []string `json:"recordings" yaml:"recordings"`
	BestRecording    string   `json:"best_recording,omitempty" yaml:"best_recording,omitempty"`
	AvgRating        float64  `json:"avg_rating" yaml:"avg_rating"`
	RecordingCount   int      `json:"recording_count" yaml:"recording_count"`
	Confidence       float64  `json:"confidence" yaml:"confidence"`
	MatchingMethod   Method   `json:"matching_method" yaml:"matching_method"`
	FilteringApplied []string `json:"filtering_applied" yaml:"filtering_applied"`

	// SourceTypes counts attached recordings by source type.
	SourceTypes map[SourceType]int `json:"source_types,omitempty" yaml:"source_types,omitempty"`
}

// EnrichedShow is the final output record: the raw show plus matcher
// annotations and collection membership.
type EnrichedShow struct {
	RawShow `yaml:",inline"`

	Recordings       []string `json:"recordings" yaml:"recordings"`
	BestRecording    string   `json:"best_recording,omitempty" yaml:"best_recording,omitempty"`
	AvgRating        float64  `json:"avg_rating" yaml:"avg_rating"`
	RecordingCount   int      `json:"recording_count" yaml:"recording_count"`
	Confidence       float64  `json:"confidence" yaml:"confidence"`
	MatchingMethod   Method   `json:"matching_method" yaml:"matching_method"`
	FilteringApplied []string `json:"filtering_applied" yaml:"filtering_applied"`
	VenueKey         string   `json:"venue_key,omitempty" yaml:"venue_key,omitempty"`
	Collections      []string `json:"collections,omitempty" yaml:"collections,omitempty"`
}

// Method records which matcher level resolved an event's recordings.
type Method string

// Matching methods, in escalation order.
const (
	// MethodDateOnly means the event was the only one on its date.
	MethodDateOnly Method = "date_only"
	// MethodDateTime means same-day events were split by time slot.
	MethodDateTime Method = "date_time"
	// MethodVenueFilter means venue similarity disambiguated the bucket.
	MethodVenueFilter Method = "venue_filter"
	// MethodUnmatched means the event's date could not be normalized or
	// no recordings exist for it.
	MethodUnmatched Method = "unmatched"
)

// String returns the method as a string.
func (m Method) String() string { return string(m) }
