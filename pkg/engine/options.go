package engine

import (
	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// options configures an engine run.
type options struct {
	venueThreshold float64
	rangeStart     types.Date
	rangeEnd       types.Date
	limit          int
}

func defaultOptions() *options {
	return &options{}
}

// Option is a function that configures an Engine.
type Option func(*options) error

func newOptions(opts ...Option) (*options, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// WithVenueThreshold overrides the venue-similarity threshold used by
// both the venue normalizer and the matcher's venue-filtering level.
func WithVenueThreshold(threshold float64) Option {
	return func(o *options) error {
		if threshold <= 0 || threshold > 1 {
			return &errors.ValidationError{
				Field:   "venue_threshold",
				Value:   threshold,
				Message: "must be in (0, 1]",
			}
		}
		o.venueThreshold = threshold
		return nil
	}
}

// WithDateRange restricts the run to shows and recordings whose
// normalized date falls inside [start, end]. Zero values leave the
// corresponding bound open.
func WithDateRange(start, end types.Date) Option {
	return func(o *options) error {
		if !start.IsZero() && !start.Valid() {
			return &errors.ValidationError{Field: "start", Value: string(start), Message: "not a valid date"}
		}
		if !end.IsZero() && !end.Valid() {
			return &errors.ValidationError{Field: "end", Value: string(end), Message: "not a valid date"}
		}
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return &errors.ValidationError{Field: "end", Value: string(end), Message: "before start"}
		}
		o.rangeStart = start
		o.rangeEnd = end
		return nil
	}
}

// WithLimit caps how many shows and recordings are processed, for smoke
// testing against large datasets. Zero means no cap.
func WithLimit(limit int) Option {
	return func(o *options) error {
		if limit < 0 {
			return &errors.ValidationError{Field: "limit", Value: limit, Message: "must be non-negative"}
		}
		o.limit = limit
		return nil
	}
}
