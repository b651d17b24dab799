// Package dates normalizes the heterogeneous date strings found in
// collected show and recording records into canonical calendar dates with
// optional time-slot markers.
//
// Accepted forms are M/D/YYYY, MM/DD/YYYY, and ISO YYYY-MM-DD, possibly
// contaminated with tab characters, stray whitespace, or trailing
// annotation text such as "2/13/1970 | Early Show". Failure to parse is a
// recoverable condition: callers skip the record and note it in the run
// report.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/types"
)

var (
	isoPattern   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashPattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// Parse normalizes a raw date string into a NormalizedDate. A "| Early
// Show" / "| Late Show" suffix sets the time slot; any other trailing
// annotation is ignored.
func Parse(raw string) (types.NormalizedDate, error) {
	cleaned := clean(raw)
	if cleaned == "" {
		return types.NormalizedDate{}, errors.NewDateParseError(raw, "empty after cleanup")
	}

	datePart := cleaned
	slot := types.SlotNone
	if idx := strings.IndexByte(cleaned, '|'); idx >= 0 {
		datePart = strings.TrimSpace(cleaned[:idx])
		slot = DetectSlot(cleaned[idx+1:])
	}

	date, err := parseDate(datePart)
	if err != nil {
		return types.NormalizedDate{}, errors.NewDateParseError(raw, "no recognized date pattern")
	}

	return types.NormalizedDate{Date: date, Slot: slot}, nil
}

// ParseWithHint normalizes a date string and merges in a time slot
// detected from separate hint text (a recording identifier or title).
// A slot found in the date string itself wins over the hint.
func ParseWithHint(raw string, hints ...string) (types.NormalizedDate, error) {
	nd, err := Parse(raw)
	if err != nil {
		return nd, err
	}
	if nd.Slot == types.SlotNone {
		nd.Slot = DetectSlot(hints...)
	}
	return nd, nil
}

// DetectSlot scans free text for early/late markers. Detection is a
// case-insensitive substring match; "early-late" marks recordings that
// cover both shows of a day. Absence of a marker yields SlotNone.
func DetectSlot(texts ...string) types.TimeSlot {
	for _, text := range texts {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "early-late"):
			return types.SlotEarlyLate
		case strings.Contains(lower, "early"):
			return types.SlotEarly
		case strings.Contains(lower, "late"):
			return types.SlotLate
		}
	}
	return types.SlotNone
}

// parseDate extracts the first recognized date pattern from cleaned text.
func parseDate(text string) (types.Date, error) {
	if m := isoPattern.FindStringSubmatch(text); m != nil {
		t, err := time.Parse("2006-01-02", m[0])
		if err != nil {
			return "", err
		}
		return types.DateOf(t), nil
	}

	if m := slashPattern.FindStringSubmatch(text); m != nil {
		t, err := time.Parse("1/2/2006", m[0])
		if err != nil {
			return "", err
		}
		return types.DateOf(t), nil
	}

	return "", errors.ErrUnparseableDate
}

// clean collapses tabs and runs of whitespace into single spaces.
func clean(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
