package types

import (
	"time"
)

// Date is a canonical calendar date in ISO YYYY-MM-DD form. ISO dates sort
// lexically, so Date values compare correctly as strings.
type Date string

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string { return string(d) }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == "" }

// Time converts the date to a time.Time at midnight UTC. Invalid dates
// return the zero time.
func (d Date) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Valid reports whether the date parses as YYYY-MM-DD.
func (d Date) Valid() bool {
	_, err := time.Parse("2006-01-02", string(d))
	return err == nil
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	t := d.Time()
	if t.IsZero() {
		return d
	}
	return DateOf(t.AddDate(0, 0, days))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d < other }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d > other }

// DateOf returns the Date for a time.Time.
func DateOf(t time.Time) Date {
	return Date(t.Format("2006-01-02"))
}

// TimeSlot classifies a same-day event as early, late, or unspecified.
// Recordings that cover both shows of a day carry SlotEarlyLate.
type TimeSlot string

// Time slots.
const (
	SlotNone      TimeSlot = ""
	SlotEarly     TimeSlot = "early"
	SlotLate      TimeSlot = "late"
	SlotEarlyLate TimeSlot = "early-late"
)

// String returns the slot marker, or "none" for the empty slot.
func (s TimeSlot) String() string {
	if s == SlotNone {
		return "none"
	}
	return string(s)
}

// Covers reports whether a recording with slot s belongs with an event in
// slot other. Unspecified and early-late recordings cover every slot.
func (s TimeSlot) Covers(other TimeSlot) bool {
	if s == SlotNone || s == SlotEarlyLate {
		return true
	}
	return s == other
}

// NormalizedDate pairs a canonical calendar date with an optional time
// slot. It is derived, never persisted on its own.
type NormalizedDate struct {
	Date Date     `json:"date" yaml:"date"`
	Slot TimeSlot `json:"time_slot,omitempty" yaml:"time_slot,omitempty"`
}
