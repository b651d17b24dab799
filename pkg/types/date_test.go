package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tapetrail/tapetrail/pkg/types"
)

func TestDate(t *testing.T) {
	d := types.Date("1977-05-08")

	assert.True(t, d.Valid())
	assert.False(t, d.IsZero())
	assert.Equal(t, "1977-05-08", d.String())
	assert.Equal(t, types.Date("1977-05-09"), d.AddDays(1))
	assert.Equal(t, types.Date("1977-04-30"), d.AddDays(-8))
	assert.True(t, d.Before("1977-05-09"))
	assert.True(t, d.After("1977-05-07"))

	assert.True(t, types.Date("").IsZero())
	assert.False(t, types.Date("05/08/1977").Valid())
	assert.Equal(t, types.Date("1977-05-08"), types.DateOf(time.Date(1977, 5, 8, 23, 0, 0, 0, time.UTC)))
}

func TestDateSortsLexically(t *testing.T) {
	// ISO dates compare correctly as plain strings.
	assert.True(t, types.Date("1969-12-31") < types.Date("1970-01-01"))
	assert.True(t, types.Date("1977-05-08") < types.Date("1977-05-09"))
}

func TestTimeSlotCovers(t *testing.T) {
	tests := []struct {
		slot  types.TimeSlot
		other types.TimeSlot
		want  bool
	}{
		{types.SlotNone, types.SlotEarly, true},
		{types.SlotNone, types.SlotLate, true},
		{types.SlotEarlyLate, types.SlotEarly, true},
		{types.SlotEarlyLate, types.SlotLate, true},
		{types.SlotEarly, types.SlotEarly, true},
		{types.SlotEarly, types.SlotLate, false},
		{types.SlotLate, types.SlotEarly, false},
		{types.SlotLate, types.SlotLate, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.slot.Covers(tt.other),
			"%s covers %s", tt.slot, tt.other)
	}
}

func TestTimeSlotString(t *testing.T) {
	assert.Equal(t, "none", types.SlotNone.String())
	assert.Equal(t, "early", types.SlotEarly.String())
	assert.Equal(t, "early-late", types.SlotEarlyLate.String())
}
