package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapetrail/tapetrail/pkg/dates"
	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDate types.Date
		wantSlot types.TimeSlot
		wantErr  bool
	}{
		{
			name:     "slash format",
			input:    "2/13/1970",
			wantDate: "1970-02-13",
		},
		{
			name:     "slash format zero padded",
			input:    "02/13/1970",
			wantDate: "1970-02-13",
		},
		{
			name:     "iso format",
			input:    "1970-02-13",
			wantDate: "1970-02-13",
		},
		{
			name:     "tab contaminated",
			input:    "\t2/13/1970\t",
			wantDate: "1970-02-13",
		},
		{
			name:     "internal whitespace runs",
			input:    "  1977-05-08  ",
			wantDate: "1977-05-08",
		},
		{
			name:     "early show annotation",
			input:    "2/13/1970 | Early Show",
			wantDate: "1970-02-13",
			wantSlot: types.SlotEarly,
		},
		{
			name:     "late show annotation",
			input:    "2/13/1970 | Late Show",
			wantDate: "1970-02-13",
			wantSlot: types.SlotLate,
		},
		{
			name:     "unrelated annotation ignored",
			input:    "2/13/1970 | Acoustic Set",
			wantDate: "1970-02-13",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   " \t ",
			wantErr: true,
		},
		{
			name:    "no date at all",
			input:   "Fillmore West",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "13/13/1970",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dates.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsDateParse(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantSlot, got.Slot)
		})
	}
}

func TestParseWithHint(t *testing.T) {
	t.Run("hint supplies missing slot", func(t *testing.T) {
		got, err := dates.ParseWithHint("1970-02-13", "gd1970-02-13.early.sbd.12345")
		require.NoError(t, err)
		assert.Equal(t, types.SlotEarly, got.Slot)
	})

	t.Run("date string slot wins over hint", func(t *testing.T) {
		got, err := dates.ParseWithHint("2/13/1970 | Late Show", "gd1970-02-13.early.sbd.12345")
		require.NoError(t, err)
		assert.Equal(t, types.SlotLate, got.Slot)
	})

	t.Run("no slot anywhere", func(t *testing.T) {
		got, err := dates.ParseWithHint("1970-02-13", "gd1970-02-13.sbd.12345")
		require.NoError(t, err)
		assert.Equal(t, types.SlotNone, got.Slot)
	})
}

func TestDetectSlot(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  types.TimeSlot
	}{
		{"early marker", []string{"Early Show"}, types.SlotEarly},
		{"late marker", []string{"gd70-02-13.late.aud"}, types.SlotLate},
		{"early-late beats early", []string{"early-late compilation"}, types.SlotEarlyLate},
		{"case insensitive", []string{"EARLY SHOW"}, types.SlotEarly},
		{"second text carries marker", []string{"gd1970-02-13", "Late Show at Fillmore"}, types.SlotLate},
		{"no marker", []string{"gd1970-02-13.sbd"}, types.SlotNone},
		{"no texts", nil, types.SlotNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.DetectSlot(tt.texts...))
		})
	}
}
