package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapetrail/tapetrail/pkg/types"
)

func TestSourceTypeRank(t *testing.T) {
	// Broadcast > board > matrix > audience > unknown.
	assert.Greater(t, types.SourceFM.Rank(), types.SourceSBD.Rank())
	assert.Greater(t, types.SourceSBD.Rank(), types.SourceMatrix.Rank())
	assert.Greater(t, types.SourceMatrix.Rank(), types.SourceAUD.Rank())
	assert.Greater(t, types.SourceAUD.Rank(), types.SourceUnknown.Rank())
	assert.Zero(t, types.SourceType("bogus").Rank())
}

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		input string
		want  types.SourceType
	}{
		{"SBD", types.SourceSBD},
		{"sbd", types.SourceSBD},
		{" Matrix ", types.SourceMatrix},
		{"FM", types.SourceFM},
		{"AUD", types.SourceAUD},
		{"", types.SourceUnknown},
		{"remaster", types.SourceUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, types.ParseSourceType(tt.input), "input %q", tt.input)
	}
}

func TestDetectSourceType(t *testing.T) {
	tests := []struct {
		name string
		rec  types.RawRecording
		want types.SourceType
	}{
		{
			name: "explicit tag wins",
			rec:  types.RawRecording{SourceType: types.SourceMatrix, ID: "gd77.sbd.12345"},
			want: types.SourceMatrix,
		},
		{
			name: "sbd in identifier",
			rec:  types.RawRecording{SourceType: types.SourceUnknown, ID: "gd1977-05-08.sbd.hicks.4982"},
			want: types.SourceSBD,
		},
		{
			name: "soundboard in title",
			rec:  types.RawRecording{Title: "Barton Hall Soundboard"},
			want: types.SourceSBD,
		},
		{
			name: "matrix in description",
			rec:  types.RawRecording{Description: "matrix mix of sources"},
			want: types.SourceMatrix,
		},
		{
			name: "audience in title",
			rec:  types.RawRecording{Title: "audience recording from the rail"},
			want: types.SourceAUD,
		},
		{
			name: "fm broadcast",
			rec:  types.RawRecording{Description: "KSAN broadcast"},
			want: types.SourceFM,
		},
		{
			name: "nothing detectable",
			rec:  types.RawRecording{ID: "gd1977-05-08.unlabeled.9999", Title: "Barton Hall"},
			want: types.SourceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.DetectSourceType(&tt.rec))
		})
	}
}
