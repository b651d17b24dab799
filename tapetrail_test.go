package tapetrail_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapetrail/tapetrail"
	"github.com/tapetrail/tapetrail/pkg/engine"
	"github.com/tapetrail/tapetrail/pkg/types"
)

func testInputs() engine.Inputs {
	return engine.Inputs{
		Shows: []types.RawShow{
			{ID: "1977-05-08-barton-hall", Date: "5/8/1977", Venue: "Barton Hall", City: "Ithaca"},
		},
		Recordings: []types.RawRecording{
			{ID: "gd77-05-08.sbd.hicks.4982", Date: "1977-05-08", SourceType: types.SourceSBD, Rating: 4.8, ReviewCount: 42, Confidence: 1.0},
		},
	}
}

func TestPipelineInMemory(t *testing.T) {
	p, err := tapetrail.New(tapetrail.WithInputs(testInputs()))
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Shows, 1)
	assert.Equal(t, "gd77-05-08.sbd.hicks.4982", result.Shows[0].BestRecording)
	assert.True(t, result.IsSuccess())
}

func TestPipelineFromDisk(t *testing.T) {
	dir := t.TempDir()
	showsDir := filepath.Join(dir, "shows")
	recordingsDir := filepath.Join(dir, "recordings")
	outputDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(showsDir, 0o755))
	require.NoError(t, os.MkdirAll(recordingsDir, 0o755))

	require.NoError(t, os.WriteFile(
		filepath.Join(showsDir, "1977-05-08-barton-hall.json"),
		[]byte(`{"show_id":"1977-05-08-barton-hall","date":"5/8/1977","venue":"Barton Hall"}`),
		0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(recordingsDir, "gd77-05-08.sbd.hicks.json"),
		[]byte(`{"identifier":"gd77-05-08.sbd.hicks.4982","date":"1977-05-08","source_type":"SBD","rating":4.8,"review_count":42}`),
		0o644))

	p, err := tapetrail.New(
		tapetrail.WithShowsDir(showsDir),
		tapetrail.WithRecordingsDir(recordingsDir),
		tapetrail.WithOutputDir(outputDir),
	)
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Shows, 1)

	// Output tree written alongside the in-memory result.
	assert.FileExists(t, filepath.Join(outputDir, "shows", "1977-05-08-barton-hall.json"))
	assert.FileExists(t, filepath.Join(outputDir, "venues.json"))
	assert.FileExists(t, filepath.Join(outputDir, "report.json"))
}

func TestPipelineBadOptions(t *testing.T) {
	_, err := tapetrail.New(
		tapetrail.WithInputs(testInputs()),
		tapetrail.WithEngineOptions(engine.WithVenueThreshold(2)),
	)
	assert.Error(t, err)
}

func TestPipelineMissingInputs(t *testing.T) {
	p, err := tapetrail.New()
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	assert.Error(t, err)
}
