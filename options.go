package tapetrail

import (
	"github.com/tapetrail/tapetrail/pkg/engine"
)

// config holds pipeline configuration.
type config struct {
	showsDir        string
	recordingsDir   string
	collectionsFile string
	outputDir       string
	inputs          engine.Inputs
	engineOpts      []engine.Option
}

// Option is a function that configures a Pipeline.
type Option func(*config) error

// WithShowsDir configures the directory of raw show JSON records.
func WithShowsDir(dir string) Option {
	return func(c *config) error {
		c.showsDir = dir
		return nil
	}
}

// WithRecordingsDir configures the directory of raw recording JSON records.
func WithRecordingsDir(dir string) Option {
	return func(c *config) error {
		c.recordingsDir = dir
		return nil
	}
}

// WithCollectionsFile configures the collection definitions YAML file.
func WithCollectionsFile(path string) Option {
	return func(c *config) error {
		c.collectionsFile = path
		return nil
	}
}

// WithOutputDir configures where enriched output is written. Leave empty
// to keep the result in memory only.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithInputs supplies fully-materialized inputs directly, bypassing disk
// loading. Useful for embedding and tests.
func WithInputs(inputs engine.Inputs) Option {
	return func(c *config) error {
		c.inputs = inputs
		return nil
	}
}

// WithEngineOptions forwards options to the underlying engine, such as
// engine.WithVenueThreshold or engine.WithDateRange.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(c *config) error {
		c.engineOpts = append(c.engineOpts, opts...)
		return nil
	}
}
