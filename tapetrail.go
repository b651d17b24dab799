// Package tapetrail is the library entry point for the reconciliation
// pipeline. It ties together record loading, the integration engine, and
// output persistence behind one configurable Pipeline, so embedding
// applications do not have to wire the pieces themselves.
package tapetrail

import (
	"context"
	"fmt"

	"github.com/tapetrail/tapetrail/pkg/engine"
	"github.com/tapetrail/tapetrail/pkg/records"
)

// Pipeline runs the full reconciliation pass: load, normalize, match,
// resolve collections, enrich, and optionally persist.
type Pipeline interface {
	// Run executes one pass and returns the full result. When an output
	// directory is configured the result is also written to disk.
	Run(ctx context.Context) (*engine.Result, error)
}

// pipeline is the internal implementation of the Pipeline interface.
type pipeline struct {
	config *config
	engine *engine.Engine
}

// New creates a Pipeline with the given options.
func New(opts ...Option) (Pipeline, error) {
	p := &pipeline{config: &config{}}
	for _, opt := range opts {
		if err := opt(p.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	eng, err := engine.New(p.config.engineOpts...)
	if err != nil {
		return nil, err
	}
	p.engine = eng
	return p, nil
}

// Run implements Pipeline.
func (p *pipeline) Run(ctx context.Context) (*engine.Result, error) {
	inputs, err := p.load()
	if err != nil {
		return nil, err
	}

	result, err := p.engine.Run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	if p.config.outputDir != "" {
		if err := records.NewStore(p.config.outputDir).WriteResult(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// load materializes inputs from configured directories, with directly
// provided records taking precedence over disk.
func (p *pipeline) load() (engine.Inputs, error) {
	inputs := p.config.inputs
	var err error

	if len(inputs.Shows) == 0 && p.config.showsDir != "" {
		if inputs.Shows, err = records.LoadShowsDir(p.config.showsDir); err != nil {
			return inputs, err
		}
	}
	if len(inputs.Recordings) == 0 && p.config.recordingsDir != "" {
		if inputs.Recordings, err = records.LoadRecordingsDir(p.config.recordingsDir); err != nil {
			return inputs, err
		}
	}
	if len(inputs.Collections) == 0 && p.config.collectionsFile != "" {
		if inputs.Collections, err = records.LoadCollections(p.config.collectionsFile); err != nil {
			return inputs, err
		}
	}
	return inputs, nil
}
