package records

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tapetrail/tapetrail/pkg/constants"
	"github.com/tapetrail/tapetrail/pkg/engine"
	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// Store writes run output under a base directory.
type Store struct {
	basePath string
}

// NewStore creates a Store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// WriteResult persists a full run: one JSON file per enriched show under
// shows/, plus venues.json, collections.json, and report.json at the
// root. Existing files are overwritten so repeated runs converge on the
// same tree.
func (s *Store) WriteResult(result *engine.Result) error {
	for _, show := range result.Shows {
		name := filepath.Join("shows", show.ID+".json")
		if err := s.writeJSON(name, show); err != nil {
			return err
		}
	}
	if err := s.writeJSON("venues.json", result.Venues); err != nil {
		return err
	}
	if err := s.writeJSON("collections.json", result.Collections); err != nil {
		return err
	}
	if err := s.writeJSON("report.json", result.Report); err != nil {
		return err
	}

	logging.Info().
		Str("path", s.basePath).
		Int("shows", len(result.Shows)).
		Int("venues", len(result.Venues)).
		Int("collections", len(result.Collections)).
		Msg("Wrote run output")
	return nil
}

// WriteReport persists only the run report, for validate-style passes
// where the enriched records are not wanted.
func (s *Store) WriteReport(report types.Report) error {
	return s.writeJSON("report.json", report)
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", name, err)
	}
	data = append(data, '\n')

	fullPath := filepath.Join(s.basePath, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", fullPath, err)
	}
	return nil
}
