package records

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/logging"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// LoadShows reads every show record under the filesystem root. A file
// that fails to decode aborts the load; malformed dumps should be fixed,
// not silently dropped.
func LoadShows(fsys fs.FS) ([]types.RawShow, error) {
	files, err := recordFiles(fsys)
	if err != nil {
		return nil, errors.WrapIO("read", "shows", err)
	}
	shows := make([]types.RawShow, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.WrapIO("read", name, err)
		}
		var show types.RawShow
		if err := json.Unmarshal(data, &show); err != nil {
			return nil, errors.WrapParse("json", name, err)
		}
		shows = append(shows, show)
	}
	logging.Debug().Int("count", len(shows)).Msg("Loaded show records")
	return shows, nil
}

// LoadRecordings reads every recording record under the filesystem root.
func LoadRecordings(fsys fs.FS) ([]types.RawRecording, error) {
	files, err := recordFiles(fsys)
	if err != nil {
		return nil, errors.WrapIO("read", "recordings", err)
	}
	recordings := make([]types.RawRecording, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.WrapIO("read", name, err)
		}
		var rec types.RawRecording
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, errors.WrapParse("json", name, err)
		}
		recordings = append(recordings, rec)
	}
	logging.Debug().Int("count", len(recordings)).Msg("Loaded recording records")
	return recordings, nil
}

// LoadShowsDir is LoadShows rooted at a directory path.
func LoadShowsDir(dir string) ([]types.RawShow, error) {
	return LoadShows(os.DirFS(dir))
}

// LoadRecordingsDir is LoadRecordings rooted at a directory path.
func LoadRecordingsDir(dir string) ([]types.RawRecording, error) {
	return LoadRecordings(os.DirFS(dir))
}

// collectionsFile is the YAML document shape for collection definitions.
type collectionsFile struct {
	Collections []types.CollectionDefinition `yaml:"collections"`
}

// LoadCollections reads collection definitions from a YAML file. Both a
// top-level "collections" key and a bare list are accepted.
func LoadCollections(path string) ([]types.CollectionDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file collectionsFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Collections) > 0 {
		return file.Collections, nil
	}

	var defs []types.CollectionDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return defs, nil
}
