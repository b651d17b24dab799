// Package records reads raw show and recording files from disk and writes
// the enriched output of a run back out. Input layouts follow the archive
// dump convention: one JSON document per record, with bookkeeping files
// (progress markers, cached collection payloads) sitting in the same
// directories and ignored here.
package records

import (
	"io/fs"
	"path"
	"strings"
)

// skipPrefixes marks bookkeeping files that live alongside record dumps.
var skipPrefixes = []string{"progress", "collection"}

// recordFiles lists the JSON record files directly under root, sorted by
// name, with bookkeeping files filtered out.
func recordFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if path.Ext(name) != ".json" || skipName(name) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func skipName(name string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
