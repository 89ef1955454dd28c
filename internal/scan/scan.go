// Package scan reads one directory level of a movie library and parses
// every entry into the collection.
package scan

import (
	"fmt"
	"os"

	"github.com/plexkit/movlist/internal/analysis"
	"github.com/plexkit/movlist/internal/collection"
)

// Load lists the entries of path (non-recursive), skips names present in
// ignored, and parses the rest. Directories are processed before files, so
// insertion order matches the reference traversal. The first malformed
// entry aborts the whole batch.
func Load(path string, ignored map[string]bool) (*collection.Collection, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read library directory: %w", err)
	}

	c := &collection.Collection{}

	for _, entry := range entries {
		if !entry.IsDir() || ignored[entry.Name()] {
			continue
		}
		movie, err := analysis.ParseDirectory(entry.Name())
		if err != nil {
			return nil, err
		}
		c.Add(movie)
	}

	for _, entry := range entries {
		if entry.IsDir() || ignored[entry.Name()] {
			continue
		}
		movie, err := analysis.ParseFile(entry.Name())
		if err != nil {
			return nil, err
		}
		c.Add(movie)
	}

	return c, nil
}
