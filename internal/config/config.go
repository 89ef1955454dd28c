package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Configuration represents the lister settings
type Configuration struct {
	// Library is the path to the movie library directory
	Library string

	// Sort is the default sort key
	Sort string
}

// ignoredFiles are filesystem entries excluded from parsing regardless of
// where they appear.
var ignoredFiles = map[string]bool{
	".DS_Store": true,
}

// Default returns the built-in configuration: the Plex movie directory
// under the caller's home, sorted by title.
func Default() Configuration {
	cfg := Configuration{Sort: "title"}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Library = filepath.Join(home, "Plex", "Movies")
	}
	return cfg
}

// Load opens and parses a configuration file on top of the defaults.
func Load(configFilePath string) (Configuration, error) {
	cfg := Default()
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return cfg, err
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// IgnoredFiles returns the fixed set of entry names never parsed.
func IgnoredFiles() map[string]bool {
	return ignoredFiles
}
