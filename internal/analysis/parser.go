package analysis

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/plexkit/movlist/internal/model"
)

// nameExpr matches 'Title (YYYY)' with an arbitrary metadata tail.
// The title group is greedy, so a parenthesized year inside the title
// binds to the last 4-digit group.
var nameExpr = regexp.MustCompile(`^(.+) \((\d{4})\)(.*)$`)

// Parse converts an entry name into a movie record. The extension, if any,
// must already be separated from the name and is attached verbatim.
func Parse(name string, extension string) (model.Movie, error) {
	m := nameExpr.FindStringSubmatch(name)
	if m == nil {
		return model.Movie{}, &FormatError{Name: name}
	}

	year, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Movie{}, &FormatError{Name: name}
	}

	movie := model.Movie{
		Title:     m[1],
		Year:      year,
		Extension: extension,
	}

	if err := parseMetadata(name, m[3], &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// ParseDirectory parses a directory name.
func ParseDirectory(name string) (model.Movie, error) {
	return Parse(name, "")
}

// ParseFile separates the extension from a file name and parses the rest.
func ParseFile(name string) (model.Movie, error) {
	ext := filepath.Ext(name)
	return Parse(strings.TrimSuffix(name, ext), ext)
}

// parseMetadata fills the record from the '{key-value} {key-value}' tail.
// A duplicated key overwrites the earlier value.
func parseMetadata(name, metadata string, movie *model.Movie) error {
	if metadata == "" {
		return nil
	}

	metadata = strings.TrimLeft(metadata, " {")
	metadata = strings.TrimRight(metadata, " }")

	for _, item := range strings.Split(metadata, "} {") {
		key, value, found := strings.Cut(item, "-")
		if !found {
			return &FormatError{Name: name, Key: item}
		}
		switch key {
		case "imdb":
			movie.IMDB = value
		case "tmdb":
			movie.TMDB = value
		case "edition":
			movie.Edition = value
		default:
			return &FormatError{Name: name, Key: key}
		}
	}
	return nil
}
