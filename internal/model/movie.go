package model

import "fmt"

// Movie represents one parsed library entry
type Movie struct {
	// Title of the movie as written in the entry name
	Title string

	// Year of release, taken from the 4-digit group
	Year int

	// Extension of the file, with the leading dot (empty for directories)
	Extension string

	// Edition is a free-form release-variant label (e.g. "Director's Cut")
	Edition string

	// IMDB identifier from a {imdb-...} tag
	IMDB string

	// TMDB identifier from a {tmdb-...} tag
	TMDB string
}

// IsFile reports whether the record came from a file rather than a directory.
func (m *Movie) IsFile() bool {
	return m.Extension != ""
}

// FullTitle returns the display title including the edition suffix.
// The file extension is never part of it.
func (m *Movie) FullTitle() string {
	if m.Edition != "" {
		return fmt.Sprintf("%s [%s]", m.Title, m.Edition)
	}
	return m.Title
}

func (m *Movie) String() string {
	s := fmt.Sprintf("%s (%d)", m.Title, m.Year)
	if m.Edition != "" {
		s += fmt.Sprintf(" [%s]", m.Edition)
	}
	return s
}
