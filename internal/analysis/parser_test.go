package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plexkit/movlist/internal/model"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name      string
		extension string
		output    model.Movie
	}

	testCases := []testCase{
		{
			name:   "Alien (1979)",
			output: model.Movie{Title: "Alien", Year: 1979},
		},
		{
			name:   "Alien (1979) {imdb-tt0078748} {tmdb-348}",
			output: model.Movie{Title: "Alien", Year: 1979, IMDB: "tt0078748", TMDB: "348"},
		},
		{
			name:   "Blade Runner (1982) {edition-Final Cut}",
			output: model.Movie{Title: "Blade Runner", Year: 1982, Edition: "Final Cut"},
		},
		{
			name:      "2001: A Space Odyssey (1968)",
			extension: ".mkv",
			output:    model.Movie{Title: "2001: A Space Odyssey", Year: 1968, Extension: ".mkv"},
		},
		{
			// greedy title match binds the year to the last 4-digit group
			name:   "1941 (1979)",
			output: model.Movie{Title: "1941", Year: 1979},
		},
		{
			// the metadata value keeps its own dashes
			name:   "Brazil (1985) {edition-Director-s Cut}",
			output: model.Movie{Title: "Brazil", Year: 1985, Edition: "Director-s Cut"},
		},
		{
			// last occurrence of a duplicated key wins
			name:   "Solaris (1972) {tmdb-1} {tmdb-593}",
			output: model.Movie{Title: "Solaris", Year: 1972, TMDB: "593"},
		},
	}

	for _, tc := range testCases {
		movie, err := Parse(tc.name, tc.extension)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.output, movie, tc.name)
	}
}

func TestParseErrors(t *testing.T) {
	type testCase struct {
		name string
		key  string
	}

	testCases := []testCase{
		{name: "NoYear"},
		{name: "Trailing Space (1999) "},
		{name: "Alien (79)"},
		{name: "(1979)"},
		{name: "X (2000) {foo-bar}", key: "foo"},
		{name: "X (2000) {imdb-tt1} {res-1080p}", key: "res"},
		{name: "X (2000) {novalue}", key: "novalue"},
	}

	for _, tc := range testCases {
		_, err := Parse(tc.name, "")
		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr, tc.name)
		if formatErr != nil {
			assert.Equal(t, tc.key, formatErr.Key, tc.name)
		}
	}
}

func TestParseFile(t *testing.T) {
	movie, err := ParseFile("Alien (1979) {imdb-tt0078748}.mkv")
	assert.NoError(t, err)
	assert.Equal(t, ".mkv", movie.Extension)
	assert.Equal(t, "Alien", movie.Title)
	assert.True(t, movie.IsFile())
}

func TestParseDirectory(t *testing.T) {
	movie, err := ParseDirectory("Alien (1979)")
	assert.NoError(t, err)
	assert.Equal(t, "", movie.Extension)
	assert.False(t, movie.IsFile())
}
