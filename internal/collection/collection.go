// Package collection holds the ordered set of parsed movie records and the
// sort policy applied before rendering.
package collection

import (
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/plexkit/movlist/internal/model"
)

// SortKey selects the field movies are ordered by.
type SortKey string

const (
	SortByTitle SortKey = "title"
	SortByYear  SortKey = "year"
	SortByIMDB  SortKey = "imdb"
	SortByTMDB  SortKey = "tmdb"
)

// lessFuncs maps each supported key to its ordering. Keys absent here are
// recognized but not sortable (see SortBy).
var lessFuncs = map[SortKey]func(a, b *model.Movie) bool{
	SortByTitle: func(a, b *model.Movie) bool { return a.Title < b.Title },
	SortByYear:  func(a, b *model.Movie) bool { return a.Year < b.Year },
}

// ParseSortKey normalizes a user-supplied sort key. Unrecognized values fall
// back to sorting by title with a warning, never an error.
func ParseSortKey(s string, logger log.Interface) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortByTitle, SortByYear, SortByIMDB, SortByTMDB:
		return key
	}
	logger.Warnf("unknown sort key '%s', sorting by title", s)
	return SortByTitle
}

// Collection is an ordered sequence of movie records. Insertion order is
// the traversal order until SortBy is called. Duplicates are permitted.
type Collection struct {
	movies []model.Movie
}

// Add appends a record to the collection.
func (c *Collection) Add(movie model.Movie) {
	c.movies = append(c.movies, movie)
}

// Movies returns the records in their current order.
func (c *Collection) Movies() []model.Movie {
	return c.movies
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.movies)
}

// SortBy reorders the collection by the given key, stable and ascending.
// Sorting by imdb/tmdb is not supported and degrades to title with a
// warning on the given logger.
func (c *Collection) SortBy(key SortKey, logger log.Interface) {
	less, ok := lessFuncs[key]
	if !ok {
		logger.Warnf("sorting by %s is not supported, sorting by title", key)
		less = lessFuncs[SortByTitle]
	}
	sort.SliceStable(c.movies, func(i, j int) bool {
		return less(&c.movies[i], &c.movies[j])
	})
}
