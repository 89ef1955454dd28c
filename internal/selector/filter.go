// Package selector narrows a list of movie records to those matching a
// title query, tolerating small misspellings.
package selector

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/plexkit/movlist/internal/model"
)

// Filter returns the movies whose title matches the query, preserving the
// input order. A title matches when it contains the query as a substring,
// or when its edit distance to the query fits a length-proportional budget.
// An empty query matches everything.
func Filter(movies []model.Movie, query string) []model.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return movies
	}

	result := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if matches(strings.ToLower(m.Title), query) {
			result = append(result, m)
		}
	}
	return result
}

func matches(title, query string) bool {
	if strings.Contains(title, query) {
		return true
	}
	return matchr.Levenshtein(title, query) <= distanceBudget(query)
}

// distanceBudget allows roughly one edit per four characters of the query.
func distanceBudget(query string) int {
	budget := len(query) / 4
	if budget < 1 {
		budget = 1
	}
	return budget
}
