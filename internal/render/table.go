// Package render turns a list of movie records into an aligned
// box-drawing table.
package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/plexkit/movlist/internal/model"
)

const absentMark = " -"

// Table renders the records as a five-column table (index, title, year,
// IMDb, TMDB) with single-line box-drawing borders. Pure: styling is
// embedded in the returned string, nothing is written anywhere.
func Table(movies []model.Movie, style Style) string {
	titleWidth := columnWidth("Title", movies, func(m *model.Movie) string { return m.FullTitle() })
	imdbWidth := columnWidth("IMDb", movies, func(m *model.Movie) string { return m.IMDB })
	tmdbWidth := columnWidth("TMDB", movies, func(m *model.Movie) string { return m.TMDB })

	titleLine := strings.Repeat("─", titleWidth)
	imdbLine := strings.Repeat("─", imdbWidth)
	tmdbLine := strings.Repeat("─", tmdbWidth)

	var b strings.Builder

	b.WriteString("╭──────┬─" + titleLine + "─┬──────┬─" + imdbLine + "─┬─" + tmdbLine + "─╮\n")

	b.WriteString("│ " + style.Header.Sprint("   #") +
		" │ " + style.Header.Sprint(ljust("Title", titleWidth)) +
		" │ " + style.Header.Sprint("Year") +
		" │ " + style.Header.Sprint(center("IMDb", imdbWidth)) +
		" │ " + style.Header.Sprint(center("TMDB", tmdbWidth)) + " │\n")

	b.WriteString("├──────┼─" + titleLine + "─┼──────┼─" + imdbLine + "─┼─" + tmdbLine + "─┤\n")

	for i := range movies {
		m := &movies[i]

		title := ljust(m.FullTitle(), titleWidth)
		if m.IsFile() {
			title = style.File.Sprint(title)
		}

		b.WriteString("│ " + style.Header.Sprint(rjust(strconv.Itoa(i+1), 4)) +
			" │ " + title +
			" │ " + strconv.Itoa(m.Year) +
			" │ " + ljust(orAbsent(m.IMDB), imdbWidth) +
			" │ " + ljust(orAbsent(m.TMDB), tmdbWidth) + " │\n")
	}

	b.WriteString("╰──────┴─" + titleLine + "─┴──────┴─" + imdbLine + "─┴─" + tmdbLine + "─╯")

	return b.String()
}

// columnWidth is the widest value of the column, floored at the header
// label width. Absent values do not count.
func columnWidth(label string, movies []model.Movie, value func(m *model.Movie) string) int {
	width := utf8.RuneCountInString(label)
	for i := range movies {
		if v := value(&movies[i]); v != "" {
			if n := utf8.RuneCountInString(v); n > width {
				width = n
			}
		}
	}
	return width
}

func orAbsent(value string) string {
	if value == "" {
		return absentMark
	}
	return value
}

func ljust(s string, width int) string {
	return s + pad(width-utf8.RuneCountInString(s))
}

func rjust(s string, width int) string {
	return pad(width-utf8.RuneCountInString(s)) + s
}

func center(s string, width int) string {
	margin := width - utf8.RuneCountInString(s)
	left := margin / 2
	return pad(left) + s + pad(margin-left)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
