package render

import "github.com/fatih/color"

// Style carries the escape-sequence markup applied to the rendered table.
// It is passed explicitly to Table so the renderer has no process-wide
// color state.
type Style struct {
	// Header styles the header labels and the row index column
	Header *color.Color

	// File styles titles of records parsed from files rather than
	// directories
	File *color.Color
}

// DefaultStyle returns the reference styling: bold bright-green headers and
// indices, bright-blue file titles. Whether escapes are actually emitted
// follows fatih/color's NO_COLOR and TTY detection.
func DefaultStyle() Style {
	return Style{
		Header: color.New(color.Bold, color.FgHiGreen),
		File:   color.New(color.FgHiBlue),
	}
}

// PlainStyle returns a style that never emits escape sequences.
func PlainStyle() Style {
	header := color.New()
	header.DisableColor()
	file := color.New()
	file.DisableColor()
	return Style{Header: header, File: file}
}
