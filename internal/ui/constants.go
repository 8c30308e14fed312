// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across screens.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// TabBarHeight is the screen switcher line plus its separator.
	TabBarHeight = 2

	// StatusHeight is the one-line status/error row at the bottom.
	StatusHeight = 1

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
