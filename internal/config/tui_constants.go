package config

// Layout constants.
const (
	// MinCellWidth is the narrowest a day cell may get, borders included.
	MinCellWidth = 12

	// MinScreenWidth fits seven cells of MinCellWidth. Narrower terminals
	// get a resize notice instead of the planner.
	MinScreenWidth = 7 * MinCellWidth

	// CellHeight is the fixed height of a day cell, borders included.
	CellHeight = 8

	// CardWidth is the width of a tray card, borders included.
	CardWidth = 26

	// CardHeight is the fixed height of a tray card, borders included.
	CardHeight = 7

	// CompactModeThreshold hides weekday names below this width.
	CompactModeThreshold = 90

	// DefaultProgressWidth is the detail panel progress bar width.
	DefaultProgressWidth = 40
)

// Display limits.
const (
	// MaxCellEntries limits entries listed inside a day cell.
	MaxCellEntries = 4

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
