package config

// Layout constants.
const (
	// MinPaneWidth is the minimum width for the countdown pane.
	MinPaneWidth = 16

	// TargetProgressWidth is the preferred width for the progress bar.
	TargetProgressWidth = 30

	// MinProgressWidth is the minimum width for the progress bar.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Input constraints.
const (
	// MaxDurationInputLength bounds the duration prompt ("hh:mm:ss" plus
	// slack for oversized hour fields).
	MaxDurationInputLength = 10
)
