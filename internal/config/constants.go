package config

import "time"

// Timer cadence and defaults.
const (
	TickInterval  = time.Second
	DefaultFormat = "mm:ss"
)

// CompleteMarker is the visual state a surface enters when the countdown
// reaches zero.
const CompleteMarker = "complete"

// Application settings.
const (
	AppName = "tickdown"

	// SurfaceID is the identifier the host registers its display pane under.
	SurfaceID = "main"
)
