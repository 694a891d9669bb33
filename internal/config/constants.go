package config

import "time"

// Focus zones of the planner screen.
const (
	ZoneCalendar = iota
	ZoneTray
	ZoneDetail
	zoneCount
)

// ZoneCount is the number of focus zones tab cycles through.
const ZoneCount = zoneCount

// Application settings.
const (
	AppName        = "ecoweek"
	ConfigFileName = "config"
	EnvPrefix      = "ECOWEEK"
	LogFileName    = "ecoweek.log"
	ReportPrefix   = "ecoweek-week"
)

// Alert defaults.
const (
	// DefaultAlertTimeout of zero keeps success dialogs open until acknowledged.
	DefaultAlertTimeout = 0 * time.Second
	MaxAlertTimeout     = 5 * time.Minute
)
