package tui

import (
	"fmt"

	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	"github.com/dustin/go-humanize"
)

// FormatPoints formats a point value for display (e.g., "15 pts", "1,200 pts").
func FormatPoints(points int) string {
	return humanize.Comma(int64(points)) + " pts"
}

// FormatProgress returns the detail panel summary line.
func FormatProgress(p models.Progress) string {
	return fmt.Sprintf("Progress: %d/%d challenges completed  %d%%", p.Completed, p.Total, p.RoundedPercent())
}

// FormatWeekSummary formats the totals of the visible week.
func FormatWeekSummary(s schedule.Summary) string {
	if s.Total == 0 {
		return "This week: no challenges scheduled"
	}
	return fmt.Sprintf("This week: %d/%d completed · %s eco-points earned",
		s.Completed, s.Total, humanize.Comma(int64(s.Points)))
}

func zoneName(zone int) string {
	switch zone {
	case config.ZoneTray:
		return "tray"
	case config.ZoneDetail:
		return "detail"
	default:
		return "calendar"
	}
}
