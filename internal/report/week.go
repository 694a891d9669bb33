// Package report renders a week of the schedule outside the TUI: as a PDF
// document or as a terminal table.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	"github.com/dustin/go-humanize"
)

type Day struct {
	Date     time.Time
	Key      models.DateKey
	Entries  []models.ScheduledChallenge
	Progress models.Progress
}

// Week is a read-only snapshot of seven days of the schedule.
type Week struct {
	Start   time.Time
	Today   time.Time
	Days    []Day
	Summary schedule.Summary
}

// BuildWeek snapshots the week shown at offset weeks from today.
func BuildWeek(r schedule.Reader, today time.Time, offset int) Week {
	days := calendar.Week(today, offset)
	w := Week{Start: days[0], Today: today}
	keys := make([]models.DateKey, 0, len(days))
	for _, d := range days {
		k := models.DateKeyOf(d)
		keys = append(keys, k)
		w.Days = append(w.Days, Day{
			Date:     d,
			Key:      k,
			Entries:  r.ListFor(k),
			Progress: r.Progress(k),
		})
	}
	w.Summary = r.WeekSummary(keys)
	return w
}

func (w Week) Title() string { return calendar.Title(w.Start) }

// DefaultPath names the report file for w inside dir.
func DefaultPath(dir string, w Week) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.pdf", config.ReportPrefix, models.DateKeyOf(w.Start)))
}

func pointsLabel(points int) string {
	return humanize.Comma(int64(points)) + " pts"
}

func summaryLine(s schedule.Summary) string {
	return fmt.Sprintf("%d/%d challenges completed, %s eco-points earned",
		s.Completed, s.Total, humanize.Comma(int64(s.Points)))
}
