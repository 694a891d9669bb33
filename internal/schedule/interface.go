package schedule

import "github.com/akyairhashvil/ecoweek/internal/models"

// Reader exposes the store's queries.
type Reader interface {
	ListFor(date models.DateKey) []models.ScheduledChallenge
	Progress(date models.DateKey) models.Progress
	WeekSummary(days []models.DateKey) Summary
}

// Writer exposes the store's commands. They are the only way to mutate a
// schedule.
type Writer interface {
	Add(date models.DateKey, tmpl models.ChallengeTemplate) AddResult
	Toggle(date models.DateKey, id int) ToggleResult
	Remove(date models.DateKey, id int) RemoveResult
}

// Scheduler combines queries and commands.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_scheduler_test.go -package=tui
type Scheduler interface {
	Reader
	Writer
}

var _ Scheduler = (*Store)(nil)
