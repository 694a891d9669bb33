// Package schedule owns the mapping from calendar days to scheduled
// challenges. All mutation goes through the Store's commands, which report
// their outcome as explicit result variants.
package schedule

import (
	"sort"
	"sync"

	"github.com/akyairhashvil/ecoweek/internal/models"
)

type AddOutcome int

const (
	Added AddOutcome = iota
	AlreadyPresent
	AddRejected
)

func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already_present"
	default:
		return "rejected"
	}
}

type AddResult struct {
	Outcome AddOutcome
	Entry   models.ScheduledChallenge
	err     error
}

func (r AddResult) Err() error { return r.err }

type ToggleOutcome int

const (
	Toggled ToggleOutcome = iota
	ToggleNotFound
)

// ToggleResult carries the entry after the flip when Outcome is Toggled.
type ToggleResult struct {
	Outcome ToggleOutcome
	Entry   models.ScheduledChallenge
	err     error
}

func (r ToggleResult) Err() error { return r.err }

type RemoveOutcome int

const (
	Removed RemoveOutcome = iota
	RemoveNotFound
)

// RemoveResult carries the deleted entry when Outcome is Removed.
type RemoveResult struct {
	Outcome RemoveOutcome
	Entry   models.ScheduledChallenge
	err     error
}

func (r RemoveResult) Err() error { return r.err }

// Summary aggregates several days.
type Summary struct {
	Completed int
	Total     int
	Points    int // earned by completed entries only
}

// Store is an in-memory schedule. The zero value is not usable; call New.
type Store struct {
	mu   sync.RWMutex
	days map[models.DateKey][]models.ScheduledChallenge
}

func New() *Store {
	return &Store{days: make(map[models.DateKey][]models.ScheduledChallenge)}
}

// Seed replaces the entries of every day present in days. Duplicate ids in a
// seeded day keep their first occurrence.
func (s *Store) Seed(days map[models.DateKey][]models.ScheduledChallenge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, entries := range days {
		if !date.Valid() {
			continue
		}
		seen := make(map[int]bool, len(entries))
		list := make([]models.ScheduledChallenge, 0, len(entries))
		for _, e := range entries {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			list = append(list, e)
		}
		s.days[date] = list
	}
}

// ListFor returns a copy of the day's entries in insertion order.
func (s *Store) ListFor(date models.DateKey) []models.ScheduledChallenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.days[date]
	out := make([]models.ScheduledChallenge, len(list))
	copy(out, list)
	return out
}

func (s *Store) Add(date models.DateKey, tmpl models.ChallengeTemplate) AddResult {
	if !date.Valid() {
		return AddResult{Outcome: AddRejected, err: wrapOpErr("add", date, tmpl.ID, ErrInvalidDateKey)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.days[date] {
		if e.ID == tmpl.ID {
			return AddResult{
				Outcome: AlreadyPresent,
				Entry:   e,
				err:     wrapOpErr("add", date, tmpl.ID, ErrDuplicateAssignment),
			}
		}
	}
	entry := tmpl.Schedule()
	s.days[date] = append(s.days[date], entry)
	return AddResult{Outcome: Added, Entry: entry}
}

func (s *Store) Toggle(date models.DateKey, id int) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.days[date]
	for i := range list {
		if list[i].ID == id {
			list[i].Completed = !list[i].Completed
			return ToggleResult{Outcome: Toggled, Entry: list[i]}
		}
	}
	return ToggleResult{Outcome: ToggleNotFound, err: wrapOpErr("toggle", date, id, ErrEntryNotFound)}
}

func (s *Store) Remove(date models.DateKey, id int) RemoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.days[date]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		removed := list[i]
		next := make([]models.ScheduledChallenge, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		s.days[date] = next
		return RemoveResult{Outcome: Removed, Entry: removed}
	}
	return RemoveResult{Outcome: RemoveNotFound, err: wrapOpErr("remove", date, id, ErrEntryNotFound)}
}

func (s *Store) Progress(date models.DateKey) models.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return progressOf(s.days[date])
}

func (s *Store) WeekSummary(days []models.DateKey) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	for _, d := range days {
		for _, e := range s.days[d] {
			sum.Total++
			if e.Completed {
				sum.Completed++
				sum.Points += e.Points
			}
		}
	}
	return sum
}

// Dates lists the days holding at least one entry, oldest first.
func (s *Store) Dates() []models.DateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DateKey, 0, len(s.days))
	for d, list := range s.days {
		if len(list) > 0 {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func progressOf(list []models.ScheduledChallenge) models.Progress {
	p := models.Progress{Total: len(list)}
	for _, e := range list {
		if e.Completed {
			p.Completed++
		}
	}
	return p
}
