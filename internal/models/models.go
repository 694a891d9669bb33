package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateKeyLayout is the canonical layout of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey identifies a calendar day in YYYY-MM-DD form.
type DateKey string

// DateKeyOf returns the key of the calendar day t falls on in its own location.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// ParseDateKey validates s and returns it as a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date key %q: %w", s, err)
	}
	return DateKeyOf(t), nil
}

// Time returns local midnight of the day. ok is false for malformed keys.
func (k DateKey) Time() (time.Time, bool) {
	t, err := time.ParseInLocation(DateKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (k DateKey) Valid() bool {
	_, ok := k.Time()
	return ok
}

func (k DateKey) String() string { return string(k) }

// ChallengeTemplate is an immutable catalog entry.
type ChallengeTemplate struct {
	ID          int
	Title       string
	Icon        string // symbolic name, mapped to a glyph by the renderer
	Points      int
	Description string
}

// ScheduledChallenge is a template placed on a specific day.
type ScheduledChallenge struct {
	ChallengeTemplate
	Completed bool
}

// Schedule creates an open instance of t.
func (t ChallengeTemplate) Schedule() ScheduledChallenge {
	return ScheduledChallenge{ChallengeTemplate: t}
}

// Progress counts completed entries of a day.
type Progress struct {
	Completed int
	Total     int
}

// Percent is 0 for an empty day.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

func (p Progress) Ratio() float64 {
	return p.Percent() / 100
}

func (p Progress) RoundedPercent() int {
	return int(math.Round(p.Percent()))
}

// AlertKind selects the icon and accent of an alert.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
)

// ParseAlertKind maps s to a known kind. Anything unrecognised falls back
// to AlertSuccess and reports ok=false.
func ParseAlertKind(s string) (AlertKind, bool) {
	switch AlertKind(strings.ToLower(strings.TrimSpace(s))) {
	case AlertSuccess:
		return AlertSuccess, true
	case AlertWarning:
		return AlertWarning, true
	case AlertError:
		return AlertError, true
	case AlertInfo:
		return AlertInfo, true
	default:
		return AlertSuccess, false
	}
}
