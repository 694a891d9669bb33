// Package calendar computes the visible week window and formats dates for
// display.
package calendar

import (
	"time"

	"github.com/akyairhashvil/ecoweek/internal/models"
)

// DaysPerWeek is the number of cells in the week grid.
const DaysPerWeek = 7

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing today shifted by
// offset weeks. Sunday belongs to the week that started six days earlier.
func WeekStart(today time.Time, offset int) time.Time {
	day := midnight(today)
	back := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		back = 6
	}
	return day.AddDate(0, 0, -back+offset*DaysPerWeek)
}

// Week returns Monday through Sunday of the week selected by offset.
func Week(today time.Time, offset int) [DaysPerWeek]time.Time {
	var out [DaysPerWeek]time.Time
	start := WeekStart(today, offset)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// WeekKeys is Week mapped to date keys.
func WeekKeys(today time.Time, offset int) []models.DateKey {
	days := Week(today, offset)
	out := make([]models.DateKey, 0, DaysPerWeek)
	for _, d := range days {
		out = append(out, models.DateKeyOf(d))
	}
	return out
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Title renders the week header, e.g. "Week of June 9, 2025".
func Title(start time.Time) string {
	return "Week of " + start.Format("January 2, 2006")
}

// LongDate renders e.g. "Wednesday, June 11, 2025".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// ShortDate renders e.g. "6/11/2025".
func ShortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// KeyLongDate formats a key with LongDate, falling back to the raw key.
func KeyLongDate(k models.DateKey) string {
	t, ok := k.Time()
	if !ok {
		return k.String()
	}
	return LongDate(t)
}

// KeyShortDate formats a key with ShortDate, falling back to the raw key.
func KeyShortDate(k models.DateKey) string {
	t, ok := k.Time()
	if !ok {
		return k.String()
	}
	return ShortDate(t)
}
