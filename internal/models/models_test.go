package models

import (
	"testing"
	"time"
)

func TestDateKeyOf(t *testing.T) {
	day := time.Date(2025, time.June, 9, 23, 59, 0, 0, time.Local)
	if got := DateKeyOf(day); got != "2025-06-09" {
		t.Fatalf("DateKeyOf = %q, want 2025-06-09", got)
	}
}

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey(" 2025-06-11 ")
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if key != "2025-06-11" {
		t.Fatalf("key = %q", key)
	}
	for _, bad := range []string{"", "2025-6-11", "2025-02-30", "tomorrow"} {
		if _, err := ParseDateKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDateKeyTime(t *testing.T) {
	tm, ok := DateKey("2025-06-15").Time()
	if !ok {
		t.Fatalf("expected valid key")
	}
	if tm.Weekday() != time.Sunday {
		t.Fatalf("weekday = %v, want Sunday", tm.Weekday())
	}
	if DateKey("junk").Valid() {
		t.Fatalf("expected junk key to be invalid")
	}
}

func TestProgressPercent(t *testing.T) {
	if got := (Progress{}).Percent(); got != 0 {
		t.Fatalf("empty Percent = %v, want 0", got)
	}
	p := Progress{Completed: 1, Total: 3}
	if got := p.RoundedPercent(); got != 33 {
		t.Fatalf("RoundedPercent = %d, want 33", got)
	}
	p = Progress{Completed: 2, Total: 3}
	if got := p.RoundedPercent(); got != 67 {
		t.Fatalf("RoundedPercent = %d, want 67", got)
	}
	if got := (Progress{Completed: 2, Total: 2}).Ratio(); got != 1 {
		t.Fatalf("Ratio = %v, want 1", got)
	}
}

func TestTemplateSchedule(t *testing.T) {
	tmpl := ChallengeTemplate{ID: 101, Title: "5-min shower", Points: 15}
	entry := tmpl.Schedule()
	if entry.ID != 101 || entry.Title != "5-min shower" || entry.Points != 15 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Completed {
		t.Fatalf("expected new entry to be open")
	}
}

func TestParseAlertKind(t *testing.T) {
	cases := map[string]AlertKind{
		"success": AlertSuccess,
		"WARNING": AlertWarning,
		"error":   AlertError,
		" info ":  AlertInfo,
	}
	for in, want := range cases {
		got, ok := ParseAlertKind(in)
		if !ok || got != want {
			t.Fatalf("ParseAlertKind(%q) = %q, %v", in, got, ok)
		}
	}
	got, ok := ParseAlertKind("celebration")
	if ok {
		t.Fatalf("expected unknown kind to report ok=false")
	}
	if got != AlertSuccess {
		t.Fatalf("fallback = %q, want success", got)
	}
}
