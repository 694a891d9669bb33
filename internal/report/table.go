package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// WriteWeekTable prints one row per scheduled challenge, grouped by day.
func WriteWeekTable(out io.Writer, w Week) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	done := color.New(color.FgGreen)
	today := color.New(color.Bold, color.FgHiYellow)

	if _, err := bold.Fprintln(out, w.Title()); err != nil {
		return err
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Challenge"), bold.Sprint("Points"), bold.Sprint("Done"))
	for _, d := range w.Days {
		label := calendar.ShortDate(d.Date) + " " + d.Date.Format("Mon")
		if calendar.SameDay(d.Date, w.Today) {
			label = today.Sprint(label)
		}
		if len(d.Entries) == 0 {
			tbl.AddRow(label, faint.Sprint("-"), "", "")
			continue
		}
		for i, e := range d.Entries {
			day := ""
			if i == 0 {
				day = label
			}
			mark := ""
			if e.Completed {
				mark = done.Sprint("✔")
			}
			tbl.AddRow(day, e.Title, pointsLabel(e.Points), mark)
		}
	}
	tbl.RightAlign(2)

	if _, err := fmt.Fprintln(out, tbl); err != nil {
		return err
	}
	_, err := faint.Fprintln(out, summaryLine(w.Summary))
	return err
}

// WriteCatalogTable prints the challenge templates.
func WriteCatalogTable(out io.Writer, templates []models.ChallengeTemplate) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Points"), bold.Sprint("Description"))
	for _, t := range templates {
		tbl.AddRow(strconv.Itoa(t.ID), t.Title, pointsLabel(t.Points), t.Description)
	}
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(out, tbl)
	return err
}
