package tui

import (
	"fmt"

	"github.com/akyairhashvil/ecoweek/internal/alert"
	"github.com/akyairhashvil/ecoweek/internal/report"
	"github.com/akyairhashvil/ecoweek/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type exportedMsg struct {
	path string
	err  error
}

// exportWeek snapshots the visible week now and writes the PDF off the
// update loop.
func (m Model) exportWeek() tea.Cmd {
	w := report.BuildWeek(m.store, m.now(), m.view.weekOffset)
	path := report.DefaultPath(m.opts.ReportDir, w)
	return func() tea.Msg {
		return exportedMsg{path: path, err: report.WritePDF(path, w)}
	}
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.opts.ReportDir == "" {
		_, cmd := m.alerts.Warning("Export Unavailable", "No report directory is configured.", alert.Options{})
		return m, cmd, true
	}
	return m, m.exportWeek(), true
}

func (m Model) handleExported(msg exportedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		util.LogError("export week", msg.err)
		_, cmd := m.alerts.Error("Export Failed", msg.err.Error(), alert.Options{})
		return m, cmd
	}
	util.Logger.Info("week exported", "path", msg.path)
	_, cmd := m.alerts.Success("Report Saved", fmt.Sprintf("Week report written to %s.", msg.path),
		alert.Options{Timeout: m.opts.AlertTimeout})
	return m, cmd
}
