package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/ecoweek/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// drain runs cmd and every command nested in a batch, collecting messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func resolvedOutcomes(msgs []tea.Msg) []bool {
	var out []bool
	for _, m := range msgs {
		if r, ok := m.(ResolvedMsg); ok {
			out = append(out, r.Outcome)
		}
	}
	return out
}

func setupTestService(t *testing.T) *Service {
	t.Helper()
	s := New()
	s.SetSize(80, 24)
	return s
}

func TestInfoAcknowledge(t *testing.T) {
	s := setupTestService(t)
	var got []bool
	ticket, cmd := s.Info("Select a Day First", "Please click on a day in the calendar.", Options{
		OnResolve: func(ok bool) tea.Cmd {
			got = append(got, ok)
			return nil
		},
	})
	if cmd != nil {
		t.Fatalf("expected no command without timeout")
	}
	if s.State() != Showing {
		t.Fatalf("state = %v, want showing", s.State())
	}
	req, current, ok := s.Current()
	if !ok || current != ticket || req.Kind != models.AlertInfo {
		t.Fatalf("unexpected current request %+v", req)
	}
	if n := len(actionsFor(req.Options)); n != 1 {
		t.Fatalf("expected exactly one action, got %d", n)
	}

	handled, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	msgs := drain(t, cmd)
	if outcomes := resolvedOutcomes(msgs); len(outcomes) != 1 || !outcomes[0] {
		t.Fatalf("resolved outcomes = %v, want [true]", outcomes)
	}
	if len(got) != 1 || !got[0] {
		t.Fatalf("OnResolve calls = %v, want [true]", got)
	}
	if s.State() != Idle {
		t.Fatalf("state = %v, want idle", s.State())
	}
}

func TestConfirmCancelAndConfirm(t *testing.T) {
	s := setupTestService(t)
	s.Confirm("Quit?", "Unsaved schedule will be lost.", Options{ConfirmText: "Quit", CancelText: "Stay"})
	req, _, _ := s.Current()
	if req.Kind != models.AlertWarning || !req.Options.Confirm {
		t.Fatalf("expected warning confirm dialog, got %+v", req)
	}
	if !strings.Contains(s.View(), "[ Stay ]") || !strings.Contains(s.View(), "[ Quit ]") {
		t.Fatalf("expected custom labels in view")
	}

	// focus starts on the confirm action; move it to cancel
	s.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || outcomes[0] {
		t.Fatalf("outcomes = %v, want [false]", outcomes)
	}

	s.Confirm("", "again", Options{})
	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || !outcomes[0] {
		t.Fatalf("outcomes = %v, want [true]", outcomes)
	}
}

func TestEscapeDismissesAsFalse(t *testing.T) {
	s := setupTestService(t)
	s.Success("", "done", Options{})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || outcomes[0] {
		t.Fatalf("outcomes = %v, want [false]", outcomes)
	}
}

func TestNoKeyIgnoredWithoutConfirm(t *testing.T) {
	s := setupTestService(t)
	s.Info("", "msg", Options{})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if cmd != nil {
		t.Fatalf("expected n to be ignored on an acknowledgement dialog")
	}
	if s.State() != Showing {
		t.Fatalf("expected dialog to stay open")
	}
}

func TestOutsideClickResolvesFalse(t *testing.T) {
	s := setupTestService(t)
	s.Info("", "msg", Options{})
	handled, cmd := s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !handled {
		t.Fatalf("expected mouse to be handled")
	}
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || outcomes[0] {
		t.Fatalf("outcomes = %v, want [false]", outcomes)
	}
}

func TestButtonClick(t *testing.T) {
	s := setupTestService(t)
	s.Confirm("Remove?", "msg", Options{})
	l := s.layout()
	if len(l.buttons) != 2 {
		t.Fatalf("expected two buttons, got %d", len(l.buttons))
	}
	cancel := l.buttons[0]
	_, cmd := s.Update(tea.MouseMsg{X: cancel.start, Y: l.footerRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || outcomes[0] {
		t.Fatalf("outcomes = %v, want [false]", outcomes)
	}

	s.Confirm("Remove?", "msg", Options{})
	l = s.layout()
	confirm := l.buttons[1]
	_, cmd = s.Update(tea.MouseMsg{X: confirm.end - 1, Y: l.footerRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || !outcomes[0] {
		t.Fatalf("outcomes = %v, want [true]", outcomes)
	}
}

func TestClickInsideBoxKeepsDialog(t *testing.T) {
	s := setupTestService(t)
	s.Info("", "msg", Options{})
	l := s.layout()
	_, cmd := s.Update(tea.MouseMsg{X: l.x + 1, Y: l.y + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil || s.State() != Showing {
		t.Fatalf("expected click on the dialog body to keep it open")
	}
}

func TestQueuedRequestsResolveInOrder(t *testing.T) {
	s := setupTestService(t)
	var order []string
	record := func(name string) func(bool) tea.Cmd {
		return func(bool) tea.Cmd {
			order = append(order, name)
			return nil
		}
	}
	first, _ := s.Info("first", "", Options{OnResolve: record("first")})
	second, cmd := s.Info("second", "", Options{OnResolve: record("second")})
	if cmd != nil {
		t.Fatalf("queued request must not start a timer")
	}
	if s.Queued() != 1 {
		t.Fatalf("queued = %d, want 1", s.Queued())
	}
	if _, current, _ := s.Current(); current != first {
		t.Fatalf("expected first request on screen")
	}

	drain(t, s.Resolve(true))
	if _, current, _ := s.Current(); current != second {
		t.Fatalf("expected second request on screen after first resolved")
	}
	drain(t, s.Resolve(true))
	if s.State() != Idle {
		t.Fatalf("expected idle after queue drained")
	}
	if strings.Join(order, ",") != "first,second" {
		t.Fatalf("order = %v", order)
	}
}

func TestTimeoutResolvesTrue(t *testing.T) {
	s := setupTestService(t)
	ticket, cmd := s.Success("Saved", "", Options{Timeout: 2 * time.Second})
	if cmd == nil {
		t.Fatalf("expected timeout command")
	}
	handled, cmd := s.Update(expiredMsg{ticket: ticket})
	if !handled {
		t.Fatalf("expected expiry to be handled")
	}
	if outcomes := resolvedOutcomes(drain(t, cmd)); len(outcomes) != 1 || !outcomes[0] {
		t.Fatalf("outcomes = %v, want [true]", outcomes)
	}
}

func TestStaleTimeoutIgnored(t *testing.T) {
	s := setupTestService(t)
	stale, _ := s.Success("one", "", Options{Timeout: time.Second})
	drain(t, s.Resolve(true))
	s.Info("two", "", Options{})

	_, cmd := s.Update(expiredMsg{ticket: stale})
	if cmd != nil {
		t.Fatalf("expected stale expiry to do nothing")
	}
	if req, _, ok := s.Current(); !ok || req.Title != "two" {
		t.Fatalf("expected second dialog to remain on screen")
	}
}

func TestResolveWhenIdle(t *testing.T) {
	s := setupTestService(t)
	if cmd := s.Resolve(true); cmd != nil {
		t.Fatalf("expected nil command when idle")
	}
	if handled, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter}); handled {
		t.Fatalf("idle service must not consume keys")
	}
}

func TestIconFallback(t *testing.T) {
	if Icon(models.AlertKind("party")) != Icon(models.AlertSuccess) {
		t.Fatalf("expected unknown kind to use the success icon")
	}
	if Icon(models.AlertError) == Icon(models.AlertSuccess) {
		t.Fatalf("expected error icon to differ from success")
	}
}

func TestDefaultTitles(t *testing.T) {
	s := setupTestService(t)
	s.Warning("", "", Options{})
	s.Error("", "", Options{})
	req, _, _ := s.Current()
	if req.Title != "Warning!" {
		t.Fatalf("title = %q, want Warning!", req.Title)
	}
	drain(t, s.Resolve(true))
	req, _, _ = s.Current()
	if req.Title != "Error!" {
		t.Fatalf("title = %q, want Error!", req.Title)
	}
}

func TestPresentNormalisesUnknownKind(t *testing.T) {
	s := New()
	s.Present(Request{Kind: models.AlertKind(" Party "), Title: "Hi"})
	req, _, ok := s.Current()
	if !ok || req.Kind != models.AlertSuccess {
		t.Fatalf("kind = %q, want success", req.Kind)
	}
}
