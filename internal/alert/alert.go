// Package alert implements the modal feedback dialog. A dialog is either
// Idle or Showing one request; requests made while Showing wait in a FIFO
// queue and every request resolves exactly once.
package alert

import (
	"time"

	"github.com/akyairhashvil/ecoweek/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type State int

const (
	Idle State = iota
	Showing
)

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "idle"
}

// Ticket identifies one Present call.
type Ticket string

// Options mirrors the knobs a caller can set on a dialog.
type Options struct {
	Confirm     bool
	OKText      string
	ConfirmText string
	CancelText  string
	// Timeout auto-resolves the dialog as true after the duration. Zero disables it.
	Timeout time.Duration
	// OnResolve runs once with the outcome. The returned command is
	// scheduled by the caller's Update.
	OnResolve func(ok bool) tea.Cmd
}

type Request struct {
	Kind    models.AlertKind
	Title   string
	Message string
	Options Options
}

// ResolvedMsg is emitted once per ticket.
type ResolvedMsg struct {
	Ticket  Ticket
	Outcome bool
}

type expiredMsg struct {
	ticket Ticket
}

type pending struct {
	ticket Ticket
	req    Request
}

// Service owns the dialog state. It is driven from a Bubble Tea Update loop
// and is not safe for concurrent use.
type Service struct {
	current *pending
	queue   []pending
	focus   int
	width   int
	height  int
	styles  Styles
}

func New() *Service {
	return &Service{styles: DefaultStyles()}
}

func (s *Service) SetStyles(st Styles) { s.styles = st }

func (s *Service) SetSize(width, height int) {
	s.width, s.height = width, height
}

func (s *Service) State() State {
	if s.current == nil {
		return Idle
	}
	return Showing
}

// Current returns the request on screen.
func (s *Service) Current() (Request, Ticket, bool) {
	if s.current == nil {
		return Request{}, "", false
	}
	return s.current.req, s.current.ticket, true
}

// Queued reports how many requests wait behind the current one.
func (s *Service) Queued() int { return len(s.queue) }

// Present shows req, or queues it when a dialog is already on screen.
func (s *Service) Present(req Request) (Ticket, tea.Cmd) {
	req.Kind, _ = models.ParseAlertKind(string(req.Kind))
	p := pending{ticket: Ticket(uuid.NewString()), req: req}
	if s.current != nil {
		s.queue = append(s.queue, p)
		return p.ticket, nil
	}
	return p.ticket, s.show(p)
}

func (s *Service) show(p pending) tea.Cmd {
	s.current = &p
	s.focus = len(actionsFor(p.req.Options)) - 1
	if d := p.req.Options.Timeout; d > 0 {
		ticket := p.ticket
		return tea.Tick(d, func(time.Time) tea.Msg { return expiredMsg{ticket: ticket} })
	}
	return nil
}

// Resolve settles the dialog on screen with outcome and advances the queue.
func (s *Service) Resolve(outcome bool) tea.Cmd {
	if s.current == nil {
		return nil
	}
	done := *s.current
	s.current = nil
	s.focus = 0

	cmds := []tea.Cmd{func() tea.Msg {
		return ResolvedMsg{Ticket: done.ticket, Outcome: outcome}
	}}
	if fn := done.req.Options.OnResolve; fn != nil {
		cmds = append(cmds, fn(outcome))
	}
	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		cmds = append(cmds, s.show(next))
	}
	return tea.Batch(cmds...)
}

func (s *Service) Success(title, message string, opts Options) (Ticket, tea.Cmd) {
	if title == "" {
		title = "Success!"
	}
	return s.Present(Request{Kind: models.AlertSuccess, Title: title, Message: message, Options: opts})
}

func (s *Service) Warning(title, message string, opts Options) (Ticket, tea.Cmd) {
	if title == "" {
		title = "Warning!"
	}
	return s.Present(Request{Kind: models.AlertWarning, Title: title, Message: message, Options: opts})
}

func (s *Service) Error(title, message string, opts Options) (Ticket, tea.Cmd) {
	if title == "" {
		title = "Error!"
	}
	return s.Present(Request{Kind: models.AlertError, Title: title, Message: message, Options: opts})
}

func (s *Service) Info(title, message string, opts Options) (Ticket, tea.Cmd) {
	if title == "" {
		title = "Info"
	}
	return s.Present(Request{Kind: models.AlertInfo, Title: title, Message: message, Options: opts})
}

// Confirm shows a two-action warning dialog.
func (s *Service) Confirm(title, message string, opts Options) (Ticket, tea.Cmd) {
	if title == "" {
		title = "Confirm"
	}
	opts.Confirm = true
	return s.Present(Request{Kind: models.AlertWarning, Title: title, Message: message, Options: opts})
}

type action struct {
	label   string
	outcome bool
}

func actionsFor(o Options) []action {
	if o.Confirm {
		cancel, confirm := o.CancelText, o.ConfirmText
		if cancel == "" {
			cancel = "Cancel"
		}
		if confirm == "" {
			confirm = "OK"
		}
		return []action{{label: cancel, outcome: false}, {label: confirm, outcome: true}}
	}
	ok := o.OKText
	if ok == "" {
		ok = "OK"
	}
	return []action{{label: ok, outcome: true}}
}

// Update consumes input while a dialog is Showing. handled is false when the
// message should flow on to the rest of the program.
func (s *Service) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return false, nil
	case expiredMsg:
		if s.current == nil || s.current.ticket != msg.ticket {
			return true, nil
		}
		return true, s.Resolve(true)
	}

	if s.current == nil {
		return false, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return true, s.handleKey(msg.String())
	case tea.MouseMsg:
		return true, s.handleMouse(msg)
	}
	return false, nil
}

func (s *Service) handleKey(key string) tea.Cmd {
	actions := actionsFor(s.current.req.Options)
	switch key {
	case "enter", " ":
		return s.Resolve(actions[s.focus].outcome)
	case "tab", "right", "l":
		s.focus = (s.focus + 1) % len(actions)
	case "shift+tab", "left", "h":
		s.focus = (s.focus + len(actions) - 1) % len(actions)
	case "y":
		return s.Resolve(true)
	case "n":
		if s.current.req.Options.Confirm {
			return s.Resolve(false)
		}
	case "esc":
		return s.Resolve(false)
	}
	return nil
}

func (s *Service) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease {
		return nil
	}
	l := s.layout()
	if !l.inside(msg.X, msg.Y) {
		return s.Resolve(false)
	}
	if idx, ok := l.buttonAt(msg.X, msg.Y); ok {
		return s.Resolve(actionsFor(s.current.req.Options)[idx].outcome)
	}
	return nil
}
