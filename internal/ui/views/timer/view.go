package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "breathe/internal/modules/session/dto"
	"breathe/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Start(ctx context.Context) (sessiondto.StatusOutput, error)
	PauseToggle(ctx context.Context) (sessiondto.StatusOutput, error)
	Tick(ctx context.Context) (sessiondto.StatusOutput, error)
	Reset(ctx context.Context) (sessiondto.ResetOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusMsg struct {
	Status sessiondto.StatusOutput
	Err    error
}

// ResetDoneMsg bubbles up so the app can refresh the other tabs.
type ResetDoneMsg struct {
	Out sessiondto.ResetOutput
	Err error
}

type tickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SessionPort
	status  sessiondto.StatusOutput
	ticking bool
	width   int
	height  int
}

func New(port SessionPort) Model {
	return Model{port: port, status: sessiondto.StatusOutput{State: "idle"}}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatusMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.status = msg.Status
		// One tick loop at a time: it lives as long as the session does.
		if m.status.State != "idle" && !m.ticking {
			m.ticking = true
			return m, tickCmd()
		}
		if m.status.State == "idle" {
			m.ticking = false
		}

	case ResetDoneMsg:
		m.ticking = false
		return m, m.refreshCmd()

	case tickMsg:
		if !m.ticking {
			return m, nil
		}
		status, err := m.port.Tick(context.Background())
		if err == nil {
			m.status = status
		}
		if m.status.State == "idle" {
			m.ticking = false
			return m, nil
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, m.startCmd()
		case " ":
			return m, m.pauseCmd()
		case "r":
			return m, m.resetCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	switch m.status.State {
	case "idle":
		sb.WriteString(theme.Title.Render("Ready to breathe") + "\n\n")
		sb.WriteString(theme.Muted.Render("press s to start a session") + "\n")
	default:
		style := theme.PhaseStyle(m.status.Phase)
		sb.WriteString(style.Render(m.status.Phase) + "\n\n")
		sb.WriteString(renderCountdown(m.status.SecondsRemaining) + "\n\n")
		sb.WriteString(fmt.Sprintf("cycles completed: %d\n", m.status.CompletedCycles))
		if m.status.State == "paused" {
			sb.WriteString("\n" + theme.Hot.Render("paused") + "\n")
		}
	}
	if m.status.Note != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.status.Note) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("s: start  space: pause/resume  r: reset"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

// Status returns the last snapshot for the app status bar.
func (m Model) Status() sessiondto.StatusOutput {
	return m.status
}

// ─── private ─────────────────────────────────────────────────────────────────

func renderCountdown(seconds int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%2d", seconds))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Start(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) pauseCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.PauseToggle(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Reset(context.Background())
		return ResetDoneMsg{Out: out, Err: err}
	}
}
