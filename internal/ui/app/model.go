package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "breathe/internal/modules/history/dto"
	reportdto "breathe/internal/modules/report/dto"
	sessiondto "breathe/internal/modules/session/dto"
	"breathe/internal/ui/components"
	"breathe/internal/ui/theme"
	historyview "breathe/internal/ui/views/history"
	progressview "breathe/internal/ui/views/progress"
	timerview "breathe/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type sessionPort interface {
	Start(ctx context.Context) (sessiondto.StatusOutput, error)
	PauseToggle(ctx context.Context) (sessiondto.StatusOutput, error)
	Tick(ctx context.Context) (sessiondto.StatusOutput, error)
	Reset(ctx context.Context) (sessiondto.ResetOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
	ClearSummaries(ctx context.Context) error
}

type historyPort interface {
	Query(ctx context.Context, days int) ([]historydto.EntryOutput, error)
	Clear(ctx context.Context) error
}

type progressPort interface {
	Clear(ctx context.Context) error
}

type reportPort interface {
	Chart(ctx context.Context, rangeArg string) (reportdto.ChartOutput, error)
	ExportDocument(ctx context.Context, rangeArg string) (string, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabHistory
	tabProgress
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "History", "Progress"}

// ─── async messages ───────────────────────────────────────────────────────────

type clearedMsg struct{ err error }

type exportedMsg struct {
	path string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Range  key.Binding
	Export key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset session")),
		Range:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle range")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all data")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Start, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.Tab, k.Range, k.Export, k.Clear},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help
// overlay, and the clear confirmation; session mechanics live in the
// timer view and its port.
type Model struct {
	session  sessionPort
	history  historyPort
	progress progressPort
	report   reportPort

	timerView    timerview.Model
	historyView  historyview.Model
	progressView progressview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	confirm   components.Confirm
	status    string
	width     int
	height    int
}

func NewModel(session sessionPort, history historyPort, progress progressPort, report reportPort) Model {
	return Model{
		session:      session,
		history:      history,
		progress:     progress,
		report:       report,
		timerView:    timerview.New(session),
		historyView:  historyview.New(history),
		progressView: progressview.New(report),
		activeTab:    tabTimer,
		keys:         defaultKeys(),
		help:         help.New(),
		confirm:      components.NewConfirm(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.historyView.Init(),
		m.progressView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The confirmation modal intercepts all input while open.
	if m.confirm.Visible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case components.ConfirmAcceptMsg:
		return m, m.clearCmd()

	case components.ConfirmCancelMsg:
		m.status = "clear cancelled"

	case clearedMsg:
		if msg.err != nil {
			m.status = "clear failed: " + msg.err.Error()
		} else {
			m.status = "all data cleared"
		}
		cmds = append(cmds, m.historyView.Reload(), m.progressView.Reload())

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}

	// A finalized session changes history, progress and summaries, so
	// the read views reload.
	case timerview.ResetDoneMsg:
		if msg.Err != nil {
			m.status = "reset failed: " + msg.Err.Error()
		} else if msg.Out.Finalized {
			m.status = fmt.Sprintf("session complete: %d cycles in %ds", msg.Out.Summary.Cycles, msg.Out.Summary.TotalSeconds)
		}
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		cmds = append(cmds, cmd, m.historyView.Reload(), m.progressView.Reload())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.activeTab == tabHistory && m.historyView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, m.reloadActive()
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, m.reloadActive()
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "e":
			return m, m.exportCmd()
		case "c":
			m.confirm.Open("Delete all recorded history, progress and summaries?")
			return m, nil
		}
	}

	// Propagate the message to the active tab's sub-view. The timer
	// also receives its tick messages while another tab is focused.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabProgress:
		m.progressView, tabCmd = m.progressView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	if m.activeTab != tabTimer {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var cmd tea.Cmd
			m.timerView, cmd = m.timerView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.confirm.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.confirm.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabHistory:
		return m.historyView.View()
	case tabProgress:
		return m.progressView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "breathe  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	status := m.timerView.Status()
	if status.State != "idle" {
		dot := theme.Hot.Render("● " + status.Phase)
		left = dot + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.progressView, _ = m.progressView.Update(sz)
}

// reloadActive refreshes the read view being switched to, so the tab
// always shows data that includes the running session's latest ticks.
func (m Model) reloadActive() tea.Cmd {
	switch m.activeTab {
	case tabHistory:
		return m.historyView.Reload()
	case tabProgress:
		return m.progressView.Reload()
	}
	return nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) clearCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.history.Clear(ctx); err != nil {
			return clearedMsg{err: err}
		}
		if err := m.progress.Clear(ctx); err != nil {
			return clearedMsg{err: err}
		}
		if err := m.session.ClearSummaries(ctx); err != nil {
			return clearedMsg{err: err}
		}
		return clearedMsg{}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.report.ExportDocument(context.Background(), "all")
		return exportedMsg{path: path, err: err}
	}
}
