package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	historydto "breathe/internal/modules/history/dto"
	"breathe/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	Query(ctx context.Context, days int) ([]historydto.EntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type EntriesLoadedMsg struct {
	Entries []historydto.EntryOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry historydto.EntryOutput
}

func (i entryItem) Title() string {
	return fmt.Sprintf("%s (%ds)", i.entry.Phase, i.entry.Seconds)
}

func (i entryItem) Description() string {
	return i.entry.Timestamp.Local().Format("Jan 2, 2006 3:04:05 PM")
}

func (i entryItem) FilterValue() string { return i.entry.Phase }

// rangeSteps cycles with the f key; 0 means the full ledger.
var rangeSteps = []int{7, 30, 0}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     HistoryPort
	list     list.Model
	rangeIdx int
	width    int
	height   int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case EntriesLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "History — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "History (" + m.rangeLabel() + ")"
		items := make([]list.Item, len(msg.Entries))
		// Newest first for display.
		for i, e := range msg.Entries {
			items[len(msg.Entries)-1-i] = entryItem{entry: e}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case tea.KeyMsg:
		if msg.String() == "f" && !m.Filtering() {
			m.rangeIdx = (m.rangeIdx + 1) % len(rangeSteps)
			return m, m.Reload()
		}
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.list.View()
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload fetches entries for the current range.
func (m Model) Reload() tea.Cmd {
	days := rangeSteps[m.rangeIdx]
	return func() tea.Msg {
		entries, err := m.port.Query(context.Background(), days)
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) rangeLabel() string {
	days := rangeSteps[m.rangeIdx]
	if days == 0 {
		return "all"
	}
	return fmt.Sprintf("last %d days", days)
}
