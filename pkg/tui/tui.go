// Package tui hosts the Bubble Tea dashboard: pick a mood, add a note,
// submit, and watch the live chart.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodq/pkg/cache"
	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/query"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/refresh"
	"tableflip.dev/moodq/pkg/scope"
	"tableflip.dev/moodq/pkg/sheet"
	"tableflip.dev/moodq/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

const maxBarWidth = 30

type theme struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	Bar      lipgloss.Style
	Warn     lipgloss.Style
	Ok       lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Faint:    lipgloss.NewStyle().Faint(true),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

type refreshMsg struct {
	load store.Load
	err  error
}

type loggedMsg struct {
	err error
}

type tickMsg time.Time

type watchStartedMsg struct {
	ch  <-chan sheet.Event
	err error
}

type watchEventMsg struct {
	ch <-chan sheet.Event
	ok bool
}

// Model is the dashboard state: the current selection and note draft are
// held here explicitly, never in package globals.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	persistence store.Persistence
	cache       *cache.Cache
	zone        *time.Location
	interval    time.Duration

	mode     mode
	selected *mood.Mood
	note     textinput.Model
	all      bool

	load    store.Load
	loaded  bool
	status  string
	warning bool

	width int
	th    theme
}

// New builds the dashboard model. interval <= 0 falls back to the default
// auto-refresh cadence.
func New(p store.Persistence, c *cache.Cache, zone *time.Location, interval time.Duration) *Model {
	if zone == nil {
		zone = time.Local
	}
	if interval <= 0 {
		interval = refresh.DefaultInterval
	}

	ti := textinput.New()
	ti.Placeholder = "optional note"
	ti.CharLimit = record.MaxNoteLen
	ti.Prompt = ""

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		ctx:         ctx,
		cancel:      cancel,
		persistence: p,
		cache:       c,
		zone:        zone,
		interval:    interval,
		mode:        modeNormal,
		note:        ti,
		th:          defaultTheme(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd(), m.startWatchCmd())
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		load, err := m.loadAll()
		return refreshMsg{load: load, err: err}
	}
}

func (m *Model) loadAll() (store.Load, error) {
	if m.cache != nil {
		return m.cache.Get(m.ctx)
	}
	return m.persistence.LoadAll(m.ctx)
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) startWatchCmd() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.persistence.Watch(m.ctx)
		return watchStartedMsg{ch: ch, err: err}
	}
}

func waitWatchCmd(ch <-chan sheet.Event) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-ch
		return watchEventMsg{ch: ch, ok: ok}
	}
}

func (m *Model) submitCmd() tea.Cmd {
	selected := m.selected
	note := m.note.Value()
	return func() tea.Msg {
		if selected == nil {
			return loggedMsg{err: errNoMood}
		}
		if err := m.persistence.Append(m.ctx, *selected, note); err != nil {
			return loggedMsg{err: err}
		}
		if m.cache != nil {
			m.cache.Invalidate()
		}
		return loggedMsg{}
	}
}

var errNoMood = fmt.Errorf("pick a mood first (1-%d)", len(mood.All()))

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case refreshMsg:
		if msg.err != nil {
			m.setWarning("read failed: " + msg.err.Error())
		} else {
			m.load = msg.load
			m.loaded = true
		}

	case tickMsg:
		cmds = append(cmds, m.refreshCmd(), m.tickCmd())

	case watchStartedMsg:
		// Watching is best effort; the poll tick still refreshes.
		if msg.err == nil && msg.ch != nil {
			cmds = append(cmds, waitWatchCmd(msg.ch))
		}

	case watchEventMsg:
		if msg.ok {
			if m.cache != nil {
				m.cache.Invalidate()
			}
			cmds = append(cmds, m.refreshCmd(), waitWatchCmd(msg.ch))
		}

	case loggedMsg:
		if msg.err != nil {
			m.setWarning(msg.err.Error())
		} else {
			m.setStatus("Logged!")
			m.selected = nil
			m.note.SetValue("")
			m.mode = modeNormal
			m.note.Blur()
			cmds = append(cmds, m.refreshCmd())
		}

	case tea.KeyPressMsg:
		if m.mode == modeInsert {
			cmds = append(cmds, m.handleInsertKey(msg))
		} else {
			if cmd, quit := m.handleNormalKey(msg); quit {
				m.cancel()
				return m, tea.Quit
			} else if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.note.Blur()
		return nil
	case "enter":
		return m.submitCmd()
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return cmd
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return nil, true
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		all := mood.All()
		if idx < len(all) {
			m.selected = &all[idx]
			m.setStatus("")
		}
		return nil, false
	case "n":
		m.mode = modeInsert
		m.note.Focus()
		return nil, false
	case "tab":
		m.all = !m.all
		return nil, false
	case "enter":
		return m.submitCmd(), false
	case "r":
		if m.cache != nil {
			m.cache.Invalidate()
		}
		return m.refreshCmd(), false
	}
	return nil, false
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.warning = false
}

func (m *Model) setWarning(s string) {
	m.status = s
	m.warning = true
}

func (m *Model) scope() scope.Scope {
	if m.all {
		return scope.AllTime()
	}
	return scope.ForDay(time.Now().In(m.zone), m.zone)
}

func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.th.Title.Render("Mood of the Queue"))
	sections = append(sections, m.legendLine())
	sections = append(sections, m.noteLine())
	sections = append(sections, m.chartPane())

	if m.status != "" {
		if m.warning {
			sections = append(sections, m.th.Warn.Render(m.status))
		} else {
			sections = append(sections, m.th.Ok.Render(m.status))
		}
	}
	sections = append(sections, m.th.Faint.Render(
		"1-5 pick · n note · enter submit · tab scope · r refresh · q quit"))

	return strings.Join(sections, "\n\n")
}

func (m *Model) legendLine() string {
	parts := make([]string, 0, len(mood.All()))
	for i, md := range mood.All() {
		label := fmt.Sprintf("%d %s %s", i+1, md.String(), md.Label())
		if m.selected != nil && *m.selected == md {
			label = m.th.Selected.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "   ")
}

func (m *Model) noteLine() string {
	prompt := "Note: "
	if m.mode == modeInsert {
		prompt = "Note> "
	}
	return prompt + m.note.View()
}

func (m *Model) chartPane() string {
	sc := m.scope()
	filtered := query.FilterByScope(m.load.Records, sc)
	summary := query.Aggregate(filtered)

	lines := make([]string, 0, len(summary)+2)
	title := fmt.Sprintf("%s - %d", sc.String(), len(filtered))
	lines = append(lines, m.th.Title.Render(title))

	if !m.loaded {
		lines = append(lines, m.th.Faint.Render(" loading..."))
		return strings.Join(lines, "\n")
	}
	if summary.Total() == 0 {
		lines = append(lines, m.th.Faint.Italic(true).Render(" none"))
		return strings.Join(lines, "\n")
	}

	max := summary.Max()
	for _, c := range summary {
		width := 0
		if max > 0 {
			width = c.N * maxBarWidth / max
		}
		if c.N > 0 && width == 0 {
			width = 1
		}
		lines = append(lines, fmt.Sprintf("%s %-10s %s %s",
			c.Mood.String(),
			c.Mood.Label(),
			m.th.Bar.Render(strings.Repeat("█", width)),
			m.th.Faint.Render(fmt.Sprintf("%d", c.N)),
		))
	}
	if m.load.Skipped > 0 {
		lines = append(lines, m.th.Warn.Render(
			fmt.Sprintf("%d malformed rows skipped", m.load.Skipped)))
	}
	return strings.Join(lines, "\n")
}

// Run launches the interactive dashboard.
func Run(p store.Persistence, c *cache.Cache, zone *time.Location, interval time.Duration) error {
	prog := tea.NewProgram(New(p, c, zone, interval), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
