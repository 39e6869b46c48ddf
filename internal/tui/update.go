package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/joice/internal/debug"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
	"github.com/alexander-akhmetov/joice/internal/summary"
)

func createRendererCmd(width int, theme string) tea.Cmd {
	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(theme),
			glamour.WithWordWrap(max(width-2, 40)),
		)
		if err != nil {
			debug.Logf("tui: failed to create glamour renderer: %v", err)
		}
		return rendererReadyMsg{renderer: renderer}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		w, h := m.summarySize()
		if !m.ready {
			m.summary = viewport.New(w, h)
			m.ready = true
			m.refreshSummary()
			return m, createRendererCmd(w, m.opts.Theme)
		}
		m.summary.Width = w
		m.summary.Height = h
		m.refreshSummary()

	case rendererReadyMsg:
		m.renderer = msg.renderer
		m.refreshSummary()
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.dispatch(engine.Reset())
		m.showSummary = false
		m.reference = ""
		m.cursor = 0
		m.syncKeys()
		return m, nil
	}

	if m.showSummary {
		return m.handleSummaryKey(msg)
	}

	items := m.eligible()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(items) {
			m.selectItem(items[m.cursor])
		}

	case key.Matches(msg, m.keys.Next):
		if m.state.StepIndex() == engine.LastStep {
			m.complete()
		} else {
			m.dispatch(engine.Advance())
			m.cursor = m.cursorForCurrent()
		}

	case key.Matches(msg, m.keys.Back):
		m.dispatch(engine.Retreat())
		m.cursor = m.cursorForCurrent()
	}

	m.syncKeys()
	return m, nil
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.showSummary = false
		m.reference = ""
		m.cursor = m.cursorForCurrent()
		m.syncKeys()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch applies a to the state and records it in the journal.
func (m *Model) dispatch(a engine.Action) {
	m.state = engine.Apply(m.state, a)
	debug.Logf("tui: %s -> step %d", a, m.state.StepIndex())
	if m.journal != nil {
		m.journal.Action(a, m.state)
	}
}

func (m *Model) selectItem(it *domain.Item) {
	if !m.opts.Strict {
		m.dispatch(engine.Select(it))
		return
	}
	next, err := m.state.SelectChecked(it, m.catalog)
	if err != nil {
		m.notice = err.Error()
		return
	}
	a := engine.Select(next.Current())
	m.state = next
	if m.journal != nil {
		m.journal.Action(a, m.state)
	}
}

// complete opens the order summary for the current meal.
func (m *Model) complete() {
	m.showSummary = true
	m.reference = ""
	if m.journal != nil {
		m.journal.Complete(m.state)
	}
	m.refreshSummary()
	m.summary.GotoTop()
}

// cursorForCurrent places the cursor on the current step's pick when it is
// still offered, otherwise on the first item.
func (m Model) cursorForCurrent() int {
	cur := m.state.Current()
	if cur == nil {
		return 0
	}
	for i, it := range m.eligible() {
		if it.ID == cur.ID {
			return i
		}
	}
	return 0
}

// refreshSummary rebuilds the summary viewport content. The reference is
// generated once per opened summary and reused on resize.
func (m *Model) refreshSummary() {
	if !m.showSummary || !m.ready {
		return
	}
	sum := summary.Build(m.state, m.catalog, summary.Options{
		Currency:  m.opts.Currency,
		Reference: m.reference,
	})
	m.reference = sum.Reference

	content := sum.Markdown()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			content = rendered
		} else {
			debug.Logf("tui: render summary: %v", err)
		}
	}
	m.summary.SetContent(content)
}

// syncKeys enables and relabels bindings for the current screen.
func (m *Model) syncKeys() {
	inSummary := m.showSummary

	m.keys.Select.SetEnabled(!inSummary)
	m.keys.Next.SetEnabled(!inSummary && m.canAdvance())
	m.keys.Back.SetEnabled(inSummary || m.state.StepIndex() > 0)

	if m.state.StepIndex() == engine.LastStep {
		m.keys.Next.SetHelp("n/→", "complete")
	} else {
		m.keys.Next.SetHelp("n/→", "next")
	}

	if inSummary {
		m.keys.Up.SetHelp("↑/k", "scroll up")
		m.keys.Down.SetHelp("↓/j", "scroll down")
		m.keys.Back.SetHelp("b/←", "edit")
	} else {
		m.keys.Up.SetHelp("↑/k", "up")
		m.keys.Down.SetHelp("↓/j", "down")
		m.keys.Back.SetHelp("b/←", "back")
	}
}

// summarySize returns the viewport size inside the summary box.
func (m Model) summarySize() (int, int) {
	return max(m.width-4, 20), max(m.height-6, 5)
}
