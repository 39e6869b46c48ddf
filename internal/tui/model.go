package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

// Journal receives every dispatched action and every completed meal.
// *progress.Logger implements it.
type Journal interface {
	Action(a engine.Action, after engine.State)
	Complete(s engine.State)
}

// Options configures the wizard model.
type Options struct {
	Currency string
	// Strict blocks Next/Complete while the current pick is no longer
	// eligible under the earlier steps.
	Strict bool
	Theme  string
}

// Model is the bubbletea model for the meal wizard.
type Model struct {
	catalog *catalog.Catalog
	state   engine.State
	opts    Options
	journal Journal

	cursor      int
	showSummary bool
	reference   string // summary reference of the meal on screen
	notice      string

	keys     keyMap
	help     help.Model
	summary  viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	ready    bool
}

// NewModel creates a Model on the first step with nothing selected.
func NewModel(cat *catalog.Catalog, opts Options) Model {
	if opts.Theme == "" {
		opts.Theme = "dark"
	}
	m := Model{
		catalog: cat,
		state:   engine.New(),
		opts:    opts,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.syncKeys()
	return m
}

// SetJournal sets the session journal. A nil journal disables journaling.
func (m *Model) SetJournal(j Journal) {
	m.journal = j
}

// State returns the current wizard state.
func (m Model) State() engine.State {
	return m.state
}

// ShowingSummary reports whether the order summary is on screen.
func (m Model) ShowingSummary() bool {
	return m.showSummary
}

// eligible returns the items offered on the current step.
func (m Model) eligible() []*domain.Item {
	return engine.Eligible(m.state.StepIndex(), m.state.Selections(), m.catalog)
}

// currentStale reports whether the pick on the current step is no longer
// eligible under the earlier picks.
func (m Model) currentStale() bool {
	key := m.state.Step().Key
	for _, k := range m.state.Stale(m.catalog) {
		if k == key {
			return true
		}
	}
	return false
}

// canAdvance reports whether Next (or Complete on the last step) is allowed.
func (m Model) canAdvance() bool {
	if !m.state.CanAdvance() {
		return false
	}
	if !m.opts.Strict {
		return true
	}
	if m.state.StepIndex() == engine.LastStep {
		return len(m.state.Stale(m.catalog)) == 0
	}
	return !m.currentStale()
}

type rendererReadyMsg struct {
	renderer *glamour.TermRenderer
}
