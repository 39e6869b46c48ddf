package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

type recordingJournal struct {
	actions   []string
	completed []engine.State
}

func (j *recordingJournal) Action(a engine.Action, _ engine.State) {
	j.actions = append(j.actions, a.String())
}

func (j *recordingJournal) Complete(s engine.State) {
	j.completed = append(j.completed, s)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func newTestModel(t *testing.T, opts Options) (Model, *recordingJournal) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	if opts.Currency == "" {
		opts.Currency = "€"
	}
	m := NewModel(cat, opts)
	j := &recordingJournal{}
	m.SetJournal(j)
	return m, j
}

func selectedID(m Model, key domain.StepKey) string {
	if it := m.State().Selections().Get(key); it != nil {
		return it.ID
	}
	return ""
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	assert.Equal(t, engine.New(), m.State())
	assert.False(t, m.ShowingSummary())
	assert.Equal(t, "dark", m.opts.Theme)
	assert.False(t, m.keys.Next.Enabled(), "next needs a selection")
	assert.False(t, m.keys.Back.Enabled(), "nothing to go back to")
	assert.NotNil(t, m.Init())
	assert.Equal(t, "Initializing...", m.View())
}

func TestWizardHappyPath(t *testing.T) {
	m, j := newTestModel(t, Options{})

	m = press(t, m, "enter")
	assert.Equal(t, "veg", selectedID(m, domain.StepBase))
	assert.True(t, m.keys.Next.Enabled())

	m = press(t, m, "n")
	assert.Equal(t, 1, m.State().StepIndex())
	assert.Equal(t, []string{"salmon", "tofu", "egg"}, itemIDs(m.eligible()))

	m = press(t, m, " ", "right")
	assert.Equal(t, "salmon", selectedID(m, domain.StepOption))
	assert.Equal(t, 2, m.State().StepIndex())
	assert.Equal(t, "complete", m.keys.Next.Help().Desc)

	m = press(t, m, "j", "enter", "n")
	assert.Equal(t, "herb-yogurt", selectedID(m, domain.StepCondiment))
	assert.True(t, m.ShowingSummary())
	assert.Equal(t, "10.75", engine.TotalPrice(m.State().Selections()).String())

	assert.Equal(t, []string{"select veg", "advance", "select salmon", "advance", "select herb-yogurt"}, j.actions)
	require.Len(t, j.completed, 1)
	assert.True(t, j.completed[0].Complete())
}

func TestNextRequiresSelection(t *testing.T) {
	m, j := newTestModel(t, Options{})

	m = press(t, m, "n", "l", "right")
	assert.Equal(t, 0, m.State().StepIndex())
	assert.Empty(t, j.actions)
}

func TestCompleteRequiresSelection(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, "enter", "n", "enter", "n")
	require.Equal(t, engine.LastStep, m.State().StepIndex())

	m = press(t, m, "n")
	assert.False(t, m.ShowingSummary())
}

func TestBackKeepsSelection(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, "b")
	assert.Equal(t, 0, m.State().StepIndex(), "back on the first step is a no-op")

	m = press(t, m, "j", "enter", "n", "enter", "left")
	assert.Equal(t, 0, m.State().StepIndex())
	assert.Equal(t, "grains", selectedID(m, domain.StepBase))
	assert.Equal(t, "salmon", selectedID(m, domain.StepOption), "option is kept")
	assert.Equal(t, 1, m.cursor, "cursor returns to the pick")

	m = press(t, m, "h")
	assert.Equal(t, 0, m.State().StepIndex())
}

func TestCursorBounds(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, "k", "up")
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "j", "j", "j", "down", "j")
	assert.Equal(t, 2, m.cursor, "three bases")

	m = press(t, m, "enter")
	assert.Equal(t, "greens", selectedID(m, domain.StepBase))
}

func TestAdvanceResetsCursorWithoutPick(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = press(t, m, "j", "enter", "n")
	assert.Equal(t, 0, m.cursor)
}

func TestReset(t *testing.T) {
	m, j := newTestModel(t, Options{})

	m = press(t, m, "enter", "n", "enter", "n", "enter", "n")
	require.True(t, m.ShowingSummary())

	m = press(t, m, "r")
	assert.False(t, m.ShowingSummary())
	assert.Equal(t, engine.New(), m.State())
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, m.reference)
	assert.Equal(t, "reset", j.actions[len(j.actions)-1])

	// Reset also works in the middle of the wizard.
	m = press(t, m, "enter", "n", "r")
	assert.Equal(t, engine.New(), m.State())
}

func TestSummaryBackReturnsToLastStep(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = resize(t, m, 100, 40)

	m = press(t, m, "enter", "n", "enter", "n", "enter", "n")
	require.True(t, m.ShowingSummary())
	assert.True(t, m.keys.Back.Enabled())
	assert.Equal(t, "edit", m.keys.Back.Help().Desc)

	m = press(t, m, "b")
	assert.False(t, m.ShowingSummary())
	assert.Equal(t, engine.LastStep, m.State().StepIndex())
	assert.True(t, m.State().Complete())
}

func TestSummaryIgnoresWizardKeys(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = press(t, m, "enter", "n", "enter", "n", "enter", "n")
	before := m.State()

	m = press(t, m, "enter", "n")
	assert.True(t, m.ShowingSummary())
	assert.Equal(t, before, m.State())
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			_, cmd := m.Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestStaleSelectionIsMarked(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = resize(t, m, 100, 40)

	// veg -> salmon, then switch the base to greens which does not offer salmon.
	m = press(t, m, "enter", "n", "enter", "b", "j", "j", "enter")
	require.Equal(t, "greens", selectedID(m, domain.StepBase))
	assert.Equal(t, []domain.StepKey{domain.StepOption}, m.State().Stale(m.catalog))
	assert.Contains(t, m.View(), "⚠")

	m = press(t, m, "n")
	assert.Equal(t, 1, m.State().StepIndex())
	assert.True(t, m.currentStale())
	assert.NotContains(t, itemIDs(m.eligible()), "salmon")
	assert.Contains(t, m.View(), "Sous Vide Salmon is not offered with your base pick")

	// Without strict mode the stale pick does not block.
	assert.True(t, m.keys.Next.Enabled())
	m = press(t, m, "n")
	assert.Equal(t, 2, m.State().StepIndex())
}

func TestStrictBlocksStalePick(t *testing.T) {
	m, j := newTestModel(t, Options{Strict: true})
	m = resize(t, m, 100, 40)

	m = press(t, m, "enter", "n", "enter", "b", "j", "j", "enter", "n")
	require.Equal(t, 1, m.State().StepIndex())
	require.True(t, m.currentStale())

	m = press(t, m, "n")
	assert.Equal(t, 1, m.State().StepIndex(), "stale pick blocks next")
	assert.Contains(t, m.View(), "Change the picks marked ⚠ to continue.")

	// chicken is the first option offered with greens.
	m = press(t, m, "enter")
	assert.Equal(t, "chicken", selectedID(m, domain.StepOption))
	assert.Contains(t, j.actions, "select chicken")

	m = press(t, m, "n")
	assert.Equal(t, 2, m.State().StepIndex())
}

func TestStrictCompleteNeedsNoStalePicks(t *testing.T) {
	m, _ := newTestModel(t, Options{Strict: true})

	// veg, salmon, yuzu; then swap the option to tofu which is unrestricted.
	m = press(t, m, "enter", "n", "enter", "n", "enter", "b", "j", "enter", "n")
	require.Equal(t, "tofu", selectedID(m, domain.StepOption))
	assert.Empty(t, m.State().Stale(m.catalog))

	m = press(t, m, "n")
	assert.True(t, m.ShowingSummary())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = resize(t, m, 100, 40)

	view := m.View()
	assert.Contains(t, view, "JOICE")
	assert.Contains(t, view, "Step 1 of 3")
	assert.Contains(t, view, "Choose Your Base")
	assert.Contains(t, view, "Start with a vegetable mix or wholegrain")
	assert.Contains(t, view, "Garden Vegetables")
	assert.Contains(t, view, "€3.50")
	assert.Contains(t, view, "120 kcal")
	assert.Contains(t, view, "Total:")
	assert.Contains(t, view, "€0.00")
	assert.Contains(t, view, "select")

	m = press(t, m, "enter", "n")
	view = m.View()
	assert.Contains(t, view, "Step 2 of 3")
	assert.Contains(t, view, "Add Your Protein")
	assert.Contains(t, view, "✓ Base")
	assert.NotContains(t, view, "Free-Range Chicken", "chicken is not offered with veg")
}

func TestSummaryView(t *testing.T) {
	m, _ := newTestModel(t, Options{Currency: "$"})
	m = resize(t, m, 100, 40)

	m = press(t, m, "enter", "n", "enter", "n", "j", "enter", "n")
	require.True(t, m.ShowingSummary())
	ref := m.reference
	require.NotEmpty(t, ref)

	view := m.View()
	assert.Contains(t, view, "Order summary")
	assert.Contains(t, view, "Your Meal")
	assert.Contains(t, view, "$10.75")

	m = resize(t, m, 120, 50)
	assert.Equal(t, ref, m.reference, "reference survives a resize")
}

func TestRendererReady(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	ready, ok := msg.(rendererReadyMsg)
	require.True(t, ok)
	assert.NotNil(t, ready.renderer)

	updated, _ = m.Update(msg)
	m = updated.(Model)
	assert.NotNil(t, m.renderer)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 10, len([]rune(stripANSI(progressBar(1, 3, 10)))))
	assert.Equal(t, strings.Repeat("█", 3)+strings.Repeat("░", 6), stripANSI(progressBar(1, 3, 9)))
	assert.Equal(t, strings.Repeat("█", 9), stripANSI(progressBar(3, 3, 9)))
	assert.Empty(t, progressBar(1, 0, 9))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		indent   string
		maxLines int
		want     string
	}{
		{"fits", "short text", 20, "", 0, "short text"},
		{"wraps", "one two three four", 9, "", 0, "one two\nthree\nfour"},
		{"indent", "one two three", 7, "  ", 0, "one two\n  three"},
		{"max lines", "one two three four", 9, "", 2, "one two\nth..."},
		{"empty", "   ", 10, "", 0, ""},
		{"no width", "keep as is", 0, "", 0, "keep as is"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapText(tc.text, tc.width, tc.indent, tc.maxLines))
		})
	}
}

func TestPadBetween(t *testing.T) {
	assert.Equal(t, "ab    cd", padBetween("ab", "cd", 8))
	assert.Equal(t, "abc def", padBetween("abc", "def", 4), "at least one space")
}

func itemIDs(items []*domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// stripANSI drops escape sequences so assertions work with any color profile.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
