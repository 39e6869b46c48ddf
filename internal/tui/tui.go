// Package tui implements the interactive meal wizard using bubbletea.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/debug"
	"github.com/alexander-akhmetov/joice/internal/progress"
)

// TUI runs the wizard in the terminal's alternate screen.
type TUI struct {
	model          Model
	progressLogger *progress.Logger
	programOpts    []tea.ProgramOption
}

// New creates a TUI over cat.
func New(cat *catalog.Catalog, opts Options) *TUI {
	return &TUI{
		model:       NewModel(cat, opts),
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// SetProgressLogger sets the session journal. The TUI records every action
// in it and writes the exit footer when Run returns; closing it stays with
// the caller.
func (t *TUI) SetProgressLogger(logger *progress.Logger) {
	t.progressLogger = logger
	if logger != nil {
		t.model.SetJournal(logger)
	}
}

// Run blocks until the user quits and returns the final model.
func (t *TUI) Run() (Model, error) {
	debug.Logf("tui: starting program")
	program := tea.NewProgram(t.model, t.programOpts...)

	final, err := program.Run()
	if err != nil {
		if t.progressLogger != nil {
			t.progressLogger.Errorf("tui: %v", err)
			t.progressLogger.Exit("error")
		}
		return t.model, fmt.Errorf("run tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return t.model, fmt.Errorf("run tui: unexpected model %T", final)
	}
	if t.progressLogger != nil {
		t.progressLogger.Exit("quit")
	}
	return m, nil
}
