// Package engine implements the pure selection state machine behind the meal
// wizard. A State is an immutable value: every operation returns a new State
// and leaves the receiver untouched. The engine holds no I/O references; the
// catalog is passed in wherever eligibility matters.
package engine

import (
	"errors"
	"fmt"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
)

// ErrNotEligible is returned by SelectChecked when the item is not in the
// eligible set for the current step.
var ErrNotEligible = errors.New("item not eligible")

// LastStep is the index of the final wizard step.
const LastStep = domain.StepCount - 1

// State is a snapshot of the wizard: the current step index and the three
// selection slots.
type State struct {
	stepIndex  int
	selections domain.Selections
}

// New returns the initial state: first step, nothing selected.
func New() State {
	return State{}
}

// StepIndex returns the current step index (0..LastStep).
func (s State) StepIndex() int {
	return s.stepIndex
}

// Step returns the current step.
func (s State) Step() domain.Step {
	step, _ := domain.StepAt(s.stepIndex)
	return step
}

// Selections returns the current selection slots.
func (s State) Selections() domain.Selections {
	return s.selections
}

// Current returns the item selected at the current step, or nil.
func (s State) Current() *domain.Item {
	return s.selections.Get(s.Step().Key)
}

// Complete reports whether all three slots are filled, regardless of the
// current step index.
func (s State) Complete() bool {
	return s.selections.Complete()
}

// CanAdvance reports whether the current step has a selection. Advance does
// not check this; the shell uses it to enable the Next action.
func (s State) CanAdvance() bool {
	return s.Current() != nil
}

// Select stores item in the slot of the current step. Other slots and the
// step index are unchanged. Eligibility is not checked: changing an earlier
// step never clears or re-validates later selections.
func (s State) Select(item *domain.Item) State {
	s.selections = s.selections.With(s.Step().Key, item)
	return s
}

// SelectChecked is Select with eligibility enforced against cat.
func (s State) SelectChecked(item *domain.Item, cat *catalog.Catalog) (State, error) {
	if item == nil {
		return s, fmt.Errorf("%w: no item", ErrNotEligible)
	}
	for _, it := range Eligible(s.stepIndex, s.selections, cat) {
		if it.ID == item.ID {
			return s.Select(it), nil
		}
	}
	return s, fmt.Errorf("%w: %s %q", ErrNotEligible, s.Step().Key, item.ID)
}

// Advance moves to the next step; it is a no-op on the last step.
func (s State) Advance() State {
	if s.stepIndex < LastStep {
		s.stepIndex++
	}
	return s
}

// Retreat moves to the previous step without clearing the slot being left;
// it is a no-op on the first step.
func (s State) Retreat() State {
	if s.stepIndex > 0 {
		s.stepIndex--
	}
	return s
}

// Reset returns the initial state.
func (s State) Reset() State {
	return New()
}

// Stale returns the downstream steps whose selected item is no longer
// eligible under the upstream selections. Nothing is cleared.
func (s State) Stale(cat *catalog.Catalog) []domain.StepKey {
	var stale []domain.StepKey
	for i := 1; i < domain.StepCount; i++ {
		step, _ := domain.StepAt(i)
		sel := s.selections.Get(step.Key)
		if sel == nil {
			continue
		}
		if !contains(Eligible(i, s.selections, cat), sel.ID) {
			stale = append(stale, step.Key)
		}
	}
	return stale
}

func contains(items []*domain.Item, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
