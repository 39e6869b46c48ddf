package engine

import (
	"fmt"

	"github.com/alexander-akhmetov/joice/internal/domain"
)

// ActionKind identifies a wizard transition.
type ActionKind int

const (
	// ActionSelect stores Action.Item in the current step's slot.
	ActionSelect ActionKind = iota
	// ActionAdvance moves to the next step.
	ActionAdvance
	// ActionRetreat moves to the previous step.
	ActionRetreat
	// ActionReset starts a new meal.
	ActionReset
)

// String returns the lowercase action name.
func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a single user-driven transition.
type Action struct {
	Kind ActionKind
	Item *domain.Item // ActionSelect only
}

// Select builds an ActionSelect.
func Select(item *domain.Item) Action { return Action{Kind: ActionSelect, Item: item} }

// Advance builds an ActionAdvance.
func Advance() Action { return Action{Kind: ActionAdvance} }

// Retreat builds an ActionRetreat.
func Retreat() Action { return Action{Kind: ActionRetreat} }

// Reset builds an ActionReset.
func Reset() Action { return Action{Kind: ActionReset} }

// String describes the action for logs.
func (a Action) String() string {
	if a.Kind == ActionSelect && a.Item != nil {
		return fmt.Sprintf("select %s", a.Item.ID)
	}
	return a.Kind.String()
}

// Apply returns the state produced by applying a to s. Unknown action kinds
// leave the state unchanged.
func Apply(s State, a Action) State {
	switch a.Kind {
	case ActionSelect:
		return s.Select(a.Item)
	case ActionAdvance:
		return s.Advance()
	case ActionRetreat:
		return s.Retreat()
	case ActionReset:
		return s.Reset()
	default:
		return s
	}
}
