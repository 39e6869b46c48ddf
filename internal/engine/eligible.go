package engine

import (
	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
)

// Eligible returns the items selectable at stepIndex given the current
// selections. The first step is never filtered. Later steps are filtered by
// the previous step's selected item when it carries a restriction; IDs in the
// restriction that do not exist are skipped. Catalog order is preserved and
// an out-of-range index yields nil.
func Eligible(stepIndex int, sel domain.Selections, cat *catalog.Catalog) []*domain.Item {
	step, ok := domain.StepAt(stepIndex)
	if !ok || cat == nil {
		return nil
	}
	all := cat.Collection(step.Key)
	if stepIndex == 0 {
		return all
	}

	prev, _ := domain.StepAt(stepIndex - 1)
	upstream := sel.Get(prev.Key)
	if upstream == nil || !upstream.CompatibleNext.Restricts() {
		return all
	}

	out := make([]*domain.Item, 0, len(all))
	for _, it := range all {
		if upstream.CompatibleNext.Allows(it.ID) {
			out = append(out, it)
		}
	}
	return out
}
