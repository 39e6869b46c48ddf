// Package domain defines the shared model types used across joice:
// Item, Nutrition, Step, Selections and their helper methods.
package domain

// StepKey identifies one of the three wizard steps.
type StepKey string

const (
	StepBase      StepKey = "base"
	StepOption    StepKey = "option"
	StepCondiment StepKey = "condiment"
)

// Step is a fixed stage of the wizard with its display text.
type Step struct {
	Key      StepKey
	Title    string
	Subtitle string
	// Label is the short name used on the order summary.
	Label string
}

// StepCount is the number of steps in the wizard.
const StepCount = 3

var steps = [StepCount]Step{
	{Key: StepBase, Title: "Choose Your Base", Subtitle: "Start with a vegetable mix or wholegrain", Label: "Base"},
	{Key: StepOption, Title: "Add Your Protein", Subtitle: "Pick a fish, meat, or vegetarian option", Label: "Protein"},
	{Key: StepCondiment, Title: "Top It Off", Subtitle: "Finish with a sauce or crunch", Label: "Topping"},
}

// Steps returns the ordered wizard steps.
func Steps() []Step {
	out := make([]Step, StepCount)
	copy(out, steps[:])
	return out
}

// StepAt returns the step at index i, or false if i is out of range.
func StepAt(i int) (Step, bool) {
	if i < 0 || i >= StepCount {
		return Step{}, false
	}
	return steps[i], true
}

// StepIndex returns the index of the step with the given key, or -1.
func StepIndex(key StepKey) int {
	for i, s := range steps {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Nutrition holds per-item or aggregate nutrition values.
type Nutrition struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Add returns the elementwise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// Restriction is the optional set of next-step item IDs an item is
// compatible with. A nil or empty Restriction does not restrict.
type Restriction []string

// Restricts reports whether the restriction is present.
func (r Restriction) Restricts() bool {
	return len(r) > 0
}

// Allows reports whether id passes the restriction.
func (r Restriction) Allows(id string) bool {
	if !r.Restricts() {
		return true
	}
	for _, allowed := range r {
		if allowed == id {
			return true
		}
	}
	return false
}

// Item is a single selectable catalog entry.
type Item struct {
	ID          string
	Name        string
	Description string
	// Image is an optional asset name carried from the catalog.
	Image string
	Price Money
	// Nutrition is nil when the catalog entry has no nutrition data.
	Nutrition *Nutrition
	// CompatibleNext restricts which items of the next step are eligible.
	CompatibleNext Restriction
}

// NutritionOrZero returns the item's nutrition, or zero values when absent.
func (i *Item) NutritionOrZero() Nutrition {
	if i == nil || i.Nutrition == nil {
		return Nutrition{}
	}
	return *i.Nutrition
}

// Selections holds the chosen item for each step. A nil slot is unselected.
// Items are shared and must not be modified through a Selections value.
type Selections struct {
	Base      *Item
	Option    *Item
	Condiment *Item
}

// Get returns the item selected for the given step.
func (s Selections) Get(key StepKey) *Item {
	switch key {
	case StepBase:
		return s.Base
	case StepOption:
		return s.Option
	case StepCondiment:
		return s.Condiment
	default:
		return nil
	}
}

// With returns a copy of s with the slot for key set to item.
func (s Selections) With(key StepKey, item *Item) Selections {
	switch key {
	case StepBase:
		s.Base = item
	case StepOption:
		s.Option = item
	case StepCondiment:
		s.Condiment = item
	}
	return s
}

// Items returns the selected items in step order, skipping empty slots.
func (s Selections) Items() []*Item {
	items := make([]*Item, 0, StepCount)
	for _, it := range []*Item{s.Base, s.Option, s.Condiment} {
		if it != nil {
			items = append(items, it)
		}
	}
	return items
}

// Complete returns true when every slot holds an item.
func (s Selections) Complete() bool {
	return s.Base != nil && s.Option != nil && s.Condiment != nil
}
