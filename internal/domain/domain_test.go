package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAt(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantKey StepKey
		wantOK  bool
	}{
		{"base", 0, StepBase, true},
		{"option", 1, StepOption, true},
		{"condiment", 2, StepCondiment, true},
		{"negative", -1, "", false},
		{"past end", 3, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			step, ok := StepAt(tc.index)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantKey, step.Key)
		})
	}
}

func TestStepsIsACopy(t *testing.T) {
	s := Steps()
	require.Len(t, s, StepCount)
	s[0].Title = "changed"

	first, _ := StepAt(0)
	assert.Equal(t, "Choose Your Base", first.Title)
}

func TestStepIndex(t *testing.T) {
	assert.Equal(t, 0, StepIndex(StepBase))
	assert.Equal(t, 2, StepIndex(StepCondiment))
	assert.Equal(t, -1, StepIndex("dessert"))
}

func TestRestriction(t *testing.T) {
	tests := []struct {
		name      string
		r         Restriction
		id        string
		restricts bool
		allows    bool
	}{
		{"nil allows everything", nil, "x", false, true},
		{"empty allows everything", Restriction{}, "x", false, true},
		{"member allowed", Restriction{"a", "b"}, "b", true, true},
		{"non-member rejected", Restriction{"a", "b"}, "c", true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.restricts, tc.r.Restricts())
			assert.Equal(t, tc.allows, tc.r.Allows(tc.id))
		})
	}
}

func TestItem_NutritionOrZero(t *testing.T) {
	var nilItem *Item
	assert.Equal(t, Nutrition{}, nilItem.NutritionOrZero())
	assert.Equal(t, Nutrition{}, (&Item{ID: "plain"}).NutritionOrZero())

	n := &Nutrition{Calories: 10, Protein: 1, Carbs: 2, Fat: 3}
	assert.Equal(t, *n, (&Item{Nutrition: n}).NutritionOrZero())
}

func TestSelections_WithDoesNotMutateReceiver(t *testing.T) {
	base := &Item{ID: "veg"}
	var s Selections

	next := s.With(StepBase, base)

	assert.Nil(t, s.Base)
	assert.Same(t, base, next.Base)
	assert.Same(t, base, next.Get(StepBase))
	assert.Nil(t, next.Get(StepOption))
	assert.Nil(t, next.Get("unknown"))
}

func TestSelections_ItemsAndComplete(t *testing.T) {
	a, b, c := &Item{ID: "a"}, &Item{ID: "b"}, &Item{ID: "c"}

	s := Selections{Option: b}
	assert.Equal(t, []*Item{b}, s.Items())
	assert.False(t, s.Complete())

	s = Selections{Base: a, Option: b, Condiment: c}
	assert.Equal(t, []*Item{a, b, c}, s.Items())
	assert.True(t, s.Complete())

	assert.Empty(t, Selections{}.Items())
}

func TestNutrition_Add(t *testing.T) {
	got := Nutrition{Calories: 1, Protein: 2, Carbs: 3, Fat: 4}.Add(Nutrition{Calories: 10, Protein: 20, Carbs: 30, Fat: 40})
	assert.Equal(t, Nutrition{Calories: 11, Protein: 22, Carbs: 33, Fat: 44}, got)
}
