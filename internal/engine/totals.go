package engine

import "github.com/alexander-akhmetov/joice/internal/domain"

// TotalPrice sums the prices of the selected items. Empty slots add nothing.
func TotalPrice(sel domain.Selections) domain.Money {
	var total domain.Money
	for _, it := range sel.Items() {
		total += it.Price
	}
	return total
}

// TotalNutrition sums nutrition over the selected items. Items without
// nutrition data contribute zero.
func TotalNutrition(sel domain.Selections) domain.Nutrition {
	var total domain.Nutrition
	for _, it := range sel.Items() {
		total = total.Add(it.NutritionOrZero())
	}
	return total
}
