package catalog

import (
	"fmt"

	"github.com/alexander-akhmetov/joice/internal/domain"
)

// Validate checks structural rules: every collection is non-empty, IDs are
// present and unique within their collection, names are present, and
// prices and nutrition values are non-negative. Restriction entries that
// point at unknown IDs are allowed (see Warnings).
func (c *Catalog) Validate() error {
	collections := []struct {
		key   domain.StepKey
		items []domain.Item
	}{
		{domain.StepBase, c.Bases},
		{domain.StepOption, c.Options},
		{domain.StepCondiment, c.Condiments},
	}

	for _, col := range collections {
		if len(col.items) == 0 {
			return fmt.Errorf("%w: no %s items", ErrInvalid, col.key)
		}
		seen := make(map[string]bool, len(col.items))
		for i, it := range col.items {
			if err := validateItem(it); err != nil {
				return fmt.Errorf("%w: %s[%d]: %v", ErrInvalid, col.key, i, err)
			}
			if seen[it.ID] {
				return fmt.Errorf("%w: %s[%d]: duplicate id %q", ErrInvalid, col.key, i, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return nil
}

func validateItem(it domain.Item) error {
	if it.ID == "" {
		return fmt.Errorf("missing id")
	}
	if it.Name == "" {
		return fmt.Errorf("%q: missing name", it.ID)
	}
	if it.Price < 0 {
		return fmt.Errorf("%q: negative price %s", it.ID, it.Price)
	}
	if n := it.Nutrition; n != nil {
		if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 {
			return fmt.Errorf("%q: negative nutrition value", it.ID)
		}
	}
	return nil
}
