// Package catalog loads and validates the static collections of selectable
// items: bases, options and condiments. A catalog is read once at startup
// and treated as immutable afterwards.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexander-akhmetov/joice/internal/debug"
	"github.com/alexander-akhmetov/joice/internal/domain"
)

//go:embed defaults/catalog.yaml
var defaultsFS embed.FS

var (
	// ErrInvalid is returned when a catalog fails validation.
	ErrInvalid = errors.New("invalid catalog")
	// ErrUnknownItem is returned by Lookup when no item has the given ID.
	ErrUnknownItem = errors.New("unknown item")
)

// Catalog holds the three ordered item collections.
type Catalog struct {
	Bases      []domain.Item
	Options    []domain.Item
	Condiments []domain.Item

	source string
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Collection returns the items for a step, in catalog order. The returned
// pointers reference the catalog's own items.
func (c *Catalog) Collection(key domain.StepKey) []*domain.Item {
	var items []domain.Item
	switch key {
	case domain.StepBase:
		items = c.Bases
	case domain.StepOption:
		items = c.Options
	case domain.StepCondiment:
		items = c.Condiments
	default:
		return nil
	}
	out := make([]*domain.Item, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// Lookup finds an item by ID within a step's collection.
func (c *Catalog) Lookup(key domain.StepKey, id string) (*domain.Item, error) {
	for _, it := range c.Collection(key) {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrUnknownItem, key, id)
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	data, err := defaultsFS.ReadFile("defaults/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	c.source = "embedded"
	return c, nil
}

// Load reads a catalog from path. Files ending in .json are parsed as JSON,
// everything else as YAML. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied catalog file
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c *Catalog
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = ParseJSON(data)
	} else {
		c, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	c.source = path

	for _, w := range c.Warnings() {
		debug.Logf("catalog: %s", w)
	}
	return c, nil
}

// Warnings lists restriction entries that reference IDs missing from the
// next collection. Such entries are ignored by filtering.
func (c *Catalog) Warnings() []string {
	var warnings []string
	check := func(from domain.StepKey, items []domain.Item, next []domain.Item, nextKey domain.StepKey) {
		known := make(map[string]bool, len(next))
		for _, it := range next {
			known[it.ID] = true
		}
		for _, it := range items {
			for _, id := range it.CompatibleNext {
				if !known[id] {
					warnings = append(warnings, fmt.Sprintf("%s %q lists unknown %s %q", from, it.ID, nextKey, id))
				}
			}
		}
	}
	check(domain.StepBase, c.Bases, c.Options, domain.StepOption)
	check(domain.StepOption, c.Options, c.Condiments, domain.StepCondiment)
	return warnings
}
