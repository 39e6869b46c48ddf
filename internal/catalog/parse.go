package catalog

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/joice/internal/domain"
)

// yamlPrice keeps the literal scalar text so prices are parsed as exact
// decimals rather than through float64.
type yamlPrice struct {
	value domain.Money
	set   bool
}

func (p *yamlPrice) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a number", node.Line)
	}
	m, err := domain.ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	p.value = m
	p.set = true
	return nil
}

type yamlItem struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Image       string            `yaml:"image"`
	Price       yamlPrice         `yaml:"price"`
	Nutrition   *domain.Nutrition `yaml:"nutrition"`

	CompatibleNext []string `yaml:"compatible_next"`
	// Step-specific spellings used by older catalogs.
	CompatibleOptions    []string `yaml:"compatible_options"`
	CompatibleCondiments []string `yaml:"compatible_condiments"`
}

type yamlCatalog struct {
	Bases      []yamlItem `yaml:"bases"`
	Options    []yamlItem `yaml:"options"`
	Condiments []yamlItem `yaml:"condiments"`
}

// ParseYAML parses and validates a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalid, err)
	}

	c := &Catalog{}
	var err error
	if c.Bases, err = convertYAML(raw.Bases, "bases"); err != nil {
		return nil, err
	}
	if c.Options, err = convertYAML(raw.Options, "options"); err != nil {
		return nil, err
	}
	if c.Condiments, err = convertYAML(raw.Condiments, "condiments"); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func convertYAML(in []yamlItem, field string) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(in))
	for i, it := range in {
		if !it.Price.set {
			return nil, fmt.Errorf("%w: %s[%d]: missing price", ErrInvalid, field, i)
		}
		out = append(out, domain.Item{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			Image:          it.Image,
			Price:          it.Price.value,
			Nutrition:      it.Nutrition,
			CompatibleNext: firstNonEmpty(it.CompatibleNext, it.CompatibleOptions, it.CompatibleCondiments),
		})
	}
	return out, nil
}

// ParseJSON parses and validates a JSON catalog. Optional fields are
// detected by presence, so a missing "nutrition" stays absent instead of
// becoming a zero record.
func ParseJSON(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalid)
	}
	root := gjson.ParseBytes(data)

	c := &Catalog{}
	var err error
	if c.Bases, err = convertJSON(root.Get("bases"), "bases"); err != nil {
		return nil, err
	}
	if c.Options, err = convertJSON(root.Get("options"), "options"); err != nil {
		return nil, err
	}
	if c.Condiments, err = convertJSON(root.Get("condiments"), "condiments"); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func convertJSON(list gjson.Result, field string) ([]domain.Item, error) {
	if list.Exists() && !list.IsArray() {
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalid, field)
	}

	var items []domain.Item
	for i, r := range list.Array() {
		price, err := jsonPrice(r.Get("price"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrInvalid, field, i, err)
		}

		it := domain.Item{
			ID:          r.Get("id").String(),
			Name:        r.Get("name").String(),
			Description: r.Get("description").String(),
			Image:       r.Get("image").String(),
			Price:       price,
		}

		if n := r.Get("nutrition"); n.Exists() && n.IsObject() {
			it.Nutrition = &domain.Nutrition{
				Calories: n.Get("calories").Float(),
				Protein:  n.Get("protein").Float(),
				Carbs:    n.Get("carbs").Float(),
				Fat:      n.Get("fat").Float(),
			}
		}

		it.CompatibleNext = firstNonEmpty(
			jsonStrings(r.Get("compatibleNext")),
			jsonStrings(r.Get("compatible_next")),
			jsonStrings(r.Get("compatibleOptions")),
			jsonStrings(r.Get("compatibleCondiments")),
		)
		items = append(items, it)
	}
	return items, nil
}

func jsonPrice(r gjson.Result) (domain.Money, error) {
	switch r.Type {
	case gjson.Number:
		return domain.ParseMoney(r.Raw)
	case gjson.String:
		return domain.ParseMoney(r.Str)
	case gjson.Null:
		if !r.Exists() {
			return 0, fmt.Errorf("missing price")
		}
	}
	return 0, fmt.Errorf("price must be a number, got %s", r.Raw)
}

func jsonStrings(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return true
	})
	return out
}

func firstNonEmpty(lists ...[]string) domain.Restriction {
	for _, l := range lists {
		if len(l) > 0 {
			return domain.Restriction(l)
		}
	}
	return nil
}
