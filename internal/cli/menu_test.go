package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

func TestMenu(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "bases by default",
			args:     []string{"menu"},
			contains: []string{"Choose Your Base (base)", "veg", "€3.50", "Garden Vegetables", "grains", "greens", "120 kcal"},
		},
		{
			name:        "options offered with the base",
			args:        []string{"menu", "--base", "veg"},
			contains:    []string{"Add Your Protein (option)", "salmon", "tofu", "egg"},
			notContains: []string{"chicken", "beef"},
		},
		{
			name:        "condiments offered with the option",
			args:        []string{"menu", "--base", "veg", "--option", "salmon"},
			contains:    []string{"Top It Off (condiment)", "yuzu", "herb-yogurt", "seeds"},
			notContains: []string{"chimichurri", "chili-crunch"},
		},
		{
			name:     "explicit step without picks is unfiltered",
			args:     []string{"menu", "--step", "option"},
			contains: []string{"salmon", "chicken", "beef", "tofu", "egg"},
		},
		{
			name:        "explicit step overrides the implied one",
			args:        []string{"menu", "--step", "base", "--base", "veg"},
			contains:    []string{"Choose Your Base", "grains"},
			notContains: []string{"salmon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)

			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
			assert.NotContains(t, out, "\033[", "no escapes outside a terminal")
		})
	}
}

func TestMenuErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErrIs error
		wantErr   string
	}{
		{name: "unknown base", args: []string{"menu", "--base", "pizza"}, wantErrIs: catalog.ErrUnknownItem},
		{name: "option not offered", args: []string{"menu", "--base", "veg", "--option", "beef"}, wantErrIs: engine.ErrNotEligible},
		{name: "option without base", args: []string{"menu", "--option", "salmon"}, wantErr: "--option needs --base"},
		{name: "unknown step", args: []string{"menu", "--step", "dessert"}, wantErr: `unknown step "dessert"`},
		{name: "positional args", args: []string{"menu", "veg"}, wantErr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)

			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMenuEmptyStep(t *testing.T) {
	setupEnv(t)
	path := writeCatalog(t, "menu.yaml", `
bases:
  - {id: plain, name: Plain, price: 1.00, compatible_next: [ghost]}
options:
  - {id: tofu, name: Tofu, price: 2.00}
condiments:
  - {id: salt, name: Salt, price: 0.10}
`)

	out, err := executeCommand(t, "menu", "--catalog", path, "--base", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing matches the earlier picks")
}

const diffOld = `
bases:
  - id: veg
    name: Garden Vegetables
    price: 3.50
    compatible_next: [salmon]
options:
  - {id: salmon, name: Salmon, price: 6.00}
condiments:
  - {id: pesto, name: Pesto, price: 1.25}
`

func TestMenuDiff(t *testing.T) {
	setupEnv(t)
	oldPath := writeCatalog(t, "old.yaml", diffOld)
	newPath := writeCatalog(t, "new.yaml", strings.Replace(diffOld, "price: 3.50", "price: 3.75", 1))

	out, err := executeCommand(t, "menu", "diff", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, "--- "+oldPath)
	assert.Contains(t, out, "+++ "+newPath)
	assert.Contains(t, out, "-  price: 3.50")
	assert.Contains(t, out, "+  price: 3.75")
	assert.Contains(t, out, "@@")
	assert.NotContains(t, out, "\033[")
}

func TestMenuDiff_Equivalent(t *testing.T) {
	setupEnv(t)
	oldPath := writeCatalog(t, "old.yaml", diffOld)
	// Same items in flow style and JSON: formatting differences do not count.
	newPath := writeCatalog(t, "new.json", `{
  "bases": [{"id": "veg", "name": "Garden Vegetables", "price": 3.5, "compatibleNext": ["salmon"]}],
  "options": [{"id": "salmon", "name": "Salmon", "price": 6}],
  "condiments": [{"id": "pesto", "name": "Pesto", "price": 1.25}]
}`)

	out, err := executeCommand(t, "menu", "diff", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, "catalogs are equivalent")
}

func TestMenuDiff_Errors(t *testing.T) {
	setupEnv(t)
	oldPath := writeCatalog(t, "old.yaml", diffOld)

	_, err := executeCommand(t, "menu", "diff", oldPath)
	require.Error(t, err)

	_, err = executeCommand(t, "menu", "diff", oldPath, "/nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestCatalogListing(t *testing.T) {
	cat, err := catalog.ParseYAML([]byte(`
bases:
  - id: veg
    name: Garden Vegetables
    description: Carrots
    price: 3.50
    nutrition: {calories: 120, protein: 4, carbs: 20, fat: 2.5}
    compatible_next: [salmon, tofu]
options:
  - {id: salmon, name: Salmon, price: 6.00}
condiments:
  - {id: pesto, name: Pesto, price: 1.25}
`))
	require.NoError(t, err)

	want := `base veg
  name: Garden Vegetables
  price: 3.50
  next: salmon, tofu
  nutrition: 120 kcal, 4 protein, 20 carbs, 2.5 fat
  description: Carrots
option salmon
  name: Salmon
  price: 6.00
  next: any
  nutrition: none
condiment pesto
  name: Pesto
  price: 1.25
  next: any
  nutrition: none
`
	assert.Equal(t, want, catalogListing(cat))
}
