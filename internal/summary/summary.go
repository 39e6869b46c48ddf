// Package summary builds the order summary shown when a meal is complete:
// one line per step, the total price and the nutrition facts. It renders the
// same data as Markdown (for glamour), plain text and JSON.
package summary

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

// Line is one step of the summary. Item is nil for an empty slot.
type Line struct {
	Step  domain.Step
	Item  *domain.Item
	Stale bool // item is no longer eligible under the upstream picks
}

// Summary is a read-only view of a wizard state.
type Summary struct {
	Reference string
	Currency  string
	Lines     []Line
	Total     domain.Money
	Nutrition domain.Nutrition
	Complete  bool
}

// Options controls how a summary is built.
type Options struct {
	Currency  string
	Reference string // generated when empty
}

// Build summarizes s. cat is used to mark stale picks and may be nil.
func Build(s engine.State, cat *catalog.Catalog, opts Options) Summary {
	ref := opts.Reference
	if ref == "" {
		ref = uuid.NewString()
	}

	var stale []domain.StepKey
	if cat != nil {
		stale = s.Stale(cat)
	}

	sel := s.Selections()
	sum := Summary{
		Reference: ref,
		Currency:  opts.Currency,
		Total:     engine.TotalPrice(sel),
		Nutrition: engine.TotalNutrition(sel),
		Complete:  s.Complete(),
	}
	for _, step := range domain.Steps() {
		line := Line{Step: step, Item: sel.Get(step.Key)}
		for _, k := range stale {
			if k == step.Key {
				line.Stale = true
			}
		}
		sum.Lines = append(sum.Lines, line)
	}
	return sum
}

// Price formats m with the summary's currency symbol.
func (s Summary) Price(m domain.Money) string {
	return s.Currency + m.String()
}

// Markdown renders the summary for glamour.
func (s Summary) Markdown() string {
	var b strings.Builder

	b.WriteString("# Your Meal\n\n")
	if !s.Complete {
		b.WriteString("_Not every step has a selection yet._\n\n")
	}

	b.WriteString("| | Item | Price |\n")
	b.WriteString("|---|---|---:|\n")
	for _, l := range s.Lines {
		if l.Item == nil {
			fmt.Fprintf(&b, "| **%s** | _none_ | |\n", l.Step.Label)
			continue
		}
		name := escapeCell(l.Item.Name)
		if l.Stale {
			name += " ⚠"
		}
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", l.Step.Label, name, s.Price(l.Item.Price))
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** |\n\n", s.Price(s.Total))

	b.WriteString("## Nutrition Facts\n\n")
	fmt.Fprintf(&b, "- Calories: %s kcal\n", formatAmount(s.Nutrition.Calories))
	fmt.Fprintf(&b, "- Protein: %sg\n", formatAmount(s.Nutrition.Protein))
	fmt.Fprintf(&b, "- Carbs: %sg\n", formatAmount(s.Nutrition.Carbs))
	fmt.Fprintf(&b, "- Fat: %sg\n\n", formatAmount(s.Nutrition.Fat))

	if s.hasStale() {
		b.WriteString("⚠ marks a pick that no longer matches the earlier steps.\n\n")
	}
	fmt.Fprintf(&b, "Reference: `%s`\n", s.Reference)
	return b.String()
}

// Text renders the summary as aligned plain text.
func (s Summary) Text() string {
	labelW := len("Total")
	nameW := 0
	for _, l := range s.Lines {
		labelW = max(labelW, lipgloss.Width(l.Step.Label))
		if l.Item != nil {
			nameW = max(nameW, lipgloss.Width(l.Item.Name)+2)
		}
	}
	labelCol := lipgloss.NewStyle().Width(labelW + 2)
	nameCol := lipgloss.NewStyle().Width(nameW + 2)

	var b strings.Builder
	for _, l := range s.Lines {
		name, price := "-", ""
		if l.Item != nil {
			name = l.Item.Name
			if l.Stale {
				name += " !"
			}
			price = s.Price(l.Item.Price)
		}
		b.WriteString(strings.TrimRight(labelCol.Render(l.Step.Label)+nameCol.Render(name)+price, " "))
		b.WriteString("\n")
	}
	b.WriteString(labelCol.Render("Total") + nameCol.Render("") + s.Price(s.Total) + "\n")
	fmt.Fprintf(&b, "\nNutrition: %s kcal, protein %sg, carbs %sg, fat %sg\n",
		formatAmount(s.Nutrition.Calories),
		formatAmount(s.Nutrition.Protein),
		formatAmount(s.Nutrition.Carbs),
		formatAmount(s.Nutrition.Fat))
	fmt.Fprintf(&b, "Reference: %s\n", s.Reference)
	return b.String()
}

// JSON renders the summary as an indented JSON order document.
// Prices are decimal strings so they survive float parsing unchanged.
func (s Summary) JSON() ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, v)
	}

	set("reference", s.Reference)
	set("complete", s.Complete)
	for _, l := range s.Lines {
		key := "items." + string(l.Step.Key)
		if l.Item == nil {
			set(key, nil)
			continue
		}
		set(key+".id", l.Item.ID)
		set(key+".name", l.Item.Name)
		set(key+".price", l.Item.Price.String())
		if l.Stale {
			set(key+".stale", true)
		}
	}
	set("total", s.Total.String())
	if s.Currency != "" {
		set("currency", s.Currency)
	}
	set("nutrition", s.Nutrition)
	if err != nil {
		return nil, fmt.Errorf("build order json: %w", err)
	}
	return pretty.Pretty(doc), nil
}

func (s Summary) hasStale() bool {
	for _, l := range s.Lines {
		if l.Stale {
			return true
		}
	}
	return false
}

// formatAmount prints nutrition values to one decimal place, without
// trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
