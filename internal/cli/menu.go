package cli

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

var (
	menuStep    string
	menuBase    string
	menuOption  string
	menuCatalog string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List the items offered at a step",
	Long: `List the items offered at a step given the earlier picks.

Without --step the listing is for the step after the last pick given:
bases with no picks, proteins with --base, toppings with --base and --option.`,
	Example: `  joice menu
  joice menu --base veg
  joice menu --step condiment --base veg --option salmon`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

var menuDiffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare two catalogs",
	Long: `Show a unified diff between two catalog files.

Both catalogs are normalized first, so only changes to items, prices,
nutrition and compatibility show up, not formatting or key order.`,
	Args: cobra.ExactArgs(2),
	RunE: runMenuDiff,
}

func init() {
	menuCmd.Flags().StringVarP(&menuStep, "step", "s", "", "Step to list: base, option or condiment")
	menuCmd.Flags().StringVar(&menuBase, "base", "", "Base item ID")
	menuCmd.Flags().StringVar(&menuOption, "option", "", "Protein item ID")
	menuCmd.Flags().StringVarP(&menuCatalog, "catalog", "c", "", "Catalog file (YAML or JSON, default: built-in menu)")

	menuCmd.AddCommand(menuDiffCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadCatalog(menuCatalog, false)
	if err != nil {
		return err
	}

	s, err := buildState(cat, []string{menuBase, menuOption})
	if err != nil {
		return err
	}

	stepIndex := s.StepIndex()
	if menuStep != "" {
		stepIndex = domain.StepIndex(domain.StepKey(menuStep))
		if stepIndex < 0 {
			return fmt.Errorf("unknown step %q (want base, option or condiment)", menuStep)
		}
	}
	step, _ := domain.StepAt(stepIndex)

	w := newCommandWriter(cmd, cfg.Theme)
	w.Title(fmt.Sprintf("%s (%s)", step.Title, step.Key))

	items := engine.Eligible(stepIndex, s.Selections(), cat)
	if len(items) == 0 {
		w.Printf("  %s\n", w.Dim("nothing matches the earlier picks"))
		return nil
	}

	idWidth := 0
	for _, it := range items {
		idWidth = max(idWidth, len(it.ID))
	}
	for _, it := range items {
		line := fmt.Sprintf("  %-*s  %s  %s", idWidth, it.ID, w.Price(cfg.Currency+it.Price.String()), it.Name)
		if it.Nutrition != nil {
			line += w.Dim(fmt.Sprintf(" · %.0f kcal", it.Nutrition.Calories))
		}
		w.Printf("%s\n", line)
	}
	return nil
}

func runMenuDiff(cmd *cobra.Command, args []string) error {
	oldCat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}
	newCat, err := catalog.Load(args[1])
	if err != nil {
		return err
	}

	diff := udiff.Unified(args[0], args[1], catalogListing(oldCat), catalogListing(newCat))

	w := newCommandWriter(cmd, "dark")
	if diff == "" {
		w.Printf("%s\n", w.Dim("catalogs are equivalent"))
		return nil
	}
	w.Diff(diff)
	return nil
}

// catalogListing renders cat as stable text for diffing: one block per item,
// in catalog order, with every field on its own line.
func catalogListing(cat *catalog.Catalog) string {
	var b strings.Builder
	for _, step := range domain.Steps() {
		for _, it := range cat.Collection(step.Key) {
			fmt.Fprintf(&b, "%s %s\n", step.Key, it.ID)
			fmt.Fprintf(&b, "  name: %s\n", it.Name)
			fmt.Fprintf(&b, "  price: %s\n", it.Price)
			if it.CompatibleNext.Restricts() {
				fmt.Fprintf(&b, "  next: %s\n", strings.Join(it.CompatibleNext, ", "))
			} else {
				b.WriteString("  next: any\n")
			}
			if n := it.Nutrition; n != nil {
				fmt.Fprintf(&b, "  nutrition: %g kcal, %g protein, %g carbs, %g fat\n",
					n.Calories, n.Protein, n.Carbs, n.Fat)
			} else {
				b.WriteString("  nutrition: none\n")
			}
			if it.Description != "" {
				fmt.Fprintf(&b, "  description: %s\n", it.Description)
			}
		}
	}
	return b.String()
}
