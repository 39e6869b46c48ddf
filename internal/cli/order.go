package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/joice/internal/summary"
)

var (
	orderBase      string
	orderOption    string
	orderCondiment string
	orderJSON      bool
	orderCatalog   string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Compose a meal without the wizard and print its summary",
	Long: `Compose a meal from item IDs and print the order summary.

Each pick must be offered with the one before it, exactly as in the wizard
with --strict. Unknown or unavailable IDs are reported as errors.

With --json the summary is printed as JSON:
  {"reference": "...", "complete": true, "items": {...}, "total": "10.75", ...}`,
	Example: `  joice order --base veg --option salmon --condiment pesto
  joice order --base grains --option chicken --condiment seeds --json`,
	Args: cobra.NoArgs,
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().StringVar(&orderBase, "base", "", "Base item ID")
	orderCmd.Flags().StringVar(&orderOption, "option", "", "Protein item ID")
	orderCmd.Flags().StringVar(&orderCondiment, "condiment", "", "Topping item ID")
	orderCmd.Flags().BoolVar(&orderJSON, "json", false, "Print the summary as JSON")
	orderCmd.Flags().StringVarP(&orderCatalog, "catalog", "c", "", "Catalog file (YAML or JSON, default: built-in menu)")

	_ = orderCmd.MarkFlagRequired("base")
	_ = orderCmd.MarkFlagRequired("option")
	_ = orderCmd.MarkFlagRequired("condiment")
}

func runOrder(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadCatalog(orderCatalog, false)
	if err != nil {
		return err
	}

	s, err := buildState(cat, []string{orderBase, orderOption, orderCondiment})
	if err != nil {
		return err
	}
	if !s.Complete() {
		return fmt.Errorf("incomplete order: --base, --option and --condiment must not be empty")
	}

	sum := summary.Build(s, cat, summary.Options{Currency: cfg.Currency})

	w := newCommandWriter(cmd, cfg.Theme)
	if orderJSON {
		data, err := sum.JSON()
		if err != nil {
			return fmt.Errorf("encode order: %w", err)
		}
		w.Printf("%s", data)
		return nil
	}
	w.Markdown(sum.Markdown(), sum.Text())
	return nil
}
