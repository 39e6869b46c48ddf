package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/joice/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage joice configuration",
	Long:  `View and manage joice configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration and the sources it was built from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/joice/config.yaml)
  3. Environment (JOICE_CATALOG, JOICE_CURRENCY, JOICE_STRICT_SELECTION,
     JOICE_JOURNAL, JOICE_LOGS_DIR, JOICE_THEME)
  4. Local config (.joice/config.yaml)
  5. CLI flags (highest precedence)`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "# Joice Configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Fprintf(out, "  - %s\n", src)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Directories")
	fmt.Fprintf(out, "  Global config: %s\n", cfg.ConfigDir())
	if cfg.LocalDir() != "" {
		fmt.Fprintf(out, "  Local config:  %s\n", cfg.LocalDir())
	} else {
		fmt.Fprintf(out, "  Local config:  (none detected)\n")
	}
	fmt.Fprintf(out, "  Journals:      %s\n", cfg.JournalDir())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Menu Settings")
	if cfg.Catalog != "" {
		fmt.Fprintf(out, "  catalog:          %s\n", cfg.Catalog)
	} else {
		fmt.Fprintf(out, "  catalog:          (built-in)\n")
	}
	fmt.Fprintf(out, "  currency:         %s\n", cfg.Currency)
	fmt.Fprintf(out, "  strict_selection: %t\n", cfg.StrictSelection)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Session Settings")
	fmt.Fprintf(out, "  journal:  %t\n", cfg.Journal)
	if cfg.LogsDir != "" {
		fmt.Fprintf(out, "  logs_dir: %s\n", cfg.LogsDir)
	} else {
		fmt.Fprintf(out, "  logs_dir: (default)\n")
	}
	fmt.Fprintf(out, "  theme:    %s\n", cfg.Theme)

	return nil
}
