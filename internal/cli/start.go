package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexander-akhmetov/joice/internal/progress"
	"github.com/alexander-akhmetov/joice/internal/timing"
	"github.com/alexander-akhmetov/joice/internal/tui"
)

var (
	startCatalog string
	startStrict  bool
)

// errNoTerminal is returned when the wizard is started without a terminal.
var errNoTerminal = errors.New(`the wizard needs an interactive terminal; use "joice order" in scripts`)

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the interactive meal wizard",
	Long: `Start the interactive meal wizard.

Steps:
1. Choose a base
2. Add a protein offered with that base
3. Top it off with a condiment offered with that protein

Going back to an earlier step keeps later picks. When an earlier change
makes a later pick unavailable it is marked with ⚠; with --strict you have to
change it before finishing the meal.

Every action is recorded in a session journal unless journal is disabled
in config.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	registerStartFlags(startCmd)
}

// registerStartFlags binds the wizard flags. The root command shares them so
// that a bare "joice" behaves like "joice start".
func registerStartFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&startCatalog, "catalog", "c", "", "Catalog file (YAML or JSON, default: built-in menu)")
	cmd.Flags().BoolVar(&startStrict, "strict", false, "Only allow picks offered with the previous step")
}

func runStart(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadCatalog(startCatalog, startStrict)
	if err != nil {
		return err
	}

	if !isInteractive() {
		return errNoTerminal
	}

	t := tui.New(cat, tui.Options{
		Currency: cfg.Currency,
		Strict:   cfg.StrictSelection,
		Theme:    cfg.Theme,
	})

	var logger *progress.Logger
	if cfg.Journal {
		logger, err = progress.NewLogger(progress.Config{
			LogsDir: cfg.JournalDir(),
			Catalog: cat.Source(),
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: session journal disabled: %v\n", err)
		} else {
			t.SetProgressLogger(logger)
			defer logger.Close()
		}
	}

	timing.Log("wizard ready")
	if _, err := t.Run(); err != nil {
		return err
	}

	if logger != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Session journal: %s\n", logger.Path())
	}
	return nil
}
