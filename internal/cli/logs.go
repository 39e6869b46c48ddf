package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/joice/internal/config"
	"github.com/alexander-akhmetov/joice/internal/progress"
)

var (
	logsLimit int
	logsShow  bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List session journals",
	Long: `List session journals, newest first.

Each wizard session writes a journal of the picks made, completed meals and
resets. With --show the latest journal is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 10, "Maximum number of journals to list (0 = all)")
	logsCmd.Flags().BoolVar(&logsShow, "show", false, "Print the latest journal")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dir := cfg.JournalDir()
	w := newCommandWriter(cmd, cfg.Theme)

	if logsShow {
		latest, err := progress.FindLatestLog(dir, "")
		if err != nil {
			return fmt.Errorf("find journals: %w", err)
		}
		if latest == nil {
			w.Printf("No journals in %s\n", dir)
			return nil
		}
		data, err := os.ReadFile(latest.Path)
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}
		w.Printf("%s", data)
		return nil
	}

	logs, err := progress.FindLogs(dir, "")
	if err != nil {
		return fmt.Errorf("find journals: %w", err)
	}
	if len(logs) == 0 {
		w.Printf("No journals in %s\n", dir)
		return nil
	}
	if logsLimit > 0 && len(logs) > logsLimit {
		logs = logs[:logsLimit]
	}

	for _, lf := range logs {
		w.Printf("%s  %-12s %8s  %s\n",
			lf.Timestamp.Format("2006-01-02 15:04:05"),
			lf.SessionID,
			formatSize(lf.Size),
			w.Dim(lf.Path))
	}
	return nil
}
