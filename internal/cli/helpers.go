package cli

import (
	"fmt"

	"github.com/alexander-akhmetov/joice/internal/catalog"
	"github.com/alexander-akhmetov/joice/internal/config"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
	"github.com/alexander-akhmetov/joice/internal/timing"
)

// loadCatalog resolves the config with CLI overrides and loads its catalog.
func loadCatalog(catalogPath string, strict bool) (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyCLIFlags(catalogPath, strict)
	timing.Log("config loaded")

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	timing.Log("catalog loaded")
	return cfg, cat, nil
}

// buildState replays item IDs, given in step order, through the wizard.
// Every pick must be offered under the previous one. The replay stops at the
// first empty ID; a pick after a gap is an error.
func buildState(cat *catalog.Catalog, ids []string) (engine.State, error) {
	s := engine.New()
	for i, id := range ids {
		step, ok := domain.StepAt(i)
		if !ok {
			return s, fmt.Errorf("too many picks: %d", len(ids))
		}
		if id == "" {
			for j := i + 1; j < len(ids); j++ {
				if ids[j] != "" {
					later, _ := domain.StepAt(j)
					return s, fmt.Errorf("--%s needs --%s", later.Key, step.Key)
				}
			}
			return s, nil
		}

		item, err := cat.Lookup(step.Key, id)
		if err != nil {
			return s, err
		}
		if s, err = s.SelectChecked(item, cat); err != nil {
			return s, err
		}
		if i < engine.LastStep {
			s = s.Advance()
		}
	}
	return s, nil
}

func formatSize(bytes int64) string {
	if bytes >= 1024*1024 {
		return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
	}
	if bytes >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%dB", bytes)
}
