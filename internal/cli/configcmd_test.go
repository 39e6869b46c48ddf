package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	stateDir := setupEnv(t)

	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# Joice Configuration")
	assert.Contains(t, out, "  - embedded")
	assert.Contains(t, out, "Local config:  (none detected)")
	assert.Contains(t, out, "Journals:      "+stateDir)
	assert.Contains(t, out, "catalog:          (built-in)")
	assert.Contains(t, out, "currency:         €")
	assert.Contains(t, out, "strict_selection: false")
	assert.Contains(t, out, "journal:  true")
	assert.Contains(t, out, "theme:    dark")
}

func TestConfigShow_Env(t *testing.T) {
	setupEnv(t)
	t.Setenv("JOICE_CATALOG", "/srv/menu.yaml")
	t.Setenv("JOICE_STRICT_SELECTION", "true")
	t.Setenv("JOICE_LOGS_DIR", "/var/log/joice")

	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "catalog:          /srv/menu.yaml")
	assert.Contains(t, out, "strict_selection: true")
	assert.Contains(t, out, "logs_dir: /var/log/joice")
	assert.Contains(t, out, "Journals:      /var/log/joice")
}
