// Package dirs resolves XDG Base Directory compliant paths
// for all joice directories.
package dirs

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the joice configuration directory.
// Resolution order: XDG_CONFIG_HOME/joice > ~/.config/joice.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "joice")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "joice")
	}
	return filepath.Join(home, ".config", "joice")
}

// StateDir returns the joice state directory.
// Resolution order: JOICE_STATE_DIR > XDG_STATE_HOME/joice > ~/.local/state/joice.
func StateDir() string {
	if dir := os.Getenv("JOICE_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "joice")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", "joice")
	}
	return filepath.Join(home, ".local", "state", "joice")
}

// LogsDir returns the joice logs directory (StateDir/logs).
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

// LocalDir returns the project-local override directory (.joice) inside
// dir, or "" when it does not exist.
func LocalDir(dir string) string {
	candidate := filepath.Join(dir, ".joice")
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}
