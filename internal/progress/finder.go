package progress

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexander-akhmetov/joice/internal/dirs"
)

// LogFile describes one journal on disk.
type LogFile struct {
	Path      string
	SessionID string
	Timestamp time.Time
	Size      int64
}

// FindLogs finds journal files in logsDir, optionally filtered by a
// case-insensitive session label substring. Files are returned newest first.
func FindLogs(logsDir, sessionID string) ([]LogFile, error) {
	if logsDir == "" {
		logsDir = dirs.LogsDir()
	}

	entries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No journals yet
		}
		return nil, err
	}

	var logs []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		lf := parseLogFilename(logsDir, entry.Name())
		if lf == nil {
			continue
		}
		if sessionID != "" && !strings.Contains(strings.ToLower(lf.SessionID), strings.ToLower(sessionID)) {
			continue
		}
		if info, err := entry.Info(); err == nil {
			lf.Size = info.Size()
		}

		logs = append(logs, *lf)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp.Equal(logs[j].Timestamp) {
			return logs[i].Path > logs[j].Path
		}
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})

	return logs, nil
}

// FindLatestLog returns the most recent journal, or nil when there is none.
func FindLatestLog(logsDir, sessionID string) (*LogFile, error) {
	logs, err := FindLogs(logsDir, sessionID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

// parseLogFilename parses YYYYMMDD-HHMMSS-<session-id>.log.
func parseLogFilename(dir, name string) *LogFile {
	base := strings.TrimSuffix(name, ".log")

	// Need at least timestamp prefix: YYYYMMDD-HHMMSS (15 chars)
	if len(base) < 16 {
		return nil
	}

	t, err := time.ParseInLocation(filenameTimeFormat, base[:15], time.Local)
	if err != nil {
		return nil
	}

	sessionID := ""
	if len(base) > 16 {
		sessionID = base[16:]
	}

	return &LogFile{
		Path:      filepath.Join(dir, name),
		SessionID: sessionID,
		Timestamp: t,
	}
}
