// Package progress writes the per-session journal. Every interactive joice
// session writes a timestamped log of the wizard actions it dispatched, the
// meals it completed and how it ended. Journals are write-only: nothing reads
// them back as state.
package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexander-akhmetov/joice/internal/dirs"
	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

// timestampFormat is the format for log timestamps.
const timestampFormat = "2006-01-02 15:04:05"

// filenameTimeFormat prefixes every journal file name.
const filenameTimeFormat = "20060102-150405"

// DefaultSessionID labels journals written by the interactive wizard.
const DefaultSessionID = "session"

// Logger writes a timestamped session journal to a file and an optional io.Writer.
type Logger struct {
	file      *os.File
	writer    io.Writer // optional additional writer
	startTime time.Time
	sessionID string
	logPath   string

	actions   int
	completed int
}

// Config holds logger configuration.
type Config struct {
	LogsDir   string    // Directory for journal files (default: dirs.LogsDir())
	SessionID string    // Label appended to the file name (default: "session")
	Catalog   string    // Catalog source, recorded in the header
	Writer    io.Writer // Optional additional writer for live output
}

// NewLogger creates a logger that writes to a timestamped journal file.
// Files are stored in LogsDir with format: <timestamp>-<session-id>.log
func NewLogger(cfg Config) (*Logger, error) {
	logsDir := cfg.LogsDir
	if logsDir == "" {
		logsDir = dirs.LogsDir()
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	now := time.Now()
	f, logPath, err := createUnique(logsDir, now.Format(filenameTimeFormat), sanitizeFilename(sessionID))
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:      f,
		writer:    cfg.Writer,
		startTime: now,
		sessionID: sessionID,
		logPath:   logPath,
	}

	l.writef("# joice session journal\n")
	l.writef("Session: %s\n", sessionID)
	if cfg.Catalog != "" {
		l.writef("Catalog: %s\n", cfg.Catalog)
	}
	l.writef("Started: %s\n", now.Format(timestampFormat))
	l.writef("%s\n\n", strings.Repeat("-", 60))

	return l, nil
}

// createUnique creates <stamp>-<id>.log, adding a numeric suffix when two
// sessions start within the same second.
func createUnique(dir, stamp, id string) (*os.File, string, error) {
	for n := 1; n < 100; n++ {
		name := fmt.Sprintf("%s-%s.log", stamp, id)
		if n > 1 {
			name = fmt.Sprintf("%s-%s-%d.log", stamp, id, n)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // journal path built from sanitized parts
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create log file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create log file: too many journals for %s-%s", stamp, id)
}

// Path returns the journal file path.
func (l *Logger) Path() string {
	return l.logPath
}

// SessionID returns the session label.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Printf writes a timestamped message to the journal.
func (l *Logger) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)
	l.writef("[%s] %s\n", timestamp, msg)
}

// Section writes a section header to the journal.
func (l *Logger) Section(title string) {
	l.writef("\n--- %s ---\n", title)
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)
	l.writef("[%s] ERROR: %s\n", timestamp, msg)
}

// Action records a dispatched action together with the state it produced.
func (l *Logger) Action(a engine.Action, after engine.State) {
	l.actions++
	if a.Kind == engine.ActionReset {
		l.Section("New meal")
		return
	}
	l.Printf("%s -> step %s, total %s", a, after.Step().Key, engine.TotalPrice(after.Selections()))
}

// Complete records a finished meal.
func (l *Logger) Complete(s engine.State) {
	l.completed++
	sel := s.Selections()
	l.Section(fmt.Sprintf("Meal %d complete", l.completed))
	for _, step := range domain.Steps() {
		if it := sel.Get(step.Key); it != nil {
			l.Printf("%s: %s (%s) %s", step.Label, it.Name, it.ID, it.Price)
		}
	}
	l.Printf("Total: %s", engine.TotalPrice(sel))
}

// Exit logs the exit reason and duration.
func (l *Logger) Exit(reason string) {
	l.writef("\n%s\n", strings.Repeat("-", 60))
	l.writef("Exit reason: %s\n", reason)
	l.writef("Actions: %d\n", l.actions)
	l.writef("Meals completed: %d\n", l.completed)
	l.writef("Duration: %s\n", l.elapsed())
	l.writef("Ended: %s\n", time.Now().Format(timestampFormat))
}

// Close closes the journal file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func (l *Logger) writef(format string, args ...any) {
	if l.file != nil {
		fmt.Fprintf(l.file, format, args...)
	}
	if l.writer != nil {
		fmt.Fprintf(l.writer, format, args...)
	}
}

func (l *Logger) elapsed() string {
	d := time.Since(l.startTime).Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// sanitizeFilename converts a session label to a safe filename component.
func sanitizeFilename(s string) string {
	s = strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-").Replace(s)

	var clean strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			clean.WriteRune(r)
		}
	}
	result := clean.String()

	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	result = strings.Trim(result, "-")

	if len(result) > 64 {
		result = strings.TrimRight(result[:64], "-")
	}

	if result == "" {
		return "unnamed"
	}
	return result
}
