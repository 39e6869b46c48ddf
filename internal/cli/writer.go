package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexander-akhmetov/joice/internal/debug"
)

// ANSI color codes shared with the wizard's lipgloss palette.
const (
	colorGreen   = 42  // diff add, prices
	colorRed     = 196 // diff del
	colorCyan    = 117 // diff hunk, file paths
	colorDim     = 241 // labels, diff context
	colorMagenta = 205 // titles
)

// Writer prints command output. In TTY mode it colors text and renders
// markdown with glamour; otherwise it prints plain text without escapes.
type Writer struct {
	out      io.Writer
	isTTY    bool
	width    int
	renderer *glamour.TermRenderer
}

// NewWriter creates a Writer. If width is <= 0, defaults to 80.
func NewWriter(out io.Writer, isTTY bool, width int, theme string) *Writer {
	if width <= 0 {
		width = 80
	}

	w := &Writer{
		out:   out,
		isTTY: isTTY,
		width: width,
	}

	if isTTY {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(theme),
			glamour.WithWordWrap(max(width-6, 40)),
		)
		if err == nil {
			w.renderer = r
		} else {
			debug.Logf("cli: failed to create glamour renderer: %v", err)
		}
	}

	return w
}

// newCommandWriter creates a Writer for cmd's output. Only a real terminal
// gets colors.
func newCommandWriter(cmd *cobra.Command, theme string) *Writer {
	out := cmd.OutOrStdout()
	isTTY, width := false, 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isTTY = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	return NewWriter(out, isTTY, width, theme)
}

// Printf writes formatted text as is.
func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// Title writes a heading line.
func (w *Writer) Title(text string) {
	if w.isTTY {
		text = fgBold(colorMagenta, text)
	}
	fmt.Fprintln(w.out, text)
}

// Price colors a formatted amount on a TTY.
func (w *Writer) Price(text string) string {
	if w.isTTY {
		return fg(colorGreen, text)
	}
	return text
}

// Dim dims text on a TTY.
func (w *Writer) Dim(text string) string {
	if w.isTTY {
		return dim(text)
	}
	return text
}

// Markdown renders md with glamour on a TTY and prints plain otherwise.
func (w *Writer) Markdown(md, plain string) {
	if w.renderer != nil {
		if rendered, err := w.renderer.Render(md); err == nil {
			fmt.Fprint(w.out, rendered)
			return
		}
	}
	fmt.Fprint(w.out, plain)
	if !strings.HasSuffix(plain, "\n") {
		fmt.Fprintln(w.out)
	}
}

// Diff prints a unified diff, coloring added, removed and hunk lines on a TTY.
func (w *Writer) Diff(text string) {
	for line := range strings.SplitSeq(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintln(w.out, w.formatDiffLine(line))
	}
}

func (w *Writer) formatDiffLine(line string) string {
	if !w.isTTY {
		return line
	}
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return bold(line)
	case strings.HasPrefix(line, "+"):
		return fg(colorGreen, line)
	case strings.HasPrefix(line, "-"):
		return fg(colorRed, line)
	case strings.HasPrefix(line, "@@"):
		return fg(colorCyan, line)
	default:
		return fg(colorDim, line)
	}
}
