package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestWriter(buf *bytes.Buffer) *Writer {
	return &Writer{out: buf, isTTY: false, width: 80}
}

func newTestWriterTTY(buf *bytes.Buffer) *Writer {
	return &Writer{out: buf, isTTY: true, width: 80}
}

func TestNewWriter_DefaultWidth(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, false, 0, "dark")
	assert.Equal(t, 80, w.width)
	assert.Nil(t, w.renderer, "no renderer without a terminal")
}

func TestWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf)

	w.Title("Menu")
	w.Printf("%s %s\n", w.Price("€1.00"), w.Dim("dim"))

	assert.Equal(t, "Menu\n€1.00 dim\n", buf.String())
}

func TestWriter_TTYColors(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriterTTY(&buf)

	w.Title("Menu")
	assert.Equal(t, fgBold(colorMagenta, "Menu")+"\n", buf.String())
	assert.Equal(t, fg(colorGreen, "€1.00"), w.Price("€1.00"))
	assert.Equal(t, dim("x"), w.Dim("x"))
}

func TestWriter_MarkdownFallback(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf)

	w.Markdown("# Your Meal", "plain text")
	assert.Equal(t, "plain text\n", buf.String())
}

func TestWriter_Diff(t *testing.T) {
	diff := "--- a\n+++ b\n@@ -1,2 +1,2 @@\n base veg\n-  price: 3.50\n+  price: 3.75\n"

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		newTestWriter(&buf).Diff(diff)
		assert.Equal(t, diff, buf.String())
	})

	t.Run("tty", func(t *testing.T) {
		var buf bytes.Buffer
		newTestWriterTTY(&buf).Diff(diff)

		want := bold("--- a") + "\n" +
			bold("+++ b") + "\n" +
			fg(colorCyan, "@@ -1,2 +1,2 @@") + "\n" +
			fg(colorDim, " base veg") + "\n" +
			fg(colorRed, "-  price: 3.50") + "\n" +
			fg(colorGreen, "+  price: 3.75") + "\n"
		assert.Equal(t, want, buf.String())
	})
}
