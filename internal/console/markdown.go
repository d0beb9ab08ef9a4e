package console

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// newMarkdownRenderer builds the glamour renderer used for level
// briefings. Auto style picks light or dark based on the terminal
// background.
func newMarkdownRenderer(width int) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r.Render
}

// Markdown renders md for the terminal. On plain consoles, or when
// rendering fails, the raw text is returned unchanged.
func (c *Console) Markdown(md string) string {
	if c.render == nil {
		return md
	}
	out, err := c.render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
