package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/colonyops/lightbox/internal/core/styles"
)

type markdownKey struct {
	text  string
	width int
}

// markdownCache renders section descriptions with glamour. Output depends on
// the text and wrap width only, so results are kept across frames.
type markdownCache struct {
	log      zerolog.Logger
	rendered map[markdownKey]string
}

func newMarkdownCache(logger zerolog.Logger) *markdownCache {
	return &markdownCache{
		log:      logger,
		rendered: make(map[markdownKey]string),
	}
}

// Render returns text rendered for width columns. Render failures fall back
// to the raw text.
func (c *markdownCache) Render(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	k := markdownKey{text: text, width: width}
	if out, ok := c.rendered[k]; ok {
		return out
	}

	out := c.render(text, width)
	c.rendered[k] = out
	return out
}

func (c *markdownCache) render(text string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		c.log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw description")
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		c.log.Debug().Err(err).Msg("failed to render markdown, showing raw description")
		return text
	}

	return trimBlankLines(rendered)
}

// trimBlankLines drops leading and trailing lines that are empty once
// styling is removed.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	blank := func(l string) bool { return strings.TrimSpace(ansi.Strip(l)) == "" }

	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
