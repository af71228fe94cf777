// Package markdown implements the Converter interface.
// It turns a normalized post-body HTML fragment into Markdown, the final
// page format, using html-to-markdown.
package markdown

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Converter converts HTML to Markdown.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert converts an HTML fragment into Markdown. WordPress themes use
// empty anchors for decoration; the converter renders those as "[]()",
// which are stripped from the result.
func (c *Converter) Convert(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.ReplaceAll(md, "[]()", ""), nil
}
