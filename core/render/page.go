// Package render provides output renderers for the wp2zola pipeline.
// This file implements the page renderer, which wraps a post's Markdown
// body in Zola TOML front matter.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/wp2zola/core"
)

// PageRenderer renders a Zola content page:
//
//	+++
//	title = "..."
//	date = 2008-09-01T21:02:27Z
//	+++
//	<markdown body>
type PageRenderer struct{}

// NewPageRenderer creates a PageRenderer.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

// Render builds the page bytes for a post. The post's RFC 2822 pubDate is
// converted to RFC 3339 for the front matter; a pubDate that doesn't parse
// makes this post unrenderable (the caller decides whether to skip it).
func (r *PageRenderer) Render(post core.Post, markdown string) ([]byte, error) {
	date, err := parsePubDate(post.PubDate)
	if err != nil {
		return nil, err
	}

	// %q escapes quotes and backslashes the way TOML basic strings expect,
	// so any title produces a valid front-matter line.
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "+++")
	fmt.Fprintf(&buf, "title = %q\n", post.Title)
	fmt.Fprintf(&buf, "date = %s\n", date.Format(time.RFC3339))
	fmt.Fprintln(&buf, "+++")
	fmt.Fprintln(&buf, markdown)
	return buf.Bytes(), nil
}

// parsePubDate parses the RFC 2822 date WordPress writes into pubDate.
// Numeric zones are the norm; the RFC 1123 form covers exports that write
// a zone name like GMT instead.
func parsePubDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse pubDate %q", s)
}

var _ core.Renderer = (*PageRenderer)(nil)
