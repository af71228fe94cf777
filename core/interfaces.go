// Package core defines the pipeline types and interfaces for wp2zola.
// Each stage of the pipeline is a clean, testable interface.
package core

// Status is the publication status of an exported item.
type Status string

const (
	StatusPublish Status = "publish"
	StatusDraft   Status = "draft"
	StatusInherit Status = "inherit"
	StatusPrivate Status = "private"
)

// PostType classifies an exported item. WordPress exports carry many
// plugin-defined types; everything that isn't a post or attachment is Other.
type PostType string

const (
	PostTypePost       PostType = "post"
	PostTypeAttachment PostType = "attachment"
	PostTypeOther      PostType = "other"
)

// Post is a single item from the export.
type Post struct {
	Title   string
	Link    string
	PubDate string // RFC 2822, as WordPress writes it; parsed at render time
	Status  Status
	Type    PostType
	Content string // raw post-body HTML fragment
}

// Export is a parsed WordPress export document.
type Export struct {
	Title   string
	BaseURL string // wp:base_site_url, stripped from post links to derive paths
	Posts   []Post
}

// Normalizer rewrites a post-body HTML fragment before markdown conversion.
// It returns the input unchanged when there is nothing to rewrite.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Converter turns a normalized HTML fragment into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// Renderer converts a post and its Markdown body into final file bytes.
type Renderer interface {
	Render(post Post, markdown string) ([]byte, error)
}
