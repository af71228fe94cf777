// Package wxr parses WordPress eXtended RSS export documents
// (the XML produced by /wp-admin/export.php) into the core model.
// Elements are matched by local name so that WXR 1.1 and 1.2 both parse;
// the one exception is <content:encoded>, which must be matched by
// namespace to keep <excerpt:encoded> from being picked up instead.
package wxr

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gaurav-prasanna/wp2zola/core"
)

// contentNS is the RSS content-module namespace of <content:encoded>.
const contentNS = "http://purl.org/rss/1.0/modules/content/"

type rss struct {
	Channel channel `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	BaseSiteURL string `xml:"base_site_url"`
	Items       []item `xml:"item"`
}

type item struct {
	Title    string `xml:"title"`
	Link     string `xml:"link"`
	PubDate  string `xml:"pubDate"`
	Status   string `xml:"status"`
	PostType string `xml:"post_type"`
	Content  string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

// Parse reads a WXR document and returns the export model.
// An unknown wp:status is a document error: it means the export is from a
// WordPress variant this tool doesn't understand, and silently guessing a
// status could publish a private post.
func Parse(r io.Reader) (*core.Export, error) {
	var doc rss
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing export XML: %w", err)
	}

	export := &core.Export{
		Title:   doc.Channel.Title,
		BaseURL: doc.Channel.BaseSiteURL,
	}

	for _, it := range doc.Channel.Items {
		status, err := parseStatus(it.Status)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Title, err)
		}
		export.Posts = append(export.Posts, core.Post{
			Title:   it.Title,
			Link:    it.Link,
			PubDate: it.PubDate,
			Status:  status,
			Type:    parsePostType(it.PostType),
			Content: it.Content,
		})
	}

	return export, nil
}

func parseStatus(s string) (core.Status, error) {
	switch core.Status(s) {
	case core.StatusPublish, core.StatusDraft, core.StatusInherit, core.StatusPrivate:
		return core.Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

func parsePostType(s string) core.PostType {
	switch core.PostType(s) {
	case core.PostTypePost, core.PostTypeAttachment:
		return core.PostType(s)
	default:
		return core.PostTypeOther
	}
}
