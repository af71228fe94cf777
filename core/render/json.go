// Package render — JSON inventory renderer for the inspect command.
// It summarizes an export without converting anything: per-item status,
// type, and structural counts pulled from the raw body HTML.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/wp2zola/core"
)

// ItemReport is the per-post entry of the inventory.
type ItemReport struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	PubDate  string `json:"pub_date"`
	Status   string `json:"status"`
	Type     string `json:"type"`
	Words    int    `json:"words"`
	Links    int    `json:"links"`
	Images   int    `json:"images"`
	Headings int    `json:"headings"`
}

// ExportReport is the complete JSON inventory of an export.
type ExportReport struct {
	Title     string         `json:"title"`
	BaseURL   string         `json:"base_url"`
	Posts     int            `json:"posts"`
	Published int            `json:"published"`
	Items     []ItemReport   `json:"items"`
	ByStatus  map[string]int `json:"by_status"`
}

// JSONRenderer renders an export inventory as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render builds the inventory for the whole export.
func (r *JSONRenderer) Render(export *core.Export) ([]byte, error) {
	report := ExportReport{
		Title:    export.Title,
		BaseURL:  export.BaseURL,
		ByStatus: make(map[string]int),
	}

	for _, post := range export.Posts {
		item := ItemReport{
			Title:   post.Title,
			Link:    post.Link,
			PubDate: post.PubDate,
			Status:  string(post.Status),
			Type:    string(post.Type),
		}
		if err := fillStructure(&item, post.Content); err != nil {
			return nil, fmt.Errorf("inspecting %q: %w", post.Title, err)
		}

		report.Items = append(report.Items, item)
		report.ByStatus[string(post.Status)]++
		if post.Type == core.PostTypePost {
			report.Posts++
			if post.Status == core.StatusPublish {
				report.Published++
			}
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}

// fillStructure counts words, links, images, and headings in a body fragment.
func fillStructure(item *ItemReport, body string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("parsing body: %w", err)
	}

	item.Words = len(strings.Fields(doc.Text()))
	item.Links = doc.Find("a[href]").Length()
	item.Images = doc.Find("img").Length()
	item.Headings = doc.Find("h1, h2, h3, h4, h5, h6").Length()
	return nil
}
