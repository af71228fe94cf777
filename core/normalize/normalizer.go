// Package normalize implements the Normalizer interface.
// WordPress runs its stored post HTML through a paragraph auto-formatter
// before display, turning blank-line-separated text runs into paragraphs.
// The export contains the raw HTML, so without this step the markdown
// converter downstream would collapse those runs into a single paragraph.
//
// This reproduces the narrow part of that formatter we need: every run of
// two or more newlines in a text node sitting directly under <body> becomes
// an explicit empty <p></p> break. Text inside nested elements is left
// alone, matching the conservative legacy behavior.
package normalize

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrStructureMissing reports a document without the <html>/<body> skeleton.
// A standards-compliant parse always produces both, so hitting this means
// the parser contract was violated; callers should treat the post as
// unprocessable rather than abort the batch.
var ErrStructureMissing = errors.New("document structure missing")

// blankLines matches a run of two or more consecutive newlines.
// A single newline is not a paragraph boundary.
var blankLines = regexp.MustCompile(`\n\n+`)

// ParagraphNormalizer rewrites blank-line runs in top-level text into
// explicit paragraph breaks. It is stateless; one instance may be shared
// across posts.
type ParagraphNormalizer struct{}

// New creates a ParagraphNormalizer.
func New() *ParagraphNormalizer {
	return &ParagraphNormalizer{}
}

// Normalize parses the fragment, splices paragraph breaks into the direct
// text children of <body>, and reserializes. If no text child contains a
// blank-line run, the input string is returned untouched, byte-for-byte.
func (n *ParagraphNormalizer) Normalize(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	root, err := findChildElement(doc, "html")
	if err != nil {
		return "", err
	}
	body, err := findChildElement(root, "body")
	if err != nil {
		return "", err
	}

	children := childList(body)

	// Collect matches before touching anything. Mutating the child list
	// while scanning it would invalidate the indices being recorded.
	type match struct {
		index int
		text  string
	}
	var matches []match
	for i, child := range children {
		if child.Type == html.TextNode && blankLines.MatchString(child.Data) {
			matches = append(matches, match{index: i, text: child.Data})
		}
	}

	if len(matches) == 0 {
		return content, nil
	}

	// Splice pass. Earlier splices grow the list, so every recorded index
	// is corrected by the running offset: removing the matched text node
	// shifts it down by one, each insertion shifts it up by one.
	offset := 0
	for _, m := range matches {
		children = removeAt(children, m.index+offset)
		offset--

		// A run of N separators yields N+1 segments, empty ones included:
		// a trailing run still produces a trailing paragraph marker.
		for j, segment := range blankLines.Split(m.text, -1) {
			if j > 0 {
				children = insertAt(children, m.index+offset+1, paragraphNode())
				offset++
			}
			children = insertAt(children, m.index+offset+1, textNode(segment))
			offset++
		}
	}

	relinkChildren(body, children)

	var buf bytes.Buffer
	for _, child := range children {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("serializing body: %w", err)
		}
	}
	return buf.String(), nil
}

// findChildElement returns the first direct child element of parent with
// the given tag name, ignoring case. Text, comment, and doctype children
// are skipped, never descended into.
func findChildElement(parent *html.Node, tag string) (*html.Node, error) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no <%s> element", ErrStructureMissing, tag)
}

// childList snapshots a node's children into a slice for index-based splicing.
func childList(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// relinkChildren replaces parent's linked child list with the spliced slice.
func relinkChildren(parent *html.Node, children []*html.Node) {
	for parent.FirstChild != nil {
		parent.RemoveChild(parent.FirstChild)
	}
	for _, c := range children {
		parent.AppendChild(c)
	}
}

func removeAt(nodes []*html.Node, i int) []*html.Node {
	return append(nodes[:i], nodes[i+1:]...)
}

func insertAt(nodes []*html.Node, i int, n *html.Node) []*html.Node {
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = n
	return nodes
}

// paragraphNode builds the synthetic break marker: an empty <p> with no
// attributes and no children.
func paragraphNode() *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
