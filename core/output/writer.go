// Package output writes the Zola content tree.
// Page paths mirror the post's URL with the channel base URL stripped
// (e.g. https://example.com/2008/09/post1 → 2008/09/post1.md), and every
// directory that receives a page gets a section _index.md exactly once.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes pages and section files under a content directory.
type Writer struct {
	ContentDir string

	sections map[string]bool // section dirs that already have an _index.md
	section  []byte          // rendered _index.md bytes, same for every section
}

// New creates a Writer rooted at contentDir, creating it if needed.
// sectionFile is written as _index.md into each section directory.
func New(contentDir string, sectionFile []byte) (*Writer, error) {
	if contentDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		contentDir = filepath.Join(wd, "content")
	}

	if err := os.MkdirAll(contentDir, 0755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}

	return &Writer{
		ContentDir: contentDir,
		sections:   make(map[string]bool),
		section:    sectionFile,
	}, nil
}

// PagePath derives the relative .md path for a post from its link.
// The base URL prefix is stripped so the on-disk tree mirrors the site's
// URL structure rather than embedding the scheme and host.
func PagePath(baseURL, link string) string {
	rel := strings.TrimPrefix(link, baseURL)
	rel = strings.Trim(rel, "/")
	return rel + ".md"
}

// WritePage writes a rendered page for the given link, creating parent
// directories and the section _index.md on first use of each directory.
// It returns the absolute path of the written page.
func (w *Writer) WritePage(baseURL, link string, data []byte) (string, error) {
	path := filepath.Join(w.ContentDir, filepath.FromSlash(PagePath(baseURL, link)))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := w.ensureSection(dir); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing page %s: %w", path, err)
	}
	return path, nil
}

// ensureSection writes the section _index.md the first time a directory is
// seen. The dedup map keeps repeated posts in one section from rewriting it.
func (w *Writer) ensureSection(dir string) error {
	if w.sections[dir] {
		return nil
	}
	w.sections[dir] = true

	path := filepath.Join(dir, "_index.md")
	if err := os.WriteFile(path, w.section, 0644); err != nil {
		return fmt.Errorf("writing section %s: %w", path, err)
	}
	return nil
}

// Sections returns how many distinct section directories received pages.
func (w *Writer) Sections() int {
	return len(w.sections)
}
