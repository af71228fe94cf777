package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagePath(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		link    string
		want    string
	}{
		{"nested", "https://example.com", "https://example.com/2008/09/post1", "2008/09/post1.md"},
		{"top level", "https://example.com", "https://example.com/post1", "post1.md"},
		{"trailing slash", "https://example.com", "https://example.com/post1/", "post1.md"},
		{"scheme mismatch keeps link", "https://example.com", "http://example.com/post1", "http://example.com/post1.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PagePath(tt.baseURL, tt.link))
		})
	}
}

func TestWritePage(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, []byte("SECTION\n"))
	require.NoError(t, err)

	path, err := w.WritePage("https://example.com", "https://example.com/2008/09/post1", []byte("PAGE\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2008", "09", "post1.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PAGE\n", string(data))

	index, err := os.ReadFile(filepath.Join(dir, "2008", "09", "_index.md"))
	require.NoError(t, err)
	assert.Equal(t, "SECTION\n", string(index))
}

func TestSectionWrittenOncePerDirectory(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, []byte("SECTION\n"))
	require.NoError(t, err)

	_, err = w.WritePage("https://example.com", "https://example.com/2008/a", []byte("A"))
	require.NoError(t, err)

	// Overwrite the section file to detect a rewrite on the second page.
	index := filepath.Join(dir, "2008", "_index.md")
	require.NoError(t, os.WriteFile(index, []byte("EDITED\n"), 0644))

	_, err = w.WritePage("https://example.com", "https://example.com/2008/b", []byte("B"))
	require.NoError(t, err)

	data, err := os.ReadFile(index)
	require.NoError(t, err)
	assert.Equal(t, "EDITED\n", string(data))
	assert.Equal(t, 1, w.Sections())
}
