// Package render — section renderer.
package render

import (
	"bytes"
	"fmt"
)

// defaultPaginateBy is the page size for section pagination.
const defaultPaginateBy = 5

// SectionRenderer renders a Zola section _index.md. Sections are
// transparent so their pages surface in the parent index.
type SectionRenderer struct {
	PaginateBy int
}

// NewSectionRenderer creates a SectionRenderer with the given page size.
// Defaults to 5 if paginateBy <= 0.
func NewSectionRenderer(paginateBy int) *SectionRenderer {
	if paginateBy <= 0 {
		paginateBy = defaultPaginateBy
	}
	return &SectionRenderer{PaginateBy: paginateBy}
}

// Render builds the _index.md bytes.
func (r *SectionRenderer) Render() []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "+++")
	fmt.Fprintln(&buf, "transparent = true")
	fmt.Fprintln(&buf, `sort_by = "date"`)
	fmt.Fprintf(&buf, "paginate_by = %d\n", r.PaginateBy)
	fmt.Fprintln(&buf, "+++")
	return buf.Bytes()
}
