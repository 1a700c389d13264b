// Package gallery defines the image gallery domain: entries arranged in rows,
// the hover state of a grid, and the pure weighting policy used to lay tiles
// out while one of them is hovered.
package gallery

// ImageList is an ordered sequence of opaque image references.
type ImageList []string

// Clone returns a copy that shares no backing array with l.
func (l ImageList) Clone() ImageList {
	if l == nil {
		return nil
	}
	out := make(ImageList, len(l))
	copy(out, l)
	return out
}

// Entry is a single tile in the gallery.
type Entry struct {
	Ref    string  // image reference (path or URI)
	Weight float64 // relative layout weight, display only
	Label  string  // optional caption; defaults to the reference base name
}

// Row is a visual group of entries that share horizontal space. Hovering an
// entry only affects the weights of its own row.
type Row struct {
	Entries []Entry
	Policy  Policy
}

// Section is an image-bearing surface. Its rows flatten into one ImageList,
// and activation indices are positions in that flattened list.
type Section struct {
	Name        string
	Description string // markdown
	Rows        []Row
}

// Len returns the number of entries across all rows.
func (s Section) Len() int {
	n := 0
	for _, r := range s.Rows {
		n += len(r.Entries)
	}
	return n
}

// Images flattens the section into its image list.
func (s Section) Images() ImageList {
	out := make(ImageList, 0, s.Len())
	for _, r := range s.Rows {
		for _, e := range r.Entries {
			out = append(out, e.Ref)
		}
	}
	return out
}

// Entry returns the entry at flattened index i.
func (s Section) Entry(i int) (Entry, bool) {
	row, col, ok := s.Locate(i)
	if !ok {
		return Entry{}, false
	}
	return s.Rows[row].Entries[col], true
}

// Locate maps a flattened index to its row and column.
func (s Section) Locate(i int) (row, col int, ok bool) {
	if i < 0 {
		return 0, 0, false
	}
	for r, rw := range s.Rows {
		if i < len(rw.Entries) {
			return r, i, true
		}
		i -= len(rw.Entries)
	}
	return 0, 0, false
}

// Index maps a row and column back to the flattened index.
func (s Section) Index(row, col int) int {
	idx := 0
	for r := 0; r < row && r < len(s.Rows); r++ {
		idx += len(s.Rows[r].Entries)
	}
	return idx + col
}

// Gallery is the full set of sections shown by the grid.
type Gallery struct {
	Title    string
	Sections []Section
}

// Len returns the number of entries across all sections.
func (g Gallery) Len() int {
	n := 0
	for _, s := range g.Sections {
		n += s.Len()
	}
	return n
}
