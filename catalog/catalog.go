// Package catalog models gettext PO translation catalogs and implements
// the operations the toolkit performs on them: parsing, serializing,
// creating a language catalog from a template, reconciling a catalog
// with a newer template, and merging catalogs by file precedence.
//
// A catalog is an ordered sequence of entries plus header metadata.
// Entry order is insertion order and survives every operation; nothing
// here ever re-sorts entries.
package catalog

// Catalog is the in-memory form of one PO file.
type Catalog struct {
	// HeaderComment holds the free-form comment lines above the header
	// entry, without their leading "# " marker.
	HeaderComment []string

	headerFlags []string
	header      *Header
	entries     []*Entry
	index       map[Key]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		header: &Header{},
		index:  make(map[Key]int),
	}
}

// Header returns the catalog's metadata block. The returned value is
// live: mutations apply to the catalog.
func (c *Catalog) Header() *Header {
	return c.header
}

// Entries returns the entries in order. The slice is live and must not
// be reordered by the caller; use Add to insert.
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// Len returns the number of entries, the header excluded.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry for k, if present.
func (c *Catalog) Get(k Key) (*Entry, bool) {
	i, ok := c.index[k]
	if !ok {
		return nil, false
	}
	return c.entries[i], true
}

// Add appends e to the catalog. When an entry with the same key already
// exists it is replaced in place, keeping its position.
func (c *Catalog) Add(e *Entry) {
	if i, ok := c.index[e.Key()]; ok {
		c.entries[i] = e
		return
	}
	c.index[e.Key()] = len(c.entries)
	c.entries = append(c.entries, e)
}

// PercentTranslated returns the share of non-obsolete entries carrying a
// confirmed translation, as a whole percentage. A catalog without
// entries counts as fully translated.
func (c *Catalog) PercentTranslated() int {
	total, translated := 0, 0
	for _, e := range c.entries {
		if e.Obsolete {
			continue
		}
		total++
		if e.Translated() && !e.Fuzzy {
			translated++
		}
	}
	if total == 0 {
		return 100
	}
	return translated * 100 / total
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	out := New()
	out.HeaderComment = cloneStrings(c.HeaderComment)
	out.headerFlags = cloneStrings(c.headerFlags)
	out.header = c.header.Clone()
	for _, e := range c.entries {
		out.Add(e.Clone())
	}
	return out
}
