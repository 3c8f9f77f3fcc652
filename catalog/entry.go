package catalog

// Key identifies an entry within one catalog: the source text plus the
// optional disambiguation context. An empty context means no context.
type Key struct {
	ID      string
	Context string
}

// Entry is one translatable unit of a catalog.
type Entry struct {
	// Comment classes, in the order the format emits them.
	Comments          []string // translator comments (#)
	ExtractedComments []string // extracted comments (#.)
	References        []string // source locations (#:), advisory only
	Flags             []string // flags (#,) other than fuzzy
	Previous          []string // previous values (#|), kept verbatim

	Context  string // msgctxt; empty when the entry has none
	ID       string // msgid
	IDPlural string // msgid_plural; empty for non-plural entries

	Str       string   // msgstr; empty means untranslated
	PluralStr []string // msgstr[N], indexed by plural form

	Fuzzy    bool // translation present but unconfirmed
	Obsolete bool // entry no longer referenced (#~ blocks)
}

// Key returns the entry's identity within its catalog.
func (e *Entry) Key() Key {
	return Key{ID: e.ID, Context: e.Context}
}

// Plural reports whether the entry carries plural forms.
func (e *Entry) Plural() bool {
	return e.IDPlural != ""
}

// Translated reports whether the entry has a non-empty translation. For
// plural entries any non-empty indexed translation counts.
func (e *Entry) Translated() bool {
	if e.Plural() {
		for _, s := range e.PluralStr {
			if s != "" {
				return true
			}
		}
		return false
	}
	return e.Str != ""
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Comments = cloneStrings(e.Comments)
	c.ExtractedComments = cloneStrings(e.ExtractedComments)
	c.References = cloneStrings(e.References)
	c.Flags = cloneStrings(e.Flags)
	c.Previous = cloneStrings(e.Previous)
	c.PluralStr = cloneStrings(e.PluralStr)
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
