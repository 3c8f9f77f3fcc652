package catalog

// Merge combines ordered input catalogs sharing one logical key space
// into a single catalog, resolving translation conflicts by file
// precedence. The output's keys follow the first catalog's order, with
// keys seen only in later catalogs appended in encounter order.
//
// With overwrite false, the first input holding a non-empty translation
// for a key wins and later values are never applied; with overwrite
// true, the last input holding a non-empty translation wins. A present
// but empty translation never takes precedence over anything. The fuzzy
// flag follows whichever entry's translation was selected. The header
// comes from the first input (overwrite false) or the last (overwrite
// true). Obsolete entries in the inputs are ignored.
//
// An empty input list yields ErrNoInputFiles.
func Merge(inputs []*Catalog, overwrite bool) (*Catalog, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputFiles
	}

	src := inputs[0]
	if overwrite {
		src = inputs[len(inputs)-1]
	}
	out := New()
	out.HeaderComment = cloneStrings(src.HeaderComment)
	out.headerFlags = cloneStrings(src.headerFlags)
	out.header = src.header.Clone()

	for _, in := range inputs {
		for _, e := range in.Entries() {
			if e.Obsolete {
				continue
			}
			cur, ok := out.Get(e.Key())
			if !ok {
				out.Add(e.Clone())
				continue
			}
			if !e.Translated() {
				continue
			}
			if !overwrite && cur.Translated() {
				continue
			}
			if cur.Plural() != e.Plural() {
				continue
			}
			cur.Str = e.Str
			cur.PluralStr = cloneStrings(e.PluralStr)
			cur.Fuzzy = e.Fuzzy
		}
	}
	return out, nil
}
