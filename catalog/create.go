package catalog

import "github.com/erptools/erptk/lang"

// FromTemplate builds a fresh language catalog from a template: every
// entry is copied in order with an empty translation and a cleared fuzzy
// flag, and the header is taken from the template with the Language and
// Plural-Forms fields set for lg. An empty template yields a header-only
// catalog.
func FromTemplate(tmpl *Catalog, lg lang.Lang) *Catalog {
	out := New()
	out.HeaderComment = cloneStrings(tmpl.HeaderComment)
	out.header = tmpl.header.Clone()
	out.header.Set("Language", string(lg))
	out.header.Set("Plural-Forms", lang.PluralForms(lg))
	for _, e := range tmpl.Entries() {
		ne := e.Clone()
		ne.Str = ""
		for i := range ne.PluralStr {
			ne.PluralStr[i] = ""
		}
		ne.Fuzzy = false
		out.Add(ne)
	}
	return out
}
