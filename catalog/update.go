package catalog

import "github.com/erptools/erptk/lang"

// Update reconciles an existing language catalog with a newer template
// for the same module. The output follows the template's key order; for
// every template key the existing catalog also has, its translation and
// fuzzy flag are carried over, and keys absent from the template are
// dropped, obsolete entries included. The header is refreshed from the
// template while the Language field follows lg, not the old header.
//
// existing may be nil, in which case Update is equivalent to
// FromTemplate.
func Update(existing, tmpl *Catalog, lg lang.Lang) *Catalog {
	out := FromTemplate(tmpl, lg)
	if existing == nil {
		return out
	}
	for _, e := range out.Entries() {
		old, ok := existing.Get(e.Key())
		if !ok || old.Obsolete {
			continue
		}
		if e.Plural() != old.Plural() {
			// The entry changed plurality between template versions;
			// the old translation no longer fits, so it restarts
			// untranslated.
			continue
		}
		if e.Plural() {
			if old.Translated() {
				e.PluralStr = cloneStrings(old.PluralStr)
			}
		} else {
			e.Str = old.Str
		}
		e.Fuzzy = old.Fuzzy
	}
	return out
}
