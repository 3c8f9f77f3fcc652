package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// cldrOverrides covers the registry codes whose BCP 47 form cannot be
// derived mechanically (script suffixes in the "@" notation).
var cldrOverrides = map[Lang]string{
	"sr@Cyrl":  "sr-Cyrl",
	"sr@latin": "sr-Latn",
}

// CLDR returns the BCP 47 form of l for tooling that expects standard
// tags: "pt_BR" becomes "pt-BR", "sr@latin" becomes "sr-Latn". Codes the
// tag parser cannot make sense of are returned with underscores swapped
// for hyphens.
func CLDR(l Lang) string {
	if tag, ok := cldrOverrides[l]; ok {
		return tag
	}
	code := strings.ReplaceAll(string(l), "_", "-")
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
