// Package lang holds the fixed registry of languages the toolkit can
// produce translation catalogs for, together with the gettext plural
// rule each language uses. The registry is initialized once and is
// read-only afterwards.
package lang

import (
	"fmt"
	"sort"
	"strings"
)

// Lang is a language code as it appears in catalog filenames and in the
// Language header field, e.g. "fr", "pt_BR" or "sr@latin".
type Lang string

// All is the sentinel code that expands to every supported language.
const All Lang = "all"

// UnsupportedError reports a language code outside the registry.
type UnsupportedError struct {
	Code string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported language %q", e.Code)
}

// supported lists every language code the toolkit accepts, sorted.
var supported = []Lang{
	"am_ET", "ar", "ar_SY", "az", "be", "bg", "bn_IN", "bs", "ca_ES",
	"cs_CZ", "da_DK", "de", "de_CH", "el_GR", "en_AU", "en_CA", "en_GB",
	"en_IN", "en_NZ", "es", "es_419", "es_AR", "es_BO", "es_CL", "es_CO",
	"es_CR", "es_DO", "es_EC", "es_GT", "es_MX", "es_PA", "es_PE",
	"es_PY", "es_UY", "es_VE", "et", "eu_ES", "fa", "fi", "fr", "fr_BE",
	"fr_CA", "fr_CH", "gl", "gu", "he", "hi", "hr", "hu", "id", "it",
	"ja", "ka", "kab", "km", "ko_KP", "ko_KR", "lb", "lo", "lt", "lv",
	"mk", "ml", "mn_MN", "ms", "my", "nb_NO", "nl", "nl_BE", "pl", "pt",
	"pt_AO", "pt_BR", "ro", "ru", "sk", "sl", "sq", "sr@Cyrl",
	"sr@latin", "sv", "sw", "te", "th", "tl", "tr", "uk", "vi", "zh_CH",
	"zh_HK", "zh_TW",
}

// pluralRules maps each gettext Plural-Forms rule to the languages using
// it. Languages missing here (currently only "et") have no known rule
// and get an empty Plural-Forms value.
var pluralRules = map[string][]Lang{
	"nplurals=1; plural=0;": {
		"id", "ja", "ka", "km", "ko_KP", "ko_KR", "lo", "ms", "my",
		"th", "vi", "zh_CH", "zh_HK", "zh_TW",
	},
	"nplurals=2; plural=(n != 1);": {
		"az", "bg", "bn_IN", "ca_ES", "da_DK", "de", "de_CH", "el_GR",
		"en_AU", "en_CA", "en_GB", "en_IN", "en_NZ", "es", "es_419",
		"es_AR", "es_BO", "es_CL", "es_CO", "es_CR", "es_DO", "es_EC",
		"es_GT", "es_MX", "es_PA", "es_PE", "es_PY", "es_UY", "es_VE",
		"eu_ES", "fi", "gl", "gu", "he", "hi", "hu", "it", "kab", "lb",
		"ml", "mn_MN", "nb_NO", "nl", "nl_BE", "pt", "pt_AO", "pt_BR",
		"sq", "sv", "sw", "te",
	},
	"nplurals=2; plural=(n > 1);": {
		"am_ET", "fa", "fr", "fr_BE", "fr_CA", "fr_CH", "tl", "tr",
	},
	"nplurals=2; plural= n==1 || n%10==1 ? 0 : 1;": {
		"mk",
	},
	"nplurals=3; plural=(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2;": {
		"cs_CZ", "sk",
	},
	"nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2);": {
		"lv",
	},
	"nplurals=3; plural=(n==1 ? 0 : (n==0 || (n%100 > 0 && n%100 < 20)) ? 1 : 2);": {
		"ro",
	},
	"nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);": {
		"pl",
	},
	"nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2);": {
		"lt",
	},
	"nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);": {
		"be", "bs", "hr", "ru", "uk",
	},
	"nplurals=3; plural=(n == 1 || (n % 10 == 1 && n % 100 != 11)) ? 0 : ((n % 10 >= 2 && n % 10 <= 4 && (n % 100 < 10 || n % 100 >= 20)) ? 1 : 2);": {
		"sr@Cyrl", "sr@latin",
	},
	"nplurals=4; plural=(n%100==1 ? 0 : n%100==2 ? 1 : n%100==3 || n%100==4 ? 2 : 3);": {
		"sl",
	},
	"nplurals=6; plural=(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5);": {
		"ar", "ar_SY",
	},
}

var (
	supportedSet = make(map[Lang]struct{}, len(supported))
	pluralForms  = make(map[Lang]string)
)

func init() {
	for _, l := range supported {
		supportedSet[l] = struct{}{}
	}
	for rule, langs := range pluralRules {
		for _, l := range langs {
			pluralForms[l] = rule
		}
	}
}

// Parse validates a single language code. The sentinel "all" is accepted
// and returned as lang.All; any other code outside the registry yields
// an UnsupportedError. Surrounding whitespace is ignored.
func Parse(code string) (Lang, error) {
	l := Lang(strings.TrimSpace(code))
	if l == All {
		return All, nil
	}
	if _, ok := supportedSet[l]; !ok {
		return "", &UnsupportedError{Code: string(l)}
	}
	return l, nil
}

// ParseList resolves language arguments as they arrive from a command
// line: values may repeat and may themselves be comma-separated, and the
// sentinel "all" expands to the full registry. The result is
// de-duplicated and sorted. An empty input resolves to the full
// registry, matching the "all" default of the po commands.
func ParseList(values []string) ([]Lang, error) {
	if len(values) == 0 {
		return Supported(), nil
	}
	seen := make(map[Lang]struct{})
	var out []Lang
	for _, value := range values {
		for _, code := range strings.Split(value, ",") {
			if strings.TrimSpace(code) == "" {
				continue
			}
			l, err := Parse(code)
			if err != nil {
				return nil, err
			}
			if l == All {
				return Supported(), nil
			}
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Supported returns every supported language code in sorted order. The
// caller owns the returned slice.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// PluralForms returns the gettext Plural-Forms rule for l, or the empty
// string when no rule is registered for that language.
func PluralForms(l Lang) string {
	return pluralForms[l]
}
