package lang

import "testing"

func TestCLDR(t *testing.T) {
	tests := []struct {
		lang Lang
		want string
	}{
		{"fr", "fr"},
		{"pt_BR", "pt-BR"},
		{"es_419", "es-419"},
		{"sr@latin", "sr-Latn"},
		{"sr@Cyrl", "sr-Cyrl"},
		{"ko_KP", "ko-KP"},
		{"kab", "kab"},
		{"zh_TW", "zh-TW"},
	}
	for _, tt := range tests {
		if got := CLDR(tt.lang); got != tt.want {
			t.Errorf("CLDR(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
