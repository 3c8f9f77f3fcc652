package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/erptools/erptk/catalog"
)

const samplePO = `# Translation of mail.
# Second comment line.
msgid ""
msgstr ""
"Project-Id-Version: mail 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Language: fr\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

#. module: mail
#: code:addons/mail/models/mail_thread.py:42
#: code:addons/mail/wizard/invite.py:7
msgid "Send a message"
msgstr "Envoyer un message"

# A translator note.
#, fuzzy, python-format
msgid "Hello %s"
msgstr "Bonjour %s"

msgctxt "email header"
msgid "Subject"
msgstr "Objet"

msgid "One attachment"
msgid_plural "%d attachments"
msgstr[0] "Une pièce jointe"
msgstr[1] "%d pièces jointes"

msgid "Line one.\n"
"Line two."
msgstr ""
"Ligne un.\n"
"Ligne deux."

#~ msgid "Old string"
#~ msgstr "Vieille chaîne"
`

func mustParse(t *testing.T, src string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return c
}

func catalogsEqual(t *testing.T, a, b *catalog.Catalog) {
	t.Helper()
	if !reflect.DeepEqual(a.HeaderComment, b.HeaderComment) {
		t.Errorf("header comments differ: %q vs %q", a.HeaderComment, b.HeaderComment)
	}
	if !reflect.DeepEqual(a.Header().Keys(), b.Header().Keys()) {
		t.Fatalf("header keys differ: %v vs %v", a.Header().Keys(), b.Header().Keys())
	}
	for _, key := range a.Header().Keys() {
		if av, bv := a.Header().Get(key), b.Header().Get(key); av != bv {
			t.Errorf("header %q differs: %q vs %q", key, av, bv)
		}
	}
	if a.Len() != b.Len() {
		t.Fatalf("entry counts differ: %d vs %d", a.Len(), b.Len())
	}
	for i, ae := range a.Entries() {
		be := b.Entries()[i]
		if !reflect.DeepEqual(ae, be) {
			t.Errorf("entry %d differs:\n%+v\nvs\n%+v", i, ae, be)
		}
	}
}

func TestParse(t *testing.T) {
	c := mustParse(t, samplePO)

	wantComments := []string{"Translation of mail.", "Second comment line."}
	if !reflect.DeepEqual(c.HeaderComment, wantComments) {
		t.Errorf("HeaderComment = %q, want %q", c.HeaderComment, wantComments)
	}
	if got := c.Header().Get("Language"); got != "fr" {
		t.Errorf("Language = %q, want %q", got, "fr")
	}
	if got := c.Header().Get("Plural-Forms"); got != "nplurals=2; plural=(n > 1);" {
		t.Errorf("Plural-Forms = %q", got)
	}
	if c.Len() != 6 {
		t.Fatalf("Len = %d, want 6", c.Len())
	}

	e := c.Entries()[0]
	if e.ID != "Send a message" || e.Str != "Envoyer un message" {
		t.Errorf("entry 0 = %q/%q", e.ID, e.Str)
	}
	if !reflect.DeepEqual(e.ExtractedComments, []string{"module: mail"}) {
		t.Errorf("extracted comments = %q", e.ExtractedComments)
	}
	wantRefs := []string{
		"code:addons/mail/models/mail_thread.py:42",
		"code:addons/mail/wizard/invite.py:7",
	}
	if !reflect.DeepEqual(e.References, wantRefs) {
		t.Errorf("references = %q, want %q", e.References, wantRefs)
	}

	e = c.Entries()[1]
	if !e.Fuzzy {
		t.Error("entry 1 should be fuzzy")
	}
	if !reflect.DeepEqual(e.Flags, []string{"python-format"}) {
		t.Errorf("flags = %q, want [python-format]", e.Flags)
	}
	if !reflect.DeepEqual(e.Comments, []string{"A translator note."}) {
		t.Errorf("comments = %q", e.Comments)
	}

	e = c.Entries()[2]
	if e.Context != "email header" || e.ID != "Subject" {
		t.Errorf("entry 2 context/id = %q/%q", e.Context, e.ID)
	}

	e = c.Entries()[3]
	if !e.Plural() || e.IDPlural != "%d attachments" {
		t.Errorf("entry 3 plural id = %q", e.IDPlural)
	}
	if !reflect.DeepEqual(e.PluralStr, []string{"Une pièce jointe", "%d pièces jointes"}) {
		t.Errorf("entry 3 plural translations = %q", e.PluralStr)
	}

	e = c.Entries()[4]
	if e.ID != "Line one.\nLine two." {
		t.Errorf("entry 4 id = %q", e.ID)
	}
	if e.Str != "Ligne un.\nLigne deux." {
		t.Errorf("entry 4 str = %q", e.Str)
	}

	e = c.Entries()[5]
	if !e.Obsolete || e.ID != "Old string" || e.Str != "Vieille chaîne" {
		t.Errorf("entry 5 = %+v", e)
	}
}

func TestParseEscapes(t *testing.T) {
	c := mustParse(t, `msgid ""
msgstr ""

msgid "Quote \" backslash \\ tab \t end"
msgstr "CR \r done"
`)
	e := c.Entries()[0]
	if e.ID != "Quote \" backslash \\ tab \t end" {
		t.Errorf("ID = %q", e.ID)
	}
	if e.Str != "CR \r done" {
		t.Errorf("Str = %q", e.Str)
	}
}

func TestParseWithoutHeader(t *testing.T) {
	c := mustParse(t, `msgid "Standalone"
msgstr ""
`)
	if c.Header().Len() != 0 {
		t.Errorf("header should be empty, has keys %v", c.Header().Keys())
	}
	if c.Len() != 1 || c.Entries()[0].ID != "Standalone" {
		t.Fatalf("unexpected entries: %d", c.Len())
	}
}

func TestParseCRLF(t *testing.T) {
	src := strings.ReplaceAll("msgid \"\"\nmsgstr \"\"\n\nmsgid \"A\"\nmsgstr \"B\"\n", "\n", "\r\n")
	c := mustParse(t, src)
	if c.Len() != 1 || c.Entries()[0].Str != "B" {
		t.Fatalf("CRLF input parsed wrong: %+v", c.Entries())
	}
}

func TestParseMissingBlankSeparators(t *testing.T) {
	// Tolerated: a comment or msgid directly after the previous msgstr
	// opens the next block.
	c := mustParse(t, `msgid ""
msgstr ""
# note
msgid "a"
msgstr "1"
msgid "b"
msgstr "2"
`)
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if !reflect.DeepEqual(c.Entries()[0].Comments, []string{"note"}) {
		t.Errorf("comment attached wrong: %q", c.Entries()[0].Comments)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
	}{
		{"unterminated string", "msgid \"abc\nmsgstr \"\"\n", 1},
		{"unexpected content after quote", "msgid \"a\" tail\nmsgstr \"\"\n", 1},
		{"continuation without keyword", "\"floating\"\n", 1},
		{"msgstr before msgid", "msgstr \"x\"\n", 1},
		{"duplicate msgid keyword", "msgid \"a\"\nmsgid \"b\"\nmsgstr \"\"\n", 2},
		{"block without msgid", "# a comment\n#, fuzzy\n", 1},
		{"block without msgstr", "msgid \"a\"\n\nmsgid \"b\"\nmsgstr \"\"\n", 1},
		{"unexpected input", "msgid \"a\"\nnonsense here\n", 2},
		{"plural index out of sequence", "msgid \"a\"\nmsgid_plural \"as\"\nmsgstr[1] \"x\"\n", 3},
		{"plural msgstr without index", "msgid \"a\"\nmsgid_plural \"as\"\nmsgstr \"x\"\n", 3},
		{"index on non-plural entry", "msgid \"a\"\nmsgstr[0] \"x\"\n", 2},
		{"duplicate entry", "msgid \"a\"\nmsgstr \"1\"\n\nmsgid \"a\"\nmsgstr \"2\"\n", 4},
		{"misplaced header", "msgid \"a\"\nmsgstr \"1\"\n\nmsgid \"\"\nmsgstr \"x\"\n", 4},
		{"msgctxt after msgid", "msgid \"a\"\nmsgctxt \"c\"\nmsgstr \"\"\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Parse succeeded, want MalformedError")
			}
			var m *catalog.MalformedError
			if !errors.As(err, &m) {
				t.Fatalf("error = %T (%v), want *MalformedError", err, err)
			}
			if m.Line != tt.wantLine {
				t.Errorf("error line = %d, want %d (%v)", m.Line, tt.wantLine, err)
			}
		})
	}
}

func TestParseFileSetsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.po")
	if err := os.WriteFile(path, []byte("msgid \"unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := catalog.ParseFile(path)
	var m *catalog.MalformedError
	if !errors.As(err, &m) {
		t.Fatalf("error = %T (%v), want *MalformedError", err, err)
	}
	if m.File != path {
		t.Errorf("File = %q, want %q", m.File, path)
	}
	if !strings.Contains(err.Error(), path+":1:") {
		t.Errorf("message %q does not cite file and line", err.Error())
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := catalog.ParseFile(filepath.Join(t.TempDir(), "nope.po"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
}

func TestRoundTrip(t *testing.T) {
	original := mustParse(t, samplePO)
	reparsed := mustParse(t, original.String())
	catalogsEqual(t, original, reparsed)

	// A second write of the reparsed catalog is byte-stable.
	if original.String() != reparsed.String() {
		t.Error("write is not stable across a round trip")
	}
}
