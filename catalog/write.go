package catalog

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write serializes the catalog in the on-disk format: the header block
// first, then every entry in sequence order, blocks separated by blank
// lines. The output is consumable by the standard gettext tooling.
func (c *Catalog) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.writeHeader(bw)
	for _, e := range c.entries {
		bw.WriteByte('\n')
		writeEntry(bw, e)
	}
	return bw.Flush()
}

// Save writes the catalog to path, replacing any existing file.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// String renders the catalog as Write would emit it.
func (c *Catalog) String() string {
	var b strings.Builder
	_ = c.Write(&b)
	return b.String()
}

func (c *Catalog) writeHeader(w *bufio.Writer) {
	for _, line := range c.HeaderComment {
		writeComment(w, "#", line)
	}
	if len(c.headerFlags) > 0 {
		w.WriteString("#, " + strings.Join(c.headerFlags, ", ") + "\n")
	}
	w.WriteString("msgid \"\"\n")
	writeString(w, "", "msgstr", c.header.encode())
}

func writeEntry(w *bufio.Writer, e *Entry) {
	for _, line := range e.Comments {
		writeComment(w, "#", line)
	}
	for _, line := range e.ExtractedComments {
		writeComment(w, "#.", line)
	}
	if len(e.References) > 0 {
		w.WriteString("#: " + strings.Join(e.References, " ") + "\n")
	}
	if e.Fuzzy || len(e.Flags) > 0 {
		flags := e.Flags
		if e.Fuzzy {
			flags = append([]string{"fuzzy"}, e.Flags...)
		}
		w.WriteString("#, " + strings.Join(flags, ", ") + "\n")
	}
	for _, line := range e.Previous {
		writeComment(w, "#|", line)
	}

	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}
	if e.Context != "" {
		writeString(w, prefix, "msgctxt", e.Context)
	}
	writeString(w, prefix, "msgid", e.ID)
	if !e.Plural() {
		writeString(w, prefix, "msgstr", e.Str)
		return
	}
	writeString(w, prefix, "msgid_plural", e.IDPlural)
	if len(e.PluralStr) == 0 {
		writeString(w, prefix, "msgstr[0]", "")
		writeString(w, prefix, "msgstr[1]", "")
		return
	}
	for i, s := range e.PluralStr {
		writeString(w, prefix, "msgstr["+strconv.Itoa(i)+"]", s)
	}
}

func writeComment(w *bufio.Writer, marker, text string) {
	if text == "" {
		w.WriteString(marker + "\n")
		return
	}
	w.WriteString(marker + " " + text + "\n")
}

// writeString emits a keyword line with its quoted value. Values with
// embedded newlines use the continuation form: an empty string on the
// keyword line, then one quoted segment per line.
func writeString(w *bufio.Writer, prefix, keyword, value string) {
	if !strings.Contains(value, "\n") {
		w.WriteString(prefix + keyword + " \"" + escape(value) + "\"\n")
		return
	}
	w.WriteString(prefix + keyword + " \"\"\n")
	segments := strings.SplitAfter(value, "\n")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	for _, seg := range segments {
		w.WriteString(prefix + "\"" + escape(seg) + "\"\n")
	}
}

func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
