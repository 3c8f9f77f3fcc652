package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a catalog from r. The input is a sequence of entry blocks
// separated by blank lines; the first block with an empty source text is
// taken as the header. Content the parser cannot make sense of yields a
// MalformedError carrying the 1-based line number; there is no partial
// result.
func Parse(r io.Reader) (*Catalog, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lines:   lines,
		cat:     New(),
		defined: make(map[Key]int),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.cat, nil
}

// ParseFile reads the catalog at path. A MalformedError is reported with
// the file path filled in.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		var m *MalformedError
		if errors.As(err, &m) {
			m.File = path
		}
		return nil, err
	}
	return c, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

type parser struct {
	lines   []string
	pos     int
	cat     *Catalog
	defined map[Key]int // key -> line of first definition
}

func (p *parser) lineNo() int {
	return p.pos + 1
}

func (p *parser) run() error {
	for {
		for p.pos < len(p.lines) && strings.TrimSpace(p.lines[p.pos]) == "" {
			p.pos++
		}
		if p.pos >= len(p.lines) {
			return nil
		}
		if err := p.block(); err != nil {
			return err
		}
	}
}

// block consumes one entry block. It stops at a blank line, at end of
// input, or — for inputs without blank separators — at a line that can
// only open the next entry.
func (p *parser) block() error {
	e := &Entry{}
	start := p.lineNo()
	var field *string
	sawMsgid, sawMsgstr, sawCtx := false, false, false

loop:
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if strings.TrimSpace(line) == "" {
			p.pos++
			break
		}

		content, obsolete := line, false
		if strings.HasPrefix(line, "#~") {
			content = strings.TrimPrefix(line[2:], " ")
			obsolete = true
		}

		switch {
		case !obsolete && strings.HasPrefix(content, "#"):
			if sawMsgstr {
				break loop // comment opens the next block
			}
			p.comment(e, content)
			p.pos++

		case strings.HasPrefix(content, `"`):
			if field == nil {
				return malformed(p.lineNo(), "string continuation without a preceding keyword")
			}
			s, err := p.unquote(content)
			if err != nil {
				return err
			}
			*field += s
			p.pos++

		default:
			kw, rest, _ := strings.Cut(content, " ")
			rest = strings.TrimLeft(rest, " \t")
			switch {
			case kw == "msgctxt":
				if sawMsgstr {
					break loop
				}
				if sawCtx || sawMsgid {
					return malformed(p.lineNo(), "unexpected msgctxt")
				}
				sawCtx = true
				if err := p.setString(rest, &e.Context); err != nil {
					return err
				}
				field = &e.Context

			case kw == "msgid":
				if sawMsgstr {
					break loop
				}
				if sawMsgid {
					return malformed(p.lineNo(), "duplicate msgid")
				}
				sawMsgid = true
				if err := p.setString(rest, &e.ID); err != nil {
					return err
				}
				field = &e.ID

			case kw == "msgid_plural":
				if !sawMsgid || sawMsgstr || e.IDPlural != "" {
					return malformed(p.lineNo(), "unexpected msgid_plural")
				}
				if err := p.setString(rest, &e.IDPlural); err != nil {
					return err
				}
				field = &e.IDPlural

			case kw == "msgstr":
				if !sawMsgid {
					return malformed(p.lineNo(), "msgstr before msgid")
				}
				if e.IDPlural != "" {
					return malformed(p.lineNo(), "missing plural index on msgstr")
				}
				if sawMsgstr {
					return malformed(p.lineNo(), "duplicate msgstr")
				}
				sawMsgstr = true
				if err := p.setString(rest, &e.Str); err != nil {
					return err
				}
				field = &e.Str

			case strings.HasPrefix(kw, "msgstr[") && strings.HasSuffix(kw, "]"):
				if !sawMsgid {
					return malformed(p.lineNo(), "msgstr before msgid")
				}
				if e.IDPlural == "" {
					return malformed(p.lineNo(), "plural translation in a non-plural entry")
				}
				idx, err := strconv.Atoi(kw[len("msgstr[") : len(kw)-1])
				if err != nil {
					return malformed(p.lineNo(), "invalid plural index in %q", kw)
				}
				if idx != len(e.PluralStr) {
					return malformed(p.lineNo(), "plural translation index %d out of sequence", idx)
				}
				sawMsgstr = true
				e.PluralStr = append(e.PluralStr, "")
				if err := p.setString(rest, &e.PluralStr[len(e.PluralStr)-1]); err != nil {
					return err
				}
				field = &e.PluralStr[len(e.PluralStr)-1]

			default:
				return malformed(p.lineNo(), "unexpected input %q", firstToken(content))
			}
			if obsolete {
				e.Obsolete = true
			}
			p.pos++
		}
	}

	return p.finish(e, start, sawMsgid, sawMsgstr)
}

func (p *parser) finish(e *Entry, start int, sawMsgid, sawMsgstr bool) error {
	if !sawMsgid {
		return malformed(start, "entry block without msgid")
	}
	if !sawMsgstr {
		return malformed(start, "entry block without msgstr")
	}
	key := e.Key()
	if prev, dup := p.defined[key]; dup {
		return malformed(start, "duplicate definition of %s (first defined at line %d)", describeKey(key), prev)
	}
	p.defined[key] = start

	if e.ID == "" && e.Context == "" && !e.Obsolete {
		if p.cat.Len() > 0 {
			return malformed(start, "misplaced header block")
		}
		p.cat.HeaderComment = e.Comments
		p.cat.headerFlags = e.Flags
		if e.Fuzzy {
			p.cat.headerFlags = append([]string{"fuzzy"}, e.Flags...)
		}
		p.cat.header = parseHeader(e.Str)
		return nil
	}
	p.cat.Add(e)
	return nil
}

// comment files one comment line into the right bucket on e. The line
// starts with "#"; obsolete markers never reach here.
func (p *parser) comment(e *Entry, line string) {
	switch {
	case strings.HasPrefix(line, "#."):
		e.ExtractedComments = append(e.ExtractedComments, stripMarker(line[2:]))
	case strings.HasPrefix(line, "#:"):
		e.References = append(e.References, strings.Fields(line[2:])...)
	case strings.HasPrefix(line, "#,"):
		for _, flag := range strings.Split(line[2:], ",") {
			flag = strings.TrimSpace(flag)
			switch flag {
			case "":
			case "fuzzy":
				e.Fuzzy = true
			default:
				e.Flags = append(e.Flags, flag)
			}
		}
	case strings.HasPrefix(line, "#|"):
		e.Previous = append(e.Previous, stripMarker(line[2:]))
	default:
		e.Comments = append(e.Comments, stripMarker(line[1:]))
	}
}

// setString parses the quoted string that must follow a keyword.
func (p *parser) setString(rest string, target *string) error {
	if rest == "" {
		return malformed(p.lineNo(), "expected quoted string")
	}
	s, err := p.unquote(rest)
	if err != nil {
		return err
	}
	*target = s
	return nil
}

// unquote decodes one quoted string segment, handling the \n \t \r \" \\
// escapes. Unknown escapes keep the escaped character, as the reference
// tools do.
func (p *parser) unquote(s string) (string, error) {
	if s == "" || s[0] != '"' {
		return "", malformed(p.lineNo(), "expected quoted string")
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			for j := i + 1; j < len(s); j++ {
				if s[j] != ' ' && s[j] != '\t' {
					return "", malformed(p.lineNo(), "unexpected content after closing quote")
				}
			}
			return b.String(), nil
		case '\\':
			i++
			if i >= len(s) {
				return "", malformed(p.lineNo(), "unterminated string")
			}
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(s[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", malformed(p.lineNo(), "unterminated string")
}

func stripMarker(s string) string {
	return strings.TrimPrefix(s, " ")
}

func firstToken(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

func describeKey(k Key) string {
	if k.Context == "" {
		return fmt.Sprintf("msgid %q", k.ID)
	}
	return fmt.Sprintf("msgid %q with context %q", k.ID, k.Context)
}
