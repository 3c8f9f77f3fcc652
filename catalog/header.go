package catalog

import "strings"

// Header is a catalog's metadata block: ordered Key: Value pairs stored,
// per the format's convention, in the translation field of the
// distinguished entry with an empty source text.
type Header struct {
	fields []headerField
}

type headerField struct {
	key   string
	value string
}

// Get returns the value for key, or the empty string when absent.
func (h *Header) Get(key string) string {
	for _, f := range h.fields {
		if f.key == key {
			return f.value
		}
	}
	return ""
}

// Set replaces the value for key in place, preserving its position, or
// appends the field when the key is new.
func (h *Header) Set(key, value string) {
	for i, f := range h.fields {
		if f.key == key {
			h.fields[i].value = value
			return
		}
	}
	h.fields = append(h.fields, headerField{key: key, value: value})
}

// Keys returns the field names in order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.fields))
	for i, f := range h.fields {
		out[i] = f.key
	}
	return out
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.fields)
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	c := &Header{}
	if h.fields != nil {
		c.fields = make([]headerField, len(h.fields))
		copy(c.fields, h.fields)
	}
	return c
}

// parseHeader splits the header entry's translation into ordered fields.
// Lines without a colon continue the previous field's value, which is
// how long values wrap; anything before the first field is dropped.
func parseHeader(msgstr string) *Header {
	h := &Header{}
	for _, line := range strings.Split(msgstr, "\n") {
		if line == "" {
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok && !strings.HasPrefix(line, " ") {
			h.fields = append(h.fields, headerField{
				key:   strings.TrimSpace(key),
				value: strings.TrimSpace(value),
			})
			continue
		}
		if n := len(h.fields); n > 0 {
			h.fields[n-1].value += "\n" + line
		}
	}
	return h
}

// encode renders the fields back into the header entry's translation
// form, one "Key: Value\n" line per field.
func (h *Header) encode() string {
	var b strings.Builder
	for _, f := range h.fields {
		b.WriteString(f.key)
		b.WriteString(": ")
		b.WriteString(f.value)
		b.WriteString("\n")
	}
	return b.String()
}
