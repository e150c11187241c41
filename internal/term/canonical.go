package term

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// escapeString escapes a lexical form for an N-Triples string literal.
// Only the characters N-Triples requires are escaped; every other byte,
// including non-ASCII text and invalid UTF-8, is written verbatim.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeIRI writes characters that may not appear inside <...> as UCHAR
// escapes.
func escapeIRI(s string) string {
	if !strings.ContainsFunc(s, needsIRIEscape) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if needsIRIEscape(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsIRIEscape(r rune) bool {
	if r <= 0x20 {
		return true
	}
	switch r {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return false
}

// Canonical renders statements as N-Triples lines, one per statement,
// each terminated by a newline. Order is preserved; callers sort first.
func Canonical(sts []Statement) string {
	var b strings.Builder
	for _, st := range sts {
		b.WriteString(st.String())
		b.WriteByte('\n')
	}
	return b.String()
}
