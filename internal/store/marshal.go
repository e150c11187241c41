package store

import (
	"fmt"

	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/term"
)

// marshalTerm converts a term to its canonical N-Triples TEXT for storage.
// Terms whose text would not parse back to the same term (a blank label
// with spaces, a typed literal outside its lexical space) are rejected so
// every stored row stays readable by the collation.
func marshalTerm(t term.Term) (string, error) {
	if t == nil {
		return "", fmt.Errorf("marshal term: nil term")
	}
	text := t.String()
	back, err := lexical.ParseTerm(text)
	if err != nil {
		return "", fmt.Errorf("marshal term %s: %w", text, err)
	}
	if back.String() != text {
		return "", fmt.Errorf("marshal term %s: reads back as %s", text, back)
	}
	return text, nil
}

// unmarshalTerm parses stored N-Triples TEXT back into a term. Typed
// literal values are resolved again from the lexical form.
func unmarshalTerm(data string) (term.Term, error) {
	t, err := lexical.ParseTerm(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal term: %w", err)
	}
	return t, nil
}

// scanStatement parses the three stored term columns.
func scanStatement(subject, predicate, object string) (term.Statement, error) {
	s, err := unmarshalTerm(subject)
	if err != nil {
		return term.Statement{}, err
	}
	p, err := unmarshalTerm(predicate)
	if err != nil {
		return term.Statement{}, err
	}
	o, err := unmarshalTerm(object)
	if err != nil {
		return term.Statement{}, err
	}
	return term.NewStatement(s, p, o), nil
}
