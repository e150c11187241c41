// Package lexical produces terms from their textual forms.
//
// It parses the N-Triples term and statement syntax and resolves the typed
// value of every literal whose datatype belongs to a value-compared family.
// The value is resolved exactly once, when the literal is constructed, so
// the comparator in internal/order never re-parses lexical forms.
//
// Lexical forms, language tags and IRIs are kept verbatim. Language tags
// are checked for well-formedness but never case-folded.
package lexical
