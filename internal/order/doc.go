// Package order provides the standard total order over graph terms and
// statements.
//
// The order is defined as follows:
//   - Resources (anonymous and named) precede literals
//   - Anonymous resources precede named resources
//   - Two anonymous resources compare by their local ids, two named
//     resources by their URIs (byte-wise string comparison)
//   - Typed literals precede untyped literals
//   - Untyped literals compare by lexical form; on a tie a literal with a
//     language tag precedes one without, and two tags compare lexically
//   - Typed literals with different datatypes compare by datatype URI
//   - Typed literals with the same datatype compare by value for the
//     boolean, non-floating numeric, floating numeric and temporal
//     families, and by lexical form for every other datatype
//
// Statements compare by subject, then predicate, then object.
//
// # Contract
//
// Every comparator returns -1, 0 or +1 and can be passed directly to
// slices.SortFunc and slices.BinarySearchFunc. Comparators are pure: they
// hold no state, never mutate their arguments, and are safe for unbounded
// concurrent use.
//
// A literal whose datatype belongs to a value-compared family but whose
// Value is missing or of the wrong variant violates the term producer's
// contract. The comparator panics with *MalformedLiteralError rather than
// return an order that would corrupt sort invariants.
package order
