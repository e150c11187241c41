// Package store provides a SQLite-backed sorted statement index.
//
// Statements are grouped into named graphs and stored with their terms in
// canonical N-Triples form. Every connection registers the RDFTERM
// collation, which parses both operands and compares them with
// order.CompareTerm, so SQLite can order and index terms in the same
// standard order as the in-memory comparator.
//
// # Identity
//
// Statements are keyed by (graph, term.StatementID). Writing the same
// statement twice is a no-op. Statements equal under the standard order but
// with different lexical forms ("3" and "03" as xsd:int) are distinct rows.
//
// # Deterministic Query Results
//
//   - Sorted reads use ORDER BY subject, predicate, object COLLATE RDFTERM
//   - Ties under the collation fall back to seq ASC, matching a stable sort
//     of the statements in insertion order
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//   - user_version: schema version
package store
