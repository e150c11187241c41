// Package harness runs ordering scenarios against the term comparator.
//
// A scenario is a YAML file listing terms and statements in their expected
// ascending order, plus individual comparisons:
//
//	name: kind-precedence
//	description: resources precede literals
//	terms:
//	  - "_:b0"
//	  - "<http://ex/r0>"
//	  - '"l0"'
//	pairs:
//	  - {a: '"foo"@en', b: '"foo"@de', expect: greater}
//
// Run checks every pair in both directions, re-sorts reversed and rotated
// copies of the lists and requires the declared order back, and verifies
// reflexivity, antisymmetry and transitivity over every pair and triple of
// listed items. Assertions add min/max, distinct-count and store checks;
// store_order round-trips the statements through the SQLite index.
//
// RunWithGolden snapshots the sorted rendering under testdata/golden.
package harness
