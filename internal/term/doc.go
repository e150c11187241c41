// Package term provides the graph term model ordered by internal/order.
//
// This package contains type definitions and constructors only. All other
// internal packages import term; term imports nothing internal.
//
// Key design constraints:
//   - Term and Value are sealed interfaces with a closed set of variants
//   - A literal's typed Value is resolved once at construction, never per comparison
//   - Absent language tag and absent datatype are the empty string
//   - Terms are immutable values, safe to share across goroutines
package term
