package order

import (
	"cmp"

	"github.com/roach88/rdforder/internal/term"
)

// compareInstants orders two temporal values of the same kind.
// Values compare on the UTC time line, field by field from the year down;
// an untimezoned value precedes a timezoned one at the same instant.
func compareInstants(a, b term.Instant) int {
	x, y := a.Normalize(), b.Normalize()
	return cmp.Or(
		cmp.Compare(x.Year, y.Year),
		cmp.Compare(x.Month, y.Month),
		cmp.Compare(x.Day, y.Day),
		cmp.Compare(x.Hour, y.Hour),
		cmp.Compare(x.Minute, y.Minute),
		cmp.Compare(x.Second, y.Second),
		cmp.Compare(x.Nanosecond, y.Nanosecond),
		compareBool(a.HasTZ, b.HasTZ),
	)
}
