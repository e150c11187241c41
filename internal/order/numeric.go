package order

import (
	"cmp"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/rdforder/internal/term"
)

// compareIntegers orders two non-floating numeric values exactly.
//
// Two fixed-width integers use a three-way comparison on int64, never a
// subtraction, so values near the int64 boundaries keep their sign.
// Anything involving a big integer or a decimal is promoted to an
// apd.Decimal. The promotion of every integer width in scope is exact.
func compareIntegers(a, b term.Value) int {
	if x, ok := a.(term.FixedInt); ok {
		if y, ok := b.(term.FixedInt); ok {
			return cmp.Compare(x.V, y.V)
		}
	}
	if x, ok := a.(term.BigInt); ok {
		if y, ok := b.(term.BigInt); ok {
			return x.V.Cmp(y.V)
		}
	}
	return exactDecimal(a).Cmp(exactDecimal(b))
}

func exactDecimal(v term.Value) *apd.Decimal {
	switch n := v.(type) {
	case term.FixedInt:
		return apd.New(n.V, 0)
	case term.BigInt:
		return apd.NewWithBigInt(n.V, 0)
	case term.Decimal:
		return n.V
	}
	panic("order: exactDecimal on non-integer value")
}

// compareFloats orders two floating values. Both are widened to float64
// when either is a double; otherwise they compare at single precision.
// cmp.Compare places NaN first and treats -0 and +0 as equal.
func compareFloats(a, b term.Value) int {
	x, xSingle := a.(term.Float32)
	y, ySingle := b.(term.Float32)
	if xSingle && ySingle {
		return cmp.Compare(float32(x), float32(y))
	}
	return cmp.Compare(widen(a), widen(b))
}

func widen(v term.Value) float64 {
	switch f := v.(type) {
	case term.Float32:
		return float64(f)
	case term.Float64:
		return float64(f)
	}
	panic("order: widen on non-floating value")
}
