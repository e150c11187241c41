package term

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Value is a sealed interface over the parsed representations backing
// literals of a known datatype Family.
// Only Bool, FixedInt, BigInt, Decimal, Float32, Float64 and Instant implement it.
type Value interface {
	isValue() // Sealed
}

// Bool backs xsd:boolean.
type Bool bool

func (Bool) isValue() {}

// FixedInt backs the bounded integer datatypes and any xsd:integer that
// fits in 64 bits. Width is the declared bit width (8, 16, 32 or 64).
type FixedInt struct {
	Width int
	V     int64
}

func (FixedInt) isValue() {}

// BigInt backs an xsd:integer outside the int64 range.
type BigInt struct {
	V *apd.BigInt
}

func (BigInt) isValue() {}

// Decimal backs xsd:decimal. V is always finite.
type Decimal struct {
	V *apd.Decimal
}

func (Decimal) isValue() {}

// Float32 backs xsd:float.
type Float32 float32

func (Float32) isValue() {}

// Float64 backs xsd:double.
type Float64 float64

func (Float64) isValue() {}

// TemporalKind distinguishes the precision of an Instant.
type TemporalKind int

const (
	TemporalTime TemporalKind = iota
	TemporalDate
	TemporalDateTime
)

func (k TemporalKind) String() string {
	switch k {
	case TemporalTime:
		return "time"
	case TemporalDate:
		return "date"
	case TemporalDateTime:
		return "dateTime"
	default:
		return "unknown"
	}
}

// Instant is a decomposed xsd:time, xsd:date or xsd:dateTime value.
// Date fields are zero for TemporalTime; clock fields are zero for TemporalDate.
type Instant struct {
	Kind       TemporalKind
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	// HasTZ is false for untimezoned values; OffsetMinutes is then ignored.
	HasTZ         bool
	OffsetMinutes int
}

func (Instant) isValue() {}

// xsd:time values are placed on this reference day before comparison.
const (
	timeRefYear  = 1972
	timeRefMonth = 12
	timeRefDay   = 31
)

// Normalize returns the instant shifted onto the UTC time line, with
// OffsetMinutes zero. Untimezoned values are read as UTC and keep HasTZ
// false. xsd:time values are placed on 1972-12-31 so an offset can carry
// them across midnight.
//
// Fields are adjusted arithmetically, so every int year stays exact.
func (i Instant) Normalize() Instant {
	n := i
	if n.Kind == TemporalTime {
		n.Year, n.Month, n.Day = timeRefYear, timeRefMonth, timeRefDay
	}
	if !n.HasTZ {
		n.OffsetMinutes = 0
		return n
	}

	const day = 24 * 60
	minutes := n.Hour*60 + n.Minute - n.OffsetMinutes
	n.OffsetMinutes = 0
	for minutes < 0 {
		minutes += day
		n.Year, n.Month, n.Day = previousDay(n.Year, n.Month, n.Day)
	}
	for minutes >= day {
		minutes -= day
		n.Year, n.Month, n.Day = NextDay(n.Year, n.Month, n.Day)
	}
	n.Hour, n.Minute = minutes/60, minutes%60
	return n
}

// DaysInMonth returns the length of a month in the proleptic Gregorian
// calendar.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// NextDay returns the calendar day after year-month-day.
func NextDay(year, month, day int) (int, int, int) {
	switch {
	case day < DaysInMonth(year, month):
		return year, month, day + 1
	case month < 12:
		return year, month + 1, 1
	default:
		return year + 1, 1, 1
	}
}

func previousDay(year, month, day int) (int, int, int) {
	switch {
	case day > 1:
		return year, month, day - 1
	case month > 1:
		return year, month - 1, DaysInMonth(year, month-1)
	default:
		return year - 1, 12, 31
	}
}

// NewBoolean creates an xsd:boolean literal.
func NewBoolean(b bool) Literal {
	return NewTypedLiteral(strconv.FormatBool(b), XSDBoolean, Bool(b))
}

// NewByte creates an xsd:byte literal.
func NewByte(v int8) Literal {
	return newFixed(int64(v), 8, XSDByte)
}

// NewShort creates an xsd:short literal.
func NewShort(v int16) Literal {
	return newFixed(int64(v), 16, XSDShort)
}

// NewInt creates an xsd:int literal.
func NewInt(v int32) Literal {
	return newFixed(int64(v), 32, XSDInt)
}

// NewLong creates an xsd:long literal.
func NewLong(v int64) Literal {
	return newFixed(v, 64, XSDLong)
}

// NewInteger creates an xsd:integer literal from a machine integer.
func NewInteger(v int64) Literal {
	return newFixed(v, 64, XSDInteger)
}

// NewBigInteger creates an xsd:integer literal of arbitrary size.
// Values that fit in int64 are stored as FixedInt.
func NewBigInteger(v *apd.BigInt) Literal {
	if v.IsInt64() {
		return NewInteger(v.Int64())
	}
	return NewTypedLiteral(v.String(), XSDInteger, BigInt{V: new(apd.BigInt).Set(v)})
}

// NewDecimal creates an xsd:decimal literal. d must be finite.
func NewDecimal(d *apd.Decimal) Literal {
	return NewTypedLiteral(d.Text('f'), XSDDecimal, Decimal{V: new(apd.Decimal).Set(d)})
}

// NewFloat creates an xsd:float literal.
func NewFloat(f float32) Literal {
	return NewTypedLiteral(formatFloat(float64(f), 32), XSDFloat, Float32(f))
}

// NewDouble creates an xsd:double literal.
func NewDouble(f float64) Literal {
	return NewTypedLiteral(formatFloat(f, 64), XSDDouble, Float64(f))
}

func newFixed(v int64, width int, datatype string) Literal {
	return NewTypedLiteral(strconv.FormatInt(v, 10), datatype, FixedInt{Width: width, V: v})
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	default:
		return strconv.FormatFloat(f, 'G', -1, bits)
	}
}
