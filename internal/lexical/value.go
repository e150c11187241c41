package lexical

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/rdforder/internal/term"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)
	floatPattern   = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

var errPattern = errors.New("does not match the lexical space")

// NewTypedLiteral builds a literal with datatype and resolves its value.
// Datatypes outside the closed value-compared set keep a nil value and are
// accepted with any lexical form.
func NewTypedLiteral(lex, datatype string) (term.Literal, error) {
	v, err := ParseValue(lex, datatype)
	if err != nil {
		return term.Literal{}, err
	}
	return term.NewTypedLiteral(lex, datatype, v), nil
}

// MustTypedLiteral is like NewTypedLiteral but panics on error.
func MustTypedLiteral(lex, datatype string) term.Literal {
	l, err := NewTypedLiteral(lex, datatype)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseValue resolves the value of lex under datatype. It returns a nil
// value for datatypes of the lexical family.
func ParseValue(lex, datatype string) (term.Value, error) {
	var (
		v   term.Value
		err error
	)
	switch term.FamilyOf(datatype) {
	case term.FamilyBoolean:
		v, err = parseBoolean(lex)
	case term.FamilyInteger:
		if datatype == term.XSDDecimal {
			v, err = parseDecimal(lex)
		} else {
			v, err = parseInteger(lex, term.IntegerWidth(datatype))
		}
	case term.FamilyFloat:
		v, err = parseFloat(lex, datatype == term.XSDFloat)
	case term.FamilyTemporal:
		kind, _ := term.TemporalKindOf(datatype)
		v, err = parseInstant(lex, kind)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, &ValueError{Lexical: lex, Datatype: datatype, Err: err}
	}
	return v, nil
}

func parseBoolean(lex string) (term.Value, error) {
	switch lex {
	case "true", "1":
		return term.Bool(true), nil
	case "false", "0":
		return term.Bool(false), nil
	}
	return nil, errPattern
}

// parseInteger parses a bounded integer of the given width, or an
// unbounded xsd:integer when width is 0.
func parseInteger(lex string, width int) (term.Value, error) {
	if !integerPattern.MatchString(lex) {
		return nil, errPattern
	}
	bits := width
	if bits == 0 {
		bits = 64
	}
	n, err := strconv.ParseInt(lex, 10, bits)
	if err == nil {
		return term.FixedInt{Width: bits, V: n}, nil
	}
	if width != 0 || !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("out of range for %d bits", bits)
	}

	b, ok := new(apd.BigInt).SetString(lex, 10)
	if !ok {
		return nil, errPattern
	}
	return term.BigInt{V: b}, nil
}

func parseDecimal(lex string) (term.Value, error) {
	if !decimalPattern.MatchString(lex) {
		return nil, errPattern
	}
	s := lex
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if i := strings.IndexByte(s, '.'); i == 0 || (i == 1 && (s[0] == '+' || s[0] == '-')) {
		s = s[:i] + "0" + s[i:]
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return term.Decimal{V: d}, nil
}

func parseFloat(lex string, single bool) (term.Value, error) {
	var f float64
	switch lex {
	case "INF", "+INF":
		f = math.Inf(1)
	case "-INF":
		f = math.Inf(-1)
	case "NaN":
		f = math.NaN()
	default:
		if !floatPattern.MatchString(lex) {
			return nil, errPattern
		}
		bits := 64
		if single {
			bits = 32
		}
		var err error
		f, err = strconv.ParseFloat(lex, bits)
		// Out-of-range values round to zero or infinity.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
	}
	if single {
		return term.Float32(f), nil
	}
	return term.Float64(f), nil
}
