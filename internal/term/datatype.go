package term

// XSD is the XML Schema datatype namespace.
const XSD = "http://www.w3.org/2001/XMLSchema#"

// Well-known datatype URIs.
const (
	XSDBoolean  = XSD + "boolean"
	XSDByte     = XSD + "byte"
	XSDShort    = XSD + "short"
	XSDInt      = XSD + "int"
	XSDLong     = XSD + "long"
	XSDInteger  = XSD + "integer"
	XSDDecimal  = XSD + "decimal"
	XSDFloat    = XSD + "float"
	XSDDouble   = XSD + "double"
	XSDTime     = XSD + "time"
	XSDDate     = XSD + "date"
	XSDDateTime = XSD + "dateTime"
	XSDString   = XSD + "string"
	XSDNCName   = XSD + "NCName"
)

// Family groups datatypes that share one value-comparison strategy.
type Family int

const (
	// FamilyLexical covers every datatype outside the closed set below.
	// Literals of this family compare by lexical form.
	FamilyLexical Family = iota
	FamilyBoolean
	// FamilyInteger is the non-floating numeric family: byte, short, int,
	// long, integer and decimal.
	FamilyInteger
	FamilyFloat
	FamilyTemporal
)

func (f Family) String() string {
	switch f {
	case FamilyLexical:
		return "lexical"
	case FamilyBoolean:
		return "boolean"
	case FamilyInteger:
		return "integer"
	case FamilyFloat:
		return "float"
	case FamilyTemporal:
		return "temporal"
	default:
		return "unknown"
	}
}

var families = map[string]Family{
	XSDBoolean:  FamilyBoolean,
	XSDByte:     FamilyInteger,
	XSDShort:    FamilyInteger,
	XSDInt:      FamilyInteger,
	XSDLong:     FamilyInteger,
	XSDInteger:  FamilyInteger,
	XSDDecimal:  FamilyInteger,
	XSDFloat:    FamilyFloat,
	XSDDouble:   FamilyFloat,
	XSDTime:     FamilyTemporal,
	XSDDate:     FamilyTemporal,
	XSDDateTime: FamilyTemporal,
}

// FamilyOf classifies a datatype URI. Unknown and empty URIs are FamilyLexical.
func FamilyOf(datatype string) Family {
	if f, ok := families[datatype]; ok {
		return f
	}
	return FamilyLexical
}

// IntegerWidth returns the fixed bit width for the bounded integer
// datatypes (byte, short, int, long) and 0 for everything else.
func IntegerWidth(datatype string) int {
	switch datatype {
	case XSDByte:
		return 8
	case XSDShort:
		return 16
	case XSDInt:
		return 32
	case XSDLong:
		return 64
	default:
		return 0
	}
}

// TemporalKindOf returns the temporal kind for time, date and dateTime.
// ok is false for any other datatype.
func TemporalKindOf(datatype string) (kind TemporalKind, ok bool) {
	switch datatype {
	case XSDTime:
		return TemporalTime, true
	case XSDDate:
		return TemporalDate, true
	case XSDDateTime:
		return TemporalDateTime, true
	default:
		return 0, false
	}
}
