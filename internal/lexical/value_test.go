package lexical

import (
	"errors"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rdforder/internal/term"
)

func TestParseValueBoolean(t *testing.T) {
	for lex, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false} {
		v, err := ParseValue(lex, term.XSDBoolean)
		require.NoError(t, err, lex)
		assert.Equal(t, term.Bool(want), v, lex)
	}

	_, err := ParseValue("TRUE", term.XSDBoolean)
	assert.Error(t, err)
}

func TestParseValueFixedWidth(t *testing.T) {
	tests := []struct {
		lex      string
		datatype string
		want     term.Value
		wantErr  bool
	}{
		{"127", term.XSDByte, term.FixedInt{Width: 8, V: 127}, false},
		{"-128", term.XSDByte, term.FixedInt{Width: 8, V: -128}, false},
		{"128", term.XSDByte, nil, true},
		{"+0300", term.XSDShort, term.FixedInt{Width: 16, V: 300}, false},
		{"40000", term.XSDShort, nil, true},
		{"2147483647", term.XSDInt, term.FixedInt{Width: 32, V: 2147483647}, false},
		{"2147483648", term.XSDInt, nil, true},
		{"-9223372036854775808", term.XSDLong, term.FixedInt{Width: 64, V: math.MinInt64}, false},
		{"9223372036854775808", term.XSDLong, nil, true},
		{"1.0", term.XSDInt, nil, true},
		{"1_000", term.XSDInt, nil, true},
		{"", term.XSDInt, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.datatype+"/"+tt.lex, func(t *testing.T) {
			v, err := ParseValue(tt.lex, tt.datatype)
			if tt.wantErr {
				var ve *ValueError
				require.True(t, errors.As(err, &ve))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseValueInteger(t *testing.T) {
	v, err := ParseValue("42", term.XSDInteger)
	require.NoError(t, err)
	assert.Equal(t, term.FixedInt{Width: 64, V: 42}, v)

	v, err = ParseValue("-123456789012345678901234567890", term.XSDInteger)
	require.NoError(t, err)
	big, ok := v.(term.BigInt)
	require.True(t, ok)
	assert.Equal(t, "-123456789012345678901234567890", big.V.String())
}

func TestParseValueDecimal(t *testing.T) {
	tests := []struct {
		lex  string
		want *apd.Decimal
	}{
		{"1.25", apd.New(125, -2)},
		{"-0.5", apd.New(-5, -1)},
		{".5", apd.New(5, -1)},
		{"-.5", apd.New(-5, -1)},
		{"5.", apd.New(50, -1)},
		{"+7", apd.New(7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.lex, func(t *testing.T) {
			v, err := ParseValue(tt.lex, term.XSDDecimal)
			require.NoError(t, err)
			d, ok := v.(term.Decimal)
			require.True(t, ok)
			assert.Zero(t, d.V.Cmp(tt.want), "got %s", d.V)
		})
	}

	for _, bad := range []string{"1e3", "INF", "NaN", ".", "1.2.3", ""} {
		_, err := ParseValue(bad, term.XSDDecimal)
		assert.Error(t, err, bad)
	}
}

func TestParseValueFloat(t *testing.T) {
	v, err := ParseValue("1.5E2", term.XSDDouble)
	require.NoError(t, err)
	assert.Equal(t, term.Float64(150), v)

	v, err = ParseValue("0.1", term.XSDFloat)
	require.NoError(t, err)
	assert.Equal(t, term.Float32(0.1), v)

	v, err = ParseValue("INF", term.XSDFloat)
	require.NoError(t, err)
	assert.Equal(t, term.Float32(float32(math.Inf(1))), v)

	v, err = ParseValue("-INF", term.XSDDouble)
	require.NoError(t, err)
	assert.Equal(t, term.Float64(math.Inf(-1)), v)

	v, err = ParseValue("NaN", term.XSDDouble)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(v.(term.Float64))))

	v, err = ParseValue("1e400", term.XSDDouble)
	require.NoError(t, err, "overflow rounds to infinity")
	assert.True(t, math.IsInf(float64(v.(term.Float64)), 1))

	for _, bad := range []string{"inf", "Infinity", "nan", "0x1p3", "1_0", "e5", ""} {
		_, err := ParseValue(bad, term.XSDDouble)
		assert.Error(t, err, bad)
	}
}

func TestParseValueTemporal(t *testing.T) {
	tests := []struct {
		name     string
		lex      string
		datatype string
		want     term.Instant
	}{
		{
			"date", "2009-01-17", term.XSDDate,
			term.Instant{Kind: term.TemporalDate, Year: 2009, Month: 1, Day: 17},
		},
		{
			"date with zone", "2009-01-17Z", term.XSDDate,
			term.Instant{Kind: term.TemporalDate, Year: 2009, Month: 1, Day: 17, HasTZ: true},
		},
		{
			"negative year", "-0044-03-15", term.XSDDate,
			term.Instant{Kind: term.TemporalDate, Year: -44, Month: 3, Day: 15},
		},
		{
			"largest year", "2147483647-12-31", term.XSDDate,
			term.Instant{Kind: term.TemporalDate, Year: 2147483647, Month: 12, Day: 31},
		},
		{
			"time", "12:34:56", term.XSDTime,
			term.Instant{Kind: term.TemporalTime, Hour: 12, Minute: 34, Second: 56},
		},
		{
			"time fraction", "12:34:56.5", term.XSDTime,
			term.Instant{Kind: term.TemporalTime, Hour: 12, Minute: 34, Second: 56, Nanosecond: 500000000},
		},
		{
			"fraction truncated", "00:00:00.1234567891", term.XSDTime,
			term.Instant{Kind: term.TemporalTime, Nanosecond: 123456789},
		},
		{
			"end of day time", "24:00:00", term.XSDTime,
			term.Instant{Kind: term.TemporalTime},
		},
		{
			"dateTime offset", "2009-01-18T13:00:00+01:00", term.XSDDateTime,
			term.Instant{Kind: term.TemporalDateTime, Year: 2009, Month: 1, Day: 18, Hour: 13, HasTZ: true, OffsetMinutes: 60},
		},
		{
			"dateTime negative offset", "2009-01-18T13:00:00-05:30", term.XSDDateTime,
			term.Instant{Kind: term.TemporalDateTime, Year: 2009, Month: 1, Day: 18, Hour: 13, HasTZ: true, OffsetMinutes: -330},
		},
		{
			"end of day rolls over", "2008-12-31T24:00:00", term.XSDDateTime,
			term.Instant{Kind: term.TemporalDateTime, Year: 2009, Month: 1, Day: 1},
		},
		{
			"leap day", "2000-02-29T00:00:00", term.XSDDateTime,
			term.Instant{Kind: term.TemporalDateTime, Year: 2000, Month: 2, Day: 29},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.lex, tt.datatype)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseValueTemporalErrors(t *testing.T) {
	tests := []struct {
		lex      string
		datatype string
	}{
		{"2009-13-01", term.XSDDate},
		{"2009-02-29", term.XSDDate},
		{"1900-02-29", term.XSDDate},
		{"2009-1-01", term.XSDDate},
		{"09-01-01", term.XSDDate},
		{"25:00:00", term.XSDTime},
		{"24:00:01", term.XSDTime},
		{"12:60:00", term.XSDTime},
		{"12:00", term.XSDTime},
		{"12:00:00+15:00", term.XSDTime},
		{"12:00:00+14:30", term.XSDTime},
		{"2009-01-18 13:00:00", term.XSDDateTime},
		{"2009-01-18", term.XSDDateTime},
		{"12:00:00", term.XSDDate},
		{"2147483648-01-01", term.XSDDate},
		{"300000000000-01-01", term.XSDDate},
		{"-2147483649-01-01T00:00:00", term.XSDDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.lex, func(t *testing.T) {
			_, err := ParseValue(tt.lex, tt.datatype)
			assert.Error(t, err)
		})
	}
}

func TestParseValueLexicalFamily(t *testing.T) {
	v, err := ParseValue("anything at all", "http://example.com/dt")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseValue("x", term.XSDString)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNewTypedLiteral(t *testing.T) {
	l, err := NewTypedLiteral("0020", term.XSDInt)
	require.NoError(t, err)
	assert.Equal(t, "0020", l.Lexical, "lexical form is kept verbatim")
	assert.Equal(t, term.FixedInt{Width: 32, V: 20}, l.Value)

	_, err = NewTypedLiteral("x", term.XSDInt)
	var ve *ValueError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), `invalid lexical form "x"`)

	assert.Panics(t, func() { MustTypedLiteral("x", term.XSDBoolean) })
	assert.Equal(t, term.NewBoolean(true), MustTypedLiteral("true", term.XSDBoolean))
}
