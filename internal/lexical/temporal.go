package lexical

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/roach88/rdforder/internal/term"
)

const (
	datePart = `(-?(?:[1-9][0-9]{4,}|[0-9]{4}))-([0-9]{2})-([0-9]{2})`
	timePart = `([0-9]{2}):([0-9]{2}):([0-9]{2})(?:\.([0-9]+))?`
	zonePart = `(Z|[+-][0-9]{2}:[0-9]{2})?`
)

var (
	datePattern     = regexp.MustCompile(`^` + datePart + zonePart + `$`)
	timePattern     = regexp.MustCompile(`^` + timePart + zonePart + `$`)
	dateTimePattern = regexp.MustCompile(`^` + datePart + `T` + timePart + zonePart + `$`)
)

func parseInstant(lex string, kind term.TemporalKind) (term.Value, error) {
	var (
		in        term.Instant
		dateGroup []string
		timeGroup []string
		zone      string
	)
	in.Kind = kind

	switch kind {
	case term.TemporalDate:
		m := datePattern.FindStringSubmatch(lex)
		if m == nil {
			return nil, errPattern
		}
		dateGroup, zone = m[1:4], m[4]
	case term.TemporalTime:
		m := timePattern.FindStringSubmatch(lex)
		if m == nil {
			return nil, errPattern
		}
		timeGroup, zone = m[1:5], m[5]
	default:
		m := dateTimePattern.FindStringSubmatch(lex)
		if m == nil {
			return nil, errPattern
		}
		dateGroup, timeGroup, zone = m[1:4], m[4:8], m[8]
	}

	if dateGroup != nil {
		if err := parseDate(&in, dateGroup); err != nil {
			return nil, err
		}
	}
	if timeGroup != nil {
		if err := parseClock(&in, timeGroup); err != nil {
			return nil, err
		}
	}
	if zone != "" {
		offset, err := parseZone(zone)
		if err != nil {
			return nil, err
		}
		in.HasTZ, in.OffsetMinutes = true, offset
	}
	return in, nil
}

func parseDate(in *term.Instant, g []string) error {
	year, err := strconv.ParseInt(g[0], 10, 32)
	if err != nil {
		return fmt.Errorf("year %s out of range", g[0])
	}
	month, _ := strconv.Atoi(g[1])
	day, _ := strconv.Atoi(g[2])
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > term.DaysInMonth(int(year), month) {
		return fmt.Errorf("day %d out of range for month %d", day, month)
	}
	in.Year, in.Month, in.Day = int(year), month, day
	return nil
}

func parseClock(in *term.Instant, g []string) error {
	hour, _ := strconv.Atoi(g[0])
	minute, _ := strconv.Atoi(g[1])
	second, _ := strconv.Atoi(g[2])
	nanos := fractionNanos(g[3])

	if hour == 24 {
		if minute != 0 || second != 0 || nanos != 0 {
			return errors.New("hour 24 is only allowed as 24:00:00")
		}
		// End of day is the start of the next one.
		hour = 0
		if in.Kind == term.TemporalDateTime {
			in.Year, in.Month, in.Day = term.NextDay(in.Year, in.Month, in.Day)
		}
	}
	if hour > 23 || minute > 59 || second > 59 {
		return fmt.Errorf("time %s:%s:%s out of range", g[0], g[1], g[2])
	}
	in.Hour, in.Minute, in.Second, in.Nanosecond = hour, minute, second, nanos
	return nil
}

// fractionNanos reads fractional seconds, truncated to nanosecond precision.
// Digits past the ninth are dropped, so such values tie with their
// truncation.
func fractionNanos(frac string) int {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	n := 0
	for i := 0; i < 9; i++ {
		n *= 10
		if i < len(frac) {
			n += int(frac[i] - '0')
		}
	}
	return n
}

// parseZone returns the offset east of UTC in minutes.
func parseZone(zone string) (int, error) {
	if zone == "Z" {
		return 0, nil
	}
	hh, _ := strconv.Atoi(zone[1:3])
	mm, _ := strconv.Atoi(zone[4:6])
	if mm > 59 || hh > 14 || (hh == 14 && mm != 0) {
		return 0, fmt.Errorf("timezone %s out of range", zone)
	}
	offset := hh*60 + mm
	if zone[0] == '-' {
		offset = -offset
	}
	return offset, nil
}
