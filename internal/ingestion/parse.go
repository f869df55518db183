// Package ingestion turns the office's hand-maintained yearly fee
// spreadsheets into normalized records. The sheets are semi-structured and
// frequently contain stray text, so every parser here is best-effort: bad
// input yields "absent", never an error.
package ingestion

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// monthAbbrev maps pt-BR month names and their 3-letter abbreviations to the
// month number. Lookup is done on the first three letters of the token.
var monthAbbrev = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

var (
	dayMonthNameRe = regexp.MustCompile(`^(\d{1,2})[/\-\\](\pL+)`)
	numericDateRe  = regexp.MustCompile(`^(\d{1,2})[/\-\\](\d{1,2})(?:[/\-\\](\d{2,4}))?`)
)

// ParseAmount converts a raw cell into a positive decimal amount.
//
// Text cells follow the Brazilian convention: optional "R$" prefix, "." as
// thousands separator, "," as decimal separator ("R$ 1.234,56"). Cells that
// excelize reads as raw numbers come with a plain "." decimal and no comma,
// so a string without a comma is parsed as-is. Empty, unparseable and
// non-positive values all report ok=false; callers treat those as "no charge
// this month".
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate converts free-text payment dates into a calendar date.
//
// Two shapes are accepted, with "/", "-" or "\" as separator:
//
//	09/dez      day plus pt-BR month abbreviation, year taken from context
//	05/03/23    day/month with optional 2- or 4-digit year
//
// A two-digit year is normalized by adding 2000; a missing year uses the
// import's target year. Anything else reports ok=false so date absence never
// blocks amount processing.
func ParseDate(raw string, year int) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return time.Time{}, false
	}

	if m := dayMonthNameRe.FindStringSubmatch(s); m != nil {
		day := atoi(m[1])
		name := m[2]
		if len(name) > 3 {
			name = name[:3]
		}
		if month, ok := monthAbbrev[name]; ok {
			return makeDate(year, month, day)
		}
		// unknown month name: plain unparseable text
	}

	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		day := atoi(m[1])
		month := atoi(m[2])
		y := year
		if m[3] != "" {
			y = atoi(m[3])
			if y < 100 {
				y += 2000
			}
		}
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		return makeDate(y, time.Month(month), day)
	}

	return time.Time{}, false
}

func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31/fev becomes 2-3/mar); reject that
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
