package extractor

import (
	"regexp"
	"strconv"
	"time"
)

// Plausibility bounds for a date of birth. The age floor is applied during
// normalization because every date this engine extracts is a DOB candidate;
// generic dates on the card (expiry, issue) are never normalized here.
const (
	defaultMinimumAge  = 18
	defaultMaxAgeYears = 120
)

const canonicalDateLayout = "2006-01-02"

// datePattern pairs a named regex with a normalizer mapping its captures to
// year/month/day. Patterns are evaluated in fixed priority order: a labeled
// date outranks a bare day-first date, which outranks ISO ordering.
// Ambiguous day/month ordering is resolved day-first; this follows the
// card-issuing locale and is a fixed policy, not detected per document.
type datePattern struct {
	tag        string
	confidence int
	re         *regexp.Regexp
	normalize  func(m []string) (year, month, day int)
}

var datePatterns = []datePattern{
	{
		tag:        "labeled",
		confidence: 90,
		re:         regexp.MustCompile(`(?i)\b(?:DOB|D\.O\.B|DATE\s+OF\s+BIRTH|BORN)\b[:.\s]*(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})`),
		normalize:  dayFirst,
	},
	{
		tag:        "bare-ddmmyyyy",
		confidence: 75,
		re:         regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})\b`),
		normalize:  dayFirst,
	},
	{
		tag:        "iso",
		confidence: 65,
		re:         regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`),
		normalize:  yearFirst,
	},
}

func dayFirst(m []string) (int, int, int) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return year, month, day
}

func yearFirst(m []string) (int, int, int) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return year, month, day
}

// NormalizeDOB parses a date-of-birth substring into canonical YYYY-MM-DD
// form. It rejects unparsable dates, future dates, dates more than 120 years
// in the past, and dates implying an age under 18. Reports false on rejection.
func NormalizeDOB(raw string, now time.Time) (string, bool) {
	return normalizeDOB(raw, now, defaultMinimumAge, defaultMaxAgeYears)
}

func normalizeDOB(raw string, now time.Time, minAge, maxYears int) (string, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		year, month, day := p.normalize(m)
		if canonical, ok := validateDOB(year, month, day, now, minAge, maxYears); ok {
			return canonical, true
		}
	}
	return "", false
}

// validateDOB checks that year/month/day denote a real calendar date inside
// the plausibility window and returns its canonical form.
func validateDOB(year, month, day int, now time.Time, minAge, maxYears int) (string, bool) {
	dob := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if dob.Year() != year || dob.Month() != time.Month(month) || dob.Day() != day {
		return "", false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dob.After(today) {
		return "", false
	}
	if dob.Before(today.AddDate(-maxYears, 0, 0)) {
		return "", false
	}
	if ageBetween(dob, today) < minAge {
		return "", false
	}
	return dob.Format(canonicalDateLayout), true
}

// Age computes whole-years age from a canonical YYYY-MM-DD date of birth
// relative to now. Reports false if dob is not a canonical date.
func Age(dob string, now time.Time) (int, bool) {
	t, err := time.Parse(canonicalDateLayout, dob)
	if err != nil {
		return 0, false
	}
	return ageBetween(t, now), true
}

// ageBetween decrements the year difference when the birthday has not yet
// occurred this year. Standard calendar arithmetic, no leap-day special case.
func ageBetween(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
