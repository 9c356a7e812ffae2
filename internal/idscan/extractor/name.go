package extractor

import (
	"regexp"
	"strings"
)

var nameCharsRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

// IsPlausibleName reports whether a candidate string is structurally
// acceptable as a personal name: 2-50 characters, letters and whitespace
// only, at least two words of two or more letters, and at least one vowel.
// The vowel rule rejects acronyms and card codes like "NSW" or "CL HR".
func IsPlausibleName(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) < 2 || len(trimmed) > 50 {
		return false
	}
	if !nameCharsRe.MatchString(trimmed) {
		return false
	}
	words := strings.Fields(trimmed)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if len(w) < 2 {
			return false
		}
	}
	return strings.ContainsAny(strings.ToUpper(trimmed), "AEIOU")
}

// acceptName applies the full acceptance chain for a name candidate:
// structural validity plus the exclusion dictionary. Rejection is non-fatal;
// callers simply try the next candidate.
func (e *Extractor) acceptName(candidate string) bool {
	return IsPlausibleName(candidate) && !e.exclusions.Excludes(candidate)
}
