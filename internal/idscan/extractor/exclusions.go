package extractor

import "strings"

// ExclusionList is a set of uppercase label and boilerplate phrases that must
// never be returned as a person's name. A candidate is excluded when its
// uppercased, trimmed form equals or contains any entry. The list is a
// configuration surface; jurisdictions can supply their own via
// WithExclusions, but the matching semantics are fixed.
type ExclusionList []string

// DefaultExclusions covers Australian driver licences and proof-of-age
// cards: jurisdiction names, document titles, field labels, and vehicle
// class codes commonly recognized alongside the holder's name.
func DefaultExclusions() ExclusionList {
	return ExclusionList{
		"AUSTRALIA",
		"NEW SOUTH WALES",
		"VICTORIA",
		"QUEENSLAND",
		"SOUTH AUSTRALIA",
		"WESTERN AUSTRALIA",
		"TASMANIA",
		"NORTHERN TERRITORY",
		"AUSTRALIAN CAPITAL TERRITORY",
		"DRIVER LICENCE",
		"DRIVERS LICENCE",
		"DRIVER'S LICENCE",
		"DRIVER LICENSE",
		"LEARNER PERMIT",
		"PROOF OF AGE",
		"PHOTO CARD",
		"KEYPASS",
		"DATE OF BIRTH",
		"LICENCE NO",
		"LICENCE NUMBER",
		"CARD NUMBER",
		"EXPIRY DATE",
		"DATE OF ISSUE",
		"CONDITIONS",
		"RESTRICTIONS",
		"SIGNATURE",
		"HEIGHT",
		"ADDRESS",
		"DONOR",
		"CLASS C",
		"CLASS R",
		"CLASS LR",
		"CLASS MR",
		"CLASS HR",
		"CLASS HC",
		"CLASS MC",
	}
}

// Excludes reports whether the candidate matches the dictionary. Matching is
// case-insensitive, exact-or-substring: "DRIVER LICENCE NSW" is excluded
// because it contains the "DRIVER LICENCE" entry.
func (l ExclusionList) Excludes(candidate string) bool {
	c := strings.ToUpper(strings.TrimSpace(candidate))
	if c == "" {
		return false
	}
	for _, entry := range l {
		e := strings.ToUpper(strings.TrimSpace(entry))
		if e == "" {
			continue
		}
		if strings.Contains(c, e) {
			return true
		}
	}
	return false
}
