package extractor

import (
	"regexp"
	"strings"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
)

// fieldCandidate is a tentatively extracted field value before assembly.
// Confidence is the per-field heuristic score, 0-100.
type fieldCandidate struct {
	value      string
	confidence int
}

var (
	labeledNameRe = regexp.MustCompile(`(?:NAME|SURNAME|GIVEN\s+NAMES?)[:\s]+([A-Z][A-Z\s]+)`)
	singleWordRe  = regexp.MustCompile(`^[A-Z]{2,}$`)
	upperLineRe   = regexp.MustCompile(`^[A-Z\s]+$`)
	titleCaseRe   = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)
	anyDateRe     = regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}[-/.]\d{4}|\d{4}[-/.]\d{1,2}[-/.]\d{1,2}`)
)

// Keywords feeding the contextual score. A licence or jurisdiction header
// above a candidate raises it; date-of-birth context below it does too.
var (
	headerKeywords = []string{
		"DRIVER", "LICENCE", "LICENSE", "PERMIT", "PROOF OF AGE", "PHOTO CARD",
		"NEW SOUTH WALES", "VICTORIA", "QUEENSLAND", "SOUTH AUSTRALIA",
		"WESTERN AUSTRALIA", "TASMANIA", "NORTHERN TERRITORY",
		"AUSTRALIAN CAPITAL TERRITORY",
	}
	dobKeywords = []string{"DOB", "D.O.B", "DATE OF BIRTH", "BORN"}
)

// idPatterns locate a best-effort document number. A labeled number is
// preferred over a bare alphanumeric or numeric run.
var idPatterns = []struct {
	tag        string
	confidence int
	re         *regexp.Regexp
}{
	{"labeled", 85, regexp.MustCompile(`(?i)\b(?:LICENCE|LICENSE|CARD|ID)\s*(?:NO|NUMBER|N[O0])?\.?\s*[:#]?\s*([A-Z0-9]{6,12})\b`)},
	{"alpha-numeric", 65, regexp.MustCompile(`\b([A-Z]{1,2}\d{6,9})\b`)},
	{"numeric", 60, regexp.MustCompile(`\b(\d{6,10})\b`)},
}

// splitLines returns the trimmed, non-empty lines of the recognized text.
func splitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseTextOnly is the fallback extraction path: line-order heuristics over
// the raw recognized text, no positional data. Returns nil unless both a
// name and a date of birth clear validation.
func (e *Extractor) parseTextOnly(text string) *domain.ScannedData {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	name := e.findName(lines)
	dob := e.findDOB(lines)
	if name == nil || dob == nil {
		return nil
	}
	id := findIDNumber(lines)

	// Overall confidence: 40 for the name, 40 for the date, 20 for the
	// document number, capped at 100.
	confidence := 80
	if id != nil {
		confidence += 20
	}
	if confidence > 100 {
		confidence = 100
	}

	return e.assemble(name.value, dob.value, id, confidence)
}

// findName runs the name-detection passes in fixed order; the first pass
// that produces an accepted candidate wins.
func (e *Extractor) findName(lines []string) *fieldCandidate {
	if c := e.labeledName(lines); c != nil {
		return c
	}
	if c := e.splitLineName(lines); c != nil {
		return c
	}
	if c := e.contextualName(lines); c != nil {
		return c
	}
	return e.titleCaseName(lines)
}

// labeledName matches an explicit NAME/SURNAME/GIVEN NAMES field label.
func (e *Extractor) labeledName(lines []string) *fieldCandidate {
	for _, line := range lines {
		m := labeledNameRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if e.acceptName(candidate) {
			return &fieldCandidate{value: candidate, confidence: 90}
		}
	}
	return nil
}

// splitLineName handles cards that print given name and surname on separate
// lines: two consecutive single-word uppercase lines are combined.
func (e *Extractor) splitLineName(lines []string) *fieldCandidate {
	for i := 0; i+1 < len(lines); i++ {
		if !singleWordRe.MatchString(lines[i]) || !singleWordRe.MatchString(lines[i+1]) {
			continue
		}
		combined := lines[i] + " " + lines[i+1]
		if e.acceptName(combined) {
			return &fieldCandidate{value: combined, confidence: 95}
		}
	}
	return nil
}

// contextualName scores every plausible uppercase line by its surroundings
// and position; the highest-scoring candidate wins.
func (e *Extractor) contextualName(lines []string) *fieldCandidate {
	var best *fieldCandidate
	bestScore := 0
	for i, line := range lines {
		if len(line) < 4 || len(line) > 50 || !upperLineRe.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) < 2 || !e.acceptName(line) {
			continue
		}
		score := NameScore(lines, i).Total()
		if best == nil || score > bestScore {
			confidence := 50 + score/4
			if confidence > 85 {
				confidence = 85
			}
			best = &fieldCandidate{value: line, confidence: confidence}
			bestScore = score
		}
	}
	return best
}

// titleCaseName is the last resort: a Title Case word sequence anywhere in
// the text, for cards recognized with mixed-case output.
func (e *Extractor) titleCaseName(lines []string) *fieldCandidate {
	for _, line := range lines {
		candidate := titleCaseRe.FindString(line)
		if candidate == "" {
			continue
		}
		if e.acceptName(candidate) {
			return &fieldCandidate{value: candidate, confidence: 70}
		}
	}
	return nil
}

// ScoreAdjustment is one itemized contribution to a candidate's score.
type ScoreAdjustment struct {
	Rule  string
	Delta int
}

// ScoreBreakdown is the structured result of scoring a name candidate:
// a base score plus the adjustments that fired, so tests can assert on
// individual rule contributions rather than only the final number.
type ScoreBreakdown struct {
	Base        int
	Adjustments []ScoreAdjustment
}

// Total sums the base score and all adjustments.
func (b ScoreBreakdown) Total() int {
	total := b.Base
	for _, a := range b.Adjustments {
		total += a.Delta
	}
	return total
}

// NameScore scores the line at idx as a name candidate from its context.
func NameScore(lines []string, idx int) ScoreBreakdown {
	breakdown := ScoreBreakdown{Base: 100}
	add := func(rule string, delta int) {
		breakdown.Adjustments = append(breakdown.Adjustments, ScoreAdjustment{Rule: rule, Delta: delta})
	}

	if anyLineContains(lines[:idx], headerKeywords) {
		add("licence-header-above", 30)
	}
	if idx < 2 {
		add("top-of-card", -40)
	}
	switch len(strings.Fields(lines[idx])) {
	case 2:
		add("two-word-name", 20)
	case 3:
		add("three-word-name", 10)
	}
	if below := lines[idx+1:]; anyLineContains(below, dobKeywords) || anyLineMatches(below, anyDateRe) {
		add("dob-context-below", 20)
	}
	if idx >= 2 && idx <= 5 {
		add("name-band", 15)
	}
	return breakdown
}

func anyLineContains(lines []string, keywords []string) bool {
	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, kw := range keywords {
			if strings.Contains(upper, kw) {
				return true
			}
		}
	}
	return false
}

func anyLineMatches(lines []string, re *regexp.Regexp) bool {
	for _, line := range lines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// findDOB scans all lines with the date patterns in priority order and
// returns the first candidate that survives normalization.
func (e *Extractor) findDOB(lines []string) *fieldCandidate {
	for _, p := range datePatterns {
		for _, line := range lines {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			year, month, day := p.normalize(m)
			if canonical, ok := validateDOB(year, month, day, e.now(), e.minAge, e.maxAgeYears); ok {
				return &fieldCandidate{value: canonical, confidence: p.confidence}
			}
		}
	}
	return nil
}

// findIDNumber is best-effort: a missing document number never fails the scan.
func findIDNumber(lines []string) *fieldCandidate {
	for _, p := range idPatterns {
		for _, line := range lines {
			if m := p.re.FindStringSubmatch(line); m != nil {
				return &fieldCandidate{value: strings.ToUpper(m[1]), confidence: p.confidence}
			}
		}
	}
	return nil
}
