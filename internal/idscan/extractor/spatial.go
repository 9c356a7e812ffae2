package extractor

import (
	"sort"
	"strings"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
)

// The name-likely region of a card, as fractions of the recognized extent:
// left half, below the header band, above the address block.
const (
	nameRegionMaxX = 0.5
	nameRegionMinY = 0.15
	nameRegionMaxY = 0.45
)

const (
	// Tokens within this vertical distance share a visual line.
	lineGroupTolerancePx = 10.0
	// A larger gap separates the name block from the next card section.
	nameBlockGapPx = 20.0
	// Visual lines with more words than this are address text, not a name.
	maxNameLineWords = 3
)

// parseSpatial extracts using token positions to localize the name region.
// Any failure returns nil so the orchestrator falls back to text-only mode;
// no spatial failure is ever surfaced to the caller.
func (e *Extractor) parseSpatial(text string, tokens []domain.RecognizedToken) *domain.ScannedData {
	if len(tokens) == 0 {
		return nil
	}

	maxX, maxY := tokenExtent(tokens)
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	region := nameRegionTokens(tokens, maxX, maxY)
	if len(region) == 0 {
		return nil
	}

	sort.SliceStable(region, func(i, j int) bool {
		a, b := region[i].BoundingBox, region[j].BoundingBox
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	block := nameBlock(visualLines(region))
	candidate, checkNextLine, ok := assembleName(block)
	if !ok {
		return nil
	}
	if checkNextLine && nextOriginalLineHasDate(text, candidate) {
		// A date directly under the candidate means we picked up a
		// label-value pair, not the holder's name.
		return nil
	}
	if !e.acceptName(candidate) {
		return nil
	}

	// Positional cues are only used for the name; date of birth and document
	// number always come from the line-based field extractors.
	lines := splitLines(text)
	dob := e.findDOB(lines)
	id := findIDNumber(lines)

	var dobValue string
	if dob != nil {
		dobValue = dob.value
	}
	return e.assemble(candidate, dobValue, id, 90)
}

func tokenExtent(tokens []domain.RecognizedToken) (maxX, maxY float64) {
	for _, t := range tokens {
		if t.BoundingBox.X > maxX {
			maxX = t.BoundingBox.X
		}
		if t.BoundingBox.Y > maxY {
			maxY = t.BoundingBox.Y
		}
	}
	return maxX, maxY
}

func nameRegionTokens(tokens []domain.RecognizedToken, maxX, maxY float64) []domain.RecognizedToken {
	var region []domain.RecognizedToken
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		xr := t.BoundingBox.X / maxX
		yr := t.BoundingBox.Y / maxY
		if xr < nameRegionMaxX && yr > nameRegionMinY && yr < nameRegionMaxY {
			region = append(region, t)
		}
	}
	return region
}

// visualLines groups y-sorted tokens into lines: a token within 10px of the
// line's vertical position joins it, otherwise it starts a new line. Lines
// with more than three words are dropped as address text.
func visualLines(sorted []domain.RecognizedToken) []domain.VisualLine {
	var lines []domain.VisualLine
	var current []domain.RecognizedToken

	flush := func() {
		if len(current) == 0 {
			return
		}
		if wordCount(current) <= maxNameLineWords {
			lines = append(lines, joinLine(current))
		}
		current = nil
	}

	for _, t := range sorted {
		if len(current) > 0 && t.BoundingBox.Y-current[0].BoundingBox.Y >= lineGroupTolerancePx {
			flush()
		}
		current = append(current, t)
	}
	flush()
	return lines
}

func wordCount(tokens []domain.RecognizedToken) int {
	n := 0
	for _, t := range tokens {
		if len(t.Text) >= 2 {
			n++
		}
	}
	return n
}

func joinLine(tokens []domain.RecognizedToken) domain.VisualLine {
	ordered := make([]domain.RecognizedToken, len(tokens))
	copy(ordered, tokens)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BoundingBox.X < ordered[j].BoundingBox.X
	})

	parts := make([]string, len(ordered))
	for i, t := range ordered {
		parts[i] = t.Text
	}
	return domain.VisualLine{
		Text: strings.Join(parts, " "),
		Y:    tokens[0].BoundingBox.Y,
	}
}

// nameBlock walks the retained lines in order and stops once the vertical
// gap to the next line exceeds the block threshold.
func nameBlock(lines []domain.VisualLine) []domain.VisualLine {
	if len(lines) == 0 {
		return nil
	}
	block := lines[:1]
	for i := 1; i < len(lines); i++ {
		if lines[i].Y-lines[i-1].Y > nameBlockGapPx {
			break
		}
		block = lines[:i+1]
	}
	return block
}

// assembleName builds the name candidate from the retained block. A first
// line with two or more valid words is the full name; a single-word first
// line is combined with a short second line (given name over surname
// layouts). checkNextLine is set when the candidate came from one line and
// must be cross-checked against the following text line for a date.
func assembleName(block []domain.VisualLine) (candidate string, checkNextLine bool, ok bool) {
	if len(block) == 0 {
		return "", false, false
	}
	first := strings.TrimSpace(block[0].Text)
	switch words := validWords(first); {
	case len(words) >= 2:
		return first, true, true
	case len(words) == 1 && len(block) >= 2:
		second := strings.TrimSpace(block[1].Text)
		if n := len(validWords(second)); n >= 1 && n <= 2 {
			return first + " " + second, false, true
		}
	}
	return "", false, false
}

// validWords returns the alphabetic words of length >= 2 in a line.
func validWords(line string) []string {
	var words []string
	for _, w := range strings.Fields(line) {
		if len(w) >= 2 && nameCharsRe.MatchString(w) {
			words = append(words, w)
		}
	}
	return words
}

// nextOriginalLineHasDate locates the candidate within the full-text line
// order and reports whether the following line contains a date pattern.
func nextOriginalLineHasDate(text, candidate string) bool {
	lines := splitLines(text)
	upperCandidate := strings.ToUpper(candidate)
	for i, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.Contains(upper, upperCandidate) && !strings.Contains(upperCandidate, upper) {
			continue
		}
		return i+1 < len(lines) && anyDateRe.MatchString(lines[i+1])
	}
	return false
}
