// Package extractor recovers a person's name, date of birth, and document
// number from raw recognized identity-card text. It works in two modes:
// spatial mode uses per-token bounding boxes to localize the name region,
// and text-only mode falls back to line-order heuristics when positional
// data is absent or insufficient. Extraction is a pure function of its
// inputs; the source text and tokens are never retained.
package extractor

import (
	"strings"
	"time"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
)

// Clock supplies "now" for date plausibility checks and age computation.
// Injectable for deterministic tests.
type Clock func() time.Time

// Extractor is the extraction entry point. It is stateless beyond its
// read-only configuration and safe for concurrent use.
type Extractor struct {
	now         Clock
	exclusions  ExclusionList
	minAge      int
	maxAgeYears int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(e *Extractor) {
		e.now = c
	}
}

// WithExclusions replaces the default exclusion dictionary, e.g. for a
// different issuing jurisdiction.
func WithExclusions(l ExclusionList) Option {
	return func(e *Extractor) {
		e.exclusions = l
	}
}

// WithAgeBounds overrides the minimum accepted age and the maximum
// plausible age span for date-of-birth candidates.
func WithAgeBounds(minAge, maxAgeYears int) Option {
	return func(e *Extractor) {
		e.minAge = minAge
		e.maxAgeYears = maxAgeYears
	}
}

// New creates an Extractor with the default dictionary, system clock, and
// age bounds.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		now:         time.Now,
		exclusions:  DefaultExclusions(),
		minAge:      defaultMinimumAge,
		maxAgeYears: defaultMaxAgeYears,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract recovers identity fields from recognized text and optional
// positioned tokens. It never panics and never returns an error: malformed
// or empty input yields the all-null, zero-confidence result. Strategies
// run in fixed order, first success wins.
func (e *Extractor) Extract(text string, tokens []domain.RecognizedToken) domain.ScannedData {
	if strings.TrimSpace(text) == "" {
		return domain.Empty()
	}

	strategies := []struct {
		name string
		run  func() *domain.ScannedData
	}{
		{"spatial", func() *domain.ScannedData { return e.parseSpatial(text, tokens) }},
		{"text-only", func() *domain.ScannedData { return e.parseTextOnly(text) }},
	}
	for _, s := range strategies {
		if result := s.run(); result != nil {
			return *result
		}
	}
	return domain.Empty()
}

// assemble builds the output record from validated field candidates.
// IsAdult is derived from the date of birth and is false when it is absent.
func (e *Extractor) assemble(name, dob string, id *fieldCandidate, confidence int) *domain.ScannedData {
	result := &domain.ScannedData{
		Name:       &name,
		Confidence: confidence,
	}
	if dob != "" {
		result.DateOfBirth = &dob
		if age, ok := Age(dob, e.now()); ok {
			result.IsAdult = age >= e.minAge
		}
	}
	if id != nil {
		value := id.value
		result.IDNumber = &value
	}
	return result
}
