package extractor_test

import (
	"testing"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(text string, x, y float64) domain.RecognizedToken {
	return domain.RecognizedToken{
		Text:        text,
		BoundingBox: domain.BoundingBox{X: x, Y: y},
	}
}

const licenceText = "NEW SOUTH WALES\n" +
	"DRIVER LICENCE\n" +
	"JANE CITIZEN\n" +
	"42 WALLABY WAY EAST\n" +
	"DOB 15/05/1990\n" +
	"LICENCE NO: 12345678\n" +
	"CONDITIONS NONE"

// licenceTokens lays out a typical card: header band on top, name in the
// upper-left region, address below it, date and number on the right.
func licenceTokens() []domain.RecognizedToken {
	return []domain.RecognizedToken{
		token("DRIVER", 420, 40),
		token("LICENCE", 560, 40),
		token("JANE", 120, 180),
		token("CITIZEN", 230, 180),
		token("42", 100, 240),
		token("WALLABY", 140, 240),
		token("WAY", 250, 241),
		token("EAST", 300, 242),
		token("DOB", 620, 180),
		token("15/05/1990", 700, 180),
		token("CONDITIONS", 120, 560),
		token("NONE", 300, 560),
	}
}

func TestExtract_SpatialName(t *testing.T) {
	ex := newTestExtractor()

	result := ex.Extract(licenceText, licenceTokens())

	require.NotNil(t, result.Name)
	assert.Equal(t, "JANE CITIZEN", *result.Name)
	require.NotNil(t, result.DateOfBirth)
	assert.Equal(t, "1990-05-15", *result.DateOfBirth)
	require.NotNil(t, result.IDNumber)
	assert.Equal(t, "12345678", *result.IDNumber)
	assert.Equal(t, 90, result.Confidence)
	assert.True(t, result.IsAdult)
}

func TestExtract_SpatialTwoLineName(t *testing.T) {
	ex := newTestExtractor()
	text := "JANE\nCITIZEN\n42 WALLABY WAY\nDOB 15/05/1990"
	tokens := []domain.RecognizedToken{
		token("JANE", 120, 150),
		token("CITIZEN", 120, 165),
		token("DOB", 620, 300),
		token("15/05/1990", 700, 300),
		token("EXP", 650, 600),
	}

	result := ex.Extract(text, tokens)

	require.NotNil(t, result.Name)
	assert.Equal(t, "JANE CITIZEN", *result.Name)
	assert.Equal(t, 90, result.Confidence)
}

func TestExtract_SpatialRejectsLabelValuePair(t *testing.T) {
	// A date directly under the candidate line means the spatial pick was a
	// label-value pair; extraction must fall back to text-only mode, whose
	// overall confidence differs from the fixed spatial 90.
	ex := newTestExtractor()
	text := "JANE CITIZEN\n15/05/1990\nEXP"
	tokens := []domain.RecognizedToken{
		token("JANE", 50, 150),
		token("CITIZEN", 120, 150),
		token("EXP", 700, 600),
	}

	result := ex.Extract(text, tokens)

	require.NotNil(t, result.Name)
	assert.Equal(t, "JANE CITIZEN", *result.Name)
	assert.Equal(t, 80, result.Confidence)
}

func TestExtract_SpatialFallbackOutsideRegion(t *testing.T) {
	// Tokens exist but none land in the name-likely region: the result must
	// equal what text-only parsing of the same text produces.
	ex := newTestExtractor()
	text := "DRIVER LICENCE\nNAME: JANE CITIZEN\nDOB: 15-05-1990"
	tokens := []domain.RecognizedToken{
		token("CONDITIONS", 500, 550),
		token("NONE", 600, 560),
	}

	withTokens := ex.Extract(text, tokens)
	textOnly := ex.Extract(text, nil)

	assert.Equal(t, textOnly, withTokens)
	require.NotNil(t, withTokens.Name)
	assert.Equal(t, "JANE CITIZEN", *withTokens.Name)
}

func TestExtract_SpatialDegenerateExtent(t *testing.T) {
	ex := newTestExtractor()
	text := "NAME: JANE CITIZEN\nDOB: 15-05-1990"
	tokens := []domain.RecognizedToken{
		token("JANE", 0, 0),
		token("CITIZEN", 0, 0),
	}

	result := ex.Extract(text, tokens)

	// Zero extent falls back to text-only mode.
	require.NotNil(t, result.Name)
	assert.Equal(t, "JANE CITIZEN", *result.Name)
	assert.Equal(t, 80, result.Confidence)
}

func TestExtract_SpatialDropsAddressLines(t *testing.T) {
	// The only in-region lines are address text (more than three words);
	// spatial mode has no candidate and text-only takes over.
	ex := newTestExtractor()
	text := "NAME: JANE CITIZEN\n42 WALLABY WAY EAST\nDOB 15/05/1990"
	tokens := []domain.RecognizedToken{
		token("42", 100, 240),
		token("WALLABY", 140, 240),
		token("WAY", 250, 241),
		token("EAST", 300, 242),
		token("SIGN", 650, 600),
		token("HERE", 690, 610),
	}

	result := ex.Extract(text, tokens)

	require.NotNil(t, result.Name)
	assert.Equal(t, "JANE CITIZEN", *result.Name)
	assert.Equal(t, 80, result.Confidence)
}
