package extractor_test

import (
	"testing"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/extractor"
	"github.com/stretchr/testify/assert"
)

func TestIsPlausibleName(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"JANE CITIZEN", true},
		{"Jane Citizen", true},
		{"JANE MARIE CITIZEN", true},
		{"  JANE CITIZEN  ", true},
		{"JANE", false},              // single word
		{"J CITIZEN", false},         // one-letter word
		{"JANE C1TIZEN", false},      // digits
		{"XX YY", false},             // no vowel
		{"", false},
		{" ", false},
		{"O'BRIEN JANE", false},      // apostrophe outside the accepted charset
		{"THIS IS A VERY LONG CANDIDATE NAME THAT KEEPS ON GOING FOREVER", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.IsPlausibleName(tt.candidate))
		})
	}
}
