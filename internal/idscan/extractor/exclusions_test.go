package extractor_test

import (
	"testing"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/extractor"
	"github.com/stretchr/testify/assert"
)

func TestExclusionList_Excludes(t *testing.T) {
	exclusions := extractor.DefaultExclusions()

	tests := []struct {
		candidate string
		want      bool
	}{
		{"DRIVER LICENCE", true},
		{"driver licence", true},       // case-insensitive
		{"  DRIVER LICENCE  ", true},   // trimmed
		{"NSW DRIVER LICENCE", true},   // substring match
		{"VICTORIA", true},
		{"VICTORIA JANE", true},        // jurisdiction inside candidate
		{"DATE OF BIRTH", true},
		{"JANE CITIZEN", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, exclusions.Excludes(tt.candidate))
		})
	}
}

func TestExclusionList_Custom(t *testing.T) {
	custom := extractor.ExclusionList{"ONTARIO", "PERMIS DE CONDUIRE"}

	assert.True(t, custom.Excludes("ontario"))
	assert.True(t, custom.Excludes("PERMIS DE CONDUIRE QC"))
	// The default entries no longer apply.
	assert.False(t, custom.Excludes("DRIVER LICENCE"))
}
