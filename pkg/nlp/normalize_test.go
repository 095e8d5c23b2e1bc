package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanExtractedRemovesPageMarkers(t *testing.T) {
	in := "Senior Go Developer\nPage 1 of 3\n7\nPágina 2\nPage | 4\n2 / 10\nExperience with Docker"
	out := CleanExtracted(in)
	assert.Equal(t, "Senior Go Developer\nExperience with Docker", out)
}

func TestCleanExtractedKeepsNumbersInsideSentences(t *testing.T) {
	out := CleanExtracted("Managed 12 engineers across 3 teams")
	assert.Equal(t, "Managed 12 engineers across 3 teams", out)
}

func TestCleanExtractedCollapsesWhitespace(t *testing.T) {
	in := "Go \t  Developer\n\n\n\n\nDocker   and\tKubernetes"
	out := CleanExtracted(in)
	assert.Equal(t, "Go Developer\n\nDocker and Kubernetes", out)
}

func TestCleanExtractedEmpty(t *testing.T) {
	assert.Equal(t, "", CleanExtracted(""))
	assert.Equal(t, "", CleanExtracted("  \n\t \n "))
}

func TestCleanExtractedIdempotent(t *testing.T) {
	samples := []string{
		"",
		"plain text",
		"a\n\n\n\nb\nPage 2\n  c   d  ",
		"Page 1 of 1",
		"línea\n\n\npágina 3\nfin",
	}
	for _, s := range samples {
		once := CleanExtracted(s)
		assert.Equal(t, once, CleanExtracted(once), "not idempotent for %q", s)
	}
}
