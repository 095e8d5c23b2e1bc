package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmptyText(t *testing.T) {
	c := DefaultCatalog()
	assert.Empty(t, c.Extract(""))
}

func TestExtractWholeWordOnly(t *testing.T) {
	c := DefaultCatalog()

	// "javascript" не должен давать ложный "java"
	got := c.Extract("Senior JavaScript engineer")
	_, hasJava := got["java"]
	assert.False(t, hasJava)
	_, hasJS := got["javascript"]
	assert.True(t, hasJS)

	// и наоборот, отдельное слово матчится
	got = c.Extract("Java and JavaScript developer")
	_, hasJava = got["java"]
	assert.True(t, hasJava)
}

func TestExtractMultiWordPhrase(t *testing.T) {
	c := DefaultCatalog()
	got := c.Extract("worked on machine learning pipelines")
	_, ok := got["machine learning"]
	assert.True(t, ok)

	// фраза должна присутствовать целиком
	got = c.Extract("machine operator with learning mindset")
	_, ok = got["machine learning"]
	assert.False(t, ok)
}

func TestExtractAliases(t *testing.T) {
	c := DefaultCatalog()
	got := c.Extract("Backend развивал на Golang, оркестрация в k8s, база Postgres")
	for _, want := range []string{"go", "kubernetes", "postgresql"} {
		_, ok := got[want]
		assert.True(t, ok, "expected %q in %v", want, got.Sorted())
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	c := DefaultCatalog()
	got := c.Extract("PYTHON, Docker, AwS")
	assert.ElementsMatch(t, []string{"python", "docker", "aws"}, got.Sorted())
}

func TestExtractMembersBelongToCatalog(t *testing.T) {
	c := DefaultCatalog()
	got := c.Extract("python java react docker nosuchskill")
	for s := range got {
		assert.True(t, c.Contains(s))
	}
}

func TestCompareSetLaws(t *testing.T) {
	c := DefaultCatalog()
	cvText := "Senior Python Developer with Docker and AWS experience"
	jdText := "Looking for Python, Docker, Kubernetes, AWS engineer"

	cmp := c.Compare(cvText, jdText)

	// matched ⊆ cv, matched ⊆ jd
	for s := range cmp.Matched {
		_, inCV := cmp.CV[s]
		_, inJD := cmp.JD[s]
		assert.True(t, inCV, "matched %q not in cv", s)
		assert.True(t, inJD, "matched %q not in jd", s)
	}
	// missing ⊆ jd, missing ∩ cv = ∅
	for s := range cmp.Missing {
		_, inJD := cmp.JD[s]
		_, inCV := cmp.CV[s]
		assert.True(t, inJD, "missing %q not in jd", s)
		assert.False(t, inCV, "missing %q present in cv", s)
	}
	// matched ∪ missing = jd
	assert.Equal(t, len(cmp.JD), len(cmp.Matched)+len(cmp.Missing))

	require.Subset(t, cmp.Matched.Sorted(), []string{"python", "docker", "aws"})
	require.Contains(t, cmp.Missing.Sorted(), "kubernetes")
}

func TestCompareEmptyTexts(t *testing.T) {
	c := DefaultCatalog()
	cmp := c.Compare("", "")
	assert.Empty(t, cmp.Matched)
	assert.Empty(t, cmp.Missing)
}
