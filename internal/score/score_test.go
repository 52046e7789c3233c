// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleResume = "Contact: jane@example.com, 555-123-4567. Skills: Python, SQL."
	sampleJob    = "Required skills: Python, SQL, Docker."
)

func TestSimilarity_Range(t *testing.T) {
	stop := DefaultStoplist()

	tests := []struct {
		name string
		a, b string
	}{
		{name: "identical", a: sampleResume, b: sampleResume},
		{name: "partial overlap", a: sampleResume, b: sampleJob},
		{name: "disjoint", a: "golang kubernetes terraform", b: "pastry baking croissants"},
		{name: "numbers", a: "version 2 release", b: "release 2 notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b, stop)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	stop := DefaultStoplist()

	assert.Equal(t, 0.0, Similarity("", sampleJob, stop))
	assert.Equal(t, 0.0, Similarity(sampleResume, "", stop))
	assert.Equal(t, 0.0, Similarity("", "", stop))
	// All-stopword text vectorizes to nothing and scores like empty text.
	assert.Equal(t, 0.0, Similarity("the and of", sampleJob, stop))
}

func TestSimilarity_Identical(t *testing.T) {
	got := Similarity(sampleResume, sampleResume, DefaultStoplist())
	assert.InDelta(t, 1.0, got, 1e-9)
}

// The vectorizer builds one vocabulary over both texts and weights both
// vectors with the same smoothed IDF, so the score is exactly symmetric
// under swapping the resume and job-description roles.
func TestSimilarity_Symmetric(t *testing.T) {
	stop := DefaultStoplist()

	pairs := [][2]string{
		{sampleResume, sampleJob},
		{"a long resume text with many many tokens repeated tokens", "short jd"},
		{"golang", "golang golang golang python"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1], stop), Similarity(p[1], p[0], stop))
	}
}

func TestSimilarity_ScenarioPositive(t *testing.T) {
	got := Similarity(sampleResume, sampleJob, DefaultStoplist())
	assert.Greater(t, got, 0.0)
}

func TestMissingKeywords_Scenario(t *testing.T) {
	got := MissingKeywords(sampleJob, sampleResume, DefaultStoplist(), 20)
	assert.Equal(t, []string{"docker"}, got)
}

func TestMissingKeywords_NeverContainsResumeTokens(t *testing.T) {
	stop := DefaultStoplist()
	missing := MissingKeywords(sampleJob, sampleResume, stop, 0)

	present := make(map[string]bool)
	for _, tok := range Tokenize(sampleResume) {
		present[tok] = true
	}
	for _, kw := range missing {
		assert.False(t, present[kw], "missing keyword %q appears in resume", kw)
	}
}

func TestMissingKeywords_EmptyJob(t *testing.T) {
	got := MissingKeywords("", sampleResume, DefaultStoplist(), 20)
	assert.Empty(t, got)
}

func TestMissingKeywords_FrequencyOrder(t *testing.T) {
	job := "kubernetes kubernetes kubernetes docker docker terraform"
	got := MissingKeywords(job, "unrelated resume text", DefaultStoplist(), 0)
	assert.Equal(t, []string{"kubernetes", "docker", "terraform"}, got)
}

func TestMissingKeywords_Limit(t *testing.T) {
	job := "alpha beta gamma delta epsilon"
	got := MissingKeywords(job, "", DefaultStoplist(), 2)
	assert.Len(t, got, 2)
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Required skills: Python, SQL, Docker-compose v2!")
	assert.Equal(t, []string{"required", "skills", "python", "sql", "docker", "compose", "v2"}, got)
}

func TestLoadStoplist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nFoo\n\nbar\n"), 0o644))

	list, err := LoadStoplist(path)
	require.NoError(t, err)

	assert.True(t, list.Contains("foo"))
	assert.True(t, list.Contains("bar"))
	assert.False(t, list.Contains("comment"))
}

func TestLoadStoplist_EmptyPathUsesDefault(t *testing.T) {
	list, err := LoadStoplist("")
	require.NoError(t, err)
	assert.True(t, list.Contains("the"))
}

func TestLoadStoplist_MissingFile(t *testing.T) {
	_, err := LoadStoplist(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
