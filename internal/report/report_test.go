// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

func sampleResult() types.AnalysisResult {
	return types.AnalysisResult{
		Source:    "jane.pdf",
		Candidate: "Jane Doe",
		Contact: types.ContactInfo{
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Sections: types.SectionMap{
			"body":   "Jane Doe",
			"skills": "Python, SQL",
		},
		Similarity:      0.4217,
		MissingKeywords: []string{"docker"},
		Recommendations: []string{"Add missing skills: docker"},
		Passed:          true,
		AnalyzedAt:      time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC),
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	want := sampleResult()

	data, err := JSON(want)
	require.NoError(t, err)

	var got types.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, want, got)
}

func TestJSON_RoundTrip_EmptyResult(t *testing.T) {
	want := types.AnalysisResult{
		Source:     "broken.pdf",
		Sections:   types.SectionMap{},
		AnalyzedAt: time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC),
	}

	data, err := JSON(want)
	require.NoError(t, err)

	var got types.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, want, got)
}

func TestPlainText_SectionOrder(t *testing.T) {
	text := PlainText(sampleResult())

	order := []string{"Name:", "Contact:", "Similarity Score:", "Missing Keywords:", "Recommendations:"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		require.NotEqual(t, -1, idx, "marker %q missing", marker)
		assert.Greater(t, idx, last, "marker %q out of order", marker)
		last = idx
	}

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "jane@example.com, 555-123-4567")
	assert.Contains(t, text, "42.17 %")
	assert.Contains(t, text, "- docker")
}

func TestPlainText_EmptyFields(t *testing.T) {
	r := sampleResult()
	r.Candidate = ""
	r.Contact = types.ContactInfo{}
	r.MissingKeywords = nil
	r.Recommendations = nil
	r.Passed = false

	text := PlainText(r)

	assert.Contains(t, text, "Name: (not found)")
	assert.Contains(t, text, "Contact: (not found)")
	assert.Contains(t, text, "below threshold")
	assert.Contains(t, text, "Missing Keywords:\n  none")
	assert.Contains(t, text, "Recommendations:\n  none")
}

func TestRender(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	Render(&buf, sampleResult())
	out := buf.String()

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "42.17 %")
	assert.Contains(t, out, "docker")
	assert.Contains(t, out, "PASS")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	r := sampleResult()

	txtPath, jsonPath, err := WriteFiles(r, dir, true)
	require.NoError(t, err)

	assert.Contains(t, txtPath, "analysis_jane_20260831_123000.txt")

	txt, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "Jane Doe")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var got types.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r, got)
}

func TestWriteFiles_CollidingSlugs(t *testing.T) {
	dir := t.TempDir()

	first := sampleResult()
	first.Source = "a-b.pdf"
	second := sampleResult()
	second.Source = "a_b.pdf"
	second.Candidate = "John Roe"

	firstTxt, _, err := WriteFiles(first, dir, true)
	require.NoError(t, err)
	secondTxt, secondJSON, err := WriteFiles(second, dir, true)
	require.NoError(t, err)

	assert.Contains(t, firstTxt, "analysis_a-b_20260831_123000.txt")
	assert.Contains(t, secondTxt, "analysis_a-b_20260831_123000_1.txt")
	assert.Contains(t, secondJSON, "analysis_a-b_20260831_123000_1.json")

	txt, err := os.ReadFile(firstTxt)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "Jane Doe")

	txt, err = os.ReadFile(secondTxt)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "John Roe")
}

func TestWriteFiles_TextOnly(t *testing.T) {
	txtPath, jsonPath, err := WriteFiles(sampleResult(), t.TempDir(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, txtPath)
	assert.Empty(t, jsonPath)
}
