// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPercent(t *testing.T) {
	tests := []struct {
		similarity float64
		want       float64
	}{
		{similarity: 0, want: 0},
		{similarity: 1, want: 100},
		{similarity: 0.4217, want: 42.17},
		{similarity: 0.123456, want: 12.35},
	}

	for _, tt := range tests {
		r := AnalysisResult{Similarity: tt.similarity}
		assert.InDelta(t, tt.want, r.MatchPercent(), 1e-9)
	}
}

func TestContactInfoEmpty(t *testing.T) {
	assert.True(t, ContactInfo{}.Empty())
	assert.False(t, ContactInfo{Email: "a@b.co"}.Empty())
	assert.False(t, ContactInfo{Phone: "555-123-4567"}.Empty())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.3, cfg.Analyzer.MinSimilarity)
	assert.Equal(t, 20, cfg.Analyzer.TopKeywords)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, 8080, cfg.Serve.Port)
}
