// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the resume-to-job-description similarity score
// and the missing-keyword gap. Both are pure functions of their inputs.
package score

import (
	"math"
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into alphanumeric tokens.
// Everything else (punctuation, symbols, whitespace) is a separator.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// termFreqs counts occurrences of each non-stopword token.
func termFreqs(tokens []string, stoplist Stoplist) map[string]int {
	freqs := make(map[string]int)
	for _, tok := range tokens {
		if stoplist.Contains(tok) {
			continue
		}
		freqs[tok]++
	}
	return freqs
}

// Similarity computes TF-IDF cosine similarity between two texts, with
// the two texts forming the whole corpus. The result is in [0, 1]; an
// empty (or all-stopword) text scores 0. The vectorizer builds one
// vocabulary over both texts and applies the same smoothed IDF to both
// vectors, so the score is symmetric under swapping the arguments.
func Similarity(a, b string, stoplist Stoplist) float64 {
	tfA := termFreqs(Tokenize(a), stoplist)
	tfB := termFreqs(Tokenize(b), stoplist)
	if len(tfA) == 0 || len(tfB) == 0 {
		return 0
	}

	// Smoothed IDF over the two-document corpus:
	// idf(t) = ln((1+N)/(1+df)) + 1 with N = 2.
	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/(1.0+float64(df))) + 1
	}

	var dot, normA, normB float64
	seen := make(map[string]bool, len(tfA)+len(tfB))
	for term := range tfA {
		seen[term] = true
	}
	for term := range tfB {
		seen[term] = true
	}
	for term := range seen {
		w := idf(term)
		wa := float64(tfA[term]) * w
		wb := float64(tfB[term]) * w
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Clamp float drift so callers can rely on [0, 1].
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
