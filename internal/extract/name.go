// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"strings"
	"unicode"
)

// nameWindow bounds how much of the document the tagger sees. The
// candidate name sits at the top of any sane resume.
const nameWindow = 1000

// Tagger tags person-name spans in text. The Gemini implementation lives
// in internal/ner; tests supply fakes.
type Tagger interface {
	// TagPersons returns person-name spans found in text, in order of
	// appearance.
	TagPersons(ctx context.Context, text string) ([]string, error)
}

// CandidateName picks the candidate's name from resume text. It asks the
// tagger for person spans over the top of the document and takes the
// first span of at least two words. When the tagger finds nothing (or
// errors), it falls back to the first line made of two or more
// title-case words. No name means an empty string, never an error.
func CandidateName(ctx context.Context, tagger Tagger, text string) string {
	head := text
	if runes := []rune(head); len(runes) > nameWindow {
		head = string(runes[:nameWindow])
	}

	if tagger != nil {
		spans, err := tagger.TagPersons(ctx, head)
		if err == nil {
			for _, span := range spans {
				if len(strings.Fields(span)) >= 2 {
					return strings.TrimSpace(span)
				}
			}
		}
	}

	return fallbackName(text)
}

// fallbackName scans lines for the first one containing at least two
// title-case words.
func fallbackName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		count := 0
		for _, word := range strings.Fields(line) {
			if isTitleCase(word) {
				count++
			}
		}
		if count >= 2 {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// isTitleCase reports whether word starts with an uppercase letter
// followed only by lowercase letters.
func isTitleCase(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
