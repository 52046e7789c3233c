// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls structured facts out of resume text: labeled
// sections, contact details, and the candidate name. Everything here is
// best-effort and fails soft; "not found" is an empty value, never an
// error.
package extract

import (
	"strings"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// defaultHeadings maps canonical section labels to the heading spellings
// that introduce them, compared case-insensitively with a trailing colon
// stripped.
var defaultHeadings = map[string][]string{
	"experience": {"experience", "work history", "professional experience", "employment history"},
	"skills":     {"skills", "technical skills", "core competencies"},
	"education":  {"education", "academic background"},
	"projects":   {"projects", "personal projects"},
	"summary":    {"summary", "professional summary", "objective", "profile"},
	"certifications": {"certifications", "certificates", "licenses"},
}

// Splitter assigns resume lines to labeled sections by scanning for
// heading lines.
type Splitter struct {
	// headings maps a normalized heading spelling to its canonical label.
	headings map[string]string
}

// NewSplitter builds a Splitter from a label-to-spellings vocabulary.
// A nil or empty vocabulary uses the built-in one.
func NewSplitter(vocabulary map[string][]string) *Splitter {
	if len(vocabulary) == 0 {
		vocabulary = defaultHeadings
	}
	headings := make(map[string]string)
	for label, spellings := range vocabulary {
		for _, s := range spellings {
			headings[strings.ToLower(strings.TrimSpace(s))] = label
		}
	}
	return &Splitter{headings: headings}
}

// Split partitions text into sections. Lines between a recognized
// heading and the next one belong to that heading's label; lines before
// the first heading go under "body". Missed headings are expected; the
// caller gets whatever the scan found.
func (s *Splitter) Split(text string) types.SectionMap {
	sections := make(types.SectionMap)
	current := types.BodySection
	var chunk []string

	flush := func() {
		body := strings.TrimSpace(strings.Join(chunk, "\n"))
		if body != "" {
			if prev, ok := sections[current]; ok {
				body = prev + "\n" + body
			}
			sections[current] = body
		}
		chunk = chunk[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if label, ok := s.headingLabel(line); ok {
			flush()
			current = label
			continue
		}
		chunk = append(chunk, line)
	}
	flush()

	return sections
}

// headingLabel reports whether line is a recognized section heading and
// returns its canonical label.
func (s *Splitter) headingLabel(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	label, ok := s.headings[strings.ToLower(trimmed)]
	return label, ok
}
