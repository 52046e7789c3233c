// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"time"
)

// DocumentFormat identifies the on-disk format of a loaded document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDocx DocumentFormat = "docx"
	FormatText DocumentFormat = "txt"
)

// Document holds a loaded input file and its extracted plain text.
// It is built once by the loader and never mutated afterwards.
type Document struct {
	// Path is the filesystem path the document was loaded from.
	Path string `json:"path" yaml:"path"`

	// Format is the detected format, derived from the file extension.
	Format DocumentFormat `json:"format" yaml:"format"`

	// Text is the extracted plain text.
	Text string `json:"text" yaml:"text"`
}

// SectionMap maps a lowercase section label (e.g. "experience", "skills")
// to the text assigned to that section. Text before the first recognized
// heading lives under the "body" label.
type SectionMap map[string]string

// BodySection is the label for text not under any recognized heading.
const BodySection = "body"

// ContactInfo holds contact details found in a resume. Empty fields mean
// "not found", not an error.
type ContactInfo struct {
	// Email is the first email address matched in the resume text.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Phone is the first phone number matched in the resume text.
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Empty reports whether no contact details were found.
func (c ContactInfo) Empty() bool {
	return c.Email == "" && c.Phone == ""
}

// AnalysisResult aggregates everything the pipeline produced for one
// resume. It is constructed once per document and never mutated.
type AnalysisResult struct {
	// Source is the path of the analyzed resume file.
	Source string `json:"source" yaml:"source"`

	// Candidate is the extracted person name, or "" when none was found.
	Candidate string `json:"candidate" yaml:"candidate"`

	// Contact holds the extracted email and phone, if any.
	Contact ContactInfo `json:"contact" yaml:"contact"`

	// Sections maps section labels to resume text regions.
	Sections SectionMap `json:"sections" yaml:"sections"`

	// Similarity is the TF-IDF cosine similarity between resume and job
	// description, always in [0, 1]. Zero when either text is empty.
	Similarity float64 `json:"similarity" yaml:"similarity"`

	// MissingKeywords lists job-description tokens absent from the resume,
	// ordered by descending frequency in the job description.
	MissingKeywords []string `json:"missing_keywords" yaml:"missing_keywords"`

	// Recommendations holds free-text improvement suggestions.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`

	// Passed reports whether Similarity met the configured threshold.
	Passed bool `json:"passed" yaml:"passed"`

	// AnalyzedAt is when the pipeline ran, in UTC.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}

// MatchPercent returns the similarity as a percentage rounded to two
// decimals, the form the report renders.
func (r AnalysisResult) MatchPercent() float64 {
	return math.Round(r.Similarity*10000) / 100
}
