// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model and configuration structs shared by
// every pipeline stage.
package types

// AnalyzerConfig holds settings for the analysis pipeline.
type AnalyzerConfig struct {
	// StoplistFile is an optional path to a newline-separated stopword
	// list. Empty means the built-in English stoplist.
	StoplistFile string `json:"stoplist_file,omitempty" yaml:"stoplist_file,omitempty"`

	// MinSimilarity is the similarity threshold in [0, 1] above which a
	// resume is reported as passing (default 0.3).
	MinSimilarity float64 `json:"min_similarity" yaml:"min_similarity"`

	// OutputDir is where report files are written (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TopKeywords caps the missing-keyword list (default 20).
	TopKeywords int `json:"top_keywords" yaml:"top_keywords"`

	// ExperienceMinWords is the word count under which the experience
	// section is flagged as thin (default 100).
	ExperienceMinWords int `json:"experience_min_words" yaml:"experience_min_words"`

	// ResumeMaxWords is the word count above which the resume is flagged
	// as lengthy (default 1500).
	ResumeMaxWords int `json:"resume_max_words" yaml:"resume_max_words"`

	// SectionHeadings overrides the heading vocabulary used by the
	// section splitter. Keys are canonical section labels, values the
	// heading spellings that map to them. Empty means the built-in
	// vocabulary.
	SectionHeadings map[string][]string `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// AIConfig holds settings for the named-entity model.
type AIConfig struct {
	// Model is the Gemini model identifier (default "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the Gemini API. Usually loaded
	// from .secrets/gemini-api-key or the GEMINI_API_KEY environment
	// variable rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ServeConfig holds settings for the interactive form server.
type ServeConfig struct {
	// Port is the TCP port the form server listens on (default 8080).
	Port int `json:"port" yaml:"port"`

	// MaxUploadBytes caps the size of an uploaded resume (default 10 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`

	// UploadDir is where uploaded resumes are temporarily stored
	// (default "uploads").
	UploadDir string `json:"upload_dir" yaml:"upload_dir"`
}

// Config is the top-level configuration for the resume analyzer.
type Config struct {
	Analyzer AnalyzerConfig `json:"analyzer" yaml:"analyzer"`
	AI       AIConfig       `json:"ai" yaml:"ai"`
	Serve    ServeConfig    `json:"serve" yaml:"serve"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Analyzer: AnalyzerConfig{
			MinSimilarity:      0.3,
			OutputDir:          "output",
			TopKeywords:        20,
			ExperienceMinWords: 100,
			ResumeMaxWords:     1500,
		},
		AI: AIConfig{
			Model: "gemini-2.5-flash",
		},
		Serve: ServeConfig{
			Port:           8080,
			MaxUploadBytes: 10 << 20,
			UploadDir:      "uploads",
		},
	}
}
