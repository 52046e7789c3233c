// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-analyzer/internal/docload"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// Failure records one input file the batch could not analyze.
type Failure struct {
	// Path is the resume file that failed.
	Path string `json:"path" yaml:"path"`

	// Reason is the error text.
	Reason string `json:"reason" yaml:"reason"`
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	// Results holds one AnalysisResult per successfully analyzed file.
	Results []types.AnalysisResult `json:"results" yaml:"results"`

	// Failures lists the files that could not be analyzed.
	Failures []Failure `json:"failures" yaml:"failures"`
}

// Total returns the number of input files processed.
func (r BatchResult) Total() int {
	return len(r.Results) + len(r.Failures)
}

// HasFailures reports whether any input file failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// AllFailed reports whether every input file failed. Only then does the
// run exit nonzero; partial failures are a normal batch outcome.
func (r BatchResult) AllFailed() bool {
	return len(r.Results) == 0 && len(r.Failures) > 0
}

// CollectInputs expands root into the list of resume paths to analyze.
// In batch mode root must be a directory and every supported file in it
// (directory-listing order) is an input; otherwise root itself is the
// single input.
func CollectInputs(root string, batch bool) ([]string, error) {
	if !batch {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading batch directory %s: %w", root, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !docload.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported resume files in %s", root)
	}
	return paths, nil
}

// Run analyzes each path against jobText, printing status lines to w.
// Failures and the closing summary always print; per-file success lines
// only when verbose is set. A file's load or analysis failure is
// recorded and never halts the remaining files.
func (p *Pipeline) Run(ctx context.Context, paths []string, jobText string, w io.Writer, verbose bool) BatchResult {
	var batch BatchResult

	for _, path := range paths {
		result, err := p.AnalyzeFile(ctx, path, jobText)
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", filepath.Base(path), err)
			batch.Failures = append(batch.Failures, Failure{Path: path, Reason: err.Error()})
			continue
		}
		if verbose {
			fmt.Fprintf(w, "analyzed: %s (match %.2f%%)\n", filepath.Base(path), result.MatchPercent())
		}
		batch.Results = append(batch.Results, result)
	}

	fmt.Fprintf(w, "\nBatch summary: %d analyzed, %d failed (total: %d)\n",
		len(batch.Results), len(batch.Failures), batch.Total())
	return batch
}

// summaryEntry is one line of the batch summary artifact.
type summaryEntry struct {
	Path       string  `yaml:"path"`
	Status     string  `yaml:"status"`
	Similarity float64 `yaml:"similarity,omitempty"`
	Reason     string  `yaml:"reason,omitempty"`
}

// WriteSummary writes a YAML summary of the batch run to
// dir/summary.yaml and returns the path.
func WriteSummary(batch BatchResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	entries := make([]summaryEntry, 0, batch.Total())
	for _, r := range batch.Results {
		entries = append(entries, summaryEntry{Path: r.Source, Status: "analyzed", Similarity: r.Similarity})
	}
	for _, f := range batch.Failures {
		entries = append(entries, summaryEntry{Path: f.Path, Status: "failed", Reason: f.Reason})
	}

	doc := struct {
		RanAt    time.Time      `yaml:"ran_at"`
		Analyzed int            `yaml:"analyzed"`
		Failed   int            `yaml:"failed"`
		Files    []summaryEntry `yaml:"files"`
	}{
		RanAt:    time.Now().UTC(),
		Analyzed: len(batch.Results),
		Failed:   len(batch.Failures),
		Files:    entries,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}

	path := filepath.Join(dir, "summary.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}
	return path, nil
}
