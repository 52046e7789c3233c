// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-analyzer/internal/analyze"
	"github.com/pdiddy/resume-analyzer/internal/docload"
	"github.com/pdiddy/resume-analyzer/internal/ner"
	"github.com/pdiddy/resume-analyzer/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-or-directory>",
	Short: "Analyze one resume, or a directory of resumes, against a job description",
	Long: `Analyze extracts text from the resume, pulls out the candidate name and
contact details, splits the text into sections, scores TF-IDF cosine
similarity against the job description, and lists the job's keywords the
resume is missing.

With --batch the argument is a directory and every supported file in it
is analyzed. A file that cannot be read is reported and skipped; the run
only fails when every input failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("job-file", "", "job description file (txt, pdf, or docx); required")
	analyzeCmd.Flags().Bool("batch", false, "treat the argument as a directory of resumes")
	analyzeCmd.Flags().Bool("json", false, "also write a JSON report per resume")
	analyzeCmd.Flags().String("output-dir", "", "directory for report files (default from config)")
	analyzeCmd.Flags().String("stoplist", "", "stopword file overriding the built-in list")
	analyzeCmd.Flags().Float64("min-similarity", 0, "similarity threshold for a pass (overrides config)")
	analyzeCmd.Flags().Bool("no-color", false, "disable colorized output")
	analyzeCmd.Flags().BoolP("verbose", "v", false, "print a status line for every analyzed file")
	analyzeCmd.MarkFlagRequired("job-file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := loadConfig()

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Analyzer.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("stoplist") {
		cfg.Analyzer.StoplistFile, _ = cmd.Flags().GetString("stoplist")
	}
	if cmd.Flags().Changed("min-similarity") {
		cfg.Analyzer.MinSimilarity, _ = cmd.Flags().GetFloat64("min-similarity")
	}

	loader := docload.NewLoader()

	jobFile, _ := cmd.Flags().GetString("job-file")
	jobText, err := loadJobText(loader, jobFile)
	if err != nil {
		return err
	}

	// The model handle is built once and reused for every batch item.
	tagger, err := ner.NewGeminiTagger(ctx, geminiAPIKey(), cfg.AI.Model)
	if err != nil {
		return err
	}

	pipeline, err := analyze.New(loader, tagger, cfg.Analyzer)
	if err != nil {
		return err
	}

	batchMode, _ := cmd.Flags().GetBool("batch")
	paths, err := analyze.CollectInputs(args[0], batchMode)
	if err != nil {
		return err
	}

	withJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	batch := pipeline.Run(ctx, paths, jobText, os.Stderr, verbose)
	for _, result := range batch.Results {
		fmt.Println()
		report.Render(os.Stdout, result)

		txtPath, jsonPath, err := report.WriteFiles(result, cfg.Analyzer.OutputDir, withJSON)
		if err != nil {
			return err
		}
		fmt.Printf("Saved report to %s\n", txtPath)
		if jsonPath != "" {
			fmt.Printf("Saved JSON to %s\n", jsonPath)
		}
	}

	if batchMode {
		summaryPath, err := analyze.WriteSummary(batch, cfg.Analyzer.OutputDir)
		if err != nil {
			return err
		}
		fmt.Printf("Saved batch summary to %s\n", summaryPath)
	}

	if batch.AllFailed() {
		return fmt.Errorf("all %d input(s) failed", batch.Total())
	}
	return nil
}

// loadJobText reads the job description. An empty job file is not an
// error: the pipeline defines similarity against an empty description as
// zero.
func loadJobText(loader *docload.Loader, path string) (string, error) {
	doc, err := loader.Load(path)
	if err != nil {
		if errors.Is(err, docload.ErrEmptyDocument) {
			return "", nil
		}
		return "", fmt.Errorf("loading job description: %w", err)
	}
	return doc.Text, nil
}
