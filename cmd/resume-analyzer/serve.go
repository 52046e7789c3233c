// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-analyzer/internal/analyze"
	"github.com/pdiddy/resume-analyzer/internal/docload"
	"github.com/pdiddy/resume-analyzer/internal/ner"
	"github.com/pdiddy/resume-analyzer/internal/webform"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive single-page analysis form",
	Long: `Serve starts an HTTP server with a single-page form: upload one resume,
paste a job description, and get the same report the CLI produces. The
form runs the identical pipeline, so results match the analyze
subcommand for the same inputs.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig()
	if cmd.Flags().Changed("port") {
		cfg.Serve.Port, _ = cmd.Flags().GetInt("port")
	}

	tagger, err := ner.NewGeminiTagger(context.Background(), geminiAPIKey(), cfg.AI.Model)
	if err != nil {
		return err
	}

	pipeline, err := analyze.New(docload.NewLoader(), tagger, cfg.Analyzer)
	if err != nil {
		return err
	}

	app := webform.New(pipeline, cfg.Serve, cfg.Analyzer.OutputDir)

	log.Printf("resume-analyzer form listening on :%d", cfg.Serve.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Serve.Port))
}
