// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-analyzer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-analyzer/internal/secrets"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// geminiAPIKey resolves the Gemini API key: explicit config wins, then
// the environment, then the .secrets/ directory.
func geminiAPIKey() string {
	if v := viper.GetString("ai.api_key"); v != "" {
		return v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v
	}
	return loadedSecrets[secrets.GeminiAPIKey]
}

// rootCmd is the base command for the resume-analyzer CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-analyzer",
	Short: "Compare resumes against a job description",
	Long: `resume-analyzer scores a resume (PDF, DOCX, or plain text) against a job
description, extracts the candidate name and contact details, splits the
resume into sections, and reports the keywords the job asks for that the
resume never mentions.

Run a single file or a whole directory with the analyze subcommand, or
start the interactive form with serve.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-analyzer.yaml or ~/.config/resume-analyzer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-analyzer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-analyzer"))
		}
	}

	defaults := types.DefaultConfig()
	viper.SetDefault("analyzer.stoplist_file", defaults.Analyzer.StoplistFile)
	viper.SetDefault("analyzer.min_similarity", defaults.Analyzer.MinSimilarity)
	viper.SetDefault("analyzer.output_dir", defaults.Analyzer.OutputDir)
	viper.SetDefault("analyzer.top_keywords", defaults.Analyzer.TopKeywords)
	viper.SetDefault("analyzer.experience_min_words", defaults.Analyzer.ExperienceMinWords)
	viper.SetDefault("analyzer.resume_max_words", defaults.Analyzer.ResumeMaxWords)
	viper.SetDefault("ai.model", defaults.AI.Model)
	viper.SetDefault("serve.port", defaults.Serve.Port)
	viper.SetDefault("serve.max_upload_bytes", defaults.Serve.MaxUploadBytes)
	viper.SetDefault("serve.upload_dir", defaults.Serve.UploadDir)

	viper.SetEnvPrefix("RESUME_ANALYZER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the typed config from viper's merged view of
// defaults, config file, and environment.
func loadConfig() types.Config {
	return types.Config{
		Analyzer: types.AnalyzerConfig{
			StoplistFile:       viper.GetString("analyzer.stoplist_file"),
			MinSimilarity:      viper.GetFloat64("analyzer.min_similarity"),
			OutputDir:          viper.GetString("analyzer.output_dir"),
			TopKeywords:        viper.GetInt("analyzer.top_keywords"),
			ExperienceMinWords: viper.GetInt("analyzer.experience_min_words"),
			ResumeMaxWords:     viper.GetInt("analyzer.resume_max_words"),
			SectionHeadings:    viper.GetStringMapStringSlice("analyzer.sections"),
		},
		AI: types.AIConfig{
			Model:  viper.GetString("ai.model"),
			APIKey: viper.GetString("ai.api_key"),
		},
		Serve: types.ServeConfig{
			Port:           viper.GetInt("serve.port"),
			MaxUploadBytes: viper.GetInt64("serve.max_upload_bytes"),
			UploadDir:      viper.GetString("serve.upload_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
