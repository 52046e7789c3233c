// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webform serves the single-page interactive form. It runs the
// exact pipeline the CLI runs, so the two surfaces cannot drift apart.
package webform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/pdiddy/resume-analyzer/internal/analyze"
	"github.com/pdiddy/resume-analyzer/internal/docload"
	"github.com/pdiddy/resume-analyzer/internal/report"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// Server wires the analysis pipeline into HTTP handlers.
type Server struct {
	pipeline  *analyze.Pipeline
	cfg       types.ServeConfig
	outputDir string
}

// New builds the Fiber app with the form routes registered.
func New(pipeline *analyze.Pipeline, cfg types.ServeConfig, outputDir string) *fiber.App {
	s := &Server{pipeline: pipeline, cfg: cfg, outputDir: outputDir}

	app := fiber.New(fiber.Config{
		BodyLimit:             int(cfg.MaxUploadBytes) + 1<<20,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", s.handleForm)
	app.Post("/analyze", s.handleAnalyze)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func (s *Server) handleForm(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(formPage)
}

// handleAnalyze accepts one uploaded resume and a pasted job
// description, runs the shared pipeline, and renders the same fields the
// CLI report has. Nothing is kept between requests beyond the report
// files on disk.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	jobText := strings.TrimSpace(c.FormValue("job_description"))
	if jobText == "" {
		return badRequest(c, "paste a job description")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return badRequest(c, "upload a resume file")
	}
	if fileHeader.Size > s.cfg.MaxUploadBytes {
		return badRequest(c, fmt.Sprintf("resume too large (max %d bytes)", s.cfg.MaxUploadBytes))
	}
	if !docload.Supported(fileHeader.Filename) {
		return unprocessable(c, fmt.Sprintf("unsupported resume format %s", filepath.Ext(fileHeader.Filename)))
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}
	tmpPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return fmt.Errorf("saving upload: %w", err)
	}
	defer os.Remove(tmpPath)

	result, err := s.pipeline.AnalyzeFile(c.Context(), tmpPath, jobText)
	if err != nil {
		if errors.Is(err, docload.ErrUnsupportedFormat) || errors.Is(err, docload.ErrEmptyDocument) {
			return unprocessable(c, err.Error())
		}
		return unprocessable(c, fmt.Sprintf("could not read resume: %v", err))
	}
	// Report the original filename, not the uuid temp name.
	result.Source = fileHeader.Filename

	if _, _, err := report.WriteFiles(result, s.outputDir, true); err != nil {
		return fmt.Errorf("writing report files: %w", err)
	}

	if c.FormValue("format") == "json" {
		return c.JSON(result)
	}
	return renderResult(c, result)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func unprocessable(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
}
