// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze composes the pipeline stages into a single entry
// point. The CLI and the interactive form both call the same functions,
// so identical inputs produce identical results on either surface.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/resume-analyzer/internal/extract"
	"github.com/pdiddy/resume-analyzer/internal/score"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// Loader abstracts document loading so tests can supply fakes.
type Loader interface {
	Load(path string) (types.Document, error)
}

// Pipeline holds the stage dependencies and analyzer settings for one
// run. Build it once and reuse it across batch items; it has no mutable
// state.
type Pipeline struct {
	loader   Loader
	tagger   extract.Tagger
	splitter *extract.Splitter
	stoplist score.Stoplist
	cfg      types.AnalyzerConfig
}

// New builds a Pipeline. The stoplist file named in cfg is read here so
// a bad path surfaces at startup, not in the middle of a batch.
func New(loader Loader, tagger extract.Tagger, cfg types.AnalyzerConfig) (*Pipeline, error) {
	stoplist, err := score.LoadStoplist(cfg.StoplistFile)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		loader:   loader,
		tagger:   tagger,
		splitter: extract.NewSplitter(cfg.SectionHeadings),
		stoplist: stoplist,
		cfg:      cfg,
	}, nil
}

// AnalyzeFile loads the resume at path and analyzes it against jobText.
// Load failures return a zero-valued result alongside the error so batch
// mode can note the failure and keep going.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path, jobText string) (types.AnalysisResult, error) {
	doc, err := p.loader.Load(path)
	if err != nil {
		return types.AnalysisResult{
			Source:     path,
			Sections:   types.SectionMap{},
			AnalyzedAt: time.Now().UTC(),
		}, err
	}
	return p.AnalyzeText(ctx, path, doc.Text, jobText), nil
}

// AnalyzeText runs the full pipeline over already-extracted resume text.
// It never fails: soft-failing stages report "not found" as empty values.
func (p *Pipeline) AnalyzeText(ctx context.Context, source, resumeText, jobText string) types.AnalysisResult {
	sections := p.splitter.Split(resumeText)
	contact := extract.Contacts(resumeText)
	candidate := extract.CandidateName(ctx, p.tagger, resumeText)

	similarity := score.Similarity(resumeText, jobText, p.stoplist)
	missing := score.MissingKeywords(jobText, resumeText, p.stoplist, p.cfg.TopKeywords)

	result := types.AnalysisResult{
		Source:          source,
		Candidate:       candidate,
		Contact:         contact,
		Sections:        sections,
		Similarity:      similarity,
		MissingKeywords: missing,
		Passed:          similarity >= p.cfg.MinSimilarity,
		AnalyzedAt:      time.Now().UTC(),
	}
	result.Recommendations = p.recommend(result, resumeText)
	return result
}

// recommend derives improvement suggestions from the analysis.
func (p *Pipeline) recommend(r types.AnalysisResult, resumeText string) []string {
	var recs []string

	if len(r.MissingKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Add missing skills: %s", strings.Join(r.MissingKeywords, ", ")))
	}
	if len(strings.Fields(r.Sections["experience"])) < p.cfg.ExperienceMinWords {
		recs = append(recs, "Provide more detail in your experience section.")
	}
	if r.Contact.Empty() {
		recs = append(recs, "Add contact information (email/phone).")
	}
	if len(strings.Fields(resumeText)) > p.cfg.ResumeMaxWords {
		recs = append(recs, "Resume is lengthy; consider shortening.")
	}

	return recs
}
