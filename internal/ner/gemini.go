// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ner tags person-name entities with the Gemini API. The model
// handle is created once at startup and passed explicitly to the
// extraction stage.
package ner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrModelUnavailable means the named-entity model could not be
// initialized. Fatal at startup; the pipeline cannot run without it.
var ErrModelUnavailable = errors.New("named-entity model unavailable")

// Remediation is appended to startup failures so the user knows how to
// supply a key.
const Remediation = "put a Gemini API key in .secrets/gemini-api-key or set GEMINI_API_KEY"

const personPrompt = `List every person name that appears in the text below.
Respond with only a JSON array of strings, in order of appearance, and
nothing else. Respond with [] if there are none.

Text:
%s`

// GeminiTagger implements extract.Tagger against the Gemini API.
type GeminiTagger struct {
	client *genai.Client
	model  string
}

// NewGeminiTagger builds the model handle. A missing API key or a failed
// client construction is reported as ErrModelUnavailable.
func NewGeminiTagger(ctx context.Context, apiKey, model string) (*GeminiTagger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no API key; %s", ErrModelUnavailable, Remediation)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v; %s", ErrModelUnavailable, err, Remediation)
	}

	return &GeminiTagger{client: client, model: model}, nil
}

// TagPersons asks the model for person names in text, in order of
// appearance. Errors here are per-call; the caller degrades to its
// fallback heuristic.
func (g *GeminiTagger) TagPersons(ctx context.Context, text string) ([]string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 512,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(fmt.Sprintf(personPrompt, text)), config)
	if err != nil {
		return nil, fmt.Errorf("tagging persons: %w", err)
	}
	if resp == nil || resp.Text() == "" {
		return nil, fmt.Errorf("tagging persons: empty model response")
	}

	var spans []string
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &spans); err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}
	return spans, nil
}

// stripFences removes a surrounding markdown code fence, which the model
// adds despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
