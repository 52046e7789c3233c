// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an AnalysisResult as a console table, a plain-
// text report, and a JSON file. Formatting only; nothing here computes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

const notFound = "(not found)"

// Render writes a colorized console table for one result to w.
func Render(w io.Writer, r types.AnalysisResult) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(w, "Resume Analysis — %s\n", r.Source)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Candidate", orNotFound(r.Candidate)})
	table.Append([]string{"Email", orNotFound(r.Contact.Email)})
	table.Append([]string{"Phone", orNotFound(r.Contact.Phone)})
	table.Append([]string{"Match", fmt.Sprintf("%.2f %%", r.MatchPercent())})
	table.Append([]string{"Missing keywords", summarize(r.MissingKeywords)})
	table.Render()

	if r.Passed {
		color.New(color.FgGreen).Fprintln(w, "PASS: similarity meets the configured threshold")
	} else {
		color.New(color.FgYellow).Fprintln(w, "BELOW THRESHOLD: similarity under the configured minimum")
	}

	color.New(color.Bold).Fprintln(w, "Recommendations:")
	if len(r.Recommendations) == 0 {
		fmt.Fprintln(w, " - none")
		return
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, " - %s\n", rec)
	}
}

// PlainText renders the report with its fixed section order: Name,
// Contact, Similarity Score, Missing Keywords, Recommendations.
func PlainText(r types.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resume analysis: %s\n", r.Source)
	fmt.Fprintf(&b, "Analyzed at: %s\n\n", r.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "Name: %s\n", orNotFound(r.Candidate))

	fmt.Fprintf(&b, "Contact: ")
	switch {
	case r.Contact.Empty():
		fmt.Fprintln(&b, notFound)
	case r.Contact.Phone == "":
		fmt.Fprintln(&b, r.Contact.Email)
	case r.Contact.Email == "":
		fmt.Fprintln(&b, r.Contact.Phone)
	default:
		fmt.Fprintf(&b, "%s, %s\n", r.Contact.Email, r.Contact.Phone)
	}

	fmt.Fprintf(&b, "Similarity Score: %.2f %% (%s)\n", r.MatchPercent(), passLabel(r.Passed))

	fmt.Fprintln(&b, "Missing Keywords:")
	if len(r.MissingKeywords) == 0 {
		fmt.Fprintln(&b, "  none")
	}
	for _, kw := range r.MissingKeywords {
		fmt.Fprintf(&b, "  - %s\n", kw)
	}

	fmt.Fprintln(&b, "Recommendations:")
	if len(r.Recommendations) == 0 {
		fmt.Fprintln(&b, "  none")
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}

	return b.String()
}

// JSON serializes the result, mirroring AnalysisResult's fields
// one-to-one.
func JSON(r types.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func orNotFound(s string) string {
	if s == "" {
		return notFound
	}
	return s
}

func passLabel(passed bool) string {
	if passed {
		return "pass"
	}
	return "below threshold"
}

func summarize(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
