// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// WriteFiles writes the plain-text report for r into dir and, when
// withJSON is set, a JSON file with the same basename. It returns the
// paths written.
func WriteFiles(r types.AnalysisResult, dir string, withJSON bool) (txtPath, jsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating output directory: %w", err)
	}

	base := fmt.Sprintf("analysis_%s_%s", slug(r.Source), r.AnalyzedAt.Format("20060102_150405"))
	base = uniqueBase(dir, base, withJSON)

	txtPath = filepath.Join(dir, base+".txt")
	if err := os.WriteFile(txtPath, []byte(PlainText(r)), 0o644); err != nil {
		return "", "", fmt.Errorf("writing text report: %w", err)
	}

	if !withJSON {
		return txtPath, "", nil
	}

	data, err := JSON(r)
	if err != nil {
		return "", "", fmt.Errorf("serializing report: %w", err)
	}
	jsonPath = filepath.Join(dir, base+".json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing json report: %w", err)
	}

	return txtPath, jsonPath, nil
}

// uniqueBase appends _n to base until no report file in dir would be
// overwritten. Sources whose slugs collide in the same second keep
// separate reports.
func uniqueBase(dir, base string, withJSON bool) string {
	candidate := base
	for n := 1; ; n++ {
		if !fileExists(filepath.Join(dir, candidate+".txt")) &&
			(!withJSON || !fileExists(filepath.Join(dir, candidate+".json"))) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", base, n)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// slug reduces a source path to a filename-safe stem.
func slug(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
