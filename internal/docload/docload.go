// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docload reads resume and job-description files and extracts
// their plain text, with one backend per supported format.
package docload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

// ErrUnsupportedFormat is returned for file extensions no backend handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrEmptyDocument is returned when extraction yields no text. Batch mode
// records it per file and keeps going.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Extractor turns a file on disk into plain text. Each backend handles
// one format.
type Extractor interface {
	// ExtractText reads the file at path and returns its plain text.
	ExtractText(path string) (string, error)
}

// Loader dispatches to a format backend based on file extension.
type Loader struct {
	backends map[types.DocumentFormat]Extractor
}

// NewLoader returns a Loader with the default pdf, docx, and txt backends.
func NewLoader() *Loader {
	return &Loader{
		backends: map[types.DocumentFormat]Extractor{
			types.FormatPDF:  pdfExtractor{},
			types.FormatDocx: docxExtractor{},
			types.FormatText: textExtractor{},
		},
	}
}

// DetectFormat maps a file extension to a DocumentFormat. It returns
// ErrUnsupportedFormat for anything it does not recognize.
func DetectFormat(path string) (types.DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx":
		return types.FormatDocx, nil
	case ".txt":
		return types.FormatText, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Supported reports whether path has an extension some backend handles.
func Supported(path string) bool {
	_, err := DetectFormat(path)
	return err == nil
}

// Load reads the file at path and returns a Document with its extracted
// text. Unreadable or corrupt files return a wrapped load error;
// whitespace-only extraction returns ErrEmptyDocument.
func (l *Loader) Load(path string) (types.Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return types.Document{}, err
	}

	backend, ok := l.backends[format]
	if !ok {
		return types.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	text, err := backend.ExtractText(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("loading %s: %w", path, err)
	}
	if strings.TrimSpace(text) == "" {
		return types.Document{}, fmt.Errorf("%s: %w", path, ErrEmptyDocument)
	}

	return types.Document{
		Path:   path,
		Format: format,
		Text:   text,
	}, nil
}
