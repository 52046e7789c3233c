// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docload

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxExtractor extracts text from Word documents.
type docxExtractor struct{}

func (docxExtractor) ExtractText(path string) (string, error) {
	d, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer d.Close()

	// GetContent returns the document body as WordprocessingML markup,
	// not plain text.
	text, err := wordMLText(d.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("decoding docx body: %w", err)
	}
	return text, nil
}

// wordMLText reduces WordprocessingML markup to the text it renders:
// the character data of w:t runs, with paragraphs separated by newlines
// and explicit tabs and breaks preserved.
func wordMLText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var b strings.Builder
	inRun := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// textExtractor reads plain-text files as-is.
type textExtractor struct{}

func (textExtractor) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}
