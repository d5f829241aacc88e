// Package markdown handles Markdown file loading for the sync workflows:
// front matter extraction, title resolution, and export file naming. The
// conversion itself lives in the converter package.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// LoadFile reads a Markdown file from disk and splits front matter from the
// body.
func LoadFile(path string) (*interfaces.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown file: %w", err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	doc := &interfaces.Document{
		FilePath:    path,
		FrontMatter: meta,
		Body:        body,
	}
	if info, err := os.Stat(path); err == nil {
		doc.LastModified = info.ModTime()
	}
	return doc, nil
}

// Title resolves a document title: front matter title first, then the first
// level-1 heading in the body, then the file name without extension.
func Title(doc *interfaces.Document) string {
	if doc == nil {
		return ""
	}

	if title := strings.TrimSpace(doc.FrontMatter.Title); title != "" {
		return title
	}

	if match := h1Pattern.FindSubmatch(doc.Body); match != nil {
		return strings.TrimSpace(string(match[1]))
	}

	base := filepath.Base(doc.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExportFilename derives a Markdown filename from a page title. Titles that
// normalize to nothing fall back to a generic name.
func ExportFilename(title string) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return "page.md"
	}
	return normalized + ".md"
}
