package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFileStripsFrontMatter(t *testing.T) {
	path := writeFile(t, "doc.md", "---\ntitle: Sample\ntags: [notes, sync]\n---\n# Heading\n\nbody text\n")

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.FrontMatter.Title != "Sample" {
		t.Fatalf("front matter title mismatch: %q", doc.FrontMatter.Title)
	}
	if len(doc.FrontMatter.Tags) != 2 || doc.FrontMatter.Tags[0] != "notes" {
		t.Fatalf("front matter tags mismatch: %#v", doc.FrontMatter.Tags)
	}
	if strings.Contains(string(doc.Body), "---") {
		t.Fatalf("body must not contain delimiters: %q", doc.Body)
	}
	if !strings.Contains(string(doc.Body), "# Heading") {
		t.Fatalf("body missing content: %q", doc.Body)
	}
}

func TestLoadFileWithoutFrontMatter(t *testing.T) {
	path := writeFile(t, "plain.md", "# Just Markdown\n")

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.FrontMatter.Title != "" {
		t.Fatalf("expected empty front matter, got %#v", doc.FrontMatter)
	}
	if string(doc.Body) != "# Just Markdown\n" {
		t.Fatalf("body mismatch: %q", doc.Body)
	}
}

func TestTitleResolutionOrder(t *testing.T) {
	doc := &interfaces.Document{
		FilePath:    "guides/setup-guide.md",
		FrontMatter: interfaces.FrontMatter{Title: "From Front Matter"},
		Body:        []byte("# From Heading\n\ntext"),
	}
	if got := Title(doc); got != "From Front Matter" {
		t.Fatalf("front matter title must win, got %q", got)
	}

	doc.FrontMatter.Title = ""
	if got := Title(doc); got != "From Heading" {
		t.Fatalf("heading title expected, got %q", got)
	}

	doc.Body = []byte("no headings here")
	if got := Title(doc); got != "setup-guide" {
		t.Fatalf("file stem expected, got %q", got)
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename("My Page Title"); got != "my-page-title.md" {
		t.Fatalf("ExportFilename mismatch: %q", got)
	}
	if got := ExportFilename(""); got != "page.md" {
		t.Fatalf("empty title fallback mismatch: %q", got)
	}
}
