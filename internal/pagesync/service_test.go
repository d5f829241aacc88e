package pagesync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-marknotion/blocks"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

type writeCall struct {
	targetID string
	blocks   []blocks.Block
}

type createCall struct {
	parentID string
	title    string
	blocks   []blocks.Block
}

type stubAPI struct {
	children map[string][]blocks.Block

	writeCalls  []writeCall
	createCalls []createCall
	searchPages []interfaces.Page

	fetchErr error
}

func (s *stubAPI) FetchChildren(_ context.Context, blockID string) ([]blocks.Block, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.children[blockID], nil
}

func (s *stubAPI) WriteContent(_ context.Context, targetID string, list []blocks.Block) error {
	s.writeCalls = append(s.writeCalls, writeCall{targetID: targetID, blocks: list})
	return nil
}

func (s *stubAPI) CreateChild(_ context.Context, parentID, title string, list []blocks.Block) (*interfaces.Page, error) {
	s.createCalls = append(s.createCalls, createCall{parentID: parentID, title: title, blocks: list})
	return &interfaces.Page{ID: "created-id", Title: title, URL: "https://notion.so/createdid"}, nil
}

func (s *stubAPI) Search(context.Context, string) ([]interfaces.Page, error) {
	return s.searchPages, nil
}

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestPushFileUpdatesExistingPage(t *testing.T) {
	api := &stubAPI{}
	service := NewService(api, nil)
	path := writeMarkdown(t, "# Title\n\nparagraph text")

	result, err := service.PushFile(context.Background(), path, PushOptions{PageID: "page-1"})
	if err != nil {
		t.Fatalf("PushFile: %v", err)
	}

	if len(api.writeCalls) != 1 || api.writeCalls[0].targetID != "page-1" {
		t.Fatalf("expected one write to page-1, got %#v", api.writeCalls)
	}
	if len(api.writeCalls[0].blocks) != 2 {
		t.Fatalf("expected 2 blocks written, got %#v", api.writeCalls[0].blocks)
	}
	if result.Created || result.Blocks != 2 {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestPushFileCreatesChildWithResolvedTitle(t *testing.T) {
	api := &stubAPI{}
	service := NewService(api, nil)
	path := writeMarkdown(t, "---\ntitle: Front Matter Title\n---\n# Heading Title\n")

	result, err := service.PushFile(context.Background(), path, PushOptions{ParentID: "parent-1"})
	if err != nil {
		t.Fatalf("PushFile: %v", err)
	}

	if len(api.createCalls) != 1 {
		t.Fatalf("expected one create call, got %#v", api.createCalls)
	}
	if api.createCalls[0].title != "Front Matter Title" {
		t.Fatalf("front matter title must win, got %q", api.createCalls[0].title)
	}
	if !result.Created || result.PageID != "created-id" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestPushFileDryRunPerformsNoWrites(t *testing.T) {
	api := &stubAPI{}
	service := NewService(api, nil)
	path := writeMarkdown(t, "content")

	result, err := service.PushFile(context.Background(), path, PushOptions{PageID: "page-1", DryRun: true})
	if err != nil {
		t.Fatalf("PushFile: %v", err)
	}

	if len(api.writeCalls) != 0 || len(api.createCalls) != 0 {
		t.Fatalf("dry run must not call the API: %#v %#v", api.writeCalls, api.createCalls)
	}
	if !result.DryRun || result.Blocks != 1 {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestPushFileTargetValidation(t *testing.T) {
	service := NewService(&stubAPI{}, nil)
	path := writeMarkdown(t, "content")

	if _, err := service.PushFile(context.Background(), path, PushOptions{}); !errors.Is(err, ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired, got %v", err)
	}

	opts := PushOptions{PageID: "a", ParentID: "b"}
	if _, err := service.PushFile(context.Background(), path, opts); !errors.Is(err, ErrTargetConflict) {
		t.Fatalf("expected ErrTargetConflict, got %v", err)
	}
}

func TestExportPageHydratesChildren(t *testing.T) {
	api := &stubAPI{children: map[string][]blocks.Block{
		"page-1": {
			{Kind: blocks.KindHeading1, RichText: []blocks.Run{{Text: "Exported Page"}}},
			{ID: "toggle-1", Kind: blocks.KindParagraph, HasChildren: true,
				RichText: []blocks.Run{{Text: "parent"}}},
		},
		"toggle-1": {
			{Kind: blocks.KindParagraph, RichText: []blocks.Run{{Text: "nested"}}},
		},
	}}
	service := NewService(api, nil)

	result, err := service.ExportPage(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("ExportPage: %v", err)
	}

	if result.Markdown != "# Exported Page\n\nparent" {
		t.Fatalf("markdown mismatch: %q", result.Markdown)
	}
	if result.Title != "Exported Page" {
		t.Fatalf("title mismatch: %q", result.Title)
	}
	if result.Filename != "exported-page.md" {
		t.Fatalf("filename mismatch: %q", result.Filename)
	}
}

func TestExportPagePropagatesFetchErrors(t *testing.T) {
	api := &stubAPI{fetchErr: errors.New("boom")}
	service := NewService(api, nil)

	if _, err := service.ExportPage(context.Background(), "page-1"); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}

func TestSearchPagesAppliesLimit(t *testing.T) {
	api := &stubAPI{searchPages: []interfaces.Page{
		{ID: "1"}, {ID: "2"}, {ID: "3"},
	}}
	service := NewService(api, nil)

	pages, err := service.SearchPages(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("SearchPages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected limit applied, got %#v", pages)
	}
}
