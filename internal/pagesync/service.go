// Package pagesync orchestrates the file-centric workflows: pushing a
// Markdown file into a remote page and exporting a remote page back to
// Markdown. The converter stays pure; all I/O happens here.
package pagesync

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-marknotion/blocks"
	"github.com/goliatone/go-marknotion/internal/converter"
	"github.com/goliatone/go-marknotion/internal/logging"
	mdfile "github.com/goliatone/go-marknotion/internal/markdown"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

var (
	// ErrTargetRequired is returned when a push names neither a page nor a parent.
	ErrTargetRequired = errors.New("pagesync: a target page or parent page is required")
	// ErrTargetConflict is returned when a push names both a page and a parent.
	ErrTargetConflict = errors.New("pagesync: target page and parent page are mutually exclusive")
)

// Service wires the converter, the file loader, and the remote API together.
type Service struct {
	api    interfaces.NotionAPI
	logger interfaces.Logger
}

// NewService constructs the sync service. A nil logger falls back to no-op.
func NewService(api interfaces.NotionAPI, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{api: api, logger: logger}
}

// PushOptions selects the push target: exactly one of PageID (update an
// existing page) or ParentID (create a child page) must be set.
type PushOptions struct {
	PageID   string
	ParentID string
	// Title overrides the resolved document title for created pages.
	Title string
	// DryRun converts the file but performs no remote writes.
	DryRun bool
}

// PushResult reports the outcome of a push.
type PushResult struct {
	PageID  string
	PageURL string
	Title   string
	Blocks  int
	Created bool
	DryRun  bool
}

// PushFile loads a Markdown file, converts it, and writes the result to the
// remote target.
func (s *Service) PushFile(ctx context.Context, path string, opts PushOptions) (*PushResult, error) {
	if opts.PageID == "" && opts.ParentID == "" {
		return nil, ErrTargetRequired
	}
	if opts.PageID != "" && opts.ParentID != "" {
		return nil, ErrTargetConflict
	}

	doc, err := mdfile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = mdfile.Title(doc)
	}

	list := converter.MarkdownToBlocks(string(doc.Body))

	result := &PushResult{
		PageID: opts.PageID,
		Title:  title,
		Blocks: len(list),
		DryRun: opts.DryRun,
	}

	logger := logging.WithSyncContext(s.logger, path, opts.PageID, "push")
	if opts.DryRun {
		logger.Info("pagesync.push.dry_run", "blocks", len(list))
		return result, nil
	}

	if opts.PageID != "" {
		if err := s.api.WriteContent(ctx, opts.PageID, list); err != nil {
			return nil, fmt.Errorf("push %s: %w", path, err)
		}
		logger.Info("pagesync.push.updated", "blocks", len(list))
		return result, nil
	}

	page, err := s.api.CreateChild(ctx, opts.ParentID, title, list)
	if err != nil {
		return nil, fmt.Errorf("push %s: %w", path, err)
	}

	result.PageID = page.ID
	result.PageURL = page.URL
	result.Created = true
	logger.Info("pagesync.push.created", "page_id", page.ID, "blocks", len(list))
	return result, nil
}

// ExportResult carries the serialized page along with a title derived from
// its first level-1 heading and a filename suggestion based on that title.
type ExportResult struct {
	Markdown string
	Title    string
	Filename string
}

// ExportPage fetches a page's blocks, hydrates nested children, and
// serializes the sequence to Markdown.
func (s *Service) ExportPage(ctx context.Context, pageID string) (*ExportResult, error) {
	list, err := s.api.FetchChildren(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", pageID, err)
	}

	list, err = s.hydrate(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", pageID, err)
	}

	result := &ExportResult{
		Markdown: converter.BlocksToMarkdown(list),
		Title:    firstHeading(list),
	}
	name := result.Title
	if name == "" {
		name = pageID
	}
	result.Filename = mdfile.ExportFilename(name)

	logging.WithSyncContext(s.logger, "", pageID, "export").
		Info("pagesync.export.completed", "blocks", len(list))
	return result, nil
}

// SearchPages lists pages matching the query, truncated to limit when
// positive.
func (s *Service) SearchPages(ctx context.Context, query string, limit int) ([]interfaces.Page, error) {
	pages, err := s.api.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if limit > 0 && len(pages) > limit {
		pages = pages[:limit]
	}
	return pages, nil
}

// hydrate recursively fetches children for blocks flagged as parents. The
// children ride along on the block for callers that need the full tree; the
// Markdown serializer intentionally renders only the flat top level.
func (s *Service) hydrate(ctx context.Context, list []blocks.Block) ([]blocks.Block, error) {
	for i := range list {
		if !list[i].HasChildren || list[i].ID == "" {
			continue
		}

		children, err := s.api.FetchChildren(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		children, err = s.hydrate(ctx, children)
		if err != nil {
			return nil, err
		}
		list[i].Children = children
	}
	return list, nil
}

func firstHeading(list []blocks.Block) string {
	for _, block := range list {
		if block.Kind != blocks.KindHeading1 {
			continue
		}
		text := ""
		for _, run := range block.RichText {
			text += run.Text
		}
		return text
	}
	return ""
}
