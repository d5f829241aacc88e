package pagesynccmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-marknotion/internal/commands"
	"github.com/goliatone/go-marknotion/internal/logging"
	"github.com/goliatone/go-marknotion/internal/pagesync"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	pushOperation   = "pagesync.push_file"
	exportOperation = "pagesync.export_page"
	searchOperation = "pagesync.search_pages"
)

var (
	_ command.Commander[PushFileCommand]    = (*PushFileHandler)(nil)
	_ command.Commander[ExportPageCommand]  = (*ExportPageHandler)(nil)
	_ command.Commander[SearchPagesCommand] = (*SearchPagesHandler)(nil)
)

// SyncService captures the page sync operations the handlers delegate to.
type SyncService interface {
	PushFile(ctx context.Context, path string, opts pagesync.PushOptions) (*pagesync.PushResult, error)
	ExportPage(ctx context.Context, pageID string) (*pagesync.ExportResult, error)
	SearchPages(ctx context.Context, query string, limit int) ([]interfaces.Page, error)
}

// PushFileHandler pushes Markdown files through the shared command handler
// foundation.
type PushFileHandler struct {
	inner *commands.Handler[PushFileCommand]
}

// NewPushFileHandler creates a handler bound to the supplied sync service.
// Results are written to out; pass nil to discard them.
func NewPushFileHandler(service SyncService, logger interfaces.Logger, out io.Writer, opts ...commands.HandlerOption[PushFileCommand]) *PushFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg PushFileCommand) error {
		result, err := service.PushFile(ctx, msg.FilePath, pagesync.PushOptions{
			PageID:   msg.PageID,
			ParentID: msg.ParentID,
			Title:    msg.Title,
			DryRun:   msg.DryRun,
		})
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"page_id": result.PageID,
			"blocks":  result.Blocks,
			"created": result.Created,
			"dry_run": result.DryRun,
		}).Info("pagesync.command.push_file.completed")

		switch {
		case result.DryRun:
			fmt.Fprintf(out, "dry run: %q would push %d blocks\n", msg.FilePath, result.Blocks)
		case result.Created:
			fmt.Fprintf(out, "created %q (%d blocks)\n", result.Title, result.Blocks)
			if result.PageURL != "" {
				fmt.Fprintln(out, result.PageURL)
			}
		default:
			fmt.Fprintf(out, "updated page %s (%d blocks)\n", result.PageID, result.Blocks)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PushFileCommand]{
		commands.WithLogger[PushFileCommand](baseLogger),
		commands.WithOperation[PushFileCommand](pushOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PushFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[PushFileCommand].
func (h *PushFileHandler) Execute(ctx context.Context, msg PushFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportPageHandler exports pages to Markdown through the shared command
// handler foundation.
type ExportPageHandler struct {
	inner *commands.Handler[ExportPageCommand]
}

// NewExportPageHandler creates a handler bound to the supplied sync service.
// When a command carries no OutputPath the Markdown is written to out.
func NewExportPageHandler(service SyncService, logger interfaces.Logger, out io.Writer, opts ...commands.HandlerOption[ExportPageCommand]) *ExportPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg ExportPageCommand) error {
		result, err := service.ExportPage(ctx, msg.PageID)
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"page_id": msg.PageID,
			"title":   result.Title,
		}).Info("pagesync.command.export_page.completed")

		if msg.OutputPath != "" {
			if err := os.WriteFile(msg.OutputPath, []byte(result.Markdown), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", msg.OutputPath, err)
			}
			return nil
		}

		_, err = io.WriteString(out, result.Markdown)
		return err
	}

	handlerOpts := []commands.HandlerOption[ExportPageCommand]{
		commands.WithLogger[ExportPageCommand](baseLogger),
		commands.WithOperation[ExportPageCommand](exportOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ExportPageCommand].
func (h *ExportPageHandler) Execute(ctx context.Context, msg ExportPageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SearchPagesHandler lists matching pages through the shared command handler
// foundation.
type SearchPagesHandler struct {
	inner *commands.Handler[SearchPagesCommand]
}

// NewSearchPagesHandler creates a handler bound to the supplied sync service.
// Matches are written to out, one page per line.
func NewSearchPagesHandler(service SyncService, logger interfaces.Logger, out io.Writer, opts ...commands.HandlerOption[SearchPagesCommand]) *SearchPagesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg SearchPagesCommand) error {
		pages, err := service.SearchPages(ctx, msg.Query, msg.Limit)
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"query":   msg.Query,
			"matches": len(pages),
		}).Info("pagesync.command.search_pages.completed")

		for _, page := range pages {
			fmt.Fprintf(out, "%s\t%s\n", page.ID, page.Title)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SearchPagesCommand]{
		commands.WithLogger[SearchPagesCommand](baseLogger),
		commands.WithOperation[SearchPagesCommand](searchOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SearchPagesHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SearchPagesCommand].
func (h *SearchPagesHandler) Execute(ctx context.Context, msg SearchPagesCommand) error {
	return h.inner.Execute(ctx, msg)
}
