package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-marknotion/cmd/notion/internal/bootstrap"
	"github.com/goliatone/go-marknotion/internal/logging"
	"github.com/goliatone/go-marknotion/internal/pagesync"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

type stubSyncService struct {
	pushCalls int
	pushPath  string
	pushOpts  pagesync.PushOptions
}

func (s *stubSyncService) PushFile(_ context.Context, path string, opts pagesync.PushOptions) (*pagesync.PushResult, error) {
	s.pushCalls++
	s.pushPath = path
	s.pushOpts = opts
	return &pagesync.PushResult{PageID: opts.PageID, Blocks: 1}, nil
}

func (s *stubSyncService) ExportPage(context.Context, string) (*pagesync.ExportResult, error) {
	return &pagesync.ExportResult{}, nil
}

func (s *stubSyncService) SearchPages(context.Context, string, int) ([]interfaces.Page, error) {
	return nil, nil
}

func TestRunPushUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubSyncService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Sync:   svc,
			Logger: logging.NoOp(),
		}, nil
	}

	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte("body\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	pageURL := "https://www.notion.so/Note-0123456789abcdef0123456789abcdef"
	if err := runPush([]string{"-page", pageURL, path}); err != nil {
		t.Fatalf("run push: %v", err)
	}

	if svc.pushCalls != 1 {
		t.Fatalf("expected one push, got %d", svc.pushCalls)
	}
	if svc.pushPath != path {
		t.Fatalf("expected path %q, got %q", path, svc.pushPath)
	}
	if svc.pushOpts.PageID != "01234567-89ab-cdef-0123-456789abcdef" {
		t.Fatalf("expected normalized page id, got %q", svc.pushOpts.PageID)
	}
}

func TestRunPushRequiresFileArgument(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		t.Fatalf("module builder should not run without a file argument")
		return nil, nil
	}

	if err := runPush([]string{"-page", "01234567-89ab-cdef-0123-456789abcdef"}); err == nil {
		t.Fatalf("expected usage error")
	}
}
