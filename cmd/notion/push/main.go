package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-marknotion/cmd/notion/internal/bootstrap"
	pagesynccmd "github.com/goliatone/go-marknotion/internal/commands/pagesync"
	"github.com/goliatone/go-marknotion/internal/notion"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPush(os.Args[1:]); err != nil {
		log.Fatalf("notion push: %v", err)
	}
}

func runPush(args []string) error {
	fs := flag.NewFlagSet("notion-push", flag.ExitOnError)
	token := fs.String("token", "", "Notion integration token (defaults to $"+bootstrap.TokenEnvVar+")")
	page := fs.String("page", "", "Page ID or URL whose content is replaced")
	parent := fs.String("parent", "", "Parent page ID or URL under which a child page is created")
	title := fs.String("title", "", "Title override for created pages")
	dryRun := fs.Bool("dry-run", false, "Preview the conversion without remote writes")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: notion-push [flags] <file.md>")
	}

	pageID, err := normalizeTarget(*page)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}
	parentID, err := normalizeTarget(*parent)
	if err != nil {
		return fmt.Errorf("parse parent: %w", err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		Token:    *token,
		LogLevel: *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := pagesynccmd.NewPushFileHandler(module.Sync, module.Logger, os.Stdout)
	cmd := pagesynccmd.PushFileCommand{
		FilePath: fs.Arg(0),
		PageID:   pageID,
		ParentID: parentID,
		Title:    *title,
		DryRun:   *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute push command: %w", err)
	}
	return nil
}

func normalizeTarget(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return notion.NormalizePageID(value)
}
