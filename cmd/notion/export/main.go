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
	if err := runExport(os.Args[1:]); err != nil {
		log.Fatalf("notion export: %v", err)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("notion-export", flag.ExitOnError)
	token := fs.String("token", "", "Notion integration token (defaults to $"+bootstrap.TokenEnvVar+")")
	output := fs.String("output", "", "Destination file (defaults to stdout)")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: notion-export [flags] <page-id-or-url>")
	}

	pageID, err := notion.NormalizePageID(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		Token:    *token,
		LogLevel: *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := pagesynccmd.NewExportPageHandler(module.Sync, module.Logger, os.Stdout)
	cmd := pagesynccmd.ExportPageCommand{
		PageID:     pageID,
		OutputPath: *output,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	return nil
}
