package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-marknotion/cmd/notion/internal/bootstrap"
	pagesynccmd "github.com/goliatone/go-marknotion/internal/commands/pagesync"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSearch(os.Args[1:]); err != nil {
		log.Fatalf("notion search: %v", err)
	}
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("notion-search", flag.ExitOnError)
	token := fs.String("token", "", "Notion integration token (defaults to $"+bootstrap.TokenEnvVar+")")
	limit := fs.Int("limit", 0, "Maximum number of results (0 means all)")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: notion-search [flags] <query>")
	}

	module, err := moduleBuilder(bootstrap.Options{
		Token:    *token,
		LogLevel: *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := pagesynccmd.NewSearchPagesHandler(module.Sync, module.Logger, os.Stdout)
	cmd := pagesynccmd.SearchPagesCommand{
		Query: strings.Join(fs.Args(), " "),
		Limit: *limit,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute search command: %w", err)
	}
	return nil
}
