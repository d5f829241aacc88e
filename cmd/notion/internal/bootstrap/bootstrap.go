// Package bootstrap shares module construction across the notion CLI
// entrypoints.
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	marknotion "github.com/goliatone/go-marknotion"
	pagesynccmd "github.com/goliatone/go-marknotion/internal/commands/pagesync"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

// TokenEnvVar names the environment variable consulted when no token flag is
// supplied.
const TokenEnvVar = "NOTION_TOKEN"

// Options captures configuration for notion CLI bootstraps.
type Options struct {
	Token          string
	BaseURL        string
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the marknotion module and the sync service the CLI commands
// drive.
type Module struct {
	Module *marknotion.Module
	Sync   pagesynccmd.SyncService
	Logger interfaces.Logger
}

// BuildModule constructs a marknotion module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := marknotion.DefaultConfig()

	cfg.Notion.Token = strings.TrimSpace(opts.Token)
	if cfg.Notion.Token == "" {
		cfg.Notion.Token = strings.TrimSpace(os.Getenv(TokenEnvVar))
	}
	if cfg.Notion.Token == "" {
		return nil, fmt.Errorf("notion token is required; pass -token or set %s", TokenEnvVar)
	}

	if trimmed := strings.TrimSpace(opts.BaseURL); trimmed != "" {
		cfg.Notion.BaseURL = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []marknotion.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, marknotion.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := marknotion.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise marknotion module: %w", err)
	}

	return &Module{
		Module: module,
		Sync:   module.Sync(),
		Logger: module.Logger(),
	}, nil
}
