package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

const (
	rootModule   = "marknotion"
	notionModule = "marknotion.notion"
	syncModule   = "marknotion.sync"
)

const (
	fieldPagePath = "file_path"
	fieldPageID   = "page_id"
	fieldAction   = "sync_action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// NotionLogger returns the logger namespace reserved for the remote API client.
func NotionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, notionModule)
}

// SyncLogger returns the logger namespace reserved for page sync workflows.
func SyncLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, syncModule)
}

// WithSyncContext enriches the provided logger with common sync fields such
// as file path, page id, and action. Empty values are ignored.
func WithSyncContext(logger interfaces.Logger, path, pageID, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldPagePath] = trimmed
	}
	if trimmed := strings.TrimSpace(pageID); trimmed != "" {
		fields[fieldPageID] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
