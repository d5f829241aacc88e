package marknotion

import (
	"time"

	"github.com/goliatone/go-marknotion/internal/notion"
)

// LoggingConfig controls the go-logger provider the module builds when the
// caller does not inject one.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string
	// Format is one of console, json, pretty.
	Format string
	// AddSource annotates records with the caller location.
	AddSource bool
}

// NotionConfig carries the remote API settings.
type NotionConfig struct {
	// Token is the integration token used for Bearer authentication.
	Token string
	// BaseURL overrides the API origin; empty means the public endpoint.
	BaseURL string
	// Version overrides the Notion-Version header sent on every request.
	Version string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Config is the root module configuration.
type Config struct {
	Logging LoggingConfig
	Notion  NotionConfig
}

// DefaultConfig returns the configuration used when callers do not override
// anything except the token.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Notion: NotionConfig{
			BaseURL: notion.DefaultBaseURL,
			Version: notion.DefaultVersion,
			Timeout: notion.DefaultTimeout,
		},
	}
}

func (c NotionConfig) clientConfig() notion.Config {
	return notion.Config{
		Token:   c.Token,
		BaseURL: c.BaseURL,
		Version: c.Version,
		Timeout: c.Timeout,
	}
}
