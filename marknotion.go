// Package marknotion converts Markdown documents to Notion-style block trees
// and back, and syncs them against the Notion REST API.
package marknotion

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-marknotion/blocks"
	"github.com/goliatone/go-marknotion/internal/converter"
	"github.com/goliatone/go-marknotion/internal/logging"
	"github.com/goliatone/go-marknotion/internal/logging/gologger"
	"github.com/goliatone/go-marknotion/internal/notion"
	"github.com/goliatone/go-marknotion/internal/pagesync"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

// SyncService exports the page sync service for consumers of the module.
type SyncService = pagesync.Service

// PushOptions exports the sync push options.
type PushOptions = pagesync.PushOptions

// PushResult exports the sync push result.
type PushResult = pagesync.PushResult

// ExportResult exports the sync export result.
type ExportResult = pagesync.ExportResult

// Page exports the remote page descriptor.
type Page = interfaces.Page

// Module wires the converter, the Notion client, and the sync service behind
// one constructor.
type Module struct {
	cfg        Config
	provider   interfaces.LoggerProvider
	logger     interfaces.Logger
	httpClient *http.Client
	client     *notion.Client
	sync       *pagesync.Service
}

// Option adjusts module construction.
type Option func(*Module) error

// WithLoggerProvider injects a logger provider instead of the go-logger
// provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) error {
		if provider != nil {
			m.provider = provider
		}
		return nil
	}
}

// WithHTTPClient injects the HTTP client used for API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Module) error {
		if client == nil {
			return fmt.Errorf("marknotion: http client cannot be nil")
		}
		m.httpClient = client
		return nil
	}
}

// New builds a module from the supplied configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	m := &Module{cfg: cfg}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, fmt.Errorf("marknotion: build logger provider: %w", err)
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "")

	clientOpts := []notion.Option{
		notion.WithLogger(logging.NotionLogger(m.provider)),
	}
	if m.httpClient != nil {
		clientOpts = append(clientOpts, notion.WithHTTPClient(m.httpClient))
	}

	client, err := notion.NewClient(cfg.Notion.clientConfig(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("marknotion: build notion client: %w", err)
	}
	m.client = client
	m.sync = pagesync.NewService(client, logging.SyncLogger(m.provider))

	return m, nil
}

// Sync returns the page sync service.
func (m *Module) Sync() *SyncService { return m.sync }

// Notion returns the API client behind its interface.
func (m *Module) Notion() interfaces.NotionAPI { return m.client }

// Logger returns the module root logger.
func (m *Module) Logger() interfaces.Logger { return m.logger }

// LoggerProvider returns the provider used for namespaced loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider { return m.provider }

// MarkdownToBlocks converts CommonMark source into a block sequence. The
// conversion is total: unsupported constructs degrade rather than fail.
func MarkdownToBlocks(source string) []blocks.Block {
	return converter.MarkdownToBlocks(source)
}

// BlocksToMarkdown serializes a block sequence back to Markdown.
func BlocksToMarkdown(list []blocks.Block) string {
	return converter.BlocksToMarkdown(list)
}
