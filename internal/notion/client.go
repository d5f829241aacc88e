// Package notion implements the remote document store client. The converter
// core never talks to it; the sync layer feeds converter output into these
// operations and hydrates converter input from them.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-marknotion/blocks"
	"github.com/goliatone/go-marknotion/internal/logging"
	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

// appendChunkSize is the API limit on blocks per append request.
const appendChunkSize = 100

// Client is a thin JSON client for the v1 HTTP API. It satisfies
// interfaces.NotionAPI and holds no mutable state beyond its configuration.
type Client struct {
	cfg    Config
	http   *http.Client
	logger interfaces.Logger
}

var _ interfaces.NotionAPI = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Useful for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient validates the configuration and constructs a client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("notion: invalid config: %w", err)
	}
	cfg = cfg.withDefaults()

	client := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// APIError describes a non-2xx response from the remote API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion: api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("notion: api error %d: %s", e.Status, e.Message)
}

type childrenPage struct {
	Results    []blocks.Block `json:"results"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor"`
}

// FetchChildren lists the direct children of a block or page id, following
// cursor pagination until the listing is exhausted.
func (c *Client) FetchChildren(ctx context.Context, blockID string) ([]blocks.Block, error) {
	var out []blocks.Block
	cursor := ""

	for {
		query := url.Values{"page_size": {"100"}}
		if cursor != "" {
			query.Set("start_cursor", cursor)
		}

		var page childrenPage
		if err := c.do(ctx, http.MethodGet, "/v1/blocks/"+blockID+"/children", query, nil, &page); err != nil {
			return nil, fmt.Errorf("fetch children of %s: %w", blockID, err)
		}

		out = append(out, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return out, nil
		}
		cursor = page.NextCursor
	}
}

// WriteContent replaces the content of the target page: existing children are
// archived first, then the replacement blocks are appended in API-sized
// chunks.
func (c *Client) WriteContent(ctx context.Context, targetID string, list []blocks.Block) error {
	existing, err := c.FetchChildren(ctx, targetID)
	if err != nil {
		return err
	}

	for _, block := range existing {
		if block.ID == "" {
			continue
		}
		if err := c.do(ctx, http.MethodDelete, "/v1/blocks/"+block.ID, nil, nil, nil); err != nil {
			return fmt.Errorf("archive block %s: %w", block.ID, err)
		}
	}

	if err := c.appendChildren(ctx, targetID, list); err != nil {
		return err
	}

	logging.WithFields(c.logger, map[string]any{
		"page_id": targetID,
		"removed": len(existing),
		"written": len(list),
	}).Info("notion.write_content.completed")
	return nil
}

type createPageRequest struct {
	Parent     pageParent     `json:"parent"`
	Properties pageProperties `json:"properties"`
	Children   []blocks.Block `json:"children,omitempty"`
}

type pageParent struct {
	PageID string `json:"page_id"`
}

type pageProperties struct {
	Title titleValue `json:"title"`
}

type titleValue struct {
	Title []blocks.Run `json:"title"`
}

type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateChild creates a new page under the given parent. Content beyond the
// first chunk is appended to the created page in follow-up requests.
func (c *Client) CreateChild(ctx context.Context, parentID string, title string, list []blocks.Block) (*interfaces.Page, error) {
	first := list
	var rest []blocks.Block
	if len(list) > appendChunkSize {
		first, rest = list[:appendChunkSize], list[appendChunkSize:]
	}

	req := createPageRequest{
		Parent: pageParent{PageID: parentID},
		Properties: pageProperties{
			Title: titleValue{Title: []blocks.Run{{Text: title}}},
		},
		Children: first,
	}

	var created pageResponse
	if err := c.do(ctx, http.MethodPost, "/v1/pages", nil, req, &created); err != nil {
		return nil, fmt.Errorf("create child page under %s: %w", parentID, err)
	}

	if err := c.appendChildren(ctx, created.ID, rest); err != nil {
		return nil, err
	}

	page := &interfaces.Page{ID: created.ID, Title: title, URL: created.URL}
	if page.URL == "" {
		page.URL = PageURL(created.ID)
	}
	return page, nil
}

type searchRequest struct {
	Query  string       `json:"query"`
	Filter searchFilter `json:"filter"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url"`
	Properties map[string]titleProperty `json:"properties"`
}

type titleProperty struct {
	Type  string       `json:"type"`
	Title []blocks.Run `json:"title"`
}

// Search returns pages whose titles match the query.
func (c *Client) Search(ctx context.Context, query string) ([]interfaces.Page, error) {
	req := searchRequest{
		Query:  query,
		Filter: searchFilter{Value: "page", Property: "object"},
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/v1/search", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("search pages: %w", err)
	}

	pages := make([]interfaces.Page, 0, len(resp.Results))
	for _, result := range resp.Results {
		page := interfaces.Page{ID: result.ID, URL: result.URL}
		for _, prop := range result.Properties {
			if prop.Type == "title" {
				var sb strings.Builder
				for _, run := range prop.Title {
					sb.WriteString(run.Text)
				}
				page.Title = sb.String()
				break
			}
		}
		pages = append(pages, page)
	}
	return pages, nil
}

type appendChildrenRequest struct {
	Children []blocks.Block `json:"children"`
}

func (c *Client) appendChildren(ctx context.Context, targetID string, list []blocks.Block) error {
	for start := 0; start < len(list); start += appendChunkSize {
		end := start + appendChunkSize
		if end > len(list) {
			end = len(list)
		}

		req := appendChildrenRequest{Children: list[start:end]}
		if err := c.do(ctx, http.MethodPatch, "/v1/blocks/"+targetID+"/children", nil, req, nil); err != nil {
			return fmt.Errorf("append children to %s: %w", targetID, err)
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", c.cfg.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("notion.request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = "unreadable error body"
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
