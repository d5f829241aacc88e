package interfaces

import (
	"context"

	"github.com/goliatone/go-marknotion/blocks"
)

// NotionAPI is the remote document store contract consumed by the sync
// layer. The converter core never performs these calls itself; it only
// produces and consumes block sequences.
type NotionAPI interface {
	// FetchChildren returns the direct child blocks of the given block or
	// page id, following pagination until exhausted.
	FetchChildren(ctx context.Context, blockID string) ([]blocks.Block, error)

	// WriteContent replaces the content of the target page with the supplied
	// block sequence.
	WriteContent(ctx context.Context, targetID string, list []blocks.Block) error

	// CreateChild creates a new child page under the given parent with the
	// supplied title and content.
	CreateChild(ctx context.Context, parentID string, title string, list []blocks.Block) (*Page, error)

	// Search returns pages whose titles match the query.
	Search(ctx context.Context, query string) ([]Page, error)
}

// Page describes a remote page surfaced by search or create operations.
type Page struct {
	ID    string
	Title string
	URL   string
}
