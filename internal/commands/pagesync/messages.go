package pagesynccmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	pushFileMessageType    = "marknotion.pagesync.push_file"
	exportPageMessageType  = "marknotion.pagesync.export_page"
	searchPagesMessageType = "marknotion.pagesync.search_pages"
)

// PushFileCommand pushes one Markdown file to the remote store, either
// updating an existing page (PageID) or creating a child page (ParentID).
type PushFileCommand struct {
	// FilePath selects the Markdown file to convert and push.
	FilePath string `json:"file_path"`
	// PageID targets an existing page whose content is replaced.
	PageID string `json:"page_id,omitempty"`
	// ParentID targets a parent page under which a child page is created.
	ParentID string `json:"parent_id,omitempty"`
	// Title overrides the resolved document title for created pages.
	Title string `json:"title,omitempty"`
	// DryRun previews the conversion without performing remote writes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (PushFileCommand) Type() string { return pushFileMessageType }

// Validate ensures the file path and exactly one push target are present.
func (cmd PushFileCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.FilePath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("marknotion.pagesync.push_file.file_required", "file path is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}

	hasPage := strings.TrimSpace(cmd.PageID) != ""
	hasParent := strings.TrimSpace(cmd.ParentID) != ""
	if !hasPage && !hasParent {
		return validation.NewError("marknotion.pagesync.push_file.target_required", "a page or parent target is required")
	}
	if hasPage && hasParent {
		return validation.NewError("marknotion.pagesync.push_file.target_conflict", "page and parent targets are mutually exclusive")
	}
	return nil
}

// ExportPageCommand exports one remote page as Markdown. When OutputPath is
// empty the handler writes to its configured output stream.
type ExportPageCommand struct {
	// PageID selects the page to export.
	PageID string `json:"page_id"`
	// OutputPath names the destination file; empty means the output stream.
	OutputPath string `json:"output_path,omitempty"`
}

// Type implements command.Message.
func (ExportPageCommand) Type() string { return exportPageMessageType }

// Validate ensures a page id is present before handlers execute.
func (cmd ExportPageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.PageID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("marknotion.pagesync.export_page.page_required", "page id is required")
			}
			return nil
		})),
	)
}

// SearchPagesCommand lists remote pages whose titles match a query.
type SearchPagesCommand struct {
	// Query is the title search term.
	Query string `json:"query"`
	// Limit caps the number of results rendered; non-positive means all.
	Limit int `json:"limit,omitempty"`
}

// Type implements command.Message.
func (SearchPagesCommand) Type() string { return searchPagesMessageType }

// Validate ensures a query is present before handlers execute.
func (cmd SearchPagesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Query, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("marknotion.pagesync.search_pages.query_required", "query is required")
			}
			return nil
		})),
	)
}
