package notion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var trailingHexPattern = regexp.MustCompile(`(?i)([a-f0-9]{32})$`)

// NormalizePageID canonicalizes a page reference into the dashed lowercase
// UUID form the API expects. Accepted inputs: a full page URL, a UUID with
// dashes, or the compact 32-hex form.
func NormalizePageID(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("notion: empty page id")
	}

	if strings.HasPrefix(value, "http") {
		path := value
		if idx := strings.IndexAny(path, "?#"); idx >= 0 {
			path = path[:idx]
		}
		match := trailingHexPattern.FindString(path)
		if match == "" {
			return "", fmt.Errorf("notion: no page id found in url %q", value)
		}
		value = match
	}

	id, err := uuid.Parse(strings.ToLower(strings.ReplaceAll(value, "-", "")))
	if err != nil {
		return "", fmt.Errorf("notion: invalid page id %q: %w", value, err)
	}
	return id.String(), nil
}

// PageURL renders the public URL for a page id.
func PageURL(pageID string) string {
	return "https://notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
