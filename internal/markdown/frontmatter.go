package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-marknotion/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. The body is returned without delimiters; sources without
// front matter pass through unchanged.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}

	return interfaces.FrontMatter{
		Title:  meta.Title,
		Tags:   append([]string(nil), meta.Tags...),
		Draft:  meta.Draft,
		Custom: meta.Custom,
	}, body, nil
}

type frontMatterEnvelope struct {
	Title  string         `yaml:"title"`
	Tags   []string       `yaml:"tags"`
	Draft  bool           `yaml:"draft"`
	Custom map[string]any `yaml:",inline"`
}
