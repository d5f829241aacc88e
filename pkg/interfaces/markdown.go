package interfaces

import "time"

// Document represents a loaded Markdown file: parsed front matter plus the
// body with delimiters stripped.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
}

// FrontMatter models the metadata extracted from a Markdown file. Fields the
// sync layer does not recognise are preserved in Custom.
type FrontMatter struct {
	Title  string         `yaml:"title" json:"title"`
	Tags   []string       `yaml:"tags" json:"tags"`
	Draft  bool           `yaml:"draft" json:"draft"`
	Custom map[string]any `yaml:",inline" json:"custom"`
}
