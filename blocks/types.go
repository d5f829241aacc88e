package blocks

// Kind identifies the structural variant of a block. The values match the
// Notion API block type discriminators so the wire codec can use them
// directly.
type Kind string

const (
	KindParagraph        Kind = "paragraph"
	KindHeading1         Kind = "heading_1"
	KindHeading2         Kind = "heading_2"
	KindHeading3         Kind = "heading_3"
	KindBulletedListItem Kind = "bulleted_list_item"
	KindNumberedListItem Kind = "numbered_list_item"
	KindCode             Kind = "code"
	KindQuote            Kind = "quote"
	KindDivider          Kind = "divider"
	KindToDo             Kind = "to_do"
)

// PlainTextLanguage is the sentinel code-block language recorded when a fence
// carries no info string. It serializes back to an empty info string.
const PlainTextLanguage = "plain text"

// Annotations captures the formatting attributes shared by every character of
// a run. The zero value means unformatted text.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Code          bool
}

// IsZero reports whether no annotation is set. Zero annotation sets are
// omitted entirely from the wire representation.
func (a Annotations) IsZero() bool {
	return !a.Bold && !a.Italic && !a.Strikethrough && !a.Code
}

// Run is an atomic annotated text span. A run's annotation set and link apply
// to its whole text; adjacent characters with different formatting belong to
// different runs. Runs never embed newlines except the dedicated line-break
// run, whose text is "\n" with no annotations and no link.
type Run struct {
	Text        string
	Annotations Annotations
	Link        string
}

// LineBreak returns the run representing a soft or hard line break.
func LineBreak() Run {
	return Run{Text: "\n"}
}

// Block is one structural unit of a document. Every kind except KindDivider
// carries RichText; KindCode additionally carries Language and KindToDo
// carries Checked. Blocks are immutable once constructed: conversions build a
// complete new sequence on every call.
//
// ID, HasChildren and Children are populated only when a block was decoded
// from the remote store; the converter never reads them, and nested children
// are not represented in serialized Markdown (lists flatten to depth-1 items).
type Block struct {
	ID          string
	Kind        Kind
	RichText    []Run
	Language    string
	Checked     bool
	HasChildren bool
	Children    []Block
}

// Paragraph builds a paragraph block from the supplied runs.
func Paragraph(runs []Run) Block {
	return Block{Kind: KindParagraph, RichText: runs}
}

// Heading builds a heading block, clamping levels above 3 to heading_3.
func Heading(level int, runs []Run) Block {
	kind := KindHeading1
	switch {
	case level == 2:
		kind = KindHeading2
	case level >= 3:
		kind = KindHeading3
	}
	return Block{Kind: kind, RichText: runs}
}

// ListItem builds a bulleted or numbered list item block.
func ListItem(kind Kind, runs []Run) Block {
	return Block{Kind: kind, RichText: runs}
}

// Code builds a code block. An empty language is recorded as the
// PlainTextLanguage sentinel; empty content yields no runs, keeping run text
// non-empty across the model.
func Code(content string, language string) Block {
	if language == "" {
		language = PlainTextLanguage
	}
	block := Block{Kind: KindCode, Language: language}
	if content != "" {
		block.RichText = []Run{{Text: content}}
	}
	return block
}

// Quote builds a quote block from the supplied runs.
func Quote(runs []Run) Block {
	return Block{Kind: KindQuote, RichText: runs}
}

// Divider builds a divider block.
func Divider() Block {
	return Block{Kind: KindDivider}
}

// ToDo builds a to-do block.
func ToDo(runs []Run, checked bool) Block {
	return Block{Kind: KindToDo, RichText: runs, Checked: checked}
}

// IsListItem reports whether the kind belongs to the list item class used by
// the Markdown serializer's continuation rule: consecutive bulleted or
// numbered items are joined with a single newline instead of a blank line.
func (k Kind) IsListItem() bool {
	return k == KindBulletedListItem || k == KindNumberedListItem
}
