package converter

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// engine is the CommonMark front end. Strikethrough and TaskList are the only
// extensions enabled: tables and footnotes stay unhandled so their source
// degrades to paragraphs like any other unrecognised construct. The engine is
// stateless, so a single instance serves every call without locking.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.TaskList,
	),
)

// Tokenize parses Markdown source and flattens the resulting syntax tree into
// the open/close token stream consumed by Assemble. Node kinds outside the
// supported subset are skipped.
func Tokenize(source []byte) []Token {
	doc := engine.Parser().Parse(text.NewReader(source))

	var tokens []Token
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		appendBlockTokens(&tokens, child, source)
	}
	return tokens
}

func appendBlockTokens(out *[]Token, n ast.Node, source []byte) {
	switch node := n.(type) {
	case *ast.Heading:
		*out = append(*out,
			Token{Kind: TokenHeadingOpen, Level: node.Level},
			Token{Kind: TokenInline, Children: inlineTokens(node, source)},
			Token{Kind: TokenHeadingClose},
		)

	case *ast.Paragraph:
		appendParagraphTokens(out, node, source)

	case *ast.TextBlock:
		// Tight list items carry their content in a text block; it plays the
		// same role as a paragraph in the token stream.
		appendParagraphTokens(out, node, source)

	case *ast.List:
		open, closing := TokenBulletListOpen, TokenBulletListClose
		if node.IsOrdered() {
			open, closing = TokenOrderedListOpen, TokenOrderedListClose
		}
		*out = append(*out, Token{Kind: open})
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			appendBlockTokens(out, item, source)
		}
		*out = append(*out, Token{Kind: closing})

	case *ast.ListItem:
		task, checked := taskState(node)
		*out = append(*out, Token{Kind: TokenListItemOpen, Task: task, Checked: checked})
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			appendBlockTokens(out, child, source)
		}
		*out = append(*out, Token{Kind: TokenListItemClose})

	case *ast.Blockquote:
		*out = append(*out, Token{Kind: TokenBlockquoteOpen})
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			appendBlockTokens(out, child, source)
		}
		*out = append(*out, Token{Kind: TokenBlockquoteClose})

	case *ast.FencedCodeBlock:
		*out = append(*out, Token{
			Kind:    TokenFence,
			Info:    fenceInfo(node, source),
			Content: blockLines(node, source),
		})

	case *ast.CodeBlock:
		*out = append(*out, Token{
			Kind:    TokenCodeBlock,
			Content: blockLines(node, source),
		})

	case *ast.ThematicBreak:
		*out = append(*out, Token{Kind: TokenRule})
	}
}

func appendParagraphTokens(out *[]Token, n ast.Node, source []byte) {
	*out = append(*out,
		Token{Kind: TokenParagraphOpen},
		Token{Kind: TokenInline, Children: inlineTokens(n, source)},
		Token{Kind: TokenParagraphClose},
	)
}

// taskState reports whether a list item starts with a task checkbox and, if
// so, its checked state. The checkbox node itself never reaches the inline
// stream.
func taskState(item *ast.ListItem) (task bool, checked bool) {
	first := item.FirstChild()
	if first == nil {
		return false, false
	}
	if box, ok := first.FirstChild().(*east.TaskCheckBox); ok {
		return true, box.IsChecked
	}
	return false, false
}

func inlineTokens(parent ast.Node, source []byte) []InlineToken {
	var tokens []InlineToken
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		appendInlineTokens(&tokens, child, source)
	}
	return tokens
}

func appendInlineTokens(out *[]InlineToken, n ast.Node, source []byte) {
	switch node := n.(type) {
	case *ast.Text:
		if content := string(node.Segment.Value(source)); content != "" {
			*out = append(*out, InlineToken{Kind: InlineText, Content: content})
		}
		if node.HardLineBreak() {
			*out = append(*out, InlineToken{Kind: InlineHardBreak})
		} else if node.SoftLineBreak() {
			*out = append(*out, InlineToken{Kind: InlineSoftBreak})
		}

	case *ast.String:
		if len(node.Value) > 0 {
			*out = append(*out, InlineToken{Kind: InlineText, Content: string(node.Value)})
		}

	case *ast.CodeSpan:
		*out = append(*out, InlineToken{Kind: InlineCodeSpan, Content: nodeText(node, source)})

	case *ast.Emphasis:
		open, closing := InlineEmOpen, InlineEmClose
		if node.Level == 2 {
			open, closing = InlineStrongOpen, InlineStrongClose
		}
		*out = append(*out, InlineToken{Kind: open})
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			appendInlineTokens(out, child, source)
		}
		*out = append(*out, InlineToken{Kind: closing})

	case *east.Strikethrough:
		*out = append(*out, InlineToken{Kind: InlineStrikeOpen})
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			appendInlineTokens(out, child, source)
		}
		*out = append(*out, InlineToken{Kind: InlineStrikeClose})

	case *ast.Link:
		*out = append(*out, InlineToken{Kind: InlineLinkOpen, Href: string(node.Destination)})
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			appendInlineTokens(out, child, source)
		}
		*out = append(*out, InlineToken{Kind: InlineLinkClose})

	case *ast.AutoLink:
		url := string(node.URL(source))
		if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		*out = append(*out,
			InlineToken{Kind: InlineLinkOpen, Href: url},
			InlineToken{Kind: InlineText, Content: string(node.Label(source))},
			InlineToken{Kind: InlineLinkClose},
		)
	}
}

// fenceInfo returns the complete fence info line, not just its first word,
// so labels like "python title" survive a round trip.
func fenceInfo(node *ast.FencedCodeBlock, source []byte) string {
	if node.Info == nil {
		return ""
	}
	return strings.TrimSpace(string(node.Info.Segment.Value(source)))
}

// nodeText concatenates the raw text segments directly under a node. Used for
// code spans, whose children are plain text nodes.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func blockLines(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	return sb.String()
}
