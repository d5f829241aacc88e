package converter

// TokenKind enumerates the block-level token patterns the assembler
// recognises. The stream mirrors the open/close pair layout of a CommonMark
// tokenizer: containers emit open/close pairs, leaf constructs (fences,
// rules) emit a single token, and textual content arrives as an inline token
// carrying resolved inline children.
type TokenKind int

const (
	TokenHeadingOpen TokenKind = iota
	TokenHeadingClose
	TokenParagraphOpen
	TokenParagraphClose
	TokenInline
	TokenBulletListOpen
	TokenBulletListClose
	TokenOrderedListOpen
	TokenOrderedListClose
	TokenListItemOpen
	TokenListItemClose
	TokenBlockquoteOpen
	TokenBlockquoteClose
	TokenFence
	TokenCodeBlock
	TokenRule
)

// Token is one unit of the flattened block token stream. Tokens are immutable
// inputs; the assembler only advances a cursor over them.
type Token struct {
	Kind TokenKind

	// Level carries the heading level for TokenHeadingOpen.
	Level int
	// Info carries the fence info label for TokenFence ("" when absent).
	Info string
	// Content carries the raw body of TokenFence and TokenCodeBlock.
	Content string
	// Children carries the inline tokens of a TokenInline.
	Children []InlineToken
	// Task marks a TokenListItemOpen whose item starts with a task checkbox;
	// Checked records the checkbox state.
	Task    bool
	Checked bool
}

// InlineKind enumerates the inline token types consumed by the run resolver.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineCodeSpan
	InlineStrongOpen
	InlineStrongClose
	InlineEmOpen
	InlineEmClose
	InlineStrikeOpen
	InlineStrikeClose
	InlineLinkOpen
	InlineLinkClose
	InlineSoftBreak
	InlineHardBreak
)

// InlineToken is one unit of an inline child stream. Text and code-span
// tokens carry Content; link-open tokens carry Href.
type InlineToken struct {
	Kind    InlineKind
	Content string
	Href    string
}
