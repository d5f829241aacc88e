// Package converter implements the bidirectional Markdown ⇄ block-tree
// conversion. One pipeline tokenizes Markdown and assembles the stream into
// blocks with annotated rich-text runs; the inverse pipeline serializes
// blocks back into Markdown. The two directions share only the block model:
// every call builds a complete new sequence with no state carried across
// calls and no I/O.
package converter

import "github.com/goliatone/go-marknotion/blocks"

// MarkdownToBlocks converts Markdown text into a flat block sequence. It is
// total over any input; empty input yields an empty sequence. Unrecognised
// constructs are skipped rather than reported.
func MarkdownToBlocks(markdown string) []blocks.Block {
	return Assemble(Tokenize([]byte(markdown)))
}

// BlocksToMarkdown converts a block sequence into Markdown text. It is total
// over any input; an empty sequence yields an empty string.
func BlocksToMarkdown(list []blocks.Block) string {
	return Serialize(list)
}
