package converter

import (
	"strings"

	"github.com/goliatone/go-marknotion/blocks"
)

// Assemble groups a block token stream into a flat sequence of blocks. The
// stream is processed left to right with an explicit cursor; each recognised
// pattern consumes a fixed offset or a bracketed region, and anything else
// advances the cursor by one. The tokenizer guarantees balanced open/close
// pairs, so out-of-range indexing here is a programming error, not input
// validation.
func Assemble(tokens []Token) []blocks.Block {
	var out []blocks.Block
	i := 0

	for i < len(tokens) {
		token := tokens[i]

		switch token.Kind {
		case TokenHeadingOpen:
			runs := ResolveInline(tokens[i+1].Children)
			out = append(out, blocks.Heading(token.Level, runs))
			i += 3 // heading_open, inline, heading_close

		case TokenParagraphOpen:
			runs := ResolveInline(tokens[i+1].Children)
			out = append(out, blocks.Paragraph(runs))
			i += 3 // paragraph_open, inline, paragraph_close

		case TokenBulletListOpen:
			items, consumed := parseList(tokens[i:], blocks.KindBulletedListItem)
			out = append(out, items...)
			i += consumed

		case TokenOrderedListOpen:
			items, consumed := parseList(tokens[i:], blocks.KindNumberedListItem)
			out = append(out, items...)
			i += consumed

		case TokenFence:
			out = append(out, blocks.Code(strings.TrimRight(token.Content, "\n"), token.Info))
			i++

		case TokenCodeBlock:
			out = append(out, blocks.Code(strings.TrimRight(token.Content, "\n"), ""))
			i++

		case TokenBlockquoteOpen:
			quote, consumed := parseBlockquote(tokens[i:])
			out = append(out, quote...)
			i += consumed

		case TokenRule:
			out = append(out, blocks.Divider())
			i++

		default:
			i++
		}
	}

	return out
}

// parseList consumes a list region starting at the list-open token and
// returns one block per direct (depth-1) item plus the number of tokens
// consumed. A depth counter keeps nested list open/close tokens from
// terminating the outer list; nested list content is recognised but
// discarded, and only the first paragraph of each item becomes that item's
// rich text. Items without direct paragraph content yield no block.
func parseList(tokens []Token, kind blocks.Kind) ([]blocks.Block, int) {
	var out []blocks.Block
	i := 1 // skip the list_open token
	depth := 1

	for i < len(tokens) && depth > 0 {
		token := tokens[i]

		switch {
		case token.Kind == TokenBulletListOpen || token.Kind == TokenOrderedListOpen:
			depth++
			i++

		case token.Kind == TokenBulletListClose || token.Kind == TokenOrderedListClose:
			depth--
			i++

		case token.Kind == TokenListItemOpen && depth == 1:
			item := token
			var content [][]blocks.Run
			i++

			for i < len(tokens) && tokens[i].Kind != TokenListItemClose {
				switch tokens[i].Kind {
				case TokenParagraphOpen:
					content = append(content, ResolveInline(tokens[i+1].Children))
					i += 3

				case TokenBulletListOpen, TokenOrderedListOpen:
					// nested list: walk past the whole region without
					// collecting its content
					nested := 1
					i++
					for i < len(tokens) && nested > 0 {
						switch tokens[i].Kind {
						case TokenBulletListOpen, TokenOrderedListOpen:
							nested++
						case TokenBulletListClose, TokenOrderedListClose:
							nested--
						}
						i++
					}

				default:
					i++
				}
			}

			if len(content) > 0 {
				if item.Task {
					out = append(out, blocks.ToDo(trimTaskPrefix(content[0]), item.Checked))
				} else {
					out = append(out, blocks.ListItem(kind, content[0]))
				}
			}
			i++ // skip list_item_close

		default:
			i++
		}
	}

	return out, i
}

// parseBlockquote consumes a blockquote region and merges every direct
// (depth-1) paragraph's runs into a single quote block. A quote without any
// paragraph content yields no block.
func parseBlockquote(tokens []Token) ([]blocks.Block, int) {
	i := 1 // skip blockquote_open
	depth := 1
	var runs []blocks.Run

	for i < len(tokens) && depth > 0 {
		token := tokens[i]

		switch {
		case token.Kind == TokenBlockquoteOpen:
			depth++
			i++

		case token.Kind == TokenBlockquoteClose:
			depth--
			i++

		case token.Kind == TokenParagraphOpen && depth == 1:
			runs = append(runs, ResolveInline(tokens[i+1].Children)...)
			i += 3

		default:
			i++
		}
	}

	if len(runs) == 0 {
		return nil, i
	}
	return []blocks.Block{blocks.Quote(runs)}, i
}

// trimTaskPrefix removes the single space the tokenizer leaves between a task
// checkbox and the item text. The first run is dropped entirely if nothing
// remains.
func trimTaskPrefix(runs []blocks.Run) []blocks.Run {
	if len(runs) == 0 {
		return runs
	}

	out := append([]blocks.Run(nil), runs...)
	out[0].Text = strings.TrimPrefix(out[0].Text, " ")
	if out[0].Text == "" {
		out = out[1:]
	}
	return out
}
