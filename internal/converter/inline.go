package converter

import "github.com/goliatone/go-marknotion/blocks"

// inlineState carries the formatting context threaded through a single
// forward pass over inline tokens. Annotations is a value struct, so every
// emitted run receives an independent snapshot; runs never alias shared
// state.
type inlineState struct {
	annotations blocks.Annotations
	link        string
}

// ResolveInline walks inline children left to right and emits one annotated
// run per text span. Formatting open/close tokens toggle the current
// annotation set, link-open sets the active link target and link-close clears
// it (links do not nest). Code spans always emit a run with only the code
// annotation, overriding any surrounding emphasis or link state. Soft and
// hard breaks emit a bare "\n" run. Empty text tokens emit nothing.
//
// The resolver trusts the tokenizer to deliver balanced open/close tokens; it
// neither detects nor reports imbalance.
func ResolveInline(children []InlineToken) []blocks.Run {
	var runs []blocks.Run
	state := inlineState{}

	for _, token := range children {
		switch token.Kind {
		case InlineText:
			if token.Content == "" {
				continue
			}
			runs = append(runs, blocks.Run{
				Text:        token.Content,
				Annotations: state.annotations,
				Link:        state.link,
			})

		case InlineCodeSpan:
			runs = append(runs, blocks.Run{
				Text:        token.Content,
				Annotations: blocks.Annotations{Code: true},
			})

		case InlineStrongOpen:
			state.annotations.Bold = true
		case InlineStrongClose:
			state.annotations.Bold = false

		case InlineEmOpen:
			state.annotations.Italic = true
		case InlineEmClose:
			state.annotations.Italic = false

		case InlineStrikeOpen:
			state.annotations.Strikethrough = true
		case InlineStrikeClose:
			state.annotations.Strikethrough = false

		case InlineLinkOpen:
			state.link = token.Href
		case InlineLinkClose:
			state.link = ""

		case InlineSoftBreak, InlineHardBreak:
			runs = append(runs, blocks.LineBreak())
		}
	}

	return runs
}
