package converter

import (
	"strings"

	"github.com/goliatone/go-marknotion/blocks"
)

// Serialize renders a block sequence as Markdown text. Fragments are joined
// with one blank line, except consecutive list items of any kind, which are
// joined with a single newline. Blocks rendering to an empty fragment are
// skipped entirely and do not affect the joining rule: the previous-kind
// accumulator advances only on non-empty fragments.
func Serialize(list []blocks.Block) string {
	var lines []string
	prev := blocks.Kind("")

	for _, block := range list {
		fragment := renderBlock(block)
		if fragment == "" {
			continue
		}

		if prev != "" && !(prev.IsListItem() && block.Kind.IsListItem()) {
			lines = append(lines, "")
		}

		lines = append(lines, fragment)
		prev = block.Kind
	}

	return strings.Join(lines, "\n")
}

// renderBlock renders one block as a possibly multi-line Markdown fragment.
// Unknown kinds render empty and are skipped by Serialize.
func renderBlock(block blocks.Block) string {
	text := RenderRuns(block.RichText)

	switch block.Kind {
	case blocks.KindParagraph:
		return text

	case blocks.KindHeading1:
		return "# " + text
	case blocks.KindHeading2:
		return "## " + text
	case blocks.KindHeading3:
		return "### " + text

	case blocks.KindBulletedListItem:
		return "- " + text

	case blocks.KindNumberedListItem:
		// The ordinal is always rendered as "1."; CommonMark renumbers the
		// list regardless of the literal values.
		return "1. " + text

	case blocks.KindCode:
		language := block.Language
		if language == blocks.PlainTextLanguage {
			language = ""
		}
		return "```" + language + "\n" + text + "\n```"

	case blocks.KindQuote:
		if text == "" {
			return ""
		}
		quoted := strings.Split(text, "\n")
		for i, line := range quoted {
			quoted[i] = "> " + line
		}
		return strings.Join(quoted, "\n")

	case blocks.KindDivider:
		return "---"

	case blocks.KindToDo:
		box := "[ ]"
		if block.Checked {
			box = "[x]"
		}
		return "- " + box + " " + text
	}

	return ""
}
