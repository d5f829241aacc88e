package converter

import (
	"strings"

	"github.com/goliatone/go-marknotion/blocks"
)

// RenderRuns renders an ordered sequence of annotated runs as inline Markdown
// syntax. Rendered runs are concatenated with no separator; adjacency is
// significant.
func RenderRuns(runs []blocks.Run) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(renderRun(run))
	}
	return sb.String()
}

// renderRun wraps a run's text in canonical order, innermost first: code,
// bold, italic, strikethrough, then the link around everything. Round trips
// therefore re-serialize annotations in this order regardless of how the
// source nested them.
func renderRun(run blocks.Run) string {
	text := run.Text

	if run.Annotations.Code {
		text = "`" + text + "`"
	}
	if run.Annotations.Bold {
		text = "**" + text + "**"
	}
	if run.Annotations.Italic {
		text = "*" + text + "*"
	}
	if run.Annotations.Strikethrough {
		text = "~~" + text + "~~"
	}
	if run.Link != "" {
		text = "[" + text + "](" + run.Link + ")"
	}

	return text
}
