package converter

import (
	"testing"

	"github.com/goliatone/go-marknotion/blocks"
)

func runs(value string) []blocks.Run {
	return []blocks.Run{{Text: value}}
}

func TestSerializeHeadings(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.Heading(1, runs("One")),
		blocks.Heading(2, runs("Two")),
		blocks.Heading(3, runs("Three")),
	})

	want := "# One\n\n## Two\n\n### Three"
	if got != want {
		t.Fatalf("serialize mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeListContinuation(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.ListItem(blocks.KindBulletedListItem, runs("one")),
		blocks.ListItem(blocks.KindBulletedListItem, runs("two")),
		blocks.Paragraph(runs("after")),
	})

	want := "- one\n- two\n\nafter"
	if got != want {
		t.Fatalf("list joining mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeMixedListKindsStillContinue(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.ListItem(blocks.KindBulletedListItem, runs("bullet")),
		blocks.ListItem(blocks.KindNumberedListItem, runs("number")),
	})

	want := "- bullet\n1. number"
	if got != want {
		t.Fatalf("mixed list joining mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeNumberedOrdinalsAreLiteral(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.ListItem(blocks.KindNumberedListItem, runs("first")),
		blocks.ListItem(blocks.KindNumberedListItem, runs("second")),
		blocks.ListItem(blocks.KindNumberedListItem, runs("third")),
	})

	want := "1. first\n1. second\n1. third"
	if got != want {
		t.Fatalf("every ordinal must render as 1.:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeCode(t *testing.T) {
	got := Serialize([]blocks.Block{blocks.Code("print('hi')", "python")})
	want := "```python\nprint('hi')\n```"
	if got != want {
		t.Fatalf("code fence mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeCodePlainTextLanguageOmitted(t *testing.T) {
	got := Serialize([]blocks.Block{blocks.Code("plain", "")})
	want := "```\nplain\n```"
	if got != want {
		t.Fatalf("plain text label must serialize as empty info:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeQuotePrefixesEveryLine(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.Quote([]blocks.Run{{Text: "first"}, blocks.LineBreak(), {Text: "second"}}),
	})

	want := "> first\n> second"
	if got != want {
		t.Fatalf("quote prefix mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeDivider(t *testing.T) {
	if got := Serialize([]blocks.Block{blocks.Divider()}); got != "---" {
		t.Fatalf("divider mismatch: %q", got)
	}
}

func TestSerializeToDo(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.ToDo(runs("done"), true),
		blocks.ToDo(runs("pending"), false),
	})

	want := "- [x] done\n\n- [ ] pending"
	if got != want {
		t.Fatalf("to_do mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeSkipsEmptyBlocks(t *testing.T) {
	got := Serialize([]blocks.Block{
		blocks.Paragraph(runs("before")),
		blocks.Paragraph(nil),
		blocks.Quote(nil),
		blocks.Paragraph(runs("after")),
	})

	want := "before\n\nafter"
	if got != want {
		t.Fatalf("empty blocks must not affect joining:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeEmptySequence(t *testing.T) {
	if got := Serialize(nil); got != "" {
		t.Fatalf("empty sequence must yield empty string, got %q", got)
	}
}

func TestRenderRunsCanonicalOrder(t *testing.T) {
	got := RenderRuns([]blocks.Run{{
		Text: "x",
		Annotations: blocks.Annotations{
			Bold:          true,
			Italic:        true,
			Strikethrough: true,
			Code:          true,
		},
		Link: "https://example.com",
	}})

	want := "[~~***`x`***~~](https://example.com)"
	if got != want {
		t.Fatalf("canonical wrap order mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderRunsAdjacency(t *testing.T) {
	got := RenderRuns([]blocks.Run{
		{Text: "a "},
		{Text: "b", Annotations: blocks.Annotations{Bold: true}},
		{Text: " c"},
	})

	if got != "a **b** c" {
		t.Fatalf("runs must concatenate without separators: %q", got)
	}
}
