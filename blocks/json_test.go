package blocks

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRunMarshalPlainText(t *testing.T) {
	data, err := json.Marshal(Run{Text: "hello"})
	if err != nil {
		t.Fatalf("marshal run: %v", err)
	}

	got := string(data)
	if want := `"plain_text":"hello"`; !strings.Contains(got, want) {
		t.Fatalf("expected %s in %s", want, got)
	}
	if want := `"href":null`; !strings.Contains(got, want) {
		t.Fatalf("expected null href in %s", got)
	}
	if strings.Contains(got, "annotations") {
		t.Fatalf("expected annotations omitted for plain run, got %s", got)
	}
}

func TestRunMarshalLinkAndAnnotations(t *testing.T) {
	run := Run{
		Text:        "docs",
		Link:        "https://example.com",
		Annotations: Annotations{Bold: true, Code: true},
	}
	data, err := json.Marshal(run)
	if err != nil {
		t.Fatalf("marshal run: %v", err)
	}

	got := string(data)
	for _, want := range []string{
		`"href":"https://example.com"`,
		`"link":{"url":"https://example.com"}`,
		`"bold":true`,
		`"code":true`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
	if strings.Contains(got, "italic") {
		t.Fatalf("expected false annotation fields omitted, got %s", got)
	}
}

func TestRunUnmarshalPrefersPlainText(t *testing.T) {
	payload := `{
		"type": "text",
		"text": {"content": "raw content"},
		"plain_text": "rendered",
		"href": "https://example.com",
		"annotations": {"italic": true, "color": "default"}
	}`

	var run Run
	if err := json.Unmarshal([]byte(payload), &run); err != nil {
		t.Fatalf("unmarshal run: %v", err)
	}
	if run.Text != "rendered" {
		t.Fatalf("expected plain_text preferred, got %q", run.Text)
	}
	if run.Link != "https://example.com" {
		t.Fatalf("expected link, got %q", run.Link)
	}
	if !run.Annotations.Italic || run.Annotations.Bold {
		t.Fatalf("unexpected annotations %+v", run.Annotations)
	}
}

func TestBlockMarshalTaggedPayload(t *testing.T) {
	data, err := json.Marshal(Heading(2, []Run{{Text: "Title"}}))
	if err != nil {
		t.Fatalf("marshal block: %v", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if string(envelope["object"]) != `"block"` {
		t.Fatalf("expected block object, got %s", envelope["object"])
	}
	if string(envelope["type"]) != `"heading_2"` {
		t.Fatalf("expected heading_2 type, got %s", envelope["type"])
	}
	if _, ok := envelope["heading_2"]; !ok {
		t.Fatalf("expected payload under heading_2, got %s", data)
	}
	if _, ok := envelope["paragraph"]; ok {
		t.Fatalf("unexpected paragraph payload in %s", data)
	}
}

func TestBlockMarshalEmptyRichTextIsArray(t *testing.T) {
	data, err := json.Marshal(Block{Kind: KindParagraph})
	if err != nil {
		t.Fatalf("marshal block: %v", err)
	}
	if !strings.Contains(string(data), `"rich_text":[]`) {
		t.Fatalf("expected empty rich_text array, got %s", data)
	}
}

func TestBlockMarshalCodeCarriesLanguage(t *testing.T) {
	data, err := json.Marshal(Code("print(1)", "python"))
	if err != nil {
		t.Fatalf("marshal block: %v", err)
	}
	if !strings.Contains(string(data), `"language":"python"`) {
		t.Fatalf("expected language field, got %s", data)
	}
}

func TestBlockUnmarshalRemotePayload(t *testing.T) {
	payload := `{
		"object": "block",
		"id": "block-1",
		"type": "to_do",
		"has_children": false,
		"created_time": "2024-01-01T00:00:00.000Z",
		"to_do": {
			"rich_text": [{"type": "text", "text": {"content": "task"}, "plain_text": "task"}],
			"checked": true,
			"color": "default"
		}
	}`

	var block Block
	if err := json.Unmarshal([]byte(payload), &block); err != nil {
		t.Fatalf("unmarshal block: %v", err)
	}
	if block.Kind != KindToDo {
		t.Fatalf("expected to_do, got %s", block.Kind)
	}
	if block.ID != "block-1" {
		t.Fatalf("expected id, got %q", block.ID)
	}
	if !block.Checked {
		t.Fatalf("expected checked task")
	}
	if len(block.RichText) != 1 || block.RichText[0].Text != "task" {
		t.Fatalf("unexpected rich text %+v", block.RichText)
	}
}

func TestBlockUnmarshalUnknownKind(t *testing.T) {
	payload := `{
		"object": "block",
		"type": "child_database",
		"child_database": {"title": "Ledger"}
	}`

	var block Block
	if err := json.Unmarshal([]byte(payload), &block); err != nil {
		t.Fatalf("unmarshal block: %v", err)
	}
	if block.Kind != Kind("child_database") {
		t.Fatalf("expected kind preserved, got %s", block.Kind)
	}
	if block.RichText != nil {
		t.Fatalf("expected no rich text for unknown kind, got %+v", block.RichText)
	}
}

func TestBlockRoundTripThroughWireShape(t *testing.T) {
	original := ToDo([]Run{{Text: "ship it"}}, true)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal block: %v", err)
	}
	var decoded Block
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal block: %v", err)
	}
	if decoded.Kind != original.Kind || decoded.Checked != original.Checked {
		t.Fatalf("round trip mismatch: %+v vs %+v", decoded, original)
	}
}
