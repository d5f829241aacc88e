package blocks

import "encoding/json"

// The wire shape mirrors the Notion API: blocks are tagged envelopes
// `{object:"block", type:<kind>, <kind>:{...}}` and runs are
// `{type:"text", text:{content, link?}, plain_text, href, annotations?}`.
// Field names are fixed for compatibility with the remote document store.

type wireLink struct {
	URL string `json:"url"`
}

type wireTextValue struct {
	Content string    `json:"content"`
	Link    *wireLink `json:"link,omitempty"`
}

type wireAnnotations struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
}

type wireRun struct {
	Type        string           `json:"type"`
	Text        wireTextValue    `json:"text"`
	PlainText   string           `json:"plain_text"`
	Href        *string          `json:"href"`
	Annotations *wireAnnotations `json:"annotations,omitempty"`
}

// MarshalJSON encodes the run in the remote wire shape. The annotations
// object is omitted entirely when the set is empty and href is null when the
// run carries no link.
func (r Run) MarshalJSON() ([]byte, error) {
	wire := wireRun{
		Type:      "text",
		Text:      wireTextValue{Content: r.Text},
		PlainText: r.Text,
	}
	if r.Link != "" {
		wire.Text.Link = &wireLink{URL: r.Link}
		href := r.Link
		wire.Href = &href
	}
	if !r.Annotations.IsZero() {
		wire.Annotations = &wireAnnotations{
			Bold:          r.Annotations.Bold,
			Italic:        r.Annotations.Italic,
			Strikethrough: r.Annotations.Strikethrough,
			Code:          r.Annotations.Code,
		}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a run, preferring plain_text over text.content and
// tolerating the extra fields the remote API attaches (colors, mentions).
func (r *Run) UnmarshalJSON(data []byte) error {
	var wire wireRun
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	text := wire.PlainText
	if text == "" {
		text = wire.Text.Content
	}

	link := ""
	if wire.Href != nil {
		link = *wire.Href
	}
	if link == "" && wire.Text.Link != nil {
		link = wire.Text.Link.URL
	}

	*r = Run{Text: text, Link: link}
	if wire.Annotations != nil {
		r.Annotations = Annotations{
			Bold:          wire.Annotations.Bold,
			Italic:        wire.Annotations.Italic,
			Strikethrough: wire.Annotations.Strikethrough,
			Code:          wire.Annotations.Code,
		}
	}
	return nil
}

type wireRichText struct {
	RichText []Run   `json:"rich_text"`
	Children []Block `json:"children,omitempty"`
}

type wireCode struct {
	RichText []Run   `json:"rich_text"`
	Language string  `json:"language"`
	Children []Block `json:"children,omitempty"`
}

type wireDivider struct{}

type wireToDo struct {
	RichText []Run   `json:"rich_text"`
	Checked  bool    `json:"checked"`
	Children []Block `json:"children,omitempty"`
}

type wireBlock struct {
	Object      string `json:"object"`
	ID          string `json:"id,omitempty"`
	Type        Kind   `json:"type"`
	HasChildren bool   `json:"has_children,omitempty"`

	Paragraph        *wireRichText `json:"paragraph,omitempty"`
	Heading1         *wireRichText `json:"heading_1,omitempty"`
	Heading2         *wireRichText `json:"heading_2,omitempty"`
	Heading3         *wireRichText `json:"heading_3,omitempty"`
	BulletedListItem *wireRichText `json:"bulleted_list_item,omitempty"`
	NumberedListItem *wireRichText `json:"numbered_list_item,omitempty"`
	Code             *wireCode     `json:"code,omitempty"`
	Quote            *wireRichText `json:"quote,omitempty"`
	Divider          *wireDivider  `json:"divider,omitempty"`
	ToDo             *wireToDo     `json:"to_do,omitempty"`
}

// MarshalJSON encodes the block as a tagged envelope with the kind-specific
// payload nested under the kind name.
func (b Block) MarshalJSON() ([]byte, error) {
	wire := wireBlock{
		Object:      "block",
		ID:          b.ID,
		Type:        b.Kind,
		HasChildren: b.HasChildren,
	}

	runs := b.RichText
	if runs == nil {
		runs = []Run{}
	}

	switch b.Kind {
	case KindParagraph:
		wire.Paragraph = &wireRichText{RichText: runs, Children: b.Children}
	case KindHeading1:
		wire.Heading1 = &wireRichText{RichText: runs, Children: b.Children}
	case KindHeading2:
		wire.Heading2 = &wireRichText{RichText: runs, Children: b.Children}
	case KindHeading3:
		wire.Heading3 = &wireRichText{RichText: runs, Children: b.Children}
	case KindBulletedListItem:
		wire.BulletedListItem = &wireRichText{RichText: runs, Children: b.Children}
	case KindNumberedListItem:
		wire.NumberedListItem = &wireRichText{RichText: runs, Children: b.Children}
	case KindCode:
		wire.Code = &wireCode{RichText: runs, Language: b.Language, Children: b.Children}
	case KindQuote:
		wire.Quote = &wireRichText{RichText: runs, Children: b.Children}
	case KindDivider:
		wire.Divider = &wireDivider{}
	case KindToDo:
		wire.ToDo = &wireToDo{RichText: runs, Checked: b.Checked, Children: b.Children}
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a tagged block envelope. Unknown kinds decode into a
// block carrying only the kind; the Markdown serializer skips them.
func (b *Block) UnmarshalJSON(data []byte) error {
	var wire wireBlock
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*b = Block{
		ID:          wire.ID,
		Kind:        wire.Type,
		HasChildren: wire.HasChildren,
	}

	assign := func(payload *wireRichText) {
		if payload != nil {
			b.RichText = payload.RichText
			b.Children = payload.Children
		}
	}

	switch wire.Type {
	case KindParagraph:
		assign(wire.Paragraph)
	case KindHeading1:
		assign(wire.Heading1)
	case KindHeading2:
		assign(wire.Heading2)
	case KindHeading3:
		assign(wire.Heading3)
	case KindBulletedListItem:
		assign(wire.BulletedListItem)
	case KindNumberedListItem:
		assign(wire.NumberedListItem)
	case KindCode:
		if wire.Code != nil {
			b.RichText = wire.Code.RichText
			b.Language = wire.Code.Language
			b.Children = wire.Code.Children
		}
	case KindQuote:
		assign(wire.Quote)
	case KindToDo:
		if wire.ToDo != nil {
			b.RichText = wire.ToDo.RichText
			b.Checked = wire.ToDo.Checked
			b.Children = wire.ToDo.Children
		}
	}

	return nil
}
