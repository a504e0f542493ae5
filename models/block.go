package models

import (
	"bytes"
	"encoding/json"
)

// Block is one portable-text block. Text blocks use Style, ListItem,
// Children and MarkDefs; image and code blocks use the remaining fields.
type Block struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	Asset   *AssetRef `json:"asset,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Caption string    `json:"caption,omitempty"`

	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Span is a run of text inside a block.
type Span struct {
	Key   string `json:"_key,omitempty"`
	Type  string `json:"_type,omitempty"`
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by key from a span's marks.
type MarkDef struct {
	Key  string `json:"_key,omitempty"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Mark is either a decorator name ("strong", "em", ...) or a markDefs key,
// held in Name, or an inline annotation object, held in Annotation.
type Mark struct {
	Name       string
	Annotation *MarkDef
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &m.Name)
	}
	var def MarkDef
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	m.Annotation = &def
	return nil
}

func (m Mark) MarshalJSON() ([]byte, error) {
	if m.Annotation != nil {
		return json.Marshal(m.Annotation)
	}
	return json.Marshal(m.Name)
}
