// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"encoding/json"
	"fmt"
)

// JSON encoding
//
// Tags, markup nodes, and tokens are encoded as objects whose "type" field
// names the variant, with the payload, if any, alongside:
//
//	{"type":"Bold"}
//	{"type":"Color","color":"red"}
//	{"type":"RefLink","id":123}
//	{"type":"Link","url":"https://example.com/"}
//	{"type":"Text","text":"hello"}
//	{"type":"Tag","tag":{"type":"Bold"},"children":[{"type":"Text","text":"hello"}]}
//
// Segments are plain objects: {"text":"hello","tags":[{"type":"Bold"}]}.

type jsonTag struct {
	Type  string  `json:"type"`
	Color *string `json:"color,omitempty"`
	ID    *uint32 `json:"id,omitempty"`
	URL   *string `json:"url,omitempty"`
}

func (t Tag) MarshalJSON() ([]byte, error) {
	j := jsonTag{Type: t.Kind.String()}
	switch t.Kind {
	case Color:
		j.Color = &t.Color
	case RefLink:
		j.ID = &t.ID
	case Link:
		j.URL = &t.URL
	}
	if _, ok := kindByName(j.Type); !ok {
		return nil, fmt.Errorf("postmark: cannot encode tag of unknown kind %d", t.Kind)
	}
	return json.Marshal(j)
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var j jsonTag
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("postmark: decoding tag: %w", err)
	}
	k, ok := kindByName(j.Type)
	if !ok {
		return fmt.Errorf("postmark: unknown tag type %q", j.Type)
	}
	*t = Tag{Kind: k}
	switch k {
	case Color:
		if j.Color == nil {
			return fmt.Errorf("postmark: Color tag without color")
		}
		t.Color = *j.Color
	case RefLink:
		if j.ID == nil {
			return fmt.Errorf("postmark: RefLink tag without id")
		}
		t.ID = *j.ID
	case Link:
		if j.URL == nil {
			return fmt.Errorf("postmark: Link tag without url")
		}
		t.URL = *j.URL
	}
	return nil
}

func (x *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"Text", x.Text})
}

func (x *Element) MarshalJSON() ([]byte, error) {
	children := x.Children
	if children == nil {
		children = Nodes{}
	}
	return json.Marshal(struct {
		Type     string `json:"type"`
		Tag      Tag    `json:"tag"`
		Children Nodes  `json:"children"`
	}{"Tag", x.Tag, children})
}

func (x *Nodes) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("postmark: decoding markup: %w", err)
	}
	list := make(Nodes, 0, len(raw))
	for _, r := range raw {
		n, err := unmarshalNode(r)
		if err != nil {
			return err
		}
		list = append(list, n)
	}
	*x = list
	return nil
}

func unmarshalNode(data []byte) (Node, error) {
	var j struct {
		Type     string `json:"type"`
		Text     string `json:"text"`
		Tag      *Tag   `json:"tag"`
		Children Nodes  `json:"children"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("postmark: decoding markup: %w", err)
	}
	switch j.Type {
	case "Text":
		return &Text{j.Text}, nil
	case "Tag":
		if j.Tag == nil {
			return nil, fmt.Errorf("postmark: Tag node without tag")
		}
		return &Element{Tag: *j.Tag, Children: j.Children}, nil
	}
	return nil, fmt.Errorf("postmark: unknown markup type %q", j.Type)
}

func (x *TextToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"Text", x.Text})
}

func (x *RefLinkToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		ID   uint32 `json:"id"`
	}{"RefLink", x.ID})
}

func (x *LinkToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}{"Link", x.URL})
}

func (x *OpenToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Tag  Tag    `json:"tag"`
	}{"OpeningTag", x.Tag})
}

func (x *CloseToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Tag  string `json:"tag"`
	}{"ClosingTag", x.Kind.String()})
}
