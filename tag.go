// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import "strconv"

// A Kind identifies a style family.
// Closing tags carry only a Kind; opening tags and
// segment styles carry a [Tag], which adds the payload.
type Kind uint8

const (
	Bold Kind = 1 + iota
	Italic
	Underline
	Strike
	Superscript
	Subscript
	Code
	CodeBlock
	Spoiler
	Color
	RefLink
	Link
	Quote
)

var kindNames = [...]string{
	Bold:        "Bold",
	Italic:      "Italic",
	Underline:   "Underline",
	Strike:      "Strike",
	Superscript: "Superscript",
	Subscript:   "Subscript",
	Code:        "Code",
	CodeBlock:   "CodeBlock",
	Spoiler:     "Spoiler",
	Color:       "Color",
	RefLink:     "RefLink",
	Link:        "Link",
	Quote:       "Quote",
}

// keywords maps bracket kinds to their tag keyword.
var keywords = [...]string{
	Bold:        "b",
	Italic:      "i",
	Underline:   "u",
	Strike:      "s",
	Superscript: "sup",
	Subscript:   "sub",
	Code:        "code",
	CodeBlock:   "codeblock",
	Spoiler:     "spoiler",
	Color:       "color",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// kindByName returns the Kind with the given name, as printed by String.
func kindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n != "" && n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Bracket reports whether k can be written as a [x]...[/x] tag pair.
// RefLink, Link and Quote are implied by the shape of the text instead.
func (k Kind) Bracket() bool {
	return int(k) < len(keywords) && keywords[k] != ""
}

// CloseLiteral returns the closing tag text for k, such as "[/b]".
// Kinds without bracket syntax close with no text.
func (k Kind) CloseLiteral() string {
	if !k.Bracket() {
		return ""
	}
	return "[/" + keywords[k] + "]"
}

// A Tag is a style applied to a run of text.
// Color is set only for Color tags, ID only for RefLink tags,
// and URL only for Link tags.
//
// Tag is comparable: two tags are equal when their kinds and payloads are.
type Tag struct {
	Kind  Kind
	Color string
	ID    uint32
	URL   string
}

// Matches reports whether the closing kind k closes t.
// A Color closer closes a Color tag of any color.
func (t Tag) Matches(k Kind) bool {
	return t.Kind == k
}

// Literal returns the canonical opening tag text for t, such as "[b]"
// or "[color=red]". Tags without bracket syntax have no opening text.
func (t Tag) Literal() string {
	switch {
	case t.Kind == Color:
		return "[color=" + t.Color + "]"
	case t.Kind.Bracket():
		return "[" + keywords[t.Kind] + "]"
	}
	return ""
}

func (t Tag) String() string {
	switch t.Kind {
	case Color:
		return "Color(" + t.Color + ")"
	case RefLink:
		return "RefLink(" + strconv.FormatUint(uint64(t.ID), 10) + ")"
	case Link:
		return "Link(" + t.URL + ")"
	}
	return t.Kind.String()
}

func (t Tag) isRefLink() bool { return t.Kind == RefLink }
