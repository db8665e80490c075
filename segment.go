// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"slices"
	"strconv"
	"strings"
)

// A Segment is a run of text and the styles active over it,
// outermost (earliest opened) first.
type Segment struct {
	Text string `json:"text"`
	Tags []Tag  `json:"tags"`
}

// RefLink returns the post id referenced by s, if any.
func (s Segment) RefLink() (uint32, bool) {
	for _, t := range s.Tags {
		if t.isRefLink() {
			return t.ID, true
		}
	}
	return 0, false
}

// HasRefLink reports whether s is a post reference.
func (s Segment) HasRefLink() bool {
	_, ok := s.RefLink()
	return ok
}

// Building Segments
//
// The builder keeps the list of open styles in the order they were opened.
// Text is emitted with a copy of that list. Closing a style removes the
// most recently opened entry of the same kind, wherever it is in the list,
// so "[b]a[i]b[/b]c[/i]" leaves Italic open after Bold is closed and
// yields a, b, and c styled Bold, Bold+Italic, and Italic.
// A closing tag with no open style of its kind is dropped.
//
// While Code or CodeBlock is open, nothing else is interpreted:
// text, references, links and tags (other than the matching closer)
// are emitted literally, styled with only the code style.
// CodeBlock wins if both are open.

// ToSegments converts tokens into segments and merges adjacent
// segments as described in [OptimizeSegments].
func ToSegments(tokens []Token) []Segment {
	var (
		out    []Segment
		active []Tag
		counts = make(map[Kind]int) // active tags of each kind
	)
	emit := func(text string, tags []Tag) {
		if text != "" {
			out = append(out, Segment{Text: text, Tags: tags})
		}
	}
	for _, tok := range tokens {
		code, frozen := codeStyle(counts)
		switch tok := tok.(type) {
		case *TextToken:
			if frozen {
				emit(tok.Text, []Tag{code})
				break
			}
			emit(tok.Text, snapshot(active))

		case *RefLinkToken:
			if frozen {
				emit(tok.Literal(), []Tag{code})
				break
			}
			emit(strconv.FormatUint(uint64(tok.ID), 10), append(snapshot(active), Tag{Kind: RefLink, ID: tok.ID}))

		case *LinkToken:
			if frozen {
				emit(tok.URL, []Tag{code})
				break
			}
			emit(tok.URL, append(snapshot(active), Tag{Kind: Link, URL: tok.URL}))

		case *OpenToken:
			if frozen {
				emit(tok.Literal(), []Tag{code})
				break
			}
			active = append(active, tok.Tag)
			counts[tok.Tag.Kind]++

		case *CloseToken:
			if frozen && tok.Kind != code.Kind {
				emit(tok.Literal(), []Tag{code})
				break
			}
			if counts[tok.Kind] == 0 {
				break
			}
			if i := lastMatch(active, tok.Kind); i >= 0 {
				active = slices.Delete(active, i, i+1)
				counts[tok.Kind]--
			}
		}
	}
	return OptimizeSegments(out)
}

// codeStyle returns the code style that freezes markup, if any,
// given the number of active tags of each kind.
func codeStyle(counts map[Kind]int) (Tag, bool) {
	switch {
	case counts[CodeBlock] > 0:
		return Tag{Kind: CodeBlock}, true
	case counts[Code] > 0:
		return Tag{Kind: Code}, true
	}
	return Tag{}, false
}

// lastMatch returns the index of the most recently opened tag in active
// that k closes, or -1.
func lastMatch(active []Tag, k Kind) int {
	for i := len(active) - 1; i >= 0; i-- {
		if active[i].Matches(k) {
			return i
		}
	}
	return -1
}

// snapshot returns a copy of active with room for one more tag.
// The result is never nil.
func snapshot(active []Tag) []Tag {
	tags := make([]Tag, len(active), len(active)+1)
	copy(tags, active)
	return tags
}

// OptimizeSegments merges each segment into the one before it
// when both have the same tags in the same order,
// unless the earlier one is a post reference.
// It makes a single pass, so it is idempotent.
func OptimizeSegments(segs []Segment) []Segment {
	var out []Segment
	for i := 0; i < len(segs); {
		// Find the run segs[i:j] that merges into segs[i].
		s := segs[i]
		j := i + 1
		if !s.HasRefLink() {
			for j < len(segs) && slices.Equal(s.Tags, segs[j].Tags) {
				j++
			}
		}
		if j-i > 1 {
			s.Text = joinText(segs[i:j])
		}
		out = append(out, s)
		i = j
	}
	return out
}

// joinText returns the concatenated text of segs.
func joinText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
