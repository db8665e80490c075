// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	writeHTML = iota
	writeText
)

type printer struct {
	writeMode int
	buf       bytes.Buffer
}

// html writes raw HTML markup.
func (p *printer) html(list ...string) {
	if p.writeMode != writeHTML {
		panic("raw HTML in non-HTML output")
	}
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes user text, escaping it in HTML output.
func (p *printer) text(list ...string) {
	for _, s := range list {
		if p.writeMode == writeHTML {
			p.buf.Write(escapeHTML(s))
			continue
		}
		p.buf.WriteString(s)
	}
}

// ToHTML renders a markup tree as HTML.
func ToHTML(list Nodes) string {
	var p printer
	p.writeMode = writeHTML
	list.printHTML(&p)
	return p.buf.String()
}

// ToText renders a markup tree as plain text, dropping all styling.
// Post references print as >>ID.
func ToText(list Nodes) string {
	var p printer
	p.writeMode = writeText
	list.printText(&p)
	return p.buf.String()
}

func (x *Text) printText(p *printer) { p.text(x.Text) }

func (x *Element) printText(p *printer) {
	if x.Tag.Kind != RefLink {
		x.Children.printText(p)
		return
	}
	// Adjacent references to one post merge into a single element
	// whose text repeats the id, once per reference.
	var q printer
	q.writeMode = writeText
	x.Children.printText(&q)
	text := q.buf.String()
	id := strconv.FormatUint(uint64(x.Tag.ID), 10)
	if n := len(text) / len(id); n > 0 && text == strings.Repeat(id, n) {
		p.text(strings.Repeat(">>"+id, n))
		return
	}
	p.text(">>", text)
}

// Format returns message source that parses back to segs,
// opening and closing as few tags as possible between segments.
// The round trip is exact unless some segment's text
// itself contains tag, reference, or link syntax.
func Format(segs []Segment) string {
	var (
		buf  strings.Builder
		open []Tag // bracket tags currently open, in source order
	)
	for _, s := range segs {
		want := bracketTags(s.Tags)
		n := 0
		for n < len(open) && n < len(want) && open[n] == want[n] {
			n++
		}
		for i := len(open) - 1; i >= n; i-- {
			buf.WriteString(open[i].Kind.CloseLiteral())
		}
		for _, t := range want[n:] {
			buf.WriteString(t.Literal())
		}
		open = append(open[:n], want[n:]...)

		if s.HasRefLink() {
			buf.WriteString(">>")
		}
		buf.WriteString(s.Text)
	}
	for i := len(open) - 1; i >= 0; i-- {
		buf.WriteString(open[i].Kind.CloseLiteral())
	}
	return buf.String()
}

// bracketTags returns the tags in list that are written as bracket tags.
func bracketTags(list []Tag) []Tag {
	var out []Tag
	for _, t := range list {
		if t.Kind.Bracket() {
			out = append(out, t)
		}
	}
	return out
}
