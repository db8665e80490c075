// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"rsc.io/postmark"
)

var (
	codeColor  = lipgloss.Color("#d7875f")
	linkColor  = lipgloss.Color("#5f87d7")
	quoteColor = lipgloss.Color("#789922")
)

// An ansiRenderer renders segments as styled terminal text.
type ansiRenderer struct {
	r     *lipgloss.Renderer
	width int
}

// newANSIRenderer returns a renderer for output to w.
// The color mode is auto, always, or never;
// auto leaves the choice to the terminal detection of w.
func newANSIRenderer(w io.Writer, color string, width int) *ansiRenderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return &ansiRenderer{r: r, width: width}
}

// render returns segs as styled text wrapped at the renderer's width.
func (a *ansiRenderer) render(segs []postmark.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		text := s.Text
		if s.HasRefLink() {
			text = ">>" + text
		}
		st := a.style(s.Tags)
		// Render lines separately: lipgloss pads multi-line
		// strings to a common width.
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			if line != "" {
				b.WriteString(st.Render(line))
			}
		}
	}
	if a.width <= 0 {
		return b.String()
	}
	return wordwrap.String(b.String(), a.width)
}

// style returns the style for text with the given tags.
func (a *ansiRenderer) style(tags []postmark.Tag) lipgloss.Style {
	st := a.r.NewStyle()
	for _, t := range tags {
		switch t.Kind {
		case postmark.Bold:
			st = st.Bold(true)
		case postmark.Italic:
			st = st.Italic(true)
		case postmark.Underline:
			st = st.Underline(true)
		case postmark.Strike:
			st = st.Strikethrough(true)
		case postmark.Superscript, postmark.Subscript:
			st = st.Faint(true)
		case postmark.Code, postmark.CodeBlock:
			st = st.Foreground(codeColor)
		case postmark.Spoiler:
			st = st.Reverse(true)
		case postmark.Color:
			if rgb, ok := postmark.ColorRGB(t.Color); ok {
				st = st.Foreground(lipgloss.Color(rgb))
			}
		case postmark.RefLink, postmark.Link:
			st = st.Underline(true).Foreground(linkColor)
		case postmark.Quote:
			st = st.Foreground(quoteColor)
		}
	}
	return st
}
