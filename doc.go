// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postmark parses the markup of forum and chat posts.
//
// A post is plain text with bracket tags such as [b]bold[/b],
// [color=red]red[/color] and [code]code[/code], post references
// such as >>123, http and https links, and quote lines starting with >.
// Parsing happens in three steps:
//
//   - [Tokenize] splits the text into [Token]s.
//   - [ToSegments] turns the tokens into [Segment]s: runs of text,
//     each with the list of styles in effect.
//   - [ToTree] nests the segments into a tree of [Node]s,
//     merging adjacent siblings with the same style.
//
// Parsing never fails. Tags that are unknown, malformed, or closed
// without being opened are kept as text or dropped, and tags
// may overlap: in "[b]a[i]b[/b]c[/i]" the c is italic but not bold.
//
// The package does not escape text for any output format;
// [ToHTML] does, when rendering a tree as HTML.
package postmark

// Parse returns the segments of the post text s.
func Parse(s string) []Segment {
	return ToSegments(Tokenize(s))
}

// ParseTree returns the markup tree of the post text s.
func ParseTree(s string) Nodes {
	return ToTree(Parse(s))
}
