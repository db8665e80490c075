// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"strconv"
	"strings"
)

// Tokenizing
//
// A message is trimmed, its CRLF line endings are converted to LF,
// and each line is scanned on its own. Between lines the tokenizer
// emits a TextToken holding a single "\n"; nothing follows the last line,
// and an empty message has no tokens at all.
//
// Within a line, the scanner looks at the byte at the current offset
// and tries, in order, a closing tag, an opening tag, a post reference,
// and a link. Only [ can start a tag, only > can start a reference,
// and only h can start a link, so the leading byte picks the parsers.
// If none applies, a [, > or space is emitted as a one-byte TextToken
// and anything else starts a plain text run lasting until the next [, >
// or space. Because every failed construct degrades to text,
// tokenizing never fails and the token literals cover the input exactly.
//
// A line beginning with > that is not a post reference is a quote line:
// its tokens are bracketed by an OpenToken and CloseToken for Quote,
// both with empty literal text. The > itself stays in the text.

// A tokenParser parses s[start:] into a Token, returning the Token
// and the string index where the token ends.
// If it cannot parse s[start:], it returns ok=false.
type tokenParser func(s string, start int) (x Token, end int, ok bool)

// bracketParsers are tried at a [, in order.
var bracketParsers = []tokenParser{parseCloseTag, parseOpenTag}

// Tokenize splits a message into tokens. It never fails:
// markup that does not match the grammar is returned as text.
func Tokenize(s string) []Token {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if s == "" {
		return nil
	}
	var list []Token
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			list = append(list, &TextToken{"\n"})
		}
		list = tokenizeLine(list, line)
	}
	return list
}

// tokenizeLine appends the tokens for a single line to list.
func tokenizeLine(list []Token, line string) []Token {
	quote := isQuoteLine(line)
	if quote {
		list = append(list, &OpenToken{Tag: Tag{Kind: Quote}})
	}
	for off := 0; off < len(line); {
		var parsers []tokenParser
		switch line[off] {
		case '[':
			parsers = bracketParsers
		case '>':
			parsers = []tokenParser{parseRefLink}
		case 'h':
			parsers = []tokenParser{parseLink}
		}

		matched := false
		for _, parser := range parsers {
			if x, end, ok := parser(line, off); ok {
				list = append(list, x)
				off = end
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		switch line[off] {
		case '[', '>', ' ':
			list = append(list, &TextToken{line[off : off+1]})
			off++
		default:
			end := textEnd(line, off)
			list = append(list, &TextToken{line[off:end]})
			off = end
		}
	}
	if quote {
		list = append(list, &CloseToken{Quote})
	}
	return list
}

// isQuoteLine reports whether line is a quote line:
// it starts with > but not with >> followed by a digit.
func isQuoteLine(line string) bool {
	if !strings.HasPrefix(line, ">") {
		return false
	}
	return !(len(line) > 2 && line[1] == '>' && isDigit(line[2]))
}

// textEnd returns the end of the plain text run starting at s[i],
// which is the index of the next [, >, or space, or len(s).
func textEnd(s string, i int) int {
	j := strings.IndexAny(s[i:], "[> ")
	if j < 0 {
		return len(s)
	}
	return i + j
}

// closeOrder lists the bracket kinds in the order their keywords are tried.
// A keyword must come before any other keyword it is a prefix of.
var closeOrder = []Kind{Spoiler, Color, CodeBlock, Code, Superscript, Subscript, Bold, Italic, Underline, Strike}

// openOrder is like closeOrder, but the color keyword is handled separately
// since it takes an argument.
var openOrder = []Kind{Spoiler, CodeBlock, Code, Superscript, Subscript, Bold, Italic, Underline, Strike}

// parseCloseTag is a [tokenParser] for a closing tag such as [/b].
// The caller has checked that s[start] == '['.
func parseCloseTag(s string, start int) (x Token, end int, ok bool) {
	i := start + 1
	if i >= len(s) || s[i] != '/' {
		return
	}
	i++
	rest := s[i:]
	for _, k := range closeOrder {
		kw := keywords[k]
		if strings.HasPrefix(rest, kw) {
			// Like the opening tags, the first keyword that matches decides:
			// [/bx] does not fall back to anything else.
			if j := i + len(kw); j < len(s) && s[j] == ']' {
				return &CloseToken{k}, j + 1, true
			}
			return
		}
	}
	return
}

// parseOpenTag is a [tokenParser] for an opening tag such as [b] or [color=red].
// The caller has checked that s[start] == '['.
func parseOpenTag(s string, start int) (x Token, end int, ok bool) {
	i := start + 1
	rest := s[i:]
	if strings.HasPrefix(rest, "color=") {
		color, j, ok := parseColorArg(s, i+len("color="))
		if !ok {
			return nil, 0, false
		}
		return closeBracket(s, start, j, Tag{Kind: Color, Color: color})
	}
	for _, k := range openOrder {
		kw := keywords[k]
		if strings.HasPrefix(rest, kw) {
			return closeBracket(s, start, i+len(kw), Tag{Kind: k})
		}
	}
	return
}

// closeBracket completes an opening tag for t that began at s[start]
// and whose keyword ended at s[i], which must be a ].
func closeBracket(s string, start, i int, t Tag) (x Token, end int, ok bool) {
	if i >= len(s) || s[i] != ']' {
		return
	}
	return &OpenToken{Tag: t, Source: s[start : i+1]}, i + 1, true
}

// maxColorLen bounds the length of a color argument in bytes.
// The longest palette name is 20 letters, each of which may be
// spelled with a multibyte letter that folds to it.
const maxColorLen = 64

// parseColorArg parses the argument of a [color=...] tag at s[i:],
// either bare or in double quotes. It returns the color as written
// and the index just past the argument.
func parseColorArg(s string, i int) (color string, end int, ok bool) {
	quoted := i < len(s) && s[i] == '"'
	delim := byte(']')
	if quoted {
		i++
		delim = '"'
	}
	arg := s[i:min(len(s), i+maxColorLen+1)]
	j := strings.IndexByte(arg, delim)
	if j < 0 || !isColor(arg[:j]) {
		return
	}
	end = i + j
	if quoted {
		end++
	}
	return arg[:j], end, true
}

// parseRefLink is a [tokenParser] for a post reference >>123.
// The caller has checked that s[start] == '>'.
func parseRefLink(s string, start int) (x Token, end int, ok bool) {
	i := start
	if !strings.HasPrefix(s[i:], ">>") {
		return
	}
	i += 2
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i {
		return
	}
	id, err := strconv.ParseUint(s[i:j], 10, 32)
	if err != nil {
		// Out of range for a post id.
		return
	}
	return &RefLinkToken{ID: uint32(id), Digits: s[i:j]}, j, true
}

// parseLink is a [tokenParser] for an http or https URL.
// The URL is a scheme, a host, a path, and optionally a ?query and a #fragment.
// The host and path must be non-empty, so the host is always followed by a /.
func parseLink(s string, start int) (x Token, end int, ok bool) {
	i := start
	switch {
	case strings.HasPrefix(s[i:], "http://"):
		i += len("http://")
	case strings.HasPrefix(s[i:], "https://"):
		i += len("https://")
	default:
		return
	}
	j := runEnd(s, i, "/?#[ ")
	if j == i {
		return
	}
	i = j
	j = runEnd(s, i, "[?# ")
	if j == i {
		return
	}
	i = j
	if i < len(s) && s[i] == '?' {
		if j := runEnd(s, i+1, "[# "); j > i+1 {
			i = j
		}
	}
	if i < len(s) && s[i] == '#' {
		if j := runEnd(s, i+1, "[ "); j > i+1 {
			i = j
		}
	}
	return &LinkToken{s[start:i]}, i, true
}

// runEnd returns the end of the run of bytes starting at s[i]
// that contains none of the bytes in stop.
func runEnd(s string, i int, stop string) int {
	j := strings.IndexAny(s[i:], stop)
	if j < 0 {
		return len(s)
	}
	return i + j
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}
