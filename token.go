// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import "strconv"

// A Token is one lexical element of a message, one of
// [TextToken], [RefLinkToken], [LinkToken], [OpenToken], and [CloseToken].
//
// Concatenating the Literal of every token returned by [Tokenize]
// reproduces the trimmed, LF-normalized input exactly.
type Token interface {
	Token()

	// Literal returns the token's text as it appeared in the input.
	Literal() string
}

// A TextToken is a run of plain text.
type TextToken struct {
	Text string
}

// A RefLinkToken is a post reference such as >>123.
type RefLinkToken struct {
	ID     uint32
	Digits string // digits as written, possibly with leading zeros
}

// A LinkToken is an http or https URL.
type LinkToken struct {
	URL string
}

// An OpenToken opens a style.
// Source is the exact opening text, such as `[color="red"]`;
// it is empty for the implied Quote style.
type OpenToken struct {
	Tag    Tag
	Source string
}

// A CloseToken closes the most recently opened style of its Kind.
type CloseToken struct {
	Kind Kind
}

func (*TextToken) Token()    {}
func (*RefLinkToken) Token() {}
func (*LinkToken) Token()    {}
func (*OpenToken) Token()    {}
func (*CloseToken) Token()   {}

func (x *TextToken) Literal() string  { return x.Text }
func (x *LinkToken) Literal() string  { return x.URL }
func (x *CloseToken) Literal() string { return x.Kind.CloseLiteral() }

func (x *RefLinkToken) Literal() string {
	if x.Digits == "" {
		return ">>" + strconv.FormatUint(uint64(x.ID), 10)
	}
	return ">>" + x.Digits
}

func (x *OpenToken) Literal() string {
	if x.Source == "" {
		return x.Tag.Literal()
	}
	return x.Source
}
