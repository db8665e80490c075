// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func tx(s string) Node { return &Text{s} }

func el(tag Tag, children ...Node) Node {
	return &Element{Tag: tag, Children: children}
}

var treeTests = []struct {
	in  string
	out Nodes
}{
	{"", nil},
	{"hello", Nodes{tx("hello")}},
	{"[b]hello[/b]", Nodes{el(tagBold, tx("hello"))}},
	{"[b][i]x[/i][/b]", Nodes{el(tagBold, el(tagItalic, tx("x")))}},
	{"[i][b]x[/b][/i]", Nodes{el(tagItalic, el(tagBold, tx("x")))}},
	{"[b]a[i]b[/b]c[/i]", Nodes{
		el(tagBold, tx("a"), el(tagItalic, tx("b"))),
		el(tagItalic, tx("c")),
	}},
	{"[b]a[i]b[/i]c[/b]", Nodes{
		el(tagBold, tx("a"), el(tagItalic, tx("b")), tx("c")),
	}},
	{">>1 hi", Nodes{el(refTag(1), tx("1")), tx(" hi")}},
	{"[color=red]a[/color][color=blue]b[/color]", Nodes{
		el(colorTag("red"), tx("a")),
		el(colorTag("blue"), tx("b")),
	}},
	{"> [b]x\ny", Nodes{
		el(tagQuote, tx("> "), el(tagBold, tx("x"))),
		el(tagBold, tx("\ny")),
	}},
}

func TestToTree(t *testing.T) {
	for _, tt := range treeTests {
		out := ParseTree(tt.in)
		if diff := cmp.Diff(tt.out, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseTree(%#q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestToTreeMergesRecursively(t *testing.T) {
	segs := []Segment{
		seg("x", tagBold, tagItalic),
		seg("y", tagBold, tagItalic),
	}
	want := Nodes{el(tagBold, el(tagItalic, tx("xy")))}
	if diff := cmp.Diff(want, ToTree(segs), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ToTree mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizeTree(t *testing.T) {
	in := Nodes{
		tx("a"),
		tx("b"),
		el(refTag(1), tx("1")),
		el(refTag(1), tx("1")),
		el(refTag(2), tx("2")),
		el(tagBold, el(tagItalic, tx("c"))),
		el(tagBold, el(tagItalic, tx("d")), tx("e")),
		tx("f"),
	}
	want := Nodes{
		tx("ab"),
		el(refTag(1), tx("11")),
		el(refTag(2), tx("2")),
		el(tagBold, el(tagItalic, tx("cd")), tx("e")),
		tx("f"),
	}
	orig := Nodes{
		tx("a"),
		tx("b"),
		el(refTag(1), tx("1")),
		el(refTag(1), tx("1")),
		el(refTag(2), tx("2")),
		el(tagBold, el(tagItalic, tx("c"))),
		el(tagBold, el(tagItalic, tx("d")), tx("e")),
		tx("f"),
	}

	out := OptimizeTree(in)
	if diff := cmp.Diff(want, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("OptimizeTree mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig, in); diff != "" {
		t.Errorf("OptimizeTree modified its input (-orig +now):\n%s", diff)
	}
	again := OptimizeTree(out)
	if diff := cmp.Diff(out, again, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("OptimizeTree not idempotent (-once +twice):\n%s", diff)
	}
}

func TestOptimizeTreeSpareCapacity(t *testing.T) {
	// Children with spare capacity must not be appended to in place.
	children := make(Nodes, 1, 4)
	children[0] = tx("a")
	first := &Element{Tag: tagBold, Children: children}
	second := &Element{Tag: tagBold, Children: Nodes{tx("b")}}

	OptimizeTree(Nodes{first, second})
	full := children[:2]
	if full[1] != nil {
		t.Errorf("OptimizeTree wrote past the end of a child list: %v", full[1])
	}
}
