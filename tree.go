// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"slices"
	"strings"
)

// A Node is an element of a markup tree, one of [Text] and [Element].
type Node interface {
	Node()

	printHTML(*printer)
	printText(*printer)
}

// A Nodes is a sequence of sibling [Node]s.
type Nodes []Node

func (x Nodes) printHTML(p *printer) {
	for _, n := range x {
		n.printHTML(p)
	}
}

func (x Nodes) printText(p *printer) {
	for _, n := range x {
		n.printText(p)
	}
}

// A Text is a [Node] holding unstyled text.
type Text struct {
	Text string
}

func (*Text) Node() {}

// An Element is a [Node] applying Tag to its children.
type Element struct {
	Tag      Tag
	Children Nodes
}

func (*Element) Node() {}

// ToTree converts segments to a markup tree.
// Each segment becomes its text wrapped in one Element per tag,
// with the first tag outermost; then the tree is optimized
// as described in [OptimizeTree].
func ToTree(segs []Segment) Nodes {
	list := make(Nodes, 0, len(segs))
	for _, s := range segs {
		var n Node = &Text{s.Text}
		for i := len(s.Tags) - 1; i >= 0; i-- {
			n = &Element{Tag: s.Tags[i], Children: Nodes{n}}
		}
		list = append(list, n)
	}
	return OptimizeTree(list)
}

// OptimizeTree merges adjacent siblings: two Texts merge into one,
// and two Elements with equal tags merge into one holding both child lists.
// Merging exposes new neighbors among the children, so every Element's
// children are optimized the same way, at every depth.
//
// OptimizeTree does not modify list or the nodes in it;
// it returns a new tree, sharing only unchanged Text nodes.
func OptimizeTree(list Nodes) Nodes {
	var out Nodes
	for i := 0; i < len(list); {
		// Merging is associative, so instead of merging pairs
		// one at a time, find each run of mergeable siblings list[i:j]
		// and merge the run at once.
		j := i + 1
		switch x := list[i].(type) {
		case *Text:
			var b strings.Builder
			b.WriteString(x.Text)
			for ; j < len(list); j++ {
				y, ok := list[j].(*Text)
				if !ok {
					break
				}
				b.WriteString(y.Text)
			}
			if j-i > 1 {
				out = append(out, &Text{b.String()})
			} else {
				out = append(out, x)
			}
		case *Element:
			children := slices.Clip(x.Children)
			for ; j < len(list); j++ {
				y, ok := list[j].(*Element)
				if !ok || y.Tag != x.Tag {
					break
				}
				children = append(children, y.Children...)
			}
			out = append(out, &Element{Tag: x.Tag, Children: OptimizeTree(children)})
		default:
			out = append(out, x)
		}
		i = j
	}
	return out
}
