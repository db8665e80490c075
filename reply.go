// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"slices"
	"strings"
)

// RefLinks returns the ids of the posts referenced anywhere in list,
// each once, in order of first appearance.
func RefLinks(list Nodes) []uint32 {
	var ids []uint32
	var walk func(Nodes)
	walk = func(list Nodes) {
		for _, n := range list {
			e, ok := n.(*Element)
			if !ok {
				continue
			}
			if e.Tag.Kind == RefLink && !slices.Contains(ids, e.Tag.ID) {
				ids = append(ids, e.Tag.ID)
			}
			walk(e.Children)
		}
	}
	walk(list)
	return ids
}

// ExtractReply returns the part of a message that answers the
// caller's own posts, for use in reply notifications.
//
// The reply starts after the first top-level reference to a post
// for which isOwn reports true, and ends at the next reference to a post
// that is not the caller's. References to the caller's posts are dropped
// and top-level text is trimmed of surrounding space. The result is
// optimized again, since dropping references can leave equal siblings
// next to each other.
// If the message contains no such reply, ExtractReply returns list.
func ExtractReply(list Nodes, isOwn func(id uint32) bool) Nodes {
	var (
		out     Nodes
		inReply bool
	)
	for _, n := range list {
		if e, ok := n.(*Element); ok && e.Tag.Kind == RefLink {
			if isOwn(e.Tag.ID) {
				inReply = true
				continue
			}
			if inReply {
				break
			}
			continue
		}
		if !inReply {
			continue
		}
		if t, ok := n.(*Text); ok {
			n = &Text{strings.TrimSpace(t.Text)}
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return list
	}
	return OptimizeTree(out)
}
