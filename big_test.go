// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

const (
	bOpen  = `<strong class="markup markup_bold">`
	bClose = `</strong>`
	iOpen  = `<em class="markup markup_italic">`
	iClose = `</em>`
)

var bigTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"many closers with no openers",
		rep("[/b]", 65000),
		"",
	},
	{
		"many openers with no closers",
		rep("[b]", 65000) + "a",
		rep(bOpen, 65000) + "a" + rep(bClose, 65000),
	},
	{
		"many openers then unmatched closers",
		rep("[b]", 30000) + "a" + rep("[/i]", 30000) + "b",
		rep(bOpen, 30000) + "ab" + rep(bClose, 30000),
	},
	{
		"nested bold",
		rep("[b]a", 2000) + rep("[/b]", 2000),
		rep(bOpen+"a", 2000) + rep(bClose, 2000),
	},
	{
		"overlapping styles",
		rep("[b]a[i]b[/b]c[/i]", 20000),
		rep(bOpen+"a"+iOpen+"b"+iClose+bClose+iOpen+"c"+iClose, 20000),
	},
	{
		"brackets",
		rep("[", 50000) + "a" + rep("]", 50000),
		rep("[", 50000) + "a" + rep("]", 50000),
	},
	{
		"unclosed color",
		rep("[color=", 50000),
		rep("[color=", 50000),
	},
	{
		"unclosed quoted color",
		rep(`[color="`, 50000),
		rep(`[color=&quot;`, 50000),
	},
	{
		"code with many tags",
		"[code]" + rep("[b][i]", 30000) + "[/code]",
		`<pre class="markup markup_code">` + rep("[b][i]", 30000) + `</pre>`,
	},
	{
		"many quote lines",
		strings.TrimSuffix(rep("> a\n", 30000), "\n"),
		strings.TrimSuffix(rep(`<span class="markup markup_quote">&gt; a</span>`+"\n", 30000), "\n"),
	},
	{
		"many references",
		rep(">>1 ", 30000),
		strings.TrimSuffix(rep(`<a class="markup markup_reflink reflink" href="#post_1" data-ref-link="1" data-show-post-popup="1">1</a> `, 30000), " "),
	},
	{
		"long reference",
		">>" + rep("9", 100000),
		"&gt;&gt;" + rep("9", 100000),
	},
	{
		"links without paths",
		rep("http://a ", 30000),
		strings.TrimSuffix(rep("http://a ", 30000), " "),
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out := ToHTML(ParseTree(tt.in))
			if out != tt.out {
				t.Fatalf("%s: ToHTML(%q):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(tt.out))
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		_ = ToHTML(ParseTree(text))
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkBrackets(b *testing.B) {
	bench(b, rep("[", 10000)+"a"+rep("]", 10000))
}

func BenchmarkOverlap(b *testing.B) {
	bench(b, rep("[b]a[i]b[/b]c[/i]", 1000))
}

func BenchmarkPost(b *testing.B) {
	bench(b, rep(">>123 > quoted [b]bold [i]both[/b] italic[/i] https://go.dev/doc?x=1\n", 100))
}
