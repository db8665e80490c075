// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/util"
)

// htmlElems maps simple styles to their opening and closing HTML.
var htmlElems = map[Kind][2]string{
	Bold:        {`<strong class="markup markup_bold">`, `</strong>`},
	Italic:      {`<em class="markup markup_italic">`, `</em>`},
	Underline:   {`<span class="markup markup_underline">`, `</span>`},
	Strike:      {`<del class="markup markup_strike">`, `</del>`},
	Superscript: {`<sup class="markup markup_superscript">`, `</sup>`},
	Subscript:   {`<sub class="markup markup_subscript">`, `</sub>`},
	Code:        {`<pre class="markup markup_code">`, `</pre>`},
	CodeBlock:   {`<pre class="markup markup_codeblock">`, `</pre>`},
	Spoiler:     {`<span class="markup markup_spoiler">`, `</span>`},
	Quote:       {`<span class="markup markup_quote">`, `</span>`},
}

// linkIcons lists the extra classes for links to embeddable media,
// in the order they appear in the class attribute.
var linkIcons = []struct {
	class string
	re    []*regexp.Regexp
}{
	{"markup_icon_coub", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?coub\.com/view/`),
	}},
	{"markup_icon_tiktok", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?tiktok\.com/@[0-9a-z_-]+/video/\d+`),
		regexp.MustCompile(`(?i)^(?:https?://)?vm\.tiktok\.com/[0-9a-z_-]+`),
	}},
	{"markup_icon_youtube", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch|embed|v)|youtu\.be/)`),
	}},
}

// linkClass returns the class attribute for a link to url.
func linkClass(url string) string {
	class := []string{"markup", "markup_link"}
	for _, icon := range linkIcons {
		for _, re := range icon.re {
			if re.MatchString(url) {
				class = append(class, icon.class)
				break
			}
		}
	}
	return strings.Join(class, " ")
}

func (x *Text) printHTML(p *printer) { p.text(x.Text) }

func (x *Element) printHTML(p *printer) {
	t := x.Tag
	switch t.Kind {
	case Color:
		p.html(`<span style="color: `, escapeAttr(t.Color), `;">`)
		x.Children.printHTML(p)
		p.html(`</span>`)

	case RefLink:
		id := strconv.FormatUint(uint64(t.ID), 10)
		p.html(`<a class="markup markup_reflink reflink" href="#post_`, id,
			`" data-ref-link="`, id, `" data-show-post-popup="`, id, `">`)
		x.Children.printHTML(p)
		p.html(`</a>`)

	case Link:
		href := string(util.EscapeHTML(util.URLEscape([]byte(t.URL), false)))
		p.html(`<a class="`, linkClass(t.URL), `" href="`, href, `" target="_blank">`)
		x.Children.printHTML(p)
		p.html(`</a>`)

	default:
		elem, ok := htmlElems[t.Kind]
		if !ok {
			x.Children.printHTML(p)
			return
		}
		p.html(elem[0])
		x.Children.printHTML(p)
		p.html(elem[1])
	}
}

// escapeHTML escapes s for use as HTML text.
func escapeHTML(s string) []byte {
	return util.EscapeHTML([]byte(s))
}

// escapeAttr escapes s for use in a double-quoted HTML attribute.
func escapeAttr(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
