// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Postfmt parses forum posts and prints them in another form.
//
// Usage:
//
//	postfmt [-f format] [-w width] [--color mode] [--indent] [--yaml] [file...]
//
// Postfmt reads the named files, or else standard input, as post markup
// and prints each post to standard output in the selected format.
// File arguments may be glob patterns, including ** for any number
// of directories. The formats are:
//
//	tokens    the tokens, as JSON
//	segments  the styled text segments, as JSON
//	tree      the markup tree, as JSON
//	html      HTML (the default)
//	text      plain text without styling
//	source    canonical markup that parses to the same segments
//	ansi      styled text for a terminal
//
// The -w flag sets the width that ansi output is wrapped to.
// By default it is the terminal width, or else $COLUMNS, or else 80.
//
// The --color flag controls whether ansi output uses escape sequences:
// auto uses them when standard output is a terminal that supports them,
// always and never force the choice.
//
// The --indent flag indents JSON output.
// The --yaml flag prints tokens, segments and trees as YAML instead of JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"pkt.systems/version"
	"rsc.io/postmark"
)

const defaultWidth = 80

var (
	formats    = []string{"tokens", "segments", "tree", "html", "text", "source", "ansi"}
	colorModes = []string{"auto", "always", "never"}
)

type options struct {
	format string
	width  int
	color  string
	indent bool
	yaml   bool
}

var exit = 0

func init() {
	version.SetDefaultModule("rsc.io/postmark")
}

func main() {
	log.SetPrefix("postfmt: ")
	log.SetFlags(0)

	var (
		opts        options
		showVersion bool
	)
	flags := newFlagSet(&opts, &showVersion)
	flags.Parse(os.Args[1:])

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if !slices.Contains(formats, opts.format) {
		log.Printf("unknown format %q", opts.format)
		flags.Usage()
		os.Exit(2)
	}
	if !slices.Contains(colorModes, opts.color) {
		log.Printf("unknown color mode %q", opts.color)
		flags.Usage()
		os.Exit(2)
	}
	opts.width = resolveWidth(opts.width)

	if flags.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		if err := convert(os.Stdout, data, opts); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, file := range expandArgs(flags.Args()) {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			if err := convert(os.Stdout, data, opts); err != nil {
				log.Printf("%s: %v", file, err)
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

// newFlagSet returns the command's flags, recording their values
// in opts and showVersion.
func newFlagSet(opts *options, showVersion *bool) *pflag.FlagSet {
	flags := pflag.NewFlagSet("postfmt", pflag.ExitOnError)
	flags.StringVarP(&opts.format, "format", "f", "html", "output format: tokens|segments|tree|html|text|source|ansi")
	flags.IntVarP(&opts.width, "width", "w", 0, "wrap ansi output at width (0 uses terminal width if available)")
	flags.StringVar(&opts.color, "color", "auto", "ansi escape sequences: auto|always|never")
	flags.BoolVar(&opts.indent, "indent", false, "indent JSON output")
	flags.BoolVar(&opts.yaml, "yaml", false, "print tokens, segments and trees as YAML")
	flags.BoolVar(showVersion, "version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "usage: postfmt [flags] [file...]\n")
		flags.PrintDefaults()
	}
	return flags
}

// convert writes the post in data to w in the format chosen by opts.
func convert(w io.Writer, data []byte, opts options) error {
	s := string(data)
	var out string
	switch opts.format {
	case "tokens":
		return encode(w, orEmpty(postmark.Tokenize(s)), opts)
	case "segments":
		return encode(w, orEmpty(postmark.Parse(s)), opts)
	case "tree":
		return encode(w, orEmpty(postmark.ParseTree(s)), opts)
	case "html":
		out = postmark.ToHTML(postmark.ParseTree(s))
	case "text":
		out = postmark.ToText(postmark.ParseTree(s))
	case "source":
		out = postmark.Format(postmark.Parse(s))
	case "ansi":
		out = newANSIRenderer(w, opts.color, opts.width).render(postmark.Parse(s))
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// encode writes v to w as JSON or YAML, as chosen by opts.
func encode(w io.Writer, v any, opts options) error {
	if opts.yaml {
		return writeYAML(w, v)
	}
	return writeJSON(w, v, opts.indent)
}

// writeJSON writes v to w as JSON, without escaping HTML characters.
func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "\t")
	}
	return enc.Encode(v)
}

// writeYAML writes v to w as block-style YAML.
// The value is encoded through its JSON form, so YAML output
// has the same fields, in the same order, as JSON output.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	blockStyle(&doc)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles that n and its
// descendants picked up from the JSON syntax.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// expandArgs expands glob patterns in args.
// An argument that is not a valid pattern or matches nothing
// is kept as is, so that reading it reports the error.
func expandArgs(args []string) []string {
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil || len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files
}

// orEmpty returns list, or an empty list if list is nil,
// so that JSON output is [] rather than null.
func orEmpty[S ~[]E, E any](list S) S {
	if list == nil {
		return S{}
	}
	return list
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
