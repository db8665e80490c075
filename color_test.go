// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postmark

import "testing"

var colorTests = []struct {
	in  string
	ok  bool
	rgb string
}{
	{"", false, ""},
	{"red", true, "#ff0000"},
	{"RED", true, "#ff0000"},
	{"DarkSlateGray", true, "#2f4f4f"},
	{"rebeccapurple", true, "#663399"},
	{"Khaki", true, "#f0e68c"},
	{"\u212Ahaki", true, "#f0e68c"}, // KELVIN SIGN folds to k
	{"redd", false, ""},
	{"re d", false, ""},
	{"#ABC", true, "#aabbcc"},
	{"#abcd", true, "#aabbcc"},
	{"#A0B1C2", true, "#a0b1c2"},
	{"#a0b1c2ff", true, "#a0b1c2"},
	{"#", false, ""},
	{"#ab", false, ""},
	{"#abcde", false, ""},
	{"#abcdefa", false, ""},
	{"#abcdefabc", false, ""},
	{"#ggg", false, ""},
	{"abc", false, ""},
}

func TestIsColor(t *testing.T) {
	for _, tt := range colorTests {
		if ok := isColor(tt.in); ok != tt.ok {
			t.Errorf("isColor(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestColorRGB(t *testing.T) {
	for _, tt := range colorTests {
		rgb, ok := ColorRGB(tt.in)
		if ok != tt.ok || rgb != tt.rgb {
			t.Errorf("ColorRGB(%q) = %q, %v, want %q, %v", tt.in, rgb, ok, tt.rgb, tt.ok)
		}
	}
}

func TestNamedColors(t *testing.T) {
	if len(namedColors) != 148 {
		t.Errorf("len(namedColors) = %d, want 148", len(namedColors))
	}
	for name, rgb := range namedColors {
		if foldColor(name) != name {
			t.Errorf("color name %q is not folded", name)
		}
		if len(rgb) != 7 || !isHexColor(rgb[1:]) {
			t.Errorf("color %q has bad value %q", name, rgb)
		}
	}
}
