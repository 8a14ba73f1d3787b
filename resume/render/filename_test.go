package render

import "testing"

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"Jane Doe":      "Jane Doe.html",
		"":              "resume.html",
		"   ":           "resume.html",
		"../../secrets": "resume.html",
		".hidden":       "resume.html",
		"a/b":           "a_b.html",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Fatalf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
