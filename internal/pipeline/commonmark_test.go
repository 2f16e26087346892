package pipeline

// Notes:
// - The dialect diverges from CommonMark on purpose ("* " is an ordered list,
//   "**" renders <b>, "__" renders <em>, 7+ hashes clamp to h6). These tests
//   only cover the overlap: ATX headings 1-6, single-line paragraphs separated
//   by blank lines, and tight "- " lists under the shared policy.

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// renderCommonMark renders doc with a stock goldmark and splits the result
// into lines.
func renderCommonMark(t *testing.T, doc string) []string {
	t.Helper()

	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(doc), &buf); err != nil {
		t.Fatalf("goldmark Convert() unexpected error: %v", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestConvertLines_AgreesWithCommonMark(t *testing.T) {
	t.Parallel()

	docs := []struct {
		name string
		doc  string
	}{
		{name: "h1", doc: "# Title\n"},
		{name: "all heading levels", doc: "# a\n## b\n### c\n#### d\n##### e\n###### f\n"},
		{name: "heading trailing spaces", doc: "## Spaced   \n"},
		{name: "paragraph", doc: "hello world\n"},
		{name: "hash without space is text", doc: "#hashtag\n"},
		{name: "paragraphs separated by blank lines", doc: "one\n\ntwo\n\nthree\n"},
		{name: "tight list", doc: "- a\n- b\n- c\n"},
		{name: "list then paragraph", doc: "- a\n- b\n\nafter\n"},
		{name: "mixed document", doc: "# Doc\n\nintro text\n\n- x\n- y\n\n## Next\n\nclosing\n"},
	}

	for _, tt := range docs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ConvertLines(lines(tt.doc), ListShared)
			if err != nil {
				t.Fatalf("ConvertLines() unexpected error: %v", err)
			}
			want := renderCommonMark(t, tt.doc)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("output differs from goldmark (-goldmark +ours):\n%s", diff)
			}
		})
	}
}

// assertBalanced tokenizes fragment and fails if any end tag does not close
// the most recent open element, or if elements are left open.
func assertBalanced(t *testing.T, fragment string) {
	t.Helper()

	var stack []string
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			if len(stack) != 0 {
				t.Errorf("unclosed elements %v in:\n%s", stack, fragment)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Fatalf("unexpected </%s> with open elements %v in:\n%s", name, stack, fragment)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func TestConvertLines_Balanced(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"# Heading",
		"- a",
		"* b",
		"* c",
		"- d",
		"",
		"text with **bold** and __em__ and [[hash]] and ((cut))",
		"- e",
		"####### clamped",
		"* f",
	}, "\n")

	for _, policy := range []ListPolicy{ListShared, ListPerItem} {
		t.Run(string(policy), func(t *testing.T) {
			t.Parallel()

			out, err := ConvertLines(lines(doc), policy)
			if err != nil {
				t.Fatalf("ConvertLines() unexpected error: %v", err)
			}
			assertBalanced(t, strings.Join(out, "\n"))
		})
	}
}
