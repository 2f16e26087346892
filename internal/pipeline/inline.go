package pipeline

import (
	"crypto/md5" // #nosec G501 -- the digest is an output format, not a security control
	"encoding/hex"
	"strings"
)

// Span describes one delimited inline construct and the transform applied to
// the text between its delimiters.
type Span struct {
	Name      string
	Open      string
	Close     string
	Transform func(content string) string
}

// InlineSpans lists the inline constructs in the order they are applied.
// Each pass works on the output of the previous one.
var InlineSpans = []Span{
	{Name: "bold", Open: "**", Close: "**", Transform: wrapTag("b")},
	{Name: "emphasis", Open: "__", Close: "__", Transform: wrapTag("em")},
	{Name: "md5", Open: "[[", Close: "]]", Transform: MD5Hex},
	{Name: "strip-c", Open: "((", Close: "))", Transform: StripC},
}

// SpanMatch is one located span. Start and End cover the delimiters;
// Content is the text between them.
type SpanMatch struct {
	Start   int
	End     int
	Content string
}

// ApplyInline runs every span in InlineSpans over text, in order.
func ApplyInline(text string) string {
	for _, s := range InlineSpans {
		text = ReplaceSpans(text, s)
	}
	return text
}

// FindSpans locates the non-overlapping spans delimited by openDelim and
// closeDelim, scanning left to right. Matching is non-greedy: a span ends at
// the first closing delimiter after at least one content byte.
func FindSpans(text, openDelim, closeDelim string) []SpanMatch {
	var matches []SpanMatch

	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], openDelim)
		if i < 0 {
			break
		}
		start := pos + i
		inner := start + len(openDelim)
		if inner >= len(text) {
			break
		}

		// No close after this opener means none after any later opener either.
		j := strings.Index(text[inner+1:], closeDelim)
		if j < 0 {
			break
		}
		stop := inner + 1 + j

		matches = append(matches, SpanMatch{
			Start:   start,
			End:     stop + len(closeDelim),
			Content: text[inner:stop],
		})
		pos = stop + len(closeDelim)
	}

	return matches
}

// ReplaceSpans rebuilds text with every span of s replaced by its transform.
func ReplaceSpans(text string, s Span) string {
	matches := FindSpans(text, s.Open, s.Close)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(s.Transform(m.Content))
		last = m.End
	}
	b.WriteString(text[last:])

	return b.String()
}

// MD5Hex returns the lowercase hexadecimal MD5 digest of the UTF-8 bytes of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401 -- see import
	return hex.EncodeToString(sum[:])
}

// StripC removes every 'c' and 'C' from s.
func StripC(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, s)
}

func wrapTag(tag string) func(string) string {
	return func(content string) string {
		return "<" + tag + ">" + content + "</" + tag + ">"
	}
}
