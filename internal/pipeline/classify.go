package pipeline

import "strings"

// LineKind identifies the construct a line was classified as.
type LineKind int

// Line kinds, in classification order.
const (
	KindBlank LineKind = iota
	KindHeading
	KindUnorderedItem
	KindOrderedItem
	KindParagraph
)

// String returns the kind name used in diagnostics and tests.
func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindUnorderedItem:
		return "unordered-item"
	case KindOrderedItem:
		return "ordered-item"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// MaxHeadingLevel caps the heading level; extra '#' characters are absorbed
// by the marker.
const MaxHeadingLevel = 6

// Line markers recognized at the very start of a line.
const (
	headingMarker   = '#'
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// Line is the classification of one input line.
type Line struct {
	Kind    LineKind
	Level   int    // heading level (1-6), zero for other kinds
	Content string // text after the marker, trimmed; inline spans not yet applied
}

// ClassifyLine maps one raw input line to its Line. The trailing line break
// (LF or CRLF) may be present. First match wins: heading, unordered item,
// ordered item, paragraph. A line that is empty after trimming is KindBlank.
func ClassifyLine(raw string) Line {
	line := trimLineBreak(raw)

	if level, content, ok := parseHeading(line); ok {
		return Line{Kind: KindHeading, Level: level, Content: content}
	}
	if strings.HasPrefix(line, unorderedMarker) {
		return Line{Kind: KindUnorderedItem, Content: strings.TrimSpace(line[len(unorderedMarker):])}
	}
	if strings.HasPrefix(line, orderedMarker) {
		return Line{Kind: KindOrderedItem, Content: strings.TrimSpace(line[len(orderedMarker):])}
	}

	text := strings.TrimSpace(line)
	if text == "" {
		return Line{Kind: KindBlank}
	}
	return Line{Kind: KindParagraph, Content: text}
}

// parseHeading recognizes "#{n} content". The run of '#' must be followed by
// a space and non-empty content; otherwise the line is not a heading.
func parseHeading(line string) (level int, content string, ok bool) {
	n := 0
	for n < len(line) && line[n] == headingMarker {
		n++
	}
	if n == 0 || n == len(line) || line[n] != ' ' {
		return 0, "", false
	}

	content = strings.TrimSpace(line[n+1:])
	if content == "" {
		return 0, "", false
	}
	return min(n, MaxHeadingLevel), content, true
}

// trimLineBreak removes one trailing "\n" or "\r\n".
func trimLineBreak(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// RenderLine returns the HTML fragment for a classified line. List items
// render as a bare <li>; wrapping them in a list container is the Driver's
// job. Blank lines render as "".
func RenderLine(l Line) string {
	switch l.Kind {
	case KindHeading:
		tag := headingTag(l.Level)
		return "<" + tag + ">" + l.Content + "</" + tag + ">"
	case KindUnorderedItem, KindOrderedItem:
		return "<li>" + l.Content + "</li>"
	case KindParagraph:
		return "<p>" + ApplyInline(l.Content) + "</p>"
	default:
		return ""
	}
}

func headingTag(level int) string {
	return "h" + string(rune('0'+level))
}
