// Package pipeline implements the line-oriented Markdown-to-HTML conversion.
//
// The conversion has two stages:
//   - Line classification: each input line is mapped to a heading, a list
//     item, a paragraph, or nothing (blank). Paragraph text is run through
//     the inline span transforms (bold, emphasis, MD5 digest, strip-c).
//   - Block driving: a Driver walks the lines in order and owns the list
//     state, emitting <ul>/<ol> open and close tags at block boundaries
//     according to a ListPolicy.
//
// Nothing in this package performs I/O. Reading lines and writing fragments
// is handled by the root md2html package.
package pipeline
