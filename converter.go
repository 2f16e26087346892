package md2html

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Standalone document skeleton. The body is the fragment stream, one
// fragment per line.
const (
	documentHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
`
	documentFooter = `</body>
</html>
`
)

// Converter converts documents with a fixed configuration.
// Create with NewConverter. A Converter keeps no state between calls and is
// safe for concurrent use; each call gets its own list state.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with default configuration (shared list
// policy, fragment output). Returns ErrInvalidListPolicy if WithListPolicy
// named an unknown policy.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{policy: ListShared},
	}

	for _, opt := range opts {
		opt(c)
	}

	policy, err := ParseListPolicy(string(c.cfg.policy))
	if err != nil {
		return nil, err
	}
	c.cfg.policy = policy

	return c, nil
}

// Convert reads r line by line and writes each produced fragment to w,
// followed by a single "\n". Lists still open at end of input are closed.
// Read failures wrap ErrReadInput, write failures wrap ErrWriteOutput.
func (c *Converter) Convert(r io.Reader, w io.Writer) (*Stats, error) {
	d, err := pipeline.NewDriver(c.cfg.policy)
	if err != nil {
		return nil, err
	}

	if !c.cfg.standalone {
		return stream(d, r, w)
	}

	// The title may come from the first heading, so buffer the body.
	var body bytes.Buffer
	stats, err := stream(d, r, &body)
	if err != nil {
		return nil, err
	}
	if err := c.writeDocument(w, body.Bytes(), stats.Title); err != nil {
		return nil, err
	}
	return stats, nil
}

// ConvertString converts an in-memory document.
func (c *Converter) ConvertString(markdown string) (string, error) {
	var b strings.Builder
	if _, err := c.Convert(strings.NewReader(markdown), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// stream feeds every line of r to d and writes the result to w.
func stream(d *pipeline.Driver, r io.Reader, w io.Writer) (*Stats, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			if err := writeLines(bw, d.Feed(line)); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, readErr)
		}
	}

	if err := writeLines(bw, d.Finish()); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	stats := d.Stats()
	return &stats, nil
}

// writeLines writes each line followed by "\n".
func writeLines(w *bufio.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}

// writeDocument wraps body in the standalone skeleton.
// Title priority: WithTitle > first heading > DefaultTitle.
func (c *Converter) writeDocument(w io.Writer, body []byte, headingTitle string) error {
	title := c.cfg.title
	if title == "" {
		title = headingTitle
	}
	if title == "" {
		title = DefaultTitle
	}

	if _, err := fmt.Fprintf(w, documentHeader, html.EscapeString(title), styleBlock(c.cfg.stylesheet)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := io.WriteString(w, documentFooter); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// styleBlock wraps css in a <style> element on its own line.
// "</" is escaped so the stylesheet cannot close the element early.
func styleBlock(css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	css = strings.TrimRight(css, "\r\n")
	return "<style>\n" + strings.ReplaceAll(css, "</", `<\/`) + "\n</style>\n"
}
