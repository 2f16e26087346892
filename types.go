package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// ListPolicy selects how list items are wrapped in list containers.
type ListPolicy = pipeline.ListPolicy

// List policies.
const (
	ListShared  = pipeline.ListShared
	ListPerItem = pipeline.ListPerItem
)

// ParseListPolicy resolves a policy name case-insensitively. An empty name
// selects ListShared.
func ParseListPolicy(name string) (ListPolicy, error) {
	return pipeline.ParseListPolicy(name)
}

// ListPolicies returns the recognized policy names.
func ListPolicies() []string {
	return pipeline.ListPolicies()
}

// Stats summarizes one conversion.
type Stats = pipeline.Stats

// DefaultTitle is the standalone document title used when neither WithTitle
// nor a heading provides one.
const DefaultTitle = "Document"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	policy     ListPolicy
	standalone bool
	title      string
	stylesheet string
}

// WithListPolicy sets the list wrapping policy. Invalid names are reported by
// NewConverter.
func WithListPolicy(p ListPolicy) Option {
	return func(c *Converter) {
		c.cfg.policy = p
	}
}

// WithStandalone wraps the output in a complete HTML5 document.
func WithStandalone(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.standalone = enabled
	}
}

// WithTitle sets the <title> of standalone documents.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithStylesheet embeds css in a <style> block in the <head> of standalone
// documents. It has no effect on fragment output.
func WithStylesheet(css string) Option {
	return func(c *Converter) {
		c.cfg.stylesheet = css
	}
}
