// Package md2html converts a small line-oriented Markdown dialect to HTML.
//
// # Quick Start
//
// Create a converter and stream a document through it:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := conv.Convert(in, out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Fragments, "lines written")
//
// For small inputs ConvertString returns the HTML directly.
//
// # Dialect
//
// Each input line becomes at most one HTML fragment, written on its own line:
//
//	# Title           <h1>Title</h1>        (1-6 hashes, more clamp to h6)
//	- item            <li>item</li>         (inside <ul>)
//	* item            <li>item</li>         (inside <ol>)
//	text              <p>text</p>
//	(blank)           nothing
//
// Paragraph text also gets inline spans, applied in this order:
//
//	**text**          <b>text</b>
//	__text__          <em>text</em>
//	[[text]]          lowercase hex MD5 of text
//	((text))          text without any 'c' or 'C'
//
// Input is not HTML-escaped.
//
// # List Policies
//
// ListShared (the default) wraps each run of consecutive items in one
// container. ListPerItem wraps every item in its own container:
//
//	conv, err := md2html.NewConverter(md2html.WithListPolicy(md2html.ListPerItem))
//
// # Standalone Documents
//
// WithStandalone wraps the fragments in an HTML5 skeleton. The title comes
// from WithTitle, else the first heading, else "Document". WithStylesheet
// embeds CSS in the document head.
package md2html
