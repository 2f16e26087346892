package main

import (
	"fmt"
	"io"
)

// usageLine is printed alone when positional arguments are missing.
const usageLine = "Usage: md2html <input.md> <output.html>"

// printUsage prints the full usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input.md> <output.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown subset to HTML, one line at a time.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -l, --list-policy <s>     List wrapping: shared (default), per-item")
	fmt.Fprintln(w, "  -s, --standalone          Wrap output in a complete HTML document")
	fmt.Fprintln(w, "      --title <s>           Standalone title (\"\" = first heading)")
	fmt.Fprintln(w, "      --css <path>          Stylesheet embedded in standalone output")
	fmt.Fprintln(w, "  -v, --verbose             Print conversion stats to stderr")
	fmt.Fprintln(w, "      --print-config        Print the resolved config and exit")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  MD2HTML_LIST_POLICY       List wrapping policy")
	fmt.Fprintln(w, "  MD2HTML_STANDALONE        true/false")
	fmt.Fprintln(w, "  MD2HTML_TITLE             Standalone title")
	fmt.Fprintln(w, "  MD2HTML_CSS               Stylesheet path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}
