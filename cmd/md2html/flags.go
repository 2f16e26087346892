package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config        string
	listPolicy    string
	standalone    bool
	setStandalone bool // --standalone given explicitly, even as =false
	title         string
	css           string
	verbose       bool
	version       bool
	printConfig   bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Returns flag.ErrHelp for -h/--help.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.listPolicy, "list-policy", "l", "", "list wrapping: shared, per-item")
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a complete HTML document")
	fs.StringVar(&f.title, "title", "", "standalone document title (\"\" = first heading)")
	fs.StringVar(&f.css, "css", "", "stylesheet file embedded in standalone output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print conversion stats")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the resolved config as YAML and exit")

	// Usage and errors are reported by runMain.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.setStandalone = fs.Changed("standalone")

	return f, fs.Args(), nil
}
