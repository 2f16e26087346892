package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("input and output paths are required")
	ErrMissingInput = errors.New("input file not found")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrReadCSS      = errors.New("failed to read CSS file")

	errIsDirectory = errors.New("is a directory")
)

// filePermissions is the mode of written HTML files (rw-r--r--).
const filePermissions = 0o644

// inputError reports an input path that cannot be opened as a file.
type inputError struct {
	path string
	err  error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrMissingInput, e.path, e.err)
}

func (e *inputError) Unwrap() []error {
	return []error{ErrMissingInput, e.err}
}

// runMain runs the CLI with args (program name first) and returns the exit code.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, positional, err := parseFlags(rest)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, usageLine)
		return ExitFailure
	}

	switch {
	case flags.version:
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case flags.printConfig:
		err = runPrintConfig(flags, env)
	default:
		err = runConvert(positional, flags, env)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, diagnostic(err))
		return ExitFailure
	}
	return ExitSuccess
}

// diagnostic renders err as the single stderr message for the user.
func diagnostic(err error) string {
	var inErr *inputError
	switch {
	case errors.Is(err, ErrUsage):
		return usageLine
	case errors.As(err, &inErr):
		return "Missing " + inErr.path
	default:
		return err.Error()
	}
}

// runConvert converts positional[0] into positional[1].
// The output file is only created once the whole conversion has succeeded.
func runConvert(positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) < 2 {
		return ErrUsage
	}
	inputPath, outputPath := positional[0], positional[1]

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	css, err := readStylesheet(cfg, env)
	if err != nil {
		return err
	}

	conv, err := md2html.NewConverter(append(converterOptions(cfg), md2html.WithStylesheet(css))...)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForListPolicy(md2html.ListPolicies()))
	}

	start := env.Now()
	var stats *md2html.Stats
	err = fileutil.WriteFileAtomic(outputPath, filePermissions, func(w io.Writer) error {
		var convErr error
		stats, convErr = conv.Convert(in, w)
		return convErr
	})
	if err != nil {
		if errors.Is(err, md2html.ErrReadInput) {
			return fmt.Errorf("%s: %w", inputPath, err)
		}
		return fmt.Errorf("%w: %s: %v%s", ErrWriteHTML, outputPath, err, hints.ForOutputDirectory())
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "%s -> %s: %d lines, %d fragments, %d lists (%v)\n",
			inputPath, outputPath, stats.Lines, stats.Fragments, stats.Lists,
			env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// runPrintConfig writes the resolved configuration as YAML to Stdout.
func runPrintConfig(flags *cliFlags, env *Environment) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// openInput opens path for reading. Anything that is not a readable regular
// file is reported as an inputError.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, &inputError{path: path, err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &inputError{path: path, err: err}
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &inputError{path: path, err: errIsDirectory}
	}

	return f, nil
}

// resolveConfig builds the effective configuration:
// flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), env.Stderr)
	envCfg := loadEnvConfig(env.Getenv, env.Stderr)

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if !fileutil.IsFilePath(name) {
					searched = config.SearchPaths(name)
				}
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidValue) {
			return nil, fmt.Errorf("%w%s", err, hints.ForListPolicy(md2html.ListPolicies()))
		}
		return nil, err
	}

	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.listPolicy != "" {
		cfg.Lists.Policy = flags.listPolicy
	}
	if flags.setStandalone {
		cfg.Document.Standalone = flags.standalone
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.css != "" {
		cfg.Document.CSS = flags.css
	}
}

// readStylesheet loads document.css. A stylesheet without standalone output
// is reported on Stderr and not read.
func readStylesheet(cfg *config.Config, env *Environment) (string, error) {
	path := cfg.Document.CSS
	if path == "" {
		return "", nil
	}
	if !cfg.Document.Standalone {
		fmt.Fprintf(env.Stderr, "warning: ignoring stylesheet %s without --standalone\n", path)
		return "", nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- stylesheet path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// converterOptions maps a validated config to library options.
func converterOptions(cfg *config.Config) []md2html.Option {
	return []md2html.Option{
		md2html.WithListPolicy(md2html.ListPolicy(cfg.Lists.Policy)),
		md2html.WithStandalone(cfg.Document.Standalone),
		md2html.WithTitle(cfg.Document.Title),
	}
}
