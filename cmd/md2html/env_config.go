package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// envPrefix marks the variables read by md2html.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	ListPolicy string // MD2HTML_LIST_POLICY: shared, per-item
	Standalone *bool  // MD2HTML_STANDALONE: nil when unset or unparsable
	Title      string // MD2HTML_TITLE: standalone title
	CSS        string // MD2HTML_CSS: stylesheet path
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":      true,
	"MD2HTML_LIST_POLICY": true,
	"MD2HTML_STANDALONE":  true,
	"MD2HTML_TITLE":       true,
	"MD2HTML_CSS":         true,
}

// loadEnvConfig reads MD2HTML_* variables through getenv.
// An unparsable MD2HTML_STANDALONE is reported on w and ignored.
func loadEnvConfig(getenv func(string) string, w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		ListPolicy: getenv("MD2HTML_LIST_POLICY"),
		Title:      getenv("MD2HTML_TITLE"),
		CSS:        getenv("MD2HTML_CSS"),
	}

	if raw := getenv("MD2HTML_STANDALONE"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fmt.Fprintf(w, "warning: ignoring MD2HTML_STANDALONE=%q (want true or false)\n", raw)
		} else {
			cfg.Standalone = &v
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s%s\n", name, hints.ForUnknownEnvVar(knownEnvNames()))
		}
	}
}

// knownEnvNames returns knownEnvVars keys in sorted order.
func knownEnvNames() []string {
	names := make([]string, 0, len(knownEnvVars))
	for name := range knownEnvVars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// applyEnvConfig overrides config file values with set environment values.
// CLI flags are applied afterwards by mergeFlags, giving:
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ListPolicy != "" {
		cfg.Lists.Policy = env.ListPolicy
	}
	if env.Standalone != nil {
		cfg.Document.Standalone = *env.Standalone
	}
	if env.Title != "" {
		cfg.Document.Title = env.Title
	}
	if env.CSS != "" {
		cfg.Document.CSS = env.CSS
	}
}
