package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading MD2HTML_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MD2HTML_CONFIG":      "work",
		"MD2HTML_LIST_POLICY": "per-item",
		"MD2HTML_STANDALONE":  "true",
		"MD2HTML_TITLE":       "Notes",
		"MD2HTML_CSS":         "site.css",
	}
	var warn bytes.Buffer
	got := loadEnvConfig(func(k string) string { return vars[k] }, &warn)

	if got.ConfigPath != "work" {
		t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, "work")
	}
	if got.ListPolicy != "per-item" {
		t.Errorf("ListPolicy = %q, want %q", got.ListPolicy, "per-item")
	}
	if got.Standalone == nil || !*got.Standalone {
		t.Errorf("Standalone = %v, want true", got.Standalone)
	}
	if got.Title != "Notes" {
		t.Errorf("Title = %q, want %q", got.Title, "Notes")
	}
	if got.CSS != "site.css" {
		t.Errorf("CSS = %q, want %q", got.CSS, "site.css")
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warning: %q", warn.String())
	}
}

func TestLoadEnvConfig_Standalone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		want     *bool
		wantWarn bool
	}{
		{raw: ""},
		{raw: "1", want: ptr(true)},
		{raw: "false", want: ptr(false)},
		{raw: "yes", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			var warn bytes.Buffer
			got := loadEnvConfig(func(k string) string {
				if k == "MD2HTML_STANDALONE" {
					return tt.raw
				}
				return ""
			}, &warn)

			switch {
			case tt.want == nil && got.Standalone != nil:
				t.Errorf("Standalone = %v, want nil", *got.Standalone)
			case tt.want != nil && (got.Standalone == nil || *got.Standalone != *tt.want):
				t.Errorf("Standalone = %v, want %v", got.Standalone, *tt.want)
			}
			if gotWarn := warn.Len() > 0; gotWarn != tt.wantWarn {
				t.Errorf("warning = %q, wantWarn %v", warn.String(), tt.wantWarn)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var w bytes.Buffer
	warnUnknownEnvVars([]string{
		"HOME=/root",
		"MD2HTML_TITLE=ok",
		"MD2HTML_TILTE=typo",
		"MD2HTMLX=not ours",
	}, &w)

	out := w.String()
	if !strings.Contains(out, "unknown environment variable MD2HTML_TILTE") {
		t.Errorf("missing warning for MD2HTML_TILTE: %q", out)
	}
	if strings.Contains(out, "MD2HTML_TITLE=") || strings.Contains(out, "variable MD2HTML_TITLE") {
		t.Errorf("known variable reported: %q", out)
	}
	if strings.Contains(out, "MD2HTMLX") {
		t.Errorf("unprefixed variable reported: %q", out)
	}
	if !strings.Contains(out, "hint: known: MD2HTML_CONFIG, MD2HTML_CSS, MD2HTML_LIST_POLICY, MD2HTML_STANDALONE, MD2HTML_TITLE") {
		t.Errorf("missing hint: %q", out)
	}
	if n := strings.Count(out, "warning:"); n != 1 {
		t.Errorf("warning count = %d, want 1", n)
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfig - Priority: flags > env > file > defaults
// ---------------------------------------------------------------------------

func TestResolveConfig_Priority(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeInput(t, dir, "md2html.yaml",
		"lists:\n  policy: per-item\ndocument:\n  standalone: true\n  title: From file\n")

	tests := []struct {
		name           string
		vars           map[string]string
		flags          cliFlags
		wantPolicy     string
		wantStandalone bool
		wantTitle      string
	}{
		{
			name:           "file only",
			flags:          cliFlags{config: cfgPath},
			wantPolicy:     config.PolicyPerItem,
			wantStandalone: true,
			wantTitle:      "From file",
		},
		{
			name:           "config path from env",
			vars:           map[string]string{"MD2HTML_CONFIG": cfgPath},
			wantPolicy:     config.PolicyPerItem,
			wantStandalone: true,
			wantTitle:      "From file",
		},
		{
			name: "env over file",
			vars: map[string]string{
				"MD2HTML_LIST_POLICY": "shared",
				"MD2HTML_STANDALONE":  "false",
				"MD2HTML_TITLE":       "From env",
			},
			flags:      cliFlags{config: cfgPath},
			wantPolicy: config.PolicyShared,
			wantTitle:  "From env",
		},
		{
			name: "flags over env",
			vars: map[string]string{
				"MD2HTML_LIST_POLICY": "shared",
				"MD2HTML_STANDALONE":  "false",
				"MD2HTML_TITLE":       "From env",
			},
			flags: cliFlags{
				config:        cfgPath,
				listPolicy:    "per-item",
				standalone:    true,
				setStandalone: true,
				title:         "From flag",
			},
			wantPolicy:     config.PolicyPerItem,
			wantStandalone: true,
			wantTitle:      "From flag",
		},
		{
			name:  "explicit false flag over file",
			flags: cliFlags{config: cfgPath, setStandalone: true},
			// standalone stays false because the flag was given explicitly
			wantPolicy: config.PolicyPerItem,
			wantTitle:  "From file",
		},
		{
			name:       "defaults",
			wantPolicy: config.PolicyShared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.vars)
			flags := tt.flags
			cfg, err := resolveConfig(&flags, env.Environment)
			if err != nil {
				t.Fatalf("resolveConfig() unexpected error: %v", err)
			}
			if cfg.Lists.Policy != tt.wantPolicy {
				t.Errorf("Lists.Policy = %q, want %q", cfg.Lists.Policy, tt.wantPolicy)
			}
			if cfg.Document.Standalone != tt.wantStandalone {
				t.Errorf("Document.Standalone = %v, want %v", cfg.Document.Standalone, tt.wantStandalone)
			}
			if cfg.Document.Title != tt.wantTitle {
				t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, tt.wantTitle)
			}
		})
	}
}

func TestResolveConfig_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	env := newTestEnv(nil)
	_, err := resolveConfig(&cliFlags{config: path}, env.Environment)

	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), "hint: use --config") {
		t.Errorf("error = %q, want config hint", err)
	}
}

func TestResolveConfig_InvalidEnvPolicy(t *testing.T) {
	t.Parallel()

	env := newTestEnv(map[string]string{"MD2HTML_LIST_POLICY": "nested"})
	_, err := resolveConfig(&cliFlags{}, env.Environment)

	if err == nil {
		t.Fatal("expected error for invalid policy")
	}
	if !strings.Contains(err.Error(), "available: shared, per-item") {
		t.Errorf("error = %q, want policy hint", err)
	}
}
