package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when no config file exists at a searched location.
var ErrNoConfig = errors.New("no config file")

// LocalNames are searched in order in the working directory.
var LocalNames = []string{".installguard.yml", ".installguard.yaml", "installguard.yml", "installguard.yaml"}

// Formats accepted by the format key and the output flags.
var Formats = []string{"text", "table", "json", "sarif"}

// FileConfig is the on-disk YAML configuration shape for InstallGuard.
// Every field is optional; nil means "not set here".
type FileConfig struct {
	Format    *string `yaml:"format"`
	NoColor   *bool   `yaml:"no_color"`
	FailOn    *string `yaml:"fail_on"`
	Disable   *string `yaml:"disable"`
	Samples   *int    `yaml:"samples"`
	Highlight *bool   `yaml:"highlight"`
	Baseline  *string `yaml:"baseline"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that have a closed set of choices.
func (fc FileConfig) Validate() error {
	if fc.Format != nil && *fc.Format != "" {
		ok := false
		for _, f := range Formats {
			if strings.EqualFold(*fc.Format, f) {
				ok = true
			}
		}
		if !ok {
			return fmt.Errorf("unknown format %q", *fc.Format)
		}
	}
	if fc.Samples != nil && *fc.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", *fc.Samples)
	}
	return nil
}

// DisabledIDs splits the comma-separated disable list.
func (fc FileConfig) DisabledIDs() []string {
	if fc.Disable == nil {
		return nil
	}
	return SplitList(*fc.Disable)
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadLocal searches dir for a local config file.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, ErrNoConfig
}

// GlobalPath is $XDG_CONFIG_HOME/installguard/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(base, "installguard", "config.yml"), nil
}

// LoadGlobal loads the per-user config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, ErrNoConfig
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, ErrNoConfig
}

// Starter is the commented template written by "config init".
const Starter = `# InstallGuard configuration
# Output format: text | table | json | sarif
format: text
# Disable ANSI colors in text output
no_color: false
# Exit with status 1 when the verdict reaches: dangerous | caution | warning | never
fail_on: dangerous
# Comma-separated rule IDs or keywords to skip
disable: ""
# Findings listed per tier in the text report
samples: 3
# Syntax-highlight finding previews
highlight: false
# Accepted findings file; empty disables baseline filtering
baseline: ""
`
