// Package config loads the calgrid configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// MinDate and MaxDate bound navigation (YYYY-MM-DD). Empty means the
	// calendar defaults (1900-01-01 and 2200-01-01).
	MinDate string `yaml:"minDate,omitempty" json:"minDate,omitempty"`
	MaxDate string `yaml:"maxDate,omitempty" json:"maxDate,omitempty"`

	RangePicker              bool `yaml:"rangePicker,omitempty" json:"rangePicker"`
	OnlyShowCurrentMonthDays bool `yaml:"onlyShowCurrentMonthDays,omitempty" json:"onlyShowCurrentMonthDays"`
	HideLastFadedRow         bool `yaml:"hideLastFadedRow,omitempty" json:"hideLastFadedRow"`

	// HighlightToday defaults to true when unset.
	HighlightToday  *bool `yaml:"highlightToday,omitempty" json:"highlightToday,omitempty"`
	ShortWeekLabels bool  `yaml:"shortWeekLabels,omitempty" json:"shortWeekLabels"`

	// Locale is a BCP 47 tag used for digits (e.g. "en", "fa").
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`

	TUI *TUIConfig `yaml:"tui,omitempty" json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `yaml:"glyphs,omitempty" json:"glyphs,omitempty"`
	// Theme forces "light" or "dark"; empty follows the terminal.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Highlight reports whether the active date should be highlighted.
func (c *Config) Highlight() bool {
	return c.HighlightToday == nil || *c.HighlightToday
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.calgrid).
	if v := strings.TrimSpace(os.Getenv("CALGRID_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calgrid"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file from Dir. A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields an empty Config.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML config. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Comments only.
			return &cfg, nil
		}
		return nil, errorWithSource(data, err)
	}
	return &cfg, nil
}

var yamlLineRE = regexp.MustCompile(`line (\d+):\s*(.*)`)

// errorWithSource quotes the offending source line next to each yaml error
// message.
func errorWithSource(data []byte, err error) error {
	lines := bytes.Split(data, []byte{'\n'})
	var msgs []string
	var terr *yaml.TypeError
	if errors.As(err, &terr) {
		msgs = terr.Errors
	} else {
		msgs = []string{err.Error()}
	}
	out := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		m := yamlLineRE.FindStringSubmatchIndex(msg)
		if m == nil {
			out = append(out, msg)
			continue
		}
		l, perr := strconv.Atoi(msg[m[2]:m[3]])
		if perr != nil || l < 1 || l > len(lines) {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%sline %d: %q: %s", msg[:m[0]], l, lines[l-1], msg[m[4]:m[5]]))
	}
	return errors.New(strings.Join(out, "\n"))
}
