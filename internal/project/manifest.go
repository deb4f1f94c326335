package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"keylint/internal/keyorder"
)

// ManifestName — имя файла конфигурации проекта.
const ManifestName = "keylint.toml"

var (
	// ErrBadOrderValue indicates an order value other than "asc"/"desc".
	ErrBadOrderValue = errors.New("order must be \"asc\" or \"desc\"")
	// ErrBadMinKeys indicates min_keys below the minimum of 2.
	ErrBadMinKeys = errors.New("min_keys must be at least 2")
)

// CheckConfig mirrors the [check] section of keylint.toml.
type CheckConfig struct {
	Order                    string `toml:"order"`
	CaseSensitive            bool   `toml:"case_sensitive"`
	Natural                  bool   `toml:"natural"`
	AllowLineSeparatedGroups bool   `toml:"allow_line_separated_groups"`
	IgnoreComputedKeys       bool   `toml:"ignore_computed_keys"`
	MinKeys                  int    `toml:"min_keys"`
}

// Config is the parsed project manifest.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// DefaultConfig returns the documented defaults: ascending,
// case-sensitive, lexicographic, min_keys = 2.
func DefaultConfig() Config {
	return Config{Check: CheckConfig{
		Order:         "asc",
		CaseSensitive: true,
		MinKeys:       2,
	}}
}

// Load parses and validates a keylint.toml manifest. Keys absent from
// the file keep their defaults; meta.IsDefined отличает "не задано" от
// нулевого значения.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("check", "order") {
		cfg.Check.Order = strings.TrimSpace(raw.Check.Order)
	}
	if meta.IsDefined("check", "case_sensitive") {
		cfg.Check.CaseSensitive = raw.Check.CaseSensitive
	}
	if meta.IsDefined("check", "natural") {
		cfg.Check.Natural = raw.Check.Natural
	}
	if meta.IsDefined("check", "allow_line_separated_groups") {
		cfg.Check.AllowLineSeparatedGroups = raw.Check.AllowLineSeparatedGroups
	}
	if meta.IsDefined("check", "ignore_computed_keys") {
		cfg.Check.IgnoreComputedKeys = raw.Check.IgnoreComputedKeys
	}
	if meta.IsDefined("check", "min_keys") {
		cfg.Check.MinKeys = raw.Check.MinKeys
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, ok := keyorder.ParseDirection(c.Check.Order); !ok {
		return fmt.Errorf("invalid order value %q: %w", c.Check.Order, ErrBadOrderValue)
	}
	if c.Check.MinKeys < 2 {
		return fmt.Errorf("invalid min_keys %d: %w", c.Check.MinKeys, ErrBadMinKeys)
	}
	return nil
}

// ToOptions translates the manifest into analyzer options.
func (c Config) ToOptions() keyorder.Options {
	dir, _ := keyorder.ParseDirection(c.Check.Order)
	return keyorder.Options{
		Mode: keyorder.Mode{
			Direction:     dir,
			CaseSensitive: c.Check.CaseSensitive,
			Natural:       c.Check.Natural,
		},
		AllowLineSeparatedGroups: c.Check.AllowLineSeparatedGroups,
		IgnoreComputedKeys:       c.Check.IgnoreComputedKeys,
		MinKeys:                  c.Check.MinKeys,
	}
}

// DefaultManifest — содержимое, которое пишет `keylint init`.
const DefaultManifest = `[check]
order = "asc"
case_sensitive = true
natural = false
allow_line_separated_groups = false
ignore_computed_keys = false
min_keys = 2
`
