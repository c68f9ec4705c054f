// Package config loads the run configuration of column-mover from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"column-mover/internal/batch"
	"column-mover/internal/csvio"
	"column-mover/internal/mapping"
)

// Log formats accepted in [log].format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the complete run configuration.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`
	Mapping MappingConfig `toml:"mapping"`
	Log     LogConfig     `toml:"log"`
	// Pause waits for ENTER before the program exits.
	Pause bool `toml:"pause"`
}

// InputConfig selects and decodes input files.
type InputConfig struct {
	Pattern   string   `toml:"pattern"`
	Delimiter string   `toml:"delimiter"`
	Encoding  string   `toml:"encoding"`
	Exclude   []string `toml:"exclude"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Policy string `toml:"policy"`
}

// MappingConfig chooses the mapping table.
type MappingConfig struct {
	// File is a YAML mapping table. The built-in table is used when empty.
	File            string `toml:"file"`
	IntegerReadings bool   `toml:"integer_readings"`
	ISODates        bool   `toml:"iso_dates"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(string(data))
}

// Parse decodes a TOML document and applies defaults for missing keys.
// Unknown keys are rejected.
func Parse(data string) (*Config, error) {
	var cfg Config

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	defaults := batch.DefaultOptions()

	if c.Input.Pattern == "" {
		c.Input.Pattern = defaults.Pattern
	}
	if c.Input.Delimiter == "" {
		c.Input.Delimiter = string(defaults.Delimiter)
	}
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaults.Encoding
	}
	if c.Output.Dir == "" {
		c.Output.Dir = defaults.OutputDir
	}
	if c.Output.Policy == "" {
		c.Output.Policy = defaults.Policy.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = logrus.InfoLevel.String()
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

func (c *Config) expandEnvVars() {
	c.Input.Pattern = os.ExpandEnv(c.Input.Pattern)
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
	c.Mapping.File = os.ExpandEnv(c.Mapping.File)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Delimiter(); err != nil {
		errs = append(errs, err)
	}

	if _, err := csvio.LookupEncoding(c.Input.Encoding); err != nil {
		errs = append(errs, err)
	}

	if _, err := batch.ParsePolicy(c.Output.Policy); err != nil {
		errs = append(errs, err)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if _, err := c.BatchOptions(); err != nil && len(errs) == 0 {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Delimiter returns the single-rune field delimiter.
func (c *Config) Delimiter() (rune, error) {
	d := c.Input.Delimiter
	if d == `\t` {
		d = "\t"
	}

	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) {
		return 0, fmt.Errorf("delimiter %q must be a single character", c.Input.Delimiter)
	}

	if err := csvio.CheckDelimiter(r); err != nil {
		return 0, err
	}

	return r, nil
}

// BatchOptions converts the configuration into driver options.
func (c *Config) BatchOptions() (batch.Options, error) {
	comma, err := c.Delimiter()
	if err != nil {
		return batch.Options{}, err
	}

	policy, err := batch.ParsePolicy(c.Output.Policy)
	if err != nil {
		return batch.Options{}, err
	}

	opts := batch.Options{
		Pattern:   c.Input.Pattern,
		OutputDir: c.Output.Dir,
		Delimiter: comma,
		Encoding:  c.Input.Encoding,
		Policy:    policy,
		Exclude:   c.Input.Exclude,
	}

	return opts, opts.Validate()
}

// Variant returns the built-in table variant selected by the configuration.
func (c *Config) Variant() mapping.Variant {
	return mapping.Variant{
		IntegerReadings: c.Mapping.IntegerReadings,
		ISODates:        c.Mapping.ISODates,
	}
}

// Table returns the mapping table: the YAML file when set, otherwise the
// built-in variant.
func (c *Config) Table() (*mapping.Table, error) {
	if c.Mapping.File == "" {
		return mapping.DefaultFor(c.Variant()), nil
	}

	return mapping.LoadFile(c.Mapping.File)
}

// Logger builds a logrus logger from the [log] section.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(level)

	switch c.Log.Format {
	case FormatText:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return l, nil
}
