package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"column-mover/internal/batch"
	"column-mover/internal/mapping"
	"column-mover/internal/transform"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("data", "*"), cfg.Input.Pattern)
	assert.Equal(t, ";", cfg.Input.Delimiter)
	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.Equal(t, "PLIKI GAZ", cfg.Output.Dir)
	assert.Equal(t, "all-or-nothing", cfg.Output.Policy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.False(t, cfg.Pause)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.BatchOptions()
	require.NoError(t, err)
	assert.Equal(t, batch.DefaultOptions(), opts)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
pause = true

[input]
pattern = "readings/*.csv"
delimiter = ","
encoding = "windows-1250"
exclude = ["readings/skip.csv"]

[output]
dir = "converted"
policy = "skip-row"

[mapping]
integer_readings = true
iso_dates = true

[log]
level = "debug"
format = "json"
`)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Pause)
	assert.Equal(t, mapping.Variant{IntegerReadings: true, ISODates: true}, cfg.Variant())

	opts, err := cfg.BatchOptions()
	require.NoError(t, err)
	assert.Equal(t, batch.Options{
		Pattern:   "readings/*.csv",
		OutputDir: "converted",
		Delimiter: ',',
		Encoding:  "windows-1250",
		Policy:    batch.SkipRow,
		Exclude:   []string{"readings/skip.csv"},
	}, opts)

	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse("[output]\npolicy = \"skip\"\n")
	require.NoError(t, err)

	assert.Equal(t, "skip", cfg.Output.Policy)
	assert.Equal(t, "PLIKI GAZ", cfg.Output.Dir)
	assert.Equal(t, ";", cfg.Input.Delimiter)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("[input\npattern = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Parse("[input]\npatern = \"x\"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.patern")
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("GAS_DATA", "/srv/gas")

	cfg, err := Parse("[input]\npattern = \"$GAS_DATA/*.csv\"\n")
	require.NoError(t, err)
	assert.Equal(t, "/srv/gas/*.csv", cfg.Input.Pattern)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"long delimiter", func(c *Config) { c.Input.Delimiter = ";;" }, "single character"},
		{"quote delimiter", func(c *Config) { c.Input.Delimiter = `"` }, "delimiter"},
		{"encoding", func(c *Config) { c.Input.Encoding = "ebcdic-klingon" }, "encoding"},
		{"policy", func(c *Config) { c.Output.Policy = "retry" }, "unknown policy"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "loud"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "unknown log format"},
		{"output dir", func(c *Config) { c.Output.Dir = "." }, "overwrite the input files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDelimiter_Tab(t *testing.T) {
	cfg := Default()
	cfg.Input.Delimiter = `\t`

	r, err := cfg.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, '\t', r)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "column-mover.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nformat = \"text\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Log.Format)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestTable(t *testing.T) {
	cfg := Default()
	cfg.Mapping.IntegerReadings = true

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, mapping.DefaultFor(mapping.Variant{IntegerReadings: true}), table)

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, mapping.WriteFile(mapping.Default(), path))

	cfg.Mapping.File = path
	table, err = cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, mapping.Default().Headers(), table.Headers())
	assert.True(t, mapping.Validate(table, transform.Builtins(clockwork.NewRealClock())).IsValid())
}
