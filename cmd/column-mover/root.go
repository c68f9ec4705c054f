package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"column-mover/internal/config"
)

// cliOptions holds the values of persistent flags. Only flags set on the
// command line override the configuration file.
type cliOptions struct {
	configFile string

	pattern     string
	outputDir   string
	delimiter   string
	policy      string
	encoding    string
	mappingFile string

	integerReadings bool
	isoDates        bool
	pause           bool
	verbose         bool
	logFormat       string
}

func newRootCmd(clk clockwork.Clock) *cobra.Command {
	opts := &cliOptions{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "column-mover",
		Short: "Remap gas meter reading files into the billing column layout",
		Long: `column-mover reads every file matched by --pattern, remaps its rows
through the mapping table and writes the result into --output-dir next to
the inputs.

Without a subcommand it behaves like "column-mover run".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts, clk)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configFile, "config", "c", "", "TOML configuration file")
	f.StringVarP(&opts.pattern, "pattern", "p", defaults.Input.Pattern, "glob pattern selecting input files")
	f.StringVarP(&opts.outputDir, "output-dir", "o", defaults.Output.Dir, "output directory, relative to the pattern's directory")
	f.StringVarP(&opts.delimiter, "delimiter", "d", defaults.Input.Delimiter, `field delimiter (use \t for tab)`)
	f.StringVar(&opts.policy, "policy", defaults.Output.Policy, "row failure policy: all-or-nothing or skip-row")
	f.StringVarP(&opts.encoding, "encoding", "e", defaults.Input.Encoding, "input encoding (utf-8, windows-1250, iso-8859-2, ...)")
	f.StringVarP(&opts.mappingFile, "mapping", "m", "", "YAML mapping table (built-in gas layout when empty)")
	f.BoolVar(&opts.integerReadings, "integer-readings", false, "compute the start reading as an integer difference")
	f.BoolVar(&opts.isoDates, "iso-dates", false, "write consumption period dates as YYYY-MM-DD")
	f.BoolVar(&opts.pause, "pause", false, "wait for ENTER before exiting")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&opts.logFormat, "log-format", defaults.Log.Format, "log format: text or json")

	root.AddCommand(
		newRunCmd(opts, clk),
		newMappingCmd(opts),
		newValidateCmd(opts, clk),
	)

	return root
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configFile != "" {
		var err error

		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	changed := flags.Changed

	if changed("pattern") {
		cfg.Input.Pattern = opts.pattern
	}
	if changed("output-dir") {
		cfg.Output.Dir = opts.outputDir
	}
	if changed("delimiter") {
		cfg.Input.Delimiter = opts.delimiter
	}
	if changed("policy") {
		cfg.Output.Policy = opts.policy
	}
	if changed("encoding") {
		cfg.Input.Encoding = opts.encoding
	}
	if changed("mapping") {
		cfg.Mapping.File = opts.mappingFile
	}
	if changed("integer-readings") {
		cfg.Mapping.IntegerReadings = opts.integerReadings
	}
	if changed("iso-dates") {
		cfg.Mapping.ISODates = opts.isoDates
	}
	if changed("pause") {
		cfg.Pause = opts.pause
	}
	if changed("verbose") && opts.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Logger, error) {
	l, err := cfg.Logger()
	if err != nil {
		return nil, err
	}

	l.SetOutput(cmd.ErrOrStderr())

	return l, nil
}
