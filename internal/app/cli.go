package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"paritybalance/internal/balance"
	config "paritybalance/internal/config"
	"paritybalance/internal/report"
	"paritybalance/internal/scanner"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	exitOK        = 0
	exitBadInput  = 1
	exitInvariant = 2
)

type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit %d", e.code)
}

func codeToError(code int) error {
	if code == exitOK {
		return nil
	}
	return exitError{code: code}
}

type cliOptions struct {
	Mode     string
	Format   string
	MaxCount int
	LogLevel string
	KeepLog  bool

	Cleanup    bool
	Version    bool
	ConfigFile string
}

// Run is the program entrypoint for cmd/paritybalance/main.go.
func Run() {
	exitFn(run(os.Args[1:]))
}

func run(argv []string) int {
	if argv == nil {
		// cobra falls back to os.Args when args are nil.
		argv = []string{}
	}
	cmd := newRootCommand()
	cmd.SetArgs(argv)
	if err := cmd.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(stderrWriter, "ERROR: %v\n", err)
		return exitBadInput
	}
	return exitOK
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("%s [flags] [input-file|-]", toolName),
		Short:         "Minimum parity reassignments to balance even and odd counts",
		Long:          "Reads n followed by n integers and prints the minimum number of elements whose parity must change so that even and odd counts differ by at most one.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Version {
				fmt.Fprintf(stdoutWriter, "%s version %s\n", toolName, version)
				return nil
			}
			if opts.Cleanup {
				return codeToError(runCleanupMode())
			}

			return codeToError(runWithLoggerAndCleanup(func(s *session) int {
				v, err := config.NewViper(opts.ConfigFile)
				if err != nil {
					logError(fmt.Sprintf("load config: %v", err))
					return exitBadInput
				}

				cfg, err := buildConfig(cmd, args, opts, v)
				if err != nil {
					logError(err.Error())
					return exitBadInput
				}
				s.keepLog = cfg.KeepLog
				activeLogger().SetLevel(cfg.LogLevel)
				if used := v.ConfigFileUsed(); used != "" {
					logDebug(fmt.Sprintf("loaded config file %s", used))
				}

				logEvent(zerolog.InfoLevel).
					Str("mode", string(cfg.Mode)).
					Str("format", string(cfg.Format)).
					Int("max_count", cfg.MaxCount).
					Str("input", inputName(cfg.Input)).
					Msg("parsed configuration")
				return runBalance(cfg)
			}))
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	addRootFlags(cmd.Flags(), opts)
	cmd.AddCommand(newVersionCommand(), newCleanupCommand())

	return cmd
}

func addRootFlags(fs *pflag.FlagSet, opts *cliOptions) {
	fs.StringVar(&opts.ConfigFile, "config", "", "Config file path (default: $HOME/.paritybalance/config.*)")
	fs.BoolVarP(&opts.Version, "version", "v", false, "Print version and exit")
	fs.BoolVar(&opts.Cleanup, "cleanup", false, "Clean up old logs and exit")

	fs.StringVar(&opts.Mode, config.KeyMode, config.DefaultMode, "Answer to compute (count, min-sum)")
	fs.StringVar(&opts.Format, config.KeyFormat, config.DefaultFormat, "Output format (text, json)")
	fs.IntVar(&opts.MaxCount, config.KeyMaxCount, config.DefaultMaxCount, "Reject inputs declaring more elements than this")
	fs.StringVar(&opts.LogLevel, config.KeyLogLevel, config.DefaultLogLevel, "Log file level (debug, info, warn, error)")
	fs.BoolVar(&opts.KeepLog, config.KeyKeepLog, false, "Keep the log file after a successful run")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print version and exit",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(stdoutWriter, "%s version %s\n", toolName, version)
			return nil
		},
	}
}

func newCleanupCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "cleanup",
		Short:         "Clean up old logs and exit",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return codeToError(runCleanupMode())
		},
	}
}

// buildConfig layers explicitly set flags over env/config-file values.
func buildConfig(cmd *cobra.Command, args []string, opts *cliOptions, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(config.KeyMode) {
		if cfg.Mode, err = config.ValidateMode(opts.Mode); err != nil {
			return nil, fmt.Errorf("--mode flag invalid value: %w", err)
		}
	}
	if flags.Changed(config.KeyFormat) {
		if cfg.Format, err = config.ValidateFormat(opts.Format); err != nil {
			return nil, fmt.Errorf("--format flag invalid value: %w", err)
		}
	}
	if flags.Changed(config.KeyMaxCount) {
		if cfg.MaxCount, err = config.ValidateMaxCount(opts.MaxCount); err != nil {
			return nil, fmt.Errorf("--max-count flag invalid value: %w", err)
		}
	}
	if flags.Changed(config.KeyLogLevel) {
		if cfg.LogLevel, err = config.ValidateLogLevel(opts.LogLevel); err != nil {
			return nil, fmt.Errorf("--log-level flag invalid value: %w", err)
		}
	}
	if flags.Changed(config.KeyKeepLog) {
		cfg.KeepLog = opts.KeepLog
	}

	if len(args) == 1 {
		cfg.Input = strings.TrimSpace(args[0])
		if cfg.Input == "" {
			return nil, fmt.Errorf("input file path is empty")
		}
	}
	return cfg, nil
}

// runBalance reads the sequence, solves it and writes the report. Every
// path returns an explicit exit status.
func runBalance(cfg *config.Config) int {
	in, closeInput, err := openInput(cfg.Input)
	if err != nil {
		logError(err.Error())
		return exitBadInput
	}
	defer closeInput()

	sc := scanner.New(in, scanner.WithMaxCount(cfg.MaxCount))
	seq, err := sc.ReadSequence()
	if err != nil {
		logError(fmt.Sprintf("read input: %v", err))
		return exitBadInput
	}
	if extra := sc.Trailing(); extra > 0 {
		logWarn(fmt.Sprintf("ignored %d trailing token(s) after %d values", extra, len(seq)))
	}

	res, err := solveFn(seq, cfg.Mode)
	if err != nil {
		var invariant *balance.InvariantError
		if errors.As(err, &invariant) {
			logError(fmt.Sprintf("internal error: %v", err))
			return exitInvariant
		}
		logError(fmt.Sprintf("solve: %v", err))
		return exitBadInput
	}

	logEvent(zerolog.InfoLevel).
		Int("n", res.N).
		Int("even", res.Counts.Even).
		Int("odd", res.Counts.Odd).
		Int64("result", res.Value).
		Msg("computed balance")

	if err := report.Write(stdoutWriter, report.FromResult(res), cfg.Format); err != nil {
		logError(err.Error())
		return exitBadInput
	}
	return exitOK
}
