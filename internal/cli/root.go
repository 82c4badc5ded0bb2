package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/envfill/internal/version"
	"github.com/arthur-debert/envfill/pkg/config"
	"github.com/arthur-debert/envfill/pkg/engine"
	"github.com/arthur-debert/envfill/pkg/errors"
	"github.com/arthur-debert/envfill/pkg/logging"
	"github.com/arthur-debert/envfill/pkg/resolver"
)

// flagKeys maps run flags to their configuration keys
var flagKeys = map[string]string{
	"prefix":         "prefix",
	"ignore-missing": "ignore_missing",
	"allow-unknown":  "allow_unknown",
	"debug":          "debug",
	"dry-run":        "dry_run",
	"diff":           "diff",
	"log-file":       "log_file",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:     "envfill [flags] GLOB",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MatchAll(cobra.ExactArgs(1), validateGlobArg),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{Out: cmd.ErrOrStderr()})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubstitution(cmd, args[0], configFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	defaults := config.Default()
	flags := rootCmd.Flags()
	flags.StringP("prefix", "p", defaults.Prefix, MsgFlagPrefix)
	flags.Bool("ignore-missing", defaults.IgnoreMissing, MsgFlagIgnoreMissing)
	flags.Bool("allow-unknown", defaults.AllowUnknown, MsgFlagAllowUnknown)
	flags.BoolP("debug", "d", defaults.Debug, MsgFlagDebug)
	flags.Bool("dry-run", defaults.DryRun, MsgFlagDryRun)
	flags.Bool("diff", defaults.Diff, MsgFlagDiff)
	flags.String("log-file", defaults.LogFile, MsgFlagLogFile)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newGenConfigCmd(&configFile))

	return rootCmd
}

func validateGlobArg(cmd *cobra.Command, args []string) error {
	return resolver.Validate(args[0])
}

// changedFlags returns the run flags set on the command line, keyed by
// configuration key, so they take precedence over every config layer.
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	changed := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			changed[key] = f.Value.String()
		}
	})
	return changed
}

func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrInternal, "failed to retrieve the current working directory")
	}

	cfg, err := config.Load(config.LoadOptions{
		Dir:   wd,
		File:  configFile,
		Flags: changedFlags(cmd.Flags()),
	})
	if err != nil {
		return nil, "", err
	}
	return cfg, wd, nil
}

func runSubstitution(cmd *cobra.Command, pattern, configFile string) error {
	cfg, wd, err := loadConfig(cmd, configFile)
	if err != nil {
		return err
	}

	logFile := cfg.LogFile
	if logFile == config.DefaultLogFileValue {
		if logFile, err = logging.DefaultLogFile(); err != nil {
			logFile = ""
		}
	}
	// Diagnostics share stdout only in debug mode; otherwise stdout carries
	// nothing but the outcome line.
	logOut := cmd.ErrOrStderr()
	if cfg.Debug {
		logOut = cmd.OutOrStdout()
	}
	logging.SetupLogger(logging.Options{
		Debug: cfg.Debug,
		Out:   logOut,
		File:  logFile,
	})

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("pattern", pattern).
		Str("root", wd).
		Str("prefix", cfg.Prefix).
		Bool("ignoreMissing", cfg.IgnoreMissing).
		Bool("allowUnknown", cfg.AllowUnknown).
		Bool("dryRun", cfg.DryRun).
		Msg("Starting substitution")

	opts := engine.Options{
		Root:          wd,
		Pattern:       pattern,
		Prefix:        cfg.Prefix,
		Environ:       os.Environ(),
		IgnoreMissing: cfg.IgnoreMissing,
		AllowUnknown:  cfg.AllowUnknown,
		DryRun:        cfg.DryRun,
	}
	if cfg.Diff {
		opts.Diff = cmd.OutOrStdout()
	}

	result, err := engine.Run(opts)
	if err != nil {
		logger.Debug().
			Int("written", result.Written()).
			Err(err).
			Msg("Substitution failed")
		return err
	}

	printSuccess(cmd.OutOrStdout(), result)
	return nil
}
