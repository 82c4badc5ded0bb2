package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Substitute {{NAME}} tokens in files with environment variables"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"
	MsgGenConfigShort  = "Print the effective configuration"

	// Flag descriptions
	MsgFlagPrefix        = "Env var name prefix to use"
	MsgFlagIgnoreMissing = "Skip glob entries that cannot be resolved instead of failing"
	MsgFlagAllowUnknown  = "Leave tokens without a matching env var in place instead of failing"
	MsgFlagDebug         = "Print diagnostic output (pattern, variables, file contents)"
	MsgFlagDryRun        = "Validate and report without writing any file"
	MsgFlagDiff          = "Print a patch for every file that changes"
	MsgFlagConfig        = "Config file (default: .envfill.toml or .envfill.yaml in the working directory)"
	MsgFlagLogFile       = "Also write log entries to this file (\"default\" for the XDG state directory)"
	MsgFlagFormat        = "Output format: toml or yaml"

	// Result messages
	MsgSuccessFormat = "Substitution successful: %d %s rewritten, %d unchanged"
	MsgDryRunFormat  = "Dry run successful: %d %s would be rewritten, %d unchanged"
	MsgSkippedFormat = ", %d skipped"
	MsgFailurePrefix = "Substitution failed with error: "
	MsgUsageFormat   = "Error: %v (see '%s --help')"
	MsgVersionFormat = "envfill version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"
)

// Long descriptions
const (
	MsgRootLong = `envfill rewrites files in place, replacing every {{NAME}} token with the
value of the environment variable NAME.

Only variables whose name starts with the prefix (APP_ by default) are used.
Every file matched by GLOB is read and checked before any file is written: if
a file references a token with no matching variable, the run fails and no
file is modified.

GLOB is resolved relative to the current directory and supports ** to match
across directories.`

	MsgRootExample = `  APP_NAME=World envfill 'site/*.html'
  envfill --prefix WEB_ 'public/**/*.js'
  envfill --dry-run --diff 'conf/*.tmpl'`

	MsgGenConfigLong = `Print the configuration envfill would use in the current directory, after
merging defaults, the user config, the project config, ENVFILL_* environment
variables and flags.`
)
