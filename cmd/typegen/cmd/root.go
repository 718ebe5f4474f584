// Package cmd implements the typegen command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/papyrus-typegen/am"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
)

// ErrOutOfDate is returned by check when the declarations on disk are stale
var ErrOutOfDate = errors.New("declarations are out of date")

// Exit codes
const (
	ExitOK        = 0
	ExitOutOfDate = 1
	ExitError     = 2
)

// rootOptions holds the global flags and the configuration they select
type rootOptions struct {
	configFile string
	verbosity  int
	logJSON    bool

	cfg *am.Config
}

// NewRootCmd builds the typegen command tree
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "typegen",
		Short: "Generate TypeScript declarations from a reflected API dump",
		Long: `typegen - Generate TypeScript declarations from a reflected API dump.

The dump is a JSON catalogue of script classes, their parents and their
member and global functions. typegen turns it into a single .d.ts document:
a fixed preamble followed by one "export declare class" block per class,
ancestors first.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (TYPEGEN_* prefix, e.g. TYPEGEN_OUTPUT_PATH)
  3. Project config (nearest typegen.toml, searching up directories)
  4. User config (<user config dir>/typegen/typegen.toml)
  5. Default values

Exit codes:
  0 - Success
  1 - Declarations are out of date (check)
  2 - Error

Examples:
  typegen generate dump.json                 # Write declarations to stdout
  typegen generate dump.json -o skyrim.d.ts  # Write to a file atomically
  typegen generate --watch                   # Regenerate on every change
  typegen check --against skyrim.d.ts        # Fail if the file is stale
  typegen config show --format yaml          # Show effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(o.logJSON, o.verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			// These never read the configuration
			if cmd.Name() == "version" || cmd.Name() == "init" {
				return nil
			}
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Log.JSON && !o.logJSON {
				if err := logger.Initialize(true, o.verbosity); err != nil {
					return errors.Wrap(err, "failed to initialize logger")
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	root.PersistentFlags().StringVar(&o.configFile, "config", "", "Config file (default: nearest typegen.toml)")
	root.PersistentFlags().CountVarP(&o.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	root.PersistentFlags().BoolVar(&o.logJSON, "log-json", false, "Emit structured JSON logs on stderr")

	root.AddCommand(newGenerateCmd(o))
	root.AddCommand(newCheckCmd(o))
	root.AddCommand(newConfigCmd(o))
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig (re)reads the configuration selected by --config
func (o *rootOptions) loadConfig() (*am.Config, error) {
	am.Reset()

	var cfg *am.Config
	var err error
	if o.configFile != "" {
		cfg, err = am.LoadFromFile(o.configFile)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	o.cfg = cfg
	return cfg, nil
}

// configPath returns the config file in effect, or "" for defaults only
func (o *rootOptions) configPath() string {
	if o.configFile != "" {
		return o.configFile
	}
	return am.ProjectConfigPath()
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
	return ExitCode(err)
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrOutOfDate):
		return ExitOutOfDate
	default:
		return ExitError
	}
}
