package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/papyrus-typegen/am"
	"github.com/teranos/papyrus-typegen/errors"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage typegen configuration",
		Long: `Display and manage typegen configuration.

Examples:
  typegen config show                 # Effective configuration as TOML
  typegen config show --format json   # ... as JSON
  typegen config where                # Where each setting comes from
  typegen config validate             # Validate the effective configuration
  typegen config init                 # Write defaults to ./typegen.toml`,
	}

	cmd.AddCommand(newConfigShowCmd(root))
	cmd.AddCommand(newConfigValidateCmd(root))
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigWhereCmd())
	return cmd
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := root.cfg

			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to JSON")
				}
				fmt.Fprintln(out, string(data))

			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# typegen configuration\n%s", data)

			case "toml":
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "# typegen configuration\n%s", data)

			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newConfigValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			if path := root.configPath(); path != "" {
				if err := am.CheckUnknownKeys(path); err != nil {
					return errors.Wrap(err, "configuration validation failed")
				}
			}
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Println("Configuration is valid")
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the default configuration as TOML (default: ./typegen.toml).

An existing file is kept as .back1 (older copies rotate to .back2, .back3).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := am.ProjectConfigName
			if len(args) > 0 {
				path = args[0]
			}
			if err := am.WriteDefault(path); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("Wrote %s", path)
			return nil
		},
	}
}

func newConfigWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where each setting comes from",
		RunE: func(cmd *cobra.Command, args []string) error {
			intro, err := am.GetConfigIntrospection()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range intro.Settings {
				value := fmt.Sprintf("%v", s.Value)
				if len(value) > 50 {
					value = value[:47] + "..."
				}
				source := string(s.Source)
				if s.SourcePath != "" && s.Source != am.SourceDefault {
					source += " " + s.SourcePath
				}
				fmt.Fprintf(out, "%-34s = %-50s [%s]\n", s.Key, value, source)
			}
			return nil
		},
	}
}
