package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/typegen"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var against string
	gen := &generateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "check [dump.json]",
		Short: "Check if generated declarations are up to date",
		Long: `Check if a declaration file matches what the dump generates now.

The document is regenerated in memory and compared line by line with the
file, ignoring "// Source:" metadata lines.

Exit codes:
  0 - Declarations are up to date
  1 - Declarations are out of date (first difference shown)
  2 - Error during check

Examples:
  typegen check Data/api.json --against types/skyrim.d.ts
  typegen check                   # input.path against output.path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if err := cfg.Validate(); err != nil {
				return err
			}

			input, err := inputPath(cfg, args)
			if err != nil {
				return err
			}

			target := against
			if target == "" {
				target = cfg.Output.Path
			}
			if target == "" || target == "-" {
				err := errors.New("no declaration file to check")
				return errors.WithHint(err, "pass --against or set output.path in typegen.toml")
			}

			result, err := render(input, gen.emitOptions(cfg, input))
			if err != nil {
				return err
			}

			check, err := typegen.CompareFile(result.Output, target)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			switch {
			case check.UpToDate:
				pterm.Success.WithWriter(stderr).Printfln("%s is up to date", target)
				return nil
			case check.Missing:
				pterm.Error.WithWriter(stderr).Printfln("%s does not exist", target)
				return errors.WithHint(errors.Wrapf(ErrOutOfDate, "%s missing", target), "run 'typegen generate' to create it")
			default:
				pterm.Error.WithWriter(stderr).Printfln("%s is out of date at line %d", target, check.Line)
				pterm.Fprintln(stderr, "  want: "+check.Want)
				pterm.Fprintln(stderr, "  got:  "+check.Got)
				return errors.WithHint(errors.Wrapf(ErrOutOfDate, "%s line %d", target, check.Line), "run 'typegen generate' to update it")
			}
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Declaration file to compare with (default: output.path)")
	cmd.Flags().BoolVar(&gen.noPreamble, "no-preamble", false, "The file was generated without the preamble")

	return cmd
}
