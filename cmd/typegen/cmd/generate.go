package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/papyrus-typegen/am"
	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
	"github.com/teranos/papyrus-typegen/typegen"
	"github.com/teranos/papyrus-typegen/typegen/typescript"
	"github.com/teranos/papyrus-typegen/watcher"
)

type generateOptions struct {
	root *rootOptions

	output     string
	noPreamble bool
	sourceLine bool
	watch      bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	o := &generateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "generate [dump.json]",
		Short: "Generate declarations from a dump",
		Long: `Generate TypeScript declarations from a reflected API dump.

The dump defaults to input.path from the configuration. Declarations go to
--output, then output.path, then stdout. Files are replaced atomically: a
failed run leaves the previous file untouched.

Examples:
  typegen generate Data/api.json
  typegen generate Data/api.json -o types/skyrim.d.ts
  typegen generate --no-preamble
  typegen generate --watch       # Regenerate when the dump or config changes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file, - for stdout (default: output.path or stdout)")
	cmd.Flags().BoolVar(&o.noPreamble, "no-preamble", false, "Omit the fixed preamble declarations")
	cmd.Flags().BoolVar(&o.sourceLine, "source-line", false, "Start the document with a // Source: line naming the dump")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "Keep running and regenerate on changes")

	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, args []string) error {
	cfg := o.root.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := inputPath(cfg, args)
	if err != nil {
		return err
	}
	output := o.outputPath(cfg)

	if !o.watch {
		return o.generateOnce(cmd, cfg, input, output)
	}
	return o.runWatch(cmd, input, output)
}

func (o *generateOptions) outputPath(cfg *am.Config) string {
	if o.output != "" {
		return o.output
	}
	return cfg.Output.Path
}

// emitOptions applies the command flags on top of cfg
func (o *generateOptions) emitOptions(cfg *am.Config, input string) typescript.Options {
	source := ""
	if o.sourceLine {
		source = filepath.Base(input)
	}
	opts := cfg.EmitOptions(source)
	if o.noPreamble {
		opts.Preamble = false
	}
	return opts
}

func (o *generateOptions) generateOnce(cmd *cobra.Command, cfg *am.Config, input, output string) error {
	start := time.Now()

	result, err := render(input, o.emitOptions(cfg, input))
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), result.Output)
		return errors.Wrap(err, "failed to write declarations")
	}

	changed, err := writeAtomic(output, []byte(result.Output))
	if err != nil {
		return err
	}

	status, verb := pterm.Success, "Wrote"
	if !changed {
		status, verb = pterm.Info, "Unchanged"
	}
	status.WithWriter(cmd.ErrOrStderr()).Printfln("%s %s: %d classes, %d synthesized, %d skipped (%dms)",
		verb, output, len(result.Classes), len(result.Synthesized), len(result.Skipped),
		time.Since(start).Milliseconds())
	return nil
}

// runWatch regenerates until interrupted. Failed runs are reported and the
// previous output is kept.
func (o *generateOptions) runWatch(cmd *cobra.Command, input, output string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := o.root.configPath()
	regenerate := func(ctx context.Context, changed string) {
		cfg := o.root.cfg
		if configPath != "" && changed == absPath(configPath) {
			reloaded, err := o.root.loadConfig()
			if err != nil {
				reportError(cmd, err)
				return
			}
			cfg = reloaded
		}
		if err := cfg.Validate(); err != nil {
			reportError(cmd, err)
			return
		}
		if err := o.generateOnce(cmd, cfg, input, o.outputPath(cfg)); err != nil {
			reportError(cmd, err)
		}
	}

	regenerate(ctx, "")

	debounce := time.Duration(o.root.cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watcher.New([]string{input, configPath}, debounce, regenerate)
	if err != nil {
		return err
	}

	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Watching %s for changes (Ctrl+C to stop)", input)
	logger.Infow("watch started", logger.FieldFile, input, "config", configPath, "debounce_ms", debounce.Milliseconds())
	return w.Run(ctx)
}

// render parses the dump and generates the document
func render(input string, opts typescript.Options) (*typegen.Result, error) {
	cat, err := catalogue.ParseFile(input)
	if err != nil {
		return nil, err
	}
	logger.Debugw("dump parsed", logger.FieldFile, input, logger.FieldCount, cat.Len())

	result, err := typescript.Generate(cat, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate declarations from %s", input)
	}
	return result, nil
}

func inputPath(cfg *am.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path, nil
	}
	err := errors.New("no dump file given")
	return "", errors.WithHint(err, "pass the dump as an argument or set input.path in typegen.toml")
}

func reportError(cmd *cobra.Command, err error) {
	pterm.Error.WithWriter(cmd.ErrOrStderr()).Printfln("%v", err)
	logger.Errorw("regeneration failed", logger.FieldError, err)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
