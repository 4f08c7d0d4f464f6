// Package cmd provides the root command and CLI setup for tsexpand.
package cmd

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	"github.com/mouse-blink/tsexpand/internal/controller"
	"github.com/mouse-blink/tsexpand/internal/domain"
	m "github.com/mouse-blink/tsexpand/internal/model"
	"github.com/mouse-blink/tsexpand/pkg/tsexpand"
)

// expander replaces the TypeScript-backed expander when set.
var expander domain.Expander

var typescriptFlag string
var prettierFlag string
var configFlag string
var tsconfigFlag string
var verboseFlag bool
var prettifyFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsexpand [flags] <source-file> <expression>",
		Short: "Expand TypeScript types into their structural form",
		Long: `tsexpand resolves a TypeScript type expression in the scope of a source file
and prints the fully expanded type, e.g. "A<number>" becomes
"{ a: string; b: number }".

Use "-" as the source file to read source text from standard input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

			if strings.TrimSpace(args[1]) == "" {
				return ui.DisplayExpansion(domain.NeverType)
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			exp, err := newExpander(cmd, s)
			if err != nil {
				return err
			}

			result, err := exp.Expand(cmd.Context(), s.request(args[1], source))
			if err != nil {
				return err
			}

			return ui.DisplayExpansion(result)
		},
	}

	prettifyFlag = true

	flags := cmd.PersistentFlags()
	flags.VarPF(&toggleValue{target: &prettifyFlag, on: true}, "prettify", "p", "prettify the output").NoOptDefVal = "true"
	flags.VarPF(&toggleValue{target: &prettifyFlag, on: false}, "no-prettify", "P", "print the type checker's rendering as is").NoOptDefVal = "true"
	flags.StringVarP(&tsconfigFlag, "tsconfig", "c", "", "tsconfig.json to read compiler options from")
	flags.StringVar(&typescriptFlag, "typescript", "", "path to typescript.js (default: $"+adapter.TypeScriptLibEnv+" or node_modules lookup)")
	flags.StringVar(&prettierFlag, "prettier", "", "prettier package directory; formats output with prettier instead of the built-in printer")
	flags.StringVar(&configFlag, "config", "", "yaml config file")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log expansion steps to stderr")

	cmd.AddCommand(newListCmd(), newExploreCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// toggleValue sets a shared boolean to on. Several toggles bound to the same
// target fold in command-line order, so the last one given wins.
type toggleValue struct {
	target *bool
	on     bool
}

var _ pflag.Value = (*toggleValue)(nil)

func (v *toggleValue) Set(s string) error {
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	*v.target = enabled == v.on

	return nil
}

func (v *toggleValue) String() string {
	if v.target == nil {
		return "false"
	}

	return strconv.FormatBool(*v.target == v.on)
}

func (v *toggleValue) Type() string {
	return "bool"
}

// settings are the command-line flags merged over the config file.
type settings struct {
	typescript      string
	prettier        string
	tsconfig        string
	prettify        m.PrettifyOptions
	compilerOptions map[string]any
	parallel        int
	verbose         bool
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := loadConfig(configFlag)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	s := settings{
		typescript:      pick(flags.Changed("typescript"), typescriptFlag, cfg.TypeScript),
		prettier:        pick(flags.Changed("prettier"), prettierFlag, cfg.Prettier),
		tsconfig:        pick(flags.Changed("tsconfig"), tsconfigFlag, cfg.TSConfig),
		compilerOptions: cfg.CompilerOptions,
		parallel:        cfg.Parallel,
		verbose:         verboseFlag,
		prettify: m.PrettifyOptions{
			Enabled: cfg.Prettify.Enabled,
			Options: cfg.Prettify.Options,
		},
	}

	if flags.Changed("prettify") || flags.Changed("no-prettify") || s.prettify.Enabled == nil {
		s.prettify.Enabled = m.Bool(prettifyFlag)
	}

	if s.tsconfig != "" {
		tsconfig, err := adapter.NormalizeUnitName(s.tsconfig)
		if err != nil {
			return settings{}, errors.Wrapf(err, "failed to resolve %s", s.tsconfig)
		}

		s.tsconfig = tsconfig
	}

	return s, nil
}

func pick(changed bool, flag, fallback string) string {
	if changed || fallback == "" {
		return flag
	}

	return fallback
}

func (s settings) request(expression string, source m.SourceRef) m.Request {
	return m.Request{
		Expression: expression,
		Source:     source,
		CompilerOptions: m.CompilerOptions{
			ConfigFile: m.Path(s.tsconfig),
			Values:     s.compilerOptions,
		},
		Prettify: s.prettify,
	}
}

// readSource maps the source argument to a reference; "-" reads raw source
// text from standard input.
func readSource(cmd *cobra.Command, arg string) (m.SourceRef, error) {
	if arg != "-" {
		return m.FileSource(m.Path(arg)), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return m.SourceRef{}, errors.Wrap(err, "failed to read source from stdin")
	}

	return m.TextSource(string(data)), nil
}

func newExpander(cmd *cobra.Command, s settings) (domain.Expander, error) {
	if expander != nil {
		return expander, nil
	}

	opts := []tsexpand.Option{
		tsexpand.WithLogger(newLogger(cmd.ErrOrStderr(), s.verbose)),
		tsexpand.WithRuntimePool(s.parallel),
	}

	if s.typescript != "" {
		opts = append(opts, tsexpand.WithTypeScriptLib(s.typescript))
	}

	if s.prettier != "" {
		opts = append(opts, tsexpand.WithPrettier(s.prettier))
	}

	client, err := tsexpand.New(opts...)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
