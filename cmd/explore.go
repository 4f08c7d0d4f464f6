package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tsexpand/internal/controller"
	m "github.com/mouse-blink/tsexpand/internal/model"
)

// runExplorer starts the interactive explorer; replaced in tests.
var runExplorer = func(ctx context.Context, explorer *controller.Explorer) error {
	return explorer.Run(ctx)
}

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <source-file>",
		Short: "Interactively expand types of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return errors.New("explore reads keys from stdin and needs a source file")
			}

			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			exp, err := newExpander(cmd, s)
			if err != nil {
				return err
			}

			source := m.FileSource(m.Path(args[0]))
			expand := func(ctx context.Context, expression string) (string, error) {
				return exp.Expand(ctx, s.request(expression, source))
			}

			explorer := controller.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], expand)

			return runExplorer(cmd.Context(), explorer)
		},
	}

	return cmd
}
