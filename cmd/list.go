package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tsexpand/internal/controller"
)

var listParallelFlag int
var listTableFlag bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <source-file>",
		Short: "Expand every type declared in a source file",
		Long: `List expands every top-level type alias, interface, enum and class declared
in the source file. Output is a table on a terminal (or with --table) and
"name = expansion" lines otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("parallel") || s.parallel <= 0 {
				s.parallel = listParallelFlag
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			exp, err := newExpander(cmd, s)
			if err != nil {
				return err
			}

			base := s.request("", source)

			names, err := exp.DeclaredTypes(cmd.Context(), base)
			if err != nil {
				return err
			}

			results, err := exp.ExpandAll(cmd.Context(), base, names, s.parallel)
			if err != nil {
				return err
			}

			useTable := listTableFlag || controller.IsTTY(cmd.OutOrStdout())

			return controller.NewUI(cmd, useTable).DisplayExpansions(results)
		},
	}
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "j", 4, "number of types expanded concurrently")
	cmd.Flags().BoolVar(&listTableFlag, "table", false, "print a table even when stdout is not a terminal")

	return cmd
}
