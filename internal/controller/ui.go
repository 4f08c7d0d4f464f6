// Package controller renders type expansions on the command line: plain text
// for pipes, styled tables on terminals and an interactive explorer.
package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// UI displays expansion results.
type UI interface {
	// DisplayExpansion prints the result of a single expansion.
	DisplayExpansion(result string) error
	// DisplayExpansions prints one row per expansion, failures included.
	// It returns an error when any row failed.
	DisplayExpansions(results []m.Expansion) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TerminalUI (tables and styling).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTerminalUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Writers that are not
// files, such as buffers and pipes, are never terminals.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
