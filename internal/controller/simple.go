package controller

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// SimpleUI prints plain text through the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayExpansion prints the result on its own line.
func (s *SimpleUI) DisplayExpansion(result string) error {
	s.printf("%s\n", result)

	return nil
}

// DisplayExpansions prints "name = expansion" lines. Failed rows go to the
// error stream.
func (s *SimpleUI) DisplayExpansions(results []m.Expansion) error {
	failed := 0

	for _, result := range results {
		if result.Failed() {
			failed++

			_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: %v\n", result.Name, result.Err)

			continue
		}

		s.printf("%s = %s\n", result.Name, result.Result)
	}

	return failedRows(failed, len(results))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func failedRows(failed, total int) error {
	if failed == 0 {
		return nil
	}

	return errors.Errorf("%d of %d expansions failed", failed, total)
}
