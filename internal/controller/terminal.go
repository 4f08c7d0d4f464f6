package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

// TerminalUI renders for an interactive terminal: styled results and a table
// of expansions.
type TerminalUI struct {
	output      io.Writer
	resultStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewTerminalUI creates a new TerminalUI writing to output.
func NewTerminalUI(output io.Writer) *TerminalUI {
	renderer := lipgloss.NewRenderer(output)

	return &TerminalUI{
		output:      output,
		resultStyle: renderer.NewStyle().Foreground(lipgloss.Color("14")),
		errorStyle:  renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// DisplayExpansion prints the styled result. Lines are styled one by one so
// they keep their own width.
func (t *TerminalUI) DisplayExpansion(result string) error {
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = t.resultStyle.Render(line)
	}

	_, _ = fmt.Fprintln(t.output, strings.Join(lines, "\n"))

	return nil
}

// DisplayExpansions prints a table of names and their expansions.
func (t *TerminalUI) DisplayExpansions(results []m.Expansion) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Type", "Expansion"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	failed := 0

	for _, result := range results {
		if result.Failed() {
			failed++

			table.Append([]string{result.Name, t.errorStyle.Render(result.Err.Error())})

			continue
		}

		table.Append([]string{result.Name, flatten(result.Result)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Types %d", len(results)),
		fmt.Sprintf("Failed %d", failed),
	})

	table.Render()
	_, _ = fmt.Fprintf(t.output, "\n%s", tableBuffer.String())

	return failedRows(failed, len(results))
}

// flatten joins a multi-line expansion into one table cell.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
