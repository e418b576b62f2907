package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderExplain reports which file supplied every top-level key, followed by
// the files pulled in through config-file.
func renderExplain(tree *hjsonconfig.Tree, inputs []string, noColor bool) string {
	header, key, dim := headerStyle, keyStyle, dimStyle
	if noColor {
		header, key, dim = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "ORIGIN").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return key
			default:
				return lipgloss.NewStyle()
			}
		})

	for _, k := range tree.Keys() {
		origin, ok := tree.Origin(k)
		if !ok {
			origin = "-"
		}
		t.Row(k, origin)
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", dim.Render("inputs:"), strings.Join(inputs, ", "))
	imported := tree.ImportedFrom()
	if len(imported) == 0 {
		fmt.Fprintf(&b, "%s none\n", dim.Render("imported:"))
	} else {
		fmt.Fprintf(&b, "%s %s\n", dim.Render("imported:"), strings.Join(imported, ", "))
	}
	return b.String()
}
