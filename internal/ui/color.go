package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var genStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

func GenLine(w io.Writer, path string) {
	fmt.Fprintln(w, genStyle.Render("gen")+"  "+path)
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "generated %d files\n", count)
}
