package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return isTerminal(f)
	}
}

type printer struct {
	out   io.Writer
	color bool
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), color: useColor(cmd, os.Stdout)}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// status prints a right-aligned verb followed by a message.
func (p *printer) status(verb, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(verbStyle, fmt.Sprintf("%12s", verb)), fmt.Sprintf(format, args...))
}

func (p *printer) path(s string) string {
	return p.style(pathStyle, s)
}

func (p *printer) finished(start time.Time) {
	p.status("Finished", "in %.2fs", time.Since(start).Seconds())
}

func errorLine(cmd *cobra.Command, err error) string {
	label := "error:"
	if useColor(cmd, os.Stderr) {
		label = errorStyle.Render(label)
	}
	return label + " " + err.Error()
}
