package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

var (
	frameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4"))
)

// TerminalRenderer prints generations to a console
type TerminalRenderer struct {
	out      io.Writer
	plain    bool
	terminal bool
}

// NewTerminalRenderer creates a renderer writing to out. Cells are drawn as styled
// blocks on a terminal and as 0/1 digits otherwise or when plain is set.
func NewTerminalRenderer(out io.Writer, plain bool) *TerminalRenderer {
	terminal := false
	if f, ok := out.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &TerminalRenderer{
		out:      out,
		plain:    plain || !terminal,
		terminal: terminal,
	}
}

// Display renders the grid with a frame header
func (r *TerminalRenderer) Display(g *Grid, generation int) error {
	w := bufio.NewWriter(r.out)

	header := fmt.Sprintf("Frame %d", generation)
	if !r.plain {
		header = frameStyle.Render(header)
	}
	fmt.Fprintln(w, header)

	for row := range g.Rows() {
		if r.plain {
			for col := range g.Cols() {
				fmt.Fprintf(w, "%d ", g.At(row, col))
			}
			fmt.Fprintln(w)
			continue
		}

		line := make([]byte, 0, g.Cols()*len(gridPosBlock))
		for col := range g.Cols() {
			if g.Alive(row, col) {
				line = append(line, gridPosBlock...)
			} else {
				line = append(line, gridPosEmpty...)
			}
		}
		fmt.Fprintln(w, cellStyle.Render(string(line)))
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen. It does nothing when the output is not a terminal.
func (r *TerminalRenderer) Clear() error {
	if !r.terminal {
		return nil
	}
	if _, err := io.WriteString(r.out, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
