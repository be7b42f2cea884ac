// Package console is the terminal side of the game: coloured messages,
// rendering a game State, and prompting the player for input.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	red   = "\033[31m"
	blue  = "\033[96m"
	reset = "\033[0m"
)

// Printer writes plain, error and info messages to a terminal or any writer.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer on w with colours forced on or off.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Stdout returns a Printer on standard output, coloured only when stdout is a
// terminal. On Windows the output goes through an ANSI translating writer.
func Stdout() *Printer {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewPrinter(colorable.NewColorableStdout(), tty)
}

// Error prints "error: msg" in red.
func (p *Printer) Error(msg string) {
	p.tagged(red, "error", msg)
}

// Info prints "info: msg" in blue.
func (p *Printer) Info(msg string) {
	p.tagged(blue, "info", msg)
}

// Print writes s unchanged.
func (p *Printer) Print(s string) {
	fmt.Fprint(p.w, s)
}

// Printf formats and writes a message unchanged.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Writer exposes the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) tagged(color, tag, msg string) {
	if p.color {
		fmt.Fprintf(p.w, "%s%s: %s%s\n", color, tag, msg, reset)
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", tag, msg)
}
