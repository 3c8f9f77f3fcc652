// Package console renders the toolkit's primary output: command titles,
// section headers, status lines and per-module result trees. Diagnostic
// logging goes through logrus instead; this package only writes what the
// user asked for.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console writes formatted command output to a single destination,
// usually stdout.
type Console struct {
	out     io.Writer
	title   *color.Color
	header  *color.Color
	bold    *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	dim     *color.Color
}

// New returns a console writing to out. Color is handled by the color
// package's own TTY detection; DisableColor forces it off.
func New(out io.Writer) *Console {
	return &Console{
		out:     out,
		title:   color.New(color.FgMagenta, color.Bold),
		header:  color.New(color.Bold),
		bold:    color.New(color.Bold),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
}

// DisableColor turns off all coloring, for --no-color and for tests.
func DisableColor() {
	color.NoColor = true
}

// Title prints the boxed command title that opens every command's
// output.
func (c *Console) Title(text string) {
	rule := strings.Repeat("─", len([]rune(text))+2)
	c.title.Fprintf(c.out, "┌%s┐\n", rule)
	c.title.Fprintf(c.out, "│ %s │\n", text)
	c.title.Fprintf(c.out, "└%s┘\n", rule)
	fmt.Fprintln(c.out)
}

// Header prints a bold section header.
func (c *Console) Header(text string) {
	c.header.Fprintln(c.out, text)
	fmt.Fprintln(c.out)
}

// Printf prints plain output.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Success prints a green closing status line.
func (c *Console) Success(text string) {
	c.success.Fprintf(c.out, "✓ %s\n", text)
}

// Warning prints a yellow closing status line.
func (c *Console) Warning(text string) {
	c.warning.Fprintf(c.out, "! %s\n", text)
}

// Error prints a red closing status line.
func (c *Console) Error(text string) {
	c.failure.Fprintf(c.out, "✗ %s\n", text)
}

// Tree is a per-module result: a labelled list of outcome lines printed
// in the familiar branch layout.
type Tree struct {
	label string
	lines []treeLine
}

type treeLine struct {
	text   string
	failed bool
}

// NewTree returns an empty tree labelled with the module name.
func NewTree(label string) *Tree {
	return &Tree{label: label}
}

// Add appends a successful outcome line.
func (t *Tree) Add(format string, args ...interface{}) {
	t.lines = append(t.lines, treeLine{text: fmt.Sprintf(format, args...)})
}

// Fail appends a failed outcome line.
func (t *Tree) Fail(format string, args ...interface{}) {
	t.lines = append(t.lines, treeLine{text: fmt.Sprintf(format, args...), failed: true})
}

// Tree prints t followed by a blank line.
func (c *Console) Tree(t *Tree) {
	c.bold.Fprintln(c.out, t.label)
	for i, line := range t.lines {
		branch := "├─"
		if i == len(t.lines)-1 {
			branch = "└─"
		}
		c.dim.Fprint(c.out, branch+" ")
		if line.failed {
			c.failure.Fprintf(c.out, "✗ %s\n", line.text)
		} else {
			fmt.Fprintln(c.out, line.text)
		}
	}
	fmt.Fprintln(c.out)
}
