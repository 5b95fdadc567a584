package pluginversion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Prompter asks the operator a question and returns the answer, or def when
// the answer is empty.
type Prompter interface {
	Ask(question, def string) (string, error)
}

// ConsolePrompter reads answers line by line from an input stream.
type ConsolePrompter struct {
	in    *bufio.Reader
	out   io.Writer
	style lipgloss.Style
	// echo writes a newline after each answer. Input that does not come from
	// a terminal is not echoed, so without it the next line of output would
	// continue on the prompt line.
	echo bool
}

// NewConsolePrompter returns a prompter reading from in and writing prompts
// to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:    bufio.NewReader(in),
		out:   out,
		style: lipgloss.NewRenderer(out).NewStyle().Bold(true),
		echo:  !isTerminal(in),
	}
}

// Ask prints "<question> (default: <def>): " and reads one line.
// An empty line, or end of input, selects def.
func (p *ConsolePrompter) Ask(question, def string) (string, error) {
	fmt.Fprint(p.out, p.style.Render(fmt.Sprintf("%s (default: %s):", question, def))+" ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if p.echo {
		fmt.Fprintln(p.out)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// DefaultsPrompter answers every question with its default, printing the
// question and the chosen value so the trace reads the same as an
// interactive run.
type DefaultsPrompter struct {
	Out io.Writer
}

// Ask returns def.
func (p DefaultsPrompter) Ask(question, def string) (string, error) {
	if p.Out != nil {
		fmt.Fprintf(p.Out, "%s (default: %s): %s\n", question, def, def)
	}
	return def, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
