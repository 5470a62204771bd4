// Prompt helpers for the interactive menu.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// prompter reads answers line by line so numeric and free-text prompts
// can be mixed without buffering surprises.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// readLine prints the label and returns one trimmed input line.
// Returns the empty string on EOF.
func (p *prompter) readLine(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// readInt prompts until the answer parses as an integer. EOF yields 0.
func (p *prompter) readInt(label string) int {
	for {
		line := p.readLine(label)
		if line == "" {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		return n
	}
}

// readFloat prompts until the answer parses as a number. EOF yields 0.
func (p *prompter) readFloat(label string) float64 {
	for {
		line := p.readLine(label)
		if line == "" {
			return 0
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		return f
	}
}

// printErr renders a manager error and lets the menu loop continue.
func (p *prompter) printErr(err error) {
	fmt.Fprintf(p.out, "[ERROR] %v\n", err)
}

// printOK renders a success message.
func (p *prompter) printOK(format string, args ...any) {
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}
