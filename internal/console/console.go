// Package console reads validated answers from whitespace-separated input and
// writes styled output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/songquiz/internal/ui/theme"
)

// ErrInputClosed is returned when input ends before a valid answer was read.
var ErrInputClosed = errors.New("input closed")

// Messages printed when a token is rejected.
const (
	YesNoRetry  = "Please type either Y or N."
	ChoiceRetry = "Invalid answer, try again."
)

// Prompter reads one token at a time and re-prompts until it is valid.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading tokens from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	return &Prompter{scanner: s, out: out}
}

// YesNo reads until it gets exactly "Y" or "N" and reports whether it was "Y".
func (p *Prompter) YesNo() (bool, error) {
	for {
		tok, err := p.next()
		if err != nil {
			return false, err
		}
		switch tok {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		p.Println(theme.Hint.Render(YesNoRetry))
	}
}

// Choice reads until it gets an integer in [lo, hi].
func (p *Prompter) Choice(lo, hi int) (int, error) {
	for {
		tok, err := p.next()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(tok)
		if convErr == nil && n >= lo && n <= hi {
			return n, nil
		}
		p.Println(theme.Hint.Render(ChoiceRetry))
	}
}

// Println writes a line. Styles are dropped when out is not a terminal.
func (p *Prompter) Println(v ...any) {
	lipgloss.Fprintln(p.out, v...)
}

// Printf writes formatted output. Styles are dropped when out is not a terminal.
func (p *Prompter) Printf(format string, v ...any) {
	lipgloss.Fprintf(p.out, format, v...)
}

func (p *Prompter) next() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", ErrInputClosed
}
