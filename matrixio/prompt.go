// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/seidel/linsys"
)

// Input methods offered by Prompter.Choice.
const (
	ChoiceManual = 1
	ChoiceFile   = 2
)

// Prompter drives the interactive console dialog. Every question re-prompts
// until the answer is valid; when In runs dry the method returns
// io.ErrUnexpectedEOF.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer

	// ReadFile loads a system by name for the file branch of ReadSystem.
	// Defaults to the package-level ReadFile.
	ReadFile func(path string) (*linsys.System, error)
}

// NewPrompter returns a Prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Prompter{sc: sc, out: out, ReadFile: ReadFile}
}

// ask prints prompt and returns the next input line, trimmed.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

func (p *Prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Choice asks for the input method and returns ChoiceManual or ChoiceFile.
func (p *Prompter) Choice() (int, error) {
	for {
		ans, err := p.ask("\nChoose input method:\n1. Manual entry\n2. File input\nEnter choice (1/2): ")
		if err != nil {
			return 0, err
		}
		switch ans {
		case "1":
			return ChoiceManual, nil
		case "2":
			return ChoiceFile, nil
		}
		p.say("Invalid choice. Please enter 1 or 2.")
	}
}

// Size asks for the number of unknowns, a positive integer.
func (p *Prompter) Size() (int, error) {
	for {
		ans, err := p.ask("\nEnter the side length of the matrix (N): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(ans)
		switch {
		case err != nil:
			p.say("Invalid input! Please enter a valid integer.")
		case n <= 0:
			p.say("Please enter a positive integer!")
		default:
			return n, nil
		}
	}
}

// AugmentedRows asks for n rows of n+1 numbers each. A bad row is asked
// again; rows already accepted are kept.
func (p *Prompter) AugmentedRows(n int) ([][]float64, error) {
	p.say("\nEnter %d rows, each containing %d numbers (coefficients followed by constant):", n, n+1)

	rows := make([][]float64, 0, n)
	for i := 0; i < n; {
		ans, err := p.ask(fmt.Sprintf("Row %d: ", i+1))
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(ans)
		if len(fields) != n+1 {
			p.say("Error: Expected %d elements, got %d. Please try again.", n+1, len(fields))
			continue
		}
		row, err := parseNumbers(i+1, fields)
		if err != nil {
			p.say("Error: Please enter valid numbers only. Try again.")
			continue
		}
		rows = append(rows, row)
		i++
	}

	return rows, nil
}

// Epsilon asks for the stopping tolerance, a finite number > 0.
func (p *Prompter) Epsilon() (float64, error) {
	for {
		ans, err := p.ask("\nEnter precision (small number epsilon): ")
		if err != nil {
			return 0, err
		}
		eps, err := strconv.ParseFloat(ans, 64)
		switch {
		case err != nil || math.IsNaN(eps):
			p.say("Invalid input! Please enter a valid float.")
		case eps <= 0 || math.IsInf(eps, 0):
			p.say("Please enter a positive float!")
		default:
			return eps, nil
		}
	}
}

// Filename asks for a non-empty file name.
func (p *Prompter) Filename() (string, error) {
	for {
		ans, err := p.ask("\nEnter filename: ")
		if err != nil {
			return "", err
		}
		if ans != "" {
			return ans, nil
		}
	}
}

// ReadSystem runs the whole input dialog: choose a method, then either
// type the augmented rows or name files until one parses.
func (p *Prompter) ReadSystem() (*linsys.System, error) {
	p.say("Matrix Input Program")
	p.say("====================")

	choice, err := p.Choice()
	if err != nil {
		return nil, err
	}
	if choice == ChoiceManual {
		n, err := p.Size()
		if err != nil {
			return nil, err
		}
		rows, err := p.AugmentedRows(n)
		if err != nil {
			return nil, err
		}
		return linsys.NewAugmented(rows)
	}

	p.writeFormatHelp()
	for {
		name, err := p.Filename()
		if err != nil {
			return nil, err
		}
		sys, err := p.ReadFile(name)
		if err == nil {
			return sys, nil
		}
		p.say("Error: %v", err)
		p.say("Please try another file or check the format.")
	}
}

func (p *Prompter) writeFormatHelp() {
	p.say("\nFile format requirements:")
	p.say("- First line: matrix size N (positive integer)")
	p.say("- Next N lines: N coefficients followed by the constant, separated by spaces")
	p.say("Example file content:")
	p.say("3")
	p.say("1.0 2.0 3.0 2.0")
	p.say("4.5 5.0 6.7 2.0")
	p.say("7.0 8.8 9.9 2.0")
}
