// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seidel/linsys"
)

// maxLineBytes bounds a single input line; rows of a few thousand numbers fit.
const maxLineBytes = 4 << 20

// line is a non-blank input line with its 1-based position.
type line struct {
	no     int
	fields []string
}

// readLines splits r into whitespace-separated fields per line, dropping
// blank lines but keeping the original line numbers.
func readLines(r io.Reader) ([]line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []line
	for no := 1; sc.Scan(); no++ {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			out = append(out, line{no: no, fields: f})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// parseSize reads the declared n from the first non-blank line.
func parseSize(l line) (int, error) {
	if len(l.fields) != 1 {
		return 0, formatErrorf(ReasonBadSize, l.no, nil, "got %d values", len(l.fields))
	}
	n, err := strconv.Atoi(l.fields[0])
	if err != nil {
		return 0, formatErrorf(ReasonBadSize, l.no, err, "%q", l.fields[0])
	}
	if n <= 0 {
		return 0, formatErrorf(ReasonBadSize, l.no, nil, "got %d", n)
	}

	return n, nil
}

// parseNumbers converts fields to finite float64 values.
func parseNumbers(no int, fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, formatErrorf(ReasonBadNumber, no, err, "%q", f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, formatErrorf(ReasonBadNumber, no, nil, "%q is not finite", f)
		}
		row[k] = v
	}

	return row, nil
}

// parseRows reads a size line followed by exactly n rows of width(n) values.
func parseRows(r io.Reader, width func(n int) int) ([][]float64, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, formatErrorf(ReasonEmpty, 0, nil, "")
	}
	n, err := parseSize(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines) != n+1 {
		return nil, formatErrorf(ReasonLineCount, 0, nil, "expected %d lines, got %d", n+1, len(lines))
	}

	want := width(n)
	rows := make([][]float64, n)
	for i, l := range lines[1:] {
		if len(l.fields) != want {
			return nil, formatErrorf(ReasonFieldCount, l.no, nil, "row contains %d elements, expected %d", len(l.fields), want)
		}
		if rows[i], err = parseNumbers(l.no, l.fields); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// ParseAugmented reads the augmented text format:
//
//	3
//	1.0 2.0 3.0 2.0
//	4.5 5.0 6.7 2.0
//	7.0 8.8 9.9 2.0
//
// The first non-blank line is n; then exactly n non-blank lines of n+1
// numbers (coefficients followed by the constant). Blank lines anywhere
// are ignored. Every failure is a *FormatError.
func ParseAugmented(r io.Reader) (*linsys.System, error) {
	rows, err := parseRows(r, func(n int) int { return n + 1 })
	if err != nil {
		return nil, err
	}
	sys, err := linsys.NewAugmented(rows)
	if err != nil {
		return nil, formatErrorf(ReasonShape, 0, err, "%v", err)
	}

	return sys, nil
}

// ParsePlain reads a coefficient matrix (n, then n rows of n numbers) and a
// separate constants source holding n numbers separated by any whitespace.
// Line numbers in errors from the constants source refer to that source.
func ParsePlain(matrixR, constantsR io.Reader) (*linsys.System, error) {
	a, err := parseRows(matrixR, func(n int) int { return n })
	if err != nil {
		return nil, err
	}
	lines, err := readLines(constantsR)
	if err != nil {
		return nil, err
	}

	b := make([]float64, 0, len(a))
	for _, l := range lines {
		vals, err := parseNumbers(l.no, l.fields)
		if err != nil {
			return nil, err
		}
		b = append(b, vals...)
	}
	if len(b) == 0 {
		return nil, formatErrorf(ReasonEmpty, 0, nil, "no constants")
	}
	if len(b) != len(a) {
		return nil, formatErrorf(ReasonFieldCount, 0, nil, "got %d constants, expected %d", len(b), len(a))
	}

	sys, err := linsys.New(a, b)
	if err != nil {
		return nil, formatErrorf(ReasonShape, 0, err, "%v", err)
	}

	return sys, nil
}

// ReadFile opens path and parses it with ParseAugmented. A missing file
// is reported as a *FormatError with ReasonNotFound; other open failures
// are returned as they are.
func ReadFile(path string) (*linsys.System, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseAugmented(f)
}

// ReadPlainFiles opens both files and parses them with ParsePlain.
func ReadPlainFiles(matrixPath, constantsPath string) (*linsys.System, error) {
	mf, err := open(matrixPath)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	cf, err := open(constantsPath)
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	return ParsePlain(mf, cf)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, formatErrorf(ReasonNotFound, 0, err, "%s", path)
	}

	return f, err
}
