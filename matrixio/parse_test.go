// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrixio"
)

func TestParseAugmented_Valid(t *testing.T) {
	in := "\n3\n1.0 2.0 3.0 2.0\n\n4.5 5.0 6.7 2.0\n7.0 8.8 9.9 2.0\n\n"
	sys, err := matrixio.ParseAugmented(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, sys.Size())
	require.Equal(t, [][]float64{{1, 2, 3}, {4.5, 5, 6.7}, {7, 8.8, 9.9}}, sys.CoefficientRows())
	require.Equal(t, []float64{2, 2, 2}, sys.Constants())
	require.Equal(t, linsys.Permutation{0, 1, 2}, sys.ColumnOrder())
}

func TestParseAugmented_Scientific(t *testing.T) {
	sys, err := matrixio.ParseAugmented(strings.NewReader("1\n2e1\t-4E-1\n"))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{20}}, sys.CoefficientRows())
	require.Equal(t, []float64{-0.4}, sys.Constants())
}

func TestParseAugmented_Errors(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		reason matrixio.Reason
		line   int
	}{
		{"empty", "", matrixio.ReasonEmpty, 0},
		{"only blanks", "\n  \n\t\n", matrixio.ReasonEmpty, 0},
		{"size not integer", "three\n1 2\n", matrixio.ReasonBadSize, 1},
		{"size float", "2.0\n1 2 3\n4 5 6\n", matrixio.ReasonBadSize, 1},
		{"size two fields", "2 2\n1 2 3\n4 5 6\n", matrixio.ReasonBadSize, 1},
		{"size zero", "0\n", matrixio.ReasonBadSize, 1},
		{"size negative", "\n-1\n", matrixio.ReasonBadSize, 2},
		{"too few rows", "2\n1 2 3\n", matrixio.ReasonLineCount, 0},
		{"too many rows", "1\n1 2\n3 4\n", matrixio.ReasonLineCount, 0},
		{"short row", "2\n1 2 3\n4 5\n", matrixio.ReasonFieldCount, 3},
		{"long row", "2\n1 2 3 9\n4 5 6\n", matrixio.ReasonFieldCount, 2},
		{"bad number", "2\n1 2 3\n4 x 6\n", matrixio.ReasonBadNumber, 3},
		{"nan", "1\nNaN 1\n", matrixio.ReasonBadNumber, 2},
		{"inf", "1\n1 +Inf\n", matrixio.ReasonBadNumber, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys, err := matrixio.ParseAugmented(strings.NewReader(tc.in))
			require.Nil(t, sys)
			var fe *matrixio.FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
			require.Equal(t, tc.reason, fe.Reason)
			require.Equal(t, tc.line, fe.Line)
			require.Equal(t, tc.reason, matrixio.ReasonOf(err))
			require.False(t, matrixio.IsNotFound(err))
		})
	}
}

func TestParseAugmented_BadNumberUnwraps(t *testing.T) {
	_, err := matrixio.ParseAugmented(strings.NewReader("1\n1 abc\n"))
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Contains(t, err.Error(), "invalid number format (line 2)")
	require.Contains(t, err.Error(), `"abc"`)
}

func TestParsePlain(t *testing.T) {
	sys, err := matrixio.ParsePlain(
		strings.NewReader("2\n3 1\n1 2\n"),
		strings.NewReader("5\n\n5\n"),
	)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {1, 2}}, sys.CoefficientRows())
	require.Equal(t, []float64{5, 5}, sys.Constants())

	sys, err = matrixio.ParsePlain(strings.NewReader("2\n3 1\n1 2\n"), strings.NewReader("5 5"))
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5}, sys.Constants())
}

func TestParsePlain_Errors(t *testing.T) {
	_, err := matrixio.ParsePlain(strings.NewReader("2\n3 1 0\n1 2 0\n"), strings.NewReader("5 5"))
	require.Equal(t, matrixio.ReasonFieldCount, matrixio.ReasonOf(err))

	_, err = matrixio.ParsePlain(strings.NewReader("2\n3 1\n1 2\n"), strings.NewReader("5"))
	require.Equal(t, matrixio.ReasonFieldCount, matrixio.ReasonOf(err))

	_, err = matrixio.ParsePlain(strings.NewReader("2\n3 1\n1 2\n"), strings.NewReader(""))
	require.Equal(t, matrixio.ReasonEmpty, matrixio.ReasonOf(err))

	_, err = matrixio.ParsePlain(strings.NewReader("2\n3 1\n1 2\n"), strings.NewReader("5\nfive\n"))
	var fe *matrixio.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, matrixio.ReasonBadNumber, fe.Reason)
	require.Equal(t, 2, fe.Line)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n4 1 5\n1 4 5\n"), 0o600))

	sys, err := matrixio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, sys.Size())

	_, err = matrixio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.True(t, matrixio.IsNotFound(err))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "missing.txt")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2\n4 1 5\n"), 0o600))
	_, err = matrixio.ReadFile(bad)
	require.Equal(t, matrixio.ReasonLineCount, matrixio.ReasonOf(err))
	require.Contains(t, err.Error(), "expected 3 lines, got 2")
}

func TestReadPlainFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("1\n2\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("4\n"), 0o600))

	sys, err := matrixio.ReadPlainFiles(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4}, sys.Constants())

	_, err = matrixio.ReadPlainFiles(a, filepath.Join(dir, "nope"))
	require.True(t, matrixio.IsNotFound(err))
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "file not found", matrixio.ReasonNotFound.String())
	require.Equal(t, "Reason(42)", matrixio.Reason(42).String())
	require.Equal(t, matrixio.Reason(0), matrixio.ReasonOf(errors.New("plain")))
}
