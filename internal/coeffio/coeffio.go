// Package coeffio reads Bézier coefficients from and writes sleefes to the
// plain-text files used by the sleefe command.
//
// A coefficient file holds whitespace-separated tokens: the degree d, an
// integer of at least 2, followed by the d+1 control values.
//
// A sleefe file starts with an empty line, followed by the number of segments
// n, the n+1 upper breakpoint values and the n+1 lower breakpoint values, one
// per line, in fixed-point notation.
package coeffio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"honnef.co/go/sleefe"
)

var (
	ErrDegreeTooLow = errors.New("coeffio: degree of the polynomial function must be at least 2")
	ErrTruncated    = errors.New("coeffio: unexpected end of input")
	ErrTrailingData = errors.New("coeffio: unexpected data after the last value")
)

type tokens struct {
	sc *bufio.Scanner
	n  int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (tk *tokens) next(what string) (string, error) {
	if !tk.sc.Scan() {
		if err := tk.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s", ErrTruncated, what)
	}
	tk.n++
	return tk.sc.Text(), nil
}

func (tk *tokens) readInt(what string) (int, error) {
	s, err := tk.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s): %w", tk.n, what, err)
	}
	return v, nil
}

func (tk *tokens) readFloat(what string) (float64, error) {
	s, err := tk.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s): %w", tk.n, what, err)
	}
	return v, nil
}

func (tk *tokens) readFloats(n int, what string) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := tk.readFloat(fmt.Sprintf("%s %d", what, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (tk *tokens) end() error {
	if tk.sc.Scan() {
		return fmt.Errorf("%w: %q", ErrTrailingData, tk.sc.Text())
	}
	return tk.sc.Err()
}

// ReadCoefficients reads a degree followed by that many plus one control
// values.
func ReadCoefficients(r io.Reader) ([]float64, error) {
	tk := newTokens(r)
	degree, err := tk.readInt("degree")
	if err != nil {
		return nil, err
	}
	if degree < sleefe.MinimumDegree {
		return nil, fmt.Errorf("%w: got %d", ErrDegreeTooLow, degree)
	}
	coeffs, err := tk.readFloats(degree+1, "control value")
	if err != nil {
		return nil, err
	}
	if err := tk.end(); err != nil {
		return nil, err
	}
	return coeffs, nil
}

// ReadCoefficientsFile reads the coefficient file at path.
func ReadCoefficientsFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	coeffs, err := ReadCoefficients(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coeffs, nil
}

// WriteCoefficients writes control values in the format read by
// ReadCoefficients.
func WriteCoefficients(w io.Writer, coeffs []float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(coeffs)-1)
	for _, c := range coeffs {
		fmt.Fprintln(bw, strconv.FormatFloat(c, 'g', -1, 64))
	}
	return bw.Flush()
}

// WriteSleefe writes s with precision decimals per value.
func WriteSleefe(w io.Writer, s sleefe.Sleefe, precision int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, s.NumberOfSegments())
	for _, v := range s.UpperValues() {
		fmt.Fprintln(bw, strconv.FormatFloat(v, 'f', precision, 64))
	}
	for _, v := range s.LowerValues() {
		fmt.Fprintln(bw, strconv.FormatFloat(v, 'f', precision, 64))
	}
	return bw.Flush()
}

// WriteSleefeFile writes s to the file at path, replacing it if it exists.
func WriteSleefeFile(path string, s sleefe.Sleefe, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSleefe(f, s, precision); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// ReadSleefe reads a sleefe written by WriteSleefe.
func ReadSleefe(r io.Reader) (sleefe.Sleefe, error) {
	tk := newTokens(r)
	n, err := tk.readInt("number of segments")
	if err != nil {
		return sleefe.Sleefe{}, err
	}
	if n < 1 {
		return sleefe.Sleefe{}, fmt.Errorf("%w: %d", sleefe.ErrInvalidSegmentCount, n)
	}
	upper, err := tk.readFloats(n+1, "upper value")
	if err != nil {
		return sleefe.Sleefe{}, err
	}
	lower, err := tk.readFloats(n+1, "lower value")
	if err != nil {
		return sleefe.Sleefe{}, err
	}
	if err := tk.end(); err != nil {
		return sleefe.Sleefe{}, err
	}
	return sleefe.NewSleefe(lower, upper)
}
