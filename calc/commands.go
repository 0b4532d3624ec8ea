// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// command describes one calculator verb. max < 0 means unbounded.
type command struct {
	min, max int
	usage    string
	run      func(s *Session, args []string) error
}

// binaryOp and unaryOp adapt matrix kernels to the generic handlers below.
type (
	binaryOp func(a, b matrix.Matrix) (*matrix.Dense, error)
	unaryOp  func(m matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error)
)

var commands = map[string]command{
	"new":   {3, 3, "new NAME ROWS COLS", (*Session).cmdNew},
	"def":   {2, -1, "def NAME v v ...; v v ...", (*Session).cmdDef},
	"ident": {2, 2, "ident NAME N", (*Session).cmdIdent},
	"show":  {1, 1, "show NAME", (*Session).cmdShow},
	"list":  {0, 0, "list", (*Session).cmdList},
	"del":   {1, 1, "del NAME", (*Session).cmdDel},

	"add":   {3, 3, "add DST A B", binary(matrix.Add)},
	"sub":   {3, 3, "sub DST A B", binary(matrix.Sub)},
	"mul":   {3, 3, "mul DST A B", binary(matrix.Mul)},
	"scale": {3, 3, "scale DST A K", (*Session).cmdScale},

	"transpose": {2, 2, "transpose DST A", unary(transpose)},
	"rref":      {2, 2, "rref DST A", unary(matrix.RREF)},
	"inv":       {2, 2, "inv DST A", unary(matrix.Inverse)},
	"solve":     {3, 3, "solve DST A B", (*Session).cmdSolve},

	"det":   {1, 1, "det A", (*Session).cmdDet},
	"trace": {1, 1, "trace A", (*Session).cmdTrace},
	"rank":  {1, 1, "rank A", (*Session).cmdRank},
	"eig":   {1, 1, "eig A", (*Session).cmdEig},

	"help": {0, 0, "help", (*Session).cmdHelp},
}

const helpText = `commands:
  new NAME ROWS COLS          zero matrix
  def NAME v v ...; v v ...   matrix from rows separated by ';'
  ident NAME N                N×N identity
  show NAME                   print a matrix
  list                        list stored matrices
  del NAME                    delete a matrix
  add|sub|mul DST A B         DST = A+B, A-B, A×B
  scale DST A K               DST = K·A
  transpose|rref|inv DST A    DST = Aᵀ, rref(A), A⁻¹
  solve DST A B               DST = x with A·x = B (B is a column)
  det|trace|rank|eig A        scalar results
  help                        this text
  quit                        leave
names are case-sensitive and may not contain spaces; '#' starts a comment
`

func transpose(m matrix.Matrix, _ ...matrix.Option) (*matrix.Dense, error) {
	return matrix.Transpose(m)
}

// store saves m under name and prints it.
func (s *Session) store(name string, m *matrix.Dense) error {
	if _, err := s.reg.Put(name, m); err != nil {
		return err
	}
	printMatrix(s.out, name, m)

	return nil
}

func binary(op binaryOp) func(*Session, []string) error {
	return func(s *Session, args []string) error {
		a, err := s.reg.Get(args[1])
		if err != nil {
			return err
		}
		b, err := s.reg.Get(args[2])
		if err != nil {
			return err
		}
		res, err := op(a, b)
		if err != nil {
			return err
		}

		return s.store(args[0], res)
	}
}

func unary(op unaryOp) func(*Session, []string) error {
	return func(s *Session, args []string) error {
		a, err := s.reg.Get(args[1])
		if err != nil {
			return err
		}
		res, err := op(a, s.kernelOpts...)
		if err != nil {
			return err
		}

		return s.store(args[0], res)
	}
}

func (s *Session) cmdNew(args []string) error {
	rows, err := parseInt(args[1])
	if err != nil {
		return err
	}
	cols, err := parseInt(args[2])
	if err != nil {
		return err
	}
	m, err := matrix.NewZeros(rows, cols)
	if err != nil {
		return err
	}

	return s.store(args[0], m)
}

// cmdDef parses "NAME v v ...; v v ..." into rows.
func (s *Session) cmdDef(args []string) error {
	var rows [][]float64
	for _, seg := range strings.Split(strings.Join(args[1:], " "), ";") {
		fields := strings.Fields(seg)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := parseFloat(f)
			if err != nil {
				return err
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return err
	}

	return s.store(args[0], m)
}

func (s *Session) cmdIdent(args []string) error {
	n, err := parseInt(args[1])
	if err != nil {
		return err
	}
	m, err := matrix.NewIdentity(n)
	if err != nil {
		return err
	}

	return s.store(args[0], m)
}

func (s *Session) cmdShow(args []string) error {
	m, err := s.reg.Get(args[0])
	if err != nil {
		return err
	}
	printMatrix(s.out, args[0], m)

	return nil
}

func (s *Session) cmdList(_ []string) error {
	entries := s.reg.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "no matrices stored")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s [%d×%d]\n", e.Name, e.Rows, e.Cols)
	}

	return nil
}

func (s *Session) cmdDel(args []string) error {
	if err := s.reg.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "deleted %s\n", args[0])

	return nil
}

func (s *Session) cmdScale(args []string) error {
	a, err := s.reg.Get(args[1])
	if err != nil {
		return err
	}
	k, err := parseFloat(args[2])
	if err != nil {
		return err
	}
	res, err := matrix.Scale(a, k)
	if err != nil {
		return err
	}

	return s.store(args[0], res)
}

// cmdSolve stores x and prints A·x so the result can be checked against B.
func (s *Session) cmdSolve(args []string) error {
	a, err := s.reg.Get(args[1])
	if err != nil {
		return err
	}
	b, err := s.reg.Get(args[2])
	if err != nil {
		return err
	}
	x, err := matrix.Solve(a, b, s.kernelOpts...)
	if err != nil {
		return err
	}
	if err = s.store(args[0], x); err != nil {
		return err
	}

	check, err := matrix.Mul(a, x)
	if err != nil {
		return err
	}
	printMatrix(s.out, fmt.Sprintf("check %s×%s", args[1], args[0]), check)

	return nil
}

func (s *Session) cmdDet(args []string) error {
	a, err := s.reg.Get(args[0])
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(a, s.kernelOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "det(%s) = %g\n", args[0], det)
	if math.Abs(det) < s.eps {
		fmt.Fprintf(s.out, "note: %s is singular (non-invertible)\n", args[0])
	}

	return nil
}

func (s *Session) cmdTrace(args []string) error {
	a, err := s.reg.Get(args[0])
	if err != nil {
		return err
	}
	tr, err := matrix.Trace(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "trace(%s) = %g\n", args[0], tr)

	return nil
}

func (s *Session) cmdRank(args []string) error {
	a, err := s.reg.Get(args[0])
	if err != nil {
		return err
	}
	r, err := matrix.Rank(a, s.kernelOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "rank(%s) = %d\n", args[0], r)

	return nil
}

func (s *Session) cmdEig(args []string) error {
	a, err := s.reg.Get(args[0])
	if err != nil {
		return err
	}
	vals, rep, err := matrix.EigenvaluesReport(a, s.kernelOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "eigenvalues(%s):\n", args[0])
	for i, v := range vals {
		fmt.Fprintf(s.out, "  λ%d = %.6f\n", i+1, v)
	}
	if !rep.Converged {
		fmt.Fprintf(s.out, "note: no convergence after %d iterations; values are approximate\n", rep.Iterations)
	}

	return nil
}

func (s *Session) cmdHelp(_ []string) error {
	fmt.Fprint(s.out, helpText)

	return nil
}

func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadNumber)
	}

	return n, nil
}

func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadNumber)
	}

	return v, nil
}
