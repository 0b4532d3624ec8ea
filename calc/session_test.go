package calc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linalg/calc"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/registry"
)

type SessionSuite struct {
	suite.Suite
	out *bytes.Buffer
	s   *calc.Session
}

func (s *SessionSuite) SetupTest() {
	s.out = new(bytes.Buffer)
	s.s = calc.NewSession(s.out)
}

// run executes a script non-interactively and returns everything written.
func (s *SessionSuite) run(script string) string {
	s.out.Reset()
	s.Require().NoError(s.s.Run(strings.NewReader(script), false))

	return s.out.String()
}

func (s *SessionSuite) TestDefRendersFixedWidth() {
	out := s.run("def A 1 2; 3 4\n")
	s.Equal("A [2×2]:\n  [    1.0000     2.0000]\n  [    3.0000     4.0000]\n", out)
}

func (s *SessionSuite) TestSolveWithCheck() {
	require := require.New(s.T())
	out := s.run(`
# scenario from the textbook
def A 2 1 -1; -3 -1 2; -2 1 2
def b 8; -11; -3
solve x A b
`)
	require.Contains(out, "x [3×1]:\n  [    2.0000]\n  [    3.0000]\n  [   -1.0000]\n")
	require.Contains(out, "check A×x [3×1]:\n  [    8.0000]\n  [  -11.0000]\n  [   -3.0000]\n")

	x, err := s.s.Registry().Get("x")
	require.NoError(err)
	v, err := x.At(1, 0)
	require.NoError(err)
	require.InDelta(3.0, v, 1e-9)
}

func (s *SessionSuite) TestArithmetic() {
	require := require.New(s.T())
	out := s.run(`def A 1 2; 3 4
ident I 2
add S A I
sub D A I
mul P A I
scale K A -2
transpose T A
`)
	require.Contains(out, "S [2×2]:\n  [    2.0000     2.0000]\n  [    3.0000     5.0000]\n")
	require.Contains(out, "D [2×2]:\n  [    0.0000     2.0000]\n  [    3.0000     3.0000]\n")
	require.Contains(out, "P [2×2]:\n  [    1.0000     2.0000]\n  [    3.0000     4.0000]\n")
	require.Contains(out, "K [2×2]:\n  [   -2.0000    -4.0000]\n  [   -6.0000    -8.0000]\n")
	require.Contains(out, "T [2×2]:\n  [    1.0000     3.0000]\n  [    2.0000     4.0000]\n")
	require.Equal([]string{"A", "D", "I", "K", "P", "S", "T"}, s.s.Registry().Names())
}

func (s *SessionSuite) TestScalars() {
	require := require.New(s.T())
	out := s.run(`def M 1 2 3; 4 5 6; 7 8 9
trace M
rank M
det M
def R 2 1; 1 2
eig R
`)
	require.Contains(out, "trace(M) = 15\n")
	require.Contains(out, "rank(M) = 2\n")
	require.Contains(out, "det(M) = 0\nnote: M is singular (non-invertible)\n")
	require.Contains(out, "eigenvalues(R):\n  λ1 = 3.000000\n  λ2 = 1.000000\n")
	require.NotContains(out, "no convergence")
}

func (s *SessionSuite) TestEigenNonConvergenceNote() {
	out := s.run("def Q 0 -1; 1 0\neig Q\n")
	s.Contains(out, "note: no convergence after 1000 iterations")
}

func (s *SessionSuite) TestRREFAndInverse() {
	require := require.New(s.T())
	out := s.run(`def A 1 2 3; 4 5 6
rref R A
def B 4 7; 2 6
inv Bi B
`)
	require.Contains(out, "R [2×3]:\n  [    1.0000     0.0000    -1.0000]\n  [    0.0000     1.0000     2.0000]\n")
	require.Contains(out, "Bi [2×2]:\n  [    0.6000    -0.7000]\n  [   -0.2000     0.4000]\n")
}

func (s *SessionSuite) TestManage() {
	require := require.New(s.T())
	out := s.run("list\nnew Z 2 3\nlist\ndel Z\nlist\n")
	require.Equal("no matrices stored\n"+
		"Z [2×3]:\n  [    0.0000     0.0000     0.0000]\n  [    0.0000     0.0000     0.0000]\n"+
		"Z [2×3]\n"+
		"deleted Z\n"+
		"no matrices stored\n", out)
}

// TestErrorsDoNotStopTheSession checks that every failure is reported and
// the next command still runs.
func (s *SessionSuite) TestErrorsDoNotStopTheSession() {
	require := require.New(s.T())
	out := s.run(`frobnicate
show nothing
new Z two 3
def A 1 2; 3
def B 1 2; 2 4
def b 1; 2
solve x B b
det
def C 1 2 3; 4 5 6
det C
trace C
list
`)
	lines := strings.Split(out, "\n")
	errs := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "error: ") {
			errs++
		}
	}
	require.Equal(8, errs, out)
	require.Equal(8, s.s.Failures())
	require.Contains(out, "C [2×3]\n")
	require.True(s.s.Registry().Has("B"))
	require.False(s.s.Registry().Has("x"))
}

func (s *SessionSuite) TestQuitStopsReading() {
	out := s.run("ident I 1\nquit\nident J 1\n")
	s.Contains(out, "I [1×1]")
	s.NotContains(out, "J [1×1]")
}

func (s *SessionSuite) TestInteractivePrompt() {
	s.out.Reset()
	sess := calc.NewSession(s.out, calc.WithPrompt("mc> "))
	s.Require().NoError(sess.Run(strings.NewReader("help\n"), true))
	s.True(strings.HasPrefix(s.out.String(), "mc> commands:"))
	s.True(strings.HasSuffix(s.out.String(), "mc> "))
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestExecErrors(t *testing.T) {
	s := calc.NewSession(new(bytes.Buffer))

	_, err := s.Exec("bogus")
	require.ErrorIs(t, err, calc.ErrUnknownCommand)
	_, err = s.Exec("add X A")
	require.ErrorIs(t, err, calc.ErrUsage)
	_, err = s.Exec("ident I x")
	require.ErrorIs(t, err, calc.ErrBadNumber)
	_, err = s.Exec("ident I 0")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = s.Exec("show A")
	require.ErrorIs(t, err, registry.ErrNotFound)
	_, err = s.Exec("def A 1 2; 3")
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	quit, err := s.Exec("  QUIT  # bye")
	require.NoError(t, err)
	require.True(t, quit)

	quit, err = s.Exec("   # only a comment")
	require.NoError(t, err)
	require.False(t, quit)
}

func TestSessionOptions(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	s := calc.NewSession(out,
		calc.WithEpsilon(1e-3),
		calc.WithMaxIterations(5),
		calc.WithErrorOutput(errOut),
	)
	require.NoError(t, s.Run(strings.NewReader(`def A 1e-6 0; 0 1
det A
rank A
def Q 0 -1; 1 0
eig Q
inv X Q
inv Y A
`), false))

	require.Contains(t, out.String(), "det(A) = 0\nnote: A is singular")
	require.Contains(t, out.String(), "rank(A) = 1\n")
	require.Contains(t, out.String(), "no convergence after 5 iterations")
	require.Contains(t, out.String(), "X [2×2]:")
	require.Contains(t, errOut.String(), "error: ")
	require.Contains(t, errOut.String(), "singular")
	require.NotContains(t, out.String(), "error: ")
}
