// SPDX-License-Identifier: MIT

package calc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/registry"
)

// Session interprets calculator commands against its own registry.
// A Session is not safe for concurrent Exec calls; its registry is.
type Session struct {
	reg        *registry.Registry
	out        io.Writer
	errOut     io.Writer
	prompt     string
	eps        float64
	kernelOpts []matrix.Option
	failures   int
}

// NewSession returns a Session writing results to out.
func NewSession(out io.Writer, opts ...Option) *Session {
	s := &Session{
		reg:    registry.New(),
		out:    out,
		prompt: DefaultPrompt,
		eps:    matrix.Epsilon,
	}
	for _, set := range opts {
		if set != nil {
			set(s)
		}
	}
	if s.errOut == nil {
		s.errOut = out
	}

	return s
}

// Registry exposes the session's named matrices.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Failures returns how many commands have failed so far.
func (s *Session) Failures() int { return s.failures }

// Exec runs a single command line. quit reports whether the line asked to
// end the session. Blank lines and comments are no-ops.
func (s *Session) Exec(line string) (quit bool, err error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	word := strings.ToLower(fields[0])
	switch word {
	case "quit", "exit", "q":
		return true, nil
	}

	cmd, ok := commands[word]
	if !ok {
		return false, fmt.Errorf("%q (try help): %w", fields[0], ErrUnknownCommand)
	}
	args := fields[1:]
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		return false, fmt.Errorf("usage: %s: %w", cmd.usage, ErrUsage)
	}

	return false, cmd.run(s, args)
}

// Run executes lines from in until quit or end of input. Failed commands
// are reported as "error: ..." on the error output and do not stop the run.
// When interactive is set, the prompt is written before every line.
// The returned error is a read error from in, never a command error.
func (s *Session) Run(in io.Reader, interactive bool) error {
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			break
		}

		quit, err := s.Exec(sc.Text())
		if err != nil {
			s.failures++
			fmt.Fprintf(s.errOut, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}

	return sc.Err()
}
