// SPDX-License-Identifier: MIT

package calc

import "errors"

// Sentinel errors for command interpretation.
var (
	// ErrUnknownCommand indicates a command word the calculator does not know.
	ErrUnknownCommand = errors.New("calc: unknown command")

	// ErrUsage indicates a known command with the wrong number of arguments.
	ErrUsage = errors.New("calc: wrong arguments")

	// ErrBadNumber indicates an argument that does not parse as a number.
	ErrBadNumber = errors.New("calc: bad number")
)
