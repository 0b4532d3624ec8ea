// SPDX-License-Identifier: MIT

// Package calc is a line-oriented matrix calculator.
//
// It is factored out of cmd/matcalc so that scripts can be executed and
// checked in tests. A Session owns a registry.Registry of named matrices and
// interprets one command per line:
//
//	new NAME ROWS COLS          zero matrix
//	def NAME v v ...; v v ...   rows separated by ';'
//	ident NAME N                identity matrix
//	show NAME | list | del NAME
//	add|sub|mul DST A B
//	scale DST A K
//	transpose|rref|inv DST A
//	solve DST A B               also prints A×DST as a check
//	det A | trace A | rank A | eig A
//	help | quit
//
// Text after '#' is a comment. Command errors are reported as "error: ..."
// and the session carries on; only quit (or end of input) ends it.
//
// Matrices render one row per line, each cell as %10.4f inside brackets.
package calc
