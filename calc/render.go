// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// Format renders m one row per line as "[" + %10.4f cells + "]".
func Format(m *matrix.Dense) string {
	var b strings.Builder
	for _, row := range m.RowsSlice() {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%10.4f", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// printMatrix writes a "NAME [r×c]:" header followed by the indented rows.
func printMatrix(w io.Writer, name string, m *matrix.Dense) {
	fmt.Fprintf(w, "%s [%d×%d]:\n", name, m.Rows(), m.Cols())
	for _, line := range strings.SplitAfter(Format(m), "\n") {
		if line != "" {
			fmt.Fprint(w, "  ", line)
		}
	}
}
