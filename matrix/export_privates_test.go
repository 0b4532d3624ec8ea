// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose the unexported Gram-Schmidt QR to matrix_test ONLY, without
//     widening the production API (the QR pair never leaves the package).
//   - The _test.go suffix keeps this file out of production builds.

// ExportedQRGramSchmidt runs qrGramSchmidt on a snapshot of a and unpacks the pair.
func ExportedQRGramSchmidt(a Matrix, eps float64) (q, r *Dense, err error) {
	d, err := denseSnapshot(a)
	if err != nil {
		return nil, nil, err
	}
	p := qrGramSchmidt(d, eps)

	return p.q, p.r, nil
}
