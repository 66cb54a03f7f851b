// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// assemble.go - turns piece-numbered point lists into ordered curve pieces.
//
// Addressing is strict: with N distinct piece numbers present, they must be
// exactly 1..N. A gap is an error and is never filled. Points inside a
// piece keep insertion order.

package contract

import (
	"fmt"

	"github.com/jayendramadaram/radpool-dlc/payoutcurve"
)

// minPayoutPieces is the smallest number of pieces a numeric payout curve may have.
const minPayoutPieces = 2

// assemblePieces returns one polynomial piece per piece number, ordered 1..N.
// Complexity: O(N + total points) time and space.
func assemblePieces(points map[uint64][]payoutcurve.Point) ([]payoutcurve.PolynomialPiece, error) {
	n := uint64(len(points))
	pieces := make([]payoutcurve.PolynomialPiece, 0, n)
	for i := uint64(1); i <= n; i++ {
		pts, ok := points[i]
		if !ok {
			return nil, fmt.Errorf("%s: piece %d of %d missing: %w", methodNumericalBuild, i, n, ErrInvalidPayoutFunctionPieceSequence)
		}
		piece, err := payoutcurve.NewPolynomialPiece(pts)
		if err != nil {
			return nil, curveErrorf(methodNumericalBuild, "piece %d", err, i)
		}
		pieces = append(pieces, piece)
	}

	return pieces, nil
}
