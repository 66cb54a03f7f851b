// SPDX-License-Identifier: MIT
// Package: radpool-dlc/payoutcurve
//
// piece.go - polynomial piece and payout function construction/evaluation.

package payoutcurve

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// NewPolynomialPiece returns a piece over a copy of points.
// Points keep the given order; nothing is sorted or deduplicated.
func NewPolynomialPiece(points []Point) (PolynomialPiece, error) {
	if len(points) == 0 {
		return PolynomialPiece{}, fmt.Errorf("NewPolynomialPiece: %w", ErrNoPoints)
	}

	return PolynomialPiece{Points: append([]Point(nil), points...)}, nil
}

// NewPayoutFunction returns a payout function over a copy of pieces.
func NewPayoutFunction(pieces []PolynomialPiece) (PayoutFunction, error) {
	if len(pieces) == 0 {
		return PayoutFunction{}, fmt.Errorf("NewPayoutFunction: %w", ErrNoPieces)
	}
	for i, p := range pieces {
		if len(p.Points) == 0 {
			return PayoutFunction{}, fmt.Errorf("NewPayoutFunction: piece %d: %w", i, ErrNoPoints)
		}
	}

	return PayoutFunction{Pieces: append([]PolynomialPiece(nil), pieces...)}, nil
}

// Payout returns the exact payout value of the point.
func (p Point) Payout() decimal.Decimal {
	extra := decimal.New(int64(p.ExtraPrecision), 0).Div(decimal.New(extraPrecisionScale, 0))

	return fromUint64(p.OutcomePayout).Add(extra)
}

// Range returns the smallest and largest event outcome among the points.
// An empty piece reports (0, 0).
func (pp PolynomialPiece) Range() (lo, hi uint64) {
	for i, pt := range pp.Points {
		if i == 0 || pt.EventOutcome < lo {
			lo = pt.EventOutcome
		}
		if i == 0 || pt.EventOutcome > hi {
			hi = pt.EventOutcome
		}
	}

	return lo, hi
}

// Covers reports whether outcome lies within Range.
func (pp PolynomialPiece) Covers(outcome uint64) bool {
	if len(pp.Points) == 0 {
		return false
	}
	lo, hi := pp.Range()

	return lo <= outcome && outcome <= hi
}

// Evaluate returns the interpolated payout at outcome.
// Complexity: O(k²) for k points.
func (pp PolynomialPiece) Evaluate(outcome uint64) (decimal.Decimal, error) {
	if len(pp.Points) == 0 {
		return decimal.Zero, fmt.Errorf("PolynomialPiece.Evaluate: %w", ErrNoPoints)
	}
	if !pp.Covers(outcome) {
		return decimal.Zero, fmt.Errorf("PolynomialPiece.Evaluate(%d): %w", outcome, ErrOutcomeOutOfRange)
	}

	xs := make([]decimal.Decimal, len(pp.Points))
	for i, pt := range pp.Points {
		for j := 0; j < i; j++ {
			if pp.Points[j].EventOutcome == pt.EventOutcome {
				return decimal.Zero, fmt.Errorf("PolynomialPiece.Evaluate: outcome %d: %w", pt.EventOutcome, ErrDuplicateOutcome)
			}
		}
		// exact hit: no interpolation error
		if pt.EventOutcome == outcome {
			return pt.Payout(), nil
		}
		xs[i] = fromUint64(pt.EventOutcome)
	}

	x := fromUint64(outcome)
	sum := decimal.Zero
	for j, pt := range pp.Points {
		num, den := decimal.New(1, 0), decimal.New(1, 0)
		for m := range pp.Points {
			if m == j {
				continue
			}
			num = num.Mul(x.Sub(xs[m]))
			den = den.Mul(xs[j].Sub(xs[m]))
		}
		sum = sum.Add(pt.Payout().Mul(num).Div(den))
	}

	return sum, nil
}

// Evaluate returns the payout at outcome from the first piece covering it.
func (pf PayoutFunction) Evaluate(outcome uint64) (decimal.Decimal, error) {
	for _, piece := range pf.Pieces {
		if piece.Covers(outcome) {
			return piece.Evaluate(outcome)
		}
	}

	return decimal.Zero, fmt.Errorf("PayoutFunction.Evaluate(%d): %w", outcome, ErrOutcomeOutOfRange)
}

// Range returns the smallest and largest outcome covered by any piece.
func (pf PayoutFunction) Range() (lo, hi uint64) {
	first := true
	for _, piece := range pf.Pieces {
		if len(piece.Points) == 0 {
			continue
		}
		plo, phi := piece.Range()
		if first || plo < lo {
			lo = plo
		}
		if first || phi > hi {
			hi = phi
		}
		first = false
	}

	return lo, hi
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
