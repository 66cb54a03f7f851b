// SPDX-License-Identifier: MIT
// Package: radpool-dlc/payoutcurve
//
// types.go - value types and sentinel errors of the payout curve.

package payoutcurve

import "errors"

// Sentinel errors returned by constructors and evaluators.
var (
	// ErrNoPoints indicates a polynomial piece built from zero points.
	ErrNoPoints = errors.New("payoutcurve: polynomial piece needs at least one point")

	// ErrNoPieces indicates a payout function built from zero pieces.
	ErrNoPieces = errors.New("payoutcurve: payout function needs at least one piece")

	// ErrOutcomeOutOfRange indicates an outcome not covered by any piece.
	ErrOutcomeOutOfRange = errors.New("payoutcurve: outcome outside payout function domain")

	// ErrDuplicateOutcome indicates two points of one piece with the same
	// event outcome, which makes interpolation undefined.
	ErrDuplicateOutcome = errors.New("payoutcurve: duplicate event outcome in piece")

	// ErrNoRoundingInterval indicates no interval begins at or below the outcome.
	ErrNoRoundingInterval = errors.New("payoutcurve: no rounding interval covers outcome")

	// ErrPayoutOverflow indicates a rounded payout larger than uint64.
	ErrPayoutOverflow = errors.New("payoutcurve: payout overflows uint64")
)

// extraPrecisionScale is the denominator of Point.ExtraPrecision.
const extraPrecisionScale = 1 << 16

// Point is one payout point of a polynomial piece.
// The payout at EventOutcome is OutcomePayout + ExtraPrecision/2^16.
type Point struct {
	EventOutcome   uint64
	OutcomePayout  uint64
	ExtraPrecision uint16
}

// PolynomialPiece is the polynomial interpolating its points, in the order
// the points were supplied.
type PolynomialPiece struct {
	Points []Point
}

// PayoutFunction is an ordered sequence of polynomial pieces.
type PayoutFunction struct {
	Pieces []PolynomialPiece
}

// RoundingInterval rounds payouts to multiples of RoundingMod for outcomes
// at or above BeginInterval.
type RoundingInterval struct {
	BeginInterval uint64
	RoundingMod   uint64
}

// RoundingIntervals is the ordered list of rounding intervals of a curve.
type RoundingIntervals struct {
	Intervals []RoundingInterval
}
