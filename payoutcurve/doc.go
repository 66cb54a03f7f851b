// SPDX-License-Identifier: MIT
// Package payoutcurve provides the piecewise payout-curve primitive that a
// numeric contract descriptor is built from, together with the rounding
// rules applied to evaluated payouts.
//
// A payout function maps a numeric event outcome (as attested by oracles,
// e.g. a BTC/USD price) to the amount paid to the offering party. It is an
// ordered list of polynomial pieces; each piece is defined by the payout
// points it interpolates.
//
// Model:
//
//	Point            – (EventOutcome, OutcomePayout + ExtraPrecision/2^16)
//	PolynomialPiece  – ordered points; degree = len(points)-1 (one point ⇒ constant)
//	PayoutFunction   – ordered pieces
//	RoundingInterval – from BeginInterval upward, round payouts to RoundingMod
//
// Construction is deliberately permissive: NewPolynomialPiece and
// NewPayoutFunction only reject empty inputs. Ordering of outcomes inside
// and across pieces is left to the caller and is never rewritten here.
//
// Evaluation:
//
//	PolynomialPiece.Evaluate uses Lagrange interpolation in decimal
//	arithmetic (github.com/shopspring/decimal) so that payouts are exact up
//	to the division precision of the decimal package.
//
//	Time:  O(k²) per evaluation for a piece with k points.
//	Space: O(1) beyond the decimal temporaries.
//
// Errors (sentinel):
//
//	– ErrNoPoints           piece without points.
//	– ErrNoPieces           function without pieces.
//	– ErrOutcomeOutOfRange  outcome outside every piece.
//	– ErrDuplicateOutcome   two interpolation nodes share an outcome.
//	– ErrNoRoundingInterval no rounding interval begins at or below the outcome.
//	– ErrPayoutOverflow     rounded payout does not fit in uint64.
package payoutcurve
