// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// descriptor_builder.go - enumerated and numerical descriptor builders.
//
// Contract:
//   - Add*/Set* calls only accumulate; every check runs in Build.
//   - Set* calls overwrite (last call wins); Add* calls append in call order.
//   - Build finalizes: the accumulated state moves into the result (or is
//     discarded on error) and the builder is left empty.

package contract

import (
	"github.com/jayendramadaram/radpool-dlc/oracle"
	"github.com/jayendramadaram/radpool-dlc/payoutcurve"
)

// EnumDescriptorBuilder accumulates outcome → payout pairs.
// The zero value is ready to use.
type EnumDescriptorBuilder struct {
	outcomePayouts []EnumerationPayout
}

// NewEnumDescriptorBuilder returns an empty builder.
func NewEnumDescriptorBuilder() *EnumDescriptorBuilder {
	return &EnumDescriptorBuilder{}
}

// AddPayout appends the payout pair for outcome. Repeated outcomes are kept
// as separate entries.
func (b *EnumDescriptorBuilder) AddPayout(outcome string, offer, accept uint64) *EnumDescriptorBuilder {
	b.outcomePayouts = append(b.outcomePayouts, EnumerationPayout{
		Outcome:      outcome,
		OfferPayout:  offer,
		AcceptPayout: accept,
	})

	return b
}

// Build returns the descriptor, or ErrMissingOutcomePayouts if no payout was added.
func (b *EnumDescriptorBuilder) Build() (*EnumDescriptor, error) {
	payouts := b.outcomePayouts
	*b = EnumDescriptorBuilder{}

	if len(payouts) == 0 {
		return nil, wrapf(methodEnumBuild, ErrMissingOutcomePayouts)
	}

	return &EnumDescriptor{OutcomePayouts: payouts}, nil
}

// NumericalDescriptorBuilder accumulates the payout curve, rounding intervals,
// difference parameters and oracle numeric encoding of a numeric descriptor.
// The zero value is ready to use.
type NumericalDescriptorBuilder struct {
	// piece number (1-based) → points in insertion order
	points            map[uint64][]payoutcurve.Point
	roundingIntervals []payoutcurve.RoundingInterval
	differenceParams  *DifferenceParams
	oracleNumericInfo *oracle.NumericInfo
}

// NewNumericalDescriptorBuilder returns an empty builder.
func NewNumericalDescriptorBuilder() *NumericalDescriptorBuilder {
	return &NumericalDescriptorBuilder{points: make(map[uint64][]payoutcurve.Point)}
}

// AddPayoutPoint appends a point to the piece numbered piece. Pieces may be
// filled in any order; contiguity of piece numbers is checked by Build.
func (b *NumericalDescriptorBuilder) AddPayoutPoint(piece, outcome, payout uint64, extraPrecision uint16) *NumericalDescriptorBuilder {
	if b.points == nil {
		b.points = make(map[uint64][]payoutcurve.Point)
	}
	b.points[piece] = append(b.points[piece], payoutcurve.Point{
		EventOutcome:   outcome,
		OutcomePayout:  payout,
		ExtraPrecision: extraPrecision,
	})

	return b
}

// AddRoundingInterval appends a rounding interval.
func (b *NumericalDescriptorBuilder) AddRoundingInterval(begin, roundingMod uint64) *NumericalDescriptorBuilder {
	b.roundingIntervals = append(b.roundingIntervals, payoutcurve.RoundingInterval{
		BeginInterval: begin,
		RoundingMod:   roundingMod,
	})

	return b
}

// SetDifferenceParams enables tolerant reconciliation of diverging oracle
// attestations.
func (b *NumericalDescriptorBuilder) SetDifferenceParams(maxErrorExp, minSupportExp uint, maximizeCoverage bool) *NumericalDescriptorBuilder {
	b.differenceParams = &DifferenceParams{
		MaxErrorExp:      maxErrorExp,
		MinSupportExp:    minSupportExp,
		MaximizeCoverage: maximizeCoverage,
	}

	return b
}

// SetOracleNumericInfo sets the attestation base and per-oracle digit counts.
// digitCounts is copied.
func (b *NumericalDescriptorBuilder) SetOracleNumericInfo(base uint, digitCounts []uint) *NumericalDescriptorBuilder {
	b.oracleNumericInfo = &oracle.NumericInfo{
		Base:        base,
		DigitCounts: append([]uint(nil), digitCounts...),
	}

	return b
}

// Build validates the accumulated state and assembles the descriptor.
//
// Errors, in check order:
//   - ErrInvalidPayoutPoints                fewer than two distinct piece numbers.
//   - ErrInvalidRoundingInterval            no rounding interval.
//   - ErrMissingOracleNumericInfo           SetOracleNumericInfo never called.
//   - ErrInvalidPayoutFunctionPieceSequence piece numbers are not exactly 1..N.
//   - ErrPayoutCurve                        payoutcurve rejected a piece or the function.
func (b *NumericalDescriptorBuilder) Build() (*NumericalDescriptor, error) {
	points, intervals := b.points, b.roundingIntervals
	diff, info := b.differenceParams, b.oracleNumericInfo
	*b = NumericalDescriptorBuilder{}

	if len(points) < minPayoutPieces {
		return nil, wrapf(methodNumericalBuild, ErrInvalidPayoutPoints)
	}
	if len(intervals) == 0 {
		return nil, wrapf(methodNumericalBuild, ErrInvalidRoundingInterval)
	}
	if info == nil {
		return nil, wrapf(methodNumericalBuild, ErrMissingOracleNumericInfo)
	}

	pieces, err := assemblePieces(points)
	if err != nil {
		return nil, err
	}
	pf, err := payoutcurve.NewPayoutFunction(pieces)
	if err != nil {
		return nil, curveErrorf(methodNumericalBuild, "payout function", err)
	}

	return &NumericalDescriptor{
		PayoutFunction:    pf,
		RoundingIntervals: payoutcurve.RoundingIntervals{Intervals: intervals},
		DifferenceParams:  diff,
		OracleNumericInfo: *info,
	}, nil
}
