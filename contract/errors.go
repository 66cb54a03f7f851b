// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// errors.go - sentinel errors for the contract package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Builders attach method context with %w, e.g.
//     "NumericalDescriptorBuilder.Build: contract: at least one rounding interval is required".
//   - Failures of the payout-curve primitive are returned wrapped twice:
//     errors.Is(err, ErrPayoutCurve) holds, and so does errors.Is(err, <payoutcurve cause>).
//   - Nothing in this package panics on caller input.
//
// Priority when several checks fail (first wins):
//   - CreateContractInfo:         ErrMissingDescriptor → ErrMissingOracles → ErrInvalidThreshold.
//   - NumericalDescriptorBuilder: ErrInvalidPayoutPoints → ErrInvalidRoundingInterval →
//     ErrMissingOracleNumericInfo → ErrInvalidPayoutFunctionPieceSequence → ErrPayoutCurve.

package contract

import (
	"errors"
	"fmt"
)

// Contract errors.
var (
	// ErrMissingContractInfo indicates ContractBuilder.Build was called before
	// any contract info was attached.
	ErrMissingContractInfo = errors.New("contract: at least one contract info is required")

	// ErrMissingOracles indicates an empty oracle public key list.
	ErrMissingOracles = errors.New("contract: at least one oracle is required")

	// ErrInvalidThreshold indicates a threshold of zero or above the number of oracles.
	ErrInvalidThreshold = errors.New("contract: threshold is out of range or is zero")

	// ErrMissingDescriptor indicates a nil Descriptor handed to CreateContractInfo.
	ErrMissingDescriptor = errors.New("contract: descriptor is required")
)

// Descriptor errors.
var (
	// ErrMissingOutcomePayouts indicates an enumerated descriptor without payouts.
	ErrMissingOutcomePayouts = errors.New("contract: at least one outcome payout is required")

	// ErrMissingOracleNumericInfo indicates a numeric descriptor without the
	// oracle base and digit counts.
	ErrMissingOracleNumericInfo = errors.New("contract: oracle numeric info is required")

	// ErrInvalidPayoutPoints indicates fewer than two payout function pieces.
	ErrInvalidPayoutPoints = errors.New("contract: at least two payout function pieces are required")

	// ErrInvalidRoundingInterval indicates a numeric descriptor without rounding intervals.
	ErrInvalidRoundingInterval = errors.New("contract: at least one rounding interval is required")

	// ErrInvalidPayoutFunctionPieceSequence indicates piece numbers that are
	// not exactly 1..N.
	ErrInvalidPayoutFunctionPieceSequence = errors.New("contract: invalid payout function piece sequence")

	// ErrPayoutCurve wraps an error returned by the payoutcurve constructors.
	ErrPayoutCurve = errors.New("contract: payout curve construction failed")
)

// Method names used as error context.
const (
	methodEnumBuild          = "EnumDescriptorBuilder.Build"
	methodNumericalBuild     = "NumericalDescriptorBuilder.Build"
	methodContractBuild      = "ContractBuilder.Build"
	methodCreateContractInfo = "CreateContractInfo"
)

// wrapf prefixes err with the method name, keeping err matchable.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// curveErrorf wraps a payoutcurve failure into ErrPayoutCurve with context.
func curveErrorf(method, format string, cause error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), ErrPayoutCurve, cause)
}
