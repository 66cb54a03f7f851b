// SPDX-License-Identifier: MIT
// Package: radpool-dlc/payoutcurve
//
// rounding.go - rounding of evaluated payouts.
//
// Selection rule: the interval with the greatest BeginInterval not above the
// outcome wins; among equal begins the one stored last wins.

package payoutcurve

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ModFor returns the rounding modulus that applies to outcome.
func (ri RoundingIntervals) ModFor(outcome uint64) (uint64, error) {
	found := false
	var best RoundingInterval
	for _, iv := range ri.Intervals {
		if iv.BeginInterval > outcome {
			continue
		}
		if !found || iv.BeginInterval >= best.BeginInterval {
			best, found = iv, true
		}
	}
	if !found {
		return 0, fmt.Errorf("RoundingIntervals.ModFor(%d): %w", outcome, ErrNoRoundingInterval)
	}

	return best.RoundingMod, nil
}

// Round rounds payout (evaluated at outcome) half-up to the applicable
// multiple. Negative payouts become 0. A modulus of 0 or 1 rounds to the
// nearest integer.
func (ri RoundingIntervals) Round(outcome uint64, payout decimal.Decimal) (uint64, error) {
	mod, err := ri.ModFor(outcome)
	if err != nil {
		return 0, err
	}
	if payout.Sign() <= 0 {
		return 0, nil
	}

	var rounded decimal.Decimal
	if mod <= 1 {
		rounded = payout.Round(0)
	} else {
		dm := fromUint64(mod)
		rem := payout.Mod(dm)
		if rem.Mul(decimal.New(2, 0)).GreaterThanOrEqual(dm) {
			rounded = payout.Sub(rem).Add(dm)
		} else {
			rounded = payout.Sub(rem)
		}
	}

	bi := rounded.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("RoundingIntervals.Round(%d): %s: %w", outcome, rounded.String(), ErrPayoutOverflow)
	}

	return bi.Uint64(), nil
}
