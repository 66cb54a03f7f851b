// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// payout.go - payout lookups over built descriptors, for settlement code.

package contract

import "fmt"

// PayoutFor returns the first payout pair registered for outcome.
func (d *EnumDescriptor) PayoutFor(outcome string) (EnumerationPayout, bool) {
	for _, p := range d.OutcomePayouts {
		if p.Outcome == outcome {
			return p, true
		}
	}

	return EnumerationPayout{}, false
}

// PayoutAt evaluates the payout curve at outcome, applies the rounding
// intervals and splits totalCollateral: the offering party receives the
// rounded payout capped at totalCollateral, the accepting party the rest.
func (d *NumericalDescriptor) PayoutAt(outcome, totalCollateral uint64) (offer, accept uint64, err error) {
	v, err := d.PayoutFunction.Evaluate(outcome)
	if err != nil {
		return 0, 0, fmt.Errorf("NumericalDescriptor.PayoutAt: %w", err)
	}
	offer, err = d.RoundingIntervals.Round(outcome, v)
	if err != nil {
		return 0, 0, fmt.Errorf("NumericalDescriptor.PayoutAt: %w", err)
	}
	if offer > totalCollateral {
		offer = totalCollateral
	}

	return offer, totalCollateral - offer, nil
}

// TotalCollateral returns the sum of both collaterals, saturating at the
// maximum uint64.
func (c ContractInput) TotalCollateral() uint64 {
	total := c.OfferCollateral + c.AcceptCollateral
	if total < c.OfferCollateral {
		return ^uint64(0)
	}

	return total
}
