// SPDX-License-Identifier: MIT
// Package contract builds and validates the terms of a Discreet Log
// Contract: fee rate, both collaterals, and one or more contract infos, each
// binding an outcome → payout descriptor to a set of oracles, an event id and
// an agreement threshold.
//
// The resulting ContractInput is what both parties must agree on byte for
// byte before an offer is sent; downstream code (CET construction,
// settlement) trusts it without re-checking.
//
// Builders:
//
//	EnumDescriptorBuilder      – discrete outcome → (offer, accept) payouts
//	NumericalDescriptorBuilder – piecewise polynomial payout curve, rounding
//	                             intervals, difference params, oracle base/digits
//	ContractBuilder            – fee rate, collaterals, contract infos
//	CreateContractInfo         – descriptor + oracle keys + event id + threshold
//
// Every builder is a two-state machine: Open while Add*/Set* calls
// accumulate input, finalized by Build. Validation happens only in Build
// (and in CreateContractInfo), because numeric pieces may arrive in any
// order and only make sense once the full set is known. Build moves the
// accumulated state into its result and leaves the builder empty; the
// returned value shares no memory with the builder.
//
// Builders are pure, synchronous and allocation-light. A single builder must
// not be mutated from several goroutines at once; distinct builders and all
// built values are safe to use anywhere.
//
// Errors (sentinel, see errors.go):
//
//	– ErrMissingContractInfo, ErrMissingOracles, ErrInvalidThreshold, ErrMissingDescriptor
//	– ErrMissingOutcomePayouts, ErrMissingOracleNumericInfo, ErrInvalidPayoutPoints,
//	  ErrInvalidRoundingInterval, ErrInvalidPayoutFunctionPieceSequence
//	– ErrPayoutCurve (wraps payoutcurve errors)
//
// Example usage:
//
//	desc, err := contract.NewNumericalDescriptorBuilder().
//	    AddPayoutPoint(1, 0, 0, 0).
//	    AddPayoutPoint(1, 50000, 100000, 0).
//	    AddPayoutPoint(2, 50000, 100000, 0).
//	    AddPayoutPoint(2, 1048575, 100000, 0).
//	    AddRoundingInterval(0, 1).
//	    SetOracleNumericInfo(2, []uint{20}).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, err := contract.CreateContractInfo(desc, keys, "btcusd1624943400", 1)
//	...
//	terms, err := contract.NewContractBuilder().
//	    FeeRate(2).
//	    OfferCollateral(100000).
//	    AcceptCollateral(0).
//	    WithContractInfo(info).
//	    Build()
package contract
