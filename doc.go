// SPDX-License-Identifier: MIT
// Package dlc assembles the terms of a Discreet Log Contract: the
// collateral each party locks, the fee rate, and one or more contract
// infos that pair a payout descriptor with the oracles whose attestation
// settles it.
//
// Everything is organized under four subpackages:
//
//	contract/    builders for enumerated and numeric descriptors, contract
//	             infos and the full contract input, with sentinel errors
//	payoutcurve/ piecewise-polynomial payout functions and rounding intervals
//	oracle/      x-only secp256k1 oracle keys and numeric event info
//	document/    JSON/YAML documents, schema validation, terms digest
//
// A numeric contract in a few lines:
//
//	desc, err := contract.NewNumericalDescriptorBuilder().
//		AddPayoutPoint(1, 0, 0, 0).AddPayoutPoint(1, 50_000, 0, 0).
//		AddPayoutPoint(2, 50_000, 0, 0).AddPayoutPoint(2, 60_000, 200_000, 0).
//		AddRoundingInterval(0, 100).
//		SetOracleNumericInfo(2, []uint{20}).
//		Build()
//	info, err := contract.CreateContractInfo(desc, keys, "btcusd1731397577", 1)
//	terms, err := contract.NewContractBuilder().
//		OfferCollateral(100_000).AcceptCollateral(100_000).FeeRate(2).
//		WithContractInfo(info).Build()
//
// The dlcctl command (cmd/dlcctl) validates, formats and digests contract
// documents from the shell.
package dlc
