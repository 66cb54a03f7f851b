// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// contract_builder.go - top-level assembler of the contract terms.
//
// Contract:
//   - Setters never validate; zero fee rate and zero collaterals are legal.
//   - WithContractInfo appends; attachment order is preserved in the result.
//   - CreateContractInfo is the only place oracle sets are validated.
//   - Build fails only with ErrMissingContractInfo, and leaves the builder empty.

package contract

import (
	"fmt"

	"github.com/jayendramadaram/radpool-dlc/oracle"
)

// ContractBuilder accumulates fee rate, collaterals and contract infos.
// The zero value is equivalent to NewContractBuilder().
type ContractBuilder struct {
	contract ContractInput
}

// NewContractBuilder returns a builder with zero fee rate, zero collaterals
// and no contract infos.
func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{}
}

// FeeRate sets the fee rate, in satoshis per virtual byte.
func (b *ContractBuilder) FeeRate(feeRate uint64) *ContractBuilder {
	b.contract.FeeRate = feeRate
	return b
}

// OfferCollateral sets the collateral pledged by the offering party.
func (b *ContractBuilder) OfferCollateral(amount uint64) *ContractBuilder {
	b.contract.OfferCollateral = amount
	return b
}

// AcceptCollateral sets the collateral pledged by the accepting party.
func (b *ContractBuilder) AcceptCollateral(amount uint64) *ContractBuilder {
	b.contract.AcceptCollateral = amount
	return b
}

// WithContractInfo appends info. Several infos back one contract with
// several oracle events.
func (b *ContractBuilder) WithContractInfo(info ContractInfo) *ContractBuilder {
	b.contract.ContractInfos = append(b.contract.ContractInfos, info)
	return b
}

// Build returns the contract terms, or ErrMissingContractInfo when no info
// was attached.
func (b *ContractBuilder) Build() (ContractInput, error) {
	c := b.contract
	b.contract = ContractInput{}

	if len(c.ContractInfos) == 0 {
		return ContractInput{}, wrapf(methodContractBuild, ErrMissingContractInfo)
	}

	return c, nil
}

// CreateContractInfo packages descriptor with its oracle set. It does not
// depend on any builder state.
//
// Errors:
//   - ErrMissingDescriptor if descriptor is nil.
//   - ErrMissingOracles    if publicKeys is empty.
//   - ErrInvalidThreshold  if threshold is 0 or exceeds len(publicKeys).
func CreateContractInfo(descriptor Descriptor, publicKeys []oracle.PublicKey, eventID string, threshold uint16) (ContractInfo, error) {
	if descriptor == nil {
		return ContractInfo{}, wrapf(methodCreateContractInfo, ErrMissingDescriptor)
	}
	if len(publicKeys) == 0 {
		return ContractInfo{}, wrapf(methodCreateContractInfo, ErrMissingOracles)
	}
	if threshold == 0 || int(threshold) > len(publicKeys) {
		return ContractInfo{}, fmt.Errorf("%s: threshold %d with %d oracles: %w",
			methodCreateContractInfo, threshold, len(publicKeys), ErrInvalidThreshold)
	}

	return ContractInfo{
		Descriptor: descriptor,
		Oracles: OracleInput{
			PublicKeys: append([]oracle.PublicKey(nil), publicKeys...),
			EventID:    eventID,
			Threshold:  threshold,
		},
	}, nil
}
