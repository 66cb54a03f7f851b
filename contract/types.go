// SPDX-License-Identifier: MIT
// Package: radpool-dlc/contract
//
// types.go - the agreed contract terms.
//
// All values are plain data: no pointers back into builders, no shared
// mutable state. A ContractInput returned by ContractBuilder.Build is owned
// by the caller.

package contract

import (
	"github.com/jayendramadaram/radpool-dlc/oracle"
	"github.com/jayendramadaram/radpool-dlc/payoutcurve"
)

// DescriptorKind tags the variant of a Descriptor.
type DescriptorKind uint8

const (
	// KindEnumerated marks an *EnumDescriptor.
	KindEnumerated DescriptorKind = iota + 1
	// KindNumerical marks a *NumericalDescriptor.
	KindNumerical
)

// String returns "Enumerated" or "Numerical".
func (k DescriptorKind) String() string {
	switch k {
	case KindEnumerated:
		return "Enumerated"
	case KindNumerical:
		return "Numerical"
	default:
		return "Unknown"
	}
}

// Descriptor maps attested outcomes to payouts. The set of implementations
// is closed: *EnumDescriptor and *NumericalDescriptor.
type Descriptor interface {
	Kind() DescriptorKind
	isDescriptor()
}

// EnumerationPayout is the payout pair for one enumerated outcome.
type EnumerationPayout struct {
	Outcome      string
	OfferPayout  uint64
	AcceptPayout uint64
}

// EnumDescriptor pays according to a discrete outcome attested by the oracles.
type EnumDescriptor struct {
	OutcomePayouts []EnumerationPayout
}

// Kind implements Descriptor.
func (*EnumDescriptor) Kind() DescriptorKind { return KindEnumerated }
func (*EnumDescriptor) isDescriptor() {}

// DifferenceParams bounds the digit distance tolerated between numeric
// attestations of different oracles (base-B exponents).
type DifferenceParams struct {
	MaxErrorExp      uint
	MinSupportExp    uint
	MaximizeCoverage bool
}

// NumericalDescriptor pays according to a piecewise payout curve evaluated at
// a numeric outcome.
type NumericalDescriptor struct {
	PayoutFunction    payoutcurve.PayoutFunction
	RoundingIntervals payoutcurve.RoundingIntervals
	// DifferenceParams is nil when attestations must match exactly.
	DifferenceParams  *DifferenceParams
	OracleNumericInfo oracle.NumericInfo
}

// Kind implements Descriptor.
func (*NumericalDescriptor) Kind() DescriptorKind { return KindNumerical }
func (*NumericalDescriptor) isDescriptor() {}

// OracleInput names the oracles backing one event and how many must agree.
type OracleInput struct {
	PublicKeys []oracle.PublicKey
	EventID    string
	Threshold  uint16
}

// ContractInfo binds one descriptor to one oracle-attested event.
type ContractInfo struct {
	Descriptor Descriptor
	Oracles    OracleInput
}

// ContractInput is the validated, immutable set of contract terms handed to
// the offer flow: fee rate, both collaterals and one or more contract infos
// in attachment order.
type ContractInput struct {
	FeeRate          uint64
	OfferCollateral  uint64
	AcceptCollateral uint64
	ContractInfos    []ContractInfo
}
