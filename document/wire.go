// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// wire.go - document representation and conversion to/from contract terms.
//
// The wire types mirror the document field for field; they are never
// exposed. Conversion into contract terms always goes through the contract
// builders.

package document

import (
	"fmt"

	"github.com/jayendramadaram/radpool-dlc/contract"
	"github.com/jayendramadaram/radpool-dlc/oracle"
)

type contractDoc struct {
	FeeRate          uint64            `json:"fee_rate"`
	OfferCollateral  uint64            `json:"offer_collateral"`
	AcceptCollateral uint64            `json:"accept_collateral"`
	ContractInfos    []contractInfoDoc `json:"contract_infos"`
}

type contractInfoDoc struct {
	ContractDescriptor descriptorDoc `json:"contract_descriptor"`
	Oracles            oraclesDoc    `json:"oracles"`
}

// descriptorDoc is an externally tagged union: exactly one field is set.
type descriptorDoc struct {
	Enumerated *enumDoc      `json:"Enumerated,omitempty"`
	Numerical  *numericalDoc `json:"Numerical,omitempty"`
}

type enumDoc struct {
	OutcomePayouts []outcomePayoutDoc `json:"outcome_payouts"`
}

type outcomePayoutDoc struct {
	Outcome      string `json:"outcome"`
	OfferPayout  uint64 `json:"offer_payout"`
	AcceptPayout uint64 `json:"accept_payout"`
}

type numericalDoc struct {
	Pieces            []pieceDoc            `json:"pieces"`
	RoundingIntervals []roundingIntervalDoc `json:"rounding_intervals"`
	DifferenceParams  *differenceParamsDoc  `json:"difference_params,omitempty"`
	OracleNumericInfo *numericInfoDoc       `json:"oracle_numeric_info,omitempty"`
}

type pieceDoc struct {
	Points []pointDoc `json:"points"`
}

type pointDoc struct {
	EventOutcome   uint64 `json:"event_outcome"`
	OutcomePayout  uint64 `json:"outcome_payout"`
	ExtraPrecision uint16 `json:"extra_precision"`
}

type roundingIntervalDoc struct {
	BeginInterval uint64 `json:"begin_interval"`
	RoundingMod   uint64 `json:"rounding_mod"`
}

type differenceParamsDoc struct {
	MaxErrorExponent   uint `json:"max_error_exponent"`
	MinSupportExponent uint `json:"min_support_exponent"`
	MaximizeCoverage   bool `json:"maximize_coverage"`
}

type numericInfoDoc struct {
	Base        uint   `json:"base"`
	DigitCounts []uint `json:"digit_counts"`
}

type oraclesDoc struct {
	PublicKeys []oracle.PublicKey `json:"public_keys"`
	EventID    string             `json:"event_id"`
	Threshold  uint16             `json:"threshold"`
}

// toContract rebuilds the terms through the contract builders.
func (d contractDoc) toContract() (contract.ContractInput, error) {
	b := contract.NewContractBuilder().
		FeeRate(d.FeeRate).
		OfferCollateral(d.OfferCollateral).
		AcceptCollateral(d.AcceptCollateral)

	for i, ci := range d.ContractInfos {
		desc, err := ci.ContractDescriptor.toDescriptor()
		if err != nil {
			return contract.ContractInput{}, fmt.Errorf("contract_infos[%d]: %w", i, err)
		}
		info, err := contract.CreateContractInfo(desc, ci.Oracles.PublicKeys, ci.Oracles.EventID, ci.Oracles.Threshold)
		if err != nil {
			return contract.ContractInput{}, fmt.Errorf("contract_infos[%d]: %w", i, err)
		}
		b.WithContractInfo(info)
	}

	return b.Build()
}

func (d descriptorDoc) toDescriptor() (contract.Descriptor, error) {
	switch {
	case d.Enumerated != nil && d.Numerical == nil:
		b := contract.NewEnumDescriptorBuilder()
		for _, p := range d.Enumerated.OutcomePayouts {
			b.AddPayout(p.Outcome, p.OfferPayout, p.AcceptPayout)
		}
		return b.Build()

	case d.Numerical != nil && d.Enumerated == nil:
		n := d.Numerical
		b := contract.NewNumericalDescriptorBuilder()
		for i, piece := range n.Pieces {
			for _, pt := range piece.Points {
				b.AddPayoutPoint(uint64(i+1), pt.EventOutcome, pt.OutcomePayout, pt.ExtraPrecision)
			}
		}
		for _, ri := range n.RoundingIntervals {
			b.AddRoundingInterval(ri.BeginInterval, ri.RoundingMod)
		}
		if dp := n.DifferenceParams; dp != nil {
			b.SetDifferenceParams(dp.MaxErrorExponent, dp.MinSupportExponent, dp.MaximizeCoverage)
		}
		if ni := n.OracleNumericInfo; ni != nil {
			b.SetOracleNumericInfo(ni.Base, ni.DigitCounts)
		}
		return b.Build()

	default:
		return nil, fmt.Errorf("contract_descriptor must hold exactly one of Enumerated, Numerical: %w", ErrMalformed)
	}
}

// fromContract converts built terms into their document form. Arrays are
// always non-nil so the document never carries null where a list is expected.
func fromContract(c contract.ContractInput) (contractDoc, error) {
	d := contractDoc{
		FeeRate:          c.FeeRate,
		OfferCollateral:  c.OfferCollateral,
		AcceptCollateral: c.AcceptCollateral,
		ContractInfos:    make([]contractInfoDoc, 0, len(c.ContractInfos)),
	}
	for i, ci := range c.ContractInfos {
		desc, err := fromDescriptor(ci.Descriptor)
		if err != nil {
			return contractDoc{}, fmt.Errorf("contract_infos[%d]: %w", i, err)
		}
		d.ContractInfos = append(d.ContractInfos, contractInfoDoc{
			ContractDescriptor: desc,
			Oracles: oraclesDoc{
				PublicKeys: append(make([]oracle.PublicKey, 0, len(ci.Oracles.PublicKeys)), ci.Oracles.PublicKeys...),
				EventID:    ci.Oracles.EventID,
				Threshold:  ci.Oracles.Threshold,
			},
		})
	}

	return d, nil
}

func fromDescriptor(desc contract.Descriptor) (descriptorDoc, error) {
	switch v := desc.(type) {
	case *contract.EnumDescriptor:
		if v == nil {
			break
		}
		e := &enumDoc{OutcomePayouts: make([]outcomePayoutDoc, 0, len(v.OutcomePayouts))}
		for _, p := range v.OutcomePayouts {
			e.OutcomePayouts = append(e.OutcomePayouts, outcomePayoutDoc{
				Outcome:      p.Outcome,
				OfferPayout:  p.OfferPayout,
				AcceptPayout: p.AcceptPayout,
			})
		}
		return descriptorDoc{Enumerated: e}, nil

	case *contract.NumericalDescriptor:
		if v == nil {
			break
		}
		n := &numericalDoc{
			Pieces:            make([]pieceDoc, 0, len(v.PayoutFunction.Pieces)),
			RoundingIntervals: make([]roundingIntervalDoc, 0, len(v.RoundingIntervals.Intervals)),
			OracleNumericInfo: &numericInfoDoc{
				Base:        v.OracleNumericInfo.Base,
				DigitCounts: append(make([]uint, 0, len(v.OracleNumericInfo.DigitCounts)), v.OracleNumericInfo.DigitCounts...),
			},
		}
		for _, piece := range v.PayoutFunction.Pieces {
			pd := pieceDoc{Points: make([]pointDoc, 0, len(piece.Points))}
			for _, pt := range piece.Points {
				pd.Points = append(pd.Points, pointDoc{
					EventOutcome:   pt.EventOutcome,
					OutcomePayout:  pt.OutcomePayout,
					ExtraPrecision: pt.ExtraPrecision,
				})
			}
			n.Pieces = append(n.Pieces, pd)
		}
		for _, ri := range v.RoundingIntervals.Intervals {
			n.RoundingIntervals = append(n.RoundingIntervals, roundingIntervalDoc{
				BeginInterval: ri.BeginInterval,
				RoundingMod:   ri.RoundingMod,
			})
		}
		if dp := v.DifferenceParams; dp != nil {
			n.DifferenceParams = &differenceParamsDoc{
				MaxErrorExponent:   dp.MaxErrorExp,
				MinSupportExponent: dp.MinSupportExp,
				MaximizeCoverage:   dp.MaximizeCoverage,
			}
		}
		return descriptorDoc{Numerical: n}, nil
	}

	return descriptorDoc{}, fmt.Errorf("unsupported descriptor %T: %w", desc, ErrMalformed)
}
