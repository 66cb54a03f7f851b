// SPDX-License-Identifier: MIT
// Package: radpool-dlc/oracle
//
// types.go - oracle value types and sentinel errors.

package oracle

import "errors"

// PublicKeySize is the length in bytes of an x-only public key.
const PublicKeySize = 32

// Sentinel errors returned by key constructors.
var (
	// ErrInvalidKeyLength indicates a key whose byte length is not PublicKeySize.
	ErrInvalidKeyLength = errors.New("oracle: public key must be 32 bytes")

	// ErrInvalidKeyEncoding indicates a text key that is not valid hex.
	ErrInvalidKeyEncoding = errors.New("oracle: public key is not valid hex")

	// ErrNotOnCurve indicates 32 bytes that do not encode a secp256k1 x coordinate.
	ErrNotOnCurve = errors.New("oracle: public key is not a valid curve point")
)

// PublicKey is a BIP-340 x-only secp256k1 public key identifying an oracle.
// The zero value is not a valid key; obtain keys through ParsePublicKey,
// PublicKeyFromBytes or NewPublicKey.
type PublicKey [PublicKeySize]byte

// NumericInfo describes how oracles attest a numeric outcome: digit by digit
// in radix Base, with DigitCounts[i] digits for the i-th oracle of the
// contract info (index-aligned with its public key list).
type NumericInfo struct {
	Base        uint
	DigitCounts []uint
}

// MaxValue returns the largest outcome representable with n digits in Base,
// saturating at the maximum uint64. It returns 0 for Base < 2 or n == 0.
func (ni NumericInfo) MaxValue(n uint) uint64 {
	if ni.Base < 2 || n == 0 {
		return 0
	}
	var v uint64 = 1
	for i := uint(0); i < n; i++ {
		next := v * uint64(ni.Base)
		if next/uint64(ni.Base) != v {
			return ^uint64(0)
		}
		v = next
	}

	return v - 1
}
