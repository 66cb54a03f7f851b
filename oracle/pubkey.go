// SPDX-License-Identifier: MIT
// Package: radpool-dlc/oracle
//
// pubkey.go - construction, text encoding and curve validation of x-only keys.
//
// Contract:
//   - Every constructor validates the curve point through btcec/v2/schnorr.
//   - Text form is lower-case hex; UnmarshalText accepts either case.

package oracle

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// ParsePublicKey decodes a 64-character hex string into a PublicKey.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("ParsePublicKey(%q): %w", s, ErrInvalidKeyEncoding)
	}

	return PublicKeyFromBytes(raw)
}

// PublicKeyFromBytes validates raw as an x-only key and copies it.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	var pk PublicKey
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("PublicKeyFromBytes: got %d bytes: %w", len(raw), ErrInvalidKeyLength)
	}
	if _, err := schnorr.ParsePubKey(raw); err != nil {
		return pk, fmt.Errorf("PublicKeyFromBytes: %v: %w", err, ErrNotOnCurve)
	}
	copy(pk[:], raw)

	return pk, nil
}

// NewPublicKey returns the x-only form of a full secp256k1 public key.
func NewPublicKey(pub *btcec.PublicKey) PublicKey {
	var pk PublicKey
	copy(pk[:], schnorr.SerializePubKey(pub))

	return pk
}

// BTCEC returns the curve point for pk (with even y, per BIP-340).
func (pk PublicKey) BTCEC() (*btcec.PublicKey, error) {
	pub, err := schnorr.ParsePubKey(pk[:])
	if err != nil {
		return nil, fmt.Errorf("PublicKey.BTCEC: %v: %w", err, ErrNotOnCurve)
	}

	return pub, nil
}

// String returns the lower-case hex encoding of pk.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and validates the key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed

	return nil
}
