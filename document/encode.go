// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// encode.go - contract terms → documents, and the terms digest.

package document

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jayendramadaram/radpool-dlc/contract"
)

// digestPrefix names the hash function in digest strings.
const digestPrefix = "sha256:"

// MarshalJSON encodes c as a JSON document; WithIndent controls layout.
func MarshalJSON(c contract.ContractInput, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts...)
	d, err := fromContract(c)
	if err != nil {
		return nil, fmt.Errorf("MarshalJSON: %w", err)
	}
	if cfg.prefix == "" && cfg.indent == "" {
		return json.Marshal(d)
	}

	return json.MarshalIndent(d, cfg.prefix, cfg.indent)
}

// Encode writes c to w as a JSON document followed by a newline.
func Encode(w io.Writer, c contract.ContractInput, opts ...Option) error {
	raw, err := MarshalJSON(c, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// Digest returns "sha256:<hex>" over the compact JSON encoding of c. Equal
// terms always yield equal digests, whatever document layout they came from.
func Digest(c contract.ContractInput) (string, error) {
	raw, err := MarshalJSON(c)
	if err != nil {
		return "", fmt.Errorf("Digest: %w", err)
	}
	sum := sha256.Sum256(raw)

	return digestPrefix + hex.EncodeToString(sum[:]), nil
}
