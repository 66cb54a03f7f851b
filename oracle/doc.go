// SPDX-License-Identifier: MIT
// Package oracle holds the oracle-facing value types referenced by a
// contract: the BIP-340 x-only public key an oracle attests with, and the
// numeric encoding (base and per-oracle digit counts) used for numeric
// outcome events.
//
// Keys:
//
//	A PublicKey is the 32-byte x coordinate of a secp256k1 point with even
//	y. Its text form is 64 lower-case hex characters. Every constructor
//	checks the point lies on the curve, so a PublicKey value obtained from
//	this package is always usable for attestation verification downstream.
//
// Errors (sentinel):
//
//	– ErrInvalidKeyLength   if the key is not exactly 32 bytes.
//	– ErrInvalidKeyEncoding if the text form is not valid hex.
//	– ErrNotOnCurve         if the x coordinate is not a curve point.
//
// Example usage:
//
//	pk, err := oracle.ParsePublicKey("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pk)
package oracle
