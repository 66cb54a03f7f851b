// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// errors.go - sentinel errors for document decoding and encoding.

package document

import "errors"

var (
	// ErrSchema indicates a document that violates contract.schema.json.
	// The *jsonschema.ValidationError is wrapped alongside for errors.As.
	ErrSchema = errors.New("document: schema violation")

	// ErrMalformed indicates a document that cannot be decoded into contract
	// terms: invalid syntax, wrong value types, unknown fields, trailing data,
	// or a descriptor that is not exactly one of Enumerated / Numerical.
	ErrMalformed = errors.New("document: malformed document")

	// ErrUnsupportedFormat indicates a file extension with no known codec.
	ErrUnsupportedFormat = errors.New("document: unsupported format")
)
